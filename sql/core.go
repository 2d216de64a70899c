// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sql holds the core types shared by the planning packages: the
// Expression interface and the Context that carries tracing through a
// planning session.
package sql

import "fmt"

// Nameable is something that has a name.
type Nameable interface {
	// Name returns the name.
	Name() string
}

// Expression is a node in a scalar expression tree. Expressions are immutable
// values: operations that would modify one return a new expression instead.
//
// The string returned by String is the canonical rendering of the expression
// and serves as its identity during planning; two expressions with the same
// canonical rendering are considered the same sort key. Expressions are never
// evaluated by this library, only re-expressed and compared.
type Expression interface {
	fmt.Stringer
	// Children returns the children expressions of this expression.
	Children() []Expression
	// WithChildren returns a copy of the expression with the children
	// replaced.
	WithChildren(children ...Expression) (Expression, error)
}
