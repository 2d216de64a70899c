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

// Package expression provides the concrete expression nodes the planning
// packages reason about: variable references, property lookups, literals,
// aliases, arithmetic and function calls. Nodes only carry enough to render
// a canonical string and to be walked; they are never evaluated.
package expression

import (
	"github.com/dolthub/go-planorder/sql"
)

// UnaryExpression is an expression that has a single child.
type UnaryExpression struct {
	Child sql.Expression
}

// Children implements the Expression interface.
func (p *UnaryExpression) Children() []sql.Expression {
	return []sql.Expression{p.Child}
}

// BinaryExpression is an expression that has two children.
type BinaryExpression struct {
	Left  sql.Expression
	Right sql.Expression
}

// Children implements the Expression interface.
func (p *BinaryExpression) Children() []sql.Expression {
	return []sql.Expression{p.Left, p.Right}
}

// Equals reports whether two expressions have the same canonical string
// rendering. Planning identity is textual: an expression rebuilt across a
// rename boundary is the same sort key as the original as long as it renders
// identically.
func Equals(a, b sql.Expression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.String() == b.String()
}
