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

package expression

import (
	"fmt"
	"strings"

	"github.com/dolthub/go-planorder/sql"
)

// Function is a call to a named function with zero or more arguments. The
// call is opaque to the planner; only its rendering and its argument
// subtrees matter.
type Function struct {
	name      string
	arguments []sql.Expression
}

var _ sql.Expression = (*Function)(nil)
var _ sql.Nameable = (*Function)(nil)

// NewFunction creates a new Function expression.
func NewFunction(name string, arguments ...sql.Expression) *Function {
	return &Function{name: name, arguments: arguments}
}

// Name implements the Nameable interface.
func (f *Function) Name() string { return f.name }

// Children implements the Expression interface.
func (f *Function) Children() []sql.Expression {
	return f.arguments
}

func (f *Function) String() string {
	var exprs = make([]string, len(f.arguments))
	for i, e := range f.arguments {
		exprs[i] = e.String()
	}

	return fmt.Sprintf("%s(%s)", f.name, strings.Join(exprs, ", "))
}

// WithChildren implements the Expression interface.
func (f *Function) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != len(f.arguments) {
		return nil, sql.ErrInvalidChildrenNumber.New(f, len(children), len(f.arguments))
	}
	return NewFunction(f.name, children...), nil
}
