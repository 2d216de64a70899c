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
	"github.com/dolthub/go-planorder/sql"
)

// Variable is a reference to a named row binding, such as a table alias or a
// projected column name.
type Variable struct {
	name string
}

var _ sql.Expression = (*Variable)(nil)

// NewVariable creates a new Variable expression with the given name.
func NewVariable(name string) *Variable {
	return &Variable{name: name}
}

// Name returns the name of the variable.
func (v *Variable) Name() string { return v.name }

func (v *Variable) String() string { return v.name }

// Children implements the Expression interface.
func (*Variable) Children() []sql.Expression { return nil }

// WithChildren implements the Expression interface.
func (v *Variable) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(v, len(children), 0)
	}
	return v, nil
}
