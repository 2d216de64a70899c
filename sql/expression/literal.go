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

	"github.com/dolthub/go-planorder/sql"
)

// Literal represents a constant value in a sort expression, such as an
// ordinal column position.
type Literal struct {
	value interface{}
}

var _ sql.Expression = (*Literal)(nil)

// NewLiteral creates a new Literal expression.
func NewLiteral(value interface{}) *Literal {
	return &Literal{value: value}
}

// Value returns the literal value.
func (l *Literal) Value() interface{} { return l.value }

func (l *Literal) String() string {
	switch v := l.value.(type) {
	case nil:
		return "NULL"
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprint(v)
	}
}

// Children implements the Expression interface.
func (*Literal) Children() []sql.Expression { return nil }

// WithChildren implements the Expression interface.
func (l *Literal) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(l, len(children), 0)
	}
	return l, nil
}
