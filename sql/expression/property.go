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

// Property is a lookup of a named property on a subject expression, rendered
// as "subject.name". The usual subject is a Variable, in which case the whole
// node reads like a qualified column.
type Property struct {
	UnaryExpression
	name string
}

var _ sql.Expression = (*Property)(nil)

// NewProperty creates a new Property lookup of name on subject.
func NewProperty(subject sql.Expression, name string) *Property {
	return &Property{UnaryExpression{Child: subject}, name}
}

// Name returns the name of the property being looked up.
func (p *Property) Name() string { return p.name }

// Subject returns the expression the property is looked up on.
func (p *Property) Subject() sql.Expression { return p.Child }

func (p *Property) String() string {
	return fmt.Sprintf("%s.%s", p.Child, p.name)
}

// WithChildren implements the Expression interface.
func (p *Property) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(p, len(children), 1)
	}
	return NewProperty(children[0], p.name), nil
}
