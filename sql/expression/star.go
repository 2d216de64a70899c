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

// Star represents the selection of all available fields, either bare or as
// the sole argument of a function call such as count(*).
type Star struct{}

var _ sql.Expression = (*Star)(nil)

// NewStar returns a new Star expression.
func NewStar() *Star {
	return new(Star)
}

func (Star) String() string {
	return "*"
}

// Children implements the Expression interface.
func (Star) Children() []sql.Expression { return nil }

// WithChildren implements the Expression interface.
func (s *Star) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(s, len(children), 0)
	}
	return s, nil
}
