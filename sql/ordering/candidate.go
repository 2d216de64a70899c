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

package ordering

import (
	"strings"

	"github.com/dolthub/go-planorder/sql"
)

// orderCandidate is an immutable sequence of sort keys. Appends copy the
// sequence, so a candidate already attached to a plan node never changes
// underneath it.
type orderCandidate struct {
	order []ColumnOrder
}

func (c orderCandidate) appended(col ColumnOrder) orderCandidate {
	order := make([]ColumnOrder, len(c.order), len(c.order)+1)
	copy(order, c.order)
	return orderCandidate{order: append(order, col)}
}

// IsEmpty reports whether the candidate has no columns.
func (c orderCandidate) IsEmpty() bool {
	return len(c.order) == 0
}

// Columns returns the column sequence. Earlier columns are major sort keys.
func (c orderCandidate) Columns() []ColumnOrder {
	return c.order
}

// Head returns the first (major) column, if present.
func (c orderCandidate) Head() (ColumnOrder, bool) {
	if len(c.order) == 0 {
		return ColumnOrder{}, false
	}
	return c.order[0], true
}

func (c orderCandidate) String() string {
	var cols = make([]string, len(c.order))
	for i, col := range c.order {
		cols[i] = col.String()
	}
	return strings.Join(cols, ", ")
}

// RequiredOrderCandidate is an ordering the results must satisfy. The zero
// value means no requirement.
type RequiredOrderCandidate struct {
	orderCandidate
}

// NewRequiredOrderCandidate creates a RequiredOrderCandidate over the given
// columns.
func NewRequiredOrderCandidate(columns ...ColumnOrder) RequiredOrderCandidate {
	return RequiredOrderCandidate{orderCandidate{order: columns}}
}

// Asc returns a new candidate with an ascending column appended.
func (c RequiredOrderCandidate) Asc(id string, expr sql.Expression, projections map[string]sql.Expression) RequiredOrderCandidate {
	return RequiredOrderCandidate{c.appended(Asc(id, expr, projections))}
}

// Desc returns a new candidate with a descending column appended.
func (c RequiredOrderCandidate) Desc(id string, expr sql.Expression, projections map[string]sql.Expression) RequiredOrderCandidate {
	return RequiredOrderCandidate{c.appended(Desc(id, expr, projections))}
}

// RenameColumns applies f to the whole column sequence at once and returns a
// candidate over the rewritten, possibly shorter, sequence.
func (c RequiredOrderCandidate) RenameColumns(f func([]ColumnOrder) []ColumnOrder) RequiredOrderCandidate {
	return NewRequiredOrderCandidate(f(c.Columns())...)
}

// AsInteresting demotes the hard requirement to a soft hint over the same
// columns. There is no promotion in the other direction.
func (c RequiredOrderCandidate) AsInteresting() InterestingOrderCandidate {
	return InterestingOrderCandidate{c.orderCandidate}
}

// InterestingOrderCandidate is an ordering that would avoid a sort if
// provided for free. It biases plan selection and is never enforced.
type InterestingOrderCandidate struct {
	orderCandidate
}

// NewInterestingOrderCandidate creates an InterestingOrderCandidate over the
// given columns.
func NewInterestingOrderCandidate(columns ...ColumnOrder) InterestingOrderCandidate {
	return InterestingOrderCandidate{orderCandidate{order: columns}}
}

// Asc returns a new candidate with an ascending column appended.
func (c InterestingOrderCandidate) Asc(id string, expr sql.Expression, projections map[string]sql.Expression) InterestingOrderCandidate {
	return InterestingOrderCandidate{c.appended(Asc(id, expr, projections))}
}

// Desc returns a new candidate with a descending column appended.
func (c InterestingOrderCandidate) Desc(id string, expr sql.Expression, projections map[string]sql.Expression) InterestingOrderCandidate {
	return InterestingOrderCandidate{c.appended(Desc(id, expr, projections))}
}

// RenameColumns applies f to the whole column sequence at once and returns a
// candidate over the rewritten, possibly shorter, sequence.
func (c InterestingOrderCandidate) RenameColumns(f func([]ColumnOrder) []ColumnOrder) InterestingOrderCandidate {
	return NewInterestingOrderCandidate(f(c.Columns())...)
}
