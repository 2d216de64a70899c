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
	"fmt"
	"strings"
)

// ProvidedColumn is one column of the order a plan operator guarantees on
// its output, stated in output-column terms: a direction and a produced id,
// no expression.
type ProvidedColumn struct {
	Direction Direction
	ID        string
}

func (c ProvidedColumn) String() string {
	return fmt.Sprintf("%s %s", c.ID, c.Direction)
}

// ProvidedOrder is the ordered list of columns a plan operator's output is
// actually sorted by, major key first. The zero value means the operator
// provides no order.
type ProvidedOrder struct {
	columns []ProvidedColumn
}

// NewProvidedOrder creates a ProvidedOrder over the given columns.
func NewProvidedOrder(columns ...ProvidedColumn) ProvidedOrder {
	return ProvidedOrder{columns: columns}
}

// Asc returns a new order with an ascending column appended.
func (p ProvidedOrder) Asc(id string) ProvidedOrder {
	return p.appended(ProvidedColumn{Direction: Ascending, ID: id})
}

// Desc returns a new order with a descending column appended.
func (p ProvidedOrder) Desc(id string) ProvidedOrder {
	return p.appended(ProvidedColumn{Direction: Descending, ID: id})
}

func (p ProvidedOrder) appended(col ProvidedColumn) ProvidedOrder {
	columns := make([]ProvidedColumn, len(p.columns), len(p.columns)+1)
	copy(columns, p.columns)
	return ProvidedOrder{columns: append(columns, col)}
}

// IsEmpty reports whether the operator provides no order.
func (p ProvidedOrder) IsEmpty() bool {
	return len(p.columns) == 0
}

// Columns returns the column sequence, major key first.
func (p ProvidedOrder) Columns() []ProvidedColumn {
	return p.columns
}

// Equals reports whether two provided orders list the same columns at the
// same positions.
func (p ProvidedOrder) Equals(other ProvidedOrder) bool {
	if len(p.columns) != len(other.columns) {
		return false
	}
	for i, col := range p.columns {
		if col != other.columns[i] {
			return false
		}
	}
	return true
}

// FollowedBy appends the columns of next after the columns of p. This is
// the order of an operator that preserves p on its output and breaks ties
// within equal p prefixes by next.
func (p ProvidedOrder) FollowedBy(next ProvidedOrder) ProvidedOrder {
	columns := make([]ProvidedColumn, 0, len(p.columns)+len(next.columns))
	columns = append(columns, p.columns...)
	columns = append(columns, next.columns...)
	return ProvidedOrder{columns: columns}
}

// CommonPrefixWith returns the longest leading run of columns shared with
// other. Union-style operators provide at most this much of their inputs'
// orders.
func (p ProvidedOrder) CommonPrefixWith(other ProvidedOrder) ProvidedOrder {
	n := len(p.columns)
	if len(other.columns) < n {
		n = len(other.columns)
	}

	i := 0
	for i < n && p.columns[i] == other.columns[i] {
		i++
	}
	return NewProvidedOrder(p.columns[:i]...)
}

func (p ProvidedOrder) String() string {
	if p.IsEmpty() {
		return "no ordering"
	}

	var cols = make([]string, len(p.columns))
	for i, col := range p.columns {
		cols[i] = col.String()
	}
	return strings.Join(cols, ", ")
}
