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

	"github.com/dolthub/go-planorder/sql"
	"github.com/dolthub/go-planorder/sql/expression"
)

// Direction represents the direction of a sort key (ascending or descending).
type Direction byte

const (
	// Ascending order.
	Ascending Direction = 1
	// Descending order.
	Descending Direction = 2
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ASC"
	case Descending:
		return "DESC"
	default:
		return "invalid Direction"
	}
}

// ColumnOrder is a single sort key of an order candidate.
type ColumnOrder struct {
	// Direction of the sort.
	Direction Direction
	// ID is the stable textual identity of the key. The provided-order side
	// reports produced columns under this name.
	ID string
	// Expression the column sorts by, as stated when the key was recorded or
	// last rewritten.
	Expression sql.Expression
	// Projections maps prior variable names to the expressions that now
	// produce their values. Entries accumulate as renames compose across
	// plan stages.
	Projections map[string]sql.Expression
}

// Asc creates an ascending ColumnOrder. A nil projections map is treated as
// empty.
func Asc(id string, expr sql.Expression, projections map[string]sql.Expression) ColumnOrder {
	return ColumnOrder{Direction: Ascending, ID: id, Expression: expr, Projections: projections}
}

// Desc creates a descending ColumnOrder. A nil projections map is treated as
// empty.
func Desc(id string, expr sql.Expression, projections map[string]sql.Expression) ColumnOrder {
	return ColumnOrder{Direction: Descending, ID: id, Expression: expr, Projections: projections}
}

// Projected returns a column of the same direction and ID with the
// expression and projections replaced. The old projections are not
// consulted; the caller supplies the full up-to-date map.
func (c ColumnOrder) Projected(expr sql.Expression, projections map[string]sql.Expression) ColumnOrder {
	return ColumnOrder{Direction: c.Direction, ID: c.ID, Expression: expr, Projections: projections}
}

// Equals reports whether two columns are interchangeable: same direction and
// ID, structurally equal expression and projections.
func (c ColumnOrder) Equals(other ColumnOrder) bool {
	if c.Direction != other.Direction || c.ID != other.ID {
		return false
	}
	if !expression.Equals(c.Expression, other.Expression) {
		return false
	}
	if len(c.Projections) != len(other.Projections) {
		return false
	}
	for name, expr := range c.Projections {
		otherExpr, ok := other.Projections[name]
		if !ok || !expression.Equals(expr, otherExpr) {
			return false
		}
	}
	return true
}

func (c ColumnOrder) String() string {
	return fmt.Sprintf("%s %s", c.ID, c.Direction)
}
