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

package planner

import (
	"math"

	"github.com/spf13/cast"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/go-planorder/sql"
	"github.com/dolthub/go-planorder/sql/expression"
	"github.com/dolthub/go-planorder/sql/ordering"
)

// ErrOrderByColumnIndex is returned when in order by there is a column index
// out of range.
var ErrOrderByColumnIndex = errors.NewKind("unknown column %d in order by clause")

// ErrOrderByNonIntegerIndex is returned when a numeric sort key is not a
// whole number, so it cannot name a column position.
var ErrOrderByNonIntegerIndex = errors.NewKind("non-integer column index %v in order by clause")

// ResolveOrdinals replaces numeric-literal sort keys with the projection at
// that position. Ordinals are 1-indexed into the projection list; an
// ordinal out of range or a non-integral numeric literal is an error.
// Aliased projections resolve to a reference to the alias name. Non-numeric
// literals and every other expression shape pass through untouched.
func ResolveOrdinals(candidate ordering.RequiredOrderCandidate, projections []sql.Expression) (ordering.RequiredOrderCandidate, error) {
	var resolveErr error
	resolved := candidate.RenameColumns(func(columns []ordering.ColumnOrder) []ordering.ColumnOrder {
		renamed := make([]ordering.ColumnOrder, len(columns))
		for i, col := range columns {
			renamed[i] = col

			lit, ok := col.Expression.(*expression.Literal)
			if !ok {
				continue
			}

			switch v := lit.Value().(type) {
			case int64:
			case float64:
				if v != math.Trunc(v) {
					resolveErr = ErrOrderByNonIntegerIndex.New(v)
					return columns
				}
			default:
				continue
			}

			idx, err := cast.ToInt64E(lit.Value())
			if err != nil {
				continue
			}

			// column access is 1-indexed
			if idx < 1 || idx > int64(len(projections)) {
				resolveErr = ErrOrderByColumnIndex.New(idx)
				return columns
			}

			target := projections[idx-1]
			if alias, ok := target.(*expression.Alias); ok {
				target = expression.NewVariable(alias.Name())
			}

			renamed[i] = ordering.ColumnOrder{
				Direction:   col.Direction,
				ID:          target.String(),
				Expression:  target,
				Projections: col.Projections,
			}
		}
		return renamed
	})

	if resolveErr != nil {
		return candidate, resolveErr
	}
	return resolved, nil
}
