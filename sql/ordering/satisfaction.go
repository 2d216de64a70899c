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

// SatisfiedBy reports whether the order a plan operator actually provides
// is sufficient for the required candidate. Columns are matched pairwise by
// position; the required candidate being a prefix of the provided order is
// enough, the provided order may be more specific. Only the required
// candidate gates the answer, interesting candidates never do.
func (o InterestingOrder) SatisfiedBy(provided ProvidedOrder) bool {
	for i, col := range o.required.Columns() {
		if i >= len(provided.columns) {
			return false
		}
		if !columnSatisfiedBy(col, provided.columns[i]) {
			return false
		}
	}
	return true
}

// columnSatisfiedBy matches one required column against the provided column
// at the same position. Directions must agree, and the provided id must
// equal the required expression's canonical identity either directly or
// after resolving recorded projections, repeating resolution until a match
// or a fixed point. The step bound keeps a cyclic projections map, which
// the caller contract rules out, from looping forever.
func columnSatisfiedBy(col ColumnOrder, provided ProvidedColumn) bool {
	if col.Direction != provided.Direction {
		return false
	}

	expr := col.Expression
	for steps := len(col.Projections) + 1; steps > 0; steps-- {
		if expr.String() == provided.ID {
			return true
		}
		resolved := projectExpression(expr, col.Projections)
		if resolved.String() == expr.String() {
			return false
		}
		expr = resolved
	}
	return false
}
