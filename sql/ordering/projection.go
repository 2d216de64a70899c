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
	"github.com/dolthub/go-planorder/sql"
	"github.com/dolthub/go-planorder/sql/expression"
)

// WithReverseProjectedColumns re-expresses the order in terms of the output
// of a projection boundary. projectExpressions maps each post-projection
// variable name to the expression that now computes it, looking backward
// across the boundary; argumentIds holds the canonical identities of
// untouched pass-through arguments, whose columns survive unchanged.
//
// Each column is first resolved through its recorded projections, then kept
// with a fresh single-entry projection map when the resolved form is
// anchored on a projected variable, kept as-is when the resolved identity is
// an argument, and dropped otherwise. Columns are evaluated independently, a
// dropped column leaves a gap rather than truncating the sequence.
// Interesting candidates reduced to empty disappear; the required candidate
// remains even when empty.
func (o InterestingOrder) WithReverseProjectedColumns(
	projectExpressions map[string]sql.Expression,
	argumentIds map[string]struct{},
) InterestingOrder {
	rename := func(columns []ColumnOrder) []ColumnOrder {
		var renamed []ColumnOrder
		for _, col := range columns {
			resolved := projectExpression(col.Expression, col.Projections)
			if name, ok := projectedVariable(resolved); ok {
				if projected, found := projectExpressions[name]; found {
					renamed = append(renamed, col.Projected(
						resolved,
						map[string]sql.Expression{name: projected},
					))
					continue
				}
			}
			if _, arg := argumentIds[resolved.String()]; arg {
				renamed = append(renamed, col)
			}
		}
		return renamed
	}

	required := o.required.RenameColumns(rename)
	var interesting []InterestingOrderCandidate
	for _, candidate := range o.interesting {
		if candidate := candidate.RenameColumns(rename); !candidate.IsEmpty() {
			interesting = append(interesting, candidate)
		}
	}

	return InterestingOrder{required: required, interesting: interesting}
}

// projectedVariable returns the variable name a resolved expression is
// anchored on: the name itself for a bare variable, the subject name for a
// property lookup on a variable. Other shapes have no anchor.
func projectedVariable(e sql.Expression) (string, bool) {
	switch e := e.(type) {
	case *expression.Variable:
		return e.Name(), true
	case *expression.Property:
		if subject, ok := e.Subject().(*expression.Variable); ok {
			return subject.Name(), true
		}
	}
	return "", false
}

// projectExpression substitutes recorded projections into e, resolving a
// column to how it is computed in pre-rename terms. Bare variables resolve
// by name. Property lookups on a variable resolve by full dotted identity
// first, then by the base variable with the lookup reapplied on top. Any
// other shape passes through unresolved: composite expressions are not
// traced through renames.
func projectExpression(e sql.Expression, projections map[string]sql.Expression) sql.Expression {
	switch e := e.(type) {
	case *expression.Variable:
		if projected, ok := projections[e.Name()]; ok {
			return projected
		}
	case *expression.Property:
		if projected, ok := projections[e.String()]; ok {
			return projected
		}
		if subject, ok := e.Subject().(*expression.Variable); ok {
			if projected, ok := projections[subject.Name()]; ok {
				return expression.NewProperty(projected, e.Name())
			}
		}
	}
	return e
}
