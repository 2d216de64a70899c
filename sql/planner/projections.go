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
	"github.com/dolthub/go-planorder/sql"
	"github.com/dolthub/go-planorder/sql/expression"
)

// ReverseProjections builds the backward-looking rename map of a projection
// boundary: each output name mapped to the expression that produces it.
// Aliases map their name to the aliased expression, bare variables map to
// themselves, anything else is keyed by its canonical rendering.
func ReverseProjections(projections []sql.Expression) map[string]sql.Expression {
	m := make(map[string]sql.Expression, len(projections))
	for _, e := range projections {
		switch e := e.(type) {
		case *expression.Alias:
			m[e.Name()] = e.Child
		case *expression.Variable:
			m[e.Name()] = e
		default:
			m[e.String()] = e
		}
	}
	return m
}

// ArgumentIds builds the pass-through argument set of a projection boundary
// from canonical identities.
func ArgumentIds(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Variables returns the names of all variables referenced by e, in walk
// order, without duplicates.
func Variables(e sql.Expression) []string {
	var names []string
	seen := map[string]struct{}{}
	expression.Inspect(e, func(e sql.Expression) bool {
		if v, ok := e.(*expression.Variable); ok {
			if _, ok := seen[v.Name()]; !ok {
				seen[v.Name()] = struct{}{}
				names = append(names, v.Name())
			}
			return false
		}
		return true
	})
	return names
}
