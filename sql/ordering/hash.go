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
	"github.com/mitchellh/hashstructure"
)

// hashedColumn is the hashable image of a ColumnOrder. Expressions hash by
// their canonical string, the same identity every other comparison in this
// package uses.
type hashedColumn struct {
	Direction   byte
	ID          string
	Expression  string
	Projections map[string]string
}

func hashColumns(columns []ColumnOrder) (uint64, error) {
	hashed := make([]hashedColumn, len(columns))
	for i, col := range columns {
		h := hashedColumn{
			Direction: byte(col.Direction),
			ID:        col.ID,
		}
		if col.Expression != nil {
			h.Expression = col.Expression.String()
		}
		if len(col.Projections) > 0 {
			h.Projections = make(map[string]string, len(col.Projections))
			for name, expr := range col.Projections {
				h.Projections[name] = expr.String()
			}
		}
		hashed[i] = h
	}
	return hashstructure.Hash(hashed, nil)
}

// Hash returns a hash of the column sequence, usable as a memo key.
// Structurally equal candidates hash equal.
func (c orderCandidate) Hash() (uint64, error) {
	return hashColumns(c.order)
}

// Hash returns a hash of the provided order, usable as a memo key.
func (p ProvidedOrder) Hash() (uint64, error) {
	return hashstructure.Hash(p.columns, nil)
}
