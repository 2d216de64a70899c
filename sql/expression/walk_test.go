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
	"testing"

	"github.com/dolthub/go-planorder/sql"
	"github.com/stretchr/testify/require"
)

func TestWalk(t *testing.T) {
	lit := NewLiteral(int64(1))
	n := NewVariable("n")
	prop := NewProperty(n, "age")
	sum := NewPlus(prop, lit)
	alias := NewAlias("total", sum)

	var f visitor
	var visited []sql.Expression
	f = func(expr sql.Expression) Visitor {
		visited = append(visited, expr)
		return f
	}

	Walk(f, alias)

	require.Equal(t,
		[]sql.Expression{alias, sum, prop, n, nil, nil, lit, nil, nil, nil},
		visited,
	)

	visited = nil
	f = func(expr sql.Expression) Visitor {
		visited = append(visited, expr)
		if _, ok := expr.(*Arithmetic); ok {
			return nil
		}
		return f
	}

	Walk(f, alias)

	require.Equal(t,
		[]sql.Expression{alias, sum, nil},
		visited,
	)
}

type visitor func(sql.Expression) Visitor

func (f visitor) Visit(e sql.Expression) Visitor {
	return f(e)
}

func TestInspect(t *testing.T) {
	prop := NewProperty(NewVariable("n"), "age")
	sum := NewPlus(prop, NewLiteral(int64(1)))

	var names []string
	Inspect(sum, func(e sql.Expression) bool {
		if v, ok := e.(*Variable); ok {
			names = append(names, v.Name())
			return false
		}
		return true
	})

	require.Equal(t, []string{"n"}, names)
}
