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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-planorder/sql"
	"github.com/dolthub/go-planorder/sql/expression"
)

func TestDirectionString(t *testing.T) {
	require := require.New(t)
	require.Equal("ASC", Ascending.String())
	require.Equal("DESC", Descending.String())
	require.Equal("invalid Direction", Direction(0).String())
}

func TestColumnOrderFactories(t *testing.T) {
	require := require.New(t)

	age := expression.NewProperty(expression.NewVariable("n"), "age")

	col := Asc("n.age", age, nil)
	require.Equal(Ascending, col.Direction)
	require.Equal("n.age", col.ID)
	require.Equal(age, col.Expression)
	require.Empty(col.Projections)

	col = Desc("n.age", age, nil)
	require.Equal(Descending, col.Direction)
}

func TestColumnOrderProjected(t *testing.T) {
	require := require.New(t)

	x := expression.NewVariable("x")
	yProp := expression.NewProperty(expression.NewVariable("y"), "prop")

	col := Asc("x", x, nil)
	projected := col.Projected(x, map[string]sql.Expression{"x": yProp})

	require.Equal(Ascending, projected.Direction)
	require.Equal("x", projected.ID)
	require.Equal(x, projected.Expression)
	require.Equal(yProp, projected.Projections["x"])

	// the original column is untouched
	require.Empty(col.Projections)
}

func TestColumnOrderEquals(t *testing.T) {
	require := require.New(t)

	x := expression.NewVariable("x")
	col := Asc("x", x, nil)

	require.True(col.Equals(Asc("x", expression.NewVariable("x"), nil)))
	require.False(col.Equals(Desc("x", x, nil)))
	require.False(col.Equals(Asc("y", x, nil)))
	require.False(col.Equals(Asc("x", expression.NewVariable("y"), nil)))
	require.False(col.Equals(Asc("x", x, map[string]sql.Expression{"x": x})))
}

func TestColumnOrderString(t *testing.T) {
	require := require.New(t)

	age := expression.NewProperty(expression.NewVariable("n"), "age")
	require.Equal("n.age ASC", Asc("n.age", age, nil).String())
	require.Equal("total DESC", Desc("total", expression.NewVariable("total"), nil).String())
}
