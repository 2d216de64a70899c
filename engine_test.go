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

package planorder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	planorder "github.com/dolthub/go-planorder"
	"github.com/dolthub/go-planorder/sql"
)

var satisfactionQueries = []struct {
	orderBy     string
	projections string
	provided    string
	satisfied   bool
}{
	{
		orderBy:   "n.age asc",
		provided:  "n.age asc",
		satisfied: true,
	},
	{
		orderBy:   "n.age asc",
		provided:  "n.age desc",
		satisfied: false,
	},
	{
		orderBy:   "n.age asc",
		provided:  "n.age asc, n.name desc",
		satisfied: true,
	},
	{
		orderBy:   "n.age asc, n.name desc",
		provided:  "n.age asc",
		satisfied: false,
	},
	{
		orderBy:   "",
		provided:  "n.name desc",
		satisfied: true,
	},
	{
		orderBy:     "2 desc",
		projections: "n.age as age, n.name as name",
		provided:    "name desc",
		satisfied:   true,
	},
	{
		orderBy:     "1 asc",
		projections: "n.age as age, n.name as name",
		provided:    "name asc",
		satisfied:   false,
	},
}

func TestEngineSatisfaction(t *testing.T) {
	e := planorder.New()
	ctx := sql.NewEmptyContext()

	for _, tt := range satisfactionQueries {
		t.Run(tt.orderBy+" by "+tt.provided, func(t *testing.T) {
			require := require.New(t)

			ord, err := e.RequiredOrder(ctx, tt.orderBy, tt.projections)
			require.NoError(err)

			provided, err := e.ProvidedOrder(ctx, tt.provided)
			require.NoError(err)

			require.Equal(tt.satisfied, e.Satisfied(ctx, ord, provided))
		})
	}
}

func TestEngineCrossProjection(t *testing.T) {
	require := require.New(t)

	e := planorder.New()
	ctx := sql.NewEmptyContext()

	ord, err := e.RequiredOrder(ctx, "age asc", "")
	require.NoError(err)

	ord, err = e.CrossProjection(ctx, ord, "n.age as age")
	require.NoError(err)

	provided, err := e.ProvidedOrder(ctx, "n.age asc")
	require.NoError(err)
	require.True(e.Satisfied(ctx, ord, provided))

	// a second boundary keeps following the rename chain
	ord, err = e.CrossProjection(ctx, ord, "m.birthday as n")
	require.NoError(err)

	provided, err = e.ProvidedOrder(ctx, "m.birthday.age asc")
	require.NoError(err)
	require.True(e.Satisfied(ctx, ord, provided))
}

func TestEngineCrossProjectionArguments(t *testing.T) {
	require := require.New(t)

	e := planorder.New()
	ctx := sql.NewEmptyContext()

	ord, err := e.RequiredOrder(ctx, "total asc", "")
	require.NoError(err)

	// total is not projected, but it is a pass-through argument
	crossed, err := e.CrossProjection(ctx, ord, "n.age as age", "total")
	require.NoError(err)
	require.Exactly(ord, crossed)

	dropped, err := e.CrossProjection(ctx, ord, "n.age as age")
	require.NoError(err)
	require.True(dropped.IsEmpty())
}

func TestEngineInterestedIn(t *testing.T) {
	require := require.New(t)

	e := planorder.New()
	ctx := sql.NewEmptyContext()

	ord, err := e.RequiredOrder(ctx, "n.age asc", "")
	require.NoError(err)

	ord, err = e.InterestedIn(ctx, ord, "n.name desc")
	require.NoError(err)

	require.Equal("required: n.age ASC; interesting: n.name DESC", ord.String())

	// interesting candidates never gate satisfaction
	provided, err := e.ProvidedOrder(ctx, "n.age asc")
	require.NoError(err)
	require.True(e.Satisfied(ctx, ord, provided))
}

func TestEngineParseErrors(t *testing.T) {
	require := require.New(t)

	e := planorder.New()
	ctx := sql.NewEmptyContext()

	_, err := e.RequiredOrder(ctx, "asc asc asc", "")
	require.Error(err)

	_, err = e.RequiredOrder(ctx, "3 asc", "n.age as age")
	require.Error(err)

	ord, err := e.RequiredOrder(ctx, "n.age asc", "")
	require.NoError(err)

	_, err = e.CrossProjection(ctx, ord, "*")
	require.Error(err)
}
