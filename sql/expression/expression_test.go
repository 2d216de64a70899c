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

func TestExpressionStrings(t *testing.T) {
	var testCases = []struct {
		expr     sql.Expression
		expected string
	}{
		{NewVariable("x"), "x"},
		{NewProperty(NewVariable("n"), "age"), "n.age"},
		{NewProperty(NewProperty(NewVariable("n"), "a"), "b"), "n.a.b"},
		{NewLiteral(nil), "NULL"},
		{NewLiteral("foo"), `"foo"`},
		{NewLiteral(int64(42)), "42"},
		{NewLiteral(2.5), "2.5"},
		{NewLiteral(true), "true"},
		{NewAlias("age", NewProperty(NewVariable("n"), "age")), "n.age as age"},
		{NewPlus(NewVariable("a"), NewVariable("b")), "(a + b)"},
		{NewMinus(NewVariable("a"), NewVariable("b")), "(a - b)"},
		{NewMult(NewVariable("a"), NewVariable("b")), "(a * b)"},
		{NewDiv(NewVariable("a"), NewVariable("b")), "(a / b)"},
		{NewMod(NewVariable("a"), NewVariable("b")), "(a % b)"},
		{NewFunction("length", NewProperty(NewVariable("n"), "name")), "length(n.name)"},
		{NewFunction("now"), "now()"},
		{NewFunction("concat", NewVariable("a"), NewVariable("b")), "concat(a, b)"},
		{NewStar(), "*"},
	}

	for _, tt := range testCases {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.expr.String())
		})
	}
}

func TestAccessors(t *testing.T) {
	require := require.New(t)

	v := NewVariable("n")
	require.Equal("n", v.Name())

	p := NewProperty(v, "age")
	require.Equal("age", p.Name())
	require.Equal(v, p.Subject())

	a := NewAlias("total", NewVariable("t"))
	require.Equal("total", a.Name())

	f := NewFunction("length", NewVariable("s"))
	require.Equal("length", f.Name())

	l := NewLiteral(int64(7))
	require.Equal(int64(7), l.Value())
}

func TestWithChildren(t *testing.T) {
	require := require.New(t)

	v := NewVariable("x")
	same, err := v.WithChildren()
	require.NoError(err)
	require.Equal(v, same)

	_, err = v.WithChildren(NewLiteral(int64(1)))
	require.True(sql.ErrInvalidChildrenNumber.Is(err))

	p := NewProperty(NewVariable("n"), "age")
	rebuilt, err := p.WithChildren(NewVariable("m"))
	require.NoError(err)
	require.Equal("m.age", rebuilt.String())

	_, err = p.WithChildren()
	require.True(sql.ErrInvalidChildrenNumber.Is(err))

	a := NewAlias("age", NewProperty(NewVariable("n"), "age"))
	rebuilt, err = a.WithChildren(NewVariable("x"))
	require.NoError(err)
	require.Equal("x as age", rebuilt.String())

	sum := NewPlus(NewVariable("a"), NewVariable("b"))
	rebuilt, err = sum.WithChildren(NewVariable("c"), NewVariable("d"))
	require.NoError(err)
	require.Equal("(c + d)", rebuilt.String())

	_, err = sum.WithChildren(NewVariable("c"))
	require.True(sql.ErrInvalidChildrenNumber.Is(err))

	f := NewFunction("concat", NewVariable("a"), NewVariable("b"))
	rebuilt, err = f.WithChildren(NewVariable("x"), NewVariable("y"))
	require.NoError(err)
	require.Equal("concat(x, y)", rebuilt.String())

	_, err = f.WithChildren(NewVariable("x"))
	require.True(sql.ErrInvalidChildrenNumber.Is(err))

	s := NewStar()
	same, err = s.WithChildren()
	require.NoError(err)
	require.Equal(s, same)
}

func TestEquals(t *testing.T) {
	require := require.New(t)

	require.True(Equals(NewVariable("x"), NewVariable("x")))
	require.False(Equals(NewVariable("x"), NewVariable("y")))

	// identity is textual, not structural
	require.True(Equals(
		NewProperty(NewVariable("n"), "age"),
		NewProperty(NewVariable("n"), "age"),
	))
	require.True(Equals(NewLiteral("x"), NewLiteral("x")))
	require.False(Equals(NewLiteral("x"), NewVariable("x")))

	require.True(Equals(nil, nil))
	require.False(Equals(NewVariable("x"), nil))
	require.False(Equals(nil, NewVariable("x")))
}
