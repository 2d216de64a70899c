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

// Package planorder is an embeddable order-requirement tracker for query
// planners. It parses ORDER BY style requirements, rewrites them across
// projection boundaries, and decides whether the order a plan operator
// provides makes an explicit sort unnecessary.
package planorder

import (
	"github.com/dolthub/go-planorder/sql"
	"github.com/dolthub/go-planorder/sql/ordering"
	"github.com/dolthub/go-planorder/sql/parse"
	"github.com/dolthub/go-planorder/sql/planner"
)

// Engine ties the textual front end to order tracking for one query.
type Engine struct {
	Planner *planner.Planner
}

// New creates a new Engine.
func New() *Engine {
	return &Engine{Planner: planner.New()}
}

// RequiredOrder parses an ORDER BY list into an order that requires it.
// projections is the projection list of the query, used to resolve ordinal
// sort keys; pass the empty string when there is none.
func (e *Engine) RequiredOrder(ctx *sql.Context, orderBy, projections string) (ordering.InterestingOrder, error) {
	candidate, err := parse.ParseOrderBy(ctx, orderBy)
	if err != nil {
		return ordering.InterestingOrder{}, err
	}

	exprs, err := parse.ParseProjections(ctx, projections)
	if err != nil {
		return ordering.InterestingOrder{}, err
	}

	candidate, err = planner.ResolveOrdinals(candidate, exprs)
	if err != nil {
		return ordering.InterestingOrder{}, err
	}

	return ordering.NewRequired(candidate), nil
}

// InterestedIn parses an ORDER BY list and appends it to ord as its least
// preferred interesting candidate.
func (e *Engine) InterestedIn(ctx *sql.Context, ord ordering.InterestingOrder, orderBy string) (ordering.InterestingOrder, error) {
	candidate, err := parse.ParseOrderBy(ctx, orderBy)
	if err != nil {
		return ord, err
	}

	return ord.Interested(candidate.AsInteresting()), nil
}

// ProvidedOrder parses an ORDER BY list into the order a plan operator
// guarantees on its output.
func (e *Engine) ProvidedOrder(ctx *sql.Context, orderBy string) (ordering.ProvidedOrder, error) {
	return parse.ParseProvidedOrder(ctx, orderBy)
}

// CrossProjection parses a projection list and rewrites ord in terms of its
// output. arguments name pass-through identities whose columns survive the
// boundary unchanged.
func (e *Engine) CrossProjection(ctx *sql.Context, ord ordering.InterestingOrder, projections string, arguments ...string) (ordering.InterestingOrder, error) {
	exprs, err := parse.ParseProjections(ctx, projections)
	if err != nil {
		return ord, err
	}

	return e.Planner.CrossProjection(
		ctx,
		ord,
		planner.ReverseProjections(exprs),
		planner.ArgumentIds(arguments...),
	), nil
}

// Satisfied reports whether provided is sufficient for ord's requirement.
func (e *Engine) Satisfied(ctx *sql.Context, ord ordering.InterestingOrder, provided ordering.ProvidedOrder) bool {
	return e.Planner.Satisfied(ctx, ord, provided)
}
