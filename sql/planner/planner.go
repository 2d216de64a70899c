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

// Package planner orchestrates order tracking for one query being planned:
// carrying InterestingOrder values across projection boundaries, resolving
// ordinal sort keys against projection lists, and answering satisfaction
// questions with memoized results.
package planner

import (
	"os"
	"sync"

	opentracing "github.com/opentracing/opentracing-go"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/go-planorder/sql"
	"github.com/dolthub/go-planorder/sql/ordering"
)

const debugPlannerKey = "DEBUG_PLANNER"

// Planner tracks order requirements for a query being planned. The order
// values themselves are immutable; the planner only adds tracing, debug
// logging and a satisfaction memo on top of them.
type Planner struct {
	// Whether to log various debugging messages.
	Debug bool

	id        uuid.UUID
	mu        *sync.Mutex
	pid       uint64
	satisfied map[satisfactionKey]bool
}

// satisfactionKey identifies a satisfaction question by the hashes of both
// of its sides.
type satisfactionKey struct {
	required uint64
	provided uint64
}

// New creates a Planner. Debug logging is enabled when the DEBUG_PLANNER
// environment variable is set.
func New() *Planner {
	_, debug := os.LookupEnv(debugPlannerKey)
	return &Planner{
		Debug:     debug,
		id:        uuid.NewV4(),
		mu:        new(sync.Mutex),
		satisfied: make(map[satisfactionKey]bool),
	}
}

// ID returns the unique id of this planner.
func (p *Planner) ID() uuid.UUID { return p.id }

func (p *Planner) nextPid() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pid++
	return p.pid
}

// NewQueryContext derives a context for planning one query: it carries the
// next pid, the query text, and a root span every span opened during
// planning becomes part of. Pass the result to Done when planning finishes.
func (p *Planner) NewQueryContext(ctx *sql.Context, query string) *sql.Context {
	span, qctx := ctx.Span("query", opentracing.Tag{Key: "query", Value: query})
	sql.WithPid(p.nextPid())(qctx)
	sql.WithQuery(query)(qctx)
	sql.WithRootSpan(span)(qctx)
	return qctx
}

// Done finishes the root span of a context created by NewQueryContext. It is
// a no-op on contexts without one.
func (p *Planner) Done(ctx *sql.Context) {
	if span := ctx.RootSpan(); span != nil {
		span.Finish()
	}
}

// Log prints an INFO message with the planner id, and the pid and query of
// the context when set, if the planner is in debug mode.
func (p *Planner) Log(ctx *sql.Context, msg string, args ...interface{}) {
	if p != nil && p.Debug {
		log := logrus.WithField("planner", p.id)
		if pid := ctx.Pid(); pid != 0 {
			log = log.WithField("pid", pid)
		}
		if query := ctx.Query(); query != "" {
			log = log.WithField("query", query)
		}
		log.Infof(msg, args...)
	}
}

// CrossProjection rewrites ord across a projection boundary.
// projectExpressions maps each output variable name to the expression that
// produces it; argumentIds names the untouched pass-through arguments by
// canonical identity.
func (p *Planner) CrossProjection(
	ctx *sql.Context,
	ord ordering.InterestingOrder,
	projectExpressions map[string]sql.Expression,
	argumentIds map[string]struct{},
) ordering.InterestingOrder {
	span, _ := ctx.Span("planner.cross_projection")
	defer span.Finish()

	p.Log(ctx, "crossing projection boundary with %s", ord)
	result := ord.WithReverseProjectedColumns(projectExpressions, argumentIds)
	p.Log(ctx, "order after projection boundary: %s", result)

	return result
}

// Satisfied reports whether provided is sufficient for the required side of
// ord. Answers are memoized per planner, keyed by the hashes of both sides;
// if either side fails to hash the check runs directly.
func (p *Planner) Satisfied(ctx *sql.Context, ord ordering.InterestingOrder, provided ordering.ProvidedOrder) bool {
	span, _ := ctx.Span("planner.satisfied")
	defer span.Finish()

	requiredHash, err := ord.Required().Hash()
	if err != nil {
		return ord.SatisfiedBy(provided)
	}

	providedHash, err := provided.Hash()
	if err != nil {
		return ord.SatisfiedBy(provided)
	}

	key := satisfactionKey{required: requiredHash, provided: providedHash}

	p.mu.Lock()
	satisfied, ok := p.satisfied[key]
	p.mu.Unlock()
	if ok {
		p.Log(ctx, "satisfaction of [%s] by [%s] answered from memo: %t", ord.Required(), provided, satisfied)
		return satisfied
	}

	satisfied = ord.SatisfiedBy(provided)

	p.mu.Lock()
	p.satisfied[key] = satisfied
	p.mu.Unlock()

	p.Log(ctx, "satisfaction of [%s] by [%s]: %t", ord.Required(), provided, satisfied)
	return satisfied
}
