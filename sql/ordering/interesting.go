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

// Package ordering tracks, propagates and verifies the sort-order
// requirements of a logical plan as it is built bottom-up. An
// InterestingOrder value travels with the plan under construction: crossing
// a projection boundary rewrites it in terms of the new output variables,
// and checking it against the order a plan operator actually provides
// decides whether an explicit sort can be skipped.
//
// Everything in this package is an immutable value. Operations return new
// values and never mutate their receiver, so orders attached to different
// plan alternatives can be derived and checked concurrently without
// coordination.
package ordering

import (
	"fmt"
	"strings"
)

// InterestingOrder aggregates the order requirements known for a plan node:
// at most one required candidate, which results must satisfy, plus any
// number of interesting candidates that only bias plan selection. The zero
// value is the empty order.
type InterestingOrder struct {
	required    RequiredOrderCandidate
	interesting []InterestingOrderCandidate
}

// NewRequired creates an InterestingOrder carrying the given requirement and
// no interesting candidates.
func NewRequired(candidate RequiredOrderCandidate) InterestingOrder {
	return InterestingOrder{required: candidate}
}

// NewInterested creates an InterestingOrder with no requirement and the
// given candidate as its only interesting one.
func NewInterested(candidate InterestingOrderCandidate) InterestingOrder {
	return InterestingOrder{interesting: []InterestingOrderCandidate{candidate}}
}

// Required returns the required candidate.
func (o InterestingOrder) Required() RequiredOrderCandidate {
	return o.required
}

// Interesting returns the interesting candidates in preference order, most
// preferred first.
func (o InterestingOrder) Interesting() []InterestingOrderCandidate {
	return o.interesting
}

// Interested returns a new order with candidate appended after the existing
// interesting candidates. The list is append-only and overlapping
// candidates are not merged, so consumers may rely on candidate order and
// multiplicity.
func (o InterestingOrder) Interested(candidate InterestingOrderCandidate) InterestingOrder {
	interesting := make([]InterestingOrderCandidate, len(o.interesting), len(o.interesting)+1)
	copy(interesting, o.interesting)
	return InterestingOrder{
		required:    o.required,
		interesting: append(interesting, candidate),
	}
}

// AsInteresting demotes the required candidate to the least preferred
// interesting candidate, leaving no requirement. Demoting an order that has
// no requirement is a no-op.
func (o InterestingOrder) AsInteresting() InterestingOrder {
	if o.required.IsEmpty() {
		return o
	}
	demoted := o.Interested(o.required.AsInteresting())
	demoted.required = RequiredOrderCandidate{}
	return demoted
}

// IsEmpty reports whether the order carries no constraint at all: the
// required candidate is empty and so is every interesting candidate.
func (o InterestingOrder) IsEmpty() bool {
	if !o.required.IsEmpty() {
		return false
	}
	for _, candidate := range o.interesting {
		if !candidate.IsEmpty() {
			return false
		}
	}
	return true
}

func (o InterestingOrder) String() string {
	if o.IsEmpty() {
		return "no ordering"
	}

	var parts []string
	if !o.required.IsEmpty() {
		parts = append(parts, fmt.Sprintf("required: %s", o.required))
	}
	for _, candidate := range o.interesting {
		if candidate.IsEmpty() {
			continue
		}
		parts = append(parts, fmt.Sprintf("interesting: %s", candidate))
	}
	return strings.Join(parts, "; ")
}
