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

package main

import (
	"fmt"

	planorder "github.com/dolthub/go-planorder"
	"github.com/dolthub/go-planorder/sql"
)

// Example of tracking the ORDER BY requirement of a query across a
// projection boundary and checking which candidate plans satisfy it:
//
// ```
// > go run main.go
// required: age ASC; interesting: n.name ASC
// required: age ASC
// index scan satisfies: true
// table scan satisfies: false
// ```
func main() {
	e := planorder.New()
	ctx := e.Planner.NewQueryContext(sql.NewEmptyContext(),
		"select n.age as age from people order by age")
	defer e.Planner.Done(ctx)

	// The query projects n.age AS age and sorts on the output column.
	ord, err := e.RequiredOrder(ctx, "age asc", "n.age as age")
	if err != nil {
		panic(err)
	}

	// A DISTINCT upstream would also benefit from rows grouped by name.
	ord, err = e.InterestedIn(ctx, ord, "n.name asc")
	if err != nil {
		panic(err)
	}
	fmt.Println(ord)

	// Restate the requirements in terms of the projection input. The
	// interesting candidate cannot be restated and falls away.
	ord, err = e.CrossProjection(ctx, ord, "n.age as age")
	if err != nil {
		panic(err)
	}
	fmt.Println(ord)

	byAge, err := e.ProvidedOrder(ctx, "n.age asc")
	if err != nil {
		panic(err)
	}
	unsorted, err := e.ProvidedOrder(ctx, "")
	if err != nil {
		panic(err)
	}

	fmt.Println("index scan satisfies:", e.Satisfied(ctx, ord, byAge))
	fmt.Println("table scan satisfies:", e.Satisfied(ctx, ord, unsorted))
}
