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
)

func TestSplitIdentity(t *testing.T) {
	require := require.New(t)

	variable, property, ok := SplitIdentity("n.prop")
	require.True(ok)
	require.Equal("n", variable)
	require.Equal("prop", property)

	_, _, ok = SplitIdentity("n")
	require.False(ok)

	// only the first dot splits
	variable, property, ok = SplitIdentity("a.b.c")
	require.True(ok)
	require.Equal("a", variable)
	require.Equal("b.c", property)
}
