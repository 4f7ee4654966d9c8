// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package intervaldict

import (
	"cmp"

	"github.com/bufbuild/intervaldict/interval"
)

// Pair is a key-value association, used by batch operations that apply many
// associations over a single interval.
type Pair[K cmp.Ordered, V cmp.Ordered] struct {
	Key   K
	Value V
}

// Triple is a single (key, value, interval) association, the unit that
// dictionaries are built from and enumerated as.
type Triple[K cmp.Ordered, V cmp.Ordered, T any] struct {
	Key      K
	Value    V
	Interval interval.Interval[T]
}

// Slice is one element of a key's canonical disjoint partition: the set of
// values associated with the key over one maximal interval.
//
// For a fixed key the slices yielded by [Dict.DisjointIntervals] are
// pairwise disjoint, ascending, and no two interval-adjacent slices carry
// the same value set.
type Slice[K cmp.Ordered, V cmp.Ordered, T any] struct {
	Key      K
	Values   []V
	Interval interval.Interval[T]
}

// Direction selects which flank of a gap [Dict.ExtendIntoGaps] copies
// values from. It is a bit set; [Both] fills with the union of both flanks.
type Direction int

const (
	// Backwards extends the slice following a gap backwards into it.
	Backwards Direction = 1 << iota
	// Forwards extends the slice preceding a gap forwards into it.
	Forwards

	// Both extends from both flanks, filling the gap with the union of the
	// two value sets.
	Both = Backwards | Forwards
)
