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

package intervaldict_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/intervaldict"
	"github.com/bufbuild/intervaldict/interval"
)

func intBiDict(triples ...intervaldict.Triple[string, int, int]) *intervaldict.BiDict[string, int, int] {
	return intervaldict.BiFromTriples(interval.Integer[int](), triples)
}

// checkMirror asserts that forward and inverse lookups agree at every point
// of the probe range.
func checkMirror(t *testing.T, b *intervaldict.BiDict[string, int, int], lo, hi int) {
	t.Helper()
	for pt := lo; pt <= hi; pt++ {
		for _, key := range b.Keys() {
			for _, v := range b.Find(key, interval.Point(pt)) {
				require.Contains(t, b.FindValue(v, interval.Point(pt)), key, "point %d", pt)
			}
		}
		for _, v := range b.Values() {
			for _, key := range b.FindValue(v, interval.Point(pt)) {
				require.Contains(t, b.Find(key, interval.Point(pt)), v, "point %d", pt)
			}
		}
	}
}

func TestBiDictInsert(t *testing.T) {
	t.Parallel()

	b := intervaldict.NewBi[string, int](interval.Integer[int]())
	require.NoError(t, b.Insert("a", 1, interval.Closed(0, 9)))
	require.NoError(t, b.Insert("b", 1, interval.Closed(5, 14)))
	require.NoError(t, b.InverseInsert(2, "a", interval.Closed(0, 4)))

	assert.Equal(t, []int{1, 2}, b.Find("a", interval.Closed(0, 20)))
	assert.Equal(t, []string{"a", "b"}, b.FindValue(1, interval.Closed(0, 20)))
	assert.Equal(t, []string{"a"}, b.FindValue(1, interval.Closed(0, 4)))
	assert.Equal(t, []int{1, 2}, b.FindKeys([]string{"a", "b"}, interval.Closed(0, 20)))

	assert.Equal(t, []string{"a", "b"}, b.Keys())
	assert.Equal(t, []int{1, 2}, b.Values())
	assert.Equal(t, 2, b.Len())
	assert.False(t, b.Empty())
	checkMirror(t, b, 0, 20)
}

func TestBiDictErase(t *testing.T) {
	t.Parallel()

	b := intBiDict(
		tr("a", 1, 0, 9),
		tr("a", 2, 0, 9),
		tr("b", 1, 0, 9),
	)

	require.NoError(t, b.Erase("a", 1, interval.Closed(0, 4)))
	assert.Equal(t, []int{2}, b.Find("a", interval.Closed(0, 4)))
	assert.Equal(t, []string{"b"}, b.FindValue(1, interval.Closed(0, 4)))
	checkMirror(t, b, 0, 9)

	require.NoError(t, b.EraseKey("a", interval.Closed(0, 4)))
	assert.Empty(t, b.Find("a", interval.Closed(0, 4)))
	assert.Empty(t, b.FindValue(2, interval.Closed(0, 4)))
	assert.Equal(t, []int{1, 2}, b.Find("a", interval.Closed(5, 9)))
	checkMirror(t, b, 0, 9)

	require.NoError(t, b.EraseValue(1, interval.Extent[int]()))
	assert.Empty(t, b.FindValue(1, interval.Extent[int]()))
	assert.Equal(t, []int{2}, b.Find("a", interval.Extent[int]()))
	assert.False(t, slices.Contains(b.Keys(), "b"))
	checkMirror(t, b, 0, 9)
}

func TestBiDictAtomicity(t *testing.T) {
	t.Parallel()

	b := intervaldict.NewBi[string, int](interval.Integer[int]())
	b.MaxSlices = 2
	require.NoError(t, b.Insert("a", 1, interval.Closed(0, 9)))

	// Splitting [0, 9] into three slices exceeds the cap; neither side may
	// change.
	err := b.Insert("a", 2, interval.Closed(5, 14))
	require.ErrorIs(t, err, intervaldict.ErrSliceLimit)
	assert.Equal(t, []int{1}, b.Find("a", interval.Extent[int]()))
	assert.Empty(t, b.FindValue(2, interval.Extent[int]()))

	// A batch over the cap is rejected wholesale.
	err = b.InsertTriples([]intervaldict.Triple[string, int, int]{
		tr("b", 1, 0, 9),
		tr("c", 1, 20, 29),
	})
	require.ErrorIs(t, err, intervaldict.ErrSliceLimit)
	assert.Equal(t, []string{"a"}, b.Keys())
}

func TestBiDictEnumerate(t *testing.T) {
	t.Parallel()

	b := intBiDict(
		tr("a", 1, 0, 9),
		tr("b", 1, 5, 14),
	)

	var fwd []string
	for s := range b.DisjointIntervals(interval.Extent[int]()) {
		fwd = append(fwd, s.Key)
	}
	assert.Equal(t, []string{"a", "b"}, fwd)

	var inv []int
	for s := range b.InverseDisjointIntervals(interval.Extent[int]()) {
		inv = append(inv, s.Key)
	}
	assert.Equal(t, []int{1, 1, 1}, inv)
}

func TestBiDictInvert(t *testing.T) {
	t.Parallel()

	b := intBiDict(tr("a", 1, 0, 9), tr("b", 2, 5, 14))
	inv := b.Invert()

	assert.Equal(t, []string{"a"}, inv.Find(1, interval.Closed(0, 9)))
	assert.Equal(t, []int{2}, inv.FindValue("b", interval.Closed(5, 14)))
	assert.True(t, b.Equal(inv.Invert()))
}

func TestBiDictSnapshots(t *testing.T) {
	t.Parallel()

	b := intBiDict(tr("a", 1, 0, 9))
	fwd, inv := b.Forward(), b.Inverse()
	snap := b.Clone()

	require.NoError(t, b.Insert("a", 2, interval.Closed(0, 9)))

	assert.Equal(t, []int{1}, fwd.Find("a", interval.Extent[int]()))
	assert.Equal(t, []string{"a"}, inv.Find(1, interval.Extent[int]()))
	assert.Equal(t, []int{1}, snap.Find("a", interval.Closed(0, 9)))
	assert.Equal(t, []int{1, 2}, b.Find("a", interval.Closed(0, 9)))
}

func TestBiDictClear(t *testing.T) {
	t.Parallel()

	b := intBiDict(tr("a", 1, 0, 9))
	b.Clear()
	assert.True(t, b.Empty())
	assert.Empty(t, b.Values())
}

func TestBiDictAlgebra(t *testing.T) {
	t.Parallel()

	a := intBiDict(tr("x", 1, 0, 9))
	b := intBiDict(tr("x", 2, 5, 14))

	merged := intervaldict.MergeBi(a, b)
	assert.Equal(t, []int{1, 2}, merged.Find("x", interval.Point(7)))
	assert.Equal(t, []string{"x"}, merged.FindValue(2, interval.Point(12)))
	checkMirror(t, merged, 0, 14)

	both := intervaldict.IntersectBi(merged, a)
	assert.Equal(t, []int{1}, both.Find("x", interval.Extent[int]()))
	checkMirror(t, both, 0, 14)

	rest := intervaldict.SubtractBi(merged, a)
	assert.Equal(t, []int{2}, rest.Find("x", interval.Extent[int]()))
	assert.True(t, rest.Equal(b))
	checkMirror(t, rest, 0, 14)
}

func TestBiDictString(t *testing.T) {
	t.Parallel()

	b := intBiDict(tr("a", 1, 0, 4))
	assert.Equal(t, "a\t[1]\t[0, 4]\n", b.String())
}
