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
	"iter"

	"github.com/bufbuild/intervaldict/interval"
)

// BiDict is a pair of mirrored dictionaries: a forward Key→Value mapping
// and its inverse Value→Key mapping, kept consistent under every mutation.
// Lookups in either direction cost the same.
//
// Mutations are atomic with respect to the pairing: the forward side is
// applied first and the symmetric operation second, but both are staged
// and committed together, so a failure (the slice cap, see
// [Dict.MaxSlices]) leaves neither side changed and no observer ever sees
// one side updated without the other.
type BiDict[K cmp.Ordered, V cmp.Ordered, T any] struct {
	// MaxSlices caps the number of stored slices on each side. Zero means
	// no cap. See [Dict.MaxSlices].
	MaxSlices int

	fwd *Dict[K, V, T]
	inv *Dict[V, K, T]
}

// NewBi returns an empty bidirectional dictionary over the given domain.
func NewBi[K cmp.Ordered, V cmp.Ordered, T any](domain interval.Domain[T]) *BiDict[K, V, T] {
	return &BiDict[K, V, T]{
		fwd: New[K, V](domain),
		inv: New[V, K](domain),
	}
}

// BiFromTriples builds both sides from a sequence of forward associations
// in one pass.
func BiFromTriples[K cmp.Ordered, V cmp.Ordered, T any](
	domain interval.Domain[T],
	triples []Triple[K, V, T],
) *BiDict[K, V, T] {
	b := NewBi[K, V](domain)
	for _, tr := range triples {
		b.fwd.rawInsert(tr.Key, tr.Value, tr.Interval)
		b.inv.rawInsert(tr.Value, tr.Key, tr.Interval)
	}
	return b
}

// Insert associates value with key over iv, in both directions.
func (b *BiDict[K, V, T]) Insert(key K, value V, iv interval.Interval[T]) error {
	return b.stage(func(fwd *Dict[K, V, T], inv *Dict[V, K, T]) {
		fwd.rawInsert(key, value, iv)
		inv.rawInsert(value, key, iv)
	})
}

// InsertTriples applies a batch of forward associations as one atomic
// mutation.
func (b *BiDict[K, V, T]) InsertTriples(triples []Triple[K, V, T]) error {
	return b.stage(func(fwd *Dict[K, V, T], inv *Dict[V, K, T]) {
		for _, tr := range triples {
			fwd.rawInsert(tr.Key, tr.Value, tr.Interval)
			inv.rawInsert(tr.Value, tr.Key, tr.Interval)
		}
	})
}

// InverseInsert is [BiDict.Insert] with the association stated in
// value-first order, for callers batch-loading inverted data.
func (b *BiDict[K, V, T]) InverseInsert(value V, key K, iv interval.Interval[T]) error {
	return b.Insert(key, value, iv)
}

// Erase removes the association of value with key over iv from both
// directions.
func (b *BiDict[K, V, T]) Erase(key K, value V, iv interval.Interval[T]) error {
	return b.stage(func(fwd *Dict[K, V, T], inv *Dict[V, K, T]) {
		fwd.rawErase(key, value, iv)
		inv.rawErase(value, key, iv)
	})
}

// EraseTriples applies a batch of erasures as one atomic mutation.
func (b *BiDict[K, V, T]) EraseTriples(triples []Triple[K, V, T]) error {
	return b.stage(func(fwd *Dict[K, V, T], inv *Dict[V, K, T]) {
		for _, tr := range triples {
			fwd.rawErase(tr.Key, tr.Value, tr.Interval)
			inv.rawErase(tr.Value, tr.Key, tr.Interval)
		}
	})
}

// EraseKey removes every value associated with key over iv; the removed
// associations are mirrored out of the inverse side.
func (b *BiDict[K, V, T]) EraseKey(key K, iv interval.Interval[T]) error {
	return b.stage(func(fwd *Dict[K, V, T], inv *Dict[V, K, T]) {
		for _, s := range fwd.rawEraseKey(key, iv) {
			for _, v := range s.vals {
				inv.rawErase(v, key, s.iv)
			}
		}
	})
}

// EraseValue removes every key associated with value over iv, mirroring
// the removals out of the forward side.
func (b *BiDict[K, V, T]) EraseValue(value V, iv interval.Interval[T]) error {
	return b.stage(func(fwd *Dict[K, V, T], inv *Dict[V, K, T]) {
		for _, s := range inv.rawEraseKey(value, iv) {
			for _, k := range s.vals {
				fwd.rawErase(k, value, s.iv)
			}
		}
	})
}

// Clear removes everything from both sides.
func (b *BiDict[K, V, T]) Clear() {
	b.fwd.Clear()
	b.inv.Clear()
}

// Find returns the sorted values associated with key at any point of
// query.
func (b *BiDict[K, V, T]) Find(key K, query interval.Interval[T]) []V {
	return b.fwd.Find(key, query)
}

// FindKeys returns the sorted union of values associated with any of the
// keys at any point of query.
func (b *BiDict[K, V, T]) FindKeys(keys []K, query interval.Interval[T]) []V {
	return b.fwd.FindKeys(keys, query)
}

// FindValue looks up the inverse direction: the sorted keys associated
// with value at any point of query.
func (b *BiDict[K, V, T]) FindValue(value V, query interval.Interval[T]) []K {
	return b.inv.Find(value, query)
}

// DisjointIntervals enumerates the forward partition; see
// [Dict.DisjointIntervals].
func (b *BiDict[K, V, T]) DisjointIntervals(
	query interval.Interval[T],
	keys ...K,
) iter.Seq[Slice[K, V, T]] {
	return b.fwd.DisjointIntervals(query, keys...)
}

// InverseDisjointIntervals enumerates the inverse partition.
func (b *BiDict[K, V, T]) InverseDisjointIntervals(
	query interval.Interval[T],
	values ...V,
) iter.Seq[Slice[V, K, T]] {
	return b.inv.DisjointIntervals(query, values...)
}

// Keys returns all keys in sorted order.
func (b *BiDict[K, V, T]) Keys() []K { return b.fwd.Keys() }

// Values returns all values in sorted order.
func (b *BiDict[K, V, T]) Values() []V { return b.inv.Keys() }

// Len returns the number of keys.
func (b *BiDict[K, V, T]) Len() int { return b.fwd.Len() }

// Empty reports whether no associations exist.
func (b *BiDict[K, V, T]) Empty() bool { return b.fwd.Empty() }

// Forward returns a snapshot of the forward dictionary. It is a
// copy-on-write clone; mutating it does not disturb b.
func (b *BiDict[K, V, T]) Forward() *Dict[K, V, T] { return b.fwd.Clone() }

// Inverse returns a snapshot of the inverse dictionary.
func (b *BiDict[K, V, T]) Inverse() *Dict[V, K, T] { return b.inv.Clone() }

// Invert returns the bidirectional dictionary with the two directions
// swapped. Both sides already exist, so this is constant-time apart from
// the snapshot copies.
func (b *BiDict[K, V, T]) Invert() *BiDict[V, K, T] {
	return &BiDict[V, K, T]{MaxSlices: b.MaxSlices, fwd: b.inv.Clone(), inv: b.fwd.Clone()}
}

// Clone returns a copy that may diverge freely from b.
func (b *BiDict[K, V, T]) Clone() *BiDict[K, V, T] {
	return &BiDict[K, V, T]{MaxSlices: b.MaxSlices, fwd: b.fwd.Clone(), inv: b.inv.Clone()}
}

// Equal reports whether two bidirectional dictionaries encode the same
// relation. The inverse sides are equal exactly when the forward sides
// are, so only one direction is compared.
func (b *BiDict[K, V, T]) Equal(other *BiDict[K, V, T]) bool {
	return b.fwd.Equal(other.fwd)
}

// String renders the forward partition; see [Dict.String].
func (b *BiDict[K, V, T]) String() string { return b.fwd.String() }

// stage runs fn against clones of both sides and commits them together.
// If either side ends up over the slice cap nothing is committed and
// [ErrSliceLimit] is returned.
func (b *BiDict[K, V, T]) stage(fn func(*Dict[K, V, T], *Dict[V, K, T])) error {
	fwd, inv := b.fwd, b.inv
	if b.MaxSlices > 0 {
		fwd, inv = fwd.Clone(), inv.Clone()
	}
	fn(fwd, inv)
	if b.MaxSlices > 0 {
		if fwd.slices() > b.MaxSlices || inv.slices() > b.MaxSlices {
			return ErrSliceLimit
		}
	}
	b.fwd, b.inv = fwd, inv
	return nil
}

// MergeBi returns the pointwise union of two bidirectional dictionaries.
func MergeBi[K cmp.Ordered, V cmp.Ordered, T any](a, b *BiDict[K, V, T]) *BiDict[K, V, T] {
	return fromForward(Merge(a.fwd, b.fwd))
}

// IntersectBi returns the pointwise intersection of two bidirectional
// dictionaries.
func IntersectBi[K cmp.Ordered, V cmp.Ordered, T any](a, b *BiDict[K, V, T]) *BiDict[K, V, T] {
	return fromForward(Intersect(a.fwd, b.fwd))
}

// SubtractBi returns a with every association of b removed from both
// sides.
func SubtractBi[K cmp.Ordered, V cmp.Ordered, T any](a, b *BiDict[K, V, T]) *BiDict[K, V, T] {
	return fromForward(Subtract(a.fwd, b.fwd))
}

func fromForward[K cmp.Ordered, V cmp.Ordered, T any](fwd *Dict[K, V, T]) *BiDict[K, V, T] {
	return &BiDict[K, V, T]{fwd: fwd, inv: fwd.Invert()}
}
