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
	"slices"

	"github.com/bufbuild/intervaldict/interval"
	"github.com/tidwall/btree"
)

// slice is one stored element of a partition. Both the interval and the
// value set are immutable once stored: mutations always replace a slice
// with fresh ones, which is what makes the copy-on-write [partition.clone]
// sound.
//
// Invariants: iv is normalized and nonempty; vals is sorted, deduplicated,
// and nonempty.
type slice[V cmp.Ordered, T any] struct {
	iv   interval.Interval[T]
	vals []V
}

// partition is the disjoint interval map for a single key: the minimal set
// of slices encoding a set-valued step function over the domain.
//
// Slices are kept in a btree ordered by lower endpoint. Since stored
// intervals never overlap, lower endpoints are unique and this order is
// total.
type partition[V cmp.Ordered, T any] struct {
	d  interval.Domain[T]
	tr *btree.BTreeG[*slice[V, T]]
}

func newPartition[V cmp.Ordered, T any](d interval.Domain[T]) *partition[V, T] {
	return &partition[V, T]{
		d: d,
		tr: btree.NewBTreeG(func(a, b *slice[V, T]) bool {
			return interval.CompareLower(d, a.iv, b.iv) < 0
		}),
	}
}

// clone returns a copy-on-write copy. The original and the clone may
// diverge freely afterwards.
func (p *partition[V, T]) clone() *partition[V, T] {
	return &partition[V, T]{d: p.d, tr: p.tr.Copy()}
}

func (p *partition[V, T]) count() int  { return p.tr.Len() }
func (p *partition[V, T]) empty() bool { return p.tr.Len() == 0 }

func (p *partition[V, T]) first() (*slice[V, T], bool) { return p.tr.Min() }
func (p *partition[V, T]) last() (*slice[V, T], bool)  { return p.tr.Max() }

// overlapping returns the stored slices intersecting n, ascending. n must
// be normalized and nonempty.
func (p *partition[V, T]) overlapping(n interval.Interval[T]) []*slice[V, T] {
	var out []*slice[V, T]
	it := p.tr.Iter()
	defer it.Release()

	// Seek to the first slice starting at or after n, then step back once:
	// the slice before may extend across n's lower bound.
	more := it.Seek(&slice[V, T]{iv: n})
	if !more {
		more = it.Last()
	} else if it.Prev() {
		more = true
	} else {
		more = it.First()
	}
	for ; more; more = it.Next() {
		s := it.Item()
		if interval.Intersects(p.d, s.iv, n) {
			out = append(out, s)
		} else if interval.CompareLower(p.d, s.iv, n) >= 0 {
			// Disjoint and starting at or after n: everything further is
			// past the query.
			break
		}
	}
	return out
}

// insert adds v to the value set of every point of iv, re-deriving the
// canonical partition. Overlapped slices are split at the overlap
// boundaries; uncovered portions of iv become fresh {v} slices.
func (p *partition[V, T]) insert(iv interval.Interval[T], v V) {
	n := interval.Normalize(p.d, iv)
	if interval.IsEmpty(p.d, n) {
		return
	}
	over := p.overlapping(n)
	pieces := make([]*slice[V, T], 0, 2*len(over)+1)
	remainder := []interval.Interval[T]{n}
	for _, s := range over {
		for _, rest := range interval.Subtract(p.d, s.iv, n) {
			pieces = append(pieces, &slice[V, T]{iv: rest, vals: s.vals})
		}
		shared := interval.Intersection(p.d, s.iv, n)
		pieces = append(pieces, &slice[V, T]{iv: shared, vals: addValue(s.vals, v)})

		var left []interval.Interval[T]
		for _, r := range remainder {
			left = append(left, interval.Subtract(p.d, r, s.iv)...)
		}
		remainder = left
	}
	// Whatever the existing slices did not cover had no associations at
	// all: it becomes coverage with just v.
	for _, r := range remainder {
		pieces = append(pieces, &slice[V, T]{iv: r, vals: []V{v}})
	}
	for _, s := range over {
		p.tr.Delete(s)
	}
	for _, s := range pieces {
		p.tr.Set(s)
	}
	p.coalesce(n)
}

// erase removes v from the value set of every point of iv. Slices whose
// value set empties out are dropped. Erasing an absent association is a
// no-op.
func (p *partition[V, T]) erase(iv interval.Interval[T], v V) {
	n := interval.Normalize(p.d, iv)
	if interval.IsEmpty(p.d, n) {
		return
	}
	var replaced, pieces []*slice[V, T]
	for _, s := range p.overlapping(n) {
		rest, found := removeValue(s.vals, v)
		if !found {
			continue
		}
		replaced = append(replaced, s)
		for _, keep := range interval.Subtract(p.d, s.iv, n) {
			pieces = append(pieces, &slice[V, T]{iv: keep, vals: s.vals})
		}
		if len(rest) > 0 {
			shared := interval.Intersection(p.d, s.iv, n)
			pieces = append(pieces, &slice[V, T]{iv: shared, vals: rest})
		}
	}
	if len(replaced) == 0 {
		return
	}
	for _, s := range replaced {
		p.tr.Delete(s)
	}
	for _, s := range pieces {
		p.tr.Set(s)
	}
	p.coalesce(n)
}

// eraseAll removes every association over iv, returning the removed
// (value-set, interval) pieces. The bidirectional mirror replays these on
// the inverse side.
func (p *partition[V, T]) eraseAll(iv interval.Interval[T]) []*slice[V, T] {
	n := interval.Normalize(p.d, iv)
	if interval.IsEmpty(p.d, n) {
		return nil
	}
	over := p.overlapping(n)
	if len(over) == 0 {
		return nil
	}
	var removed, pieces []*slice[V, T]
	for _, s := range over {
		for _, keep := range interval.Subtract(p.d, s.iv, n) {
			pieces = append(pieces, &slice[V, T]{iv: keep, vals: s.vals})
		}
		removed = append(removed, &slice[V, T]{
			iv:   interval.Intersection(p.d, s.iv, n),
			vals: s.vals,
		})
	}
	for _, s := range over {
		p.tr.Delete(s)
	}
	for _, s := range pieces {
		p.tr.Set(s)
	}
	p.coalesce(n)
	return removed
}

// coalesce merges interval-adjacent slices with identical value sets in
// the neighborhood of n. Mutations only disturb canonicality within n plus
// its immediate neighbors, so scanning one slice past either end of n is
// sufficient.
func (p *partition[V, T]) coalesce(n interval.Interval[T]) {
	var run []*slice[V, T]
	it := p.tr.Iter()
	more := it.Seek(&slice[V, T]{iv: n})
	if !more {
		more = it.Last()
	} else if it.Prev() {
		more = true
	} else {
		more = it.First()
	}
	for ; more; more = it.Next() {
		s := it.Item()
		run = append(run, s)
		if !interval.Intersects(p.d, s.iv, n) && interval.CompareLower(p.d, s.iv, n) > 0 {
			break
		}
	}
	it.Release()
	if len(run) < 2 {
		return
	}

	folded := []*slice[V, T]{run[0]}
	merges := 0
	for _, s := range run[1:] {
		tail := folded[len(folded)-1]
		if slices.Equal(tail.vals, s.vals) && interval.Adjacent(p.d, tail.iv, s.iv) {
			folded[len(folded)-1] = &slice[V, T]{
				iv:   interval.Span(p.d, tail.iv, s.iv),
				vals: tail.vals,
			}
			merges++
		} else {
			folded = append(folded, s)
		}
	}
	if merges == 0 {
		return
	}
	for _, s := range run {
		p.tr.Delete(s)
	}
	for _, s := range folded {
		p.tr.Set(s)
	}
}

// find returns the sorted union of the value sets over every point of iv.
func (p *partition[V, T]) find(iv interval.Interval[T]) []V {
	n := interval.Normalize(p.d, iv)
	if interval.IsEmpty(p.d, n) {
		return nil
	}
	var out []V
	for _, s := range p.overlapping(n) {
		out = unionValues(out, s.vals)
	}
	return out
}

// all returns the canonical partition restricted to query, ascending. Each
// invocation of the sequence starts a fresh traversal of current state.
func (p *partition[V, T]) all(query interval.Interval[T]) iter.Seq[*slice[V, T]] {
	return func(yield func(*slice[V, T]) bool) {
		n := interval.Normalize(p.d, query)
		if interval.IsEmpty(p.d, n) {
			return
		}
		it := p.tr.Iter()
		defer it.Release()
		more := it.Seek(&slice[V, T]{iv: n})
		if !more {
			more = it.Last()
		} else if it.Prev() {
			more = true
		} else {
			more = it.First()
		}
		for ; more; more = it.Next() {
			s := it.Item()
			clipped := interval.Intersection(p.d, s.iv, n)
			if interval.IsEmpty(p.d, clipped) {
				if interval.CompareLower(p.d, s.iv, n) >= 0 {
					return
				}
				continue
			}
			if !interval.Equal(p.d, clipped, s.iv) {
				s = &slice[V, T]{iv: clipped, vals: s.vals}
			}
			if !yield(s) {
				return
			}
		}
	}
}

// gap is an uncovered interval sandwiched between two covered slices.
type gap[V cmp.Ordered, T any] struct {
	left, right []V // value sets of the flanking slices
	iv          interval.Interval[T]
}

// gaps returns the interior gaps of the partition, ascending.
func (p *partition[V, T]) gaps() []gap[V, T] {
	var out []gap[V, T]
	var prev *slice[V, T]
	p.tr.Scan(func(s *slice[V, T]) bool {
		if prev != nil {
			if g := interval.Gap(p.d, prev.iv, s.iv); !interval.IsEmpty(p.d, g) {
				out = append(out, gap[V, T]{left: prev.vals, right: s.vals, iv: g})
			}
		}
		prev = s
		return true
	})
	return out
}
