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
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/bufbuild/intervaldict/interval"
)

// Dict is a one-to-many dictionary whose key-value associations vary over
// intervals of an ordered domain: the canonical example maps identifiers to
// the values they held over time.
//
// Each key's associations are held as a canonical disjoint partition, so
// overlapping insertions and erasures always collapse to the same slices
// regardless of the order they were applied in.
//
// A Dict is not safe for concurrent use; see [Dict.Clone] for a cheap
// snapshot.
type Dict[K cmp.Ordered, V cmp.Ordered, T any] struct {
	// MaxSlices caps the total number of stored slices across all keys.
	// Zero means no cap. A mutation that would exceed the cap fails with
	// [ErrSliceLimit] and leaves the dictionary unchanged.
	MaxSlices int

	domain interval.Domain[T]
	parts  map[K]*partition[V, T]
}

// New returns an empty dictionary over the given domain.
func New[K cmp.Ordered, V cmp.Ordered, T any](domain interval.Domain[T]) *Dict[K, V, T] {
	return &Dict[K, V, T]{domain: domain, parts: map[K]*partition[V, T]{}}
}

// FromTriples builds a dictionary from a sequence of associations. The
// order of the triples never affects the resulting partition.
func FromTriples[K cmp.Ordered, V cmp.Ordered, T any](
	domain interval.Domain[T],
	triples []Triple[K, V, T],
) *Dict[K, V, T] {
	d := New[K, V](domain)
	for _, tr := range triples {
		d.rawInsert(tr.Key, tr.Value, tr.Interval)
	}
	return d
}

// Domain returns the domain the dictionary was constructed over.
func (d *Dict[K, V, T]) Domain() interval.Domain[T] { return d.domain }

// Clone returns a copy that may diverge freely from d. It is copy-on-write
// and therefore cheap, which makes it the intended way to snapshot a
// dictionary before consuming an enumerator across mutations.
func (d *Dict[K, V, T]) Clone() *Dict[K, V, T] {
	parts := make(map[K]*partition[V, T], len(d.parts))
	for k, p := range d.parts {
		parts[k] = p.clone()
	}
	return &Dict[K, V, T]{MaxSlices: d.MaxSlices, domain: d.domain, parts: parts}
}

// Insert associates value with key over every point of iv. Malformed or
// empty intervals are ignored; re-inserting an existing association is a
// no-op.
func (d *Dict[K, V, T]) Insert(key K, value V, iv interval.Interval[T]) error {
	return d.commit(func(t *Dict[K, V, T]) {
		t.rawInsert(key, value, iv)
	})
}

// InsertTriples applies a batch of associations as one mutation.
func (d *Dict[K, V, T]) InsertTriples(triples []Triple[K, V, T]) error {
	return d.commit(func(t *Dict[K, V, T]) {
		for _, tr := range triples {
			t.rawInsert(tr.Key, tr.Value, tr.Interval)
		}
	})
}

// InsertPairs associates every pair over the same interval as one
// mutation.
func (d *Dict[K, V, T]) InsertPairs(pairs []Pair[K, V], iv interval.Interval[T]) error {
	return d.commit(func(t *Dict[K, V, T]) {
		for _, pr := range pairs {
			t.rawInsert(pr.Key, pr.Value, iv)
		}
	})
}

// Erase removes the association of value with key over every point of iv.
// Erasing an association that does not exist is a no-op.
func (d *Dict[K, V, T]) Erase(key K, value V, iv interval.Interval[T]) error {
	return d.commit(func(t *Dict[K, V, T]) {
		t.rawErase(key, value, iv)
	})
}

// EraseTriples applies a batch of erasures as one mutation.
func (d *Dict[K, V, T]) EraseTriples(triples []Triple[K, V, T]) error {
	return d.commit(func(t *Dict[K, V, T]) {
		for _, tr := range triples {
			t.rawErase(tr.Key, tr.Value, tr.Interval)
		}
	})
}

// ErasePairs erases every pair over the same interval as one mutation.
func (d *Dict[K, V, T]) ErasePairs(pairs []Pair[K, V], iv interval.Interval[T]) error {
	return d.commit(func(t *Dict[K, V, T]) {
		for _, pr := range pairs {
			t.rawErase(pr.Key, pr.Value, iv)
		}
	})
}

// EraseKey removes every value associated with key over iv. The key itself
// disappears once its last slice does.
func (d *Dict[K, V, T]) EraseKey(key K, iv interval.Interval[T]) error {
	return d.commit(func(t *Dict[K, V, T]) {
		t.rawEraseKey(key, iv)
	})
}

// EraseInterval removes every association of every key over iv.
func (d *Dict[K, V, T]) EraseInterval(iv interval.Interval[T]) error {
	return d.commit(func(t *Dict[K, V, T]) {
		for _, key := range slices.Sorted(maps.Keys(t.parts)) {
			t.rawEraseKey(key, iv)
		}
	})
}

// Clear removes all keys.
func (d *Dict[K, V, T]) Clear() {
	clear(d.parts)
}

// Find returns the sorted union of all values associated with key at any
// point of query.
func (d *Dict[K, V, T]) Find(key K, query interval.Interval[T]) []V {
	p := d.parts[key]
	if p == nil {
		return nil
	}
	return p.find(query)
}

// FindAt returns the sorted values associated with key at a single point.
func (d *Dict[K, V, T]) FindAt(key K, point T) []V {
	return d.Find(key, interval.Point(point))
}

// FindKeys returns the sorted union of values associated with any of the
// keys at any point of query.
func (d *Dict[K, V, T]) FindKeys(keys []K, query interval.Interval[T]) []V {
	var out []V
	for _, key := range keys {
		out = unionValues(out, d.Find(key, query))
	}
	return out
}

// Keys returns all keys in sorted order.
func (d *Dict[K, V, T]) Keys() []K {
	return slices.Sorted(maps.Keys(d.parts))
}

// Len returns the number of keys.
func (d *Dict[K, V, T]) Len() int { return len(d.parts) }

// Empty reports whether the dictionary has no keys.
func (d *Dict[K, V, T]) Empty() bool { return len(d.parts) == 0 }

// Contains reports whether key has any association.
func (d *Dict[K, V, T]) Contains(key K) bool {
	_, ok := d.parts[key]
	return ok
}

// DisjointIntervals returns the canonical partition of the given keys (all
// keys if none are given) restricted to query, ordered by key and then
// ascending by interval.
//
// The sequence is computed on demand; each invocation starts a fresh
// traversal of current state. Mutating the dictionary while consuming it
// is undefined; snapshot with [Dict.Clone] first if needed.
func (d *Dict[K, V, T]) DisjointIntervals(
	query interval.Interval[T],
	keys ...K,
) iter.Seq[Slice[K, V, T]] {
	return func(yield func(Slice[K, V, T]) bool) {
		for _, key := range d.selectKeys(keys) {
			p := d.parts[key]
			if p == nil {
				continue
			}
			for s := range p.all(query) {
				out := Slice[K, V, T]{Key: key, Values: slices.Clone(s.vals), Interval: s.iv}
				if !yield(out) {
					return
				}
			}
		}
	}
}

// Intervals returns one triple per maximal (key, value) run: the largest
// intervals over which a single value is continuously associated with a
// key, restricted to query. Ordering is by key, then interval, then value.
func (d *Dict[K, V, T]) Intervals(
	query interval.Interval[T],
	keys ...K,
) iter.Seq[Triple[K, V, T]] {
	return func(yield func(Triple[K, V, T]) bool) {
		for _, key := range d.selectKeys(keys) {
			p := d.parts[key]
			if p == nil {
				continue
			}
			for _, tr := range d.valueRuns(key, p, query) {
				if !yield(tr) {
					return
				}
			}
		}
	}
}

// valueRuns flattens a partition into per-value maximal intervals.
func (d *Dict[K, V, T]) valueRuns(
	key K,
	p *partition[V, T],
	query interval.Interval[T],
) []Triple[K, V, T] {
	var out []Triple[K, V, T]
	active := map[V]interval.Interval[T]{}
	for s := range p.all(query) {
		for v, cur := range active {
			if containsValue(s.vals, v) && interval.Adjacent(d.domain, cur, s.iv) {
				continue
			}
			out = append(out, Triple[K, V, T]{Key: key, Value: v, Interval: cur})
			delete(active, v)
		}
		for _, v := range s.vals {
			if cur, ok := active[v]; ok {
				active[v] = interval.Span(d.domain, cur, s.iv)
			} else {
				active[v] = s.iv
			}
		}
	}
	for v, cur := range active {
		out = append(out, Triple[K, V, T]{Key: key, Value: v, Interval: cur})
	}
	slices.SortFunc(out, func(a, b Triple[K, V, T]) int {
		if c := interval.CompareLower(d.domain, a.Interval, b.Interval); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return out
}

// Subset returns a new dictionary holding only the given keys, restricted
// to query.
func (d *Dict[K, V, T]) Subset(keys []K, query interval.Interval[T]) *Dict[K, V, T] {
	out := New[K, V](d.domain)
	for s := range d.DisjointIntervals(query, keys...) {
		for _, v := range s.Values {
			out.rawInsert(s.Key, v, s.Interval)
		}
	}
	return out
}

// SubsetValues returns a new dictionary holding only the given keys and
// values, restricted to query.
func (d *Dict[K, V, T]) SubsetValues(
	keys []K,
	values []V,
	query interval.Interval[T],
) *Dict[K, V, T] {
	want := slices.Clone(values)
	slices.Sort(want)
	out := New[K, V](d.domain)
	for s := range d.DisjointIntervals(query, keys...) {
		for _, v := range s.Values {
			if containsValue(want, v) {
				out.rawInsert(s.Key, v, s.Interval)
			}
		}
	}
	return out
}

// Invert returns a new dictionary with keys and values swapped over the
// same intervals.
func (d *Dict[K, V, T]) Invert() *Dict[V, K, T] {
	out := New[V, K](d.domain)
	for s := range d.DisjointIntervals(interval.Extent[T]()) {
		for _, v := range s.Values {
			out.rawInsert(v, s.Key, s.Interval)
		}
	}
	return out
}

// Equal reports whether two dictionaries encode the same associations.
func (d *Dict[K, V, T]) Equal(other *Dict[K, V, T]) bool {
	if len(d.parts) != len(other.parts) {
		return false
	}
	for key, p := range d.parts {
		q := other.parts[key]
		if q == nil || p.count() != q.count() {
			return false
		}
		next, stop := iter.Pull(q.all(interval.Extent[T]()))
		equal := true
		for s := range p.all(interval.Extent[T]()) {
			o, ok := next()
			if !ok || !slices.Equal(s.vals, o.vals) || !interval.Equal(d.domain, s.iv, o.iv) {
				equal = false
				break
			}
		}
		stop()
		if !equal {
			return false
		}
	}
	return true
}

// String renders every key's disjoint slices, one per line, as
// tab-separated key, value set, and interval. Diagnostic output only; the
// layout is not a stable format.
func (d *Dict[K, V, T]) String() string {
	var sb strings.Builder
	for s := range d.DisjointIntervals(interval.Extent[T]()) {
		fmt.Fprintf(&sb, "%v\t%s\t%v\n", s.Key, formatValues(s.Values), s.Interval)
	}
	return sb.String()
}

func formatValues[V cmp.Ordered](values []V) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte(']')
	return sb.String()
}

// commit applies fn to d. When a slice cap is configured the mutation is
// staged on a clone and committed only if it fits, so a failed mutation is
// never observable.
func (d *Dict[K, V, T]) commit(fn func(*Dict[K, V, T])) error {
	if d.MaxSlices <= 0 {
		fn(d)
		return nil
	}
	tmp := d.Clone()
	fn(tmp)
	if tmp.slices() > d.MaxSlices {
		return fmt.Errorf("%w: %d slices over limit %d", ErrSliceLimit, tmp.slices(), d.MaxSlices)
	}
	d.parts = tmp.parts
	return nil
}

// slices returns the total number of stored slices across all keys.
func (d *Dict[K, V, T]) slices() int {
	total := 0
	for _, p := range d.parts {
		total += p.count()
	}
	return total
}

func (d *Dict[K, V, T]) selectKeys(keys []K) []K {
	if len(keys) == 0 {
		return d.Keys()
	}
	out := slices.Clone(keys)
	slices.Sort(out)
	return slices.Compact(out)
}

// part returns key's partition, creating it on first use.
func (d *Dict[K, V, T]) part(key K) *partition[V, T] {
	p := d.parts[key]
	if p == nil {
		p = newPartition[V](d.domain)
		d.parts[key] = p
	}
	return p
}

// prune drops key's partition once it has no slices left.
func (d *Dict[K, V, T]) prune(key K) {
	if p := d.parts[key]; p != nil && p.empty() {
		delete(d.parts, key)
	}
}

func (d *Dict[K, V, T]) rawInsert(key K, value V, iv interval.Interval[T]) {
	d.part(key).insert(iv, value)
	d.prune(key)
}

func (d *Dict[K, V, T]) rawErase(key K, value V, iv interval.Interval[T]) {
	if p := d.parts[key]; p != nil {
		p.erase(iv, value)
		d.prune(key)
	}
}

func (d *Dict[K, V, T]) rawEraseKey(key K, iv interval.Interval[T]) []*slice[V, T] {
	p := d.parts[key]
	if p == nil {
		return nil
	}
	removed := p.eraseAll(iv)
	d.prune(key)
	return removed
}
