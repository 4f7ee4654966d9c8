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

package interval

// This file contains the interval arithmetic that the disjoint-partition
// machinery is built on. Every function takes the Domain explicitly and
// returns normalized intervals; empty results always come back as the
// canonical [Empty] value, never as some other degenerate encoding.

// Normalize returns the canonical form of i.
//
// On discrete domains, bounded open endpoints are converted to their closed
// equivalents using the domain's successor and predecessor, so that e.g.
// integer [1, 5) and [1, 4] compare equal and adjacency is well defined.
// Malformed intervals (lower > upper, or an open point) normalize to
// [Empty].
func Normalize[T any](d Domain[T], i Interval[T]) Interval[T] {
	if i.LoBound == BoundOpen {
		if next, ok := d.Next(i.Lo); ok {
			i.Lo, i.LoBound = next, BoundClosed
		}
	}
	if i.HiBound == BoundOpen {
		if prev, ok := d.Prev(i.Hi); ok {
			i.Hi, i.HiBound = prev, BoundClosed
		}
	}
	if degenerate(d, i) {
		return Empty[T]()
	}
	return i
}

// IsEmpty reports whether i denotes no domain points.
func IsEmpty[T any](d Domain[T], i Interval[T]) bool {
	return degenerate(d, Normalize(d, i))
}

// degenerate reports emptiness of an already-normalized interval.
func degenerate[T any](d Domain[T], i Interval[T]) bool {
	if i.LoBound == BoundUnbounded || i.HiBound == BoundUnbounded {
		return false
	}
	c := d.Compare(i.Lo, i.Hi)
	return c > 0 || (c == 0 && (i.LoBound != BoundClosed || i.HiBound != BoundClosed))
}

// CompareLower orders two nonempty intervals by their lower endpoints. An
// unbounded lower endpoint sorts before everything; on equal endpoint
// values a closed bound sorts before an open one, since it starts earlier.
func CompareLower[T any](d Domain[T], a, b Interval[T]) int {
	aUnb := a.LoBound == BoundUnbounded
	bUnb := b.LoBound == BoundUnbounded
	switch {
	case aUnb && bUnb:
		return 0
	case aUnb:
		return -1
	case bUnb:
		return 1
	}
	if c := d.Compare(a.Lo, b.Lo); c != 0 {
		return c
	}
	switch {
	case a.LoBound == b.LoBound:
		return 0
	case a.LoBound == BoundClosed:
		return -1
	default:
		return 1
	}
}

// CompareUpper orders two nonempty intervals by their upper endpoints. An
// unbounded upper endpoint sorts after everything; on equal endpoint values
// an open bound sorts before a closed one, since it ends earlier.
func CompareUpper[T any](d Domain[T], a, b Interval[T]) int {
	aUnb := a.HiBound == BoundUnbounded
	bUnb := b.HiBound == BoundUnbounded
	switch {
	case aUnb && bUnb:
		return 0
	case aUnb:
		return 1
	case bUnb:
		return -1
	}
	if c := d.Compare(a.Hi, b.Hi); c != 0 {
		return c
	}
	switch {
	case a.HiBound == b.HiBound:
		return 0
	case a.HiBound == BoundClosed:
		return 1
	default:
		return -1
	}
}

// Equal reports whether a and b denote the same set of domain points.
func Equal[T any](d Domain[T], a, b Interval[T]) bool {
	a, b = Normalize(d, a), Normalize(d, b)
	aEmpty, bEmpty := degenerate(d, a), degenerate(d, b)
	if aEmpty || bEmpty {
		return aEmpty == bEmpty
	}
	return CompareLower(d, a, b) == 0 && CompareUpper(d, a, b) == 0
}

// Intersection returns the interval of points common to a and b, which may
// be [Empty].
func Intersection[T any](d Domain[T], a, b Interval[T]) Interval[T] {
	a, b = Normalize(d, a), Normalize(d, b)
	if degenerate(d, a) || degenerate(d, b) {
		return Empty[T]()
	}
	out := a
	if CompareLower(d, b, a) > 0 {
		out.Lo, out.LoBound = b.Lo, b.LoBound
	}
	if CompareUpper(d, b, a) < 0 {
		out.Hi, out.HiBound = b.Hi, b.HiBound
	}
	return Normalize(d, out)
}

// Intersects reports whether a and b share at least one domain point.
func Intersects[T any](d Domain[T], a, b Interval[T]) bool {
	return !degenerate(d, Intersection(d, a, b))
}

// Contains reports whether p lies inside i.
func Contains[T any](d Domain[T], i Interval[T], p T) bool {
	return Intersects(d, i, Point(p))
}

// Subtract returns the zero, one, or two intervals left after removing j
// from i. Removing a middle sub-interval splits i in two; removing
// everything yields nil.
func Subtract[T any](d Domain[T], i, j Interval[T]) []Interval[T] {
	i, j = Normalize(d, i), Normalize(d, j)
	if degenerate(d, i) {
		return nil
	}
	if degenerate(d, j) {
		return []Interval[T]{i}
	}
	var out []Interval[T]
	if j.LoBound != BoundUnbounded {
		before := Interval[T]{Hi: j.Lo, HiBound: j.LoBound.invert(), LoBound: BoundUnbounded}
		if left := Intersection(d, i, before); !degenerate(d, left) {
			out = append(out, left)
		}
	}
	if j.HiBound != BoundUnbounded {
		after := Interval[T]{Lo: j.Hi, LoBound: j.HiBound.invert(), HiBound: BoundUnbounded}
		if right := Intersection(d, i, after); !degenerate(d, right) {
			out = append(out, right)
		}
	}
	return out
}

// Gap returns the maximal interval lying strictly between a and b, or
// [Empty] if they overlap or touch.
func Gap[T any](d Domain[T], a, b Interval[T]) Interval[T] {
	a, b = Normalize(d, a), Normalize(d, b)
	if degenerate(d, a) || degenerate(d, b) {
		return Empty[T]()
	}
	if CompareLower(d, b, a) < 0 {
		a, b = b, a
	}
	if a.HiBound == BoundUnbounded || b.LoBound == BoundUnbounded {
		return Empty[T]()
	}
	return Normalize(d, Interval[T]{
		Lo: a.Hi, LoBound: a.HiBound.invert(),
		Hi: b.Lo, HiBound: b.LoBound.invert(),
	})
}

// Adjacent reports whether a and b are disjoint but their union is a single
// contiguous interval, i.e. no domain point lies strictly between them.
func Adjacent[T any](d Domain[T], a, b Interval[T]) bool {
	a, b = Normalize(d, a), Normalize(d, b)
	if degenerate(d, a) || degenerate(d, b) {
		return false
	}
	if Intersects(d, a, b) {
		return false
	}
	return degenerate(d, Gap(d, a, b))
}

// Span returns the smallest interval containing both a and b.
func Span[T any](d Domain[T], a, b Interval[T]) Interval[T] {
	a, b = Normalize(d, a), Normalize(d, b)
	if degenerate(d, a) {
		return b
	}
	if degenerate(d, b) {
		return a
	}
	out := a
	if CompareLower(d, b, a) < 0 {
		out.Lo, out.LoBound = b.Lo, b.LoBound
	}
	if CompareUpper(d, b, a) > 0 {
		out.Hi, out.HiBound = b.Hi, b.HiBound
	}
	return out
}
