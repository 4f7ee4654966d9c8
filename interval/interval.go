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

// Package interval provides a contiguous-range value type over an ordered
// domain, together with the arithmetic needed to keep collections of such
// ranges in canonical, pairwise-disjoint form.
//
// An [Interval] carries an explicit boundary kind per endpoint, so all four
// classic flavors (open, closed, left-open, right-open) are a single type
// rather than four. The domain itself is abstracted behind a [Domain] trait
// object, which is how dates, timestamps, integers, and other totally
// ordered types plug in.
package interval

import (
	"fmt"
	"strings"
)

// Bound is the boundary kind of one endpoint of an [Interval].
type Bound byte

const (
	// BoundOpen excludes the endpoint from the interval.
	BoundOpen Bound = iota
	// BoundClosed includes the endpoint in the interval.
	BoundClosed
	// BoundUnbounded means the interval extends without limit on that side.
	// The endpoint value is ignored.
	BoundUnbounded
)

// String implements [fmt.Stringer].
func (b Bound) String() string {
	switch b {
	case BoundOpen:
		return "open"
	case BoundClosed:
		return "closed"
	case BoundUnbounded:
		return "unbounded"
	default:
		return fmt.Sprintf("Bound(%d)", byte(b))
	}
}

// invert flips a facing boundary: the complement of an interval that ends
// closed at p begins open at p, and vice versa.
func (b Bound) invert() Bound {
	if b == BoundClosed {
		return BoundOpen
	}
	return BoundClosed
}

// Interval is a contiguous range over an ordered domain type T.
//
// Note that the zero value is the canonical empty interval. Intervals with
// Lo > Hi, or Lo == Hi without both bounds closed, also denote the empty
// interval; every operation in this package treats them as no-ops and never
// stores them.
type Interval[T any] struct {
	Lo, Hi           T
	LoBound, HiBound Bound
}

// Closed returns the interval [lo, hi], including both endpoints.
func Closed[T any](lo, hi T) Interval[T] {
	return Interval[T]{Lo: lo, Hi: hi, LoBound: BoundClosed, HiBound: BoundClosed}
}

// Open returns the interval (lo, hi), excluding both endpoints.
func Open[T any](lo, hi T) Interval[T] {
	return Interval[T]{Lo: lo, Hi: hi, LoBound: BoundOpen, HiBound: BoundOpen}
}

// RightOpen returns the interval [lo, hi), the usual choice for timestamped
// data.
func RightOpen[T any](lo, hi T) Interval[T] {
	return Interval[T]{Lo: lo, Hi: hi, LoBound: BoundClosed, HiBound: BoundOpen}
}

// LeftOpen returns the interval (lo, hi].
func LeftOpen[T any](lo, hi T) Interval[T] {
	return Interval[T]{Lo: lo, Hi: hi, LoBound: BoundOpen, HiBound: BoundClosed}
}

// Point returns the single-point interval [p, p].
func Point[T any](p T) Interval[T] {
	return Closed(p, p)
}

// AtLeast returns the interval [lo, +inf).
func AtLeast[T any](lo T) Interval[T] {
	return Interval[T]{Lo: lo, LoBound: BoundClosed, HiBound: BoundUnbounded}
}

// AtMost returns the interval (-inf, hi].
func AtMost[T any](hi T) Interval[T] {
	return Interval[T]{Hi: hi, LoBound: BoundUnbounded, HiBound: BoundClosed}
}

// Before returns the interval (-inf, hi).
func Before[T any](hi T) Interval[T] {
	return Interval[T]{Hi: hi, LoBound: BoundUnbounded, HiBound: BoundOpen}
}

// After returns the interval (lo, +inf).
func After[T any](lo T) Interval[T] {
	return Interval[T]{Lo: lo, LoBound: BoundOpen, HiBound: BoundUnbounded}
}

// Extent returns the maximal interval (-inf, +inf), representing the whole
// domain. It is the default query range throughout this module.
func Extent[T any]() Interval[T] {
	return Interval[T]{LoBound: BoundUnbounded, HiBound: BoundUnbounded}
}

// Empty returns the canonical empty interval.
func Empty[T any]() Interval[T] {
	return Interval[T]{}
}

// String implements [fmt.Stringer].
//
// Bounded endpoints render with the usual bracket notation, e.g. [10, 20)
// or (a, b]; unbounded sides render as -inf and +inf.
func (i Interval[T]) String() string {
	var sb strings.Builder
	switch i.LoBound {
	case BoundClosed:
		fmt.Fprintf(&sb, "[%v", i.Lo)
	case BoundOpen:
		fmt.Fprintf(&sb, "(%v", i.Lo)
	case BoundUnbounded:
		sb.WriteString("(-inf")
	}
	sb.WriteString(", ")
	switch i.HiBound {
	case BoundClosed:
		fmt.Fprintf(&sb, "%v]", i.Hi)
	case BoundOpen:
		fmt.Fprintf(&sb, "%v)", i.Hi)
	case BoundUnbounded:
		sb.WriteString("+inf)")
	}
	return sb.String()
}
