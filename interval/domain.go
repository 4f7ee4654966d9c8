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

import (
	"cmp"
	"fmt"
	"time"

	"golang.org/x/exp/constraints"
)

// Domain describes the ordered domain an [Interval] ranges over. It is
// supplied once, at dictionary construction, and consumed by every
// operation in this package.
//
// Compare must be a total order. Next and Prev report the successor and
// predecessor of a point on discrete domains; continuous domains return
// false, as does a discrete domain at the edge of its representable range.
// Distance reports how many domain steps separate two points, when the
// domain is measurable; it is only consulted by gap-size bounds.
type Domain[T any] interface {
	Compare(a, b T) int
	Next(p T) (T, bool)
	Prev(p T) (T, bool)
	Distance(a, b T) (int64, bool)
}

// Ordered returns a continuous Domain over any naturally ordered type.
//
// Because the domain is continuous, intervals keep their declared open and
// closed bounds, and two intervals are adjacent only when they share an
// endpoint with exactly one closed side.
func Ordered[T cmp.Ordered]() Domain[T] {
	return orderedDomain[T]{}
}

type orderedDomain[T cmp.Ordered] struct{}

func (orderedDomain[T]) Compare(a, b T) int { return cmp.Compare(a, b) }

func (orderedDomain[T]) Next(p T) (T, bool) { return p, false }

func (orderedDomain[T]) Prev(p T) (T, bool) { return p, false }

func (orderedDomain[T]) Distance(_, _ T) (int64, bool) { return 0, false }

// Integer returns a discrete, measurable Domain over any integer type.
//
// On a discrete domain every bounded interval normalizes to closed form, so
// [1, 5) and [1, 4] are the same interval, and [1, 4] is adjacent to [5, 9].
func Integer[T constraints.Integer]() Domain[T] {
	return integerDomain[T]{}
}

type integerDomain[T constraints.Integer] struct{}

func (integerDomain[T]) Compare(a, b T) int { return cmp.Compare(a, b) }

func (integerDomain[T]) Next(p T) (T, bool) {
	next := p + 1
	if next < p {
		return p, false // overflow
	}
	return next, true
}

func (integerDomain[T]) Prev(p T) (T, bool) {
	prev := p - 1
	if prev > p {
		return p, false
	}
	return prev, true
}

func (integerDomain[T]) Distance(a, b T) (int64, bool) {
	if a > b {
		d, ok := integerDomain[T]{}.Distance(b, a)
		return -d, ok
	}
	return int64(b - a), true
}

// Date is a calendar day, the classic discrete domain for temporal
// dictionaries.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the given calendar day. Out-of-range components are
// normalized the way [time.Date] normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day containing t.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String implements [fmt.Stringer], rendering e.g. 2020-Jan-10.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%.3s-%02d", d.Year, d.Month, d.Day)
}

// Dates returns a discrete Domain over calendar days, measured in days.
func Dates() Domain[Date] {
	return dateDomain{}
}

type dateDomain struct{}

func (dateDomain) Compare(a, b Date) int {
	if c := cmp.Compare(a.Year, b.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Month, b.Month); c != 0 {
		return c
	}
	return cmp.Compare(a.Day, b.Day)
}

func (dateDomain) Next(p Date) (Date, bool) {
	return DateOf(p.Time().AddDate(0, 0, 1)), true
}

func (dateDomain) Prev(p Date) (Date, bool) {
	return DateOf(p.Time().AddDate(0, 0, -1)), true
}

func (dateDomain) Distance(a, b Date) (int64, bool) {
	const day = 24 * time.Hour
	return int64(b.Time().Sub(a.Time()) / day), true
}

// Times returns a continuous Domain over instants, measured in nanoseconds.
func Times() Domain[time.Time] {
	return timeDomain{}
}

type timeDomain struct{}

func (timeDomain) Compare(a, b time.Time) int { return a.Compare(b) }

func (timeDomain) Next(p time.Time) (time.Time, bool) { return p, false }

func (timeDomain) Prev(p time.Time) (time.Time, bool) { return p, false }

func (timeDomain) Distance(a, b time.Time) (int64, bool) {
	return int64(b.Sub(a)), true
}
