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
	"github.com/bufbuild/intervaldict/interval"
)

// Gap filling extends neighboring slices' value sets across uncovered
// regions of a key's partition. It exists to remedy data dropouts, e.g.
// associations that vanish every weekend. Every policy is explicit: there
// is no default filling behavior.

// FillToStart extends each key's earliest slice backwards so that its
// coverage begins at point. Keys whose coverage already reaches point, or
// whose earliest slice is unbounded below, are untouched.
func (d *Dict[K, V, T]) FillToStart(point T) error {
	return d.commit(func(t *Dict[K, V, T]) {
		t.insertAll(t.fillToStartTriples(point))
	})
}

// FillToEnd extends each key's final slice forwards so that its coverage
// reaches point.
func (d *Dict[K, V, T]) FillToEnd(point T) error {
	return d.commit(func(t *Dict[K, V, T]) {
		t.insertAll(t.fillToEndTriples(point))
	})
}

// FillGaps fills each interior gap with the values common to both flanking
// slices; gaps whose flanks share no values are left alone. A positive
// maxGap leaves gaps larger than that many domain steps unfilled (on
// domains that cannot measure distance, every gap counts as too large).
func (d *Dict[K, V, T]) FillGaps(maxGap int64) error {
	return d.commit(func(t *Dict[K, V, T]) {
		t.insertAll(t.fillGapsTriples(maxGap))
	})
}

// ExtendIntoGaps fills each interior gap with the values of the flanking
// slice(s) selected by dir: [Forwards] extends the preceding slice,
// [Backwards] the following one, and [Both] fills with the union of the
// two flanks even when they disagree. maxGap bounds gap size as in
// [Dict.FillGaps].
func (d *Dict[K, V, T]) ExtendIntoGaps(dir Direction, maxGap int64) error {
	return d.commit(func(t *Dict[K, V, T]) {
		t.insertAll(t.extendIntoGapsTriples(dir, maxGap))
	})
}

// FillGapsWith supplements d from other: keys missing from d are copied
// wholesale, and for keys present in both, other's associations are copied
// into d's interior gaps only. Existing coverage is never altered.
func (d *Dict[K, V, T]) FillGapsWith(other *Dict[K, V, T]) error {
	return d.commit(func(t *Dict[K, V, T]) {
		t.insertAll(t.fillGapsWithTriples(other))
	})
}

func (d *Dict[K, V, T]) insertAll(triples []Triple[K, V, T]) {
	for _, tr := range triples {
		d.rawInsert(tr.Key, tr.Value, tr.Interval)
	}
}

func (d *Dict[K, V, T]) fillToStartTriples(point T) []Triple[K, V, T] {
	var out []Triple[K, V, T]
	for _, key := range d.Keys() {
		first, ok := d.parts[key].first()
		if !ok {
			continue
		}
		fill := interval.Gap(d.domain, interval.Before(point), first.iv)
		if interval.IsEmpty(d.domain, fill) {
			continue
		}
		for _, v := range first.vals {
			out = append(out, Triple[K, V, T]{Key: key, Value: v, Interval: fill})
		}
	}
	return out
}

func (d *Dict[K, V, T]) fillToEndTriples(point T) []Triple[K, V, T] {
	var out []Triple[K, V, T]
	for _, key := range d.Keys() {
		last, ok := d.parts[key].last()
		if !ok {
			continue
		}
		fill := interval.Gap(d.domain, last.iv, interval.After(point))
		if interval.IsEmpty(d.domain, fill) {
			continue
		}
		for _, v := range last.vals {
			out = append(out, Triple[K, V, T]{Key: key, Value: v, Interval: fill})
		}
	}
	return out
}

func (d *Dict[K, V, T]) fillGapsTriples(maxGap int64) []Triple[K, V, T] {
	var out []Triple[K, V, T]
	for _, key := range d.Keys() {
		for _, g := range d.parts[key].gaps() {
			common := intersectValues(g.left, g.right)
			if len(common) == 0 || !d.fillable(g.iv, maxGap) {
				continue
			}
			for _, v := range common {
				out = append(out, Triple[K, V, T]{Key: key, Value: v, Interval: g.iv})
			}
		}
	}
	return out
}

func (d *Dict[K, V, T]) extendIntoGapsTriples(dir Direction, maxGap int64) []Triple[K, V, T] {
	var out []Triple[K, V, T]
	for _, key := range d.Keys() {
		for _, g := range d.parts[key].gaps() {
			if !d.fillable(g.iv, maxGap) {
				continue
			}
			var vals []V
			if dir&Forwards != 0 {
				vals = unionValues(vals, g.left)
			}
			if dir&Backwards != 0 {
				vals = unionValues(vals, g.right)
			}
			for _, v := range vals {
				out = append(out, Triple[K, V, T]{Key: key, Value: v, Interval: g.iv})
			}
		}
	}
	return out
}

func (d *Dict[K, V, T]) fillGapsWithTriples(other *Dict[K, V, T]) []Triple[K, V, T] {
	var out []Triple[K, V, T]
	for _, key := range other.Keys() {
		po := other.parts[key]
		p := d.parts[key]
		if p == nil {
			for s := range po.all(interval.Extent[T]()) {
				for _, v := range s.vals {
					out = append(out, Triple[K, V, T]{Key: key, Value: v, Interval: s.iv})
				}
			}
			continue
		}
		for _, g := range p.gaps() {
			for s := range po.all(g.iv) {
				for _, v := range s.vals {
					out = append(out, Triple[K, V, T]{Key: key, Value: v, Interval: s.iv})
				}
			}
		}
	}
	return out
}

// fillable reports whether a gap fits the configured size bound.
func (d *Dict[K, V, T]) fillable(g interval.Interval[T], maxGap int64) bool {
	if maxGap <= 0 {
		return true
	}
	size, ok := gapSize(d.domain, g)
	return ok && size <= maxGap
}

// gapSize measures a bounded gap in domain steps: for discrete domains the
// number of missing points, for continuous ones the distance between the
// gap's endpoints.
func gapSize[T any](dom interval.Domain[T], g interval.Interval[T]) (int64, bool) {
	if g.LoBound == interval.BoundUnbounded || g.HiBound == interval.BoundUnbounded {
		return 0, false
	}
	size, ok := dom.Distance(g.Lo, g.Hi)
	if !ok {
		return 0, false
	}
	_, discrete := dom.Next(g.Lo)
	if discrete && g.LoBound == interval.BoundClosed && g.HiBound == interval.BoundClosed {
		size++
	}
	return size, true
}
