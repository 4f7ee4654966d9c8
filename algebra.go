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

// Set algebra over whole dictionaries. All three operations combine value
// sets pointwise over the domain and return a new dictionary, leaving the
// operands untouched; the operands must share a domain. Merge and
// Intersect are commutative and associative; Subtract is neither. Results
// carry no slice cap.

// Merge returns the pointwise union of a and b: a value maps to a key at a
// point in the result exactly when it does in either operand.
func Merge[K cmp.Ordered, V cmp.Ordered, T any](a, b *Dict[K, V, T]) *Dict[K, V, T] {
	out := a.Clone()
	out.MaxSlices = 0
	for tr := range b.Intervals(interval.Extent[T]()) {
		out.rawInsert(tr.Key, tr.Value, tr.Interval)
	}
	return out
}

// Intersect returns the pointwise intersection of a and b; regions where
// the resulting value set is empty are dropped.
func Intersect[K cmp.Ordered, V cmp.Ordered, T any](a, b *Dict[K, V, T]) *Dict[K, V, T] {
	out := New[K, V](a.domain)
	for key, pa := range a.parts {
		pb := b.parts[key]
		if pb == nil {
			continue
		}
		for sa := range pa.all(interval.Extent[T]()) {
			for _, sb := range pb.overlapping(sa.iv) {
				region := interval.Intersection(a.domain, sa.iv, sb.iv)
				for _, v := range intersectValues(sa.vals, sb.vals) {
					out.rawInsert(key, v, region)
				}
			}
		}
	}
	return out
}

// Subtract returns a with every association of b removed: the pointwise
// value-set difference.
func Subtract[K cmp.Ordered, V cmp.Ordered, T any](a, b *Dict[K, V, T]) *Dict[K, V, T] {
	out := a.Clone()
	out.MaxSlices = 0
	for key, pb := range b.parts {
		if out.parts[key] == nil {
			continue
		}
		for s := range pb.all(interval.Extent[T]()) {
			for _, v := range s.vals {
				out.rawErase(key, v, s.iv)
			}
		}
	}
	return out
}

// Join composes two dictionaries with matching value and key types: given
// A→B and B→C, it returns A→C spanning every interval where some b links
// the two.
func Join[K cmp.Ordered, B cmp.Ordered, C cmp.Ordered, T any](
	aToB *Dict[K, B, T],
	bToC *Dict[B, C, T],
) *Dict[K, C, T] {
	out := New[K, C](aToB.domain)
	for key, p := range aToB.parts {
		for s := range p.all(interval.Extent[T]()) {
			for _, b := range s.vals {
				pb := bToC.parts[b]
				if pb == nil {
					continue
				}
				for _, sb := range pb.overlapping(s.iv) {
					region := interval.Intersection(aToB.domain, s.iv, sb.iv)
					for _, c := range sb.vals {
						out.rawInsert(key, c, region)
					}
				}
			}
		}
	}
	return out
}
