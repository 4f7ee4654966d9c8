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
	"slices"
)

// Value sets are sorted, deduplicated slices, shared freely between slices
// and clones; every helper here copies instead of mutating.

// addValue returns vals with v added, or vals itself if already present.
func addValue[V cmp.Ordered](vals []V, v V) []V {
	at, ok := slices.BinarySearch(vals, v)
	if ok {
		return vals
	}
	out := make([]V, 0, len(vals)+1)
	out = append(out, vals[:at]...)
	out = append(out, v)
	return append(out, vals[at:]...)
}

// removeValue returns vals without v, reporting whether v was present.
func removeValue[V cmp.Ordered](vals []V, v V) ([]V, bool) {
	at, ok := slices.BinarySearch(vals, v)
	if !ok {
		return vals, false
	}
	out := make([]V, 0, len(vals)-1)
	out = append(out, vals[:at]...)
	return append(out, vals[at+1:]...), true
}

func containsValue[V cmp.Ordered](vals []V, v V) bool {
	_, ok := slices.BinarySearch(vals, v)
	return ok
}

func unionValues[V cmp.Ordered](a, b []V) []V {
	out := make([]V, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}

func intersectValues[V cmp.Ordered](a, b []V) []V {
	var out []V
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}
