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

// Package intervaldict provides in-memory dictionaries whose key-value
// associations are valid over intervals of an ordered domain, answering
// "which values did key K map to at time X" efficiently.
//
// The building blocks, bottom up:
//
//   - [interval.Interval] and [interval.Domain], in the interval
//     sub-package: the range value type and the trait object that adapts
//     dates, timestamps, integers, or any other totally ordered type.
//   - A per-key disjoint partition: every key's associations are stored as
//     non-overlapping (value-set, interval) slices, canonicalized after
//     every insertion and erasure, so the stored form never depends on the
//     order mutations arrived in.
//   - [Dict]: the keyed dictionary, with batch mutation, interval queries,
//     lazy slice enumeration, gap filling, and set algebra ([Merge],
//     [Intersect], [Subtract], [Join]) across dictionaries.
//   - [BiDict]: a forward and an inverse dictionary kept mirror-consistent
//     under every mutation, so lookups by key and lookups by value cost
//     the same.
//
// Dictionaries are single-threaded, value-oriented structures: operations
// run to completion, nothing is shared with background work, and callers
// needing cross-goroutine sharing must fence access themselves. Clones are
// copy-on-write and cheap, which is the intended snapshotting mechanism.
package intervaldict
