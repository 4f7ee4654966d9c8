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

import "errors"

// ErrSliceLimit is returned when a mutation would grow a dictionary past
// its configured MaxSlices cap. The mutation is not applied: the
// dictionary, and for [BiDict] both of its sides, is left exactly as it
// was before the call.
var ErrSliceLimit = errors.New("intervaldict: slice limit exceeded")
