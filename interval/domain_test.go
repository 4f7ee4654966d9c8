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

package interval_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/intervaldict/interval"
)

func TestIntegerDomain(t *testing.T) {
	t.Parallel()
	dom := interval.Integer[int8]()

	next, ok := dom.Next(41)
	require.True(t, ok)
	assert.Equal(t, int8(42), next)

	prev, ok := dom.Prev(43)
	require.True(t, ok)
	assert.Equal(t, int8(42), prev)

	_, ok = dom.Next(math.MaxInt8)
	assert.False(t, ok)
	_, ok = dom.Prev(math.MinInt8)
	assert.False(t, ok)

	dist, ok := dom.Distance(3, 10)
	require.True(t, ok)
	assert.Equal(t, int64(7), dist)
	dist, ok = dom.Distance(10, 3)
	require.True(t, ok)
	assert.Equal(t, int64(-7), dist)
}

func TestOrderedDomain(t *testing.T) {
	t.Parallel()
	dom := interval.Ordered[float64]()

	assert.Negative(t, dom.Compare(1.5, 2.5))
	_, ok := dom.Next(1.5)
	assert.False(t, ok)
	_, ok = dom.Prev(1.5)
	assert.False(t, ok)
	_, ok = dom.Distance(1.5, 2.5)
	assert.False(t, ok)
}

func TestDateDomain(t *testing.T) {
	t.Parallel()
	dom := interval.Dates()

	next, ok := dom.Next(interval.NewDate(2020, time.February, 28))
	require.True(t, ok)
	assert.Equal(t, interval.NewDate(2020, time.February, 29), next) // leap year

	next, ok = dom.Next(interval.NewDate(2020, time.February, 29))
	require.True(t, ok)
	assert.Equal(t, interval.NewDate(2020, time.March, 1), next)

	prev, ok := dom.Prev(interval.NewDate(2020, time.January, 1))
	require.True(t, ok)
	assert.Equal(t, interval.NewDate(2019, time.December, 31), prev)

	dist, ok := dom.Distance(
		interval.NewDate(2020, time.January, 10),
		interval.NewDate(2020, time.January, 20),
	)
	require.True(t, ok)
	assert.Equal(t, int64(10), dist)

	assert.Negative(t, dom.Compare(
		interval.NewDate(2019, time.December, 31),
		interval.NewDate(2020, time.January, 1),
	))
	assert.Zero(t, dom.Compare(
		interval.NewDate(2020, time.June, 15),
		interval.NewDate(2020, time.June, 15),
	))
}

func TestDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2020-Jan-10", interval.NewDate(2020, time.January, 10).String())
	assert.Equal(t, "0999-Dec-05", interval.NewDate(999, time.December, 5).String())

	// Out-of-range components normalize like time.Date.
	assert.Equal(t, interval.NewDate(2020, time.February, 1), interval.NewDate(2020, time.January, 32))

	day := interval.DateOf(time.Date(2021, time.July, 4, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, interval.NewDate(2021, time.July, 4), day)
	assert.Equal(t, time.Date(2021, time.July, 4, 0, 0, 0, 0, time.UTC), day.Time())
}

func TestTimeDomain(t *testing.T) {
	t.Parallel()
	dom := interval.Times()

	base := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	dist, ok := dom.Distance(base, base.Add(time.Hour))
	require.True(t, ok)
	assert.Equal(t, int64(time.Hour), dist)

	_, ok = dom.Next(base)
	assert.False(t, ok)
	_, ok = dom.Prev(base)
	assert.False(t, ok)
	assert.Negative(t, dom.Compare(base, base.Add(time.Nanosecond)))
}
