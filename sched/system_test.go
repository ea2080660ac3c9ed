// Copyright 2023-2024 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package sched_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fillmore-labs.com/oneshot/sched"
)

const (
	period = 10 * time.Millisecond
	settle = 5 * time.Millisecond
)

func TestSystemDeliversPeriodically(t *testing.T) {
	t.Parallel()

	// given
	handle := sched.System()

	var ticks atomic.Int32
	handle.Bind(period, func() { ticks.Add(1) })

	// when
	handle.Reset()
	time.Sleep(4*period + settle)
	handle.Cancel()

	// then
	delivered := ticks.Load()
	assert.GreaterOrEqual(t, delivered, int32(2), "expected repeated delivery")

	// no more deliveries after cancel
	time.Sleep(2 * period)
	assert.Equal(t, delivered, ticks.Load())
}

func TestSystemInactiveUntilReset(t *testing.T) {
	t.Parallel()

	// given
	handle := sched.System()

	var ticks atomic.Int32
	handle.Bind(period, func() { ticks.Add(1) })

	// when
	time.Sleep(2 * period)

	// then
	assert.Zero(t, ticks.Load(), "binding alone must not deliver")
}

func TestSystemRebindStopsDelivery(t *testing.T) {
	t.Parallel()

	// given
	handle := sched.System()

	var first, second atomic.Int32
	handle.Bind(period, func() { first.Add(1) })
	handle.Reset()
	time.Sleep(2*period + settle)

	// when
	handle.Bind(period, func() { second.Add(1) })
	time.Sleep(2 * period)

	// then
	assert.Zero(t, second.Load(), "rebinding must deactivate the handle")

	handle.Reset()
	time.Sleep(2*period + settle)
	handle.Cancel()
	assert.Positive(t, second.Load())
}

func TestSystemCancelIdempotent(t *testing.T) {
	t.Parallel()

	// given
	handle := sched.System()
	handle.Bind(period, func() {})

	// when, then
	handle.Cancel()
	handle.Cancel()

	handle.Reset()
	handle.Cancel()
	handle.Cancel()
}
