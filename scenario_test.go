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

package oneshot_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/oneshot"
	"fillmore-labs.com/oneshot/sched"
)

const settleGoRoutines = 10 * time.Millisecond

// TestSystemTimeout runs a timer against the runtime clock: started, alive
// for one interval, fired exactly once, idempotent joins afterwards.
func TestSystemTimeout(t *testing.T) {
	t.Parallel()

	// given
	wrapper := oneshot.New(sched.System())

	var calls atomic.Int32
	timer, err := wrapper.NewTimer(interval, func() { calls.Add(1) })
	require.NoError(t, err)

	assert.False(t, timer.IsAlive())

	// when
	require.NoError(t, timer.Start())
	assert.True(t, timer.IsAlive())

	ctx, cancel := context.WithTimeout(context.Background(), 10*interval)
	defer cancel()
	fired := timer.Join(ctx)

	// then
	assert.True(t, fired)
	assert.False(t, timer.IsAlive())

	// a second interval passes without another delivery
	time.Sleep(interval + settleGoRoutines)
	assert.EqualValues(t, 1, calls.Load())

	joinAgain, cancelAgain := context.WithTimeout(context.Background(), settleGoRoutines)
	defer cancelAgain()
	assert.True(t, timer.Join(joinAgain))
	assert.EqualValues(t, 1, calls.Load())
}

// TestSystemCancel cancels well before the interval elapses and verifies the
// callback never runs, even after waiting past the original deadline.
func TestSystemCancel(t *testing.T) {
	t.Parallel()

	// given
	wrapper := oneshot.New(sched.System())

	var calls atomic.Int32
	timer, err := wrapper.NewTimer(interval, func() { calls.Add(1) })
	require.NoError(t, err)

	require.NoError(t, timer.Start())

	// when
	timer.Cancel()

	// then
	assert.False(t, timer.IsAlive())

	time.Sleep(2*interval + settleGoRoutines)
	assert.Zero(t, calls.Load(), "cancelled timer must never fire")

	ctx, cancel := context.WithTimeout(context.Background(), settleGoRoutines)
	defer cancel()
	assert.False(t, timer.Join(ctx))

	assert.ErrorIs(t, timer.Start(), oneshot.ErrAlreadyStarted)
}
