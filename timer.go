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

package oneshot

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"fillmore-labs.com/oneshot/internal/adapter"
)

// ErrAlreadyStarted is returned by [Timer.Start] on any timer that has been
// started before, including one that was cancelled. The message text is part
// of the emulated timer-thread contract.
var ErrAlreadyStarted = errors.New("Timer has already been started.")

// Timer phases. created→started is the only non-terminal transition; fired
// and cancelled are final. Exactly one goroutine writes each terminal phase:
// the scheduler goroutine writes fired after winning the adapter's
// transition, and a cancelling goroutine writes cancelled after a successful
// disarm. The two are mutually exclusive.
const (
	phaseCreated int32 = iota
	phaseStarted
	phaseFired
	phaseCancelled
)

// Timer is a single-use timer with the observable contract of a blocking
// timer thread.
//
// All methods are safe for concurrent use. The callback runs on the
// goroutine of the external scheduler that owns the underlying handle, never
// on a goroutine of this package.
type Timer struct {
	function func()
	interval time.Duration
	logger   *slog.Logger

	adapter *adapter.Adapter
	phase   atomic.Int32
	done    chan struct{} // closed exactly once, on fire or successful cancel
}

// Start arms the timer. The callback will run once, one interval from now.
//
// Start may be called once per timer: any later call returns
// [ErrAlreadyStarted], whether the timer fired, was cancelled, or is still
// pending. Create a new timer instead.
func (t *Timer) Start() error {
	if !t.phase.CompareAndSwap(phaseCreated, phaseStarted) {
		return ErrAlreadyStarted
	}

	if err := t.adapter.Arm(t.interval, t.fire); err != nil {
		// The shared handle is armed by another timer; sequential use is a
		// documented requirement of the binding.
		panic("oneshot: shared timer handle is already armed: " + err.Error())
	}

	t.logger.Debug("timer started", "interval", t.interval)

	return nil
}

// fire runs on the scheduler goroutine after winning the adapter's
// transition. The callback completes before the phase change and the latch
// close become visible, so a goroutine woken by [Timer.Join] always observes
// a fully returned callback.
func (t *Timer) fire() {
	t.function()

	t.phase.Store(phaseFired)
	close(t.done)

	t.logger.Debug("timer fired")
}

// IsAlive reports whether the timer has been started and has neither fired
// nor been cancelled.
func (t *Timer) IsAlive() bool {
	return t.phase.Load() == phaseStarted
}

// Cancel stops a pending timer so its callback never runs.
//
// Cancellation is best effort: it races against delivery, and once the
// callback has started (or finished) it has no effect. Cancelling a timer
// that is not pending — not yet started, already fired, already cancelled —
// is a no-op.
func (t *Timer) Cancel() {
	if t.phase.Load() != phaseStarted {
		return
	}

	if !t.adapter.Disarm() {
		// Delivery won the race, or another Cancel got here first.
		return
	}

	if !t.phase.CompareAndSwap(phaseStarted, phaseCancelled) {
		panic("oneshot: timer fired after a successful disarm")
	}
	close(t.done)

	t.logger.Debug("timer cancelled")
}

// Join blocks until the timer's callback has returned, the timer is
// cancelled, or ctx is done, and reports whether the timer fired. Pass
// [context.Background] to wait without a deadline.
//
// Join never fails: joining a timer that was never started returns false
// immediately, and repeated joins after a fire keep returning true without
// running the callback again.
func (t *Timer) Join(ctx context.Context) bool {
	if t.phase.Load() == phaseCreated {
		return false
	}

	select {
	case <-t.done:
	case <-ctx.Done():
	}

	return t.phase.Load() == phaseFired
}
