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

// Package adapter turns a possibly periodic [sched.Handle] into an
// at-most-once callback delivery.
package adapter

import (
	"errors"
	"sync/atomic"
	"time"

	"fillmore-labs.com/oneshot/sched"
)

// ErrAlreadyArmed is returned by [Adapter.Arm] when the adapter has left its
// idle state.
var ErrAlreadyArmed = errors.New("adapter already armed")

// Adapter states. armed→fired and armed→disarmed are the only contended
// transitions; a single compare-and-swap decides which one wins, so a tick
// and a concurrent disarm can never both take effect.
const (
	idle int32 = iota
	armed
	fired
	disarmed
)

// Adapter suppresses all but the first tick of an underlying handle.
//
// The handle may keep delivering ticks re-entrantly relative to its Cancel;
// every delivery after the first loses the state transition and returns
// without side effects.
type Adapter struct {
	handle   sched.Handle
	callback func()
	state    atomic.Int32
}

// New wraps an externally owned handle. The adapter never destroys the
// handle; it only binds, resets and cancels it for its one firing window.
func New(handle sched.Handle) *Adapter {
	return &Adapter{handle: handle}
}

// Arm registers callback for the next delivery and activates the handle.
// It may only be called once, while the adapter is idle.
func (a *Adapter) Arm(period time.Duration, callback func()) error {
	if !a.state.CompareAndSwap(idle, armed) {
		return ErrAlreadyArmed
	}

	// No tick can be in flight before Reset, so the callback write is safe.
	a.callback = callback
	a.handle.Bind(period, a.deliver)
	a.handle.Reset()

	return nil
}

// deliver runs on the scheduler goroutine for every tick of the handle.
// The first delivery disables the handle and invokes the callback
// synchronously; later ticks are no-ops.
func (a *Adapter) deliver() {
	if !a.state.CompareAndSwap(armed, fired) {
		return
	}

	a.handle.Cancel()
	a.callback()
}

// Disarm suppresses the callback and disables the handle, reporting whether
// it won against delivery. It returns false when the callback already fired
// or the adapter was never armed.
func (a *Adapter) Disarm() bool {
	if !a.state.CompareAndSwap(armed, disarmed) {
		return false
	}

	a.handle.Cancel()

	return true
}
