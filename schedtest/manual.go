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

package schedtest

import (
	"sync"
	"time"

	"fillmore-labs.com/oneshot/sched"
)

// Manual is a deterministic [sched.Handle] for tests: instead of a clock,
// the test delivers ticks by calling [Manual.Tick], playing the role of the
// scheduler goroutine.
type Manual struct {
	mu      sync.Mutex
	period  time.Duration
	tick    func()
	active  bool
	resets  int
	cancels int
}

// NewManual creates an inactive, unbound [Manual].
func NewManual() *Manual {
	return &Manual{}
}

var _ sched.Handle = (*Manual)(nil)

func (m *Manual) Bind(period time.Duration, tick func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.active = false
	m.period = period
	m.tick = tick
}

func (m *Manual) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.active = true
	m.resets++
}

func (m *Manual) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.active = false
	m.cancels++
}

// Tick delivers one tick to the bound callback, reporting whether the
// delivery happened. An inactive or unbound handle drops the tick.
//
// The activity check and the callback run outside a common critical section,
// like a real scheduler whose tick is already in flight when Cancel arrives.
func (m *Manual) Tick() bool {
	m.mu.Lock()
	tick, active := m.tick, m.active
	m.mu.Unlock()

	if !active || tick == nil {
		return false
	}

	tick()

	return true
}

// Active reports whether the handle is currently delivering.
func (m *Manual) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.active
}

// Period returns the period of the current binding.
func (m *Manual) Period() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.period
}

// Resets returns the number of Reset calls.
func (m *Manual) Resets() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.resets
}

// Cancels returns the number of Cancel calls.
func (m *Manual) Cancels() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.cancels
}
