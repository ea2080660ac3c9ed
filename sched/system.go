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

package sched

import (
	"sync"
	"time"
)

// System returns a [Handle] backed by the runtime clock. Each activation runs
// a goroutine with a [time.Ticker] that delivers ticks until the handle is
// cancelled or rebound.
//
// It stands in for an external scheduler when none is available, and drives
// the timing-sensitive tests of this module.
func System() Handle {
	return &systemHandle{}
}

type systemHandle struct {
	mu     sync.Mutex
	period time.Duration
	tick   func()
	stop   chan struct{} // nil while inactive
}

func (h *systemHandle) Bind(period time.Duration, tick func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.deactivate()
	h.period = period
	h.tick = tick
}

func (h *systemHandle) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.deactivate()
	if h.tick == nil || h.period <= 0 {
		return
	}

	stop := make(chan struct{})
	h.stop = stop

	go run(h.period, h.tick, stop)
}

func (h *systemHandle) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.deactivate()
}

// deactivate stops the current delivery goroutine, if any.
// Callers must hold h.mu. A tick already past the select may still be
// delivered after deactivate returns.
func (h *systemHandle) deactivate() {
	if h.stop != nil {
		close(h.stop)
		h.stop = nil
	}
}

func run(period time.Duration, tick func(), stop <-chan struct{}) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			tick()

		case <-stop:
			return
		}
	}
}
