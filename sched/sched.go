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

// Package sched defines the contract for externally owned timer resources.
//
// A [Handle] represents a timer that belongs to some scheduling or event-loop
// service: the service measures elapsed time and invokes the bound tick
// callback on a goroutine of its choosing, possibly once per period until the
// handle is cancelled. The rest of this module only consumes this interface;
// [System] is a reference implementation backed by the runtime clock.
package sched

import "time"

// Handle is an externally owned, possibly periodic timer resource.
//
// Implementations must tolerate Cancel at any time, including concurrently
// with a tick that is already in flight: a late tick after Cancel returns is
// permitted, and consumers of this interface account for it.
type Handle interface {
	// Bind registers the tick callback and period used on the next
	// activation. The handle stops delivering before rebinding; delivery
	// does not resume until Reset is called.
	Bind(period time.Duration, tick func())

	// Reset activates the handle, restarting its period from now. Ticks are
	// delivered at least once per elapsed period until the handle is
	// cancelled. Resetting an active handle restarts its period.
	Reset()

	// Cancel deactivates the handle. Cancelling an inactive handle succeeds
	// with no effect. A tick already in flight may still be delivered after
	// Cancel returns.
	Cancel()
}
