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

// Package oneshot adapts a periodic, externally scheduled timer into
// single-use, thread-like timers.
//
// A [Wrapper] binds one externally owned [sched.Handle] and mints [Timer]
// instances from it. Each Timer behaves like a blocking timer thread — it is
// started once, fires its callback at most once, can be cancelled before
// firing, and can be joined — while the actual clocking is delegated to the
// external scheduler that owns the handle. Code written against the blocking
// contract cannot tell the difference.
//
// The shared handle backs one Timer at a time; create the next Timer after
// the previous one has fired or been cancelled.
package oneshot

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"fillmore-labs.com/oneshot/internal/adapter"
	"fillmore-labs.com/oneshot/sched"
)

var (
	// ErrNoFunction is returned when a timer is created without a callback
	// and the wrapper carries no default.
	ErrNoFunction = errors.New("timer function required")
	// ErrNonPositiveInterval is returned when a timer is created with a zero
	// or negative interval.
	ErrNonPositiveInterval = errors.New("timer interval must be positive")
)

// Wrapper binds a class of single-use timers to one externally owned handle.
//
// One external timer resource may back many sequentially created timers;
// each [Wrapper.NewTimer] call rebinds the shared handle for the new timer's
// firing window. Serializing the lifetimes of concurrently held timers is
// the caller's responsibility.
type Wrapper struct {
	handle   sched.Handle
	function func()
	logger   *slog.Logger
}

// New creates a [Wrapper] around handle.
//
//   - handle is the externally owned timer resource; the wrapper never
//     destroys it.
//   - options configure a default callback and logging.
func New(handle sched.Handle, opts ...Option) *Wrapper {
	option := options{}
	for _, opt := range opts {
		opt(&option)
	}

	logger := option.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Wrapper{
		handle:   handle,
		function: option.Function,
		logger:   logger,
	}
}

// NewTimer mints a fresh single-use [Timer] that will invoke function once,
// interval after [Timer.Start] — as measured by the scheduler owning the
// shared handle.
//
// A nil function falls back to the wrapper's [WithFunction] default. The
// returned timer is not running; like a timer thread, it does nothing until
// started.
func (w *Wrapper) NewTimer(interval time.Duration, function func()) (*Timer, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrNonPositiveInterval, interval)
	}

	if function == nil {
		function = w.function
	}
	if function == nil {
		return nil, ErrNoFunction
	}

	// The shared handle may still be enabled from a previous use.
	w.handle.Cancel()

	return &Timer{
		function: function,
		interval: interval,
		logger:   w.logger,
		adapter:  adapter.New(w.handle),
		done:     make(chan struct{}),
	}, nil
}
