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

import "log/slog"

// Option defines configurable parameters for [New].
type Option func(*options)

// WithFunction is an option to configure a default callback, used when
// [Wrapper.NewTimer] is called with a nil function.
func WithFunction(function func()) Option {
	return func(o *options) {
		o.Function = function
	}
}

// WithLogger is an option to configure a logger for timer state transitions.
// Transitions are logged at debug level; without this option they are
// discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.Logger = logger
	}
}

// options defines configurable parameters for the wrapper.
type options struct {
	Function func()
	Logger   *slog.Logger
}
