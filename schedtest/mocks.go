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

// Package schedtest provides test implementations of [sched.Handle].
package schedtest

import (
	"time"

	"github.com/stretchr/testify/mock"

	"fillmore-labs.com/oneshot/sched"
)

// Mock is a stretchr mock for [sched.Handle]. In addition to supplying mock
// behavior, On* methods are provided to make expectations easier to set up.
type Mock struct {
	mock.Mock
}

var _ sched.Handle = (*Mock)(nil)

func (m *Mock) Bind(period time.Duration, tick func()) {
	m.Called(period, tick)
}

func (m *Mock) OnBind(period time.Duration) *mock.Call {
	return m.On("Bind", period, mock.AnythingOfType("func()"))
}

func (m *Mock) Reset() {
	m.Called()
}

func (m *Mock) OnReset() *mock.Call {
	return m.On("Reset")
}

func (m *Mock) Cancel() {
	m.Called()
}

func (m *Mock) OnCancel() *mock.Call {
	return m.On("Cancel")
}
