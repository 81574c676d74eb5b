// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package gclplugin

import exitscope "fillmore-labs.com/exitscope/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Guard enables guard hygiene checks.
	Guard *bool `json:"guard,omitzero"`
	// WeakStrong enables weaken/restrengthen discipline checks.
	WeakStrong *bool `json:"weak-strong,omitzero"`
}

// Options converts [Settings] into a list of [exitscope.Option] for the exitscope analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []exitscope.Option {
	var opts []exitscope.Option

	opts = appendOption(opts, s.Guard, exitscope.WithGuard)
	opts = appendOption(opts, s.WeakStrong, exitscope.WithWeakStrong)

	return opts
}

// appendOption appends a non-nil setting to an [exitscope.Option] list.
func appendOption[T any](opts []exitscope.Option, value *T, constructor func(T) exitscope.Option) []exitscope.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
