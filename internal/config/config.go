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

// Package config holds the bitmask flag types configuring the exitscope
// analyzer.
package config

// Checks represents the individual checks of the analyzer.
type Checks uint8

const (
	// GuardCheck enables guard hygiene checks (begun scopes without a
	// deferred End).
	GuardCheck Checks = 1 << iota

	// WeakStrongCheck enables weaken/restrengthen discipline checks.
	WeakStrongCheck
)

// DefaultChecks returns the checks enabled by default.
func DefaultChecks() Checks {
	return GuardCheck | WeakStrongCheck
}

// Set adjusts the mask by enabling or disabling the specified check.
func (c *Checks) Set(flag Checks, value bool) {
	if value {
		*c |= flag
	} else {
		*c &^= flag
	}
}

// Enabled reports whether the specified check is enabled.
func (c Checks) Enabled(flag Checks) bool {
	return c&flag != 0
}

// Behavior represents behavioral options for the analyzer.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to analyze generated files.
	IncludeGenerated Behavior = 1 << iota
)

// DefaultBehavior returns the behavior enabled by default.
func DefaultBehavior() Behavior {
	return 0
}

// Set adjusts the mask by enabling or disabling the specified option.
func (b *Behavior) Set(flag Behavior, value bool) {
	if value {
		*b |= flag
	} else {
		*b &^= flag
	}
}

// Enabled reports whether the specified option is enabled.
func (b Behavior) Enabled(flag Behavior) bool {
	return b&flag != 0
}
