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

package config_test

import (
	"testing"

	. "fillmore-labs.com/exitscope/internal/config"
)

func TestChecks(t *testing.T) {
	t.Parallel()

	c := DefaultChecks()

	if !c.Enabled(GuardCheck) || !c.Enabled(WeakStrongCheck) {
		t.Error("All checks should be enabled by default")
	}

	c.Set(GuardCheck, false)

	if c.Enabled(GuardCheck) {
		t.Error("GuardCheck should be disabled")
	}

	if !c.Enabled(WeakStrongCheck) {
		t.Error("Disabling GuardCheck should not affect WeakStrongCheck")
	}

	c.Set(GuardCheck, true)

	if !c.Enabled(GuardCheck) {
		t.Error("GuardCheck should be re-enabled")
	}
}

func TestBehavior(t *testing.T) {
	t.Parallel()

	b := DefaultBehavior()

	if b.Enabled(IncludeGenerated) {
		t.Error("Generated files should be skipped by default")
	}

	b.Set(IncludeGenerated, true)

	if !b.Enabled(IncludeGenerated) {
		t.Error("IncludeGenerated should be enabled")
	}
}
