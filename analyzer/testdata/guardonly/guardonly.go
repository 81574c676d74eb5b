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

package guardonly

import (
	"fillmore-labs.com/exitscope/onexit"
	"fillmore-labs.com/exitscope/shadow"
)

type resource struct {
	open bool
}

func release() {}

func unpaired() {
	s := onexit.Begin() // want `Scope is begun but 'End' is never deferred`
	s.Do(release)
}

// With the weak/strong check disabled, the misnamed binding passes.
func misnamed() {
	res := &resource{open: true}

	w := shadow.Weaken(res)
	_ = w
}
