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

package a

import "fillmore-labs.com/exitscope/onexit"

func release() {}

func paired() {
	s := onexit.Begin()
	defer s.End()

	s.Do(release)
}

func pairedClosure() {
	s := onexit.Begin()
	defer func() { s.End() }()

	s.Do(release)
}

func neverEnds() {
	s := onexit.Begin() // want `Scope is begun but 'End' is never deferred`
	s.Do(release)
}

func reassigned() {
	s := onexit.Begin()
	defer s.End()

	// The deferred End above already bound the first scope.
	s = onexit.Begin() // want `Scope is begun but 'End' is never deferred`
	s.Do(release)
}

func reboundBeforeDefer() {
	s := onexit.Begin() // want `Scope is begun but 'End' is never deferred`
	s = onexit.Begin()
	defer s.End()

	s.Do(release)
}

func discarded() {
	_ = onexit.Begin() // want `Scope is begun but discarded`
}

func notDeferred() {
	s := onexit.Begin()
	s.Do(release)
	s.End()       // want `Scope 's' ends without defer`
	s.Do(release) // want `Action registered after scope 's' has already ended`
}

func suppressed() {
	s := onexit.Begin() //nolint:exitscope
	s.Do(release)
}
