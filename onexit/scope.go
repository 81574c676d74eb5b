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

package onexit

// Scope collects deferred actions for one lexical scope.
//
// Create it with [Begin] and drive teardown by deferring [Scope.End] in the
// same statement block. The zero Scope is ready to use; [Begin] exists so
// the begin/end pairing is visible to tooling.
type Scope struct {
	// actions in registration order; End consumes them back to front.
	actions []func()
}

// Begin starts a new scope. Defer [Scope.End] immediately:
//
//	s := onexit.Begin()
//	defer s.End()
func Begin() *Scope {
	return &Scope{}
}

// Do registers action to run when the scope ends. Actions run in reverse
// registration order. The action must not be nil.
func (s *Scope) Do(action func()) {
	if action == nil {
		panic("onexit: nil action")
	}

	s.actions = append(s.actions, action)
}

// End tears the scope down, invoking every registered action in reverse
// registration order. It is idempotent; a second call finds no pending
// actions.
//
// A panicking action does not abort teardown: the remaining actions still
// run, and the first panic value is re-raised afterwards.
func (s *Scope) End() {
	var panicked any

	for i := len(s.actions) - 1; i >= 0; i-- {
		if v := run(&s.actions[i]); v != nil && panicked == nil {
			panicked = v
		}
	}

	s.actions = s.actions[:0]

	if panicked != nil {
		panic(panicked)
	}
}

// run is the cleanup-invocation hook: it clears the slot before invoking
// the action it held, so no action can be invoked twice. It returns the
// recovered value if the action panicked.
func run(slot *func()) (panicked any) {
	action := *slot
	*slot = nil

	if action == nil {
		return nil
	}

	defer func() { panicked = recover() }()

	action()

	return nil
}
