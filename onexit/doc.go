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

/*
Package onexit runs registered actions exactly once when a lexical scope is
torn down, on every exit path.

The entry point is [Begin], which creates a [Scope]. Its [Scope.End] method
is deferred immediately, and actions are registered with [Scope.Do] as the
resources they release are acquired:

	s := onexit.Begin()
	defer s.End()

	f, err := os.Open(name)
	if err != nil {
		return err
	}
	s.Do(func() { f.Close() })

	// ... early returns and panics all release f

# Ordering

Actions run in reverse registration order, mirroring nested resource
teardown: the last resource acquired is the first released. Only actions
whose [Scope.Do] statement was actually reached are invoked. Nested scopes
each complete their own teardown before the enclosing scope's deferred
[Scope.End] runs, per ordinary defer sequencing.

# Failing actions

A panic in one action does not skip the actions registered before it:
teardown recovers the panic, runs the remaining actions, and re-raises the
first recovered value once the scope is fully torn down.

# Exactly once

Each action slot is cleared before its action is invoked, so an action can
never run twice, and calling [Scope.End] again is a no-op.

A [Scope] is a plain local value. It holds no locks and is not meant to be
shared across goroutines; two scopes in concurrently executing functions are
fully independent.
*/
package onexit
