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

// Package analyzer implements the exitscope static analysis pass.
//
// # Overview
//
// ExitScope validates two disciplines the runtime packages cannot enforce
// at run time.
//
// # Guard hygiene
//
// A scope begun with onexit.Begin must defer its End, or the registered
// actions silently never run on early returns and panics:
//
//	s := onexit.Begin() // want `Scope is begun but 'End' is never deferred`
//	s.Do(release)
//
// The fix is the canonical pairing:
//
//	s := onexit.Begin()
//	defer s.End()
//
// # Weak/strong discipline
//
// A closure participating in the weaken/restrengthen dance must not also
// capture the weakened variable strongly, the weak binding carries the
// derived Weak suffix, and the restrengthened binding shadows the original
// name:
//
//	resWeak := shadow.Weaken(res)
//	cb := func() {
//	    res := resWeak.Restrengthen()
//	    ...
//	}
//
// # Diagnostic codes
//
//   - es:ne — a begun scope never defers End
//   - es:de — End is called without defer
//   - es:le — an action is registered after the scope already ended
//   - es:nv — Weaken of a non-variable expression
//   - es:dn — a weak binding without the derived Weak name
//   - es:nc — the derived name collides with an existing variable
//   - es:sc — a weakened variable is captured strongly by a later closure
//   - es:rn — a restrengthened binding not shadowing the original name
//
// Individual findings can be suppressed with a `//nolint:exitscope` comment
// on the flagged line.
package analyzer
