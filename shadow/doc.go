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
Package shadow lets a closure observe variables without keeping their
referents alive, then re-establish ownership for the duration of a single
execution.

[Weaken] takes a non-owning snapshot of a variable, bound under the
variable's name with a Weak suffix. Inside the closure, [Weak.Restrengthen]
upgrades the snapshot back to an owning reference, rebound under the
original name so the closure body reads naturally:

	res := open()

	resWeak := shadow.Weaken(res)
	cb := func() {
		res := resWeak.Restrengthen()
		if res == nil {
			return // referent already reclaimed
		}
		res.Use()
	}

The closure cb does not keep res's referent alive for as long as cb itself
is retained; the restrengthened binding keeps it alive only while one
invocation of cb runs. If the referent was reclaimed between the two
phases, Restrengthen yields nil rather than a dangling reference, and each
invocation observes the referent's state at its own instant.

The upgrade is safe against concurrent reclamation; see [weak.Pointer]. No
additional synchronization is introduced, and two closures weakening the
same variable are fully independent.

The naming discipline (the Weak suffix, rebinding the original name) is
enforced statically by the exitscope analyzer.
*/
package shadow
