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

package shadow

import "weak"

// Weak is a non-owning shadow of a variable of type *T. It observes the
// referent without extending its lifetime.
//
// The zero Weak restrengthens to nil.
type Weak[T any] struct {
	p weak.Pointer[T]
}

// Weaken takes a non-owning snapshot of strong's current referent. The
// snapshot does not keep the referent alive; bind it to a variable named
// after the original with a Weak suffix, e.g.
//
//	resWeak := shadow.Weaken(res)
//
// Weakening a nil pointer is valid and restrengthens to nil.
func Weaken[T any](strong *T) Weak[T] {
	return Weak[T]{p: weak.Make(strong)}
}

// Restrengthen upgrades the snapshot to an owning reference, atomically
// with respect to concurrent reclamation. It returns the original pointer
// while the referent is still alive, or nil once it has been reclaimed.
//
// Each call is independent: it reports the referent's state at its own
// instant, and the returned pointer keeps the referent alive only as long
// as the caller holds it. Rebind the result under the original variable's
// name so the inner scope shadows the outer, weakly held one.
func (w Weak[T]) Restrengthen() *T {
	return w.p.Value()
}
