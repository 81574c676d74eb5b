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

import "fillmore-labs.com/exitscope/shadow"

type resource struct {
	open bool
}

func (r *resource) use() {}

func disciplined() func() {
	res := &resource{open: true}

	resWeak := shadow.Weaken(res)

	return func() {
		res := resWeak.Restrengthen()
		if res == nil {
			return
		}

		res.use()
	}
}

func strongCapture() func() {
	res := &resource{open: true}

	resWeak := shadow.Weaken(res)
	_ = resWeak

	return func() {
		res.use() // want `Variable 'res' captured strongly after being weakened`
	}
}

func capturedBefore() func() {
	res := &resource{open: true}

	// A closure created before the weakening is not bound by it.
	cb := func() { res.use() }

	resWeak := shadow.Weaken(res)
	_ = resWeak

	return cb
}

func misnamed() {
	res := &resource{open: true}

	w := shadow.Weaken(res) // want `Weak binding 'w' should carry the derived name 'resWeak'`
	_ = w
}

func collision() {
	res := &resource{open: true}

	resWeak := &resource{open: false}
	_ = resWeak

	{
		resWeak := shadow.Weaken(res) // want `Derived name 'resWeak' collides with an existing variable`
		_ = resWeak
	}
}

func nonVariable() {
	tmpWeak := shadow.Weaken(&resource{}) // want `Weaken of a non-variable expression`
	_ = tmpWeak
}

func renamed() func() {
	res := &resource{open: true}

	resWeak := shadow.Weaken(res)

	return func() {
		r := resWeak.Restrengthen() // want `Restrengthened binding 'r' does not shadow 'res'`
		if r == nil {
			return
		}

		r.use()
	}
}
