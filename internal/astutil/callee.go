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

package astutil

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// Callee resolves the function or method invoked by call, unwrapping
// generic instantiations to the declared origin. Returns nil for calls of
// function values, conversions and builtins.
func Callee(info *types.Info, call *ast.CallExpr) *types.Func {
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok {
		return nil
	}

	return fn.Origin()
}

// IsPkgFunc reports whether fn is the function or method name declared in
// the package with the given import path.
func IsPkgFunc(fn *types.Func, path, name string) bool {
	if fn == nil || fn.Name() != name {
		return false
	}

	pkg := fn.Pkg()

	return pkg != nil && pkg.Path() == path
}
