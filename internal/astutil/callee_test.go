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

package astutil_test

import (
	"go/ast"
	"go/types"
	"testing"

	. "fillmore-labs.com/exitscope/internal/astutil"
)

func check(tb testing.TB, src string) (*ast.File, *types.Info) {
	tb.Helper()

	fset, f := parse(tb, src)

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Instances:  make(map[*ast.Ident]types.Instance),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
	}

	conf := types.Config{}
	if _, err := conf.Check("test", fset, []*ast.File{f}, info); err != nil {
		tb.Fatalf("Failed to type check source: %v", err)
	}

	return f, info
}

func calls(f *ast.File) []*ast.CallExpr {
	var cs []*ast.CallExpr

	ast.Inspect(f, func(n ast.Node) bool {
		if call, ok := n.(*ast.CallExpr); ok {
			cs = append(cs, call)
		}

		return true
	})

	return cs
}

func TestCallee(t *testing.T) {
	t.Parallel()

	const src = `package test

type box[T any] struct{ v T }

func (b box[T]) get() T { return b.v }

func g() {}

func f() {
	g()

	b := box[int]{v: 1}
	_ = b.get()

	v := g
	v()
}
`

	f, info := check(t, src)

	cs := calls(f)
	if len(cs) != 3 {
		t.Fatalf("Found %d calls, want 3", len(cs))
	}

	if fn := Callee(info, cs[0]); !IsPkgFunc(fn, "test", "g") {
		t.Errorf("Callee(g()) = %v, want test.g", fn)
	}

	if fn := Callee(info, cs[1]); !IsPkgFunc(fn, "test", "get") {
		t.Errorf("Callee(b.get()) = %v, want the generic origin test.get", fn)
	}

	if fn := Callee(info, cs[2]); fn != nil {
		t.Errorf("Callee(v()) = %v, want nil for a function value call", fn)
	}

	if IsPkgFunc(nil, "test", "g") {
		t.Error("IsPkgFunc(nil) should be false")
	}
}
