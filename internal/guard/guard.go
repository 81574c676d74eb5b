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

// Package guard checks the pairing discipline of onexit scopes.
//
// A scope begun with onexit.Begin only tears down on every exit path when
// its End is deferred. The checker flags begun scopes whose End is missing
// or not deferred, and actions registered after the scope already ended.
package guard

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"maps"
	"slices"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/exitscope/internal/astutil"
)

// onexitPath is the import path of the guard runtime package.
const onexitPath = "fillmore-labs.com/exitscope/onexit"

// Checker detects onexit scopes that are not properly ended.
type Checker struct {
	info *types.Info
}

// New creates a [Checker] over the pass's type information.
func New(info *types.Info) Checker {
	return Checker{info: info}
}

// state tracks one scope variable from its Begin to the end of the
// function body.
type state struct {
	// begin is the onexit.Begin call, used as the diagnostic position when
	// the scope never ends.
	begin ast.Node

	// deferred is set when a `defer s.End()` statement is found.
	deferred bool

	// directEnd is the first plain, non-deferred End call, or nil.
	directEnd *ast.CallExpr
}

// Check inspects one function body and returns diagnostics for unpaired
// scopes.
func (c Checker) Check(body inspector.Cursor) []analysis.Diagnostic {
	scopes := make(map[*types.Var]*state)
	deferredCalls := make(map[*ast.CallExpr]struct{})

	var diagnostics []analysis.Diagnostic

	// displaced holds scopes whose variable was rebound by a later Begin;
	// their pairing is judged by what happened before the rebinding.
	var displaced []*state

	// Cursor traversal yields statements in source order, so directEnd is
	// always populated before a later registration is examined.
	nodeTypes := []ast.Node{(*ast.AssignStmt)(nil), (*ast.DeferStmt)(nil), (*ast.CallExpr)(nil)}
	for cur := range body.Preorder(nodeTypes...) {
		switch node := cur.Node().(type) {
		case *ast.AssignStmt:
			c.recordBegin(node, scopes, &displaced, &diagnostics)

		case *ast.DeferStmt:
			deferredCalls[node.Call] = struct{}{}

			if s, ok := c.scopeMethod(node.Call, scopes, "End"); ok {
				s.deferred = true
			}

			// An End wrapped in a deferred closure still runs on every
			// exit path.
			if lit, ok := node.Call.Fun.(*ast.FuncLit); ok {
				c.markDeferredEnds(lit, scopes, deferredCalls)
			}

		case *ast.CallExpr:
			if _, ok := deferredCalls[node]; ok {
				continue
			}

			c.recordCall(node, scopes, &diagnostics)
		}
	}

	unpaired := slices.Concat(displaced, slices.Collect(maps.Values(scopes)))
	slices.SortFunc(unpaired, func(a, b *state) int { return int(a.begin.Pos() - b.begin.Pos()) })
	for _, s := range unpaired {
		if d, ok := c.diagnose(s); ok {
			diagnostics = append(diagnostics, d)
		}
	}

	return diagnostics
}

// markDeferredEnds marks End calls inside a deferred closure as deferred.
func (c Checker) markDeferredEnds(lit *ast.FuncLit, scopes map[*types.Var]*state, deferredCalls map[*ast.CallExpr]struct{}) {
	ast.Inspect(lit.Body, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}

		if s, ok := c.scopeMethod(call, scopes, "End"); ok {
			s.deferred = true
			deferredCalls[call] = struct{}{}
		}

		return true
	})
}

// recordBegin tracks `s := onexit.Begin()` statements.
func (c Checker) recordBegin(assign *ast.AssignStmt, scopes map[*types.Var]*state, displaced *[]*state, diagnostics *[]analysis.Diagnostic) {
	if len(assign.Rhs) != 1 || len(assign.Lhs) != 1 {
		return
	}

	call, ok := assign.Rhs[0].(*ast.CallExpr)
	if !ok || !astutil.IsPkgFunc(astutil.Callee(c.info, call), onexitPath, "Begin") {
		return
	}

	id, ok := assign.Lhs[0].(*ast.Ident)
	if !ok {
		return
	}

	if id.Name == "_" {
		// A discarded scope can never end.
		*diagnostics = append(*diagnostics, analysis.Diagnostic{
			Pos:     call.Pos(),
			End:     call.End(),
			Message: "Scope is begun but discarded; its actions can never run (es:ne)",
		})

		return
	}

	obj := c.info.Defs[id]
	if assign.Tok != token.DEFINE {
		obj = c.info.Uses[id]
	}

	v, ok := obj.(*types.Var)
	if !ok {
		return
	}

	// Rebinding the variable takes away the earlier scope's only handle.
	if prev, ok := scopes[v]; ok {
		*displaced = append(*displaced, prev)
	}

	scopes[v] = &state{begin: call}
}

// recordCall classifies plain End and Do calls on tracked scope variables.
func (c Checker) recordCall(call *ast.CallExpr, scopes map[*types.Var]*state, diagnostics *[]analysis.Diagnostic) {
	if s, ok := c.scopeMethod(call, scopes, "End"); ok && s.directEnd == nil {
		s.directEnd = call

		return
	}

	s, ok := c.scopeMethod(call, scopes, "Do")
	if !ok || s.directEnd == nil || call.Pos() < s.directEnd.Pos() {
		return
	}

	*diagnostics = append(*diagnostics, analysis.Diagnostic{
		Pos:     call.Pos(),
		End:     call.End(),
		Message: fmt.Sprintf("Action registered after scope '%s' has already ended (es:le)", receiverName(call)),
		Related: []analysis.RelatedInformation{{Pos: s.directEnd.Pos(), Message: "Scope ends here"}},
	})
}

// diagnose builds the diagnostic for a scope without a deferred End.
func (c Checker) diagnose(s *state) (analysis.Diagnostic, bool) {
	switch {
	case s.deferred:
		return analysis.Diagnostic{}, false

	case s.directEnd != nil:
		// End exists but runs only on the fall-through path.
		return analysis.Diagnostic{
			Pos:     s.directEnd.Pos(),
			End:     s.directEnd.End(),
			Message: fmt.Sprintf("Scope '%s' ends without defer; actions are skipped on early return or panic (es:de)", receiverName(s.directEnd)),
			SuggestedFixes: []analysis.SuggestedFix{{
				Message:   "Defer the End call",
				TextEdits: []analysis.TextEdit{{Pos: s.directEnd.Pos(), End: s.directEnd.Pos(), NewText: []byte("defer ")}},
			}},
		}, true

	default:
		return analysis.Diagnostic{
			Pos:     s.begin.Pos(),
			End:     s.begin.End(),
			Message: "Scope is begun but 'End' is never deferred (es:ne)",
		}, true
	}
}

// scopeMethod resolves a call of the named onexit.Scope method on a tracked
// scope variable.
func (c Checker) scopeMethod(call *ast.CallExpr, scopes map[*types.Var]*state, name string) (*state, bool) {
	if !astutil.IsPkgFunc(astutil.Callee(c.info, call), onexitPath, name) {
		return nil, false
	}

	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return nil, false
	}

	id, ok := ast.Unparen(sel.X).(*ast.Ident)
	if !ok {
		return nil, false
	}

	v, ok := c.info.Uses[id].(*types.Var)
	if !ok {
		return nil, false
	}

	s, ok := scopes[v]

	return s, ok
}

// receiverName returns the receiver identifier of a method call for
// diagnostic messages.
func receiverName(call *ast.CallExpr) string {
	if sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr); ok {
		if id, ok := ast.Unparen(sel.X).(*ast.Ident); ok {
			return id.Name
		}
	}

	return "<unknown>"
}
