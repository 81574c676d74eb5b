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

// Package weakstrong checks the naming and capture discipline of the
// shadow package's weaken/restrengthen protocol.
//
// The protocol only removes an ownership cycle when the closure stops
// using the original variable: the weak binding carries the derived Weak
// suffix, and the restrengthened binding inside the closure shadows the
// original name. What the original macro system guaranteed at expansion
// time is checked statically here.
package weakstrong

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/exitscope/internal/astutil"
)

// shadowPath is the import path of the weak/strong runtime package.
const shadowPath = "fillmore-labs.com/exitscope/shadow"

// suffix is appended to the original variable's name to derive the weak
// binding's name.
const suffix = "Weak"

// Checker detects violations of the weaken/restrengthen discipline.
type Checker struct {
	info *types.Info
}

// New creates a [Checker] over the pass's type information.
func New(info *types.Info) Checker {
	return Checker{info: info}
}

// weakening records one `xWeak := shadow.Weaken(x)` statement.
type weakening struct {
	// orig is the weakened outer variable.
	orig *types.Var

	// pos is the end of the weakening statement; only closures created
	// after it are bound by the discipline.
	pos token.Pos
}

// Check inspects one function body and returns diagnostics for discipline
// violations.
func (c Checker) Check(body inspector.Cursor) []analysis.Diagnostic {
	var diagnostics []analysis.Diagnostic

	// Pass 1: collect weakenings and check their naming.
	weakened := make(map[*types.Var]weakening) // weak binding -> weakened variable
	for cur := range body.Preorder((*ast.AssignStmt)(nil)) {
		assign := cur.Node().(*ast.AssignStmt)

		c.recordWeaken(body, assign, weakened, &diagnostics)
		c.checkRestrengthen(body, assign, weakened, &diagnostics)
	}

	if len(weakened) == 0 {
		return diagnostics
	}

	// Pass 2: closures created after a weakening must not capture the
	// original variable strongly.
	diagnostics = append(diagnostics, c.checkCaptures(body, weakened)...)

	return diagnostics
}

// recordWeaken tracks `xWeak := shadow.Weaken(x)` statements and validates
// the argument and the derived name.
func (c Checker) recordWeaken(body inspector.Cursor, assign *ast.AssignStmt, weakened map[*types.Var]weakening, diagnostics *[]analysis.Diagnostic) {
	info := c.info

	if assign.Tok != token.DEFINE || len(assign.Rhs) != 1 || len(assign.Lhs) != 1 {
		return
	}

	call, ok := assign.Rhs[0].(*ast.CallExpr)
	if !ok || !astutil.IsPkgFunc(astutil.Callee(info, call), shadowPath, "Weaken") || len(call.Args) != 1 {
		return
	}

	arg, ok := ast.Unparen(call.Args[0]).(*ast.Ident)
	if !ok {
		// The protocol shadows variables; a temporary has no name to
		// shadow and nothing for Restrengthen to rebind.
		*diagnostics = append(*diagnostics, analysis.Diagnostic{
			Pos:     call.Args[0].Pos(),
			End:     call.Args[0].End(),
			Message: "Weaken of a non-variable expression (es:nv)",
		})

		return
	}

	orig, ok := info.Uses[arg].(*types.Var)
	if !ok {
		return
	}

	id, ok := assign.Lhs[0].(*ast.Ident)
	if !ok {
		return
	}

	weakVar, ok := info.Defs[id].(*types.Var)
	if !ok {
		return
	}

	derived := orig.Name() + suffix

	if weakVar.Name() != derived {
		*diagnostics = append(*diagnostics, analysis.Diagnostic{
			Pos:            id.Pos(),
			End:            id.End(),
			Message:        fmt.Sprintf("Weak binding '%s' should carry the derived name '%s' (es:dn)", weakVar.Name(), derived),
			SuggestedFixes: c.renameFixes(body, weakVar, derived),
		})
	} else if shadowed := c.collision(weakVar, derived); shadowed != nil {
		*diagnostics = append(*diagnostics, analysis.Diagnostic{
			Pos:     id.Pos(),
			End:     id.End(),
			Message: fmt.Sprintf("Derived name '%s' collides with an existing variable (es:nc)", derived),
			Related: []analysis.RelatedInformation{{Pos: shadowed.Pos(), Message: "Previously declared here"}},
		})
	}

	weakened[weakVar] = weakening{orig: orig, pos: assign.End()}
}

// collision looks for another object with the derived name visible outside
// the weak binding's own scope.
func (c Checker) collision(weakVar *types.Var, derived string) types.Object {
	scope := weakVar.Parent()
	if scope == nil || scope.Parent() == nil {
		return nil
	}

	_, obj := scope.Parent().LookupParent(derived, weakVar.Pos())
	if obj == nil || obj == weakVar {
		return nil
	}

	return obj
}

// checkRestrengthen validates that `x := xWeak.Restrengthen()` rebinds the
// weakened variable's original name.
func (c Checker) checkRestrengthen(body inspector.Cursor, assign *ast.AssignStmt, weakened map[*types.Var]weakening, diagnostics *[]analysis.Diagnostic) {
	info := c.info

	if assign.Tok != token.DEFINE || len(assign.Rhs) != 1 || len(assign.Lhs) != 1 {
		return
	}

	call, ok := assign.Rhs[0].(*ast.CallExpr)
	if !ok || !astutil.IsPkgFunc(astutil.Callee(info, call), shadowPath, "Restrengthen") {
		return
	}

	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return
	}

	recv, ok := ast.Unparen(sel.X).(*ast.Ident)
	if !ok {
		return
	}

	weakVar, ok := info.Uses[recv].(*types.Var)
	if !ok {
		return
	}

	w, ok := weakened[weakVar]
	if !ok {
		return
	}

	id, ok := assign.Lhs[0].(*ast.Ident)
	if !ok || id.Name == w.orig.Name() {
		return
	}

	d := analysis.Diagnostic{
		Pos:     id.Pos(),
		End:     id.End(),
		Message: fmt.Sprintf("Restrengthened binding '%s' does not shadow '%s' (es:rn)", id.Name, w.orig.Name()),
		Related: []analysis.RelatedInformation{{Pos: w.orig.Pos(), Message: "Weakened variable declared here"}},
	}

	if strong, ok := info.Defs[id].(*types.Var); ok {
		d.SuggestedFixes = c.renameFixes(body, strong, w.orig.Name())
	}

	*diagnostics = append(*diagnostics, d)
}

// renameFixes builds a fix renaming every occurrence of obj in the function
// body to the given name.
func (c Checker) renameFixes(body inspector.Cursor, obj *types.Var, to string) []analysis.SuggestedFix {
	var edits []analysis.TextEdit

	for cur := range body.Preorder((*ast.Ident)(nil)) {
		id := cur.Node().(*ast.Ident)
		if c.info.Defs[id] != types.Object(obj) && c.info.Uses[id] != types.Object(obj) {
			continue
		}

		edits = append(edits, analysis.TextEdit{Pos: id.Pos(), End: id.End(), NewText: []byte(to)})
	}

	if len(edits) == 0 {
		return nil
	}

	return []analysis.SuggestedFix{{
		Message:   fmt.Sprintf("Rename to '%s'", to),
		TextEdits: edits,
	}}
}

// checkCaptures flags closures created after a weakening that still use
// the original variable. Uses resolving to a fresh inner binding (the
// restrengthened shadow) are a different object and pass unflagged.
func (c Checker) checkCaptures(body inspector.Cursor, weakened map[*types.Var]weakening) []analysis.Diagnostic {
	info := c.info

	// Invert to the set of weakened originals.
	originals := make(map[*types.Var]token.Pos, len(weakened))
	for _, w := range weakened {
		originals[w.orig] = w.pos
	}

	var diagnostics []analysis.Diagnostic

	reported := make(map[*ast.Ident]struct{})

	for lit := range body.Preorder((*ast.FuncLit)(nil)) {
		litPos := lit.Node().Pos()

		// flagged dedupes per closure: one diagnostic per captured variable.
		var flagged map[*types.Var]struct{}

		for cur := range lit.Preorder((*ast.Ident)(nil)) {
			id := cur.Node().(*ast.Ident)
			if _, ok := reported[id]; ok {
				continue
			}

			v, ok := info.Uses[id].(*types.Var)
			if !ok {
				continue
			}

			weakenPos, ok := originals[v]
			if !ok || litPos < weakenPos {
				continue
			}

			if _, ok := flagged[v]; ok {
				continue
			}

			if flagged == nil {
				flagged = make(map[*types.Var]struct{})
			}

			flagged[v] = struct{}{}
			reported[id] = struct{}{}

			diagnostics = append(diagnostics, analysis.Diagnostic{
				Pos:     id.Pos(),
				End:     id.End(),
				Message: fmt.Sprintf("Variable '%s' captured strongly after being weakened (es:sc)", v.Name()),
				Related: []analysis.RelatedInformation{{Pos: weakenPos, Message: "Weakened here"}},
			})
		}
	}

	return diagnostics
}
