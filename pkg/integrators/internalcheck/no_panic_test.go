package internalcheck

import (
	"fmt"
	"go/ast"
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// TestNoPanicInLibrary rejects explicit panic calls in non-test library code.
// Anything on the evaluation path may run under a foreign stack frame, where
// an unwinding panic cannot be recovered by the caller.
func TestNoPanicInLibrary(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, "github.com/integrators-go/integrators/pkg/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}
				ident, ok := call.Fun.(*ast.Ident)
				if !ok {
					return true
				}
				if b, ok := pkg.TypesInfo.Uses[ident].(*types.Builtin); ok && b.Name() == "panic" {
					findings = append(findings, fmt.Sprintf("%s: panic in library code; return an error", pkg.Fset.Position(call.Pos())))
				}
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("panic policy violation:\n%s", strings.Join(findings, "\n"))
	}
}
