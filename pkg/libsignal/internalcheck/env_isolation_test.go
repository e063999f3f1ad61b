package internalcheck

import (
	"fmt"
	"go/ast"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// Environment state may only be read while assembling the build
// configuration in the CLI entry point. Everything else receives its inputs
// through explicit structs, which keeps the pipeline testable without
// mutating real process state.
const modulePath = "github.com/anooppoommen/libsignal-client"

var envFuncs = map[string]bool{
	"Getenv":    true,
	"LookupEnv": true,
	"Environ":   true,
	"Setenv":    true,
	"Unsetenv":  true,
}

func TestEnvironmentAccessConfinedToCommands(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, modulePath+"/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		if strings.HasPrefix(pkg.PkgPath, modulePath+"/cmd/") {
			continue
		}

		for _, file := range pkg.Syntax {
			fset := pkg.Fset
			ast.Inspect(file, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}

				selector, ok := call.Fun.(*ast.SelectorExpr)
				if !ok {
					return true
				}

				obj := pkg.TypesInfo.Uses[selector.Sel]
				if obj == nil || obj.Pkg() == nil {
					return true
				}

				if obj.Pkg().Path() != "os" || !envFuncs[obj.Name()] {
					return true
				}

				pos := fset.Position(selector.Pos())
				findings = append(findings, fmt.Sprintf("%s: os.%s outside cmd/", pos, obj.Name()))
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("environment access policy violation:\n%s", strings.Join(findings, "\n"))
	}
}
