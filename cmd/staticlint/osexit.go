package main

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// OsExitAnalyzer запрещает прямые вызовы os.Exit в функции main
// пакета main: завершение процесса должно идти через логгер или
// возврат из main.
var OsExitAnalyzer = &analysis.Analyzer{
	Name:     "osexit",
	Doc:      "prohibits direct calls to os.Exit in main function of main package",
	Run:      runOsExit,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func runOsExit(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	ins := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	ins.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(node ast.Node) {
		fn := node.(*ast.FuncDecl)
		if fn.Name.Name != "main" || fn.Body == nil {
			return
		}

		ast.Inspect(fn.Body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			if isOsExitCall(pass, call) {
				pass.Reportf(call.Pos(), "avoid direct os.Exit call in main function of main package")
			}
			return true
		})
	})

	return nil, nil
}

// isOsExitCall проверяет, что выражение — вызов именно os.Exit.
func isOsExitCall(pass *analysis.Pass, call *ast.CallExpr) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Exit" {
		return false
	}

	ident, ok := sel.X.(*ast.Ident)
	if !ok {
		return false
	}

	obj := pass.TypesInfo.Uses[ident]
	pkgName, ok := obj.(*types.PkgName)
	return ok && pkgName.Imported().Path() == "os"
}
