package validator

import (
	"nmscript/internal/ast"
	"nmscript/internal/diag"
)

// validateExpr recurses structurally through an expression, resolving
// identifiers against the variable table and marking usages.
func (v *Validator) validateExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case nil:
		// Malformed node: skip it, keep validating siblings.
	case ast.LiteralExpr:
		// Literals are always valid.
	case ast.IdentExpr:
		v.resolveVariable(e)
	case ast.BinaryExpr:
		v.validateExpr(e.Left)
		v.validateExpr(e.Right)
	case ast.UnaryExpr:
		v.validateExpr(e.X)
	case ast.CallExpr:
		v.validateCall(e)
	case ast.PropertyExpr:
		v.validateProperty(e)
	}
}

func (v *Validator) resolveVariable(e ast.IdentExpr) {
	if e.Name == "" {
		return
	}
	if _, ok := v.variables.lookup(e.Name); !ok {
		v.errorWithSuggestions(diag.UndefinedVariable, e.Loc,
			"variable '"+e.Name+"' is used before being set",
			e.Name, v.variables.names())
		return
	}
	v.variables.markUsed(e.Name, e.Loc)
}

func (v *Validator) validateCall(e ast.CallExpr) {
	fn, ok := builtinFuncs[e.Name]
	if !ok {
		v.errorWithSuggestions(diag.UnknownFunction, e.Loc,
			"unknown function '"+e.Name+"'",
			e.Name, builtinFuncNames())
	} else if len(e.Args) < fn.minArgs || len(e.Args) > fn.maxArgs {
		v.error(diag.UnknownFunction, e.Loc,
			"function '%s' called with %d argument(s)", e.Name, len(e.Args))
	}

	// visited("scene") references a scene without transferring control:
	// mark the target used but record no transition edge.
	if ok && e.Name == "visited" && len(e.Args) == 1 {
		if lit, isLit := e.Args[0].(ast.LiteralExpr); isLit && lit.Kind == ast.LitString {
			if _, defined := v.scenes.lookup(lit.Str); defined {
				v.scenes.markUsed(lit.Str, lit.Loc)
			} else {
				v.errorWithSuggestions(diag.UndefinedScene, lit.Loc,
					"visited() references undefined scene '"+lit.Str+"'",
					lit.Str, v.scenes.names())
			}
			return
		}
	}

	for _, arg := range e.Args {
		v.validateExpr(arg)
	}
}

// validateProperty checks `base.prop`. A base naming a declared character
// has a statically known property set; an unknown property there is a
// non-fatal warning. Any other base is validated as a plain expression
// and the property check is skipped (the schema is not enumerable).
func (v *Validator) validateProperty(e ast.PropertyExpr) {
	if ident, ok := e.Base.(ast.IdentExpr); ok {
		if _, isChar := v.characters.lookup(ident.Name); isChar {
			v.characters.markUsed(ident.Name, ident.Loc)
			if !characterProperties[e.Property] {
				w := diag.NewWarning(diag.UnknownProperty, v.loc(e.Loc),
					"character '"+ident.Name+"' has no property '"+e.Property+"'")
				if sims := diag.Similar(e.Property, characterPropertyNames(), v.suggest); len(sims) > 0 {
					w = w.WithSuggestions(sims...)
				}
				v.errs.Add(w)
			}
			return
		}
	}
	v.validateExpr(e.Base)
}
