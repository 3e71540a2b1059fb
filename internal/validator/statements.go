package validator

import (
	"nmscript/internal/ast"
	"nmscript/internal/diag"
	"nmscript/internal/source"
)

// validateScene is pass 2 for a single scene: every statement is checked
// for internal correctness, usage flags are updated and transition edges
// recorded. The reachable flag starts true and is threaded through the
// body; statements reached with reachable == false get a DeadCode warning
// on top of whatever structural problems they have.
func (v *Validator) validateScene(decl *ast.SceneDecl) {
	v.current = decl.Name
	v.validateStmts(decl.Body, true)
	v.current = ""
}

// validateStmts walks a statement sequence and returns whether control can
// fall out of its end.
func (v *Validator) validateStmts(stmts []ast.Stmt, reachable bool) bool {
	for _, stmt := range stmts {
		if stmt == nil {
			continue
		}
		if !reachable && v.reportDeadCode {
			v.warning(diag.DeadCode, stmt.Pos(),
				"unreachable statement: control already left the scene")
		}
		reachable = v.validateStmt(stmt, reachable)
	}
	return reachable
}

// validateStmt dispatches on the statement variant and returns the
// reachability after the statement executes.
func (v *Validator) validateStmt(stmt ast.Stmt, reachable bool) bool {
	switch s := stmt.(type) {
	case ast.ShowStmt:
		v.validateShow(s)
	case ast.HideStmt:
		v.validateHide(s)
	case ast.SayStmt:
		v.validateSay(s)
	case ast.ChoiceStmt:
		return v.validateChoice(s, reachable)
	case ast.IfStmt:
		return v.validateIf(s, reachable)
	case ast.GotoStmt:
		v.validateGoto(s)
		// Unconditional transfer: nothing after this runs, resolved or not.
		return false
	case ast.WaitStmt:
		v.validateExpr(s.Duration)
	case ast.PlayStmt:
		v.validatePlay(s)
	case ast.StopStmt:
		// Channel is grammar-checked; nothing semantic to verify.
	case ast.SetStmt:
		v.validateSet(s)
	case ast.TransitionStmt:
		v.validateTransition(s)
	case ast.BlockStmt:
		return v.validateStmts(s.Stmts, reachable)
	case ast.ExprStmt:
		v.validateExpr(s.X)
	}
	return reachable
}

func (v *Validator) validateShow(s ast.ShowStmt) {
	switch s.Target {
	case ast.ShowCharacter:
		v.resolveCharacter(s.ID, s.Loc)
		if v.validateAssets && s.ID != "" {
			if ok, checked := v.characterSpriteExists(s.ID); checked && !ok {
				v.error(diag.MissingAsset, s.Loc,
					"character '%s' has no sprite assets", s.ID)
			}
		}
	case ast.ShowBackground:
		if v.validateAssets && s.ID != "" {
			if ok, checked := v.backgroundExists(s.ID); checked && !ok {
				v.error(diag.MissingAsset, s.Loc,
					"background asset '%s' does not exist", s.ID)
			}
		}
	}
}

func (v *Validator) validateHide(s ast.HideStmt) {
	if s.Target == ast.ShowCharacter {
		v.resolveCharacter(s.ID, s.Loc)
	}
}

func (v *Validator) validateSay(s ast.SayStmt) {
	// An absent speaker is the narrator and always valid.
	if s.Speaker != "" {
		v.resolveCharacter(s.Speaker, s.Loc)
	}
}

func (v *Validator) validateChoice(s ast.ChoiceStmt, reachable bool) bool {
	if len(s.Options) == 0 {
		v.error(diag.EmptyChoiceBlock, s.Loc, "choice block has no options")
		return false
	}
	// Each option starts from the pre-choice flag; the statement after the
	// choice is reachable if any option can fall through.
	exit := false
	for _, opt := range s.Options {
		if v.validateStmts(opt.Body, reachable) {
			exit = true
		}
	}
	return exit
}

func (v *Validator) validateIf(s ast.IfStmt, reachable bool) bool {
	v.validateExpr(s.Cond)
	thenExit := v.validateStmts(s.Then, reachable)
	elseExit := v.validateStmts(s.Else, reachable)
	// OR-merge: if either branch can fall through, so can the statement
	// after the if. A missing else branch falls through trivially.
	return thenExit || elseExit
}

func (v *Validator) validateGoto(s ast.GotoStmt) {
	if s.Target == "" {
		v.error(diag.InvalidGotoTarget, s.Loc, "goto without a target scene")
		return
	}
	if _, ok := v.scenes.lookup(s.Target); !ok {
		// Unresolved target: error, and no graph edge.
		v.errorWithSuggestions(diag.UndefinedScene, s.Loc,
			"goto target '"+s.Target+"' is not a defined scene",
			s.Target, v.scenes.names())
		return
	}
	v.scenes.markUsed(s.Target, s.Loc)
	v.addEdge(v.current, s.Target)
}

func (v *Validator) validatePlay(s ast.PlayStmt) {
	v.validateExpr(s.Asset)
	if !v.validateAssets {
		return
	}
	// Only literal paths can be checked statically.
	if lit, ok := s.Asset.(ast.LiteralExpr); ok && lit.Kind == ast.LitString {
		if exists, checked := v.audioExists(lit.Str, s.Channel); checked && !exists {
			v.error(diag.MissingAsset, s.Loc,
				"%s asset '%s' does not exist", s.Channel, lit.Str)
		}
	}
}

func (v *Validator) validateSet(s ast.SetStmt) {
	if s.Name != "" {
		// The LHS introduces the variable; defining without reading is fine.
		v.markVariableDefined(s.Name, s.Loc)
	}
	v.validateExpr(s.Value)
}

func (v *Validator) validateTransition(s ast.TransitionStmt) {
	if !transitionTypes[s.Type] {
		v.errorWithSuggestions(diag.InvalidTransitionType, s.Loc,
			"unknown transition type '"+s.Type+"'",
			s.Type, transitionTypeNames())
	}
	if s.Duration != nil {
		v.validateExpr(s.Duration)
	}
}

// resolveCharacter marks a character reference used, or reports it with
// suggestions.
func (v *Validator) resolveCharacter(name string, loc source.Location) {
	if name == "" {
		return
	}
	if _, ok := v.characters.lookup(name); !ok {
		v.errorWithSuggestions(diag.UndefinedCharacter, loc,
			"character '"+name+"' is not defined",
			name, v.characters.names())
		return
	}
	v.characters.markUsed(name, loc)
}

// markVariableDefined introduces a variable on its first assignment.
func (v *Validator) markVariableDefined(name string, loc source.Location) {
	v.variables.declare(name, loc)
}

// checkSceneFiles warns about declared scenes with no backing scene file.
// Editor projects keep one layout file per scene; a scene declared only in
// the script plays without visuals.
func (v *Validator) checkSceneFiles(program *ast.Program) {
	if !v.validateAssets || v.sceneFileExists == nil {
		return
	}
	for i := range program.Scenes {
		s := &program.Scenes[i]
		if !v.sceneFileExists(s.Name) {
			v.warning(diag.MissingAsset, s.Loc,
				"scene '%s' has no scene file in the project", s.Name)
		}
	}
}

// --- asset existence, context first, legacy callbacks as fallback ---

func (v *Validator) backgroundExists(id string) (exists, checked bool) {
	if v.projectCtx != nil {
		return v.projectCtx.BackgroundExists(id), true
	}
	if v.assetFileExists != nil {
		return v.assetFileExists(id), true
	}
	return false, false
}

func (v *Validator) audioExists(path, mediaType string) (exists, checked bool) {
	if v.projectCtx != nil {
		return v.projectCtx.AudioExists(path, mediaType), true
	}
	if v.assetFileExists != nil {
		return v.assetFileExists(path), true
	}
	return false, false
}

func (v *Validator) characterSpriteExists(id string) (exists, checked bool) {
	if v.projectCtx != nil {
		return v.projectCtx.CharacterSpriteExists(id), true
	}
	if v.sceneObjectExists != nil {
		return v.sceneObjectExists(v.current, id), true
	}
	return false, false
}
