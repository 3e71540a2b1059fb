package validator

import (
	"fmt"

	"nmscript/internal/ast"
	"nmscript/internal/diag"
)

// collectDefinitions is pass 1: it fills the character and scene tables
// and reports duplicates. Variables are deliberately not pre-collected;
// they are introduced by the first `set` during pass 2.
func (v *Validator) collectDefinitions(program *ast.Program) {
	for i := range program.Characters {
		v.collectCharacter(&program.Characters[i])
	}
	for i := range program.Scenes {
		v.collectScene(&program.Scenes[i])
	}
}

func (v *Validator) collectCharacter(decl *ast.CharacterDecl) {
	if decl.ID == "" {
		return
	}
	if existing, ok := v.characters.declare(decl.ID, decl.Loc); !ok {
		e := diag.NewError(diag.DuplicateCharacterDefinition, v.loc(decl.Loc),
			fmt.Sprintf("character '%s' is already defined", decl.ID)).
			WithRelated(v.loc(existing.DefLoc), "first defined here")
		v.errs.Add(e)
	}
}

func (v *Validator) collectScene(decl *ast.SceneDecl) {
	if decl.Name == "" {
		return
	}
	existing, ok := v.scenes.declare(decl.Name, decl.Loc)
	if !ok {
		e := diag.NewError(diag.DuplicateSceneDefinition, v.loc(decl.Loc),
			fmt.Sprintf("scene '%s' is already defined", decl.Name)).
			WithRelated(v.loc(existing.DefLoc), "first defined here")
		v.errs.Add(e)
		return
	}
	if decl.Entry && v.entryScene == "" {
		v.entryScene = decl.Name
	}
}
