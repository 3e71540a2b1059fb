package validator

import "nmscript/internal/diag"

// reportUnusedSymbols emits warnings for every symbol that was defined but
// never referenced. The start scene is exempt: nothing ever jumps to it.
func (v *Validator) reportUnusedSymbols() {
	v.characters.each(func(info *SymbolInfo) {
		if !info.Used {
			v.warning(diag.UnusedCharacter, info.DefLoc,
				"character '%s' is defined but never used", info.Name)
		}
	})
	v.scenes.each(func(info *SymbolInfo) {
		if !info.Used && info.Name != v.startScene {
			v.warning(diag.UnusedScene, info.DefLoc,
				"scene '%s' is never the target of a goto or choice", info.Name)
		}
	})
	v.variables.each(func(info *SymbolInfo) {
		if !info.Used {
			v.warning(diag.UnusedVariable, info.DefLoc,
				"variable '%s' is set but never read", info.Name)
		}
	})
}
