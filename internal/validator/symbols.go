package validator

import "nmscript/internal/source"

// SymbolInfo tracks one declared character, scene, or variable across a
// single Validate call.
type SymbolInfo struct {
	Name    string
	DefLoc  source.Location
	Usages  []source.Location
	Defined bool
	Used    bool
}

// symbolTable is a per-kind name index. Declaration order is kept so that
// unused-symbol reporting is deterministic.
type symbolTable struct {
	syms  map[string]*SymbolInfo
	order []string
}

func newSymbolTable() *symbolTable {
	return &symbolTable{syms: make(map[string]*SymbolInfo)}
}

// declare inserts a new symbol. If the name already exists the original
// entry is returned with ok=false (first definition wins).
func (t *symbolTable) declare(name string, loc source.Location) (*SymbolInfo, bool) {
	if existing, found := t.syms[name]; found {
		return existing, false
	}
	info := &SymbolInfo{Name: name, DefLoc: loc, Defined: true}
	t.syms[name] = info
	t.order = append(t.order, name)
	return info, true
}

// lookup resolves a name with exact-string matching.
func (t *symbolTable) lookup(name string) (*SymbolInfo, bool) {
	info, ok := t.syms[name]
	return info, ok
}

// markUsed records a usage at loc, declaring implicitly if needed (used
// for variables, which come into existence on first set).
func (t *symbolTable) markUsed(name string, loc source.Location) {
	info, ok := t.syms[name]
	if !ok {
		return
	}
	info.Used = true
	info.Usages = append(info.Usages, loc)
}

// names returns all symbol names in declaration order.
func (t *symbolTable) names() []string {
	return t.order
}

// each visits symbols in declaration order.
func (t *symbolTable) each(fn func(*SymbolInfo)) {
	for _, name := range t.order {
		fn(t.syms[name])
	}
}
