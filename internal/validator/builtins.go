package validator

import "sort"

// transitionTypes is the closed set of visual transitions the runtime
// implements.
var transitionTypes = map[string]bool{
	"fade":        true,
	"dissolve":    true,
	"slide_left":  true,
	"slide_right": true,
	"wipe":        true,
	"none":        true,
}

func transitionTypeNames() []string {
	names := make([]string, 0, len(transitionTypes))
	for name := range transitionTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// builtinFunc describes one entry of the call allow-list. Arity of -1
// means variadic.
type builtinFunc struct {
	minArgs int
	maxArgs int
}

// builtinFuncs is the fixed allow-list for call expressions. `visited`
// takes a scene name and is the only builtin that touches the scene table.
var builtinFuncs = map[string]builtinFunc{
	"random":  {0, 2},
	"min":     {2, 2},
	"max":     {2, 2},
	"abs":     {1, 1},
	"floor":   {1, 1},
	"round":   {1, 1},
	"len":     {1, 1},
	"visited": {1, 1},
}

func builtinFuncNames() []string {
	names := make([]string, 0, len(builtinFuncs))
	for name := range builtinFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// characterProperties are the statically known properties of a character
// base in a property access.
var characterProperties = map[string]bool{
	"name":     true,
	"color":    true,
	"visible":  true,
	"position": true,
}

func characterPropertyNames() []string {
	names := make([]string, 0, len(characterProperties))
	for name := range characterProperties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
