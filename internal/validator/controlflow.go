package validator

import (
	"nmscript/internal/ast"
	"nmscript/internal/diag"
)

// analyzeControlFlow consumes the scene graph built during pass 2. It
// computes the set of scenes reachable from the entry scene and warns
// about the rest, plus about scenes with empty bodies. Cycles are fine:
// the visited set keeps the traversal finite and a loop in the story is
// not itself a problem.
func (v *Validator) analyzeControlFlow(program *ast.Program) {
	if len(program.Scenes) == 0 {
		return
	}

	start := v.entryScene
	if start == "" {
		start = program.Scenes[0].Name
	}
	v.startScene = start
	visited := make(map[string]bool)
	v.findReachableScenes(start, visited)

	if v.reportDeadCode {
		for i := range program.Scenes {
			scene := &program.Scenes[i]
			if !visited[scene.Name] {
				v.warning(diag.UnreachableScene, scene.Loc,
					"scene '%s' is unreachable from scene '%s'", scene.Name, start)
			}
			if len(scene.Body) == 0 {
				v.warning(diag.EmptyScene, scene.Loc,
					"scene '%s' has no statements", scene.Name)
			}
		}
	}
}

// findReachableScenes is a BFS over the transition graph.
func (v *Validator) findReachableScenes(start string, visited map[string]bool) {
	queue := []string{start}
	visited[start] = true
	for len(queue) > 0 {
		scene := queue[0]
		queue = queue[1:]
		for _, next := range v.sceneGraph[scene] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
}
