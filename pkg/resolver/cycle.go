package resolver

import (
	"strings"

	errs "defaultslist/pkg/errors"
)

// cycleGuard detects a document that transitively includes itself. The
// source algorithm this package ports does not guard against this; per the
// design notes this is an added safety contract rather than a divergence
// risk, modeled the same way the teacher's inheritance chain builder detects
// circular dependencies: a stack of config_paths currently being expanded.
type cycleGuard struct {
	inStack map[string]bool
	path    []string
}

func newCycleGuard() *cycleGuard {
	return &cycleGuard{inStack: make(map[string]bool)}
}

// enter records path as being expanded. It fails with ConfigComposition if
// path is already on the stack, i.e. a cycle was found.
func (g *cycleGuard) enter(path string) error {
	if g.inStack[path] {
		cycle := append(append([]string{}, g.path...), path)
		return errs.NewComposition(
			"compute_element_defaults",
			"circular dependency detected: %s",
			strings.Join(cycle, " -> "),
		)
	}
	g.inStack[path] = true
	g.path = append(g.path, path)
	return nil
}

// exit removes path from the stack once its expansion has completed.
func (g *cycleGuard) exit(path string) {
	delete(g.inStack, path)
	g.path = g.path[:len(g.path)-1]
}
