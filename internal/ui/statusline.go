package ui

import (
	"fmt"

	"torus-life/internal/core"
)

// StatusLine formats the one-line summary drawn over the board.
func StatusLine(snap core.ParameterSnapshot) string {
	value := func(key string) string {
		if p, ok := snap.Lookup(key); ok {
			return p.Value
		}
		return "--"
	}
	state := "stopped"
	if value("running") == "true" {
		state = "running"
	}
	return fmt.Sprintf("gen %s  pop %s  res %s  %s", value("generation"), value("population"), value("resolution"), state)
}
