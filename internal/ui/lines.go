package ui

import (
	"fmt"
	"strconv"

	"game-of-life/internal/core"
)

var helpLines = []string{
	"Space run/pause   Right step",
	"R clear   S random   H hide",
	"LMB paint  RMB erase  MMB pan",
	"Wheel zoom   Esc quit",
}

// statusLines formats the panel text for a grid snapshot.
func statusLines(s core.Status, mode string) []string {
	state := "paused"
	if s.Running {
		state = "running"
	}
	lines := []string{
		fmt.Sprintf("Grid        %dx%d", s.Width, s.Height),
		fmt.Sprintf("Generation  %d", s.Generation),
		fmt.Sprintf("Population  %d", s.Population),
		"State       " + state,
		"Scale       " + strconv.FormatFloat(s.Scale, 'f', 1, 64) + "x",
		fmt.Sprintf("Offset      %d,%d", s.OffsetX, s.OffsetY),
		"Drag        " + mode,
		"",
	}
	return append(lines, helpLines...)
}
