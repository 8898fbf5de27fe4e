// Package render provides output formatting for advent commands.
// This file implements show-specific rendering.
package render

import (
	"fmt"
	"io"
)

// ShowHumanData holds the data for human show output.
type ShowHumanData struct {
	// Core
	Day        int
	Status     string
	Registered bool
	RunFlag    string
	RunArgv    string // pre-quoted shell line

	// Files (paths are workspace-relative)
	SourcePath   string
	SourceState  string
	InputPath    string
	InputState   string
	InputBytes   int64
	ExamplePath  string
	ExampleState string
	ExampleBytes int64

	// Workspace
	Root     string
	Dispatch string
	Template string
}

// WriteShowHuman writes human-readable show output.
func WriteShowHuman(w io.Writer, data ShowHumanData) error {
	// Helper for yes/no booleans
	yesNo := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}

	// === DAY ===
	fmt.Fprintln(w, "=== day ===")
	fmt.Fprintf(w, "day: %d\n", data.Day)
	fmt.Fprintf(w, "status: %s\n", data.Status)
	fmt.Fprintf(w, "registered: %s\n", yesNo(data.Registered))
	fmt.Fprintf(w, "run_flag: %s\n", data.RunFlag)
	fmt.Fprintf(w, "run_argv: %s\n", data.RunArgv)

	// === FILES ===
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== files ===")
	fmt.Fprintf(w, "source: %s (%s)\n", data.SourcePath, data.SourceState)
	fmt.Fprintf(w, "input: %s (%s, %d bytes)\n", data.InputPath, data.InputState, data.InputBytes)
	fmt.Fprintf(w, "example: %s (%s, %d bytes)\n", data.ExamplePath, data.ExampleState, data.ExampleBytes)

	// === WORKSPACE ===
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== workspace ===")
	fmt.Fprintf(w, "root: %s\n", data.Root)
	fmt.Fprintf(w, "dispatch: %s\n", data.Dispatch)
	fmt.Fprintf(w, "template: %s\n", data.Template)

	return nil
}
