// Package render provides output formatting for advent commands.
package render

import (
	"encoding/json"
	"io"
)

// FileJSON describes one workspace file in JSON output.
type FileJSON struct {
	// State is "ok", "empty", or "missing".
	State string `json:"state"`

	// Bytes is the file size in bytes (0 if missing).
	Bytes int64 `json:"bytes"`

	// Path is the workspace-relative path.
	Path string `json:"path"`
}

// DaySummary represents a day in list output (both human and JSON).
// This is the public contract for list --json output.
type DaySummary struct {
	// Day is the day number.
	Day int `json:"day"`

	// Status is the derived status string.
	Status string `json:"status"`

	// Registered is true iff the dispatch file carries the day's marker.
	Registered bool `json:"registered"`

	// Source describes the day's source file.
	Source FileJSON `json:"source"`

	// Input describes the day's puzzle input.
	Input FileJSON `json:"input"`

	// Example describes the day's example input.
	Example FileJSON `json:"example"`
}

// ListJSONEnvelope is the stable JSON output format for list --json.
type ListJSONEnvelope struct {
	SchemaVersion string       `json:"schema_version"`
	Data          []DaySummary `json:"data"`
}

// WriteListJSON writes the list output as JSON to the given writer.
func WriteListJSON(w io.Writer, summaries []DaySummary) error {
	env := ListJSONEnvelope{
		SchemaVersion: "1.0",
		Data:          summaries,
	}
	// Use empty slice if nil for valid JSON array output
	if env.Data == nil {
		env.Data = []DaySummary{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ============================================================================
// Show command JSON types
// ============================================================================

// DayDetail represents the full day detail for show --json output.
// This is the public contract for show --json output (v1 stable).
type DayDetail struct {
	// Day is the day number.
	Day int `json:"day"`

	// Status is the derived status string.
	Status string `json:"status"`

	// Registered is true iff the dispatch file carries the day's marker.
	Registered bool `json:"registered"`

	// RunFlag is the harness flag that selects this day.
	RunFlag string `json:"run_flag"`

	// RunArgv is the exact runner invocation `advent run <day>` would use.
	RunArgv []string `json:"run_argv"`

	// Source describes the day's source file.
	Source FileJSON `json:"source"`

	// Input describes the day's puzzle input.
	Input FileJSON `json:"input"`

	// Example describes the day's example input.
	Example FileJSON `json:"example"`

	// Paths contains resolved workspace paths.
	Paths PathsJSON `json:"paths"`
}

// PathsJSON contains resolved workspace paths for show --json.
type PathsJSON struct {
	// Root is the workspace root.
	Root string `json:"root"`

	// Dispatch is the dispatch file path.
	Dispatch string `json:"dispatch"`

	// Template is the day template path.
	Template string `json:"template"`
}

// ShowJSONEnvelope is the stable JSON output format for show --json.
type ShowJSONEnvelope struct {
	SchemaVersion string     `json:"schema_version"`
	Data          *DayDetail `json:"data"` // nullable on error
}

// WriteShowJSON writes the show output as JSON to the given writer.
func WriteShowJSON(w io.Writer, detail *DayDetail) error {
	env := ShowJSONEnvelope{
		SchemaVersion: "1.0",
		Data:          detail,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}
