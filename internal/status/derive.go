// Package status provides pure status derivation logic for puzzle days.
// No filesystem calls are made in this package.
package status

// Derived status string constants (user-visible contract, must remain stable across v1.x).
const (
	StatusMissing       = "missing"
	StatusBroken        = "broken"
	StatusUnregistered  = "unregistered"
	StatusAwaitingInput = "awaiting input"
	StatusReady         = "ready"
)

// File state string constants used for the input and example columns.
const (
	FileMissing = "missing"
	FileEmpty   = "empty"
	FileOK      = "ok"
)

// Snapshot contains local-only inputs for status derivation.
// These values must be computed by the caller from the dispatch file and
// the workspace tree.
type Snapshot struct {
	// Registered is true iff the dispatch file carries the day's marker line.
	Registered bool

	// SourceExists is true iff the day's source file exists on disk.
	SourceExists bool

	// InputExists is true iff the day's input file exists.
	InputExists bool

	// InputBytes is the size of the day's input file in bytes.
	// Set to 0 if the file is missing or unreadable.
	InputBytes int64

	// ExampleExists is true iff the day's example input file exists.
	ExampleExists bool

	// ExampleBytes is the size of the day's example input file in bytes.
	// Set to 0 if the file is missing or unreadable.
	ExampleBytes int64
}

// Derived contains the computed status values.
type Derived struct {
	// Status is the human-readable status string.
	Status string

	// InputNonempty is true iff the input file exists and holds any bytes.
	InputNonempty bool

	// ExampleNonempty is true iff the example file exists and holds any bytes.
	ExampleNonempty bool
}

// Derive computes the derived status from a local snapshot.
// This function is pure and must not panic.
func Derive(in Snapshot) Derived {
	// Clamp negative sizes to 0
	inputBytes := in.InputBytes
	if inputBytes < 0 {
		inputBytes = 0
	}
	exampleBytes := in.ExampleBytes
	if exampleBytes < 0 {
		exampleBytes = 0
	}

	inputNonempty := in.InputExists && inputBytes > 0
	exampleNonempty := in.ExampleExists && exampleBytes > 0

	return Derived{
		Status:          deriveStatus(in, inputNonempty),
		InputNonempty:   inputNonempty,
		ExampleNonempty: exampleNonempty,
	}
}

// deriveStatus implements the precedence rules for status derivation.
func deriveStatus(in Snapshot, inputNonempty bool) string {
	// 1) Nothing on disk and nothing registered: the day does not exist
	if !in.Registered && !in.SourceExists {
		return StatusMissing
	}

	// 2) Registered but the source is gone: the crate will not compile
	if in.Registered && !in.SourceExists {
		return StatusBroken
	}

	// 3) Source present but never registered: the day will never run
	if !in.Registered {
		return StatusUnregistered
	}

	// 4) Runnable once the real input arrives
	if !inputNonempty {
		return StatusAwaitingInput
	}

	return StatusReady
}

// FileState returns the display state for an input file.
func FileState(exists bool, size int64) string {
	switch {
	case !exists:
		return FileMissing
	case size <= 0:
		return FileEmpty
	default:
		return FileOK
	}
}
