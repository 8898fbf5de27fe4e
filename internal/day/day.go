// Package day models day tokens: the external identifiers naming a
// puzzle day, used to build filenames and dispatch marker text.
package day

import (
	"fmt"
	"strconv"

	"advent/internal/errors"
)

// Day is a validated puzzle day number (>= 1).
type Day int

// Parse validates a day token.
// - accepted: non-empty ASCII decimal digit strings with value >= 1
// - leading zeros are normalized ("07" names day 7)
// - anything else (signs, spaces, words, zero) => E_INVALID_DAY
func Parse(token string) (Day, error) {
	if token == "" {
		return 0, errors.New(errors.EInvalidDay, "day must be a positive integer, got empty string")
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return 0, errors.NewWithDetails(errors.EInvalidDay,
				fmt.Sprintf("day must be a positive integer, got %q", token),
				map[string]string{"token": token})
		}
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, errors.WrapWithDetails(errors.EInvalidDay,
			fmt.Sprintf("day must be a positive integer, got %q", token),
			err, map[string]string{"token": token})
	}
	if n < 1 {
		return 0, errors.NewWithDetails(errors.EInvalidDay,
			fmt.Sprintf("day must be >= 1, got %d", n),
			map[string]string{"token": token})
	}
	return Day(n), nil
}

// String returns the canonical decimal form.
func (d Day) String() string {
	return strconv.Itoa(int(d))
}

// Marker returns the dispatch marker text, e.g. "day 7".
func (d Day) Marker() string {
	return "day " + d.String()
}

// Line returns the registration line spliced into the dispatch file:
// four leading spaces plus the marker.
func (d Day) Line() string {
	return "    " + d.Marker()
}

// InputFile returns the real input file name, e.g. "day_7.txt".
func (d Day) InputFile() string {
	return "day_" + d.String() + ".txt"
}

// ExampleFile returns the example input file name, e.g. "day_7_example.txt".
func (d Day) ExampleFile() string {
	return "day_" + d.String() + "_example.txt"
}

// SourceFile returns the day source file name, e.g. "day_7.rs".
func (d Day) SourceFile() string {
	return "day_" + d.String() + ".rs"
}

// RunFlag returns the runner selection flag, e.g. "--day-7".
func (d Day) RunFlag() string {
	return "--day-" + d.String()
}
