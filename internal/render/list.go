package render

import (
	"fmt"
	"io"
	"strconv"
)

// DayHumanRow holds the fields for a single human-output row.
// This is separate from DaySummary to allow formatting before display.
type DayHumanRow struct {
	Day     string
	Status  string
	Input   string
	Example string
	Source  string
}

// WriteListHuman writes the list output in human-readable format.
// Fields are separated by whitespace columns for easy scanning.
func WriteListHuman(w io.Writer, rows []DayHumanRow) error {
	if len(rows) == 0 {
		return nil
	}

	// Calculate column widths
	widths := columnWidths(rows)

	// Write header
	header := formatRow(
		"DAY", widths.day,
		"STATUS", widths.status,
		"INPUT", widths.input,
		"EXAMPLE", widths.example,
		"SOURCE", widths.source,
	)
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	// Write rows
	for _, row := range rows {
		line := formatRow(
			row.Day, widths.day,
			row.Status, widths.status,
			row.Input, widths.input,
			row.Example, widths.example,
			row.Source, widths.source,
		)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// colWidths holds the calculated column widths.
type colWidths struct {
	day     int
	status  int
	input   int
	example int
	source  int
}

// columnWidths calculates the maximum width for each column.
func columnWidths(rows []DayHumanRow) colWidths {
	widths := colWidths{
		day:     len("DAY"),
		status:  len("STATUS"),
		input:   len("INPUT"),
		example: len("EXAMPLE"),
		source:  len("SOURCE"),
	}

	for _, row := range rows {
		if len(row.Day) > widths.day {
			widths.day = len(row.Day)
		}
		if len(row.Status) > widths.status {
			widths.status = len(row.Status)
		}
		if len(row.Input) > widths.input {
			widths.input = len(row.Input)
		}
		if len(row.Example) > widths.example {
			widths.example = len(row.Example)
		}
		if len(row.Source) > widths.source {
			widths.source = len(row.Source)
		}
	}

	return widths
}

// formatRow formats a row with the given column values and widths.
func formatRow(day string, dayW int, status string, statusW int, input string, inputW int, example string, exampleW int, source string, sourceW int) string {
	return fmt.Sprintf("%-*s  %-*s  %-*s  %-*s  %s",
		dayW, day,
		statusW, status,
		inputW, input,
		exampleW, example,
		source,
	)
}

// FormatHumanRow converts a DaySummary to a DayHumanRow for display.
func FormatHumanRow(s DaySummary) DayHumanRow {
	return DayHumanRow{
		Day:     strconv.Itoa(s.Day),
		Status:  s.Status,
		Input:   s.Input.State,
		Example: s.Example.State,
		Source:  s.Source.State,
	}
}

// FormatHumanRows converts a slice of DaySummary to DayHumanRow.
func FormatHumanRows(summaries []DaySummary) []DayHumanRow {
	rows := make([]DayHumanRow, len(summaries))
	for i, s := range summaries {
		rows[i] = FormatHumanRow(s)
	}
	return rows
}
