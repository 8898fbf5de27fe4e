package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteListHuman_AlignsColumns(t *testing.T) {
	rows := []DayHumanRow{
		{Day: "1", Status: "ready", Input: "ok", Example: "ok", Source: "ok"},
		{Day: "2", Status: "awaiting input", Input: "empty", Example: "missing", Source: "ok"},
		{Day: "10", Status: "unregistered", Input: "missing", Example: "missing", Source: "ok"},
	}

	var buf bytes.Buffer
	if err := WriteListHuman(&buf, rows); err != nil {
		t.Fatalf("WriteListHuman failed: %v", err)
	}

	want := "" +
		"DAY  STATUS          INPUT    EXAMPLE  SOURCE\n" +
		"1    ready           ok       ok       ok\n" +
		"2    awaiting input  empty    missing  ok\n" +
		"10   unregistered    missing  missing  ok\n"

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteListHuman_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteListHuman(&buf, nil); err != nil {
		t.Fatalf("WriteListHuman failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output for empty rows, got %q", buf.String())
	}
}

func TestFormatHumanRow(t *testing.T) {
	s := DaySummary{
		Day:        7,
		Status:     "ready",
		Registered: true,
		Source:     FileJSON{State: "ok", Bytes: 240, Path: "src/day_7.rs"},
		Input:      FileJSON{State: "ok", Bytes: 1024, Path: "input/day_7.txt"},
		Example:    FileJSON{State: "empty", Bytes: 0, Path: "input/day_7_example.txt"},
	}

	got := FormatHumanRow(s)
	want := DayHumanRow{Day: "7", Status: "ready", Input: "ok", Example: "empty", Source: "ok"}
	if got != want {
		t.Errorf("FormatHumanRow = %+v, want %+v", got, want)
	}
}

func TestWriteListJSON_EmptyIsValidArray(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteListJSON(&buf, nil); err != nil {
		t.Fatalf("WriteListJSON failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"schema_version": "1.0"`) {
		t.Errorf("output missing schema_version: %s", out)
	}
	if !strings.Contains(out, `"data": []`) {
		t.Errorf("nil summaries should render as empty array: %s", out)
	}
}

func TestWriteListJSON_CarriesFields(t *testing.T) {
	summaries := []DaySummary{
		{
			Day:        3,
			Status:     "awaiting input",
			Registered: true,
			Source:     FileJSON{State: "ok", Bytes: 240, Path: "src/day_3.rs"},
			Input:      FileJSON{State: "empty", Bytes: 0, Path: "input/day_3.txt"},
			Example:    FileJSON{State: "missing", Bytes: 0, Path: "input/day_3_example.txt"},
		},
	}

	var buf bytes.Buffer
	if err := WriteListJSON(&buf, summaries); err != nil {
		t.Fatalf("WriteListJSON failed: %v", err)
	}

	out := buf.String()
	for _, fragment := range []string{
		`"day": 3`,
		`"status": "awaiting input"`,
		`"registered": true`,
		`"path": "input/day_3.txt"`,
		`"state": "missing"`,
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("output missing %s:\n%s", fragment, out)
		}
	}
}
