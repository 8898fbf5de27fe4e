package dispatch

import (
	"testing"

	"advent/internal/day"
)

const sampleDispatch = `#![allow(dead_code)]
#![allow(unused_variables)]

mod helpers;

use helpers::advent;

advent! {
    day 1
    day 2
    day 3
}

fn main() {
    run()
}
`

func TestDays_ParsesMarkers(t *testing.T) {
	got := Days(sampleDispatch)
	want := []day.Day{1, 2, 3}

	if len(got) != len(want) {
		t.Fatalf("Days() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Days()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestDays_IgnoresNonMarkerLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int // number of markers
	}{
		{"empty file", "", 0},
		{"no markers", "fn main() {\n    run()\n}\n", 0},
		{"day in a word", "    daydream 5\n", 0},
		{"day with trailing text", "    day 5 // done\n", 0},
		{"day zero", "    day 0\n", 0},
		{"unindented marker", "day 4\n", 1},
		{"tab indented marker", "\tday 4\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Days(tt.content)
			if len(got) != tt.want {
				t.Errorf("Days(%q) = %v, want %d markers", tt.content, got, tt.want)
			}
		})
	}
}

func TestDays_PreservesDuplicates(t *testing.T) {
	content := "    day 1\n    day 2\n    day 2\n"
	got := Days(content)
	if len(got) != 3 {
		t.Fatalf("Days() = %v, want 3 entries including the duplicate", got)
	}
	if got[1] != 2 || got[2] != 2 {
		t.Errorf("Days() = %v, want duplicate day 2 preserved", got)
	}
}

func TestContains(t *testing.T) {
	ds := Days(sampleDispatch)

	if !Contains(ds, 2) {
		t.Error("Contains(2) = false, want true")
	}
	if Contains(ds, 9) {
		t.Error("Contains(9) = true, want false")
	}
}

func TestDuplicates(t *testing.T) {
	tests := []struct {
		name string
		ds   []day.Day
		want []day.Day
	}{
		{"none", []day.Day{1, 2, 3}, nil},
		{"one duplicate", []day.Day{1, 2, 2, 3}, []day.Day{2}},
		{"triple counts once", []day.Day{4, 4, 4}, []day.Day{4}},
		{"two duplicates in seen order", []day.Day{3, 1, 3, 1}, []day.Day{3, 1}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Duplicates(tt.ds)
			if len(got) != len(tt.want) {
				t.Fatalf("Duplicates(%v) = %v, want %v", tt.ds, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Duplicates(%v)[%d] = %d, want %d", tt.ds, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLatest(t *testing.T) {
	if _, ok := Latest(nil); ok {
		t.Error("Latest(nil) ok = true, want false")
	}

	latest, ok := Latest([]day.Day{3, 1, 2})
	if !ok || latest != 3 {
		t.Errorf("Latest = %d, %v; want 3, true", latest, ok)
	}
}
