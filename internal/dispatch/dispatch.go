// Package dispatch models the central dispatch file: the source file
// whose "day N" marker lines register each puzzle day with the runner.
//
// Only reads live here. The one mutation — registering a new day — is a
// line-anchor splice and belongs to the splice package; this package
// computes what to splice and where.
package dispatch

import (
	"regexp"
	"strconv"
	"strings"

	"advent/internal/day"
)

// markerRE matches a registration line: indentation, the word "day",
// whitespace, a decimal number, and nothing else on the line.
var markerRE = regexp.MustCompile(`^\s*day\s+(\d+)\s*$`)

// Days returns the registered day numbers in file order.
// Duplicates are preserved; list and doctor report them.
func Days(content string) []day.Day {
	var out []day.Day
	for _, line := range strings.Split(content, "\n") {
		m := markerRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			// Matched digits that do not form a usable day ("day 0",
			// overflow). Not a registration.
			continue
		}
		out = append(out, day.Day(n))
	}
	return out
}

// Contains reports whether d is registered in ds.
func Contains(ds []day.Day, d day.Day) bool {
	for _, x := range ds {
		if x == d {
			return true
		}
	}
	return false
}

// Duplicates returns the days registered more than once, in first-seen
// order, each listed once.
func Duplicates(ds []day.Day) []day.Day {
	seen := make(map[day.Day]int, len(ds))
	var out []day.Day
	for _, d := range ds {
		seen[d]++
		if seen[d] == 2 {
			out = append(out, d)
		}
	}
	return out
}

// Latest returns the highest registered day and true, or 0 and false
// when nothing is registered.
func Latest(ds []day.Day) (day.Day, bool) {
	var max day.Day
	for _, d := range ds {
		if d > max {
			max = d
		}
	}
	return max, max > 0
}
