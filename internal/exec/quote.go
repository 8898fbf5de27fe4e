package exec

import "strings"

// QuoteArgv renders argv as a copy-pasteable POSIX shell line.
// Used by show and run output so the operator can replay the command.
func QuoteArgv(argv []string) string {
	parts := make([]string, len(argv))
	for i, a := range argv {
		parts[i] = quoteToken(a)
	}
	return strings.Join(parts, " ")
}

// quoteToken returns a single shell token using single-quote strategy,
// quoting only when the bare token would not survive a shell.
// example: abc -> abc
// example: a b -> 'a b'
// example: a'b -> 'a'"'"'b'
// example: "" -> ''
func quoteToken(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$&|;<>()*?[]{}~#`!") {
		return s
	}
	escaped := strings.ReplaceAll(s, "'", "'\"'\"'")
	return "'" + escaped + "'"
}
