package shell

import "strings"

// Tokenize splits a line on runs of whitespace. There is no quoting or
// escaping: handlers that take paths with spaces re-join their arguments.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// splitCommand returns the lower-cased command name and its arguments
func splitCommand(line string) (string, []string, bool) {
	fields := Tokenize(line)
	if len(fields) == 0 {
		return "", nil, false
	}
	return strings.ToLower(fields[0]), fields[1:], true
}
