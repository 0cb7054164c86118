// Package anchors implements the text-level insertion strategies used by
// patch descriptors. Every function here is pure: it takes the whole file
// text and returns the whole file text, unchanged when no insertion point
// is found.
package anchors

import "strings"

const lineSeparator = "\n"

func splitLines(text string) []string {
	return strings.Split(text, lineSeparator)
}

func joinLines(lines []string) string {
	return strings.Join(lines, lineSeparator)
}

// InsertBeforeFirstMatch inserts insertion as a new line right before the
// first line containing needle. Later matching lines are left untouched.
func InsertBeforeFirstMatch(text, needle, insertion string) string {
	lines := splitLines(text)

	idx := firstLineContaining(lines, needle)
	if idx < 0 {
		return text
	}

	return joinLines(insertAt(lines, idx, insertion))
}

// InsertAfterFirstMatch inserts insertion as a new line right after the
// first line containing needle. Later matching lines are left untouched.
func InsertAfterFirstMatch(text, needle, insertion string) string {
	lines := splitLines(text)

	idx := firstLineContaining(lines, needle)
	if idx < 0 {
		return text
	}

	return joinLines(insertAt(lines, idx+1, insertion))
}

func firstLineContaining(lines []string, needle string) int {
	for i, line := range lines {
		if strings.Contains(line, needle) {
			return i
		}
	}

	return -1
}

// insertAt returns a new slice with insertion placed at index idx.
func insertAt(lines []string, idx int, insertion string) []string {
	result := make([]string, 0, len(lines)+1)
	result = append(result, lines[:idx]...)
	result = append(result, insertion)
	result = append(result, lines[idx:]...)

	return result
}
