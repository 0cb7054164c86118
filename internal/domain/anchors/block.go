package anchors

import "strings"

const (
	blockOpen  = "{"
	blockClose = "}"
)

// blockScan tracks brace depth once the block opener has been seen.
type blockScan struct {
	inTargetBlock bool
	depth         int
	braced        bool
}

// feed consumes one line and reports whether it closes the target block:
// the first line, starting with the opener line, after which depth is <= 0.
// Lines before the first brace of the block (an opener whose `{` sits on a
// later line) are not counted as closing it.
func (s *blockScan) feed(line, opener string) bool {
	if !s.inTargetBlock {
		if !strings.Contains(line, opener) {
			return false
		}

		s.inTargetBlock = true
		s.depth = 0
	}

	opens := strings.Count(line, blockOpen)
	closes := strings.Count(line, blockClose)

	if opens+closes > 0 {
		s.braced = true
	}

	s.depth += opens - closes

	return s.braced && s.depth <= 0
}

// FindBlockClose returns the index of the line closing the brace block that
// starts on the first line containing opener, or -1 when the opener is
// absent or the block never closes.
func FindBlockClose(text, opener string) int {
	return findBlockClose(splitLines(text), opener)
}

func findBlockClose(lines []string, opener string) int {
	var scan blockScan

	for i, line := range lines {
		if scan.feed(line, opener) {
			return i
		}
	}

	return -1
}

// InsertBeforeBlockClose inserts insertion right before the closing line of
// the block opened by opener. Nested blocks inside the body are skipped
// because only the outermost depth returning to zero ends the scan.
func InsertBeforeBlockClose(text, opener, insertion string) string {
	lines := splitLines(text)

	idx := findBlockClose(lines, opener)
	if idx < 0 {
		return text
	}

	return joinLines(insertAt(lines, idx, insertion))
}
