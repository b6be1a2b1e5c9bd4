package build

import (
	"bufio"
	"os"
	"strings"
	"unicode"
)

// maxLineSize bounds the length of a single source line.
const maxLineSize = 1 << 20

// readLines reads the source file one line at a time.  Trailing whitespace is
// trimmed from every line and the line order is preserved.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)

	for sc.Scan() {
		lines = append(lines, strings.TrimRightFunc(sc.Text(), unicode.IsSpace))
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// joinLines rebuilds the source text the lexer consumes.
func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
