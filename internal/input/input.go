// Package input loads puzzle inputs and splits them into numbered lines.
package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Line is a single non-blank input line with its 1-based position in the
// original text.
type Line struct {
	Num  int
	Text string
}

// Lines splits text into trimmed, non-blank lines. Line numbers refer to the
// untrimmed text so error messages point at the right place in the file.
func Lines(text string) []Line {
	var out []Line
	for i, raw := range strings.Split(text, "\n") {
		t := strings.TrimSpace(raw)
		if t == "" {
			continue
		}
		out = append(out, Line{Num: i + 1, Text: t})
	}
	return out
}

// Path returns the conventional input file for a day, e.g. dir/day04.txt.
func Path(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%02d.txt", day))
}

// Read returns the contents of path. A path of "-" reads stdin.
func Read(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}
