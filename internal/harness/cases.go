package harness

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lox/pokerhands/poker"
)

// Case is one literal hand pair with the result expected for Hand.
type Case struct {
	Line        int
	Hand        string
	Opponent    string
	Expected    poker.Result
	Description string
}

// Name returns the description, or the hands themselves when there is none.
func (c Case) Name() string {
	if c.Description != "" {
		return c.Description
	}
	return fmt.Sprintf("%s vs %s", c.Hand, c.Opponent)
}

// ParseCases reads cases, one per line, in the form
//
//	<hand> | <opponent> | <Win|Loss|Tie> [| description]
//
// Blank lines and lines starting with '#' are skipped.
func ParseCases(r io.Reader) ([]Case, error) {
	var cases []Case
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) < 3 || len(fields) > 4 {
			return nil, fmt.Errorf("line %d: expected 3 or 4 '|' separated fields, got %d", lineNo, len(fields))
		}

		expected, err := poker.ParseResult(fields[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		c := Case{
			Line:     lineNo,
			Hand:     strings.TrimSpace(fields[0]),
			Opponent: strings.TrimSpace(fields[1]),
			Expected: expected,
		}
		if len(fields) == 4 {
			c.Description = strings.TrimSpace(fields[3])
		}
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading cases: %w", err)
	}
	return cases, nil
}

// LoadCases reads a case file from disk.
func LoadCases(path string) ([]Case, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cases, err := ParseCases(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}
