// SPDX-License-Identifier: MIT

// Package parse builds rational grids from plain text: one row per line,
// entries whitespace-separated, each entry an integer or a p/q fraction
// ("3", "-1", "5/2"). It is the input layer in front of matrix.NewGrid —
// the core itself never parses text.
package parse

import (
	"fmt"
	"strings"

	"github.com/dschell3/ReducedEchelonFormAlgo/matrix"
	"github.com/dschell3/ReducedEchelonFormAlgo/rational"
)

// Row parses one line of whitespace-separated rational entries.
// Errors: wrapped rational.ErrSyntax / rational.ErrDivisionByZero with
// the 1-based field position; rational.ErrSyntax for a blank line.
// Complexity: O(len(line)).
func Row(line string) ([]rational.Rational, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("parse.Row: empty line: %w", rational.ErrSyntax)
	}

	out := make([]rational.Rational, len(fields))
	for i, f := range fields {
		v, err := rational.Parse(f)
		if err != nil {
			return nil, fmt.Errorf("parse.Row: field %d: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}

// Grid parses a whole grid, one row per line. Blank (whitespace-only)
// lines are skipped so here-docs and prompts stay forgiving. Shape
// checking (equal row lengths, at least one row) is matrix.NewGrid's
// job; its ErrBadShape passes through with the offending line count
// already embedded in the message.
// Complexity: O(total input length).
func Grid(lines []string) (*matrix.Grid, error) {
	rows := make([][]rational.Rational, 0, len(lines))
	for n, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, err := Row(line)
		if err != nil {
			return nil, fmt.Errorf("parse.Grid: line %d: %w", n+1, err)
		}
		rows = append(rows, row)
	}

	return matrix.NewGrid(rows)
}
