// Package patterns parses small plaintext Life patterns such as
//
//	.O.
//	..O
//	OOO
//
// where 'O' (or '*') marks a live cell and '.' a dead one.
package patterns

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrEmpty is returned for patterns without any rows.
var ErrEmpty = errors.New("pattern has no rows")

// Pattern is a rectangular block of cells.
type Pattern struct {
	Name  string
	W, H  int
	Cells []bool
}

// Alive reports whether the pattern cell at (row, col) is alive.
func (p Pattern) Alive(row, col int) bool {
	if row < 0 || row >= p.H || col < 0 || col >= p.W {
		return false
	}
	return p.Cells[row*p.W+col]
}

// Parse reads a plaintext pattern. Lines starting with '!' are comments.
// Short rows are padded with dead cells.
func Parse(name, src string) (Pattern, error) {
	var rows []string
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		rows = append(rows, line)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	for len(rows) > 0 && rows[0] == "" {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return Pattern{}, fmt.Errorf("%s: %w", name, ErrEmpty)
	}

	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	p := Pattern{Name: name, W: w, H: len(rows), Cells: make([]bool, w*len(rows))}
	for r, line := range rows {
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case 'O', 'o', '*':
				p.Cells[r*w+c] = true
			case '.', ' ':
			default:
				return Pattern{}, fmt.Errorf("%s: unexpected %q at row %d col %d", name, line[c], r, c)
			}
		}
	}
	return p, nil
}

var builtin = map[string]string{
	"blinker":    ".O.\n.O.\n.O.",
	"block":      "OO\nOO",
	"glider":     ".O.\n..O\nOOO",
	"toad":       ".OOO\nOOO.",
	"beacon":     "OO..\nOO..\n..OO\n..OO",
	"rpentomino": ".OO\nOO.\n.O.",
}

// Builtin returns a named built-in pattern.
func Builtin(name string) (Pattern, bool) {
	src, ok := builtin[name]
	if !ok {
		return Pattern{}, false
	}
	p, err := Parse(name, src)
	if err != nil {
		panic(err)
	}
	return p, true
}

// Names lists the built-in patterns in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
