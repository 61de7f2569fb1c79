package render

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/sortnet/network"
)

// Text returns the ASCII wire diagram of nw, one line per position, each
// terminated by a newline.
func Text(nw *network.Network) string {
	n := nw.N()
	width := len(strconv.Itoa(n - 1))

	// cells[p] accumulates the drawing of wire p.
	cells := make([][]string, n)
	for _, layer := range nw.Layers() {
		columns := packColumns(layer)
		for p := 0; p < n; p++ {
			marks := make([]string, len(columns))
			for i, col := range columns {
				marks[i] = string(mark(col, p))
			}
			cells[p] = append(cells[p], strings.Join(marks, "-"))
		}
	}

	var sb strings.Builder
	for p := 0; p < n; p++ {
		label := strconv.Itoa(p)
		sb.WriteString(strings.Repeat(" ", width-len(label)))
		sb.WriteString(label)
		sb.WriteString(" -")
		sb.WriteString(strings.Join(cells[p], "--"))
		sb.WriteString("-\n")
	}

	return sb.String()
}

// packColumns splits a layer into sub-columns whose comparator spans do not
// overlap, placing each comparator in the first column that fits.
func packColumns(layer network.Layer) [][]network.Comparator {
	var columns [][]network.Comparator
next:
	for _, c := range layer {
		for i, col := range columns {
			if fits(col, c) {
				columns[i] = append(col, c)
				continue next
			}
		}
		columns = append(columns, []network.Comparator{c})
	}

	return columns
}

// fits reports whether c's span is disjoint from every span in col.
func fits(col []network.Comparator, c network.Comparator) bool {
	for _, o := range col {
		if c.Lo() <= o.Hi() && o.Lo() <= c.Hi() {
			return false
		}
	}

	return true
}

// mark returns the glyph of wire p in one sub-column.
func mark(col []network.Comparator, p int) byte {
	for _, c := range col {
		switch {
		case p == c.Lo() || p == c.Hi():
			return 'o'
		case p > c.Lo() && p < c.Hi():
			return '|'
		}
	}

	return '-'
}
