// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ---------- Table layout literals ----------
const (
	_tblCorner   = "+"
	_tblRule     = "-"
	_tblBar      = "|"
	_tblCell     = " %*.2f " // right-aligned, width from cellWidth, 2 decimals, 1 space padding each side
	_tblMinWidth = 5         // narrowest value field
	_tblPad      = 2         // spaces around each value
)

// Table renders m as a box-drawn table: one line per matrix row, every value
// right-aligned with 2 decimals, and a +---+ rule above, between and below the
// rows.
//
//	+-------+-------+
//	|  1.00 |  0.00 |
//	+-------+-------+
//	|  0.00 |  1.00 |
//	+-------+-------+
//
// The value field is 5 characters wide. When any value needs more (e.g.
// -12.50), every cell and rule widens to the widest one, so the grid stays
// aligned.
func (m *Dense) Table() string {
	var b strings.Builder
	_ = m.WriteTable(&b) // strings.Builder never fails

	return b.String()
}

// cellWidth returns the value field width: the longest "%.2f" rendering,
// at least _tblMinWidth.
func (m *Dense) cellWidth() int {
	return lo.Reduce(m.data, func(w int, v float64, _ int) int {
		return max(w, len(strconv.FormatFloat(v, 'f', 2, 64)))
	}, _tblMinWidth)
}

// WriteTable writes the Table layout to w and returns the first write error.
func (m *Dense) WriteTable(w io.Writer) error {
	width := m.cellWidth()
	rule := _tblCorner + strings.Repeat(strings.Repeat(_tblRule, width+_tblPad)+_tblCorner, m.n) + "\n"

	var line strings.Builder
	if _, err := io.WriteString(w, rule); err != nil {
		return err
	}
	for i := 0; i < m.n; i++ {
		line.Reset()
		line.WriteString(_tblBar)
		for _, v := range m.data[i*m.n : (i+1)*m.n] {
			fmt.Fprintf(&line, _tblCell, width, v)
			line.WriteString(_tblBar)
		}
		line.WriteString("\n")
		if _, err := io.WriteString(w, line.String()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, rule); err != nil {
			return err
		}
	}

	return nil
}
