// Package render draws a board as text, rows grouped into block bands.
package render

import (
	"strconv"
	"strings"

	"svw.info/nsudoku/internal/domain"
)

// Text renders the board with a "| " separator between horizontal blocks
// and a divider line of dashes between vertical block bands. The divider
// is dimension*2 + blockSize - 1 characters wide. Dimension ≤ 3 boards are
// a single block, so neither separator ever appears there. The board is
// only read, never mutated.
func Text(b *domain.Board) string {
	var sb strings.Builder
	divider := strings.Repeat("-", b.Dimension*2+b.BlockSize-1)
	for r := 0; r < b.Dimension; r++ {
		if r > 0 && r%b.BlockSize == 0 {
			sb.WriteString(divider)
			sb.WriteByte('\n')
		}
		row := b.Row(r)
		for c := 0; c < b.Dimension; c++ {
			if c > 0 && c%b.BlockSize == 0 {
				sb.WriteString("| ")
			}
			sb.WriteString(strconv.Itoa(row[c]))
			if c < b.Dimension-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
