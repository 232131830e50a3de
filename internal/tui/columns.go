package tui

import (
	"strings"

	"zotui/internal/model"
)

// colGap is the separator width between adjacent columns.
const colGap = 1

// validateProjection checks a column projection before it is applied
// anywhere: the reserved attachment field never renders, and weights (when
// given) pair one-to-one with columns.
func validateProjection(columns []string, weights []int) error {
	for _, c := range columns {
		if c == model.AttachmentField {
			return errConfig("column %q is the reserved attachment field", c)
		}
	}
	if len(weights) != len(columns) {
		return errConfig("%d weights for %d columns", len(weights), len(columns))
	}
	for i, w := range weights {
		if w <= 0 {
			return errConfig("weight %d for column %q must be positive", w, columns[i])
		}
	}
	return nil
}

// uniformWeights is the documented default projection weighting.
func uniformWeights(n int) []int {
	ws := make([]int, n)
	for i := range ws {
		ws[i] = 1
	}
	return ws
}

// columnWidths partitions total display columns across the weighted columns,
// reserving one gap column between neighbors. Each column gets at least one
// cell; leftover cells from integer division go to the leftmost columns so
// the partition is deterministic. The same widths are used for the header
// and every row, which is the alignment invariant.
func columnWidths(total int, weights []int) []int {
	n := len(weights)
	if n == 0 {
		return nil
	}

	usable := total - colGap*(n-1)
	if usable < n {
		usable = n
	}

	sum := 0
	for _, w := range weights {
		sum += w
	}

	widths := make([]int, n)
	used := 0
	for i, w := range weights {
		widths[i] = usable * w / sum
		if widths[i] < 1 {
			widths[i] = 1
		}
		used += widths[i]
	}
	for i := 0; used < usable; i = (i + 1) % n {
		widths[i]++
		used++
	}
	return widths
}

// joinCells renders one visual row from per-column text, each cell clipped
// and padded to its width.
func joinCells(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = truncCell(cell, w)
	}
	return strings.Join(parts, strings.Repeat(" ", colGap))
}
