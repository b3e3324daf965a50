package boottime

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// column describes one table column. A zero limit leaves the width
// unbounded; cells wider than limit end in "...".
type column struct {
	right bool
	limit int
}

// The time column lines up on the decimal point; messages are capped so a
// long one does not push the table off the screen.
var columns = [...]column{
	{right: true},
	{},
	{limit: 72},
}

// A rule is the left corner, column junction and right corner of one
// horizontal line. The line itself is drawn with "─" and cells are
// separated by "│".
type rule [3]string

var (
	ruleTop    = rule{"╭", "┬", "╮"}
	ruleHeader = rule{"├", "┼", "┤"}
	ruleBottom = rule{"╰", "┴", "╯"}
)

var cellReplacer = strings.NewReplacer("\n", " ", "\t", " ")

func writeTable(w io.Writer, entries []Entry) error {
	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, header)
	for _, e := range entries {
		rows = append(rows, e.row())
	}
	widths := columnWidths(rows)

	var sb strings.Builder
	sb.WriteString(ruleTop.draw(widths))
	for i, row := range rows {
		sb.WriteString(drawCells(row, widths))
		if i == 0 {
			sb.WriteString(ruleHeader.draw(widths))
		}
	}
	sb.WriteString(ruleBottom.draw(widths))
	fmt.Fprintf(&sb, "%d events\n", len(entries))

	_, err := io.WriteString(w, sb.String())
	return err
}

// columnWidths returns the display width of every column, capped at the
// column limit. Cells are measured after control characters are flattened.
func columnWidths(rows [][]string) [len(columns)]int {
	var widths [len(columns)]int
	for _, row := range rows {
		for i, cell := range row[:len(columns)] {
			widths[i] = max(widths[i], runewidth.StringWidth(cellReplacer.Replace(cell)))
		}
	}
	for i, c := range columns {
		if c.limit > 0 {
			widths[i] = min(widths[i], c.limit)
		}
	}
	return widths
}

func (r rule) draw(widths [len(columns)]int) string {
	var sb strings.Builder
	sb.WriteString(r[0])
	for i, width := range widths {
		if i > 0 {
			sb.WriteString(r[1])
		}
		sb.WriteString(strings.Repeat("─", width+2))
	}
	sb.WriteString(r[2])
	sb.WriteByte('\n')
	return sb.String()
}

func drawCells(row []string, widths [len(columns)]int) string {
	var sb strings.Builder
	sb.WriteString("│")
	for i, c := range columns {
		text := cellReplacer.Replace(row[i])
		if runewidth.StringWidth(text) > widths[i] {
			text = runewidth.Truncate(text, widths[i], "...")
		}
		pad := strings.Repeat(" ", widths[i]-runewidth.StringWidth(text))
		sb.WriteByte(' ')
		if c.right {
			sb.WriteString(pad + text)
		} else {
			sb.WriteString(text + pad)
		}
		sb.WriteString(" │")
	}
	sb.WriteByte('\n')
	return sb.String()
}
