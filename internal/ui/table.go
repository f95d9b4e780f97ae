package ui

import (
	"github.com/gdamore/tcell/v2"
)

// TableColumn defines a column in the table
type TableColumn struct {
	Title      string
	Width      int     // 0 means flexible width
	MinWidth   int     // Minimum width for flexible columns
	FlexWeight float64 // Weight for distributing available space
	Align      Alignment
}

// Alignment specifies text alignment within a cell
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// TableRow represents a single row of data
type TableRow interface {
	// GetCell returns the content for a specific column index
	GetCell(columnIndex int) string
	// GetCellStyle returns the style for a specific cell (nil for default)
	GetCellStyle(columnIndex int, selected bool) *tcell.Style
	// GetHighlightPositions returns rune positions to highlight in a cell
	GetHighlightPositions(columnIndex int) []int
}

// Table is a generic scrollable table widget
type Table struct {
	columns      []TableColumn
	rows         []TableRow
	selectedIdx  int
	scrollOffset int

	x, y          int
	width, height int
	showHeader    bool

	selectionIndicator string

	headerStyle    tcell.Style
	defaultStyle   tcell.Style
	selectedStyle  tcell.Style
	highlightStyle tcell.Style

	columnWidths []int
}

func NewTable() *Table {
	return &Table{
		showHeader:         true,
		selectionIndicator: "> ",
		headerStyle:        tcell.StyleDefault.Bold(true).Foreground(ColorHeader),
		defaultStyle:       tcell.StyleDefault,
		selectedStyle:      tcell.StyleDefault.Background(ColorSelection).Foreground(ColorBright),
		highlightStyle:     tcell.StyleDefault.Foreground(ColorHighlight).Bold(true),
	}
}

func (t *Table) SetColumns(columns []TableColumn) {
	t.columns = columns
	t.calculateColumnWidths()
}

func (t *Table) SetRows(rows []TableRow) {
	t.rows = rows
	t.adjustSelection()
}

func (t *Table) SetPosition(x, y int) {
	t.x = x
	t.y = y
}

func (t *Table) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.calculateColumnWidths()
}

func (t *Table) GetSelectedIndex() int {
	return t.selectedIdx
}

func (t *Table) GetSelectedRow() TableRow {
	if t.selectedIdx >= 0 && t.selectedIdx < len(t.rows) {
		return t.rows[t.selectedIdx]
	}
	return nil
}

// SelectByIndex moves the selection to idx, clamped into range.
func (t *Table) SelectByIndex(idx int) {
	t.selectedIdx = idx
	t.adjustSelection()
}

func (t *Table) SelectNext() bool {
	if t.selectedIdx < len(t.rows)-1 {
		t.selectedIdx++
		t.ensureVisible()
		return true
	}
	return false
}

func (t *Table) SelectPrevious() bool {
	if t.selectedIdx > 0 {
		t.selectedIdx--
		t.ensureVisible()
		return true
	}
	return false
}

func (t *Table) SelectFirst() {
	t.selectedIdx = 0
	t.scrollOffset = 0
}

func (t *Table) SelectLast() {
	if len(t.rows) > 0 {
		t.selectedIdx = len(t.rows) - 1
		t.ensureVisible()
	}
}

func (t *Table) PageDown() bool {
	return t.pageBy(t.getVisibleHeight() - 1)
}

func (t *Table) PageUp() bool {
	return t.pageBy(-(t.getVisibleHeight() - 1))
}

func (t *Table) pageBy(delta int) bool {
	if t.getVisibleHeight() <= 0 || len(t.rows) == 0 {
		return false
	}

	newIdx := t.selectedIdx + delta
	if newIdx < 0 {
		newIdx = 0
	}
	if newIdx >= len(t.rows) {
		newIdx = len(t.rows) - 1
	}

	if newIdx == t.selectedIdx {
		return false
	}
	t.selectedIdx = newIdx
	t.ensureVisible()
	return true
}

// Draw renders the table to the screen
func (t *Table) Draw(s tcell.Screen) {
	if t.width <= 0 || t.height <= 0 {
		return
	}

	t.clear(s)

	currentY := t.y
	if t.showHeader {
		t.drawHeader(s, currentY)
		currentY++
	}

	visibleHeight := t.getVisibleHeight()
	for i := 0; i < visibleHeight && i+t.scrollOffset < len(t.rows); i++ {
		rowIdx := i + t.scrollOffset
		t.drawRow(s, currentY+i, t.rows[rowIdx], rowIdx == t.selectedIdx)
	}
}

// GetScrollInfo returns the visible window for the scroll indicator.
func (t *Table) GetScrollInfo() (firstVisible, lastVisible, total int) {
	visibleHeight := t.getVisibleHeight()
	firstVisible = t.scrollOffset + 1
	lastVisible = t.scrollOffset + visibleHeight
	if lastVisible > len(t.rows) {
		lastVisible = len(t.rows)
	}
	total = len(t.rows)
	return
}

func (t *Table) getVisibleHeight() int {
	height := t.height
	if t.showHeader {
		height--
	}
	if height < 0 {
		height = 0
	}
	return height
}

func (t *Table) ensureVisible() {
	visibleHeight := t.getVisibleHeight()
	if visibleHeight <= 0 {
		return
	}

	// Keep the selection roughly centered
	targetOffset := t.selectedIdx - visibleHeight/2

	maxOffset := len(t.rows) - visibleHeight
	if maxOffset < 0 {
		maxOffset = 0
	}

	if targetOffset < 0 {
		t.scrollOffset = 0
	} else if targetOffset > maxOffset {
		t.scrollOffset = maxOffset
	} else {
		t.scrollOffset = targetOffset
	}
}

func (t *Table) adjustSelection() {
	if len(t.rows) == 0 {
		t.selectedIdx = 0
		t.scrollOffset = 0
		return
	}

	if t.selectedIdx >= len(t.rows) {
		t.selectedIdx = len(t.rows) - 1
	}
	if t.selectedIdx < 0 {
		t.selectedIdx = 0
	}
	t.ensureVisible()
}

func (t *Table) calculateColumnWidths() {
	if len(t.columns) == 0 || t.width <= 0 {
		return
	}

	t.columnWidths = make([]int, len(t.columns))

	indicatorWidth := len([]rune(t.selectionIndicator))

	fixedWidth := 0
	totalFlexWeight := 0.0
	flexColumns := 0

	for i, col := range t.columns {
		if col.Width > 0 {
			width := col.Width
			if i == 0 {
				width += indicatorWidth
			}
			t.columnWidths[i] = width
			fixedWidth += width
		} else {
			flexColumns++
			if col.FlexWeight > 0 {
				totalFlexWeight += col.FlexWeight
			} else {
				totalFlexWeight += 1.0
			}
		}
	}

	padding := len(t.columns) - 1
	availableWidth := t.width - fixedWidth - padding
	if availableWidth <= 0 || flexColumns == 0 {
		return
	}

	for i, col := range t.columns {
		if col.Width != 0 {
			continue
		}
		weight := col.FlexWeight
		if weight <= 0 {
			weight = 1.0
		}

		width := int(float64(availableWidth) * (weight / totalFlexWeight))
		if col.MinWidth > 0 && width < col.MinWidth {
			width = col.MinWidth
		}
		if i == 0 {
			width += indicatorWidth
		}
		t.columnWidths[i] = width
	}
}

func (t *Table) clear(s tcell.Screen) {
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			s.SetContent(t.x+x, t.y+y, ' ', nil, t.defaultStyle)
		}
	}
}

func (t *Table) drawHeader(s tcell.Screen, y int) {
	x := t.x

	for i, col := range t.columns {
		if i > 0 {
			x++ // padding between columns
		}

		titleX := x
		if i == 0 {
			titleX += len([]rune(t.selectionIndicator))
		}
		if col.Title != "" {
			t.drawCell(s, titleX, y, t.columnWidths[i], col.Title, t.headerStyle, nil, col.Align)
		}

		x += t.columnWidths[i]
	}
}

func (t *Table) drawRow(s tcell.Screen, y int, row TableRow, selected bool) {
	if selected {
		for x := 0; x < t.width; x++ {
			s.SetContent(t.x+x, y, ' ', nil, t.selectedStyle)
		}
	}

	x := t.x

	for i, col := range t.columns {
		if i > 0 {
			x++
		}

		content := row.GetCell(i)
		highlights := row.GetHighlightPositions(i)

		if i == 0 {
			indicator := t.selectionIndicator
			if !selected {
				indicator = spaces(len([]rune(t.selectionIndicator)))
			}
			content = indicator + content
			// The indicator shifts the cell content, so the highlight
			// positions must shift with it.
			if len(highlights) > 0 {
				shifted := make([]int, len(highlights))
				for j, pos := range highlights {
					shifted[j] = pos + len([]rune(t.selectionIndicator))
				}
				highlights = shifted
			}
		}

		style := t.defaultStyle
		if selected {
			style = t.selectedStyle
		}
		if cellStyle := row.GetCellStyle(i, selected); cellStyle != nil {
			style = *cellStyle
		}

		t.drawCell(s, x, y, t.columnWidths[i], content, style, highlights, col.Align)
		x += t.columnWidths[i]
	}
}

// drawCell draws one cell's content, truncating with an ellipsis and
// highlighting the given rune positions.
func (t *Table) drawCell(s tcell.Screen, x, y, width int, text string, style tcell.Style, highlights []int, align Alignment) {
	if width <= 0 {
		return
	}

	highlightMap := make(map[int]bool, len(highlights))
	for _, pos := range highlights {
		highlightMap[pos] = true
	}

	runes := []rune(text)
	truncated := false
	if len(runes) > width {
		truncated = true
		if width > 3 {
			runes = runes[:width-3]
		} else {
			runes = runes[:width]
		}
	}

	startX := x
	if !truncated && align == AlignRight && len(runes) < width {
		startX = x + width - len(runes)
	}

	for i, r := range runes {
		charStyle := style
		if highlightMap[i] {
			charStyle = t.highlightStyle
			if style == t.selectedStyle {
				charStyle = charStyle.Background(ColorSelection)
			}
		}
		s.SetContent(startX+i, y, r, nil, charStyle)
	}

	if truncated && width > 3 {
		for i := 0; i < 3; i++ {
			s.SetContent(startX+len(runes)+i, y, '.', nil, style)
		}
	}
}

func spaces(n int) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}
