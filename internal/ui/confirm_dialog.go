package ui

import (
	"github.com/gdamore/tcell/v2"
)

// ConfirmDialog is a modal yes/no prompt. While visible it swallows
// every key so the view underneath cannot react.
type ConfirmDialog struct {
	visible bool
	title   string
	message string
	onYes   func()
	onNo    func()
}

func NewConfirmDialog() *ConfirmDialog {
	return &ConfirmDialog{}
}

func (c *ConfirmDialog) Show(title, message string, onYes, onNo func()) {
	c.visible = true
	c.title = title
	c.message = message
	c.onYes = onYes
	c.onNo = onNo
}

func (c *ConfirmDialog) Hide() {
	c.visible = false
	c.title = ""
	c.message = ""
	c.onYes = nil
	c.onNo = nil
}

func (c *ConfirmDialog) IsVisible() bool {
	return c.visible
}

func (c *ConfirmDialog) HandleKey(ev *tcell.EventKey) bool {
	if !c.visible {
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		if c.onNo != nil {
			c.onNo()
		}
		c.Hide()
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'y', 'Y':
			if c.onYes != nil {
				c.onYes()
			}
			c.Hide()
			return true
		case 'n', 'N':
			if c.onNo != nil {
				c.onNo()
			}
			c.Hide()
			return true
		}
	}

	return true
}

func (c *ConfirmDialog) Draw(s tcell.Screen) {
	if !c.visible {
		return
	}

	w, h := s.Size()

	dialogWidth := 50
	dialogHeight := 8
	startX := (w - dialogWidth) / 2
	startY := (h - dialogHeight) / 2
	if startX < 0 {
		startX = 0
		dialogWidth = w
	}
	if startY < 0 {
		startY = 0
		dialogHeight = h
	}

	dialogStyle := tcell.StyleDefault.Background(ColorBgHighlight).Foreground(ColorFg)
	for y := startY; y < startY+dialogHeight; y++ {
		for x := startX; x < startX+dialogWidth; x++ {
			s.SetContent(x, y, ' ', nil, dialogStyle)
		}
	}

	drawBox(s, startX, startY, dialogWidth, dialogHeight, dialogStyle.Foreground(ColorRed))

	titleStyle := dialogStyle.Foreground(ColorRed).Bold(true)
	titleX := startX + (dialogWidth-len([]rune(c.title)))/2
	if titleX < startX+2 {
		titleX = startX + 2
	}
	drawText(s, titleX, startY+1, titleStyle, c.title)

	for i, line := range wrapText(c.message, dialogWidth-4) {
		if i+3 >= dialogHeight-2 {
			break
		}
		drawText(s, startX+2, startY+3+i, dialogStyle, line)
	}

	buttonStyle := dialogStyle.Bold(true)
	buttonsY := startY + dialogHeight - 2
	drawText(s, startX+dialogWidth/2-6, buttonsY, buttonStyle, "[Y]es")
	drawText(s, startX+dialogWidth/2+2, buttonsY, buttonStyle, "[N]o")
}

// drawBox draws a single-line border around the given region
func drawBox(s tcell.Screen, x, y, width, height int, style tcell.Style) {
	for dx := 1; dx < width-1; dx++ {
		s.SetContent(x+dx, y, '─', nil, style)
		s.SetContent(x+dx, y+height-1, '─', nil, style)
	}
	for dy := 1; dy < height-1; dy++ {
		s.SetContent(x, y+dy, '│', nil, style)
		s.SetContent(x+width-1, y+dy, '│', nil, style)
	}
	s.SetContent(x, y, '┌', nil, style)
	s.SetContent(x+width-1, y, '┐', nil, style)
	s.SetContent(x, y+height-1, '└', nil, style)
	s.SetContent(x+width-1, y+height-1, '┘', nil, style)
}

// wrapText wraps text to the given rune width, breaking on spaces
func wrapText(text string, width int) []string {
	runes := []rune(text)
	if len(runes) <= width {
		return []string{text}
	}

	var lines []string
	for len(runes) > width {
		breakPoint := width
		for i := width - 1; i >= 0; i-- {
			if runes[i] == ' ' {
				breakPoint = i
				break
			}
		}

		lines = append(lines, string(runes[:breakPoint]))
		runes = runes[breakPoint:]
		if len(runes) > 0 && runes[0] == ' ' {
			runes = runes[1:]
		}
	}

	if len(runes) > 0 {
		lines = append(lines, string(runes))
	}

	return lines
}
