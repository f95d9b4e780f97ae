package ui

import (
	"github.com/gdamore/tcell/v2"
)

// HelpDialog lists every keybinding, scrollable when the terminal is
// short.
type HelpDialog struct {
	visible      bool
	scrollOffset int
}

func NewHelpDialog() *HelpDialog {
	return &HelpDialog{}
}

func (h *HelpDialog) Show() {
	h.visible = true
	h.scrollOffset = 0
}

func (h *HelpDialog) Hide() {
	h.visible = false
}

func (h *HelpDialog) IsVisible() bool {
	return h.visible
}

func (h *HelpDialog) HandleKey(ev *tcell.EventKey) bool {
	if !h.visible {
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		h.Hide()
		return true
	case tcell.KeyDown:
		h.scrollOffset++
		return true
	case tcell.KeyUp:
		if h.scrollOffset > 0 {
			h.scrollOffset--
		}
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', '?':
			h.Hide()
			return true
		case 'j':
			h.scrollOffset++
			return true
		case 'k':
			if h.scrollOffset > 0 {
				h.scrollOffset--
			}
			return true
		}
	}
	return true
}

func (h *HelpDialog) helpContent() []string {
	return []string{
		"Navigation",
		"  j / ↓          Move down",
		"  k / ↑          Move up",
		"  g / G          First / last row",
		"  ctrl-d/ctrl-u  Page down / up",
		"  1-4            Feed, Likes, Subscriptions, My episodes",
		"",
		"Search",
		"  /              Start search (filters as you type)",
		"  ctrl-f         Toggle fuzzy matching",
		"  esc            Clear search",
		"",
		"Catalog",
		"  enter          Open selected episode in the player",
		"  u              Upload a new episode",
		"  d              Delete your own episode",
		"  L / D / S      Like, dislike, subscribe",
		"  p              Open profile",
		"",
		"Player",
		"  space          Play / pause",
		"  h / l          Seek backward / forward",
		"  0-9            Jump to 0%-90% of the episode",
		"  + / -          Volume up / down",
		"  x              Minimize, keep playing",
		"  esc            Close the player",
		"",
		"General",
		"  ?              This help",
		"  Q              Quit",
	}
}

func (h *HelpDialog) Draw(s tcell.Screen) {
	if !h.visible {
		return
	}

	w, screenHeight := s.Size()
	lines := h.helpContent()

	maxLineWidth := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLineWidth {
			maxLineWidth = n
		}
	}

	dialogWidth := maxLineWidth + 4
	if dialogWidth > w-4 {
		dialogWidth = w - 4
	}
	if dialogWidth < 40 {
		dialogWidth = 40
	}

	dialogHeight := len(lines) + 4
	if dialogHeight > screenHeight-4 {
		dialogHeight = screenHeight - 4
	}
	if dialogHeight < 10 {
		dialogHeight = 10
	}

	startX := (w - dialogWidth) / 2
	startY := (screenHeight - dialogHeight) / 2
	if startX < 1 {
		startX = 1
	}
	if startY < 1 {
		startY = 1
	}

	dialogStyle := tcell.StyleDefault.Background(ColorBgHighlight).Foreground(ColorFg)
	for y := startY; y < startY+dialogHeight; y++ {
		for x := startX; x < startX+dialogWidth; x++ {
			s.SetContent(x, y, ' ', nil, dialogStyle)
		}
	}
	drawBox(s, startX, startY, dialogWidth, dialogHeight, dialogStyle.Foreground(ColorBlue))

	title := " Keybindings "
	drawText(s, startX+(dialogWidth-len(title))/2, startY, dialogStyle.Foreground(ColorHeader).Bold(true), title)

	contentHeight := dialogHeight - 3
	maxOffset := len(lines) - contentHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if h.scrollOffset > maxOffset {
		h.scrollOffset = maxOffset
	}

	for i := 0; i < contentHeight && i+h.scrollOffset < len(lines); i++ {
		line := lines[i+h.scrollOffset]
		style := dialogStyle
		if line != "" && line[0] != ' ' {
			style = style.Foreground(ColorHeader).Bold(true)
		}
		drawTextTruncated(s, startX+2, startY+1+i, dialogWidth-4, style, line)
	}

	footer := "j/k:scroll  esc:close"
	drawText(s, startX+2, startY+dialogHeight-2, dialogStyle.Foreground(ColorDimmed), footer)
}
