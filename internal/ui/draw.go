package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// drawText draws a string starting at x, y
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

// drawTextTruncated draws text clipped to maxWidth with an ellipsis
func drawTextTruncated(s tcell.Screen, x, y, maxWidth int, style tcell.Style, text string) {
	if maxWidth <= 0 {
		return
	}
	runes := []rune(text)
	if len(runes) <= maxWidth {
		drawText(s, x, y, style, text)
		return
	}
	if maxWidth <= 3 {
		drawText(s, x, y, style, string(runes[:maxWidth]))
		return
	}
	drawText(s, x, y, style, string(runes[:maxWidth-3])+"...")
}

// drawHLine draws a horizontal separator line
func drawHLine(s tcell.Screen, y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		s.SetContent(x, y, '─', nil, style)
	}
}

// formatCount renders large counters compactly ("950", "12K", "1.2M")
func formatCount(n int) string {
	switch {
	case n >= 1_000_000:
		return trimZeroSuffix(fmt.Sprintf("%.1f", float64(n)/1_000_000)) + "M"
	case n >= 1_000:
		return trimZeroSuffix(fmt.Sprintf("%.1f", float64(n)/1_000)) + "K"
	default:
		return fmt.Sprintf("%d", n)
	}
}

func trimZeroSuffix(s string) string {
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}
