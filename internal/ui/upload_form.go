package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

const (
	fieldTitle = iota
	fieldCategory
	fieldDuration
	fieldTheme
	uploadFieldCount
)

// UploadForm collects the fields for a new record. Submitting an
// invalid form shows the validation error and keeps the input intact.
type UploadForm struct {
	title    textInput
	category textInput
	duration textInput
	themeIdx int

	focused  int
	errorMsg string

	onSubmit func(title, category, duration, theme string) error
	onCancel func()
}

func NewUploadForm(onSubmit func(title, category, duration, theme string) error, onCancel func()) *UploadForm {
	return &UploadForm{
		onSubmit: onSubmit,
		onCancel: onCancel,
	}
}

// Reset clears all fields, used when the form is opened
func (f *UploadForm) Reset() {
	f.title.Clear()
	f.category.Clear()
	f.duration.Clear()
	f.themeIdx = 0
	f.focused = fieldTitle
	f.errorMsg = ""
}

func (f *UploadForm) focusedInput() *textInput {
	switch f.focused {
	case fieldTitle:
		return &f.title
	case fieldCategory:
		return &f.category
	case fieldDuration:
		return &f.duration
	}
	return nil
}

func (f *UploadForm) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		f.onCancel()
		return true
	case tcell.KeyEnter:
		f.submit()
		return true
	case tcell.KeyTab, tcell.KeyDown:
		f.focused = (f.focused + 1) % uploadFieldCount
		return true
	case tcell.KeyBacktab, tcell.KeyUp:
		f.focused = (f.focused + uploadFieldCount - 1) % uploadFieldCount
		return true
	}

	if f.focused == fieldTheme {
		switch ev.Key() {
		case tcell.KeyLeft:
			f.themeIdx = (f.themeIdx + len(RecordThemes) - 1) % len(RecordThemes)
			return true
		case tcell.KeyRight:
			f.themeIdx = (f.themeIdx + 1) % len(RecordThemes)
			return true
		case tcell.KeyRune:
			if ev.Rune() == ' ' {
				f.themeIdx = (f.themeIdx + 1) % len(RecordThemes)
				return true
			}
		}
		return false
	}

	if input := f.focusedInput(); input != nil {
		return input.HandleKey(ev)
	}
	return false
}

func (f *UploadForm) submit() {
	err := f.onSubmit(f.title.Value(), f.category.Value(), f.duration.Value(), RecordThemes[f.themeIdx])
	if err != nil {
		f.errorMsg = err.Error()
		return
	}
	f.Reset()
}

func (f *UploadForm) Draw(s tcell.Screen) {
	w, h := s.Size()

	formWidth := 56
	if formWidth > w-4 {
		formWidth = w - 4
	}
	formHeight := 14
	x := (w - formWidth) / 2
	y := (h - formHeight) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	boxStyle := tcell.StyleDefault.Background(ColorBgHighlight)
	for dy := 0; dy < formHeight; dy++ {
		for dx := 0; dx < formWidth; dx++ {
			s.SetContent(x+dx, y+dy, ' ', nil, boxStyle)
		}
	}

	drawText(s, x+2, y+1, boxStyle.Bold(true).Foreground(ColorHeader), "New episode")

	f.drawField(s, x+2, y+3, formWidth-4, "Title", &f.title, f.focused == fieldTitle)
	f.drawField(s, x+2, y+5, formWidth-4, "Category", &f.category, f.focused == fieldCategory)
	f.drawField(s, x+2, y+7, formWidth-4, "Length", &f.duration, f.focused == fieldDuration)

	themeLabel := "Theme:"
	themeStyle := boxStyle.Foreground(ColorFg)
	if f.focused == fieldTheme {
		themeStyle = themeStyle.Bold(true).Foreground(ColorHighlight)
	}
	theme := RecordThemes[f.themeIdx]
	drawText(s, x+2, y+9, themeStyle, fmt.Sprintf("%s < %s >", themeLabel, theme))
	swatchStyle := boxStyle.Foreground(RecordTheme(theme))
	drawText(s, x+2+len(themeLabel)+len(theme)+6, y+9, swatchStyle, "███")

	if f.errorMsg != "" {
		drawTextTruncated(s, x+2, y+11, formWidth-4, boxStyle.Foreground(ColorError), f.errorMsg)
	}

	drawText(s, x+2, y+formHeight-2, boxStyle.Foreground(ColorDimmed), "enter:publish  tab:next field  esc:cancel")
}

func (f *UploadForm) drawField(s tcell.Screen, x, y, width int, label string, input *textInput, focused bool) {
	labelStyle := tcell.StyleDefault.Background(ColorBgHighlight).Foreground(ColorFg)
	if focused {
		labelStyle = labelStyle.Bold(true).Foreground(ColorHighlight)
	}
	drawText(s, x, y, labelStyle, label+":")

	valueX := x + 10
	valueWidth := width - 10
	valueStyle := tcell.StyleDefault.Background(ColorBgDark).Foreground(ColorBright)
	for i := 0; i < valueWidth; i++ {
		s.SetContent(valueX+i, y, ' ', nil, valueStyle)
	}
	drawTextTruncated(s, valueX+1, y, valueWidth-2, valueStyle, input.Value())

	if focused {
		cursorIdx := input.CursorRune()
		cursorX := valueX + 1 + cursorIdx
		if cursorX < valueX+valueWidth {
			under := ' '
			if runes := []rune(input.Value()); cursorIdx < len(runes) {
				under = runes[cursorIdx]
			}
			s.SetContent(cursorX, y, under, nil, valueStyle.Reverse(true))
		}
	}
}
