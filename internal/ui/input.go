package ui

import "github.com/gdamore/tcell/v2"

// textInput is a single-line editor shared by the search bar and the form
// overlays. Cursor positions are byte offsets into the value, which is
// fine for the emacs-style word operations but means rune-aware callers
// draw with drawText and track the cursor themselves.
type textInput struct {
	value     string
	cursorPos int
}

func (t *textInput) Value() string {
	return t.value
}

func (t *textInput) Set(value string) {
	t.value = value
	t.cursorPos = len(value)
}

func (t *textInput) Clear() {
	t.value = ""
	t.cursorPos = 0
}

func (t *textInput) InsertChar(ch rune) {
	if t.cursorPos >= len(t.value) {
		t.value += string(ch)
		t.cursorPos = len(t.value)
		return
	}
	t.value = t.value[:t.cursorPos] + string(ch) + t.value[t.cursorPos:]
	t.cursorPos += len(string(ch))
}

// DeleteChar deletes the rune before the cursor (backspace).
func (t *textInput) DeleteChar() {
	if t.cursorPos == 0 {
		return
	}
	start := t.cursorPos - 1
	for start > 0 && t.value[start]&0xC0 == 0x80 {
		start-- // step back over UTF-8 continuation bytes
	}
	t.value = t.value[:start] + t.value[t.cursorPos:]
	t.cursorPos = start
}

func (t *textInput) MoveCursorLeft() {
	if t.cursorPos == 0 {
		return
	}
	t.cursorPos--
	for t.cursorPos > 0 && t.value[t.cursorPos]&0xC0 == 0x80 {
		t.cursorPos--
	}
}

func (t *textInput) MoveCursorRight() {
	if t.cursorPos >= len(t.value) {
		return
	}
	t.cursorPos++
	for t.cursorPos < len(t.value) && t.value[t.cursorPos]&0xC0 == 0x80 {
		t.cursorPos++
	}
}

func (t *textInput) MoveCursorStart() {
	t.cursorPos = 0
}

func (t *textInput) MoveCursorEnd() {
	t.cursorPos = len(t.value)
}

// DeleteToEnd deletes from cursor to end (Ctrl+K).
func (t *textInput) DeleteToEnd() {
	t.value = t.value[:t.cursorPos]
}

// DeleteWord deletes the word before the cursor (Ctrl+W).
func (t *textInput) DeleteWord() {
	if t.cursorPos == 0 {
		return
	}

	start := t.cursorPos - 1
	for start > 0 && t.value[start] == ' ' {
		start--
	}
	for start > 0 && t.value[start-1] != ' ' {
		start--
	}

	t.value = t.value[:start] + t.value[t.cursorPos:]
	t.cursorPos = start
}

// CursorRune returns the rune index of the cursor, for drawing.
func (t *textInput) CursorRune() int {
	return len([]rune(t.value[:t.cursorPos]))
}

// HandleKey applies the standard editing keys, returning true when the
// event was consumed.
func (t *textInput) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		t.DeleteChar()
		return true
	case tcell.KeyLeft:
		t.MoveCursorLeft()
		return true
	case tcell.KeyRight:
		t.MoveCursorRight()
		return true
	case tcell.KeyCtrlA, tcell.KeyHome:
		t.MoveCursorStart()
		return true
	case tcell.KeyCtrlE, tcell.KeyEnd:
		t.MoveCursorEnd()
		return true
	case tcell.KeyCtrlK:
		t.DeleteToEnd()
		return true
	case tcell.KeyCtrlW:
		t.DeleteWord()
		return true
	case tcell.KeyRune:
		t.InsertChar(ev.Rune())
		return true
	}
	return false
}
