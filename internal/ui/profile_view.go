package ui

import (
	"fmt"

	"github.com/casttivi/casttivi/internal/models"
	"github.com/casttivi/casttivi/internal/profile"
	"github.com/gdamore/tcell/v2"
)

const (
	profileFieldUsername = iota
	profileFieldEmail
	profileFieldBio
	profileFieldCount
)

// ProfileView shows the signed-in user with aggregates over their own
// records, and flips into an edit mode for the mutable fields.
type ProfileView struct {
	store *profile.Store

	editing  bool
	username textInput
	email    textInput
	bio      textInput
	focused  int

	// stats are recomputed from the catalog on every open
	records []*models.Podcast
}

func NewProfileView(store *profile.Store) *ProfileView {
	return &ProfileView{store: store}
}

// SetRecords supplies the catalog snapshot used for the stats block.
func (v *ProfileView) SetRecords(records []*models.Podcast) {
	v.records = records
}

func (v *ProfileView) Editing() bool {
	return v.editing
}

func (v *ProfileView) startEditing() {
	user := v.store.User()
	v.username.Set(user.Username)
	v.email.Set(user.Email)
	v.bio.Set(user.Bio)
	v.focused = profileFieldUsername
	v.editing = true
}

func (v *ProfileView) save() {
	v.store.Update(v.username.Value(), v.email.Value(), v.bio.Value())
	v.editing = false
}

func (v *ProfileView) focusedInput() *textInput {
	switch v.focused {
	case profileFieldUsername:
		return &v.username
	case profileFieldEmail:
		return &v.email
	case profileFieldBio:
		return &v.bio
	}
	return nil
}

// HandleKey consumes keys while the profile overlay is open. Escape in
// view mode is left to the caller so it can close the overlay.
func (v *ProfileView) HandleKey(ev *tcell.EventKey) bool {
	if !v.editing {
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'e' {
			v.startEditing()
			return true
		}
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		v.editing = false
		return true
	case tcell.KeyEnter:
		v.save()
		return true
	case tcell.KeyTab, tcell.KeyDown:
		v.focused = (v.focused + 1) % profileFieldCount
		return true
	case tcell.KeyBacktab, tcell.KeyUp:
		v.focused = (v.focused + profileFieldCount - 1) % profileFieldCount
		return true
	}

	if input := v.focusedInput(); input != nil {
		return input.HandleKey(ev)
	}
	return false
}

func (v *ProfileView) Draw(s tcell.Screen) {
	w, h := s.Size()

	boxWidth := 60
	if boxWidth > w-4 {
		boxWidth = w - 4
	}
	boxHeight := 16
	x := (w - boxWidth) / 2
	y := (h - boxHeight) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	boxStyle := tcell.StyleDefault.Background(ColorBgHighlight)
	for dy := 0; dy < boxHeight; dy++ {
		for dx := 0; dx < boxWidth; dx++ {
			s.SetContent(x+dx, y+dy, ' ', nil, boxStyle)
		}
	}

	user := v.store.User()
	drawText(s, x+2, y+1, boxStyle.Bold(true).Foreground(ColorHeader), "Profile")
	drawText(s, x+boxWidth-6, y+1, boxStyle.Foreground(ColorMagenta).Bold(true), user.AvatarInitial)

	if v.editing {
		v.drawEditForm(s, x, y, boxWidth, boxHeight)
		return
	}

	fg := boxStyle.Foreground(ColorFg)
	dim := boxStyle.Foreground(ColorDimmed)

	drawTextTruncated(s, x+2, y+3, boxWidth-4, fg.Bold(true), user.Username)
	drawTextTruncated(s, x+2, y+4, boxWidth-4, dim, user.Email)
	drawTextTruncated(s, x+2, y+6, boxWidth-4, fg, user.Bio)
	drawText(s, x+2, y+8, dim, "Joined "+user.JoinedDate.Format("January 2006"))

	stats := v.store.Stats(v.records)
	drawText(s, x+2, y+10, boxStyle.Bold(true).Foreground(ColorHeader), "Stats")
	drawText(s, x+2, y+11, fg, fmt.Sprintf("Episodes  %d", stats.PodcastCount))
	drawText(s, x+2, y+12, fg, fmt.Sprintf("Views     %s", formatCount(stats.TotalViews)))
	drawText(s, x+2, y+13, fg, fmt.Sprintf("Likes     %s", formatCount(stats.TotalLikes)))

	drawText(s, x+2, y+boxHeight-1, dim, "e:edit  esc:close")
}

func (v *ProfileView) drawEditForm(s tcell.Screen, x, y, boxWidth, boxHeight int) {
	v.drawField(s, x+2, y+3, boxWidth-4, "Name", &v.username, v.focused == profileFieldUsername)
	v.drawField(s, x+2, y+5, boxWidth-4, "Email", &v.email, v.focused == profileFieldEmail)
	v.drawField(s, x+2, y+7, boxWidth-4, "Bio", &v.bio, v.focused == profileFieldBio)

	dim := tcell.StyleDefault.Background(ColorBgHighlight).Foreground(ColorDimmed)
	drawText(s, x+2, y+boxHeight-1, dim, "enter:save  tab:next field  esc:discard")
}

func (v *ProfileView) drawField(s tcell.Screen, x, y, width int, label string, input *textInput, focused bool) {
	labelStyle := tcell.StyleDefault.Background(ColorBgHighlight).Foreground(ColorFg)
	if focused {
		labelStyle = labelStyle.Bold(true).Foreground(ColorHighlight)
	}
	drawText(s, x, y, labelStyle, label+":")

	valueX := x + 8
	valueWidth := width - 8
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
