package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/casttivi/casttivi/internal/models"
	"github.com/casttivi/casttivi/internal/player"
	"github.com/casttivi/casttivi/internal/reaction"
	"github.com/gdamore/tcell/v2"
)

// PlayerView is the full-screen overlay shown while a record is open in
// the player. Transport state comes from the controller snapshot on
// every draw, so playback events only need to trigger a redraw.
type PlayerView struct {
	controller *player.Controller
	reactions  *reaction.Reactions
	comments   []models.Comment

	seekStep time.Duration
}

func NewPlayerView(controller *player.Controller, reactions *reaction.Reactions, seekStep time.Duration) *PlayerView {
	return &PlayerView{
		controller: controller,
		reactions:  reactions,
		comments:   models.SampleComments(),
		seekStep:   seekStep,
	}
}

func (v *PlayerView) HandleKey(ev *tcell.EventKey) bool {
	rec := v.controller.Record()
	if rec == nil {
		return false
	}

	switch ev.Key() {
	case tcell.KeyLeft:
		v.controller.SeekRelative(-v.seekStep)
		return true
	case tcell.KeyRight:
		v.controller.SeekRelative(v.seekStep)
		return true
	case tcell.KeyRune:
		r := ev.Rune()
		switch r {
		case ' ':
			v.controller.TogglePlayPause()
			return true
		case 'h':
			v.controller.SeekRelative(-v.seekStep)
			return true
		case 'l':
			v.controller.SeekRelative(v.seekStep)
			return true
		case '+', '=':
			v.controller.AdjustVolume(5)
			return true
		case '-':
			v.controller.AdjustVolume(-5)
			return true
		case 'L':
			v.reactions.ToggleLike(rec.ID)
			return true
		case 'D':
			v.reactions.ToggleDislike(rec.ID)
			return true
		case 'S':
			v.reactions.ToggleSubscription(rec.AuthorID)
			return true
		}
		// Digits scrub to a fraction of the known duration
		if r >= '0' && r <= '9' {
			state := v.controller.Snapshot()
			if state.Duration > 0 {
				fraction := time.Duration(r - '0')
				v.controller.SeekAbsolute(state.Duration * fraction / 10)
			}
			return true
		}
	}
	return false
}

func (v *PlayerView) Draw(s tcell.Screen) {
	w, h := s.Size()
	rec := v.controller.Record()
	if rec == nil {
		return
	}

	themeColor := RecordTheme(rec.ColorTheme)
	bannerStyle := tcell.StyleDefault.Background(themeColor).Foreground(ColorBgDark)

	// Cover banner with the avatar initial, in the record's theme color
	bannerHeight := 5
	for y := 0; y < bannerHeight && y < h; y++ {
		for x := 0; x < w; x++ {
			s.SetContent(x, y, ' ', nil, bannerStyle)
		}
	}
	drawText(s, 3, 2, bannerStyle.Bold(true), rec.AvatarInitial)
	drawTextTruncated(s, 3+len([]rune(rec.AvatarInitial))+2, 2, w-10, bannerStyle.Bold(true), rec.Title)

	y := bannerHeight + 1

	authorLine := rec.Author
	if v.reactions.IsSubscribed(rec.AuthorID) {
		authorLine += "  [subscribed]"
	}
	drawText(s, 3, y, tcell.StyleDefault.Foreground(ColorFg).Bold(true), authorLine)
	y++

	meta := fmt.Sprintf("%s · %s · %s views · %.1f", rec.Category, rec.DurationLabel, formatCount(rec.ViewCount), rec.Rating)
	drawText(s, 3, y, tcell.StyleDefault.Foreground(ColorDimmed), meta)
	y += 2

	state := v.controller.Snapshot()
	y = v.drawTransport(s, y, w, rec, state)
	y++

	y = v.drawReactions(s, y, rec)
	y++

	v.drawComments(s, y, w, h)

	// Key hints on the bottom row
	hints := "space:play/pause  h/l:seek  0-9:scrub  +/-:volume  L:like  D:dislike  S:subscribe  x:minimize  esc:close"
	drawTextTruncated(s, 1, h-1, w-2, tcell.StyleDefault.Foreground(ColorDimmed), hints)
}

func (v *PlayerView) drawTransport(s tcell.Screen, y, w int, rec *models.Podcast, state player.State) int {
	transportStyle := tcell.StyleDefault.Foreground(ColorFg)

	status := "⏸ paused"
	if state.Playing {
		status = "▶ playing"
	}
	if rec.AudioURL == "" {
		status = "no audio source"
	}
	drawText(s, 3, y, transportStyle, status)
	y++

	// Progress bar
	barWidth := w - 24
	if barWidth < 10 {
		barWidth = 10
	}
	position := formatPlaybackTime(state.Position)
	duration := "--:--"
	if state.Duration > 0 {
		duration = formatPlaybackTime(state.Duration)
	}

	filled := 0
	if state.Duration > 0 {
		filled = int(float64(barWidth) * float64(state.Position) / float64(state.Duration))
		if filled > barWidth {
			filled = barWidth
		}
	}

	var bar strings.Builder
	for i := 0; i < barWidth; i++ {
		if i < filled {
			bar.WriteRune('━')
		} else {
			bar.WriteRune('─')
		}
	}
	drawText(s, 3, y, transportStyle, fmt.Sprintf("%s %s %s", position, bar.String(), duration))
	y++

	// Volume bar
	volWidth := 20
	volFilled := state.Volume * volWidth / 100
	var vol strings.Builder
	for i := 0; i < volWidth; i++ {
		if i < volFilled {
			vol.WriteRune('█')
		} else {
			vol.WriteRune('░')
		}
	}
	drawText(s, 3, y, tcell.StyleDefault.Foreground(ColorDimmed), fmt.Sprintf("vol %s %d%%", vol.String(), state.Volume))
	return y + 1
}

func (v *PlayerView) drawReactions(s tcell.Screen, y int, rec *models.Podcast) int {
	likes := rec.LikeCount
	likeStyle := tcell.StyleDefault.Foreground(ColorDimmed)
	if v.reactions.IsLiked(rec.ID) {
		likes++
		likeStyle = tcell.StyleDefault.Foreground(ColorPlaying).Bold(true)
	}
	drawText(s, 3, y, likeStyle, fmt.Sprintf("♥ %s", formatCount(likes)))

	dislikeStyle := tcell.StyleDefault.Foreground(ColorDimmed)
	if v.reactions.IsDisliked(rec.ID) {
		dislikeStyle = tcell.StyleDefault.Foreground(ColorError).Bold(true)
	}
	drawText(s, 14, y, dislikeStyle, "✖ dislike")
	return y + 1
}

func (v *PlayerView) drawComments(s tcell.Screen, startY, w, h int) {
	if startY >= h-2 {
		return
	}

	drawText(s, 3, startY, tcell.StyleDefault.Bold(true).Foreground(ColorHeader), fmt.Sprintf("Comments (%d)", len(v.comments)))
	y := startY + 1

	for _, c := range v.comments {
		if y >= h-2 {
			break
		}
		drawText(s, 3, y, tcell.StyleDefault.Foreground(ColorCyan), c.AvatarInitial)
		drawTextTruncated(s, 6, y, w-10, tcell.StyleDefault.Bold(true), c.Author)
		y++
		if y >= h-2 {
			break
		}
		drawTextTruncated(s, 6, y, w-10, tcell.StyleDefault.Foreground(ColorFg), c.Text)
		y += 2
	}
}

// formatPlaybackTime renders a duration as mm:ss, or h:mm:ss past an hour
func formatPlaybackTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
