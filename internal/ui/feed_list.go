package ui

import (
	"fmt"

	"github.com/casttivi/casttivi/internal/models"
	"github.com/casttivi/casttivi/internal/reaction"
	"github.com/gdamore/tcell/v2"
)

const (
	colTitle = iota
	colAuthor
	colCategory
	colDuration
	colViews
	colLikes
	colRating
)

// recordRow adapts a catalog record to the table widget
type recordRow struct {
	record    *models.Podcast
	reactions *reaction.Reactions
	match     *MatchResult
}

func (r *recordRow) GetCell(columnIndex int) string {
	switch columnIndex {
	case colTitle:
		return r.record.Title
	case colAuthor:
		return r.record.Author
	case colCategory:
		return r.record.Category
	case colDuration:
		return r.record.DurationLabel
	case colViews:
		return formatCount(r.record.ViewCount)
	case colLikes:
		likes := r.record.LikeCount
		if r.reactions.IsLiked(r.record.ID) {
			likes++
		}
		return formatCount(likes)
	case colRating:
		return fmt.Sprintf("%.1f", r.record.Rating)
	}
	return ""
}

func (r *recordRow) GetCellStyle(columnIndex int, selected bool) *tcell.Style {
	if selected {
		return nil
	}

	switch columnIndex {
	case colTitle:
		style := tcell.StyleDefault.Foreground(RecordTheme(r.record.ColorTheme))
		return &style
	case colLikes:
		if r.reactions.IsLiked(r.record.ID) {
			style := tcell.StyleDefault.Foreground(ColorPlaying)
			return &style
		}
		if r.reactions.IsDisliked(r.record.ID) {
			style := tcell.StyleDefault.Foreground(ColorError)
			return &style
		}
	case colAuthor:
		if r.reactions.IsSubscribed(r.record.AuthorID) {
			style := tcell.StyleDefault.Foreground(ColorGreen)
			return &style
		}
		style := tcell.StyleDefault.Foreground(ColorDimmed)
		return &style
	case colCategory, colViews, colRating:
		style := tcell.StyleDefault.Foreground(ColorDimmed)
		return &style
	}
	return nil
}

func (r *recordRow) GetHighlightPositions(columnIndex int) []int {
	if r.match == nil {
		return nil
	}
	switch {
	case columnIndex == colTitle && r.match.Field == "title":
		return r.match.Positions
	case columnIndex == colAuthor && r.match.Field == "author":
		return r.match.Positions
	case columnIndex == colCategory && r.match.Field == "category":
		return r.match.Positions
	}
	return nil
}

// FeedView renders the record catalog as a scrollable table
type FeedView struct {
	table   *Table
	records []*models.Podcast

	emptyMessage string
}

func NewFeedView() *FeedView {
	table := NewTable()
	table.SetColumns([]TableColumn{
		{Title: "Title", MinWidth: 20, FlexWeight: 0.6},
		{Title: "Author", MinWidth: 14, FlexWeight: 0.4},
		{Title: "Category", Width: 12},
		{Title: "Length", Width: 8, Align: AlignRight},
		{Title: "Views", Width: 7, Align: AlignRight},
		{Title: "Likes", Width: 7, Align: AlignRight},
		{Title: "Rating", Width: 6, Align: AlignRight},
	})
	return &FeedView{
		table:        table,
		emptyMessage: "No episodes here yet",
	}
}

// SetRecords replaces the visible rows, keeping the selection stable
// on the same record where possible.
func (v *FeedView) SetRecords(records []*models.Podcast, reactions *reaction.Reactions, matches map[int64]MatchResult) {
	var selectedID int64
	if sel := v.Selected(); sel != nil {
		selectedID = sel.ID
	}

	v.records = records

	rows := make([]TableRow, len(records))
	newIdx := -1
	for i, rec := range records {
		row := &recordRow{record: rec, reactions: reactions}
		if mr, ok := matches[rec.ID]; ok {
			row.match = &mr
		}
		rows[i] = row
		if rec.ID == selectedID {
			newIdx = i
		}
	}
	v.table.SetRows(rows)
	if newIdx >= 0 {
		v.table.SelectByIndex(newIdx)
	}
}

func (v *FeedView) SetEmptyMessage(msg string) {
	v.emptyMessage = msg
}

func (v *FeedView) Selected() *models.Podcast {
	idx := v.table.GetSelectedIndex()
	if idx < 0 || idx >= len(v.records) {
		return nil
	}
	return v.records[idx]
}

func (v *FeedView) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'j':
			return v.table.SelectNext()
		case 'k':
			return v.table.SelectPrevious()
		case 'g':
			v.table.SelectFirst()
			return true
		case 'G':
			v.table.SelectLast()
			return true
		}
	case tcell.KeyDown:
		return v.table.SelectNext()
	case tcell.KeyUp:
		return v.table.SelectPrevious()
	case tcell.KeyCtrlD:
		return v.table.PageDown()
	case tcell.KeyCtrlU:
		return v.table.PageUp()
	}
	return false
}

// Draw renders the feed table into the given region
func (v *FeedView) Draw(s tcell.Screen, x, y, width, height int) {
	if len(v.records) == 0 {
		drawText(s, x+2, y+1, tcell.StyleDefault.Foreground(ColorDimmed), v.emptyMessage)
		return
	}

	v.table.SetPosition(x, y)
	v.table.SetSize(width, height)
	v.table.Draw(s)
}

// ScrollInfo reports the visible row window for the status bar.
func (v *FeedView) ScrollInfo() (first, last, total int) {
	return v.table.GetScrollInfo()
}
