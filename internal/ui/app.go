package ui

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/casttivi/casttivi/internal/catalog"
	"github.com/casttivi/casttivi/internal/models"
	"github.com/casttivi/casttivi/internal/player"
	"github.com/casttivi/casttivi/internal/profile"
	"github.com/casttivi/casttivi/internal/reaction"
	"github.com/gdamore/tcell/v2"
)

// Section selects which slice of the catalog the feed table shows.
type Section int

const (
	SectionFeed Section = iota
	SectionLikes
	SectionSubscriptions
	SectionMine
)

func (s Section) String() string {
	switch s {
	case SectionFeed:
		return "Feed"
	case SectionLikes:
		return "Likes"
	case SectionSubscriptions:
		return "Subscriptions"
	case SectionMine:
		return "My episodes"
	}
	return "?"
}

// Overlay is the full-screen surface drawn over the feed, if any.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayPlayer
	OverlayUpload
	OverlayProfile
)

// Mode distinguishes normal key handling from live search input.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
)

type App struct {
	screen       tcell.Screen
	quit         chan struct{}
	shutdownOnce sync.Once

	store     *catalog.Store
	reactions *reaction.Reactions
	profile   *profile.Store

	resource   *player.MPV
	controller *player.Controller
	settings   *Settings

	section Section
	overlay Overlay
	mode    Mode

	feed          *FeedView
	playerView    *PlayerView
	uploadForm    *UploadForm
	profileView   *ProfileView
	helpDialog    *HelpDialog
	confirmDialog *ConfirmDialog
	search        *SearchState

	// playbackUpdate is poked by the controller whenever transport
	// state changes, coalesced to one pending redraw.
	playbackUpdate chan struct{}

	statusMessage string
}

func NewApp(settings *Settings) *App {
	resource := player.NewMPV()

	a := &App{
		quit:           make(chan struct{}),
		store:          catalog.NewStore(models.SeedCatalog()),
		reactions:      reaction.New(),
		profile:        profile.NewStore(),
		resource:       resource,
		controller:     player.NewController(resource, settings.InitialVolume),
		settings:       settings,
		feed:           NewFeedView(),
		helpDialog:     NewHelpDialog(),
		confirmDialog:  NewConfirmDialog(),
		search:         NewSearchState(settings.FuzzySearch),
		playbackUpdate: make(chan struct{}, 1),
	}

	a.playerView = NewPlayerView(a.controller, a.reactions, time.Duration(settings.SeekStepSeconds)*time.Second)
	a.profileView = NewProfileView(a.profile)
	a.uploadForm = NewUploadForm(a.submitUpload, func() {
		a.overlay = OverlayNone
	})

	a.controller.SetOnUpdate(func() {
		select {
		case a.playbackUpdate <- struct{}{}:
		default:
		}
	})

	return a
}

func (a *App) Run() error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	a.screen = s

	if err := s.Init(); err != nil {
		return err
	}

	defer func() {
		select {
		case <-a.quit:
		default:
			close(a.quit)
		}

		a.shutdown()
		s.Fini()

		if r := recover(); r != nil {
			log.Printf("Panic during shutdown: %v", r)
		}
	}()

	s.SetStyle(tcell.StyleDefault.Background(ColorBg).Foreground(ColorFg))
	s.Clear()

	// Start mpv in idle mode so the first playback starts instantly
	if err := a.resource.StartIdle(); err != nil {
		log.Printf("Failed to start playback backend: %v", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Received interrupt signal, shutting down...")
		if a.screen != nil {
			a.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
		close(a.quit)
	}()

	a.refreshRows()

	go a.handleEvents()
	a.draw()

	<-a.quit

	log.Println("Shutdown complete")
	return nil
}

func (a *App) shutdown() {
	a.shutdownOnce.Do(func() {
		log.Println("Shutting down casttivi...")
		a.controller.Close()
		a.resource.Shutdown()
	})
}

func (a *App) handleEvents() {
	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-a.quit:
			return
		case <-a.playbackUpdate:
			a.draw()
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				a.screen.Sync()
				a.draw()
			case *tcell.EventKey:
				if a.handleKey(ev) {
					a.draw()
				}
			case *tcell.EventInterrupt:
				return
			}
		}
	}
}

// refreshRows recomputes the feed rows from the catalog, the active
// section and the live search query.
func (a *App) refreshRows() {
	records := a.sectionRecords()

	matches := make(map[int64]MatchResult)
	if a.search.Query() != "" {
		filtered := records[:0:0]
		for _, rec := range records {
			ok, mr := a.search.MatchRecord(rec)
			if !ok {
				continue
			}
			filtered = append(filtered, rec)
			matches[rec.ID] = mr
		}
		records = filtered
	}

	a.feed.SetEmptyMessage(a.emptyMessage())
	a.feed.SetRecords(records, a.reactions, matches)
}

func (a *App) sectionRecords() []*models.Podcast {
	switch a.section {
	case SectionLikes:
		return a.store.Filter(func(rec *models.Podcast) bool {
			return a.reactions.IsLiked(rec.ID)
		})
	case SectionSubscriptions:
		return a.store.Filter(func(rec *models.Podcast) bool {
			return a.reactions.IsSubscribed(rec.AuthorID)
		})
	case SectionMine:
		return a.store.ByAuthor(a.profile.User().ID)
	default:
		return a.store.All()
	}
}

func (a *App) emptyMessage() string {
	if a.search.Query() != "" {
		return fmt.Sprintf("Nothing matches %q", a.search.Query())
	}
	switch a.section {
	case SectionLikes:
		return "Episodes you like show up here"
	case SectionSubscriptions:
		return "Subscribe to authors to fill this view"
	case SectionMine:
		return "You have not published anything yet"
	}
	return "No episodes here yet"
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	// Modal dialogs swallow everything
	if a.helpDialog.IsVisible() {
		return a.helpDialog.HandleKey(ev)
	}
	if a.confirmDialog.IsVisible() {
		return a.confirmDialog.HandleKey(ev)
	}

	switch a.overlay {
	case OverlayPlayer:
		return a.handlePlayerKey(ev)
	case OverlayUpload:
		return a.uploadForm.HandleKey(ev)
	case OverlayProfile:
		return a.handleProfileKey(ev)
	}

	if a.mode == ModeSearch {
		return a.handleSearchKey(ev)
	}
	return a.handleNormalKey(ev)
}

func (a *App) handlePlayerKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape {
		a.closePlayer()
		return true
	}
	// Minimize keeps the transport running behind the feed
	if ev.Key() == tcell.KeyRune && ev.Rune() == 'x' {
		a.overlay = OverlayNone
		a.refreshRows()
		return true
	}
	if a.playerView.HandleKey(ev) {
		a.refreshRows()
		return true
	}
	return false
}

func (a *App) handleProfileKey(ev *tcell.EventKey) bool {
	if !a.profileView.Editing() && ev.Key() == tcell.KeyEscape {
		a.overlay = OverlayNone
		a.refreshRows()
		return true
	}
	return a.profileView.HandleKey(ev)
}

func (a *App) handleSearchKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.search.Clear()
		a.mode = ModeNormal
		a.refreshRows()
		return true
	case tcell.KeyEnter:
		// Keep the filter, return to list navigation
		a.mode = ModeNormal
		return true
	case tcell.KeyCtrlF:
		a.search.ToggleFuzzy()
		a.refreshRows()
		return true
	case tcell.KeyDown, tcell.KeyUp:
		return a.feed.HandleKey(ev)
	}

	if a.search.HandleKey(ev) {
		a.refreshRows()
		return true
	}
	return false
}

func (a *App) handleNormalKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		if a.search.Query() != "" {
			a.search.Clear()
			a.refreshRows()
			return true
		}
		return false
	case tcell.KeyEnter:
		a.openPlayer(a.feed.Selected())
		return true
	case tcell.KeyCtrlF:
		a.search.ToggleFuzzy()
		a.refreshRows()
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'Q':
			close(a.quit)
			return false
		case '?':
			a.helpDialog.Show()
			return true
		case '/':
			a.mode = ModeSearch
			return true
		case '1':
			a.switchSection(SectionFeed)
			return true
		case '2':
			a.switchSection(SectionLikes)
			return true
		case '3':
			a.switchSection(SectionSubscriptions)
			return true
		case '4':
			a.switchSection(SectionMine)
			return true
		case 'u':
			a.uploadForm.Reset()
			a.overlay = OverlayUpload
			return true
		case 'p':
			a.profileView.SetRecords(a.store.All())
			a.overlay = OverlayProfile
			return true
		case 'd':
			a.confirmDelete(a.feed.Selected())
			return true
		case 'L':
			if rec := a.feed.Selected(); rec != nil {
				a.reactions.ToggleLike(rec.ID)
				a.refreshRows()
				return true
			}
		case 'D':
			if rec := a.feed.Selected(); rec != nil {
				a.reactions.ToggleDislike(rec.ID)
				a.refreshRows()
				return true
			}
		case 'S':
			if rec := a.feed.Selected(); rec != nil {
				a.reactions.ToggleSubscription(rec.AuthorID)
				a.refreshRows()
				return true
			}
		}
	}
	return a.feed.HandleKey(ev)
}

func (a *App) switchSection(section Section) {
	if a.section == section {
		return
	}
	a.section = section
	a.statusMessage = ""
	a.refreshRows()
}

func (a *App) openPlayer(rec *models.Podcast) {
	if rec == nil {
		return
	}
	// Reopening a minimized record must not reset its position
	if current := a.controller.Record(); current != nil && current.ID == rec.ID {
		a.overlay = OverlayPlayer
		return
	}
	if err := a.controller.Bind(rec); err != nil {
		log.Printf("Failed to open %q: %v", rec.Title, err)
		a.statusMessage = "Playback failed: " + err.Error()
		return
	}
	a.overlay = OverlayPlayer
}

func (a *App) closePlayer() {
	a.controller.Close()
	a.overlay = OverlayNone
	a.refreshRows()
}

func (a *App) submitUpload(title, category, duration, theme string) error {
	rec, err := models.NewUpload(a.profile.User(), title, category, duration, theme)
	if err != nil {
		return err
	}
	a.store.Add(rec)
	a.overlay = OverlayNone
	a.statusMessage = fmt.Sprintf("Published %q", rec.Title)
	a.refreshRows()
	return nil
}

func (a *App) confirmDelete(rec *models.Podcast) {
	if rec == nil {
		return
	}
	if rec.AuthorID != a.profile.User().ID {
		a.statusMessage = "Only your own episodes can be deleted"
		return
	}

	id := rec.ID
	a.confirmDialog.Show(
		"Delete episode",
		fmt.Sprintf("Delete %q? This cannot be undone.", rec.Title),
		func() {
			// Resolve by id again: the dialog may outlive the row
			target := a.store.Get(id)
			if target == nil {
				return
			}
			if current := a.controller.Record(); current != nil && current.ID == id {
				a.controller.Close()
			}
			a.store.Remove(id)
			a.statusMessage = fmt.Sprintf("Deleted %q", target.Title)
			a.refreshRows()
		},
		nil,
	)
}

func (a *App) draw() {
	s := a.screen
	s.Clear()
	w, h := s.Size()

	switch a.overlay {
	case OverlayPlayer:
		a.playerView.Draw(s)
	default:
		a.drawHeader(s, w)
		a.feed.Draw(s, 0, 2, w, h-3)
		a.drawStatusBar(s, w, h)

		if a.overlay == OverlayUpload {
			a.uploadForm.Draw(s)
		}
		if a.overlay == OverlayProfile {
			a.profileView.Draw(s)
		}
	}

	a.confirmDialog.Draw(s)
	a.helpDialog.Draw(s)

	s.Show()
}

func (a *App) drawHeader(s tcell.Screen, w int) {
	x := 1
	drawText(s, x, 0, tcell.StyleDefault.Bold(true).Foreground(ColorMagenta), "CastTivi")
	x += 10

	for section := SectionFeed; section <= SectionMine; section++ {
		label := fmt.Sprintf("%d %s", int(section)+1, section)
		style := tcell.StyleDefault.Foreground(ColorDimmed)
		if section == a.section {
			style = tcell.StyleDefault.Foreground(ColorHeader).Bold(true)
		}
		drawText(s, x, 0, style, label)
		x += len([]rune(label)) + 3
	}

	drawHLine(s, 1, w, tcell.StyleDefault.Foreground(ColorFgGutter))
}

func (a *App) drawStatusBar(s tcell.Screen, w, h int) {
	y := h - 1
	barStyle := tcell.StyleDefault.Background(ColorBgDark).Foreground(ColorFg)
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, barStyle)
	}

	if a.mode == ModeSearch || a.search.Query() != "" {
		a.drawSearchBar(s, y, w, barStyle)
		return
	}

	left := a.statusMessage
	if left == "" {
		left = a.transportSummary()
	}
	if left == "" {
		left = "?:help"
	}
	drawTextTruncated(s, 1, y, w-24, barStyle, left)

	first, last, total := a.feed.ScrollInfo()
	right := fmt.Sprintf("♥%d ⊕%d  %d-%d/%d",
		a.reactions.LikedCount(), a.reactions.SubscriptionCount(), first, last, total)
	drawText(s, w-len([]rune(right))-1, y, barStyle.Foreground(ColorDimmed), right)
}

func (a *App) drawSearchBar(s tcell.Screen, y, w int, barStyle tcell.Style) {
	prompt := "/"
	if a.search.Fuzzy() {
		prompt = "/~"
	}
	drawText(s, 1, y, barStyle.Foreground(ColorHighlight).Bold(true), prompt)

	queryX := 1 + len(prompt) + 1
	drawTextTruncated(s, queryX, y, w-queryX-20, barStyle, a.search.Query())

	if a.mode == ModeSearch {
		cursorIdx := a.search.CursorRune()
		cursorX := queryX + cursorIdx
		if cursorX < w-20 {
			under := ' '
			if runes := []rune(a.search.Query()); cursorIdx < len(runes) {
				under = runes[cursorIdx]
			}
			s.SetContent(cursorX, y, under, nil, barStyle.Reverse(true))
		}
	}

	_, _, total := a.feed.ScrollInfo()
	right := fmt.Sprintf("%d matches  ctrl-f:fuzzy  esc:clear", total)
	drawText(s, w-len([]rune(right))-1, y, barStyle.Foreground(ColorDimmed), right)
}

func (a *App) transportSummary() string {
	rec := a.controller.Record()
	if rec == nil {
		return ""
	}
	state := a.controller.Snapshot()

	status := "⏸"
	if state.Playing {
		status = "▶"
	}
	duration := "--:--"
	if state.Duration > 0 {
		duration = formatPlaybackTime(state.Duration)
	}
	return fmt.Sprintf("%s %s  %s/%s", status, rec.Title, formatPlaybackTime(state.Position), duration)
}
