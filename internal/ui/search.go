package ui

import (
	"strings"

	"github.com/casttivi/casttivi/internal/models"
	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// SearchState holds the live query for the feed filter. The default
// predicate is a case-insensitive substring match against title, author or
// category; fuzzy mode switches to the fzf matcher instead.
type SearchState struct {
	textInput
	fuzzy bool

	// Minimum fzf score for fuzzy matches; irrelevant in substring mode.
	minScore int
}

// ScoreThresholdNormal mirrors fzf's balanced raw-score cutoff.
const ScoreThresholdNormal = 50

func NewSearchState(fuzzy bool) *SearchState {
	return &SearchState{
		fuzzy:    fuzzy,
		minScore: ScoreThresholdNormal,
	}
}

func (s *SearchState) Query() string {
	return s.Value()
}

func (s *SearchState) Fuzzy() bool {
	return s.fuzzy
}

func (s *SearchState) ToggleFuzzy() {
	s.fuzzy = !s.fuzzy
}

// MatchResult carries the matched field and the rune positions to
// highlight within it.
type MatchResult struct {
	Field     string // "title", "author" or "category"
	Positions []int
}

// MatchRecord reports whether a record matches the current query, checking
// title, then author, then category. An empty or whitespace query matches
// everything.
func (s *SearchState) MatchRecord(rec *models.Podcast) (bool, MatchResult) {
	query := strings.TrimSpace(s.Value())
	if query == "" {
		return true, MatchResult{}
	}

	fields := []struct {
		name string
		text string
	}{
		{"title", rec.Title},
		{"author", rec.Author},
		{"category", rec.Category},
	}

	for _, f := range fields {
		var positions []int
		var ok bool
		if s.fuzzy {
			ok, positions = s.fuzzyMatch(f.text, query)
		} else {
			ok, positions = substringMatch(f.text, query)
		}
		if ok {
			return true, MatchResult{Field: f.name, Positions: positions}
		}
	}
	return false, MatchResult{}
}

// substringMatch finds query in text case-insensitively and returns the
// rune positions of the first occurrence.
func substringMatch(text, query string) (bool, []int) {
	textRunes := []rune(strings.ToLower(text))
	queryRunes := []rune(strings.ToLower(query))

	if len(queryRunes) == 0 || len(queryRunes) > len(textRunes) {
		return len(queryRunes) == 0, nil
	}

	for start := 0; start+len(queryRunes) <= len(textRunes); start++ {
		matched := true
		for i, qr := range queryRunes {
			if textRunes[start+i] != qr {
				matched = false
				break
			}
		}
		if matched {
			positions := make([]int, len(queryRunes))
			for i := range positions {
				positions[i] = start + i
			}
			return true, positions
		}
	}
	return false, nil
}

func (s *SearchState) fuzzyMatch(text, query string) (bool, []int) {
	algo.Init("default")

	chars := util.ToChars([]byte(strings.ToLower(text)))
	patternRunes := []rune(strings.ToLower(query))

	slab := util.MakeSlab(16384, 1024)
	result, positions := algo.FuzzyMatchV2(false, false, true, &chars, patternRunes, true, slab)

	if result.Start < 0 || result.Score < s.minScore {
		return false, nil
	}

	var matchPositions []int
	if positions != nil {
		matchPositions = make([]int, len(*positions))
		copy(matchPositions, *positions)
	}
	return true, matchPositions
}
