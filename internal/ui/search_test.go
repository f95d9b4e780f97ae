package ui

import (
	"testing"

	"github.com/casttivi/casttivi/internal/models"
)

func searchRecord() *models.Podcast {
	return &models.Podcast{
		Title:    "Квантовая физика и будущее технологий",
		Author:   "Александр Иванов",
		Category: "Наука",
	}
}

func TestMatchRecord_EmptyQueryMatchesEverything(t *testing.T) {
	s := NewSearchState(false)

	for _, query := range []string{"", "   "} {
		s.Set(query)
		if ok, _ := s.MatchRecord(searchRecord()); !ok {
			t.Errorf("Query %q should match everything", query)
		}
	}
}

func TestMatchRecord_SubstringCaseInsensitive(t *testing.T) {
	s := NewSearchState(false)

	tests := []struct {
		query string
		field string
	}{
		{"квантовая", "title"},
		{"КВАНТОВАЯ", "title"},
		{"иванов", "author"},
		{"наука", "category"},
		{"НаУкА", "category"},
	}

	for _, tc := range tests {
		s.Set(tc.query)
		ok, result := s.MatchRecord(searchRecord())
		if !ok {
			t.Errorf("Query %q should match", tc.query)
			continue
		}
		if result.Field != tc.field {
			t.Errorf("Query %q matched field %q, expected %q", tc.query, result.Field, tc.field)
		}
	}
}

func TestMatchRecord_NoMatch(t *testing.T) {
	s := NewSearchState(false)
	s.Set("джаз")

	if ok, _ := s.MatchRecord(searchRecord()); ok {
		t.Error("Query should not match any field")
	}
}

func TestSubstringMatch_Positions(t *testing.T) {
	ok, positions := substringMatch("Наука и жизнь", "ука")
	if !ok {
		t.Fatal("Expected a match")
	}

	want := []int{2, 3, 4}
	if len(positions) != len(want) {
		t.Fatalf("Positions = %v, expected %v", positions, want)
	}
	for i := range want {
		if positions[i] != want[i] {
			t.Errorf("Positions = %v, expected %v", positions, want)
		}
	}
}

func TestSubstringMatch_QueryLongerThanText(t *testing.T) {
	if ok, _ := substringMatch("ab", "abcdef"); ok {
		t.Error("Query longer than text must not match")
	}
}

func TestMatchRecord_FuzzyMode(t *testing.T) {
	s := NewSearchState(true)
	s.Set("future tech")

	rec := &models.Podcast{Title: "The future of technology", Author: "X", Category: "Tech"}
	if ok, result := s.MatchRecord(rec); !ok || result.Field != "title" {
		t.Errorf("Fuzzy query should match the title, got ok=%v field=%q", ok, result.Field)
	}
}

func TestToggleFuzzy(t *testing.T) {
	s := NewSearchState(false)
	s.ToggleFuzzy()
	if !s.Fuzzy() {
		t.Error("Expected fuzzy mode on after toggle")
	}
	s.ToggleFuzzy()
	if s.Fuzzy() {
		t.Error("Expected fuzzy mode off after second toggle")
	}
}

func TestTextInput_Editing(t *testing.T) {
	var in textInput

	for _, ch := range "наука" {
		in.InsertChar(ch)
	}
	if in.Value() != "наука" {
		t.Fatalf("Value = %q", in.Value())
	}

	in.DeleteChar()
	if in.Value() != "наук" {
		t.Errorf("After backspace: %q", in.Value())
	}

	in.MoveCursorStart()
	in.InsertChar('!')
	if in.Value() != "!наук" {
		t.Errorf("After insert at start: %q", in.Value())
	}

	in.MoveCursorEnd()
	in.DeleteWord()
	if in.Value() != "" {
		t.Errorf("After delete word: %q", in.Value())
	}
}

func TestTextInput_CursorOverMultibyte(t *testing.T) {
	var in textInput
	in.Set("мир")

	in.MoveCursorLeft()
	if in.CursorRune() != 2 {
		t.Errorf("CursorRune = %d, expected 2", in.CursorRune())
	}
	in.MoveCursorLeft()
	in.MoveCursorLeft()
	if in.CursorRune() != 0 {
		t.Errorf("CursorRune = %d, expected 0", in.CursorRune())
	}
	in.MoveCursorRight()
	if in.CursorRune() != 1 {
		t.Errorf("CursorRune = %d, expected 1", in.CursorRune())
	}
}
