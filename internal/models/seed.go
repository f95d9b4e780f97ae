package models

import (
	"time"

	"github.com/google/uuid"
)

// SeedCatalog builds the demo records present at startup, newest first.
// Every author gets a fresh session-scoped id; nothing here persists.
func SeedCatalog() []*Podcast {
	seeded := time.Now().Add(-72 * time.Hour)

	seeds := []struct {
		title         string
		author        string
		category      string
		theme         string
		durationLabel string
		views         int
		likes         int
		rating        float64
	}{
		{"Квантовая физика и будущее технологий", "Александр Иванов", "Наука", "purple", "45:23", 12500, 892, 4.8},
		{"История российской музыки: от классики до хип-хопа", "Мария Соколова", "Музыка", "orange", "38:15", 8900, 645, 4.6},
		{"Предпринимательство в эпоху AI", "Дмитрий Петров", "Бизнес", "blue", "52:40", 15200, 1120, 4.9},
		{"Психология современных отношений", "Елена Волкова", "Психология", "purple", "41:30", 9800, 734, 4.7},
		{"Космос: новые открытия 2026", "Игорь Новиков", "Наука", "orange", "48:50", 11300, 856, 4.8},
		{"Медитация и осознанность в XXI веке", "Анна Морозова", "Здоровье", "blue", "35:20", 7600, 612, 4.5},
	}

	records := make([]*Podcast, 0, len(seeds))
	for i, s := range seeds {
		records = append(records, &Podcast{
			ID:            NextRecordID(),
			Title:         s.title,
			Author:        s.author,
			AuthorID:      uuid.NewString(),
			AvatarInitial: AvatarInitials(s.author),
			Category:      s.category,
			ColorTheme:    s.theme,
			DurationLabel: s.durationLabel,
			ViewCount:     s.views,
			LikeCount:     s.likes,
			Rating:        s.rating,
			UploadedAt:    seeded.Add(time.Duration(i) * time.Hour),
		})
	}
	return records
}
