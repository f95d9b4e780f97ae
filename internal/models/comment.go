package models

// Comment is a sample comment shown in the player overlay. Comments are
// static demo data; nothing ever appends to the list.
type Comment struct {
	ID            int64
	Author        string
	AvatarInitial string
	Text          string
}

// SampleComments returns the demo comment thread rendered under every
// record in the player overlay.
func SampleComments() []Comment {
	return []Comment{
		{ID: 1, Author: "Сергей К.", AvatarInitial: "СК", Text: "Невероятно интересный подкаст! Слушал на одном дыхании"},
		{ID: 2, Author: "Ольга М.", AvatarInitial: "ОМ", Text: "Спасибо за качественный контент, жду продолжения!"},
		{ID: 3, Author: "Андрей Л.", AvatarInitial: "АЛ", Text: "Очень познавательно, рекомендую всем"},
	}
}
