package trip

import "github.com/shopspring/decimal"

// DefaultPackages is the compiled-in catalog served while the trips
// table is empty, so the public site always has something to show.
// Rows created through the admin screens take precedence.
var DefaultPackages = []*Trip{
	{
		ID:           "hunza-skardu-8days",
		Name:         "Hunza & Skardu Explorer",
		Slug:         "hunza-skardu-8days",
		Category:     "family",
		DurationDays: 8,
		Price:        decimal.NewFromInt(185000),
		ImageURL:     "/images/packages/hunza-skardu.jpg",
		Description:  "Eight days through the Hunza valley, Khunjerab pass and the cold desert of Skardu.",
		Highlights:   []string{"Attabad Lake boat ride", "Baltit and Altit forts", "Khunjerab border", "Sarfaranga cold desert"},
		Difficulty:   "moderate",
		Badge:        "Most Popular",
		IsActive:     true,
	},
	{
		ID:           "fairy-meadows-5days",
		Name:         "Fairy Meadows & Nanga Parbat Base",
		Slug:         "fairy-meadows-5days",
		Category:     "adventure",
		DurationDays: 5,
		Price:        decimal.NewFromInt(95000),
		ImageURL:     "/images/packages/fairy-meadows.jpg",
		Description:  "Jeep track to Tattu village, overnight camps at Fairy Meadows and a hike to the viewpoint.",
		Highlights:   []string{"Raikot bridge jeep ride", "Beyal camp hike", "Nanga Parbat viewpoint"},
		Difficulty:   "hard",
		Badge:        "",
		IsActive:     true,
	},
	{
		ID:           "swat-kalam-4days",
		Name:         "Swat & Kalam Valley Getaway",
		Slug:         "swat-kalam-4days",
		Category:     "family",
		DurationDays: 4,
		Price:        decimal.NewFromInt(65000),
		ImageURL:     "/images/packages/swat-kalam.jpg",
		Description:  "A relaxed valley circuit covering Malam Jabba, Kalam and Mahodand lake.",
		Highlights:   []string{"Malam Jabba chairlift", "Mahodand lake", "Ushu forest"},
		Difficulty:   "easy",
		Badge:        "",
		IsActive:     true,
	},
	{
		ID:           "neelum-valley-3days",
		Name:         "Neelum Valley Weekend",
		Slug:         "neelum-valley-3days",
		Category:     "corporate",
		DurationDays: 3,
		Price:        decimal.NewFromInt(48000),
		ImageURL:     "/images/packages/neelum.jpg",
		Description:  "Short corporate retreat along the Neelum river with stops at Keran and Sharda.",
		Highlights:   []string{"Keran riverside", "Sharda university ruins", "Arang Kel cable car"},
		Difficulty:   "easy",
		Badge:        "Weekend",
		IsActive:     true,
	},
}
