package schema

// CoreHeroTable represents the 'core.hero' table
type CoreHeroTable struct {
	Table        string
	ID           string
	Name         string
	Slug         string
	FullName     string
	Publisher    string
	Alignment    string
	Gender       string
	Race         string
	ImageURL     string
	Intelligence string
	Strength     string
	Speed        string
	Durability   string
	Power        string
	Combat       string
	CreatedAt    string
	UpdatedAt    string
}

// CoreHero is the schema definition for core.hero
var CoreHero = CoreHeroTable{
	Table:        "core.hero",
	ID:           "id",
	Name:         "name",
	Slug:         "slug",
	FullName:     "fullname",
	Publisher:    "publisher",
	Alignment:    "alignment",
	Gender:       "gender",
	Race:         "race",
	ImageURL:     "imageurl",
	Intelligence: "intelligence",
	Strength:     "strength",
	Speed:        "speed",
	Durability:   "durability",
	Power:        "power",
	Combat:       "combat",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t CoreHeroTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Slug, t.FullName, t.Publisher, t.Alignment,
		t.Gender, t.Race, t.ImageURL,
		t.Intelligence, t.Strength, t.Speed, t.Durability, t.Power, t.Combat,
		t.CreatedAt, t.UpdatedAt,
	}
}

// StatColumn maps a powerstat key to its column name. The bool result guards
// against unknown keys ever reaching SQL text.
func (t CoreHeroTable) StatColumn(stat string) (string, bool) {
	switch stat {
	case "intelligence":
		return t.Intelligence, true
	case "strength":
		return t.Strength, true
	case "speed":
		return t.Speed, true
	case "durability":
		return t.Durability, true
	case "power":
		return t.Power, true
	case "combat":
		return t.Combat, true
	}
	return "", false
}
