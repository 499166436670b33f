package schema

// SocialCommentTable represents the 'social.comment' table
type SocialCommentTable struct {
	Table     string
	ID        string
	HeroID    string
	Body      string
	CreatedAt string
}

// SocialComment is the schema definition for social.comment
var SocialComment = SocialCommentTable{
	Table:     "social.comment",
	ID:        "id",
	HeroID:    "heroid",
	Body:      "body",
	CreatedAt: "createdat",
}

func (t SocialCommentTable) Columns() []string {
	return []string{t.ID, t.HeroID, t.Body, t.CreatedAt}
}
