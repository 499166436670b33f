package comment

import "context"

// Repository defines the data access contract for the comment domain.
//
// Every read returns comments with the hero reference populated.
type Repository interface {
	// ListByHero returns one page of a hero's thread, newest first, plus the
	// total comment count for that hero.
	ListByHero(context context.Context, heroID string, limit, offset int) ([]*Comment, int, error)

	// CreateComment inserts c and fills in its store-assigned ID and CreatedAt.
	CreateComment(context context.Context, c *Comment) error

	// GetByID re-reads a single comment with the hero populated.
	GetByID(context context.Context, id string) (*Comment, error)
}
