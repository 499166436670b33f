package hero

import "context"

// Repository defines the data access contract for the hero domain.
//
// Every list operation returns the page slice plus the total count of rows
// matching the same filter, so handlers can derive pagination metadata.
type Repository interface {
	ListHeroes(context context.Context, f Filter, limit, offset int) ([]*Hero, int, error)
	GetHeroByID(context context.Context, id string) (*Hero, error)
	GetHeroBySlug(context context.Context, slug string) (*Hero, error)
}
