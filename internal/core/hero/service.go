package hero

import (
	"context"
	"log/slog"

	"github.com/taibuivan/herodex/pkg/slug"
	"github.com/taibuivan/herodex/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListHeroes returns a page of heroes matching the filter plus the total
// match count. Unknown powerstat keys are stripped before the filter reaches
// storage, so arbitrary client keys can never influence the query.
func (service *Service) ListHeroes(context context.Context, filter Filter, limit, offset int) ([]*Hero, int, error) {
	filter.MinStats = knownStats(filter.MinStats)
	return service.repo.ListHeroes(context, filter, limit, offset)
}

// GetHero resolves a hero by UUID or by slug.
//
// Non-UUID identifiers are slugified first, so "Iron Man" and "iron-man"
// resolve the same row.
func (service *Service) GetHero(context context.Context, identifier string) (*Hero, error) {
	if uuidv7.IsValid(identifier) {
		return service.repo.GetHeroByID(context, identifier)
	}
	return service.repo.GetHeroBySlug(context, slug.From(identifier))
}

// GetHeroByID resolves a hero strictly by UUID. Other domains use it for
// existence checks before attaching records to a hero.
func (service *Service) GetHeroByID(context context.Context, id string) (*Hero, error) {
	return service.repo.GetHeroByID(context, id)
}

// knownStats returns a copy of stats restricted to the six canonical keys.
func knownStats(stats map[string]int) map[string]int {
	if len(stats) == 0 {
		return nil
	}

	known := make(map[string]int, len(stats))
	for _, key := range StatKeys() {
		if min, ok := stats[key]; ok {
			known[key] = min
		}
	}

	return known
}
