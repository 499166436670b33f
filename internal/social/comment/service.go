package comment

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/taibuivan/herodex/internal/core/hero"
	"github.com/taibuivan/herodex/internal/platform/apperr"
	"github.com/taibuivan/herodex/internal/platform/constants"
	"github.com/taibuivan/herodex/internal/platform/validate"
)

// HeroDirectory is the slice of the hero domain the comment service depends
// on: existence checks for the referenced hero.
type HeroDirectory interface {
	GetHeroByID(context context.Context, id string) (*hero.Hero, error)
}

type Service struct {
	repo   Repository
	heroes HeroDirectory
	logger *slog.Logger
}

func NewService(repo Repository, heroes HeroDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		heroes: heroes,
		logger: logger,
	}
}

// CreateComment validates the input, verifies the referenced hero exists,
// inserts the comment, and returns it with the hero populated.
//
// The existence check runs before the insert so an invalid hero id can never
// produce an orphaned comment.
func (service *Service) CreateComment(context context.Context, heroID, body string) (*Comment, error) {
	validator := &validate.Validator{}
	validator.Required(FieldHeroID, heroID).UUID(FieldHeroID, heroID)
	validator.Required(FieldBody, body).MaxLen(FieldBody, body, constants.MaxCommentLength)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if _, err := service.heroes.GetHeroByID(context, heroID); err != nil {
		if ae := apperr.As(err); ae != nil && ae.HTTPStatus == http.StatusNotFound {
			return nil, apperr.NotFound("Hero")
		}
		return nil, err
	}

	created := &Comment{HeroID: heroID, Body: body}
	if err := service.repo.CreateComment(context, created); err != nil {
		return nil, err
	}

	service.logger.Info("comment_created",
		slog.String("comment_id", created.ID),
		slog.String("hero_id", heroID),
	)

	// Re-read so the response carries the populated hero reference.
	return service.repo.GetByID(context, created.ID)
}

// ListComments returns one page of a hero's thread, newest first.
//
// A syntactically valid hero id with no comments (including an unknown hero)
// yields an empty page, not an error.
func (service *Service) ListComments(context context.Context, heroID string, limit, offset int) ([]*Comment, int, error) {
	validator := &validate.Validator{}
	validator.Required(FieldHeroID, heroID).UUID(FieldHeroID, heroID)

	if err := validator.Err(); err != nil {
		return nil, 0, err
	}

	return service.repo.ListByHero(context, heroID, limit, offset)
}
