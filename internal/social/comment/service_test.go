// Copyright (c) 2026 Herodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/herodex/internal/core/hero"
	"github.com/taibuivan/herodex/internal/platform/apperr"
	"github.com/taibuivan/herodex/internal/platform/constants"
	"github.com/taibuivan/herodex/internal/social/comment"
	"github.com/taibuivan/herodex/pkg/uuidv7"
)

// stubRepository is an in-memory Repository for service tests.
type stubRepository struct {
	comments map[string]*comment.Comment
	inserted []*comment.Comment
	hero     *hero.Hero
}

func newStubRepository(populated *hero.Hero) *stubRepository {
	return &stubRepository{
		comments: map[string]*comment.Comment{},
		hero:     populated,
	}
}

// ListByHero mirrors the store contract: newest comment first.
func (s *stubRepository) ListByHero(_ context.Context, heroID string, limit, offset int) ([]*comment.Comment, int, error) {
	var matched []*comment.Comment
	for i := len(s.inserted) - 1; i >= 0; i-- {
		if s.inserted[i].HeroID == heroID {
			matched = append(matched, s.inserted[i])
		}
	}
	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := min(offset+limit, total)
	return matched[offset:end], total, nil
}

func (s *stubRepository) CreateComment(_ context.Context, c *comment.Comment) error {
	c.ID = uuidv7.New()
	c.CreatedAt = time.Now().UTC()
	stored := *c
	stored.Hero = s.hero
	s.comments[c.ID] = &stored
	s.inserted = append(s.inserted, &stored)
	return nil
}

func (s *stubRepository) GetByID(_ context.Context, id string) (*comment.Comment, error) {
	c, ok := s.comments[id]
	if !ok {
		return nil, apperr.NotFound("Resource")
	}
	return c, nil
}

// stubDirectory resolves exactly one hero id.
type stubDirectory struct {
	known *hero.Hero
}

func (s *stubDirectory) GetHeroByID(_ context.Context, id string) (*hero.Hero, error) {
	if s.known != nil && s.known.ID == id {
		return s.known, nil
	}
	return nil, apperr.NotFound("Hero")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateComment(t *testing.T) {
	abomb := &hero.Hero{ID: uuidv7.New(), Name: "A-Bomb", Slug: "a-bomb"}

	t.Run("round trip returns populated hero", func(t *testing.T) {
		repo := newStubRepository(abomb)
		service := comment.NewService(repo, &stubDirectory{known: abomb}, discardLogger())

		created, err := service.CreateComment(context.Background(), abomb.ID, "Strongest there is.")
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, abomb.ID, created.HeroID)
		assert.Equal(t, "Strongest there is.", created.Body)
		assert.False(t, created.CreatedAt.IsZero())
		require.NotNil(t, created.Hero)
		assert.Equal(t, "A-Bomb", created.Hero.Name)
	})

	t.Run("unknown hero rejected before insert", func(t *testing.T) {
		repo := newStubRepository(abomb)
		service := comment.NewService(repo, &stubDirectory{known: abomb}, discardLogger())

		_, err := service.CreateComment(context.Background(), uuidv7.New(), "orphan")
		require.Error(t, err)

		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, http.StatusNotFound, appError.HTTPStatus)
		assert.Empty(t, repo.inserted, "nothing may be written for a missing hero")
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name   string
			heroID string
			body   string
		}{
			{name: "empty body", heroID: abomb.ID, body: ""},
			{name: "oversized body", heroID: abomb.ID, body: strings.Repeat("x", constants.MaxCommentLength+1)},
			{name: "malformed hero id", heroID: "not-a-uuid", body: "hello"},
			{name: "empty hero id", heroID: "", body: "hello"},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				repo := newStubRepository(abomb)
				service := comment.NewService(repo, &stubDirectory{known: abomb}, discardLogger())

				_, err := service.CreateComment(context.Background(), tc.heroID, tc.body)
				require.Error(t, err)

				appError := apperr.As(err)
				require.NotNil(t, appError)
				assert.Equal(t, http.StatusBadRequest, appError.HTTPStatus)
				assert.Empty(t, repo.inserted)
			})
		}
	})
}

func TestListComments(t *testing.T) {
	abomb := &hero.Hero{ID: uuidv7.New(), Name: "A-Bomb", Slug: "a-bomb"}

	t.Run("unknown hero yields empty page", func(t *testing.T) {
		repo := newStubRepository(abomb)
		service := comment.NewService(repo, &stubDirectory{known: abomb}, discardLogger())

		comments, total, err := service.ListComments(context.Background(), uuidv7.New(), constants.CommentPageSize, 0)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, comments)
	})

	t.Run("newest comment leads the thread", func(t *testing.T) {
		repo := newStubRepository(abomb)
		service := comment.NewService(repo, &stubDirectory{known: abomb}, discardLogger())

		_, err := service.CreateComment(context.Background(), abomb.ID, "posted first")
		require.NoError(t, err)
		_, err = service.CreateComment(context.Background(), abomb.ID, "posted second")
		require.NoError(t, err)

		page, total, err := service.ListComments(context.Background(), abomb.ID, constants.CommentPageSize, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, page, 2)
		assert.Equal(t, "posted second", page[0].Body)
		assert.Equal(t, "posted first", page[1].Body)
	})

	t.Run("pages through the thread", func(t *testing.T) {
		repo := newStubRepository(abomb)
		service := comment.NewService(repo, &stubDirectory{known: abomb}, discardLogger())

		for i := 0; i < 5; i++ {
			_, err := service.CreateComment(context.Background(), abomb.ID, "entry")
			require.NoError(t, err)
		}

		page, total, err := service.ListComments(context.Background(), abomb.ID, constants.CommentPageSize, constants.CommentPageSize)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Len(t, page, 2)
	})

	t.Run("malformed hero id rejected", func(t *testing.T) {
		repo := newStubRepository(abomb)
		service := comment.NewService(repo, &stubDirectory{known: abomb}, discardLogger())

		_, _, err := service.ListComments(context.Background(), "nope", constants.CommentPageSize, 0)
		require.Error(t, err)

		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, http.StatusBadRequest, appError.HTTPStatus)
	})
}
