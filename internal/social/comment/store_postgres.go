// Copyright (c) 2026 Herodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package comment provides the PostgreSQL implementation for thread data access.

Reference resolution is done with a single JOIN against core.hero rather than
a second round-trip per comment; every read path returns fully populated rows.
*/
package comment

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/herodex/internal/core/hero"
	"github.com/taibuivan/herodex/internal/platform/database/schema"
	"github.com/taibuivan/herodex/internal/platform/dberr"
	"github.com/taibuivan/herodex/pkg/uuidv7"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectWithHero builds the shared SELECT joining each comment to its hero.
func selectWithHero() string {
	heroColumns := make([]string, 0, len(schema.CoreHero.Columns()))
	for _, column := range schema.CoreHero.Columns() {
		heroColumns = append(heroColumns, "h."+column)
	}

	return fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s, c.%s, %s
		FROM %s c
		JOIN %s h ON h.%s = c.%s
	`,
		schema.SocialComment.ID, schema.SocialComment.HeroID,
		schema.SocialComment.Body, schema.SocialComment.CreatedAt,
		strings.Join(heroColumns, ", "),
		schema.SocialComment.Table,
		schema.CoreHero.Table, schema.CoreHero.ID, schema.SocialComment.HeroID,
	)
}

// ThreadPageQuery builds the page query for one hero's thread.
//
// Newest comment first; ID (UUIDv7, time-ordered) breaks same-timestamp ties,
// so two comments created in the same instant still list in reverse insertion
// order.
func ThreadPageQuery() string {
	return selectWithHero() + fmt.Sprintf(`
		WHERE c.%s = $1
		ORDER BY c.%s DESC, c.%s DESC
		LIMIT $2 OFFSET $3
	`,
		schema.SocialComment.HeroID,
		schema.SocialComment.CreatedAt, schema.SocialComment.ID,
	)
}

func (repository *PostgresRepository) ListByHero(context context.Context, heroID string, limit, offset int) ([]*Comment, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`,
		schema.SocialComment.Table, schema.SocialComment.HeroID,
	)

	var total int
	if err := repository.db.QueryRow(context, countQuery, heroID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_comments")
	}

	rows, err := repository.db.Query(context, ThreadPageQuery(), heroID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_comments")
	}
	defer rows.Close()

	var comments []*Comment
	for rows.Next() {
		c := &Comment{}
		if err := scanComment(rows, c); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, c)
	}

	return comments, total, nil
}

func (repository *PostgresRepository) CreateComment(context context.Context, c *Comment) error {
	c.ID = uuidv7.New()

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s
	`,
		schema.SocialComment.Table,
		schema.SocialComment.ID, schema.SocialComment.HeroID,
		schema.SocialComment.Body, schema.SocialComment.CreatedAt,
		schema.SocialComment.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, c.ID, c.HeroID, c.Body).Scan(&c.CreatedAt)
	return dberr.Wrap(err, "create_comment")
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Comment, error) {
	query := selectWithHero() + fmt.Sprintf(` WHERE c.%s = $1`, schema.SocialComment.ID)

	c := &Comment{}
	if err := scanComment(repository.db.QueryRow(context, query, id), c); err != nil {
		return nil, dberr.Wrap(err, "get_comment")
	}

	return c, nil
}

// scanComment populates c (including the joined hero) from a row selected
// with [selectWithHero] column order.
func scanComment(row pgx.Row, c *Comment) error {
	h := &hero.Hero{}

	err := row.Scan(
		&c.ID, &c.HeroID, &c.Body, &c.CreatedAt,
		&h.ID, &h.Name, &h.Slug, &h.FullName, &h.Publisher, &h.Alignment,
		&h.Appearance.Gender, &h.Appearance.Race, &h.ImageURL,
		&h.Powerstats.Intelligence, &h.Powerstats.Strength, &h.Powerstats.Speed,
		&h.Powerstats.Durability, &h.Powerstats.Power, &h.Powerstats.Combat,
		&h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return err
	}

	c.Hero = h
	return nil
}
