// Copyright (c) 2026 Herodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package hero provides the PostgreSQL implementation for the catalog's data access.

Query construction notes:

  - Ordering: every list query sorts by name with COLLATE "C" so the order is
    plain byte-wise (case-sensitive ordinal), independent of the database locale.
  - Prefix search: user input is escaped before being embedded in an ILIKE
    pattern, so pattern metacharacters in the query text match literally.
  - Filters: clauses are appended only for parameters actually present; an
    absent parameter contributes nothing to the WHERE clause.
*/
package hero

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/herodex/internal/platform/database/schema"
	"github.com/taibuivan/herodex/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Query Construction

// likeEscaper neutralizes ILIKE metacharacters so user input matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE/ILIKE pattern metacharacters in s.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// FilterConditions translates f into SQL conditions with positional
// parameters starting at argID.
//
// # Guarantees
//
//   - One condition per present parameter; absent parameters produce nothing.
//   - Stat conditions follow [StatKeys] order, so the generated SQL is
//     deterministic for a given filter.
//   - Unknown stat keys never reach the SQL text (schema column allow-list).
func FilterConditions(f Filter, argID int) ([]string, []any) {
	var conditions []string
	var args []any

	if f.Name != "" {
		conditions = append(conditions, fmt.Sprintf("%s ILIKE $%d", schema.CoreHero.Name, argID))
		args = append(args, EscapeLike(f.Name)+"%")
		argID++
	}

	if f.Gender != "" {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", schema.CoreHero.Gender, argID))
		args = append(args, f.Gender)
		argID++
	}

	for _, stat := range StatKeys() {
		min, present := f.MinStats[stat]
		if !present {
			continue
		}

		column, known := schema.CoreHero.StatColumn(stat)
		if !known {
			continue
		}

		conditions = append(conditions, fmt.Sprintf("%s >= $%d", column, argID))
		args = append(args, min)
		argID++
	}

	return conditions, args
}

// whereClause assembles conditions into a WHERE clause, or returns an empty
// string for a vacuous filter (matches every hero).
func whereClause(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conditions, " AND ")
}

// # Repository Implementation

func (repository *PostgresRepository) ListHeroes(context context.Context, f Filter, limit, offset int) ([]*Hero, int, error) {
	conditions, args := FilterConditions(f, 1)
	where := whereClause(conditions)

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s%s`, schema.CoreHero.Table, where)

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_heroes")
	}

	// Name is the canonical sort key; COLLATE "C" keeps the order byte-wise.
	// ID breaks ties between identically named heroes.
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s%s
		ORDER BY %s COLLATE "C" ASC, %s ASC
		LIMIT $%d OFFSET $%d
	`,
		strings.Join(schema.CoreHero.Columns(), ", "),
		schema.CoreHero.Table, where,
		schema.CoreHero.Name, schema.CoreHero.ID,
		len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_heroes")
	}
	defer rows.Close()

	var heroes []*Hero
	for rows.Next() {
		h := &Hero{}
		if err := scanHero(rows, h); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_hero")
		}
		heroes = append(heroes, h)
	}

	return heroes, total, nil
}

func (repository *PostgresRepository) GetHeroByID(context context.Context, id string) (*Hero, error) {
	return repository.getHeroBy(context, schema.CoreHero.ID, id)
}

func (repository *PostgresRepository) GetHeroBySlug(context context.Context, slug string) (*Hero, error) {
	return repository.getHeroBy(context, schema.CoreHero.Slug, slug)
}

func (repository *PostgresRepository) getHeroBy(context context.Context, column, value string) (*Hero, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`,
		strings.Join(schema.CoreHero.Columns(), ", "),
		schema.CoreHero.Table, column,
	)

	h := &Hero{}
	err := scanHero(repository.db.QueryRow(context, query, value), h)
	if err != nil {
		return nil, dberr.Wrap(err, "get_hero")
	}

	return h, nil
}

// scanHero populates h from a row selected with [schema.CoreHeroTable.Columns] order.
// pgx.Rows satisfies pgx.Row, so both query paths share it.
func scanHero(row pgx.Row, h *Hero) error {
	return row.Scan(
		&h.ID, &h.Name, &h.Slug, &h.FullName, &h.Publisher, &h.Alignment,
		&h.Appearance.Gender, &h.Appearance.Race, &h.ImageURL,
		&h.Powerstats.Intelligence, &h.Powerstats.Strength, &h.Powerstats.Speed,
		&h.Powerstats.Durability, &h.Powerstats.Power, &h.Powerstats.Combat,
		&h.CreatedAt, &h.UpdatedAt,
	)
}
