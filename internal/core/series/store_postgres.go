// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/noctoon/internal/platform/apperr"
	"github.com/taibuivan/noctoon/internal/platform/database/schema"
	"github.com/taibuivan/noctoon/internal/platform/dberr"
)

const resourceName = "Series"

// PostgresRepository implements [Repository] on core.series.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository wraps an open pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectColumns = strings.Join(schema.CoreSeries.Columns(), ", ")

func scanSeries(row pgx.Row) (*Series, error) {
	s := &Series{}
	err := row.Scan(
		&s.ID, &s.Title, &s.Description, &s.CoverImage, &s.Author, &s.Artist,
		&s.Genres, &s.Status, &s.Rating, &s.Views, &s.IsFeatured, &s.IsTrending,
	)
	if err != nil {
		return nil, err
	}
	if s.Genres == nil {
		s.Genres = []string{}
	}
	return s, nil
}

func (repository *PostgresRepository) List(context context.Context) ([]*Series, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		selectColumns, schema.CoreSeries.Table, schema.CoreSeries.Seq)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	defer rows.Close()

	all := make([]*Series, 0)
	for rows.Next() {
		s, err := scanSeries(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourceName)
		}
		all = append(all, s)
	}
	return all, dberr.Wrap(rows.Err(), resourceName)
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Series, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.CoreSeries.Table, schema.CoreSeries.ID)

	s, err := scanSeries(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return s, nil
}

func (repository *PostgresRepository) Create(context context.Context, s *Series) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		schema.CoreSeries.Table, selectColumns)

	_, err := repository.db.Exec(context, query,
		s.ID, s.Title, s.Description, s.CoverImage, s.Author, s.Artist,
		s.Genres, s.Status, s.Rating, s.Views, s.IsFeatured, s.IsTrending,
	)
	return dberr.Wrap(err, resourceName)
}

func (repository *PostgresRepository) Update(context context.Context, s *Series) error {
	t := schema.CoreSeries
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6,
		    %s = $7, %s = $8, %s = $9, %s = $10, %s = $11, %s = $12
		WHERE %s = $1`,
		t.Table,
		t.Title, t.Description, t.CoverImage, t.Author, t.Artist,
		t.Genres, t.Status, t.Rating, t.Views, t.IsFeatured, t.IsTrending,
		t.ID,
	)

	tag, err := repository.db.Exec(context, query,
		s.ID, s.Title, s.Description, s.CoverImage, s.Author, s.Artist,
		s.Genres, s.Status, s.Rating, s.Views, s.IsFeatured, s.IsTrending,
	)
	if err != nil {
		return dberr.Wrap(err, resourceName)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreSeries.Table, schema.CoreSeries.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceName)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}
