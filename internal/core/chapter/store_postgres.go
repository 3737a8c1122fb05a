// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

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

const resourceName = "Chapter"

// PostgresRepository implements [Repository] on core.chapter.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository wraps an open pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectColumns = strings.Join(schema.CoreChapter.Columns(), ", ")

func scanChapter(row pgx.Row) (*Chapter, error) {
	c := &Chapter{}
	if err := row.Scan(&c.ID, &c.SeriesID, &c.ChapterNumber, &c.Title, &c.Pages, &c.ReleaseDate); err != nil {
		return nil, err
	}
	if c.Pages == nil {
		c.Pages = []string{}
	}
	return c, nil
}

func (repository *PostgresRepository) ListBySeries(context context.Context, seriesID string) ([]*Chapter, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		selectColumns, schema.CoreChapter.Table, schema.CoreChapter.SeriesID, schema.CoreChapter.Seq)

	rows, err := repository.db.Query(context, query, seriesID)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	defer rows.Close()

	chapters := make([]*Chapter, 0)
	for rows.Next() {
		c, err := scanChapter(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourceName)
		}
		chapters = append(chapters, c)
	}
	return chapters, dberr.Wrap(rows.Err(), resourceName)
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Chapter, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.CoreChapter.Table, schema.CoreChapter.ID)

	c, err := scanChapter(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return c, nil
}

func (repository *PostgresRepository) Create(context context.Context, c *Chapter) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6)`,
		schema.CoreChapter.Table, selectColumns)

	_, err := repository.db.Exec(context, query, c.ID, c.SeriesID, c.ChapterNumber, c.Title, c.Pages, c.ReleaseDate)
	return dberr.Wrap(err, resourceName)
}

func (repository *PostgresRepository) Update(context context.Context, c *Chapter) error {
	t := schema.CoreChapter
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6 WHERE %s = $1`,
		t.Table, t.SeriesID, t.ChapterNumber, t.Title, t.Pages, t.ReleaseDate, t.ID)

	tag, err := repository.db.Exec(context, query, c.ID, c.SeriesID, c.ChapterNumber, c.Title, c.Pages, c.ReleaseDate)
	if err != nil {
		return dberr.Wrap(err, resourceName)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreChapter.Table, schema.CoreChapter.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceName)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}
