// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/noctoon/internal/platform/database/schema"
	"github.com/taibuivan/noctoon/internal/platform/dberr"
)

const resourceName = "Reading progress"

// PostgresRepository implements [Repository] on library.readingprogress.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository wraps an open pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var table = schema.LibraryReadingProgress

var returningColumns = fmt.Sprintf("%s, %s, %s, %s, %s, %s",
	table.ID, table.UserID, table.SeriesID, table.ChapterID, table.CurrentPage, table.LastRead)

func scanProgress(row pgx.Row) (*ReadingProgress, error) {
	p := &ReadingProgress{}
	if err := row.Scan(&p.ID, &p.UserID, &p.SeriesID, &p.ChapterID, &p.CurrentPage, &p.LastRead); err != nil {
		return nil, err
	}
	return p, nil
}

func (repository *PostgresRepository) ListByUser(context context.Context, userID string) ([]*ReadingProgress, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		returningColumns, table.Table, table.UserID, table.Seq)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	defer rows.Close()

	all := make([]*ReadingProgress, 0)
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourceName)
		}
		all = append(all, p)
	}
	return all, dberr.Wrap(rows.Err(), resourceName)
}

func (repository *PostgresRepository) Find(context context.Context, userID, seriesID string) (*ReadingProgress, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		returningColumns, table.Table, table.UserID, table.SeriesID)

	p, err := scanProgress(repository.db.QueryRow(context, query, userID, seriesID))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return p, nil
}

// Upsert relies on the UNIQUE (userid, seriesid) constraint; the conflicting
// row keeps its id.
func (repository *PostgresRepository) Upsert(context context.Context, p *ReadingProgress) (*ReadingProgress, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (%s, %s) DO UPDATE
		SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s
		RETURNING %s`,
		table.Table, returningColumns,
		table.UserID, table.SeriesID,
		table.ChapterID, table.ChapterID, table.CurrentPage, table.CurrentPage, table.LastRead, table.LastRead,
		returningColumns,
	)

	stored, err := scanProgress(repository.db.QueryRow(context, query,
		p.ID, p.UserID, p.SeriesID, p.ChapterID, p.CurrentPage, p.LastRead))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return stored, nil
}
