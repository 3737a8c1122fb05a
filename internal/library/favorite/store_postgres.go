// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package favorite

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/noctoon/internal/platform/apperr"
	"github.com/taibuivan/noctoon/internal/platform/database/schema"
	"github.com/taibuivan/noctoon/internal/platform/dberr"
)

const resourceName = "Favorite"

// PostgresRepository implements [Repository] on library.favorite.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository wraps an open pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListByUser(context context.Context, userID string) ([]*Favorite, error) {
	t := schema.LibraryFavorite
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		t.ID, t.UserID, t.SeriesID, t.Table, t.UserID, t.Seq)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	defer rows.Close()

	favorites := make([]*Favorite, 0)
	for rows.Next() {
		f := &Favorite{}
		if err := rows.Scan(&f.ID, &f.UserID, &f.SeriesID); err != nil {
			return nil, dberr.Wrap(err, resourceName)
		}
		favorites = append(favorites, f)
	}
	return favorites, dberr.Wrap(rows.Err(), resourceName)
}

func (repository *PostgresRepository) Find(context context.Context, userID, seriesID string) (*Favorite, error) {
	t := schema.LibraryFavorite
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1 AND %s = $2`,
		t.ID, t.UserID, t.SeriesID, t.Table, t.UserID, t.SeriesID)

	f := &Favorite{}
	if err := repository.db.QueryRow(context, query, userID, seriesID).Scan(&f.ID, &f.UserID, &f.SeriesID); err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return f, nil
}

func (repository *PostgresRepository) Create(context context.Context, f *Favorite) error {
	t := schema.LibraryFavorite
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`, t.Table, t.ID, t.UserID, t.SeriesID)

	_, err := repository.db.Exec(context, query, f.ID, f.UserID, f.SeriesID)
	return dberr.Wrap(err, resourceName)
}

func (repository *PostgresRepository) Delete(context context.Context, userID, seriesID string) error {
	t := schema.LibraryFavorite
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`, t.Table, t.UserID, t.SeriesID)

	tag, err := repository.db.Exec(context, query, userID, seriesID)
	if err != nil {
		return dberr.Wrap(err, resourceName)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}
