// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package seed loads the demo catalog and the admin account.

Seeding is idempotent: records whose ID (or, for accounts, username) already
exists are left untouched, so it is safe to run on every start.
*/
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/noctoon/internal/core/chapter"
	"github.com/taibuivan/noctoon/internal/core/series"
	"github.com/taibuivan/noctoon/internal/platform/apperr"
	"github.com/taibuivan/noctoon/internal/platform/cache"
	"github.com/taibuivan/noctoon/internal/platform/constants"
	"github.com/taibuivan/noctoon/internal/users/auth"
	"github.com/taibuivan/noctoon/pkg/pointer"
)

// Target is where the demo data goes.
type Target struct {
	Series   series.Repository
	Chapters chapter.Repository
	Accounts *auth.Service

	// Cache is cleared of every seeded series. Nil skips invalidation.
	Cache cache.Cache
}

// Report counts the records created by one run.
type Report struct {
	Series   int
	Chapters int
	Admin    string
}

// Demo writes the demo data into target.
func Demo(context context.Context, target Target, logger *slog.Logger) (Report, error) {
	var report Report

	for _, s := range Series() {
		created, err := insertSeries(context, target.Series, s)
		if err != nil {
			return report, fmt.Errorf("seed series %s: %w", s.ID, err)
		}
		if created {
			report.Series++
			if target.Cache != nil {
				target.Cache.Delete(context, constants.RedisPrefixSeries+s.ID)
			}
		}
	}
	if report.Series > 0 && target.Cache != nil {
		target.Cache.Delete(context, constants.RedisKeySeriesAll)
	}

	for _, c := range Chapters() {
		created, err := insertChapter(context, target.Chapters, c)
		if err != nil {
			return report, fmt.Errorf("seed chapter %s: %w", c.ID, err)
		}
		if created {
			report.Chapters++
		}
	}

	admin, err := target.Accounts.Provision(context, auth.ProvisionInput{
		ID:       AdminID,
		Username: AdminUsername,
		Password: AdminPassword,
		Email:    pointer.To(AdminEmail),
		IsAdmin:  true,
	})
	if err != nil {
		return report, fmt.Errorf("seed admin: %w", err)
	}
	report.Admin = admin.ID

	logger.InfoContext(context, "demo_data_seeded",
		slog.Int("series_created", report.Series),
		slog.Int("chapters_created", report.Chapters),
		slog.String("admin_id", report.Admin),
	)
	return report, nil
}

func insertSeries(context context.Context, repo series.Repository, s *series.Series) (bool, error) {
	_, err := repo.FindByID(context, s.ID)
	if err == nil {
		return false, nil
	}
	if !apperr.IsNotFound(err) {
		return false, err
	}
	return true, repo.Create(context, s)
}

func insertChapter(context context.Context, repo chapter.Repository, c *chapter.Chapter) (bool, error) {
	_, err := repo.FindByID(context, c.ID)
	if err == nil {
		return false, nil
	}
	if !apperr.IsNotFound(err) {
		return false, err
	}
	return true, repo.Create(context, c)
}
