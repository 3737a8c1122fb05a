// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/noctoon/internal/platform/migration"
)

func TestToPgx5DSN(t *testing.T) {
	tests := map[string]string{
		"postgres://u:p@localhost:5432/noctoon":   "pgx5://u:p@localhost:5432/noctoon",
		"postgresql://u:p@localhost:5432/noctoon": "pgx5://u:p@localhost:5432/noctoon",
		"pgx5://u:p@localhost:5432/noctoon":       "pgx5://u:p@localhost:5432/noctoon",
		"host=localhost dbname=noctoon":           "host=localhost dbname=noctoon",
	}
	for input, want := range tests {
		assert.Equal(t, want, migration.ToPgx5DSN(input), input)
	}
}
