package lov

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/useradmin/internal/server/migrations"
	"github.com/dmitrijs2005/useradmin/internal/server/models"
)

func TestPostgresRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*code,\s*name\s+FROM\s+lov\s+WHERE\s+kind\s*=\s*\$1\s+ORDER\s+BY\s+sort_order,\s*code\s*$`
	mock.ExpectQuery(q).
		WithArgs("rank").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "name"}).
			AddRow("r1", "PVT", "Private").
			AddRow("r2", "SGT", "Sergeant"))

	items, err := NewPostgresRepository(db).List(context.Background(), models.LovRank)
	require.NoError(t, err)
	assert.Equal(t, []models.Lov{
		{ID: "r1", Code: "PVT", Name: "Private"},
		{ID: "r2", Code: "SGT", Name: "Sergeant"},
	}, items)
}

func TestPostgresRepository_ListError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("db down"))

	_, err = NewPostgresRepository(db).List(context.Background(), models.LovRole)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: db down")
}

func TestMemoryRepository_DefaultsToSeed(t *testing.T) {
	r := NewMemoryRepository(nil)

	ranks, err := r.List(context.Background(), models.LovRank)
	require.NoError(t, err)
	assert.Equal(t, Seed[models.LovRank], ranks)

	none, err := r.List(context.Background(), models.LovKind("other"))
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMemoryRepository_ReturnsCopy(t *testing.T) {
	r := NewMemoryRepository(nil)
	roles, _ := r.List(context.Background(), models.LovRole)
	roles[0].Name = "mutated"

	again, _ := r.List(context.Background(), models.LovRole)
	assert.NotEqual(t, "mutated", again[0].Name)
}

// The in-memory seed must match what the migration inserts.
func TestSeedMatchesMigration(t *testing.T) {
	raw, err := fs.ReadFile(migrations.Migrations, "00001_lov.sql")
	require.NoError(t, err)
	sql := string(raw)

	for kind, items := range Seed {
		for _, l := range items {
			row := "('" + l.ID + "', '" + string(kind) + "', '" + l.Code + "', '" + l.Name + "'"
			assert.True(t, strings.Contains(sql, row), "missing %s", row)
		}
	}
}
