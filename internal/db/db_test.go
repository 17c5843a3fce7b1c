package db_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/chairside/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_FileUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "shop.db")
	database, err := db.OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	var mode string
	require.NoError(t, database.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", strings.ToLower(mode))
}

func TestOpenDB_EveryConnectionEnforcesForeignKeys(t *testing.T) {
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "shop.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	ctx := context.Background()

	// Hold one connection so the next query is forced onto a second one.
	held, err := database.Conn(ctx)
	require.NoError(t, err)
	defer held.Close()

	var onHeld, onPool int
	require.NoError(t, held.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&onHeld))
	require.NoError(t, database.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&onPool))
	assert.Equal(t, 1, onHeld)
	assert.Equal(t, 1, onPool)
}

func TestOpenDB_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.db")
	ctx := context.Background()

	first, err := db.OpenDB(path)
	require.NoError(t, err)
	_, err = first.ExecContext(ctx, `INSERT INTO barbers (id, name, created_at, updated_at)
		VALUES ('b1', 'Ana', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := db.OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { second.Close() })

	var name string
	require.NoError(t, second.QueryRowContext(ctx, `SELECT name FROM barbers WHERE id = 'b1'`).Scan(&name))
	assert.Equal(t, "Ana", name)
}
