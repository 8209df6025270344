package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/evalonso/mealrota/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

// profileName reads a profile's name back, outside the writing transaction.
func profileName(uow *db.SQLiteUnitOfWork, id string) (string, bool) {
	var name string
	var found bool
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		row := tx.QueryRowContext(ctx, `SELECT name FROM profiles WHERE id = ?`, id)
		if err := row.Scan(&name); err != nil {
			return nil // not found
		}
		found = true
		return nil
	})
	return name, found
}

func insertProfile(ctx context.Context, tx db.DBTX, id, name string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO profiles (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		id, name, "2026-01-01T00:00:00Z", "2026-01-01T00:00:00Z")
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertProfile(ctx, tx, "p1", "Family")
	})
	require.NoError(t, err)

	name, found := profileName(uow, "p1")
	assert.True(t, found, "row should exist after commit")
	assert.Equal(t, "Family", name)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertProfile(ctx, tx, "p2", "Household"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	_, found := profileName(uow, "p2")
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertProfile(ctx, tx, "p3", "Roommates")
			panic("boom")
		})
	})

	_, found := profileName(uow, "p3")
	assert.False(t, found, "row should not exist after panic rollback")
}
