package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kudi/internal/core"
)

func record(t *testing.T, date, desc string, cents int64, category string, kind core.Kind) core.Record {
	t.Helper()
	d, err := core.ParseDate(date)
	require.NoError(t, err)
	r, err := core.NewRecord(d, desc, core.Money{Cents: cents}, category, kind)
	require.NoError(t, err)
	return r
}

func TestCSVStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	s := NewCSVStore(path)

	want := []core.Record{
		record(t, "2025-10-23", "Salary", 5000000, "Work", core.Income),
		record(t, "2025-10-26", "Internet, fibre", 1000000, "Utilities", core.Expense),
	}
	require.NoError(t, s.Save(context.Background(), want))

	got, skipped, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, want, got)
}

func TestCSVStoreWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	s := NewCSVStore(path)
	require.NoError(t, s.Save(context.Background(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "date,description,amount,category,type", strings.TrimSpace(string(data)))
}

func TestCSVStoreLoadMissingFile(t *testing.T) {
	s := NewCSVStore(filepath.Join(t.TempDir(), "nope.csv"))
	records, skipped, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSavedData)
	assert.Empty(t, records)
	assert.Empty(t, skipped)
}

func TestCSVStoreLoadSkipsMalformedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	content := strings.Join([]string{
		"date,description,amount,category,type",
		"2025-10-01,Salary,1000,Work,Income",
		"2025-10-02,Broken,notanumber,Food,Expense",
		"2025-10-03,Bread,5,Food,Expense",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s := NewCSVStore(path)
	records, skipped, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Salary", records[0].Description)
	assert.Equal(t, "Bread", records[1].Description)
	require.Len(t, skipped, 1)
	assert.ErrorIs(t, skipped[0].Err, core.ErrInvalidAmount)
}

func TestCSVStoreSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "transactions.csv")
	s := NewCSVStore(path)
	require.NoError(t, s.Save(context.Background(), nil))
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	_, _, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSavedData)

	want := []core.Record{record(t, "2025-10-01", "Salary", 1000, "Work", core.Income)}
	require.NoError(t, s.Save(context.Background(), want))

	got, skipped, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, want, got)

	// The store hands out copies, not its backing slice.
	got[0].Description = "mutated"
	again, _, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Salary", again[0].Description)
}
