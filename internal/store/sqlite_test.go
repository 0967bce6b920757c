package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_WriteRead(t *testing.T) {
	s, err := OpenSQLiteStore(":memory:")
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Write(ctx, KeySurveyDraft, []byte("draft")))

	data, err := s.Read(ctx, KeySurveyDraft)
	require.NoError(t, err)
	assert.Equal(t, []byte("draft"), data)
}

func TestSQLiteStore_Upsert(t *testing.T) {
	s, err := OpenSQLiteStore(":memory:")
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Write(ctx, "k", []byte("v1")))
	require.NoError(t, s.Write(ctx, "k", []byte("v2")))

	data, err := s.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)
}

func TestSQLiteStore_ReadMissing(t *testing.T) {
	s, err := OpenSQLiteStore(":memory:")
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Read(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "blobs.db")

	s, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Write(context.Background(), "k", []byte("v")))
}
