package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStore_WriteRead(t *testing.T) {
	s := NewFSStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, KeySurveyDraft, []byte("draft")))

	data, err := s.Read(ctx, KeySurveyDraft)
	require.NoError(t, err)
	assert.Equal(t, []byte("draft"), data)
}

func TestFSStore_ReadMissing(t *testing.T) {
	s := NewFSStore(t.TempDir())

	_, err := s.Read(context.Background(), KeyReport)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFSStore_Overwrite(t *testing.T) {
	s := NewFSStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, KeyQSF, []byte("v1")))
	require.NoError(t, s.Write(ctx, KeyQSF, []byte("v2")))

	data, err := s.Read(ctx, KeyQSF)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)
}

func TestMemStore_WriteRead(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "k", []byte("v")))

	data, err := s.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), data)

	_, err = s.Read(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStore_CopiesData(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	src := []byte("abc")
	require.NoError(t, s.Write(ctx, "k", src))
	src[0] = 'x'

	data, err := s.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), data)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "remote_work", Slug(" remote work "))
	assert.Equal(t, "md_files/simulated_characters/remote_work_characters.md", CharactersKey("remote work"))
	assert.Equal(t, "md_files/simulated_responses/remote_work_survey_response.md", SingleResponseKey("remote work"))
	assert.Equal(t, "md_files/simulated_responses/remote_work_survey_responses_batch.md", BatchResponsesKey("remote work"))
}
