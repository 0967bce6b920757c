package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoscience/autoscience/internal/llm"
	"github.com/autoscience/autoscience/internal/store"
)

func TestCharacters_PersistsProfileList(t *testing.T) {
	client := &fakeClient{responses: map[llm.TaskType]string{
		llm.TaskCharacters: "1. Maria, 34, Spain...\n2. Ken, 51, Japan...",
	}}
	blobs := store.NewMemStore()
	svc := NewSimulationService(client, blobs)
	ctx := context.Background()

	out, err := svc.Characters(ctx, "the survey", "remote work", 2)

	require.NoError(t, err)
	assert.Contains(t, out, "Maria")

	saved, err := blobs.Read(ctx, store.CharactersKey("remote work"))
	require.NoError(t, err)
	assert.Equal(t, []byte(out), saved)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "2 characters")
}

func TestReviseCharacters_ReadsAndOverwrites(t *testing.T) {
	client := &fakeClient{responses: map[llm.TaskType]string{
		llm.TaskRevise: "1. Maria, 40, Spain...",
	}}
	blobs := store.NewMemStore()
	ctx := context.Background()
	require.NoError(t, blobs.Write(ctx, store.CharactersKey("remote work"), []byte("1. Maria, 34, Spain...")))
	svc := NewSimulationService(client, blobs)

	out, err := svc.ReviseCharacters(ctx, "remote work", "make Maria older")

	require.NoError(t, err)
	assert.Contains(t, out, "40")

	saved, err := blobs.Read(ctx, store.CharactersKey("remote work"))
	require.NoError(t, err)
	assert.Equal(t, []byte(out), saved)

	// The prompt includes both the current list and the feedback.
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "1. Maria, 34, Spain...")
	assert.Contains(t, client.prompts[0], "make Maria older")
}

func TestReviseCharacters_NoExistingList(t *testing.T) {
	svc := NewSimulationService(&fakeClient{}, store.NewMemStore())

	_, err := svc.ReviseCharacters(context.Background(), "remote work", "feedback")

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSimulateOne_PersistsResponse(t *testing.T) {
	client := &fakeClient{responses: map[llm.TaskType]string{
		llm.TaskSimulate: "I'm a 28-year-old nurse...\n1. b\n2. a",
	}}
	blobs := store.NewMemStore()
	svc := NewSimulationService(client, blobs)
	ctx := context.Background()

	out, err := svc.SimulateOne(ctx, "the survey", "remote work")

	require.NoError(t, err)
	saved, err := blobs.Read(ctx, store.SingleResponseKey("remote work"))
	require.NoError(t, err)
	assert.Equal(t, []byte(out), saved)
}

func TestSimulateBatch_RequiresCharacterList(t *testing.T) {
	svc := NewSimulationService(&fakeClient{}, store.NewMemStore())

	_, err := svc.SimulateBatch(context.Background(), "the survey", "remote work")

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSimulateBatch_PersistsBatch(t *testing.T) {
	client := &fakeClient{responses: map[llm.TaskType]string{
		llm.TaskSimulate: "## Maria\n1. b\n## Ken\n1. a",
	}}
	blobs := store.NewMemStore()
	ctx := context.Background()
	require.NoError(t, blobs.Write(ctx, store.CharactersKey("remote work"), []byte("1. Maria\n2. Ken")))
	svc := NewSimulationService(client, blobs)

	out, err := svc.SimulateBatch(ctx, "the survey", "remote work")

	require.NoError(t, err)
	saved, err := blobs.Read(ctx, store.BatchResponsesKey("remote work"))
	require.NoError(t, err)
	assert.Equal(t, []byte(out), saved)
	assert.Contains(t, client.prompts[0], "1. Maria\n2. Ken")
}

func TestExtract_WritesSummaryAndRows(t *testing.T) {
	client := &fakeClient{responses: map[llm.TaskType]string{
		llm.TaskExtract: "extracted",
	}}
	blobs := store.NewMemStore()
	ctx := context.Background()
	require.NoError(t, blobs.Write(ctx, store.BatchResponsesKey("remote work"), []byte("batch md")))
	svc := NewSimulationService(client, blobs)

	err := svc.Extract(ctx, "the survey", "remote work")
	require.NoError(t, err)

	summary, err := blobs.Read(ctx, store.KeySurveySummary)
	require.NoError(t, err)
	assert.Equal(t, []byte("extracted"), summary)

	rows, err := blobs.Read(ctx, store.KeyResponseRows)
	require.NoError(t, err)
	assert.Equal(t, []byte("extracted"), rows)

	// Two structuring calls: survey first, then responses.
	require.Len(t, client.prompts, 2)
	assert.Contains(t, client.prompts[0], "the survey")
	assert.Contains(t, client.prompts[1], "batch md")
}

func TestExtract_MissingBatch(t *testing.T) {
	client := &fakeClient{responses: map[llm.TaskType]string{llm.TaskExtract: "x"}}
	svc := NewSimulationService(client, store.NewMemStore())

	err := svc.Extract(context.Background(), "the survey", "remote work")

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestExtract_CompletionFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("backend down")}
	svc := NewSimulationService(client, store.NewMemStore())

	err := svc.Extract(context.Background(), "the survey", "remote work")

	assert.Error(t, err)
}
