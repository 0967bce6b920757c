package service

import (
	"context"
	"fmt"

	"github.com/autoscience/autoscience/internal/llm"
	"github.com/autoscience/autoscience/internal/store"
)

type simulationService struct {
	client llm.Client
	blobs  store.BlobStore
}

// NewSimulationService creates the respondent-simulation service.
func NewSimulationService(client llm.Client, blobs store.BlobStore) SimulationService {
	return &simulationService{client: client, blobs: blobs}
}

func (s *simulationService) Characters(ctx context.Context, survey, topic string, n int) (string, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:   llm.TaskCharacters,
		Prompt: charactersPrompt(survey, topic, n),
	})
	if err != nil {
		return "", fmt.Errorf("creating character list: %w", err)
	}
	if err := s.blobs.Write(ctx, store.CharactersKey(topic), []byte(resp.Text)); err != nil {
		return "", err
	}
	return resp.Text, nil
}

func (s *simulationService) ReviseCharacters(ctx context.Context, topic, feedback string) (string, error) {
	current, err := s.blobs.Read(ctx, store.CharactersKey(topic))
	if err != nil {
		return "", err
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:   llm.TaskRevise,
		Prompt: reviseCharactersPrompt(string(current), topic, feedback),
	})
	if err != nil {
		return "", fmt.Errorf("revising character list: %w", err)
	}
	if err := s.blobs.Write(ctx, store.CharactersKey(topic), []byte(resp.Text)); err != nil {
		return "", err
	}
	return resp.Text, nil
}

func (s *simulationService) SimulateOne(ctx context.Context, survey, topic string) (string, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:   llm.TaskSimulate,
		Prompt: simulateOnePrompt(survey, topic),
	})
	if err != nil {
		return "", fmt.Errorf("simulating response: %w", err)
	}
	if err := s.blobs.Write(ctx, store.SingleResponseKey(topic), []byte(resp.Text)); err != nil {
		return "", err
	}
	return resp.Text, nil
}

func (s *simulationService) SimulateBatch(ctx context.Context, survey, topic string) (string, error) {
	characters, err := s.blobs.Read(ctx, store.CharactersKey(topic))
	if err != nil {
		return "", err
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:   llm.TaskSimulate,
		Prompt: simulateBatchPrompt(survey, topic, string(characters)),
	})
	if err != nil {
		return "", fmt.Errorf("simulating batch responses: %w", err)
	}
	if err := s.blobs.Write(ctx, store.BatchResponsesKey(topic), []byte(resp.Text)); err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Extract runs the two structuring calls that feed the report: one for
// the survey summary grammar, one for the response-row grammar.
func (s *simulationService) Extract(ctx context.Context, survey, topic string) error {
	summary, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:   llm.TaskExtract,
		Prompt: extractSurveyPrompt(survey),
	})
	if err != nil {
		return fmt.Errorf("extracting survey summary: %w", err)
	}
	if err := s.blobs.Write(ctx, store.KeySurveySummary, []byte(summary.Text)); err != nil {
		return err
	}

	batch, err := s.blobs.Read(ctx, store.BatchResponsesKey(topic))
	if err != nil {
		return err
	}
	rows, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:   llm.TaskExtract,
		Prompt: extractResponsesPrompt(string(batch)),
	})
	if err != nil {
		return fmt.Errorf("extracting response rows: %w", err)
	}
	return s.blobs.Write(ctx, store.KeyResponseRows, []byte(rows.Text))
}
