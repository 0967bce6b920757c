package service

import (
	"context"
	"fmt"

	"github.com/autoscience/autoscience/internal/domain"
	"github.com/autoscience/autoscience/internal/llm"
	"github.com/autoscience/autoscience/internal/parse"
	"github.com/autoscience/autoscience/internal/qsf"
	"github.com/autoscience/autoscience/internal/store"
)

type surveyService struct {
	client llm.Client
	blobs  store.BlobStore
}

// NewSurveyService creates the survey ideation/finalization service.
func NewSurveyService(client llm.Client, blobs store.BlobStore) SurveyService {
	return &surveyService{client: client, blobs: blobs}
}

func (s *surveyService) Clarify(ctx context.Context, topic string) (string, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:   llm.TaskClarify,
		Prompt: clarifyPrompt(topic),
	})
	if err != nil {
		return "", fmt.Errorf("requesting clarifying questions: %w", err)
	}
	return resp.Text, nil
}

func (s *surveyService) Ideate(ctx context.Context, topic, info string, format domain.FormatKind) (string, error) {
	prompt := ideateMCPrompt(topic, info)
	if format == domain.FormatLikert {
		prompt = ideateLikertPrompt(topic, info)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:   llm.TaskIdeate,
		Prompt: prompt,
	})
	if err != nil {
		return "", fmt.Errorf("ideating survey: %w", err)
	}

	if format == domain.FormatLikert {
		return likertScaleBanner + resp.Text, nil
	}
	return resp.Text, nil
}

func (s *surveyService) Revise(ctx context.Context, survey, instruction string) (string, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:   llm.TaskRevise,
		Prompt: revisePrompt(survey, instruction),
	})
	if err != nil {
		return "", fmt.Errorf("revising survey: %w", err)
	}
	return resp.Text, nil
}

// Finalize persists the approved draft and builds the QSF document.
// Both formats run a normalization completion call first: the draft is
// free text and the builders want the strict delimited grammars.
func (s *surveyService) Finalize(ctx context.Context, survey, topic string, format domain.FormatKind) error {
	if err := s.blobs.Write(ctx, store.KeySurveyDraft, []byte(survey)); err != nil {
		return err
	}

	var doc *qsf.Document
	switch format {
	case domain.FormatLikert:
		resp, err := s.client.Generate(ctx, llm.GenerateRequest{
			Task:   llm.TaskNormalize,
			Prompt: normalizeLikertPrompt(survey),
		})
		if err != nil {
			return fmt.Errorf("normalizing likert statements: %w", err)
		}
		statements, err := parse.LikertStatements(resp.Text)
		if err != nil {
			return err
		}
		doc = qsf.BuildLikert(topic, statements)

	default:
		resp, err := s.client.Generate(ctx, llm.GenerateRequest{
			Task:   llm.TaskNormalize,
			Prompt: normalizeMCPrompt(survey),
		})
		if err != nil {
			return fmt.Errorf("normalizing survey: %w", err)
		}
		questions, err := parse.MultipleChoice(parse.StripPreamble(resp.Text))
		if err != nil {
			return err
		}
		doc = qsf.BuildMultipleChoice(questions)
	}

	data, err := qsf.Marshal(doc)
	if err != nil {
		return err
	}
	return s.blobs.Write(ctx, store.KeyQSF, data)
}
