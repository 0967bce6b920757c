// Package service orchestrates the survey workflow: ideation and
// revision through the completion service, QSF finalization, respondent
// simulation and report building. The conversation engine calls these
// through interfaces so tests can substitute fakes.
package service

import (
	"context"

	"github.com/autoscience/autoscience/internal/domain"
)

type SurveyService interface {
	// Clarify asks the completion service for clarifying questions
	// about a survey topic.
	Clarify(ctx context.Context, topic string) (string, error)

	// Ideate drafts a survey about topic using the user's clarifying
	// answer, in the requested format.
	Ideate(ctx context.Context, topic, info string, format domain.FormatKind) (string, error)

	// Revise edits an existing draft per the user's instruction.
	Revise(ctx context.Context, survey, instruction string) (string, error)

	// Finalize persists the approved draft and builds + persists the
	// QSF interchange document for it.
	Finalize(ctx context.Context, survey, topic string, format domain.FormatKind) error
}

type SimulationService interface {
	// Characters synthesizes n respondent profiles for the survey and
	// persists them.
	Characters(ctx context.Context, survey, topic string, n int) (string, error)

	// ReviseCharacters edits the persisted character list per feedback.
	ReviseCharacters(ctx context.Context, topic, feedback string) (string, error)

	// SimulateOne generates a single ad-hoc simulated response.
	SimulateOne(ctx context.Context, survey, topic string) (string, error)

	// SimulateBatch generates responses for every persisted character.
	SimulateBatch(ctx context.Context, survey, topic string) (string, error)

	// Extract converts the survey and the simulated batch into the
	// delimited summary and response-row blobs the report consumes.
	Extract(ctx context.Context, survey, topic string) error
}

type ReportService interface {
	// Build parses the extracted summary and response rows, tallies
	// them, renders the PDF report and persists it. Returns the PDF.
	Build(ctx context.Context) ([]byte, error)
}
