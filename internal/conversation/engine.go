package conversation

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/autoscience/autoscience/internal/domain"
	"github.com/autoscience/autoscience/internal/parse"
	"github.com/autoscience/autoscience/internal/service"
	"github.com/autoscience/autoscience/internal/store"
)

//go:embed help.md
var helpDoc []byte

// Publisher is the import/publish adapter as the engine sees it.
type Publisher interface {
	Import(ctx context.Context, qsf []byte, name string) (string, error)
	AdminURL(surveyID string) string
	PreviewURL(surveyID string) string
}

// Engine applies classified actions: it invokes the services, mutates
// the session and produces the outbound replies. Messages are handled
// one at a time; no error is ever fatal, failures become diagnostic
// replies and the session is always left in a well-defined mode.
type Engine struct {
	surveys   service.SurveyService
	sims      service.SimulationService
	reports   service.ReportService
	publisher Publisher
	blobs     store.BlobStore
}

// NewEngine wires the conversation engine.
func NewEngine(surveys service.SurveyService, sims service.SimulationService, reports service.ReportService, publisher Publisher, blobs store.BlobStore) *Engine {
	return &Engine{surveys: surveys, sims: sims, reports: reports, publisher: publisher, blobs: blobs}
}

// Handle classifies and applies one inbound message. A nil return means
// the message was not addressed to the bot.
func (e *Engine) Handle(ctx context.Context, sess *domain.Session, message string) []Reply {
	action, ok := Classify(message, sess)
	if !ok {
		return nil
	}

	switch action {
	case ActionSurveyOK:
		return e.surveyOK(ctx, sess)
	case ActionSurveyRevise:
		return e.surveyRevise(ctx, sess, message)
	case ActionClarifyMC, ActionClarifyLik:
		return e.clarified(ctx, sess, action, message)
	case ActionSimOK:
		return e.simOK(ctx, sess)
	case ActionSimRevise:
		return e.simRevise(ctx, sess, message)
	case ActionMakeSurvey:
		return e.makeSurvey(ctx, sess, message)
	case ActionSimulate:
		return e.simulate(ctx, sess, message)
	case ActionGetQSF:
		return e.sendBlob(ctx, store.KeyQSF, "generated_survey.qsf",
			"Here's the QSF file of the most recently-generated survey:", replyQSFNotFound)
	case ActionGetMD:
		return e.sendBlob(ctx, store.KeySurveyDraft, "generated_survey.md",
			"Here's the MD file of the most recently-generated survey:", replyMDNotFound)
	case ActionGetReport:
		return e.sendBlob(ctx, store.KeyReport, "report.pdf",
			"Here's the report of the most recently-simulated survey:", replyReportNotFound)
	case ActionGetTopic:
		return []Reply{text(fmt.Sprintf("The topic of the most-recent survey is **%s**.", sess.Topic))}
	case ActionUploadQSF:
		return e.upload(ctx, sess)
	case ActionHello:
		return []Reply{text(replyHello)}
	case ActionThanks:
		return []Reply{text(replyThanks)}
	case ActionHelp:
		return []Reply{text(replyHelp), file("", "help.md", helpDoc)}
	default:
		return []Reply{text(replyUnknown)}
	}
}

func (e *Engine) makeSurvey(ctx context.Context, sess *domain.Session, message string) []Reply {
	sess.Topic = extractTopic(message)

	replies := []Reply{text(fmt.Sprintf(
		"Hello, I'm AutoScience. Let me help you create a survey about %s. Please give me a moment to think.",
		sess.Topic))}

	questions, err := e.surveys.Clarify(ctx, sess.Topic)
	if err != nil {
		return append(replies, errorReply(err))
	}

	sess.Mode = domain.ModeClarifying
	return append(replies, text(questions+formatQuestion))
}

func (e *Engine) clarified(ctx context.Context, sess *domain.Session, action Action, message string) []Reply {
	format := domain.FormatMultipleChoice
	if action == ActionClarifyLik {
		format = domain.FormatLikert
	}

	survey, err := e.surveys.Ideate(ctx, sess.Topic, message, format)
	if err != nil {
		return []Reply{errorReply(err)}
	}

	sess.Format = format
	sess.CurrentSurvey = survey
	sess.Mode = domain.ModeAwaitingSurveyApproval

	return []Reply{
		file(fmt.Sprintf("Here's a preview of the survey about %s.", sess.Topic),
			draftFilename(sess.Topic), []byte(survey)),
		text(replyAskTweaks),
	}
}

func (e *Engine) surveyOK(ctx context.Context, sess *domain.Session) []Reply {
	sess.Mode = domain.ModeIdle

	replies := []Reply{
		file(fmt.Sprintf("Here's the final survey about %s.", sess.Topic),
			"generated_survey.md", []byte(sess.CurrentSurvey)),
		text(replyFinalMenu),
	}

	if err := e.surveys.Finalize(ctx, sess.CurrentSurvey, sess.Topic, sess.Format); err != nil {
		return append(replies, errorReply(err))
	}
	return replies
}

func (e *Engine) surveyRevise(ctx context.Context, sess *domain.Session, message string) []Reply {
	revised, err := e.surveys.Revise(ctx, sess.CurrentSurvey, message)
	if err != nil {
		return []Reply{errorReply(err)}
	}

	sess.CurrentSurvey = revised
	return []Reply{
		file("Here's the revised survey.", draftFilename(sess.Topic), []byte(revised)),
		text(replyAskMoreChanges),
	}
}

func (e *Engine) simulate(ctx context.Context, sess *domain.Session, message string) []Reply {
	replies := []Reply{text(replySimulating)}

	if n := extractSimulateCount(message); n > 1 {
		characters, err := e.sims.Characters(ctx, sess.CurrentSurvey, sess.Topic, n)
		if err != nil {
			return append(replies, errorReply(err))
		}
		sess.Mode = domain.ModeAwaitingSimApproval
		return append(replies,
			text(fmt.Sprintf("Compiling characters to simulate %d survey responses.", n)),
			file("", charactersFilename(sess.Topic), []byte(characters)),
			text(replyAskCharacters),
		)
	}

	replies = append(replies, text(replySimulatingOne))
	response, err := e.sims.SimulateOne(ctx, sess.CurrentSurvey, sess.Topic)
	if err != nil {
		return append(replies, errorReply(err))
	}
	return append(replies, file("", responseFilename(sess.Topic), []byte(response)))
}

func (e *Engine) simOK(ctx context.Context, sess *domain.Session) []Reply {
	sess.Mode = domain.ModeIdle
	replies := []Reply{text(replySimOK)}

	batch, err := e.sims.SimulateBatch(ctx, sess.CurrentSurvey, sess.Topic)
	if err != nil {
		return append(replies, errorReply(err))
	}
	replies = append(replies, file("", batchFilename(sess.Topic), []byte(batch)))

	if err := e.sims.Extract(ctx, sess.CurrentSurvey, sess.Topic); err != nil {
		return append(replies, errorReply(err))
	}

	pdf, err := e.reports.Build(ctx)
	if err != nil {
		return append(replies, errorReply(err))
	}
	return append(replies, file("Here's the final report:", "report.pdf", pdf))
}

func (e *Engine) simRevise(ctx context.Context, sess *domain.Session, message string) []Reply {
	characters, err := e.sims.ReviseCharacters(ctx, sess.Topic, message)
	if err != nil {
		return []Reply{errorReply(err)}
	}
	return []Reply{
		text(replyRevisedChars),
		file("", charactersFilename(sess.Topic), []byte(characters)),
		text(replyAskCharsFurther),
	}
}

func (e *Engine) sendBlob(ctx context.Context, key, filename, caption, notFound string) []Reply {
	data, err := e.blobs.Read(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return []Reply{text(notFound)}
	}
	if err != nil {
		return []Reply{errorReply(err)}
	}
	return []Reply{file(caption, filename, data)}
}

func (e *Engine) upload(ctx context.Context, sess *domain.Session) []Reply {
	replies := []Reply{text(replyUploading)}

	data, err := e.blobs.Read(ctx, store.KeyQSF)
	if errors.Is(err, store.ErrNotFound) {
		return append(replies, text(replyQSFNotFound))
	}
	if err != nil {
		return append(replies, errorReply(err))
	}

	title := "Survey_" + store.Slug(sess.Topic)
	surveyID, err := e.publisher.Import(ctx, data, title)
	if err != nil {
		return append(replies, text(replyUploadFailed))
	}

	return append(replies, text(fmt.Sprintf(
		"Successfully imported into Qualtrics.\nPreview URL: %s\nAdmin URL: %s",
		e.publisher.PreviewURL(surveyID), e.publisher.AdminURL(surveyID))))
}

// errorReply turns a failed action into a user-facing diagnostic.
// Parse failures get the blunt wording users of the original knew.
func errorReply(err error) Reply {
	if errors.Is(err, parse.ErrMalformed) {
		return text("The model formatted its output incorrectly, please try again. :(")
	}
	return text("Something went wrong: " + err.Error())
}

func draftFilename(topic string) string {
	return "survey_" + store.Slug(topic) + ".md"
}

func charactersFilename(topic string) string {
	return store.Slug(topic) + "_characters.md"
}

func responseFilename(topic string) string {
	return store.Slug(topic) + "_survey_response.md"
}

func batchFilename(topic string) string {
	return store.Slug(topic) + "_survey_responses_batch.md"
}
