package conversation

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoscience/autoscience/internal/domain"
	"github.com/autoscience/autoscience/internal/parse"
	"github.com/autoscience/autoscience/internal/store"
)

type fakeSurveys struct {
	clarifyErr  error
	ideateErr   error
	reviseErr   error
	finalizeErr error

	finalized     int
	finalizedWith string
}

func (f *fakeSurveys) Clarify(ctx context.Context, topic string) (string, error) {
	if f.clarifyErr != nil {
		return "", f.clarifyErr
	}
	return "What age group are you targeting?", nil
}

func (f *fakeSurveys) Ideate(ctx context.Context, topic, info string, format domain.FormatKind) (string, error) {
	if f.ideateErr != nil {
		return "", f.ideateErr
	}
	return fmt.Sprintf("draft survey about %s (%s)", topic, format), nil
}

func (f *fakeSurveys) Revise(ctx context.Context, survey, instruction string) (string, error) {
	if f.reviseErr != nil {
		return "", f.reviseErr
	}
	return survey + " [revised]", nil
}

func (f *fakeSurveys) Finalize(ctx context.Context, survey, topic string, format domain.FormatKind) error {
	f.finalized++
	f.finalizedWith = survey
	return f.finalizeErr
}

type fakeSims struct {
	charactersErr error
	batchErr      error
	extractErr    error

	extracted int
}

func (f *fakeSims) Characters(ctx context.Context, survey, topic string, n int) (string, error) {
	if f.charactersErr != nil {
		return "", f.charactersErr
	}
	return fmt.Sprintf("%d characters", n), nil
}

func (f *fakeSims) ReviseCharacters(ctx context.Context, topic, feedback string) (string, error) {
	return "revised characters", nil
}

func (f *fakeSims) SimulateOne(ctx context.Context, survey, topic string) (string, error) {
	return "one response", nil
}

func (f *fakeSims) SimulateBatch(ctx context.Context, survey, topic string) (string, error) {
	if f.batchErr != nil {
		return "", f.batchErr
	}
	return "batch responses", nil
}

func (f *fakeSims) Extract(ctx context.Context, survey, topic string) error {
	f.extracted++
	return f.extractErr
}

type fakeReports struct {
	err error
}

func (f *fakeReports) Build(ctx context.Context) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

type fakePublisher struct {
	err      error
	imported string
}

func (f *fakePublisher) Import(ctx context.Context, qsf []byte, name string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.imported = name
	return "SV_test123", nil
}

func (f *fakePublisher) AdminURL(id string) string   { return "https://admin/" + id }
func (f *fakePublisher) PreviewURL(id string) string { return "https://preview/" + id }

type fixture struct {
	engine    *Engine
	surveys   *fakeSurveys
	sims      *fakeSims
	reports   *fakeReports
	publisher *fakePublisher
	blobs     *store.MemStore
	sess      *domain.Session
}

func newFixture() *fixture {
	f := &fixture{
		surveys:   &fakeSurveys{},
		sims:      &fakeSims{},
		reports:   &fakeReports{},
		publisher: &fakePublisher{},
		blobs:     store.NewMemStore(),
		sess:      domain.NewSession(),
	}
	f.engine = NewEngine(f.surveys, f.sims, f.reports, f.publisher, f.blobs)
	return f
}

func (f *fixture) handle(t *testing.T, message string) []Reply {
	t.Helper()
	return f.engine.Handle(context.Background(), f.sess, message)
}

func TestEngine_IgnoresUnaddressedMessage(t *testing.T) {
	f := newFixture()
	assert.Nil(t, f.handle(t, "just chatting with a friend"))
}

func TestEngine_MakeSurveyEntersClarifying(t *testing.T) {
	f := newFixture()

	replies := f.handle(t, "autoscience, make me a survey about Remote Work")

	require.Len(t, replies, 2)
	assert.Contains(t, replies[0].Text, "Remote Work")
	assert.Contains(t, replies[1].Text, "What age group")
	assert.Contains(t, replies[1].Text, "(1) multiple choice or (2) likert-scale grid")
	assert.Equal(t, domain.ModeClarifying, f.sess.Mode)
	assert.Equal(t, "Remote Work", f.sess.Topic)
}

func TestEngine_MakeSurveyClarifyFailureStaysIdle(t *testing.T) {
	f := newFixture()
	f.surveys.clarifyErr = errors.New("backend down")

	replies := f.handle(t, "autoscience, make me a survey about cats")

	require.Len(t, replies, 2)
	assert.Contains(t, replies[1].Text, "Something went wrong")
	assert.Equal(t, domain.ModeIdle, f.sess.Mode)
}

func TestEngine_ClarifiedDraftsAndAwaitsApproval(t *testing.T) {
	f := newFixture()
	f.sess.Mode = domain.ModeClarifying
	f.sess.Topic = "coffee"

	replies := f.handle(t, "2")

	require.Len(t, replies, 2)
	require.NotNil(t, replies[0].File)
	assert.Equal(t, "survey_coffee.md", replies[0].File.Name)
	assert.Equal(t, domain.ModeAwaitingSurveyApproval, f.sess.Mode)
	assert.Equal(t, domain.FormatLikert, f.sess.Format)
	assert.Contains(t, f.sess.CurrentSurvey, string(domain.FormatLikert))
}

func TestEngine_ClarifyingSwallowsUnmatchedInput(t *testing.T) {
	f := newFixture()
	f.sess.Mode = domain.ModeClarifying

	assert.Nil(t, f.handle(t, "hmm not sure yet"))
	assert.Equal(t, domain.ModeClarifying, f.sess.Mode)
}

func TestEngine_SurveyApprovalFinalizes(t *testing.T) {
	f := newFixture()
	f.sess.Mode = domain.ModeAwaitingSurveyApproval
	f.sess.Topic = "coffee"
	f.sess.CurrentSurvey = "the draft"

	replies := f.handle(t, "ok")

	require.Len(t, replies, 2)
	require.NotNil(t, replies[0].File)
	assert.Equal(t, "generated_survey.md", replies[0].File.Name)
	assert.Equal(t, []byte("the draft"), replies[0].File.Data)
	assert.Contains(t, replies[1].Text, "I can now...")
	assert.Equal(t, domain.ModeIdle, f.sess.Mode)
	assert.Equal(t, 1, f.surveys.finalized)
	assert.Equal(t, "the draft", f.surveys.finalizedWith)
}

func TestEngine_SurveyApprovalParseFailureDiagnostic(t *testing.T) {
	f := newFixture()
	f.sess.Mode = domain.ModeAwaitingSurveyApproval
	f.surveys.finalizeErr = fmt.Errorf("%w: field count", parse.ErrMalformed)

	replies := f.handle(t, "ok")

	require.Len(t, replies, 3)
	assert.Equal(t, "The model formatted its output incorrectly, please try again. :(", replies[2].Text)
	// The session still leaves approval mode.
	assert.Equal(t, domain.ModeIdle, f.sess.Mode)
}

func TestEngine_SurveyRevision(t *testing.T) {
	f := newFixture()
	f.sess.Mode = domain.ModeAwaitingSurveyApproval
	f.sess.CurrentSurvey = "draft v1"
	f.sess.Topic = "coffee"

	replies := f.handle(t, "please add a question about espresso")

	require.Len(t, replies, 2)
	assert.Equal(t, "draft v1 [revised]", f.sess.CurrentSurvey)
	assert.Equal(t, domain.ModeAwaitingSurveyApproval, f.sess.Mode)
	assert.Contains(t, replies[1].Text, "more changes")
}

func TestEngine_SimulateSingle(t *testing.T) {
	f := newFixture()
	f.sess.Topic = "coffee"

	replies := f.handle(t, "autoscience, simulate a response")

	require.Len(t, replies, 3)
	require.NotNil(t, replies[2].File)
	assert.Equal(t, "coffee_survey_response.md", replies[2].File.Name)
	assert.Equal(t, domain.ModeIdle, f.sess.Mode)
}

func TestEngine_SimulateBatchAwaitsCharacterApproval(t *testing.T) {
	f := newFixture()
	f.sess.Topic = "coffee"

	replies := f.handle(t, "autoscience, simulate 5 responses")

	require.Len(t, replies, 4)
	assert.Contains(t, replies[1].Text, "simulate 5 survey responses")
	require.NotNil(t, replies[2].File)
	assert.Equal(t, "coffee_characters.md", replies[2].File.Name)
	assert.Equal(t, []byte("5 characters"), replies[2].File.Data)
	assert.Equal(t, domain.ModeAwaitingSimApproval, f.sess.Mode)
}

func TestEngine_SimApprovalRunsFullPipeline(t *testing.T) {
	f := newFixture()
	f.sess.Mode = domain.ModeAwaitingSimApproval
	f.sess.Topic = "coffee"

	replies := f.handle(t, "ok")

	require.Len(t, replies, 3)
	require.NotNil(t, replies[1].File)
	assert.Equal(t, "coffee_survey_responses_batch.md", replies[1].File.Name)
	require.NotNil(t, replies[2].File)
	assert.Equal(t, "report.pdf", replies[2].File.Name)
	assert.Equal(t, []byte("%PDF-fake"), replies[2].File.Data)
	assert.Equal(t, domain.ModeIdle, f.sess.Mode)
	assert.Equal(t, 1, f.sims.extracted)
}

func TestEngine_SimApprovalReportFailure(t *testing.T) {
	f := newFixture()
	f.sess.Mode = domain.ModeAwaitingSimApproval
	f.reports.err = errors.New("render failed")

	replies := f.handle(t, "ok")

	assert.Contains(t, replies[len(replies)-1].Text, "Something went wrong")
	assert.Equal(t, domain.ModeIdle, f.sess.Mode)
}

func TestEngine_SimRevision(t *testing.T) {
	f := newFixture()
	f.sess.Mode = domain.ModeAwaitingSimApproval
	f.sess.Topic = "coffee"

	replies := f.handle(t, "make the third character a teacher")

	require.Len(t, replies, 3)
	require.NotNil(t, replies[1].File)
	assert.Equal(t, []byte("revised characters"), replies[1].File.Data)
	assert.Equal(t, domain.ModeAwaitingSimApproval, f.sess.Mode)
}

func TestEngine_SendBlobs(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	require.NoError(t, f.blobs.Write(ctx, store.KeyQSF, []byte("qsf bytes")))
	require.NoError(t, f.blobs.Write(ctx, store.KeySurveyDraft, []byte("md bytes")))

	replies := f.handle(t, "autoscience, send the qsf file")
	require.Len(t, replies, 1)
	require.NotNil(t, replies[0].File)
	assert.Equal(t, "generated_survey.qsf", replies[0].File.Name)
	assert.Equal(t, []byte("qsf bytes"), replies[0].File.Data)

	replies = f.handle(t, "autoscience, send the md file")
	require.Len(t, replies, 1)
	require.NotNil(t, replies[0].File)
	assert.Equal(t, "generated_survey.md", replies[0].File.Name)
}

func TestEngine_SendBlobNotFound(t *testing.T) {
	f := newFixture()

	replies := f.handle(t, "autoscience, send the report")
	require.Len(t, replies, 1)
	assert.Equal(t, "Oops! I haven't simulated any surveys.", replies[0].Text)
	assert.Nil(t, replies[0].File)
}

func TestEngine_GetTopic(t *testing.T) {
	f := newFixture()
	f.sess.Topic = "Remote Work"

	replies := f.handle(t, "autoscience, what's the topic?")

	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "**Remote Work**")
}

func TestEngine_UploadSuccess(t *testing.T) {
	f := newFixture()
	f.sess.Topic = "remote work"
	require.NoError(t, f.blobs.Write(context.Background(), store.KeyQSF, []byte("qsf")))

	replies := f.handle(t, "autoscience, upload to qualtrics")

	require.Len(t, replies, 2)
	assert.Equal(t, "Survey_remote_work", f.publisher.imported)
	assert.Contains(t, replies[1].Text, "https://preview/SV_test123")
	assert.Contains(t, replies[1].Text, "https://admin/SV_test123")
}

func TestEngine_UploadFailure(t *testing.T) {
	f := newFixture()
	f.publisher.err = errors.New("401 unauthorized")
	require.NoError(t, f.blobs.Write(context.Background(), store.KeyQSF, []byte("qsf")))

	replies := f.handle(t, "autoscience, upload to qualtrics")

	require.Len(t, replies, 2)
	assert.Equal(t, replyUploadFailed, replies[1].Text)
}

func TestEngine_UploadWithoutQSF(t *testing.T) {
	f := newFixture()

	replies := f.handle(t, "autoscience, upload to qualtrics")

	require.Len(t, replies, 2)
	assert.Equal(t, replyQSFNotFound, replies[1].Text)
}

func TestEngine_Pleasantries(t *testing.T) {
	f := newFixture()

	replies := f.handle(t, "hello there")
	require.Len(t, replies, 1)
	assert.Equal(t, "General Kenobi", replies[0].Text)

	replies = f.handle(t, "thank you autoscience!")
	require.Len(t, replies, 1)
	assert.Equal(t, "You're welcome, human.", replies[0].Text)
}

func TestEngine_HelpAttachesDoc(t *testing.T) {
	f := newFixture()

	replies := f.handle(t, "autoscience help")

	require.Len(t, replies, 2)
	require.NotNil(t, replies[1].File)
	assert.Equal(t, "help.md", replies[1].File.Name)
	assert.NotEmpty(t, replies[1].File.Data)
}

func TestEngine_UnknownCommand(t *testing.T) {
	f := newFixture()

	replies := f.handle(t, "autoscience, do a backflip")

	require.Len(t, replies, 1)
	assert.Equal(t, replyUnknown, replies[0].Text)
}
