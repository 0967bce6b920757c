package store

import "strings"

// Blob keys mirror the layout of the original artifact tree so that
// operators can find files by hand in the filesystem store.
const (
	KeySurveyDraft   = "md_files/generated_survey.md"
	KeyQSF           = "qsf_files/generated_survey.qsf"
	KeySurveySummary = "survey_data/survey.md"
	KeyResponseRows  = "survey_data/responses.md"
	KeyReport        = "survey_data/report.pdf"
)

// Slug converts a free-text topic into a key-safe token.
func Slug(topic string) string {
	return strings.ReplaceAll(strings.TrimSpace(topic), " ", "_")
}

// CharactersKey is the blob holding the simulated respondent profiles
// for a topic.
func CharactersKey(topic string) string {
	return "md_files/simulated_characters/" + Slug(topic) + "_characters.md"
}

// SingleResponseKey is the blob holding one simulated response.
func SingleResponseKey(topic string) string {
	return "md_files/simulated_responses/" + Slug(topic) + "_survey_response.md"
}

// BatchResponsesKey is the blob holding the full simulated batch.
func BatchResponsesKey(topic string) string {
	return "md_files/simulated_responses/" + Slug(topic) + "_survey_responses_batch.md"
}
