package parse

import (
	"fmt"
	"strings"

	"github.com/autoscience/autoscience/internal/domain"
)

// SurveySummary parses the extracted survey description used by the
// report pipeline: questions separated by "|", each split by ";" into
// the question text followed by options of the form "a. Option text".
// The letter prefix is discarded; letters are re-derived positionally
// during the tally. An option without the ". " separator is fatal.
func SurveySummary(s string) ([]domain.Question, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "|")

	var questions []domain.Question
	for _, qRaw := range strings.Split(s, "|") {
		qRaw = strings.TrimSpace(qRaw)
		if qRaw == "" {
			continue
		}
		parts := strings.Split(qRaw, ";")
		q := domain.Question{Text: strings.TrimSpace(parts[0])}
		for _, opt := range parts[1:] {
			opt = strings.TrimSpace(opt)
			if opt == "" {
				continue
			}
			_, text, ok := strings.Cut(opt, ". ")
			if !ok {
				return nil, fmt.Errorf("%w: option %q has no letter prefix", ErrMalformed, opt)
			}
			q.Choices = append(q.Choices, strings.TrimSpace(text))
		}
		questions = append(questions, q)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no questions in survey summary", ErrMalformed)
	}
	return questions, nil
}
