package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/autoscience/autoscience/internal/domain"
)

// StripPreamble drops any model chatter before the first question,
// which always starts with "1|".
func StripPreamble(s string) string {
	if i := strings.Index(s, "1|"); i >= 0 {
		return s[i:]
	}
	return s
}

// MultipleChoice parses the pipe-delimited multiple-choice survey
// grammar: flat groups of exactly 4 fields (numeric id, label, question
// text, comma-separated options). A trailing pipe and a trailing empty
// field are tolerated; any other field count not divisible by 4 is a
// fatal ErrMalformed.
func MultipleChoice(s string) ([]domain.MCQuestion, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "|")

	parts := strings.Split(s, "|")
	if n := len(parts); n > 0 && strings.TrimSpace(parts[n-1]) == "" {
		parts = parts[:n-1]
	}

	if len(parts) == 0 || len(parts)%4 != 0 {
		return nil, fmt.Errorf("%w: %d fields, expected a multiple of 4", ErrMalformed, len(parts))
	}

	questions := make([]domain.MCQuestion, 0, len(parts)/4)
	for i := 0; i < len(parts); i += 4 {
		id, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return nil, fmt.Errorf("%w: question id %q is not numeric", ErrMalformed, strings.TrimSpace(parts[i]))
		}
		questions = append(questions, domain.MCQuestion{
			ID:      id,
			Label:   strings.TrimSpace(parts[i+1]),
			Text:    strings.TrimSpace(parts[i+2]),
			Options: splitOptions(parts[i+3]),
		})
	}
	return questions, nil
}

func splitOptions(s string) []string {
	raw := strings.Split(s, ",")
	opts := make([]string, 0, len(raw))
	for _, o := range raw {
		o = strings.TrimSpace(o)
		o = strings.TrimSuffix(o, ".")
		if o != "" {
			opts = append(opts, o)
		}
	}
	return opts
}
