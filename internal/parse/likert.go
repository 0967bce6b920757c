package parse

import (
	"fmt"
	"strings"
)

// LikertStatements parses the quoted, comma-separated statement grammar
// produced by the normalization prompt:
//
//	"I feel valued at work", "I have the resources I need"
//
// Quotes and surrounding whitespace are stripped per entry. Input with
// no quoted statement at all is ErrMalformed.
func LikertStatements(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, `"`) {
		return nil, fmt.Errorf("%w: no quoted statements found", ErrMalformed)
	}

	var statements []string
	for _, part := range strings.Split(s, `",`) {
		part = strings.TrimSpace(part)
		part = strings.Trim(part, `"`)
		part = strings.TrimSpace(part)
		if part != "" {
			statements = append(statements, part)
		}
	}
	if len(statements) == 0 {
		return nil, fmt.Errorf("%w: no statements after stripping quotes", ErrMalformed)
	}
	return statements, nil
}
