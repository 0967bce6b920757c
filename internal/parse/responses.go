package parse

import (
	"fmt"
	"strings"
)

// ResponseRows parses the simulated response batch: respondents
// separated by "|", each a comma-separated sequence of single-letter
// answers, positional per question.
func ResponseRows(s string) ([][]string, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "|")

	var rows [][]string
	for _, line := range strings.Split(s, "|") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var row []string
		for _, answer := range strings.Split(line, ",") {
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "" {
				row = append(row, answer)
			}
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no response rows found", ErrMalformed)
	}
	return rows, nil
}
