// Package report aggregates simulated response letters into per-question
// counts and renders them as a paginated PDF bar-chart report.
package report

import "github.com/autoscience/autoscience/internal/domain"

// Counts maps a response letter to its occurrence count for one question.
type Counts map[string]int

// Tally counts response letters per question position. Letters that do
// not match any defined choice are still counted; answers beyond the
// question count are ignored. The table is built fresh per report and
// never persisted.
func Tally(questions []domain.Question, rows [][]string) []Counts {
	tally := make([]Counts, len(questions))
	for i := range tally {
		tally[i] = make(Counts)
	}
	for _, row := range rows {
		for i, letter := range row {
			if i >= len(questions) {
				break
			}
			tally[i][letter]++
		}
	}
	return tally
}
