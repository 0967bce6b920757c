package domain

// Question is a survey question as used by the tally/report pipeline.
// Choice order is meaningful: it is the letter-assignment order
// (index 0 -> 'a', index 1 -> 'b', ...).
type Question struct {
	Text    string
	Choices []string
}

// MCQuestion is a parsed multiple-choice question record from the
// model's pipe-delimited survey output. ID and Label feed the QSF
// question element directly.
type MCQuestion struct {
	ID      int
	Label   string
	Text    string
	Options []string
}

// LikertScale is the fixed 5-point agreement scale used as the column
// set of every Likert matrix question.
var LikertScale = []string{
	"Strongly Disagree",
	"Disagree",
	"Neutral",
	"Agree",
	"Strongly Agree",
}

// Letter maps a zero-based choice index to its response letter.
func Letter(i int) string {
	return string(rune('a' + i))
}
