package conversation

import (
	"strconv"
	"strings"

	"github.com/autoscience/autoscience/internal/domain"
)

// wakeWord must prefix (well, appear in) a command for it to be
// recognized while the session is idle.
const wakeWord = "autoscience,"

// idleRule pairs a predicate with an action. The slice below is
// evaluated top to bottom and the first match wins; the ordering is a
// load-bearing artifact, covered by tests, because later rules are
// broader than earlier ones.
type idleRule struct {
	match  func(lower string) bool
	action Action
}

var idleRules = []idleRule{
	{func(l string) bool { return l == "hello there" }, ActionHello},
	{wakeAnd("survey about"), ActionMakeSurvey},
	{wakeAnd("qsf"), ActionGetQSF},
	{wakeAnd("report"), ActionGetReport},
	{wakeAnd("md"), ActionGetMD},
	{wakeAnd("simulate"), ActionSimulate},
	{wakeAnd("topic"), ActionGetTopic},
	{wakeAnd("qualtrics"), ActionUploadQSF},
	{func(l string) bool { return strings.Contains(l, "autoscience") && strings.Contains(l, "thank") }, ActionThanks},
	{func(l string) bool { return l == "autoscience help" }, ActionHelp},
	{func(l string) bool { return strings.Contains(l, wakeWord) }, ActionUnknown},
}

func wakeAnd(keyword string) func(string) bool {
	return func(lower string) bool {
		return strings.Contains(lower, wakeWord) && strings.Contains(lower, keyword)
	}
}

// Classify maps a message to an action given the session mode. The
// stateful modes take precedence over the idle command table. A false
// second return means the message is not for the bot and is ignored.
func Classify(message string, sess *domain.Session) (Action, bool) {
	lower := strings.ToLower(message)

	switch sess.Mode {
	case domain.ModeAwaitingSurveyApproval:
		if strings.Contains(lower, "ok") {
			return ActionSurveyOK, true
		}
		return ActionSurveyRevise, true

	case domain.ModeClarifying:
		// "1" is checked before "likert": first matching rule wins.
		if containsAny(lower, "1", "mc", "multiple choice") {
			return ActionClarifyMC, true
		}
		if containsAny(lower, "2", "grid", "likert") {
			return ActionClarifyLik, true
		}
		return "", false

	case domain.ModeAwaitingSimApproval:
		if strings.Contains(lower, "ok") {
			return ActionSimOK, true
		}
		return ActionSimRevise, true
	}

	for _, rule := range idleRules {
		if rule.match(lower) {
			return rule.action, true
		}
	}
	return "", false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// extractTopic pulls the survey topic out of a MAKE_SURVEY message:
// everything after the "survey about" trigger, original casing kept.
func extractTopic(message string) string {
	lower := strings.ToLower(message)
	const trigger = "survey about"
	i := strings.Index(lower, trigger)
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(message[i+len(trigger):])
}

// extractSimulateCount finds the integer token following the word
// "simulate". Zero means no count was given; counts of 1 or less take
// the single-response path with no approval stage.
func extractSimulateCount(message string) int {
	fields := strings.Fields(strings.ToLower(message))
	for i, f := range fields {
		if f == "simulate" && i+1 < len(fields) {
			if n, err := strconv.Atoi(strings.Trim(fields[i+1], ".,!?")); err == nil {
				return n
			}
		}
	}
	return 0
}
