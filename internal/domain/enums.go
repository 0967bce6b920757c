package domain

// Mode identifies where the conversation currently sits in the workflow.
// Exactly one mode is active at a time.
type Mode string

const (
	ModeIdle                   Mode = "IDLE"
	ModeAwaitingSurveyApproval Mode = "AWAITING_SURVEY_APPROVAL"
	ModeClarifying             Mode = "CLARIFYING"
	ModeAwaitingSimApproval    Mode = "AWAITING_SIMULATION_APPROVAL"
)

// FormatKind selects the survey question format.
type FormatKind string

const (
	FormatMultipleChoice FormatKind = "MULTIPLE_CHOICE"
	FormatLikert         FormatKind = "LIKERT"
)
