// Package conversation implements the chat-driven workflow controller:
// it classifies each inbound message into a symbolic action based on the
// current session mode, applies the action, and transitions the session.
package conversation

// Action is the symbolic label for what the user just asked for.
type Action string

const (
	// Stateful-mode actions
	ActionSurveyOK     Action = "SURVEY_OK"
	ActionSurveyRevise Action = "SURVEY_REVISE"
	ActionClarifyMC    Action = "CLARIFY_MC"
	ActionClarifyLik   Action = "CLARIFY_LIKERT"
	ActionSimOK        Action = "SIM_OK"
	ActionSimRevise    Action = "SIM_REVISE"

	// Idle wake-word commands
	ActionHello      Action = "HELLO"
	ActionMakeSurvey Action = "MAKE_SURVEY"
	ActionGetQSF     Action = "GET_QSF"
	ActionGetReport  Action = "GET_REPORT"
	ActionGetMD      Action = "GET_MD"
	ActionSimulate   Action = "SIMULATE"
	ActionGetTopic   Action = "GET_TOPIC"
	ActionUploadQSF  Action = "UPLOAD_QSF"
	ActionThanks     Action = "THANKS"
	ActionHelp       Action = "HELP"
	ActionUnknown    Action = "UNKNOWN"
)
