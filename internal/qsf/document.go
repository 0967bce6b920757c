// Package qsf builds Qualtrics survey interchange documents from parsed
// question records. Builders are pure: the same input always produces
// the same document, byte for byte, because every identifier, date and
// account field is a fixed constant.
package qsf

// Document is the top-level QSF structure: an entry record plus an
// ordered list of typed elements. Qualtrics validates structural order,
// so block/flow/metadata elements come before question elements and the
// statistics element is last.
type Document struct {
	SurveyEntry    Entry     `json:"SurveyEntry"`
	SurveyElements []Element `json:"SurveyElements"`
}

// Entry is the survey-level metadata record.
type Entry struct {
	SurveyID                string  `json:"SurveyID"`
	SurveyName              string  `json:"SurveyName"`
	SurveyDescription       *string `json:"SurveyDescription"`
	SurveyOwnerID           string  `json:"SurveyOwnerID"`
	SurveyBrandID           string  `json:"SurveyBrandID"`
	DivisionID              *string `json:"DivisionID"`
	SurveyLanguage          string  `json:"SurveyLanguage"`
	SurveyActiveResponseSet string  `json:"SurveyActiveResponseSet"`
	SurveyStatus            string  `json:"SurveyStatus"`
	SurveyStartDate         string  `json:"SurveyStartDate"`
	SurveyExpirationDate    string  `json:"SurveyExpirationDate"`
	SurveyCreationDate      string  `json:"SurveyCreationDate"`
	CreatorID               string  `json:"CreatorID"`
	LastModified            string  `json:"LastModified"`
	LastAccessed            string  `json:"LastAccessed"`
	LastActivated           string  `json:"LastActivated"`
	Deleted                 *string `json:"Deleted"`
}

// Element is one entry of SurveyElements. Payload shape depends on the
// element type, so it stays dynamic; everything that feeds it is a
// typed struct from this package.
type Element struct {
	SurveyID           string  `json:"SurveyID"`
	Element            string  `json:"Element"`
	PrimaryAttribute   string  `json:"PrimaryAttribute"`
	SecondaryAttribute *string `json:"SecondaryAttribute"`
	TertiaryAttribute  *string `json:"TertiaryAttribute"`
	Payload            any     `json:"Payload"`
}

// Block is one entry of the BL element payload.
type Block struct {
	Type          string         `json:"Type"`
	Description   string         `json:"Description"`
	ID            string         `json:"ID"`
	BlockElements []BlockElement `json:"BlockElements,omitempty"`
}

// BlockElement references a question from within a block.
type BlockElement struct {
	Type       string `json:"Type"`
	QuestionID string `json:"QuestionID"`
}

// FlowPayload is the FL element payload referencing exactly one block.
type FlowPayload struct {
	Flow       []FlowEntry    `json:"Flow"`
	Properties FlowProperties `json:"Properties"`
	FlowID     string         `json:"FlowID"`
	Type       string         `json:"Type"`
}

type FlowEntry struct {
	ID     string `json:"ID"`
	Type   string `json:"Type"`
	FlowID string `json:"FlowID"`
}

type FlowProperties struct {
	Count int `json:"Count"`
}

// Choice is a display option of a question (a column for matrix
// questions, an answer option for multiple choice).
type Choice struct {
	Display string `json:"Display"`
}

// Validation mirrors the fixed no-force-response validation settings.
type Validation struct {
	Settings ValidationSettings `json:"Settings"`
}

type ValidationSettings struct {
	ForceResponse string `json:"ForceResponse"`
	Type          string `json:"Type"`
}

type Configuration struct {
	QuestionDescriptionOption string `json:"QuestionDescriptionOption"`
}

// QuestionPayload is the SQ element payload for both question types.
// Matrix-only fields are omitted for multiple-choice questions.
type QuestionPayload struct {
	QuestionText        string            `json:"QuestionText"`
	DefaultChoices      *bool             `json:"DefaultChoices,omitempty"`
	DataExportTag       string            `json:"DataExportTag"`
	QuestionType        string            `json:"QuestionType"`
	Selector            string            `json:"Selector"`
	SubSelector         string            `json:"SubSelector"`
	Configuration       Configuration     `json:"Configuration"`
	QuestionDescription string            `json:"QuestionDescription"`
	Choices             map[string]Choice `json:"Choices"`
	ChoiceOrder         []string          `json:"ChoiceOrder"`
	Answers             map[string]Choice `json:"Answers,omitempty"`
	AnswerOrder         []string          `json:"AnswerOrder,omitempty"`
	Validation          Validation        `json:"Validation"`
	Language            []string          `json:"Language"`
	NextChoiceID        int               `json:"NextChoiceId"`
	NextAnswerID        int               `json:"NextAnswerId"`
	QuestionID          string            `json:"QuestionID"`
}

// ScoringPayload is the fixed SCO element payload.
type ScoringPayload struct {
	ScoringCategories            []string `json:"ScoringCategories"`
	ScoringCategoryGroups        []string `json:"ScoringCategoryGroups"`
	ScoringSummaryCategory       *string  `json:"ScoringSummaryCategory"`
	ScoringSummaryAfterQuestions int      `json:"ScoringSummaryAfterQuestions"`
	ScoringSummaryAfterSurvey    int      `json:"ScoringSummaryAfterSurvey"`
	DefaultScoringCategory       *string  `json:"DefaultScoringCategory"`
	AutoScoringCategory          *string  `json:"AutoScoringCategory"`
}

// OptionsPayload is the fixed SO element payload.
type OptionsPayload struct {
	BackButton                  string `json:"BackButton"`
	SaveAndContinue             string `json:"SaveAndContinue"`
	SurveyProtection            string `json:"SurveyProtection"`
	BallotBoxStuffingPrevention string `json:"BallotBoxStuffingPrevention"`
	NoIndex                     string `json:"NoIndex"`
	SecureResponseFiles         string `json:"SecureResponseFiles"`
	SurveyExpiration            string `json:"SurveyExpiration"`
	SurveyTermination           string `json:"SurveyTermination"`
	Header                      string `json:"Header"`
	Footer                      string `json:"Footer"`
	ProgressBarDisplay          string `json:"ProgressBarDisplay"`
	PartialData                 string `json:"PartialData"`
	ValidationMessage           string `json:"ValidationMessage"`
	PreviousButton              string `json:"PreviousButton"`
	NextButton                  string `json:"NextButton"`
	SurveyTitle                 string `json:"SurveyTitle"`
	SkinLibrary                 string `json:"SkinLibrary"`
	SkinType                    string `json:"SkinType"`
	Skin                        Skin   `json:"Skin"`
	NewScoring                  int    `json:"NewScoring"`
	SurveyMetaDescription       string `json:"SurveyMetaDescription"`
}

type Skin struct {
	BrandingID string  `json:"brandingId"`
	TemplateID string  `json:"templateId"`
	Overrides  *string `json:"overrides"`
}

// StatisticsPayload is the fixed STAT element payload.
type StatisticsPayload struct {
	MobileCompatible bool   `json:"MobileCompatible"`
	ID               string `json:"ID"`
}

// ProjectPayload is the fixed PROJ element payload.
type ProjectPayload struct {
	ProjectCategory string `json:"ProjectCategory"`
	SchemaVersion   string `json:"SchemaVersion"`
}
