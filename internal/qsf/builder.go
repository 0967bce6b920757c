package qsf

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/autoscience/autoscience/internal/domain"
)

// Fixed platform constants. This system does not manage Qualtrics
// account identity; callers substitute their own before real use.
const (
	DefaultSurveyID   = "SV_6XMOJPHrKo918fI"
	DefaultSurveyName = "Auto-Generated Survey"
	defaultOwnerID    = "UR_5nGkW5NZ9iaHrtc"
	defaultBrandID    = "wharton"
	defaultStatus     = "Inactive"
	defaultBlockID    = "BL_1YecbDaQMp1nXX8"
	trashBlockID      = "BL_bxQacfQHYYQQwm2"
	responseSetID     = "RS_bknoxgAY3lNkLtA"
	zeroDate          = "0000-00-00 00:00:00"
	creationDate      = "2025-02-16 16:51:58"
	lastModifiedDate  = "2025-02-16 17:28:17"

	likertPrompt = "Please rate how much you agree with each statement:"
)

// BuildMultipleChoice assembles a QSF document with one single-select
// question element per input record, in input order.
func BuildMultipleChoice(questions []domain.MCQuestion) *Document {
	elements := make([]Element, 0, len(questions))
	for _, q := range questions {
		elements = append(elements, mcQuestionElement(q))
	}
	return assemble(DefaultSurveyName, elements)
}

// BuildLikert assembles a QSF document with a single matrix-grid
// question whose rows are the given statements and whose columns are
// the fixed 5-point agreement scale.
func BuildLikert(label string, statements []string) *Document {
	element := matrixQuestionElement(4, label, likertPrompt, statements, domain.LikertScale)
	return assemble(DefaultSurveyName, []Element{element})
}

// Marshal serializes a document with stable two-space indentation.
// Map keys are emitted sorted, so identical documents yield identical
// bytes.
func Marshal(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling qsf document: %w", err)
	}
	return data, nil
}

func mcQuestionElement(q domain.MCQuestion) Element {
	choices := make(map[string]Choice, len(q.Options))
	order := make([]string, 0, len(q.Options))
	for i, opt := range q.Options {
		key := strconv.Itoa(i + 1)
		choices[key] = Choice{Display: opt}
		order = append(order, key)
	}

	defaultChoices := false
	qid := fmt.Sprintf("QID%d", q.ID)
	return Element{
		SurveyID:         DefaultSurveyID,
		Element:          "SQ",
		PrimaryAttribute: qid,
		Payload: QuestionPayload{
			QuestionText:        q.Text,
			DefaultChoices:      &defaultChoices,
			DataExportTag:       q.Label,
			QuestionType:        "MC",
			Selector:            "SAVR",
			SubSelector:         "TX",
			Configuration:       Configuration{QuestionDescriptionOption: "UseText"},
			QuestionDescription: q.Label,
			Choices:             choices,
			ChoiceOrder:         order,
			Validation:          noValidation(),
			Language:            []string{},
			NextChoiceID:        len(choices) + 1,
			NextAnswerID:        1,
			QuestionID:          qid,
		},
	}
}

func matrixQuestionElement(id int, label, text string, statements, scale []string) Element {
	choices := make(map[string]Choice, len(statements))
	choiceOrder := make([]string, 0, len(statements))
	for i, row := range statements {
		key := strconv.Itoa(i + 1)
		choices[key] = Choice{Display: row}
		choiceOrder = append(choiceOrder, key)
	}
	answers := make(map[string]Choice, len(scale))
	answerOrder := make([]string, 0, len(scale))
	for i, col := range scale {
		key := strconv.Itoa(i + 1)
		answers[key] = Choice{Display: col}
		answerOrder = append(answerOrder, key)
	}

	qid := fmt.Sprintf("QID%d", id)
	return Element{
		SurveyID:         DefaultSurveyID,
		Element:          "SQ",
		PrimaryAttribute: qid,
		Payload: QuestionPayload{
			QuestionText:        text,
			DataExportTag:       label,
			QuestionType:        "Matrix",
			Selector:            "Likert",
			SubSelector:         "SingleAnswer",
			Configuration:       Configuration{QuestionDescriptionOption: "UseText"},
			QuestionDescription: label,
			Choices:             choices,
			ChoiceOrder:         choiceOrder,
			Answers:             answers,
			AnswerOrder:         answerOrder,
			Validation:          noValidation(),
			Language:            []string{},
			NextChoiceID:        len(choices) + 1,
			NextAnswerID:        len(answers) + 1,
			QuestionID:          qid,
		},
	}
}

// assemble wraps question elements in the envelope Qualtrics expects:
// BL, FL, PROJ, QC, RS, SCO, SO, then the questions, then STAT.
func assemble(name string, questions []Element) *Document {
	blockRefs := make([]BlockElement, 0, len(questions))
	for _, q := range questions {
		blockRefs = append(blockRefs, BlockElement{Type: "Question", QuestionID: q.PrimaryAttribute})
	}

	blocks := Element{
		SurveyID:         DefaultSurveyID,
		Element:          "BL",
		PrimaryAttribute: "Survey Blocks",
		Payload: []Block{
			{
				Type:          "Default",
				Description:   "Default Question Block",
				ID:            defaultBlockID,
				BlockElements: blockRefs,
			},
			{
				Type:        "Trash",
				Description: "Trash / Unused Questions",
				ID:          trashBlockID,
			},
		},
	}

	flow := Element{
		SurveyID:         DefaultSurveyID,
		Element:          "FL",
		PrimaryAttribute: "Survey Flow",
		Payload: FlowPayload{
			Flow:       []FlowEntry{{ID: defaultBlockID, Type: "Block", FlowID: "FL_2"}},
			Properties: FlowProperties{Count: 3},
			FlowID:     "FL_1",
			Type:       "Root",
		},
	}

	schemaVersion := "1.1.0"
	proj := Element{
		SurveyID:          DefaultSurveyID,
		Element:           "PROJ",
		PrimaryAttribute:  "CORE",
		TertiaryAttribute: &schemaVersion,
		Payload:           ProjectPayload{ProjectCategory: "CORE", SchemaVersion: schemaVersion},
	}

	count := strconv.Itoa(len(questions))
	questionCount := Element{
		SurveyID:           DefaultSurveyID,
		Element:            "QC",
		PrimaryAttribute:   "Survey Question Count",
		SecondaryAttribute: &count,
	}

	responseSetName := "Default Response Set"
	responseSet := Element{
		SurveyID:           DefaultSurveyID,
		Element:            "RS",
		PrimaryAttribute:   responseSetID,
		SecondaryAttribute: &responseSetName,
	}

	scoring := Element{
		SurveyID:         DefaultSurveyID,
		Element:          "SCO",
		PrimaryAttribute: "Scoring",
		Payload: ScoringPayload{
			ScoringCategories:     []string{},
			ScoringCategoryGroups: []string{},
		},
	}

	options := Element{
		SurveyID:         DefaultSurveyID,
		Element:          "SO",
		PrimaryAttribute: "Survey Options",
		Payload: OptionsPayload{
			BackButton:                  "false",
			SaveAndContinue:             "true",
			SurveyProtection:            "PublicSurvey",
			BallotBoxStuffingPrevention: "false",
			NoIndex:                     "Yes",
			SecureResponseFiles:         "true",
			SurveyExpiration:            "None",
			SurveyTermination:           "DefaultMessage",
			ProgressBarDisplay:          "None",
			PartialData:                 "+1 week",
			SurveyTitle:                 "Qualtrics Survey | Qualtrics Experience Management",
			SkinLibrary:                 defaultBrandID,
			SkinType:                    "templated",
			Skin:                        Skin{BrandingID: "6138034454", TemplateID: "*base"},
			NewScoring:                  1,
			SurveyMetaDescription:       "The most powerful, simple and trusted way to gather experience data.",
		},
	}

	statistics := Element{
		SurveyID:         DefaultSurveyID,
		Element:          "STAT",
		PrimaryAttribute: "Survey Statistics",
		Payload:          StatisticsPayload{MobileCompatible: true, ID: "Survey Statistics"},
	}

	elements := make([]Element, 0, len(questions)+8)
	elements = append(elements, blocks, flow, proj, questionCount, responseSet, scoring, options)
	elements = append(elements, questions...)
	elements = append(elements, statistics)

	return &Document{
		SurveyEntry: Entry{
			SurveyID:                DefaultSurveyID,
			SurveyName:              name,
			SurveyOwnerID:           defaultOwnerID,
			SurveyBrandID:           defaultBrandID,
			SurveyLanguage:          "EN",
			SurveyActiveResponseSet: responseSetID,
			SurveyStatus:            defaultStatus,
			SurveyStartDate:         zeroDate,
			SurveyExpirationDate:    zeroDate,
			SurveyCreationDate:      creationDate,
			CreatorID:               defaultOwnerID,
			LastModified:            lastModifiedDate,
			LastAccessed:            zeroDate,
			LastActivated:           zeroDate,
		},
		SurveyElements: elements,
	}
}

func noValidation() Validation {
	return Validation{Settings: ValidationSettings{ForceResponse: "OFF", Type: "None"}}
}
