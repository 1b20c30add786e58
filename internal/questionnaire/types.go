package questionnaire

const (
	QuestionTypeText        = "text"
	QuestionTypeTextarea    = "textarea"
	QuestionTypeSelect      = "select"
	QuestionTypeMultiSelect = "multi_select"
	QuestionTypeDate        = "date"
	QuestionTypeCurrency    = "currency"
	QuestionTypeScale       = "scale"
	QuestionTypeYesNo       = "yes_no"
)

// Responses maps question id to the answered value: string, []string, number
// or bool depending on question type. Values round-trip through the plan's
// jsonb column, so slices may come back as []interface{}.
type Responses map[string]interface{}

type QuestionOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

type Validation struct {
	MinLength int `json:"min_length,omitempty"`
	MaxLength int `json:"max_length,omitempty"`
}

// ConditionalDisplay hides a question unless another question's current
// answer matches Value (exact) or is a member of OneOf (set membership).
type ConditionalDisplay struct {
	QuestionID string   `json:"question_id"`
	Value      string   `json:"value,omitempty"`
	OneOf      []string `json:"one_of,omitempty"`
}

type Question struct {
	ID                 string              `json:"id"`
	Type               string              `json:"type"`
	Label              string              `json:"label"`
	Description        string              `json:"description,omitempty"`
	Placeholder        string              `json:"placeholder,omitempty"`
	Required           bool                `json:"required"`
	Validation         *Validation         `json:"validation,omitempty"`
	Options            []QuestionOption    `json:"options,omitempty"`
	ConditionalDisplay *ConditionalDisplay `json:"conditional_display,omitempty"`
}

type Step struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Questions        []Question `json:"questions"`
	EstimatedMinutes int        `json:"estimated_minutes,omitempty"`
}

type Questionnaire struct {
	PlanType              string `json:"plan_type"`
	TotalEstimatedMinutes int    `json:"total_estimated_minutes"`
	Steps                 []Step `json:"steps"`
}

// ForPlanType returns the static definition for a plan kind.
func ForPlanType(planType string) (*Questionnaire, bool) {
	switch planType {
	case "business_plan":
		return &BusinessPlanQuestionnaire, true
	case "gtm_plan":
		return &GTMPlanQuestionnaire, true
	}
	return nil, false
}

// Visible reports whether q should be shown (and therefore validated) given
// the current answers.
func (q *Question) Visible(answers Responses) bool {
	cd := q.ConditionalDisplay
	if cd == nil {
		return true
	}
	current, _ := answers[cd.QuestionID].(string)
	if len(cd.OneOf) > 0 {
		for _, v := range cd.OneOf {
			if current == v {
				return true
			}
		}
		return false
	}
	return current == cd.Value
}

// Answered reports whether the value counts as a present answer. Empty
// string, nil and empty list all count as missing.
func Answered(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case []string:
		return len(v) > 0
	case []interface{}:
		return len(v) > 0
	}
	return true
}
