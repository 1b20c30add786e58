package prompts

import (
	"strings"

	"github.com/venturepath/venturepath-backend/internal/questionnaire"
	"github.com/venturepath/venturepath-backend/internal/types"
)

// Section identifies one named block of generated plan content.
type Section struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

// SectionsForPlanType returns the ordered section list a generation must
// produce for the given plan kind.
func SectionsForPlanType(planType string) []Section {
	switch planType {
	case types.PlanTypeBusiness:
		return BusinessPlanSections
	case types.PlanTypeGTM:
		return GTMPlanSections
	}
	return nil
}

// SectionTitle resolves a section key to its display title, falling back to
// the key itself for unknown sections.
func SectionTitle(planType, key string) string {
	for _, s := range SectionsForPlanType(planType) {
		if s.Key == key {
			return s.Title
		}
	}
	return key
}

// KnownSection reports whether key names a real section of the plan kind.
func KnownSection(planType, key string) bool {
	for _, s := range SectionsForPlanType(planType) {
		if s.Key == key {
			return true
		}
	}
	return false
}

func answerString(responses questionnaire.Responses, id string) string {
	v, _ := responses[id].(string)
	return v
}

func answerStringOr(responses questionnaire.Responses, id, fallback string) string {
	if v := answerString(responses, id); v != "" {
		return v
	}
	return fallback
}

// answerStrings tolerates both []string and the []interface{} shape the
// jsonb round trip produces.
func answerStrings(responses questionnaire.Responses, id string) []string {
	switch v := responses[id].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func bulleted(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}
