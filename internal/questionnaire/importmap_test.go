package questionnaire_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/venturepath/venturepath-backend/internal/questionnaire"
)

func TestMapBusinessPlanToGTM(t *testing.T) {
	source := questionnaire.Responses{
		"business_name":    "Acme Robotics",
		"solution":         "Automated visual inspection for small factories",
		"target_customer":  "Plant managers at mid-size manufacturers",
		"competitors":      "Cognex, manual QA teams",
		"unique_value":     "Setup in an afternoon, no ML expertise needed",
		"geographic_focus": "online_global",
		"business_stage":   "launched",
	}

	mapped := questionnaire.MapBusinessPlanToGTM(source)

	assert.Equal(t, "Acme Robotics", mapped["product_name"])
	assert.Equal(t, source["solution"], mapped["product_description"])
	assert.Equal(t, source["target_customer"], mapped["primary_persona"])
	assert.Equal(t, source["competitors"], mapped["main_competitors"])
	assert.Equal(t, source["unique_value"], mapped["competitive_advantage"])
	assert.Equal(t, []string{"global"}, mapped["geographic_focus"])
	assert.Equal(t, "soft_launch", mapped["readiness"])
}

func TestMapBusinessPlanToGTMSkipsEmptyFields(t *testing.T) {
	mapped := questionnaire.MapBusinessPlanToGTM(questionnaire.Responses{
		"business_name": "",
		"solution":      nil,
	})
	assert.Empty(t, mapped)
}

func TestMapBusinessPlanToGTMValueRemaps(t *testing.T) {
	cases := []struct {
		geo      string
		expected []string
	}{
		{"local", []string{"local"}},
		{"national", []string{"national"}},
		{"international", []string{"global"}},
		{"online_global", []string{"global"}},
		{"unknown_value", []string{"national"}},
	}
	for _, tc := range cases {
		mapped := questionnaire.MapBusinessPlanToGTM(questionnaire.Responses{"geographic_focus": tc.geo})
		assert.Equal(t, tc.expected, mapped["geographic_focus"], "geo %q", tc.geo)
	}

	stages := map[string]string{
		"idea":       "concept",
		"validation": "concept",
		"building":   "development",
		"launched":   "soft_launch",
		"scaling":    "ready",
		"weird":      "concept",
	}
	for stage, readiness := range stages {
		mapped := questionnaire.MapBusinessPlanToGTM(questionnaire.Responses{"business_stage": stage})
		assert.Equal(t, readiness, mapped["readiness"], "stage %q", stage)
	}
}

func TestImportableFieldsTruncatesLongValues(t *testing.T) {
	long := strings.Repeat("x", 150)
	fields := questionnaire.ImportableFields(questionnaire.Responses{
		"business_name": "Acme",
		"solution":      long,
	})

	assert.Len(t, fields, 2)
	for _, f := range fields {
		if f.GTMField == "product_description" {
			assert.Equal(t, 103, len(f.Value))
			assert.True(t, strings.HasSuffix(f.Value, "..."))
		}
	}
}
