package prompts_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/venturepath/venturepath-backend/internal/prompts"
	"github.com/venturepath/venturepath-backend/internal/questionnaire"
	"github.com/venturepath/venturepath-backend/internal/types"
)

func TestSectionsForPlanType(t *testing.T) {
	assert.Len(t, prompts.SectionsForPlanType(types.PlanTypeBusiness), 12)
	assert.Len(t, prompts.SectionsForPlanType(types.PlanTypeGTM), 11)
	assert.Nil(t, prompts.SectionsForPlanType("unknown"))

	assert.True(t, prompts.KnownSection(types.PlanTypeBusiness, "traction_milestones"))
	assert.True(t, prompts.KnownSection(types.PlanTypeGTM, "quick_wins"))
	assert.False(t, prompts.KnownSection(types.PlanTypeGTM, "traction_milestones"))
	assert.Equal(t, "Quick Wins", prompts.SectionTitle(types.PlanTypeGTM, "quick_wins"))
	assert.Equal(t, "mystery", prompts.SectionTitle(types.PlanTypeGTM, "mystery"))
}

func TestBuildBusinessPlanPrompt(t *testing.T) {
	ctx := prompts.BusinessPlanContextFromResponses(questionnaire.Responses{
		"business_name":       "Acme",
		"industry":            "other",
		"industry_other":      "Space logistics",
		"key_differentiators": []interface{}{"speed", "technology"},
	})
	assert.Equal(t, "Acme", ctx.BusinessName)
	assert.Equal(t, []string{"speed", "technology"}, ctx.KeyDifferentiators)

	prompt := prompts.BuildBusinessPlanPrompt(ctx)
	assert.Contains(t, prompt, "**Industry:** Space logistics")
	assert.Contains(t, prompt, "**Key Differentiators:** speed, technology")
	assert.NotContains(t, prompt, "**Estimated CAC:**")
	for _, section := range prompts.BusinessPlanSections {
		assert.Contains(t, prompt, `"`+section.Key+`"`)
	}
}

func TestBuildBusinessPlanPromptDefaultsCompanyName(t *testing.T) {
	ctx := prompts.BusinessPlanContextFromResponses(questionnaire.Responses{})
	assert.Equal(t, "Unnamed Company", ctx.BusinessName)
}

func TestBuildGTMPlanPrompt(t *testing.T) {
	ctx := prompts.GTMPlanContextFromResponses(questionnaire.Responses{
		"product_name":     "Widget",
		"geographic_focus": []interface{}{"local", "global"},
		"primary_channels": []string{"email", "pr"},
	})
	prompt := prompts.BuildGTMPlanPrompt(ctx)
	assert.Contains(t, prompt, "**Product Name:** Widget")
	assert.Contains(t, prompt, "**Geographic Focus:** local, global")
	assert.NotContains(t, prompt, "**Existing Audience:**")
	for _, section := range prompts.GTMPlanSections {
		assert.Contains(t, prompt, `"`+section.Key+`"`)
	}
}

func TestBuildRefinementPrompt(t *testing.T) {
	withCtx := prompts.BuildRefinementPrompt("Quick Wins", "old content", "make it punchier", "B2B SaaS, pre-launch")
	assert.Contains(t, withCtx, "**Quick Wins**")
	assert.Contains(t, withCtx, "make it punchier")
	assert.Contains(t, withCtx, "## Business Context")

	withoutCtx := prompts.BuildRefinementPrompt("Quick Wins", "old", "feedback", "")
	assert.NotContains(t, withoutCtx, "## Business Context")
}

func TestBuildCheckInInsightsPrompt(t *testing.T) {
	prompt := prompts.BuildCheckInInsightsPrompt(
		[]string{"signed first customer"},
		[]string{"slow onboarding"},
		nil,
		[]string{"fix onboarding flow"},
		4,
	)
	assert.Contains(t, prompt, "**Mood Score:** 4/5")
	assert.Contains(t, prompt, "- signed first customer")
	assert.True(t, strings.Contains(prompt, "**Blockers:**\nNone"))
}
