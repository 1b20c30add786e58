package prompts

import (
	"fmt"
	"strings"

	"github.com/venturepath/venturepath-backend/internal/questionnaire"
)

var GTMPlanSections = []Section{
	{Key: "executive_summary", Title: "Executive Summary", Icon: "FileText"},
	{Key: "positioning_and_messaging", Title: "Positioning & Messaging", Icon: "MessageSquare"},
	{Key: "target_audience_deep_dive", Title: "Target Audience Deep Dive", Icon: "Users"},
	{Key: "competitive_positioning", Title: "Competitive Positioning", Icon: "Target"},
	{Key: "channel_strategy", Title: "Channel Strategy", Icon: "Share2"},
	{Key: "launch_timeline", Title: "Launch Timeline", Icon: "Calendar"},
	{Key: "content_strategy", Title: "Content Strategy", Icon: "FileEdit"},
	{Key: "budget_allocation", Title: "Budget Allocation", Icon: "DollarSign"},
	{Key: "metrics_and_kpis", Title: "Metrics & KPIs", Icon: "BarChart"},
	{Key: "risk_mitigation", Title: "Risk Mitigation", Icon: "Shield"},
	{Key: "quick_wins", Title: "Quick Wins", Icon: "Zap"},
}

const GTMPlanSystemPrompt = `You are a seasoned Chief Marketing Officer and go-to-market strategist with 20+ years of experience launching products and building brands. You've helped hundreds of startups successfully enter new markets.

Your task is to generate a comprehensive, actionable go-to-market plan based on the founder's questionnaire responses.

## Your Approach:
1. Be SPECIFIC and ACTIONABLE - avoid generic advice. Reference their actual product, market, and situation.
2. Be REALISTIC - calibrate recommendations to their budget, timeline, and experience level.
3. Be ENCOURAGING but HONEST - don't sugarcoat challenges, but frame them constructively.
4. Think like a mentor - explain the "why" behind recommendations.
5. Use CONCRETE EXAMPLES and NUMBERS wherever possible.

## Writing Style:
- Write in second person ("You should..." / "Your launch...")
- Use simple, clear language - no jargon without explanation
- Break complex concepts into digestible pieces
- Include specific action items they can take immediately
- Format with clear headers, bullet points, and numbered lists for easy scanning

## Output Format:
You must return a valid JSON object with the structure specified in the user prompt. Each section should be a string containing well-formatted markdown.

CRITICAL JSON RULES:
- Return ONLY the JSON object, no other text
- Use double quotes for all strings
- Escape newlines as \n within strings
- Escape quotes as \" within strings
- Do NOT include actual line breaks inside string values
- Keep each section value as a single-line string with \n for line breaks`

type GTMPlanContext struct {
	ProductName          string
	ProductDescription   string
	LaunchType           string
	Readiness            string
	PrimaryPersona       string
	BuyingJourney        string
	AwarenessLevel       string
	GeographicFocus      []string
	MainCompetitors      string
	CompetitiveAdvantage string
	MarketPosition       string
	PrimaryChannels      []string
	MarketingExperience  string
	ExistingAudience     string
	LaunchDate           string
	BudgetRange          string
	SuccessMetrics       string
	Constraints          string
}

func GTMPlanContextFromResponses(responses questionnaire.Responses) GTMPlanContext {
	return GTMPlanContext{
		ProductName:          answerString(responses, "product_name"),
		ProductDescription:   answerString(responses, "product_description"),
		LaunchType:           answerString(responses, "launch_type"),
		Readiness:            answerString(responses, "readiness"),
		PrimaryPersona:       answerString(responses, "primary_persona"),
		BuyingJourney:        answerString(responses, "buying_journey"),
		AwarenessLevel:       answerString(responses, "awareness_level"),
		GeographicFocus:      answerStrings(responses, "geographic_focus"),
		MainCompetitors:      answerString(responses, "main_competitors"),
		CompetitiveAdvantage: answerString(responses, "competitive_advantage"),
		MarketPosition:       answerString(responses, "market_position"),
		PrimaryChannels:      answerStrings(responses, "primary_channels"),
		MarketingExperience:  answerString(responses, "marketing_experience"),
		ExistingAudience:     answerString(responses, "existing_audience"),
		LaunchDate:           answerString(responses, "launch_date"),
		BudgetRange:          answerString(responses, "budget_range"),
		SuccessMetrics:       answerString(responses, "success_metrics"),
		Constraints:          answerString(responses, "constraints"),
	}
}

func BuildGTMPlanPrompt(ctx GTMPlanContext) string {
	var b strings.Builder

	b.WriteString("## Product & Launch Information\n\n")
	fmt.Fprintf(&b, "**Product Name:** %s\n", ctx.ProductName)
	fmt.Fprintf(&b, "**Product Description:** %s\n", ctx.ProductDescription)
	fmt.Fprintf(&b, "**Launch Type:** %s\n", ctx.LaunchType)
	fmt.Fprintf(&b, "**Readiness:** %s\n\n", ctx.Readiness)

	fmt.Fprintf(&b, "**Target Customer:**\n%s\n\n", ctx.PrimaryPersona)
	fmt.Fprintf(&b, "**Buying Journey:** %s\n", ctx.BuyingJourney)
	fmt.Fprintf(&b, "**Market Awareness Level:** %s\n", ctx.AwarenessLevel)
	fmt.Fprintf(&b, "**Geographic Focus:** %s\n\n", strings.Join(ctx.GeographicFocus, ", "))

	fmt.Fprintf(&b, "**Competitive Landscape:**\n%s\n\n", ctx.MainCompetitors)
	fmt.Fprintf(&b, "**Competitive Advantage:** %s\n", ctx.CompetitiveAdvantage)
	fmt.Fprintf(&b, "**Market Positioning:** %s\n\n", ctx.MarketPosition)

	fmt.Fprintf(&b, "**Marketing Channels:** %s\n", strings.Join(ctx.PrimaryChannels, ", "))
	fmt.Fprintf(&b, "**Marketing Experience:** %s\n", ctx.MarketingExperience)
	if ctx.ExistingAudience != "" {
		fmt.Fprintf(&b, "**Existing Audience:** %s\n", ctx.ExistingAudience)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "**Launch Date:** %s\n", ctx.LaunchDate)
	fmt.Fprintf(&b, "**Budget (3 months):** %s\n", ctx.BudgetRange)
	fmt.Fprintf(&b, "**Success Metrics (90 days):** %s\n", ctx.SuccessMetrics)
	if ctx.Constraints != "" {
		fmt.Fprintf(&b, "**Constraints:** %s\n", ctx.Constraints)
	}

	b.WriteString(`
---

Based on this information, generate a comprehensive go-to-market plan with the following sections. Each section should be substantive (200-400 words) and highly specific to THIS launch.

Return a JSON object with these exact keys:

{
  "executive_summary": "A compelling 2-3 paragraph summary of the GTM strategy. Include the core positioning, primary channels, and expected outcomes. This should excite and align the team.",

  "positioning_and_messaging": "Clear positioning statement and messaging framework. Include: positioning statement (For [target], [product] is [category] that [benefit] unlike [alternative]). Key messages for different stages of the funnel. Tone and voice guidelines.",

  "target_audience_deep_dive": "Detailed analysis of the target audience. Include: detailed persona with day-in-life scenario, where they spend time online/offline, what triggers them to look for solutions, objections they might have, who influences their decisions.",

  "competitive_positioning": "How to position against competitors. Include: competitive matrix, key differentiators to emphasize, weaknesses to avoid highlighting, response strategies for competitive objections.",

  "channel_strategy": "Detailed strategy for each selected channel. For each channel: specific tactics, content types, posting/activity frequency, key metrics to track, estimated time/budget allocation. Prioritize by expected ROI.",

  "launch_timeline": "Week-by-week launch plan for the first 90 days. Include: pre-launch activities (4-8 weeks before), launch week activities, post-launch optimization. Be specific with dates relative to their launch date.",

  "content_strategy": "Content plan to support the launch. Include: content pillars/themes, content types and formats, content calendar highlights, repurposing strategy, SEO keyword targets if relevant.",

  "budget_allocation": "How to allocate the marketing budget. Include: channel-by-channel breakdown, tools/software needed, contingency recommendations, what to prioritize if budget is tight.",

  "metrics_and_kpis": "Specific metrics to track success. Include: primary KPIs with targets, secondary metrics, leading indicators vs lagging indicators, when to expect to see results, dashboard recommendations.",

  "risk_mitigation": "Potential risks and how to mitigate them. Include: launch risks, channel risks, competitive risks, budget risks. For each, provide specific mitigation strategies.",

  "quick_wins": "5-7 things they can do THIS WEEK to start building momentum. Make these extremely specific and achievable. Focus on activities that compound over time."
}

Important: Return ONLY the JSON object, no additional text before or after.`)

	return b.String()
}
