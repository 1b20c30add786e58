package prompts

import (
	"fmt"
	"strings"

	"github.com/venturepath/venturepath-backend/internal/questionnaire"
)

// BusinessPlanSections is the canonical section order for a generated
// business plan. Generation output is validated against these keys.
var BusinessPlanSections = []Section{
	{Key: "executive_summary", Title: "Executive Summary", Icon: "FileText"},
	{Key: "market_opportunity", Title: "Market Opportunity", Icon: "TrendingUp"},
	{Key: "problem_analysis", Title: "Problem Analysis", Icon: "AlertCircle"},
	{Key: "solution_value_prop", Title: "Solution & Value Proposition", Icon: "Lightbulb"},
	{Key: "business_model", Title: "Business Model", Icon: "DollarSign"},
	{Key: "go_to_market", Title: "Go-to-Market Strategy", Icon: "Rocket"},
	{Key: "competitive_analysis", Title: "Competitive Analysis", Icon: "Target"},
	{Key: "traction_milestones", Title: "Traction & Milestones", Icon: "Flag"},
	{Key: "financial_projections", Title: "Financial Projections", Icon: "BarChart"},
	{Key: "team_section", Title: "Team", Icon: "Users"},
	{Key: "risks_mitigation", Title: "Risks & Mitigation", Icon: "Shield"},
	{Key: "action_plan", Title: "90-Day Action Plan", Icon: "CheckSquare"},
}

const BusinessPlanSystemPrompt = `You are an experienced business strategist and mentor who has helped hundreds of entrepreneurs build successful businesses - from solo lifestyle businesses to venture-backed startups. You adapt your advice to what the founder actually needs, not what sounds impressive.

Your task is to generate a practical, actionable business plan tailored to the founder's specific goals, stage, and ambitions.

## Your Approach - ADAPT TO THE FOUNDER:
1. **Match their ambition level** - If they want a lifestyle business doing $200K/year, help them build that. If they want to raise VC and scale to $100M, help them with that. Don't assume everyone wants to be the next unicorn.
2. **Be practical first** - Give advice they can actually execute with their current resources and constraints.
3. **Be honest and direct** - If something won't work, say so. If they're being unrealistic, gently push back with alternatives.
4. **Focus on fundamentals** - Revenue, customers, product-market fit, sustainable growth. Not buzzwords.
5. **Provide clear next steps** - Every section should end with specific actions they can take this week.

## Calibrate Your Advice Based On:
- **Funding status**: Bootstrapped? Give capital-efficient strategies. Seeking VC? Include investor-ready metrics.
- **Business stage**: Idea stage needs validation steps. Growth stage needs scaling strategies.
- **Revenue goals**: $50K/year needs different advice than $5M/year.
- **Team size**: Solo founder gets different ops advice than a team of 10.

## Writing Style:
- Write like a smart mentor having coffee with the founder - warm but direct
- Use clear, simple language - explain concepts if needed
- Be specific with numbers and timelines
- Include examples and "try this" suggestions
- Avoid unnecessary jargon - if you use a business term, make sure it adds value

## Formatting Rules:
- Use ## for major section headers
- Use ### for subsections
- Use **bold** for key metrics and important terms
- Use bullet points for actionable lists
- Use numbered lists for step-by-step processes
- Include > blockquotes for key insights or important warnings

## Quality Bar:
This plan should:
- Feel personally relevant to THIS founder's situation
- Have at least 5 specific actions they can take immediately
- Be realistic about challenges while remaining encouraging
- Scale appropriately to their goals (not everyone needs a 50-page VC deck)

CRITICAL JSON RULES:
- Return ONLY valid JSON, no other text
- Use double quotes for all strings
- For line breaks in content, use the literal characters \n
- Each section value should be a markdown-formatted string`

// BusinessPlanContext is the flattened questionnaire state fed into the
// generation prompt.
type BusinessPlanContext struct {
	BusinessName           string
	OneLiner               string
	VisionStatement        string
	BusinessStage          string
	Industry               string
	IndustryOther          string
	Problem                string
	ProblemSeverity        string
	CurrentAlternatives    string
	Solution               string
	UniqueValue            string
	KeyDifferentiators     []string
	TargetCustomer         string
	CustomerSegments       string
	TamSamSom              string
	MarketTrends           string
	CustomerAcquisition    []string
	CACEstimate            string
	RevenueModel           string
	PricingStrategy        string
	LTVEstimate            string
	GrossMargin            string
	RevenueGoal12m         string
	RevenueGoal36m         string
	PathToProfitability    string
	Competitors            string
	CompetitivePositioning string
	Moat                   []string
	GoToMarket             string
	FoundingTeam           string
	TeamSize               string
	KeyHires               string
	FundingStatus          string
	FundingNeeds           string
	BiggestChallenges      string
}

func BusinessPlanContextFromResponses(responses questionnaire.Responses) BusinessPlanContext {
	return BusinessPlanContext{
		BusinessName:           answerStringOr(responses, "business_name", "Unnamed Company"),
		OneLiner:               answerString(responses, "one_liner"),
		VisionStatement:        answerString(responses, "vision_statement"),
		BusinessStage:          answerString(responses, "business_stage"),
		Industry:               answerString(responses, "industry"),
		IndustryOther:          answerString(responses, "industry_other"),
		Problem:                answerString(responses, "problem"),
		ProblemSeverity:        answerString(responses, "problem_severity"),
		CurrentAlternatives:    answerString(responses, "current_alternatives"),
		Solution:               answerString(responses, "solution"),
		UniqueValue:            answerString(responses, "unique_value"),
		KeyDifferentiators:     answerStrings(responses, "key_differentiators"),
		TargetCustomer:         answerString(responses, "target_customer"),
		CustomerSegments:       answerString(responses, "customer_segments"),
		TamSamSom:              answerString(responses, "tam_sam_som"),
		MarketTrends:           answerString(responses, "market_trends"),
		CustomerAcquisition:    answerStrings(responses, "customer_acquisition"),
		CACEstimate:            answerString(responses, "cac_estimate"),
		RevenueModel:           answerString(responses, "revenue_model"),
		PricingStrategy:        answerString(responses, "pricing_strategy"),
		LTVEstimate:            answerString(responses, "ltv_estimate"),
		GrossMargin:            answerString(responses, "gross_margin"),
		RevenueGoal12m:         answerString(responses, "revenue_goal_12m"),
		RevenueGoal36m:         answerString(responses, "revenue_goal_36m"),
		PathToProfitability:    answerString(responses, "path_to_profitability"),
		Competitors:            answerString(responses, "competitors"),
		CompetitivePositioning: answerString(responses, "competitive_positioning"),
		Moat:                   answerStrings(responses, "moat"),
		GoToMarket:             answerString(responses, "go_to_market"),
		FoundingTeam:           answerString(responses, "founding_team"),
		TeamSize:               answerString(responses, "team_size"),
		KeyHires:               answerString(responses, "key_hires"),
		FundingStatus:          answerString(responses, "funding_status"),
		FundingNeeds:           answerString(responses, "funding_needs"),
		BiggestChallenges:      answerString(responses, "biggest_challenges"),
	}
}

// BuildBusinessPlanPrompt renders the user prompt for business plan
// generation. Optional fields are dropped entirely when empty.
func BuildBusinessPlanPrompt(ctx BusinessPlanContext) string {
	industry := ctx.Industry
	if industry == "other" && ctx.IndustryOther != "" {
		industry = ctx.IndustryOther
	}

	var b strings.Builder
	b.WriteString("Generate a comprehensive, investor-ready business plan for the following company.\n\n")

	b.WriteString("## COMPANY INFORMATION\n\n")
	fmt.Fprintf(&b, "**Company Name:** %s\n", ctx.BusinessName)
	fmt.Fprintf(&b, "**One-Liner:** %s\n", ctx.OneLiner)
	fmt.Fprintf(&b, "**5-Year Vision:** %s\n", ctx.VisionStatement)
	fmt.Fprintf(&b, "**Stage:** %s\n", ctx.BusinessStage)
	fmt.Fprintf(&b, "**Industry:** %s\n\n", industry)

	b.WriteString("## PROBLEM & SOLUTION\n\n")
	fmt.Fprintf(&b, "**Problem Statement:** %s\n", ctx.Problem)
	fmt.Fprintf(&b, "**Problem Severity:** %s\n", ctx.ProblemSeverity)
	fmt.Fprintf(&b, "**Current Alternatives:** %s\n", ctx.CurrentAlternatives)
	fmt.Fprintf(&b, "**Our Solution:** %s\n", ctx.Solution)
	fmt.Fprintf(&b, "**Unfair Advantage:** %s\n", ctx.UniqueValue)
	fmt.Fprintf(&b, "**Key Differentiators:** %s\n\n", strings.Join(ctx.KeyDifferentiators, ", "))

	b.WriteString("## MARKET & CUSTOMER\n\n")
	fmt.Fprintf(&b, "**Target Customer:** %s\n", ctx.TargetCustomer)
	fmt.Fprintf(&b, "**Customer Segments:** %s\n", ctx.CustomerSegments)
	fmt.Fprintf(&b, "**Market Size (TAM/SAM/SOM):** %s\n", ctx.TamSamSom)
	fmt.Fprintf(&b, "**Market Trends:** %s\n", ctx.MarketTrends)
	fmt.Fprintf(&b, "**Acquisition Channels:** %s\n", strings.Join(ctx.CustomerAcquisition, ", "))
	if ctx.CACEstimate != "" {
		fmt.Fprintf(&b, "**Estimated CAC:** %s\n", ctx.CACEstimate)
	}
	b.WriteString("\n## BUSINESS MODEL\n\n")
	fmt.Fprintf(&b, "**Revenue Model:** %s\n", ctx.RevenueModel)
	fmt.Fprintf(&b, "**Pricing Strategy:** %s\n", ctx.PricingStrategy)
	if ctx.LTVEstimate != "" {
		fmt.Fprintf(&b, "**Estimated LTV:** %s\n", ctx.LTVEstimate)
	}
	fmt.Fprintf(&b, "**Gross Margin:** %s\n", ctx.GrossMargin)
	fmt.Fprintf(&b, "**12-Month Revenue Goal:** %s\n", ctx.RevenueGoal12m)
	fmt.Fprintf(&b, "**36-Month Revenue Goal:** %s\n", ctx.RevenueGoal36m)
	fmt.Fprintf(&b, "**Path to Profitability:** %s\n\n", ctx.PathToProfitability)

	b.WriteString("## COMPETITION & STRATEGY\n\n")
	fmt.Fprintf(&b, "**Competitors:** %s\n", ctx.Competitors)
	fmt.Fprintf(&b, "**Competitive Positioning:** %s\n", ctx.CompetitivePositioning)
	fmt.Fprintf(&b, "**Moat/Defensibility:** %s\n", strings.Join(ctx.Moat, ", "))
	fmt.Fprintf(&b, "**Go-to-Market Strategy:** %s\n\n", ctx.GoToMarket)

	b.WriteString("## TEAM & FUNDING\n\n")
	fmt.Fprintf(&b, "**Founding Team:** %s\n", ctx.FoundingTeam)
	fmt.Fprintf(&b, "**Team Size:** %s\n", ctx.TeamSize)
	if ctx.KeyHires != "" {
		fmt.Fprintf(&b, "**Key Hires Needed:** %s\n", ctx.KeyHires)
	}
	fmt.Fprintf(&b, "**Funding Status:** %s\n", ctx.FundingStatus)
	if ctx.FundingNeeds != "" {
		fmt.Fprintf(&b, "**Funding Needs:** %s\n", ctx.FundingNeeds)
	}
	fmt.Fprintf(&b, "**Biggest Challenges:** %s\n\n", ctx.BiggestChallenges)

	b.WriteString(`---

Generate a JSON object with the following sections. Each section should be rich, detailed markdown content (500-1000 words each) worthy of a McKinsey presentation:

{
  "executive_summary": "A compelling 1-page executive summary with: company overview, the opportunity, solution, business model, traction/goals, team strength, and funding ask. Include a 'Bottom Line' callout.",

  "market_opportunity": "Deep market analysis including: TAM/SAM/SOM breakdown with sources, market growth drivers, industry trends, timing analysis (why now?), and market entry strategy. Include a market sizing table.",

  "problem_analysis": "Thorough problem analysis: customer pain points with specific examples, quantified cost of the problem, why existing solutions fail, customer quotes/insights if available. Use the Jobs-to-be-Done framework.",

  "solution_value_prop": "Detailed solution description: how it works, key features/benefits, unique value proposition, product roadmap vision. Include a comparison table vs alternatives.",

  "business_model": "Complete business model: revenue streams, pricing strategy with rationale, unit economics (LTV, CAC, LTV:CAC ratio, payback period), gross margin analysis, path to profitability with timeline.",

  "go_to_market": "Comprehensive GTM strategy: customer acquisition channels with prioritization, marketing strategy, sales process, partnerships strategy, launch plan. Include a 12-month GTM timeline.",

  "competitive_analysis": "Strategic competitive analysis: competitor landscape, competitive positioning map, sustainable competitive advantages (moat), barriers to entry, competitive response strategy.",

  "traction_milestones": "Traction & Milestones: current traction metrics, key milestones achieved, 12-month milestone roadmap with specific targets, 36-month vision milestones, KPIs to track.",

  "financial_projections": "Financial projections: 3-year revenue forecast, key assumptions, expense breakdown, break-even analysis, funding requirements and use of funds. Include a financial summary table.",

  "team_section": "Team section: founder backgrounds and why they win, team structure, key hires needed, advisory board opportunities, team's unfair advantages.",

  "risks_mitigation": "Risk analysis: top 5 risks (market, execution, competitive, financial, team), mitigation strategies for each, contingency plans.",

  "action_plan": "90-Day Action Plan: immediate priorities (Week 1-2), short-term goals (Month 1), medium-term objectives (Month 2-3), key decisions needed, resources required."
}

`)
	fmt.Fprintf(&b, `IMPORTANT: Tailor your advice to this founder's specific situation:
- Their stage is "%s" - calibrate complexity accordingly
- Their funding status is "%s" - adjust financial advice appropriately
- Their 12-month goal is "%s" - make sure advice scales to this ambition level
- Their team size is "%s" - be realistic about what they can execute

Be their strategic partner, not a generic business plan template. Make it feel like advice written specifically for them.`,
		ctx.BusinessStage, ctx.FundingStatus, ctx.RevenueGoal12m, ctx.TeamSize)

	return b.String()
}
