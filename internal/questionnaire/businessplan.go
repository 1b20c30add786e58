package questionnaire

// BusinessPlanQuestionnaire drives the multi-step intake for a business plan.
// Question ids line up with the prompt context mapping in internal/prompts.
var BusinessPlanQuestionnaire = Questionnaire{
	PlanType:              "business_plan",
	TotalEstimatedMinutes: 35,
	Steps: []Step{
		{
			ID:               "foundation",
			Title:            "The Foundation",
			Description:      "Who you are and where you're headed.",
			EstimatedMinutes: 5,
			Questions: []Question{
				{
					ID:         "business_name",
					Type:       QuestionTypeText,
					Label:      "What's your business called?",
					Required:   true,
					Validation: &Validation{MaxLength: 120},
				},
				{
					ID:          "one_liner",
					Type:        QuestionTypeText,
					Label:       "Describe your business in one sentence",
					Placeholder: "We help X do Y by Z",
					Required:    true,
					Validation:  &Validation{MinLength: 10, MaxLength: 200},
				},
				{
					ID:       "vision_statement",
					Type:     QuestionTypeTextarea,
					Label:    "Where do you want this business to be in 5 years?",
					Required: true,
				},
				{
					ID:       "business_stage",
					Type:     QuestionTypeSelect,
					Label:    "What stage are you at?",
					Required: true,
					Options: []QuestionOption{
						{Value: "idea", Label: "Just an idea"},
						{Value: "validation", Label: "Validating with customers"},
						{Value: "building", Label: "Building the product"},
						{Value: "launched", Label: "Launched, early revenue"},
						{Value: "scaling", Label: "Growing and scaling"},
					},
				},
				{
					ID:       "industry",
					Type:     QuestionTypeSelect,
					Label:    "What industry are you in?",
					Required: true,
					Options: []QuestionOption{
						{Value: "saas", Label: "Software / SaaS"},
						{Value: "ecommerce", Label: "E-commerce / Retail"},
						{Value: "services", Label: "Professional services"},
						{Value: "marketplace", Label: "Marketplace"},
						{Value: "consumer", Label: "Consumer products"},
						{Value: "health", Label: "Health & wellness"},
						{Value: "fintech", Label: "Financial services"},
						{Value: "other", Label: "Other"},
					},
				},
				{
					ID:                 "industry_other",
					Type:               QuestionTypeText,
					Label:              "Tell us your industry",
					Required:           true,
					ConditionalDisplay: &ConditionalDisplay{QuestionID: "industry", Value: "other"},
				},
				{
					ID:       "geographic_focus",
					Type:     QuestionTypeSelect,
					Label:    "Where will you operate?",
					Required: true,
					Options: []QuestionOption{
						{Value: "local", Label: "Local / one city"},
						{Value: "national", Label: "National"},
						{Value: "international", Label: "International"},
						{Value: "online_global", Label: "Online, anywhere"},
					},
				},
			},
		},
		{
			ID:               "problem_solution",
			Title:            "Problem & Solution",
			Description:      "The pain you solve and how.",
			EstimatedMinutes: 7,
			Questions: []Question{
				{
					ID:         "problem",
					Type:       QuestionTypeTextarea,
					Label:      "What problem are you solving?",
					Required:   true,
					Validation: &Validation{MinLength: 20},
				},
				{
					ID:       "problem_severity",
					Type:     QuestionTypeSelect,
					Label:    "How painful is this problem for your customers?",
					Required: true,
					Options: []QuestionOption{
						{Value: "minor", Label: "Annoying but tolerable"},
						{Value: "significant", Label: "Costs real time or money"},
						{Value: "critical", Label: "Business- or life-critical"},
					},
				},
				{
					ID:       "current_alternatives",
					Type:     QuestionTypeTextarea,
					Label:    "How do people solve this today?",
					Required: true,
				},
				{
					ID:         "solution",
					Type:       QuestionTypeTextarea,
					Label:      "What's your solution?",
					Required:   true,
					Validation: &Validation{MinLength: 20},
				},
				{
					ID:       "unique_value",
					Type:     QuestionTypeTextarea,
					Label:    "What's your unfair advantage?",
					Required: true,
				},
				{
					ID:       "key_differentiators",
					Type:     QuestionTypeMultiSelect,
					Label:    "What sets you apart?",
					Required: true,
					Options: []QuestionOption{
						{Value: "price", Label: "Price"},
						{Value: "quality", Label: "Quality"},
						{Value: "speed", Label: "Speed"},
						{Value: "technology", Label: "Technology"},
						{Value: "brand", Label: "Brand"},
						{Value: "network", Label: "Network effects"},
						{Value: "service", Label: "Customer service"},
					},
				},
			},
		},
		{
			ID:               "market",
			Title:            "Market & Customers",
			Description:      "Who buys, and how you reach them.",
			EstimatedMinutes: 6,
			Questions: []Question{
				{
					ID:       "target_customer",
					Type:     QuestionTypeTextarea,
					Label:    "Describe your ideal customer",
					Required: true,
				},
				{
					ID:       "customer_segments",
					Type:     QuestionTypeTextarea,
					Label:    "What customer segments exist?",
					Required: true,
				},
				{
					ID:          "tam_sam_som",
					Type:        QuestionTypeTextarea,
					Label:       "How big is the market?",
					Description: "Rough TAM/SAM/SOM numbers are fine.",
					Required:    true,
				},
				{
					ID:       "market_trends",
					Type:     QuestionTypeTextarea,
					Label:    "What trends are working in your favor?",
					Required: true,
				},
				{
					ID:       "customer_acquisition",
					Type:     QuestionTypeMultiSelect,
					Label:    "How will you acquire customers?",
					Required: true,
					Options: []QuestionOption{
						{Value: "content", Label: "Content marketing"},
						{Value: "paid_ads", Label: "Paid advertising"},
						{Value: "outbound", Label: "Outbound sales"},
						{Value: "partnerships", Label: "Partnerships"},
						{Value: "community", Label: "Community"},
						{Value: "seo", Label: "SEO"},
						{Value: "referrals", Label: "Referrals / word of mouth"},
					},
				},
				{
					ID:    "cac_estimate",
					Type:  QuestionTypeCurrency,
					Label: "Estimated cost to acquire a customer (optional)",
				},
			},
		},
		{
			ID:               "business_model",
			Title:            "Business Model",
			Description:      "How the money works.",
			EstimatedMinutes: 6,
			Questions: []Question{
				{
					ID:       "revenue_model",
					Type:     QuestionTypeSelect,
					Label:    "How do you make money?",
					Required: true,
					Options: []QuestionOption{
						{Value: "subscription", Label: "Subscription"},
						{Value: "one_time", Label: "One-time sales"},
						{Value: "usage", Label: "Usage-based"},
						{Value: "commission", Label: "Commission / take rate"},
						{Value: "advertising", Label: "Advertising"},
						{Value: "licensing", Label: "Licensing"},
					},
				},
				{
					ID:       "pricing_strategy",
					Type:     QuestionTypeTextarea,
					Label:    "What's your pricing and why?",
					Required: true,
				},
				{
					ID:    "ltv_estimate",
					Type:  QuestionTypeCurrency,
					Label: "Estimated customer lifetime value (optional)",
				},
				{
					ID:       "gross_margin",
					Type:     QuestionTypeSelect,
					Label:    "Rough gross margin?",
					Required: true,
					Options: []QuestionOption{
						{Value: "under_20", Label: "Under 20%"},
						{Value: "20_50", Label: "20-50%"},
						{Value: "50_80", Label: "50-80%"},
						{Value: "over_80", Label: "Over 80%"},
					},
				},
				{
					ID:       "revenue_goal_12m",
					Type:     QuestionTypeCurrency,
					Label:    "Revenue goal for the next 12 months",
					Required: true,
				},
				{
					ID:       "revenue_goal_36m",
					Type:     QuestionTypeCurrency,
					Label:    "Revenue goal for 3 years out",
					Required: true,
				},
				{
					ID:       "path_to_profitability",
					Type:     QuestionTypeTextarea,
					Label:    "What's your path to profitability?",
					Required: true,
				},
			},
		},
		{
			ID:               "competition",
			Title:            "Competition & Strategy",
			Description:      "The landscape and your edge.",
			EstimatedMinutes: 5,
			Questions: []Question{
				{
					ID:       "competitors",
					Type:     QuestionTypeTextarea,
					Label:    "Who are your competitors?",
					Required: true,
				},
				{
					ID:       "competitive_positioning",
					Type:     QuestionTypeTextarea,
					Label:    "How do you position against them?",
					Required: true,
				},
				{
					ID:       "moat",
					Type:     QuestionTypeMultiSelect,
					Label:    "What's defensible over time?",
					Required: true,
					Options: []QuestionOption{
						{Value: "brand", Label: "Brand"},
						{Value: "network_effects", Label: "Network effects"},
						{Value: "switching_costs", Label: "Switching costs"},
						{Value: "proprietary_tech", Label: "Proprietary technology"},
						{Value: "data", Label: "Data advantage"},
						{Value: "relationships", Label: "Relationships / distribution"},
					},
				},
				{
					ID:       "go_to_market",
					Type:     QuestionTypeTextarea,
					Label:    "How will you launch and grow?",
					Required: true,
				},
			},
		},
		{
			ID:               "team_funding",
			Title:            "Team & Funding",
			Description:      "Who's building this and with what.",
			EstimatedMinutes: 6,
			Questions: []Question{
				{
					ID:       "founding_team",
					Type:     QuestionTypeTextarea,
					Label:    "Who's on the founding team?",
					Required: true,
				},
				{
					ID:       "team_size",
					Type:     QuestionTypeSelect,
					Label:    "How big is the team?",
					Required: true,
					Options: []QuestionOption{
						{Value: "solo", Label: "Just me"},
						{Value: "2_5", Label: "2-5 people"},
						{Value: "6_10", Label: "6-10 people"},
						{Value: "11_plus", Label: "11 or more"},
					},
				},
				{
					ID:    "key_hires",
					Type:  QuestionTypeTextarea,
					Label: "Key hires you need (optional)",
				},
				{
					ID:       "funding_status",
					Type:     QuestionTypeSelect,
					Label:    "How are you funded?",
					Required: true,
					Options: []QuestionOption{
						{Value: "bootstrapped", Label: "Bootstrapped"},
						{Value: "raising", Label: "Currently raising"},
						{Value: "funded", Label: "Already raised"},
					},
				},
				{
					ID:                 "funding_needs",
					Type:               QuestionTypeTextarea,
					Label:              "How much are you raising, and for what?",
					Required:           true,
					ConditionalDisplay: &ConditionalDisplay{QuestionID: "funding_status", OneOf: []string{"raising", "funded"}},
				},
				{
					ID:       "biggest_challenges",
					Type:     QuestionTypeTextarea,
					Label:    "What keeps you up at night?",
					Required: true,
				},
			},
		},
	},
}
