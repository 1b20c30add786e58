package questionnaire

// GTMPlanQuestionnaire drives the intake for a go-to-market plan.
var GTMPlanQuestionnaire = Questionnaire{
	PlanType:              "gtm_plan",
	TotalEstimatedMinutes: 25,
	Steps: []Step{
		{
			ID:               "product",
			Title:            "The Product",
			Description:      "What you're launching and how ready it is.",
			EstimatedMinutes: 4,
			Questions: []Question{
				{
					ID:         "product_name",
					Type:       QuestionTypeText,
					Label:      "What's the product called?",
					Required:   true,
					Validation: &Validation{MaxLength: 120},
				},
				{
					ID:         "product_description",
					Type:       QuestionTypeTextarea,
					Label:      "What does it do, and for whom?",
					Required:   true,
					Validation: &Validation{MinLength: 20},
				},
				{
					ID:       "launch_type",
					Type:     QuestionTypeSelect,
					Label:    "What kind of launch is this?",
					Required: true,
					Options: []QuestionOption{
						{Value: "new_product", Label: "Brand new product"},
						{Value: "new_market", Label: "Existing product, new market"},
						{Value: "relaunch", Label: "Relaunch / repositioning"},
						{Value: "feature_launch", Label: "Major feature launch"},
					},
				},
				{
					ID:       "readiness",
					Type:     QuestionTypeSelect,
					Label:    "How close to launch are you?",
					Required: true,
					Options: []QuestionOption{
						{Value: "concept", Label: "Still a concept"},
						{Value: "development", Label: "In development"},
						{Value: "beta", Label: "In beta"},
						{Value: "soft_launch", Label: "Soft launched"},
						{Value: "ready", Label: "Ready to go"},
					},
				},
			},
		},
		{
			ID:               "audience",
			Title:            "Target Audience",
			Description:      "Who you're selling to and how they buy.",
			EstimatedMinutes: 5,
			Questions: []Question{
				{
					ID:         "primary_persona",
					Type:       QuestionTypeTextarea,
					Label:      "Describe your primary buyer",
					Required:   true,
					Validation: &Validation{MinLength: 20},
				},
				{
					ID:       "buying_journey",
					Type:     QuestionTypeSelect,
					Label:    "How do they make the buying decision?",
					Required: true,
					Options: []QuestionOption{
						{Value: "impulse", Label: "Quick, individual decision"},
						{Value: "considered", Label: "Researched, compares options"},
						{Value: "committee", Label: "Multiple stakeholders involved"},
					},
				},
				{
					ID:       "awareness_level",
					Type:     QuestionTypeSelect,
					Label:    "How aware is the market of solutions like yours?",
					Required: true,
					Options: []QuestionOption{
						{Value: "unaware", Label: "Doesn't know the problem exists"},
						{Value: "problem_aware", Label: "Feels the problem"},
						{Value: "solution_aware", Label: "Knows solutions exist"},
						{Value: "product_aware", Label: "Knows about products like ours"},
					},
				},
				{
					ID:       "geographic_focus",
					Type:     QuestionTypeMultiSelect,
					Label:    "Where are you launching?",
					Required: true,
					Options: []QuestionOption{
						{Value: "local", Label: "Local"},
						{Value: "regional", Label: "Regional"},
						{Value: "national", Label: "National"},
						{Value: "global", Label: "Global"},
					},
				},
			},
		},
		{
			ID:               "competitive",
			Title:            "Competitive Landscape",
			Description:      "Who you're up against.",
			EstimatedMinutes: 4,
			Questions: []Question{
				{
					ID:       "main_competitors",
					Type:     QuestionTypeTextarea,
					Label:    "Who will customers compare you to?",
					Required: true,
				},
				{
					ID:       "competitive_advantage",
					Type:     QuestionTypeTextarea,
					Label:    "Why should they pick you?",
					Required: true,
				},
				{
					ID:       "market_position",
					Type:     QuestionTypeSelect,
					Label:    "How are you positioned?",
					Required: true,
					Options: []QuestionOption{
						{Value: "premium", Label: "Premium"},
						{Value: "mid_market", Label: "Mid-market"},
						{Value: "value", Label: "Value / affordable"},
						{Value: "disruptor", Label: "Disruptor"},
					},
				},
			},
		},
		{
			ID:               "channels",
			Title:            "Channels & Capabilities",
			Description:      "Where you'll show up.",
			EstimatedMinutes: 6,
			Questions: []Question{
				{
					ID:       "primary_channels",
					Type:     QuestionTypeMultiSelect,
					Label:    "Which channels will you lead with?",
					Required: true,
					Options: []QuestionOption{
						{Value: "content_seo", Label: "Content & SEO"},
						{Value: "paid_social", Label: "Paid social"},
						{Value: "paid_search", Label: "Paid search"},
						{Value: "email", Label: "Email marketing"},
						{Value: "social_organic", Label: "Organic social"},
						{Value: "outbound", Label: "Outbound sales"},
						{Value: "partnerships", Label: "Partnerships"},
						{Value: "pr", Label: "PR / earned media"},
						{Value: "events", Label: "Events"},
					},
				},
				{
					ID:       "marketing_experience",
					Type:     QuestionTypeSelect,
					Label:    "How much marketing experience does the team have?",
					Required: true,
					Options: []QuestionOption{
						{Value: "none", Label: "None, learning as we go"},
						{Value: "some", Label: "Some experience"},
						{Value: "experienced", Label: "Experienced marketer on the team"},
					},
				},
				{
					ID:       "has_existing_audience",
					Type:     QuestionTypeYesNo,
					Label:    "Do you have an existing audience?",
					Required: true,
					Options: []QuestionOption{
						{Value: "yes", Label: "Yes"},
						{Value: "no", Label: "No"},
					},
				},
				{
					ID:                 "existing_audience",
					Type:               QuestionTypeTextarea,
					Label:              "Tell us about it (size, where, engagement)",
					Required:           true,
					ConditionalDisplay: &ConditionalDisplay{QuestionID: "has_existing_audience", Value: "yes"},
				},
			},
		},
		{
			ID:               "launch",
			Title:            "Launch Plan",
			Description:      "Timing, budget and success.",
			EstimatedMinutes: 6,
			Questions: []Question{
				{
					ID:       "launch_date",
					Type:     QuestionTypeDate,
					Label:    "When are you launching?",
					Required: true,
				},
				{
					ID:       "budget_range",
					Type:     QuestionTypeSelect,
					Label:    "Marketing budget for the first 3 months?",
					Required: true,
					Options: []QuestionOption{
						{Value: "under_1k", Label: "Under $1,000"},
						{Value: "1k_5k", Label: "$1,000 - $5,000"},
						{Value: "5k_25k", Label: "$5,000 - $25,000"},
						{Value: "25k_plus", Label: "$25,000+"},
					},
				},
				{
					ID:       "success_metrics",
					Type:     QuestionTypeTextarea,
					Label:    "What does success look like after 90 days?",
					Required: true,
				},
				{
					ID:    "constraints",
					Type:  QuestionTypeTextarea,
					Label: "Any constraints we should know about? (optional)",
				},
			},
		},
	},
}
