package questionnaire

// Static field mapping used to seed a GTM plan questionnaire from a
// completed business plan. Only populated source fields map over;
// categorical answers go through explicit value remaps.

var geoToGTM = map[string][]string{
	"local":         {"local"},
	"national":      {"national"},
	"international": {"global"},
	"online_global": {"global"},
}

var stageToReadiness = map[string]string{
	"idea":       "concept",
	"validation": "concept",
	"building":   "development",
	"launched":   "soft_launch",
	"scaling":    "ready",
}

// MapBusinessPlanToGTM projects business plan answers onto GTM question ids.
func MapBusinessPlanToGTM(businessAnswers Responses) Responses {
	mapped := Responses{}

	if v, ok := businessAnswers["business_name"].(string); ok && v != "" {
		mapped["product_name"] = v
	}
	if v, ok := businessAnswers["solution"].(string); ok && v != "" {
		mapped["product_description"] = v
	}
	if v, ok := businessAnswers["target_customer"].(string); ok && v != "" {
		mapped["primary_persona"] = v
	}
	if v, ok := businessAnswers["competitors"].(string); ok && v != "" {
		mapped["main_competitors"] = v
	}
	if v, ok := businessAnswers["unique_value"].(string); ok && v != "" {
		mapped["competitive_advantage"] = v
	}
	if v, ok := businessAnswers["geographic_focus"].(string); ok && v != "" {
		if remapped, found := geoToGTM[v]; found {
			mapped["geographic_focus"] = remapped
		} else {
			mapped["geographic_focus"] = []string{"national"}
		}
	}
	if v, ok := businessAnswers["business_stage"].(string); ok && v != "" {
		if readiness, found := stageToReadiness[v]; found {
			mapped["readiness"] = readiness
		} else {
			mapped["readiness"] = "concept"
		}
	}

	return mapped
}

type ImportableField struct {
	GTMField string `json:"gtm_field"`
	Label    string `json:"label"`
	Value    string `json:"value"`
}

// ImportableFields lists the populated business plan fields an import would
// carry over, truncated for display.
func ImportableFields(businessAnswers Responses) []ImportableField {
	fields := []ImportableField{}

	add := func(sourceID, gtmField, label string) {
		v, ok := businessAnswers[sourceID].(string)
		if !ok || v == "" {
			return
		}
		if len(v) > 100 {
			v = v[:100] + "..."
		}
		fields = append(fields, ImportableField{GTMField: gtmField, Label: label, Value: v})
	}

	add("business_name", "product_name", "Product Name")
	add("solution", "product_description", "Product Description")
	add("target_customer", "primary_persona", "Target Customer")
	add("competitors", "main_competitors", "Competitors")
	add("unique_value", "competitive_advantage", "Competitive Advantage")

	return fields
}
