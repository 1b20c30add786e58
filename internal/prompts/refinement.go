package prompts

import (
	"fmt"
	"strings"
	"time"
)

const RefinementSystemPrompt = `You are a helpful business advisor refining a section of a business plan or go-to-market plan based on user feedback.

Your task is to rewrite the section while:
1. Incorporating ALL of the user's feedback
2. Maintaining the same overall structure and format
3. Keeping the quality high and content specific
4. Preserving any good elements from the original that weren't mentioned in feedback

Write in second person ("You should..." / "Your business...").
Use simple, clear language.
Format with markdown (headers, bullet points, numbered lists, tables) for easy scanning.
If the original contains tables, preserve proper markdown table syntax:
| Column 1 | Column 2 |
|----------|----------|
| Value 1  | Value 2  |

Return ONLY the refined content as markdown text, not JSON.`

// BuildRefinementPrompt renders the user prompt for a single-section
// rewrite. businessContext is optional supporting context from the rest of
// the plan.
func BuildRefinementPrompt(sectionTitle, currentContent, feedback, businessContext string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Section Being Refined\n**%s**\n\n", sectionTitle)
	fmt.Fprintf(&b, "## Current Content\n%s\n\n", currentContent)
	fmt.Fprintf(&b, "## User's Feedback\n%s\n\n", feedback)
	if businessContext != "" {
		fmt.Fprintf(&b, "## Business Context\n%s\n\n", businessContext)
	}
	b.WriteString(`## Task
Rewrite this section to address the user's feedback while maintaining quality. Keep the same general structure but make the requested improvements.

Return ONLY the refined markdown content.`)
	return b.String()
}

const MilestoneExtractionSystemPrompt = `You are an assistant that extracts actionable milestones from business plans.

Given the milestones and action items sections of a business plan, extract specific, measurable milestones that the founder should track.

For each milestone, provide:
- title: A short, action-oriented title (e.g., "Launch MVP", "Reach 100 customers")
- description: A brief description of what success looks like
- target_date: An ISO date string (estimate based on their timeline)
- category: One of "revenue", "product", "marketing", "operations", "hiring", "other"
- priority: 1 (high), 2 (medium), or 3 (low)

Return a JSON array of milestone objects. Extract 8-12 meaningful milestones.`

// BuildMilestoneExtractionPrompt renders the user prompt for milestone
// extraction at finalization time. The current date anchors the model's
// relative-date estimates.
func BuildMilestoneExtractionPrompt(today time.Time, milestonesSection, actionItems string) string {
	return fmt.Sprintf(`
Extract milestones from this business plan. Today's date is %s.

## Milestones Section:
%s

## Action Items:
%s

Return a JSON array of 8-12 milestones with: title, description, target_date (ISO string, estimate relative to today), category (revenue|product|marketing|operations|hiring|other), priority (1=high, 2=medium, 3=low).
`, today.Format("2006-01-02"), milestonesSection, actionItems)
}
