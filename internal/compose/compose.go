// Package compose renders the final answer from the plan, tool advice and
// gap analysis, then reviews it before delivery.
package compose

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sagekit/sage/internal/advisor"
	"github.com/sagekit/sage/internal/classify"
	"github.com/sagekit/sage/internal/gaps"
	"github.com/sagekit/sage/internal/plan"
	"github.com/sagekit/sage/internal/signal"
)

// Block is one titled section of the answer.
type Block struct {
	Title   string
	Content string
}

// Answer is the composed response before review.
type Answer struct {
	Outline string
	Blocks  []Block
}

// Text renders the answer as one markdown document.
func (a Answer) Text() string {
	var sb strings.Builder
	sb.WriteString(a.Outline)
	for _, b := range a.Blocks {
		sb.WriteString("\n")
		sb.WriteString(b.Content)
	}
	return sb.String()
}

// Evaluation carries the answer's self-assessment.
type Evaluation struct {
	Confidence  float64
	Risks       []string
	NextActions []string
}

// Input bundles everything the composer reads.
type Input struct {
	Question    string
	Intent      classify.Intent
	Profile     signal.Profile
	Constraints map[string]string
	Plan        plan.Plan
	Advice      []advisor.Advice
	Gaps        gaps.Result
}

var experienceLabels = [4]string{"beginner", "introductory", "intermediate", "advanced"}

// Compose builds the six answer blocks (architecture, checklist, tools,
// trade-offs, gaps, next steps) plus the evaluation. The recommended
// architecture is the recipe at index min(experience, len-1), so beginners
// get the simple option and experts the heaviest.
func Compose(in Input) (Answer, Evaluation) {
	level := in.Profile.ExperienceLevel
	if level < 0 {
		level = 0
	}
	if level > 3 {
		level = 3
	}

	outline := fmt.Sprintf("\n# %s Answer\n\n**Question:** %s\n\n**Experience level:** %d (%s)\n%s\n",
		strings.ToUpper(string(in.Intent.Type)), in.Question, level, experienceLabels[level],
		constraintsSummary(in.Constraints))

	blocks := []Block{
		{Title: "Recommended architecture", Content: architectureBlock(in.Plan, level)},
		{Title: "Checklist", Content: checklistBlock(in.Plan)},
		{Title: "Tools", Content: toolsBlock(in.Advice)},
		{Title: "Trade-offs", Content: tradeoffsBlock(in.Plan)},
		{Title: "Knowledge gaps", Content: gapsBlock(in.Gaps)},
		{Title: "Next steps", Content: nextStepsBlock(level)},
	}

	eval := Evaluation{
		Confidence:  0.6,
		NextActions: nextActions(level),
	}
	if in.Intent.Confidence > 0.6 {
		eval.Confidence = 0.8
	}
	if len(in.Plan.Options) == 0 {
		eval.Risks = append(eval.Risks, "no concrete architecture options available")
	}
	if len(in.Advice) == 0 {
		eval.Risks = append(eval.Risks, "tool recommendations are limited")
	}
	// Unknown is display-capped at five, so the breadth signal comes from
	// the pre-cap count.
	if in.Gaps.TotalRanked > 5 {
		eval.Risks = append(eval.Risks, "many concept gaps, incremental study needed")
	}

	return Answer{Outline: outline, Blocks: blocks}, eval
}

func constraintsSummary(constraints map[string]string) string {
	if len(constraints) == 0 {
		return "Constraints: none"
	}
	keys := make([]string, 0, len(constraints))
	for k := range constraints {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, constraints[k]))
	}
	return "Constraints: " + strings.Join(parts, ", ")
}

func architectureBlock(p plan.Plan, level int) string {
	var sb strings.Builder
	sb.WriteString("## Recommended architecture\n\n")
	if len(p.Options) == 0 {
		return sb.String()
	}
	idx := level
	if idx > len(p.Options)-1 {
		idx = len(p.Options) - 1
	}
	opt := p.Options[idx]
	fmt.Fprintf(&sb, "**%s** (%s)\n\n**Components:**\n", opt.Name, opt.Level)

	comps := make([]string, 0, len(opt.Components))
	for name := range opt.Components {
		comps = append(comps, name)
	}
	sort.Strings(comps)
	for _, name := range comps {
		fmt.Fprintf(&sb, "- %s: %s\n", name, opt.Components[name])
	}
	fmt.Fprintf(&sb, "\n**Pros:** %s\n**Cons:** %s\n",
		strings.Join(opt.Pros, ", "), strings.Join(opt.Cons, ", "))
	return sb.String()
}

func checklistBlock(p plan.Plan) string {
	var sb strings.Builder
	sb.WriteString("\n## Step-by-step checklist\n\n")
	for _, step := range p.Steps {
		fmt.Fprintf(&sb, "- [ ] %s\n", step)
	}
	return sb.String()
}

func toolsBlock(advice []advisor.Advice) string {
	var sb strings.Builder
	sb.WriteString("\n## Recommended tools\n\n")
	for i, tool := range advice {
		if i == 3 {
			break
		}
		fmt.Fprintf(&sb, "### %s (%s)\n", tool.Name, tool.Category)
		fmt.Fprintf(&sb, "- **Pros:** %s\n", strings.Join(tool.Pros, ", "))
		fmt.Fprintf(&sb, "- **Cons:** %s\n", strings.Join(tool.Cons, ", "))
		if tool.Cost != "" {
			fmt.Fprintf(&sb, "- **Cost:** %s\n", tool.Cost)
		}
		if tool.WhenToUse != "" {
			fmt.Fprintf(&sb, "- **When to use:** %s\n", tool.WhenToUse)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func tradeoffsBlock(p plan.Plan) string {
	var sb strings.Builder
	sb.WriteString("\n## Key trade-offs\n\n")
	for _, t := range p.Tradeoffs {
		fmt.Fprintf(&sb, "**%s**\n- %s\n- Recommendation: %s\n\n", t.Dimension, t.Description, t.Recommendation)
	}
	return sb.String()
}

func gapsBlock(g gaps.Result) string {
	var sb strings.Builder
	sb.WriteString("\n## Concepts worth knowing\n\n")
	for i, gap := range g.Unknown {
		fmt.Fprintf(&sb, "%d. **%s** (importance: %d/10, mastery: %.1f)\n", i+1, gap.Name, gap.Importance, gap.MasteryScore)
		for j, rt := range gap.RelatedTerms {
			if j == 2 {
				break
			}
			fmt.Fprintf(&sb, "   - *%s*: %s\n", rt.Term, rt.Definition)
		}
		sb.WriteString("\n")
	}
	if len(g.PrereqRecos) > 0 {
		sb.WriteString("\n**Prerequisites to study first:**\n")
		for _, reco := range g.PrereqRecos {
			fmt.Fprintf(&sb, "- %s\n", reco)
		}
	}
	return sb.String()
}

func nextStepsBlock(level int) string {
	var sb strings.Builder
	sb.WriteString("\n## Next steps\n\n")
	for _, action := range nextActions(level) {
		fmt.Fprintf(&sb, "1. %s\n", action)
	}
	return sb.String()
}

func nextActions(level int) []string {
	switch level {
	case 0:
		return []string{
			"study the fundamentals (an introductory RAG tutorial)",
			"follow a minimal RAG example end to end",
			"check understanding with a short quiz",
		}
	case 1:
		return []string{
			"build a prototype on the recommended architecture",
			"test retrieval quality on sample data",
			"run a baseline evaluation with RAGAS",
		}
	default:
		return []string{
			"set up and deploy a production environment",
			"optimize performance and analyze cost",
			"find improvements with A/B tests",
		}
	}
}
