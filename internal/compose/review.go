package compose

import (
	"fmt"
	"strings"
)

// Review scores the rendered answer on structure and substance and folds
// the score into the evaluation. Quality adds up from four checks: length
// over 500 runes (+0.3), markdown section headers (+0.3), an actionable
// next-steps section (+0.2) and at least four content blocks (+0.2). The
// adjusted confidence is min(0.95, confidence*(0.5+quality)).
func Review(answer Answer, eval Evaluation) Evaluation {
	text := answer.Text()
	lower := strings.ToLower(text)

	quality := 0.0
	if len([]rune(text)) > 500 {
		quality += 0.3
	}
	if strings.Contains(text, "##") {
		quality += 0.3
	}
	if strings.Contains(lower, "next steps") || strings.Contains(lower, "action") {
		quality += 0.2
	}
	if len(answer.Blocks) >= 4 {
		quality += 0.2
	}

	var failureModes []string
	if strings.Contains(lower, "beginner") && strings.Contains(lower, "advanced") {
		failureModes = append(failureModes, "experience level may be inconsistent across sections")
	}
	if !strings.Contains(lower, "cost") {
		failureModes = append(failureModes, "cost considerations may be missing")
	}
	if len([]rune(text)) < 300 {
		failureModes = append(failureModes, "answer too short to be actionable")
	}

	eval.Confidence = min(0.95, eval.Confidence*(0.5+quality))
	if len(failureModes) > 2 {
		failureModes = failureModes[:2]
	}
	eval.Risks = append(eval.Risks, failureModes...)

	if eval.Confidence < 0.7 {
		eval.NextActions = append(eval.NextActions,
			"ask again with a more specific question",
			"verify the concepts with a short quiz",
		)
	}
	return eval
}

// Footer renders the delivery trailer: confidence, risks and follow-up
// suggestions appended after the answer body.
func Footer(eval Evaluation) string {
	var sb strings.Builder
	sb.WriteString("\n\n---\n\n")
	fmt.Fprintf(&sb, "**Confidence:** %.0f%%\n\n", eval.Confidence*100)

	if len(eval.Risks) > 0 {
		sb.WriteString("**Caveats:**\n")
		for _, risk := range eval.Risks {
			fmt.Fprintf(&sb, "- %s\n", risk)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("**Things to try next:**\n")
	sb.WriteString("- ask a more specific follow-up\n")
	sb.WriteString("- dig deeper into one concept\n")
	sb.WriteString("- request a code example\n")
	sb.WriteString("- take a short quiz to check understanding\n")
	return sb.String()
}
