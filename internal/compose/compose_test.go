package compose

import (
	"strings"
	"testing"

	"github.com/sagekit/sage/internal/classify"
	"github.com/sagekit/sage/internal/gaps"
	"github.com/sagekit/sage/internal/knowledge"
	"github.com/sagekit/sage/internal/plan"
	"github.com/sagekit/sage/internal/signal"
)

func sampleInput(level int) Input {
	pack := knowledge.RAGPack()
	intent := classify.Intent{Type: classify.IntentDesign, Confidence: 0.7}
	profile := signal.Profile{ExperienceLevel: level, CodeLang: "python", DeployEnv: "local"}
	return Input{
		Question: "how should I structure retrieval?",
		Intent:   intent,
		Profile:  profile,
		Plan:     plan.Generate(intent, pack, profile, nil),
		Gaps: gaps.Result{Unknown: []gaps.Gap{
			{ConceptID: "retrieval", Name: "Retrieval Strategy", UnknownScore: 0.4, MasteryScore: 0.2, Importance: 10},
		}},
	}
}

func TestComposeArchitecturePick(t *testing.T) {
	tests := []struct {
		level    int
		wantName string
	}{
		{0, "basic_rag"},
		{1, "production_rag"},
		{2, "optimized_rag"},
		{3, "optimized_rag"}, // only three options; index clamps
	}
	for _, tt := range tests {
		answer, _ := Compose(sampleInput(tt.level))
		if !strings.Contains(answer.Blocks[0].Content, tt.wantName) {
			t.Errorf("level %d: architecture block missing %q", tt.level, tt.wantName)
		}
	}
}

func TestComposeSixBlocks(t *testing.T) {
	answer, _ := Compose(sampleInput(1))
	if len(answer.Blocks) != 6 {
		t.Fatalf("blocks = %d, want 6", len(answer.Blocks))
	}
	wantOrder := []string{"Recommended architecture", "Checklist", "Tools", "Trade-offs", "Knowledge gaps", "Next steps"}
	for i, title := range wantOrder {
		if answer.Blocks[i].Title != title {
			t.Errorf("block %d = %q, want %q", i, answer.Blocks[i].Title, title)
		}
	}
}

func TestComposeNextActionsByTier(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "study the fundamentals"},
		{1, "build a prototype"},
		{2, "production environment"},
		{3, "production environment"},
	}
	for _, tt := range tests {
		answer, eval := Compose(sampleInput(tt.level))
		if !strings.Contains(answer.Text(), tt.want) {
			t.Errorf("level %d: next steps missing %q", tt.level, tt.want)
		}
		if len(eval.NextActions) != 3 {
			t.Errorf("level %d: next actions = %d, want 3", tt.level, len(eval.NextActions))
		}
	}
}

func TestComposeConfidenceFromIntent(t *testing.T) {
	in := sampleInput(1)
	_, eval := Compose(in)
	if eval.Confidence != 0.8 {
		t.Errorf("confidence = %v, want 0.8 for intent confidence > 0.6", eval.Confidence)
	}

	in.Intent.Confidence = 0.5
	_, eval = Compose(in)
	if eval.Confidence != 0.6 {
		t.Errorf("confidence = %v, want 0.6 for weak intent", eval.Confidence)
	}
}

func TestComposeRiskFlags(t *testing.T) {
	in := sampleInput(1)
	in.Plan.Options = nil
	in.Advice = nil
	_, eval := Compose(in)
	if len(eval.Risks) != 2 {
		t.Errorf("risks = %v, want missing-options and missing-advice flags", eval.Risks)
	}
}

func TestComposeFlagsManyGaps(t *testing.T) {
	in := sampleInput(1)
	// Six gaps cleared the ranking floor but only five are displayed; the
	// breadth risk keys off the pre-cap count.
	in.Gaps.TotalRanked = 6
	_, eval := Compose(in)

	found := false
	for _, r := range eval.Risks {
		if strings.Contains(r, "many concept gaps") {
			found = true
		}
	}
	if !found {
		t.Errorf("risks = %v, want a many-gaps flag for TotalRanked > 5", eval.Risks)
	}
}

func TestReviewRaisesConfidenceForStructuredText(t *testing.T) {
	answer, eval := Compose(sampleInput(1))
	reviewed := Review(answer, eval)
	// Full quality (long, sectioned, actionable, six blocks):
	// 0.8 * (0.5 + 1.0) = 1.2 → clamped to 0.95.
	if reviewed.Confidence != 0.95 {
		t.Errorf("confidence = %v, want 0.95", reviewed.Confidence)
	}
}

func TestReviewPenalizesShortAnswer(t *testing.T) {
	answer := Answer{Outline: "hi"}
	eval := Evaluation{Confidence: 0.8}
	reviewed := Review(answer, eval)

	if reviewed.Confidence >= 0.7 {
		t.Errorf("confidence = %v, want below 0.7", reviewed.Confidence)
	}
	found := false
	for _, r := range reviewed.Risks {
		if strings.Contains(r, "too short") {
			found = true
		}
	}
	if !found {
		t.Errorf("risks = %v, want a too-short flag", reviewed.Risks)
	}
	// Low confidence appends the two generic follow-ups.
	if len(reviewed.NextActions) != 2 {
		t.Errorf("next actions = %v, want the two generic suggestions", reviewed.NextActions)
	}
}

func TestFooter(t *testing.T) {
	eval := Evaluation{Confidence: 0.8, Risks: []string{"cost considerations may be missing"}}
	footer := Footer(eval)
	if !strings.Contains(footer, "80%") {
		t.Errorf("footer missing confidence percentage: %q", footer)
	}
	if !strings.Contains(footer, "cost considerations") {
		t.Errorf("footer missing risks: %q", footer)
	}
	if !strings.Contains(footer, "follow-up") {
		t.Errorf("footer missing follow-up suggestions: %q", footer)
	}
}
