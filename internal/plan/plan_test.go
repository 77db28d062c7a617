package plan

import (
	"strings"
	"testing"

	"github.com/sagekit/sage/internal/classify"
	"github.com/sagekit/sage/internal/knowledge"
	"github.com/sagekit/sage/internal/signal"
)

func TestGenerateStepTemplates(t *testing.T) {
	tests := []struct {
		intent    classify.IntentType
		wantSteps int
	}{
		{classify.IntentDesign, 8},
		{classify.IntentImplementation, 8},
		{classify.IntentLearnPath, 8},
		{classify.IntentEvaluation, 5},
		{classify.IntentOptimization, 6},
		{classify.IntentExplain, 4},
		{classify.IntentCompare, 4},
		{classify.IntentTroubleshoot, 4},
	}
	for _, tt := range tests {
		p := Generate(classify.Intent{Type: tt.intent}, nil, signal.DefaultProfile(), nil)
		if len(p.Steps) != tt.wantSteps {
			t.Errorf("%s: steps = %d, want %d", tt.intent, len(p.Steps), tt.wantSteps)
		}
	}
}

func TestGenerateOptionsFromPack(t *testing.T) {
	pack := knowledge.RAGPack()
	p := Generate(classify.Intent{Type: classify.IntentDesign}, pack, signal.DefaultProfile(), nil)
	if len(p.Options) != len(pack.ToolRecipes) {
		t.Fatalf("options = %d, want %d", len(p.Options), len(pack.ToolRecipes))
	}
	if p.Options[0].Name != pack.ToolRecipes[0].Name {
		t.Errorf("options not carried over verbatim")
	}
}

func TestGenerateTradeoffs(t *testing.T) {
	intent := classify.Intent{Type: classify.IntentOptimization}
	profile := signal.DefaultProfile()

	p := Generate(intent, nil, profile, map[string]string{"cost_priority": "high"})
	if len(p.Tradeoffs) != 1 || p.Tradeoffs[0].Dimension != "cost vs performance" {
		t.Fatalf("tradeoffs = %+v, want only cost vs performance", p.Tradeoffs)
	}
	if !strings.Contains(p.Tradeoffs[0].Recommendation, "basic") {
		t.Errorf("tier-1 recommendation = %q, want the basic setup", p.Tradeoffs[0].Recommendation)
	}

	profile.ExperienceLevel = 3
	p = Generate(intent, nil, profile, map[string]string{"cost_priority": "high"})
	if !strings.Contains(p.Tradeoffs[0].Recommendation, "production") {
		t.Errorf("tier-3 recommendation = %q, want the production setup", p.Tradeoffs[0].Recommendation)
	}

	// Speed-vs-quality needs both latency and quality priorities.
	p = Generate(intent, nil, profile, map[string]string{"latency_priority": "high"})
	if len(p.Tradeoffs) != 0 {
		t.Errorf("latency alone produced %+v", p.Tradeoffs)
	}
	p = Generate(intent, nil, profile, map[string]string{
		"latency_priority": "high",
		"quality_priority": "high",
	})
	if len(p.Tradeoffs) != 1 || p.Tradeoffs[0].Dimension != "speed vs quality" {
		t.Errorf("tradeoffs = %+v, want speed vs quality", p.Tradeoffs)
	}
}

func TestGenerateExplanationStyle(t *testing.T) {
	profile := signal.Profile{ExperienceLevel: 0}
	p := Generate(classify.Intent{Type: classify.IntentExplain}, nil, profile, nil)
	if !strings.Contains(p.ExplanationStyle, "beginner") {
		t.Errorf("style = %q", p.ExplanationStyle)
	}
}
