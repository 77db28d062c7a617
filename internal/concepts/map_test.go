package concepts

import (
	"testing"

	"github.com/sagekit/sage/internal/classify"
	"github.com/sagekit/sage/internal/knowledge"
	"github.com/sagekit/sage/internal/signal"
)

func TestBuildRanksByRelevanceTimesImportance(t *testing.T) {
	pack := knowledge.RAGPack()
	sig := signal.Signals{Skills: []string{"bm25", "chunking"}}
	intent := classify.Intent{Type: classify.IntentExplain}
	levels := map[string]float64{}

	cmap := Build(pack, sig, intent, levels)

	if len(cmap.Core) > 5 {
		t.Fatalf("core = %d concepts, want at most 5", len(cmap.Core))
	}
	for i := 1; i < len(cmap.Core); i++ {
		prev := cmap.Core[i-1].Relevance * float64(cmap.Core[i-1].Importance)
		cur := cmap.Core[i].Relevance * float64(cmap.Core[i].Importance)
		if cur > prev {
			t.Errorf("core[%d] outranks core[%d]: %v > %v", i, i-1, cur, prev)
		}
	}
	// retrieval: skill match 0.2 + core bonus 0.1, importance 10 → top.
	if cmap.Core[0].ConceptID != "retrieval" {
		t.Errorf("top concept = %s, want retrieval", cmap.Core[0].ConceptID)
	}
}

func TestBuildBooleanIndicators(t *testing.T) {
	pack := knowledge.RAGPack()
	// Two terms hitting the same concept must count once, not twice.
	one := Build(pack, signal.Signals{Terms: []string{"bm25"}}, classify.Intent{Type: classify.IntentExplain}, nil)
	two := Build(pack, signal.Signals{Terms: []string{"bm25", "mmr"}}, classify.Intent{Type: classify.IntentExplain}, nil)

	rel := func(m Map, id string) float64 {
		for _, c := range m.Core {
			if c.ConceptID == id {
				return c.Relevance
			}
		}
		t.Fatalf("concept %s not mapped", id)
		return 0
	}
	if rel(one, "retrieval") != rel(two, "retrieval") {
		t.Errorf("term indicator accumulated: %v vs %v", rel(one, "retrieval"), rel(two, "retrieval"))
	}
}

func TestBuildIntentBonus(t *testing.T) {
	pack := knowledge.RAGPack()
	sig := signal.Signals{}

	cmap := Build(pack, sig, classify.Intent{Type: classify.IntentOptimization}, nil)
	found := false
	for _, c := range cmap.Core {
		if c.ConceptID == "optimization" {
			found = true
			if !approx(c.Relevance, 0.3) {
				t.Errorf("optimization relevance = %v, want 0.3 from intent bonus", c.Relevance)
			}
		}
	}
	if !found {
		t.Fatalf("optimization concept not surfaced by intent bonus")
	}
}

func TestBuildPrereqExpansion(t *testing.T) {
	pack := knowledge.RAGPack()
	sig := signal.Signals{Skills: []string{"chunking", "bm25"}}
	levels := map[string]float64{"indexing": 0.2, "retrieval": 0.2}

	cmap := Build(pack, sig, classify.Intent{Type: classify.IntentExplain}, levels)

	want := map[string]bool{"rag_basics": true, "indexing": true}
	if len(cmap.Prerequisites) != len(want) {
		t.Fatalf("prereqs = %+v, want rag_basics and indexing once each", cmap.Prerequisites)
	}
	for _, p := range cmap.Prerequisites {
		if !want[p.ConceptID] {
			t.Errorf("unexpected prerequisite %s", p.ConceptID)
		}
		if p.Reason == "" {
			t.Errorf("prerequisite %s missing reason", p.ConceptID)
		}
	}
}

func TestBuildNilPack(t *testing.T) {
	cmap := Build(nil, signal.Signals{}, classify.Intent{}, nil)
	if cmap.TotalMatched != 0 || len(cmap.Core) != 0 {
		t.Errorf("nil pack: %+v", cmap)
	}
}

func approx(got, want float64) bool {
	diff := got - want
	return diff < 1e-9 && diff > -1e-9
}
