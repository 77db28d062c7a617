package mastery

import (
	"testing"

	"github.com/sagekit/sage/internal/knowledge"
	"github.com/sagekit/sage/internal/signal"
)

func TestEstimateBaseMonotone(t *testing.T) {
	pack := knowledge.RAGPack()
	prev := -1.0
	for tier := 0; tier <= 3; tier++ {
		levels := Estimate(pack, signal.Signals{}, tier)
		got := levels["rag_basics"]
		if got <= prev {
			t.Errorf("tier %d: mastery %v not greater than tier %d's %v", tier, got, tier-1, prev)
		}
		prev = got
	}
}

func TestEstimateUnknownTierDefaults(t *testing.T) {
	pack := knowledge.RAGPack()
	levels := Estimate(pack, signal.Signals{}, 7)
	if got := levels["rag_basics"]; got != 0.4 {
		t.Errorf("unknown tier base = %v, want 0.4", got)
	}
}

func TestEstimateBoosts(t *testing.T) {
	pack := knowledge.RAGPack()
	sig := signal.Signals{
		Terms:  []string{"BM25"},      // matches retrieval's "bm25" subconcept
		Skills: []string{"chunking"},  // matches indexing's subconcept
	}
	levels := Estimate(pack, sig, 1)

	if got := levels["retrieval"]; !approx(got, 0.55) {
		t.Errorf("retrieval = %v, want 0.55 (base 0.4 + term 0.15)", got)
	}
	if got := levels["indexing"]; !approx(got, 0.5) {
		t.Errorf("indexing = %v, want 0.50 (base 0.4 + skill 0.10)", got)
	}
	if got := levels["generation"]; !approx(got, 0.4) {
		t.Errorf("generation = %v, want untouched base 0.4", got)
	}
}

func TestEstimateClamped(t *testing.T) {
	pack := knowledge.RAGPack()
	sig := signal.Signals{
		Terms:  []string{"similarity_search", "bm25", "hybrid_search", "mmr"},
		Skills: []string{"bm25", "mmr"},
	}
	levels := Estimate(pack, sig, 3)
	if got := levels["retrieval"]; got != 1.0 {
		t.Errorf("retrieval = %v, want clamped 1.0", got)
	}
}

func approx(got, want float64) bool {
	diff := got - want
	return diff < 1e-9 && diff > -1e-9
}

func TestWeakSortedAndThresholded(t *testing.T) {
	levels := map[string]float64{"c": 0.49, "a": 0.2, "b": 0.5, "d": 0.9}
	got := Weak(levels)
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("Weak = %v, want [a c]", got)
	}
}
