package mastery

import (
	"testing"

	"github.com/sagekit/sage/internal/knowledge"
)

func TestDiagnoseUpdatesMastery(t *testing.T) {
	pack := knowledge.RAGPack()
	levels := map[string]float64{
		"rag_basics": 0.3,
		"chunking":   0.3,
		"retrieval":  0.3,
	}
	// Bank order: q1 rag_basics (correct=0), q2 chunking (correct=1),
	// q3 retrieval (correct=2). Answer the first two right, the third wrong.
	oracle := &ScriptedOracle{Answers: []int{0, 1, 0}}

	updated, records := Diagnose(pack, levels, oracle)

	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	if !records[0].Correct || !records[1].Correct || records[2].Correct {
		t.Errorf("correctness = %v %v %v, want true true false",
			records[0].Correct, records[1].Correct, records[2].Correct)
	}
	if got := updated["rag_basics"]; !approx(got, 0.45) {
		t.Errorf("rag_basics = %v, want 0.45", got)
	}
	if got := updated["retrieval"]; !approx(got, 0.2) {
		t.Errorf("retrieval = %v, want 0.2", got)
	}
}

func TestDiagnoseLeavesInputUntouched(t *testing.T) {
	pack := knowledge.RAGPack()
	levels := map[string]float64{
		"rag_basics": 0.3,
		"chunking":   0.3,
		"retrieval":  0.3,
	}

	updated, _ := Diagnose(pack, levels, &ScriptedOracle{Answers: []int{0, 1, 2}})

	for id, score := range levels {
		if !approx(score, 0.3) {
			t.Errorf("input %s = %v, want 0.3 (must not be modified)", id, score)
		}
	}
	if approx(updated["rag_basics"], levels["rag_basics"]) {
		t.Errorf("updated rag_basics = %v, want a nudged copy", updated["rag_basics"])
	}
}

func TestDiagnoseSkipsStrongConcepts(t *testing.T) {
	pack := knowledge.RAGPack()
	levels := map[string]float64{
		"rag_basics": 0.9,
		"chunking":   0.3,
		"retrieval":  0.9,
		"evaluation": 0.2,
	}
	oracle := &ScriptedOracle{Answers: []int{1, 1}}

	_, records := Diagnose(pack, levels, oracle)

	if len(records) != 2 {
		t.Fatalf("records = %d, want 2 (chunking and evaluation only)", len(records))
	}
	if records[0].ConceptID != "chunking" || records[1].ConceptID != "evaluation" {
		t.Errorf("concepts = %s, %s", records[0].ConceptID, records[1].ConceptID)
	}
}

func TestDiagnoseCapsAtThreeQuestions(t *testing.T) {
	pack := knowledge.RAGPack()
	levels := map[string]float64{}
	for _, c := range pack.Taxonomy {
		levels[c.ID] = 0.1
	}
	_, records := Diagnose(pack, levels, NewRandomOracle(42))
	if len(records) != 3 {
		t.Errorf("records = %d, want 3", len(records))
	}
}

func TestDiagnoseMasteryStaysInRange(t *testing.T) {
	pack := knowledge.RAGPack()
	allWrong := &ScriptedOracle{Answers: []int{3, 3, 3}}

	levels := map[string]float64{"rag_basics": 0.05, "chunking": 0.0, "retrieval": 0.02}
	updated, _ := Diagnose(pack, levels, allWrong)
	for id, v := range updated {
		if v < 0 || v > 1 {
			t.Errorf("%s = %v, out of [0,1]", id, v)
		}
	}

	levels = map[string]float64{"rag_basics": 0.45, "chunking": 0.49, "retrieval": 0.4}
	updated, _ = Diagnose(pack, levels, &ScriptedOracle{Answers: []int{0, 1, 2}})
	for id, v := range updated {
		if v < 0 || v > 1 {
			t.Errorf("%s = %v, out of [0,1]", id, v)
		}
	}
}
