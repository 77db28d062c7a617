// Package advisor recommends concrete tool choices (embedding models,
// rerankers, evaluation harnesses) gated by the user's experience tier and
// constraints.
package advisor

import "github.com/sagekit/sage/internal/signal"

// Advice is one recommended tool with its cost and latency trade-offs.
type Advice struct {
	Category    string
	Name        string
	Pros        []string
	Cons        []string
	Cost        string
	Latency     string
	WhenToUse   string
	Metrics     []string
	SuitableFor []int
}

var embeddingOptions = []Advice{
	{
		Category:    "embedding",
		Name:        "OpenAI text-embedding-3-small",
		Pros:        []string{"fast", "cheap", "simple API"},
		Cons:        []string{"middling Korean performance", "external dependency"},
		Cost:        "low ($0.02/1M tokens)",
		Latency:     "low (~100ms)",
		SuitableFor: []int{0, 1},
	},
	{
		Category:    "embedding",
		Name:        "multilingual-e5-large",
		Pros:        []string{"strong Korean performance", "open source", "self-hostable"},
		Cons:        []string{"large model", "needs a GPU"},
		Cost:        "medium (hosting)",
		Latency:     "medium (~200ms)",
		SuitableFor: []int{1, 2, 3},
	},
	{
		Category:    "embedding",
		Name:        "bge-m3",
		Pros:        []string{"multilingual", "dense+sparse hybrid", "state of the art"},
		Cons:        []string{"heavy compute", "involved setup"},
		Cost:        "high",
		Latency:     "high (~300ms)",
		SuitableFor: []int{2, 3},
	},
}

var rerankOptions = []Advice{
	{
		Category:  "reranking",
		Name:      "cross-encoder (ms-marco)",
		Pros:      []string{"high accuracy", "battle-tested model"},
		Cons:      []string{"extra latency (~100ms/doc)", "GPU recommended"},
		Cost:      "medium",
		Latency:   "medium",
		WhenToUse: "accuracy matters and candidate sets stay under 10 documents",
	},
	{
		Category:  "reranking",
		Name:      "LLM-based reranking",
		Pros:      []string{"best accuracy", "understands context"},
		Cons:      []string{"expensive", "slow"},
		Cost:      "high",
		Latency:   "high",
		WhenToUse: "high-value queries needing nuanced judgment",
	},
}

var evalOption = Advice{
	Category: "evaluation",
	Name:     "RAGAS",
	Pros:     []string{"comprehensive metrics", "automatable", "open source"},
	Cons:     []string{"LLM API cost", "setup required"},
	Metrics:  []string{"Faithfulness", "Answer Relevance", "Context Precision", "Context Recall"},
}

// Recommend builds the tool shortlist. Embedding models are filtered to
// the user's experience tier; rerankers appear only past the beginner tier
// and only when quality is an explicit priority; the evaluation harness
// appears past the beginner tier.
func Recommend(profile signal.Profile, constraints map[string]string) []Advice {
	var advice []Advice
	for _, opt := range embeddingOptions {
		if suits(opt, profile.ExperienceLevel) {
			advice = append(advice, opt)
		}
	}
	if profile.ExperienceLevel >= 1 {
		if constraints["quality_priority"] != "" {
			advice = append(advice, rerankOptions...)
		}
		advice = append(advice, evalOption)
	}
	return advice
}

func suits(a Advice, level int) bool {
	for _, l := range a.SuitableFor {
		if l == level {
			return true
		}
	}
	return false
}
