// Package plan builds the answer plan: a step checklist for the detected
// intent, the pack's recipe options and the trade-offs the user's stated
// constraints imply.
package plan

import (
	"fmt"

	"github.com/sagekit/sage/internal/classify"
	"github.com/sagekit/sage/internal/knowledge"
	"github.com/sagekit/sage/internal/signal"
)

// Tradeoff names a tension between two constraint dimensions and how to
// resolve it.
type Tradeoff struct {
	Dimension      string
	Description    string
	Recommendation string
}

// Plan is the full answer plan.
type Plan struct {
	Steps            []string
	Options          []knowledge.Recipe
	Tradeoffs        []Tradeoff
	ExplanationStyle string
}

// explanationStyles maps the experience tier to the voice the answer
// should take.
var explanationStyles = map[int]string{
	0: "beginner (from first principles)",
	1: "introductory (core concepts first)",
	2: "intermediate (hands-on implementation)",
	3: "advanced (optimization and internals)",
}

var buildSteps = []string{
	"1. Define goals and constraints",
	"2. Prepare and preprocess the data",
	"3. Indexing strategy (chunking, metadata, embeddings)",
	"4. Retrieval strategy (BM25/dense/hybrid, choosing k)",
	"5. Reranking (cross-encoder or LLM when needed)",
	"6. Generation step (prompt design, source attribution)",
	"7. Evaluation (RAGAS, LLM-judge, user feedback)",
	"8. Deployment and monitoring",
}

var evaluationSteps = []string{
	"1. Prepare an evaluation dataset (question, answer, reference docs)",
	"2. Pick metrics (faithfulness, relevance, answer quality)",
	"3. Set up RAGAS or an LLM judge",
	"4. Measure baseline performance",
	"5. Run improvement experiments and A/B tests",
}

var optimizationSteps = []string{
	"1. Profile current performance (latency, cost)",
	"2. Identify bottlenecks",
	"3. Apply a caching strategy",
	"4. Batch and async processing",
	"5. Model optimization (quantization, pruning)",
	"6. Infrastructure scaling (autoscaling, load balancing)",
}

var genericSteps = []string{
	"1. Analyze the problem",
	"2. Understand the concepts involved",
	"3. Explore solutions",
	"4. Execute and verify",
}

// Generate assembles the plan. Design, implementation and learn-path
// questions get the full build checklist; evaluation and optimization get
// their own; everything else the generic four steps. Recipe options are
// carried over from the pack unchanged.
func Generate(intent classify.Intent, pack *knowledge.DomainPack, profile signal.Profile, constraints map[string]string) Plan {
	var steps []string
	switch intent.Type {
	case classify.IntentDesign, classify.IntentImplementation, classify.IntentLearnPath:
		steps = buildSteps
	case classify.IntentEvaluation:
		steps = evaluationSteps
	case classify.IntentOptimization:
		steps = optimizationSteps
	default:
		steps = genericSteps
	}

	var options []knowledge.Recipe
	if pack != nil {
		options = append(options, pack.ToolRecipes...)
	}

	var tradeoffs []Tradeoff
	if constraints["latency_priority"] != "" && constraints["quality_priority"] != "" {
		tradeoffs = append(tradeoffs, Tradeoff{
			Dimension:      "speed vs quality",
			Description:    "low latency means skipping the reranker; high quality means a cross-encoder",
			Recommendation: "hybrid approach: answer fast by default, rerank only high-value queries",
		})
	}
	if constraints["cost_priority"] != "" {
		tier := "basic"
		if profile.ExperienceLevel >= 2 {
			tier = "production"
		}
		tradeoffs = append(tradeoffs, Tradeoff{
			Dimension:      "cost vs performance",
			Description:    "embedding model size and LLM choice drive most of the cost",
			Recommendation: fmt.Sprintf("at experience level %d the %s setup is the better fit", profile.ExperienceLevel, tier),
		})
	}

	style, ok := explanationStyles[profile.ExperienceLevel]
	if !ok {
		style = explanationStyles[1]
	}

	return Plan{
		Steps:            steps,
		Options:          options,
		Tradeoffs:        tradeoffs,
		ExplanationStyle: style,
	}
}
