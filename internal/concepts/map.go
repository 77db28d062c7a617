// Package concepts maps a classified question onto the domain taxonomy and
// walks prerequisite edges for the concepts the user is weak on.
package concepts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sagekit/sage/internal/classify"
	"github.com/sagekit/sage/internal/knowledge"
	"github.com/sagekit/sage/internal/signal"
)

// Mapped is one taxonomy concept scored against the question.
type Mapped struct {
	ConceptID     string
	Name          string
	Relevance     float64
	Importance    int
	Level         int
	Prerequisites []string
	MasteryScore  float64
}

// PrereqLink recommends a prerequisite concept with the reason it surfaced.
type PrereqLink struct {
	ConceptID string
	Name      string
	Reason    string
}

// Map is the taxonomy view of a single question.
type Map struct {
	Core          []Mapped
	Prerequisites []PrereqLink
	TotalMatched  int
}

// Build scores every taxonomy concept for relevance to the question and
// keeps the top five by relevance x importance. Relevance is additive over
// boolean indicators: 0.3 when any signal term names a subconcept, 0.2 when
// any skill does, an intent bonus when the concept name matches the intent,
// and 0.1 for concepts the pack flags as core. Concepts scoring zero are
// dropped. Prerequisites of kept concepts with mastery below 0.5 are
// expanded into the chain, first occurrence wins.
func Build(pack *knowledge.DomainPack, sig signal.Signals, intent classify.Intent, levels map[string]float64) Map {
	if pack == nil {
		return Map{}
	}

	var matched []Mapped
	for _, c := range pack.Taxonomy {
		relevance := 0.0
		if anySubconceptMatch(c, sig.Terms) {
			relevance += 0.3
		}
		if anySubconceptMatch(c, sig.Skills) {
			relevance += 0.2
		}
		relevance += intentBonus(intent.Type, c.Name)
		if c.Core {
			relevance += 0.1
		}
		if relevance <= 0 {
			continue
		}

		score, ok := levels[c.ID]
		if !ok {
			score = 0.5
		}
		matched = append(matched, Mapped{
			ConceptID:     c.ID,
			Name:          c.Name,
			Relevance:     min(1.0, relevance),
			Importance:    c.Importance,
			Level:         c.Level,
			Prerequisites: c.Prerequisites,
			MasteryScore:  score,
		})
	}

	// Stable sort keeps taxonomy order for equal scores.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Relevance*float64(matched[i].Importance) >
			matched[j].Relevance*float64(matched[j].Importance)
	})

	core := matched
	if len(core) > 5 {
		core = core[:5]
	}

	var chain []PrereqLink
	seen := make(map[string]bool)
	for _, m := range core {
		if m.MasteryScore >= 0.5 {
			continue
		}
		for _, prereqID := range m.Prerequisites {
			if seen[prereqID] {
				continue
			}
			prereq, ok := pack.ConceptByID(prereqID)
			if !ok {
				continue
			}
			seen[prereqID] = true
			chain = append(chain, PrereqLink{
				ConceptID: prereqID,
				Name:      prereq.Name,
				Reason:    fmt.Sprintf("prerequisite for %s", m.Name),
			})
		}
	}

	return Map{Core: core, Prerequisites: chain, TotalMatched: len(matched)}
}

func intentBonus(intent classify.IntentType, conceptName string) float64 {
	name := strings.ToLower(conceptName)
	switch intent {
	case classify.IntentDesign:
		if strings.Contains(name, "design") || strings.Contains(name, "설계") {
			return 0.2
		}
	case classify.IntentEvaluation:
		if strings.Contains(name, "evaluation") || strings.Contains(name, "평가") {
			return 0.3
		}
	case classify.IntentOptimization:
		if strings.Contains(name, "optimization") || strings.Contains(name, "최적화") {
			return 0.3
		}
	}
	return 0
}

func anySubconceptMatch(c knowledge.Concept, names []string) bool {
	for _, n := range names {
		lower := strings.ToLower(n)
		for _, sub := range c.Subconcepts {
			if strings.ToLower(sub) == lower {
				return true
			}
		}
	}
	return false
}
