// Package gaps ranks the concepts the user most likely does not know and
// recommends prerequisites worth studying first.
package gaps

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sagekit/sage/internal/concepts"
	"github.com/sagekit/sage/internal/knowledge"
)

// TermDef is a glossary entry attached to a gap, definition truncated for
// display.
type TermDef struct {
	Term       string
	Definition string
}

// Gap is one likely-unknown concept with its ranking score.
type Gap struct {
	ConceptID     string
	Name          string
	UnknownScore  float64
	MasteryScore  float64
	Importance    int
	RelatedTerms  []TermDef
	Prerequisites []string
}

// Result holds the ranked gaps and prerequisite recommendations.
// TotalRanked counts every gap that cleared the score floor, including the
// ones the display cap trimmed off Unknown.
type Result struct {
	Unknown     []Gap
	PrereqRecos []string
	TotalRanked int
}

const (
	scoreFloor   = 0.1
	maxGaps      = 5
	maxRelated   = 3
	maxRecos     = 3
	defCutoffLen = 100
)

// Mine scores each mapped core concept with
//
//	unknown_score = relevance * (importance/10) * (1 - mastery) * novelty
//
// where novelty is 1.0 for concepts never seen before and 0.5 otherwise.
// Concepts scoring at or below 0.1 are dropped; the rest are ranked
// descending and capped at five. Prerequisite recommendations come from
// gaps with mastery below 0.4, deduplicated in order and capped at three.
func Mine(pack *knowledge.DomainPack, cmap concepts.Map, seenTerms []string) Result {
	if pack == nil {
		return Result{}
	}

	seen := make(map[string]bool, len(seenTerms))
	for _, t := range seenTerms {
		seen[t] = true
	}

	var unknown []Gap
	for _, m := range cmap.Core {
		novelty := 1.0
		if seen[m.ConceptID] {
			novelty = 0.5
		}
		score := m.Relevance * (float64(m.Importance) / 10) * (1 - m.MasteryScore) * novelty
		if score <= scoreFloor {
			continue
		}

		concept, ok := pack.ConceptByID(m.ConceptID)
		if !ok {
			continue
		}
		unknown = append(unknown, Gap{
			ConceptID:     m.ConceptID,
			Name:          concept.Name,
			UnknownScore:  score,
			MasteryScore:  m.MasteryScore,
			Importance:    m.Importance,
			RelatedTerms:  relatedTerms(pack, concept),
			Prerequisites: concept.Prerequisites,
		})
	}

	sort.SliceStable(unknown, func(i, j int) bool {
		return unknown[i].UnknownScore > unknown[j].UnknownScore
	})
	totalRanked := len(unknown)
	if len(unknown) > maxGaps {
		unknown = unknown[:maxGaps]
	}

	var recos []string
	dedup := make(map[string]bool)
	for _, g := range unknown {
		if g.MasteryScore >= 0.4 {
			continue
		}
		for _, prereqID := range g.Prerequisites {
			prereq, ok := pack.ConceptByID(prereqID)
			if !ok {
				continue
			}
			reco := fmt.Sprintf("%s (prerequisite for %s)", prereq.Name, g.Name)
			if dedup[reco] {
				continue
			}
			dedup[reco] = true
			recos = append(recos, reco)
		}
	}
	if len(recos) > maxRecos {
		recos = recos[:maxRecos]
	}

	return Result{Unknown: unknown, PrereqRecos: recos, TotalRanked: totalRanked}
}

// relatedTerms resolves a concept's subconcepts against the glossary.
// Subconcept IDs are snake_case while glossary keys are display-cased, so
// both sides are normalized before lookup.
func relatedTerms(pack *knowledge.DomainPack, c knowledge.Concept) []TermDef {
	index := make(map[string]string, len(pack.Glossary))
	for term := range pack.Glossary {
		index[normalize(term)] = term
	}

	var terms []TermDef
	for _, sub := range c.Subconcepts {
		term, ok := index[normalize(sub)]
		if !ok {
			continue
		}
		def := pack.Glossary[term]
		if len([]rune(def)) > defCutoffLen {
			def = string([]rune(def)[:defCutoffLen]) + "..."
		}
		terms = append(terms, TermDef{Term: term, Definition: def})
		if len(terms) == maxRelated {
			break
		}
	}
	return terms
}

func normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	return s
}
