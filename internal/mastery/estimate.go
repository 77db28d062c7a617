// Package mastery estimates per-concept mastery from message signals and
// refines it with a short diagnostic quiz.
package mastery

import (
	"sort"
	"strings"

	"github.com/sagekit/sage/internal/knowledge"
	"github.com/sagekit/sage/internal/signal"
)

// WeakThreshold separates concepts the user likely has not mastered.
const WeakThreshold = 0.5

// baseByExperience maps the coldstart experience tier to a starting
// mastery prior.
var baseByExperience = map[int]float64{
	0: 0.2,
	1: 0.4,
	2: 0.6,
	3: 0.8,
}

// Estimate assigns every taxonomy concept an initial mastery score: the
// experience-tier base plus 0.15 per matched glossary term and 0.10 per
// matched skill, clamped to [0, 1]. A term or skill matches a concept when
// it appears in the concept's subconcept list.
func Estimate(pack *knowledge.DomainPack, sig signal.Signals, experienceLevel int) map[string]float64 {
	base, ok := baseByExperience[experienceLevel]
	if !ok {
		base = 0.4
	}

	levels := make(map[string]float64)
	if pack == nil {
		return levels
	}
	for _, concept := range pack.Taxonomy {
		boost := 0.0
		for _, term := range sig.Terms {
			if hasSubconcept(concept, term) {
				boost += 0.15
			}
		}
		for _, skill := range sig.Skills {
			if hasSubconcept(concept, skill) {
				boost += 0.10
			}
		}
		levels[concept.ID] = clamp(base + boost)
	}
	return levels
}

// Weak returns the IDs of concepts below WeakThreshold, sorted for
// deterministic downstream selection.
func Weak(levels map[string]float64) []string {
	var weak []string
	for id, score := range levels {
		if score < WeakThreshold {
			weak = append(weak, id)
		}
	}
	sort.Strings(weak)
	return weak
}

func hasSubconcept(c knowledge.Concept, name string) bool {
	lower := strings.ToLower(name)
	for _, sub := range c.Subconcepts {
		if strings.ToLower(sub) == lower {
			return true
		}
	}
	return false
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
