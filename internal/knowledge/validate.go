package knowledge

import (
	"fmt"
	"strings"
)

// Validate performs structural checks on a pack's taxonomy: duplicate IDs,
// dangling prerequisites, and prerequisite cycles. Returns a combined error
// describing all problems found, or nil if the taxonomy is a valid DAG.
func Validate(pack *DomainPack) error {
	var errs []string

	idSet := make(map[string]bool, len(pack.Taxonomy))
	for _, c := range pack.Taxonomy {
		if idSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate concept ID: %q", c.ID))
		}
		idSet[c.ID] = true
	}

	for _, c := range pack.Taxonomy {
		for _, prereqID := range c.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("concept %q references nonexistent prerequisite %q", c.ID, prereqID))
			}
		}
	}

	// Cycle check via Kahn's algorithm.
	inDegree := make(map[string]int, len(pack.Taxonomy))
	dependents := make(map[string][]string)
	for _, c := range pack.Taxonomy {
		inDegree[c.ID] = len(c.Prerequisites)
		for _, prereqID := range c.Prerequisites {
			dependents[prereqID] = append(dependents[prereqID], c.ID)
		}
	}

	var queue []string
	for _, c := range pack.Taxonomy {
		if inDegree[c.ID] == 0 {
			queue = append(queue, c.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range dependents[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(pack.Taxonomy) {
		var cycleNodes []string
		for _, c := range pack.Taxonomy {
			if inDegree[c.ID] > 0 {
				cycleNodes = append(cycleNodes, c.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("prerequisite cycle involving: %s", strings.Join(cycleNodes, ", ")))
	}

	for _, q := range pack.QuestionBank {
		if !idSet[q.ConceptID] {
			errs = append(errs, fmt.Sprintf("question %q references nonexistent concept %q", q.ID, q.ConceptID))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			errs = append(errs, fmt.Sprintf("question %q has correct index %d outside its %d options", q.ID, q.CorrectIndex, len(q.Options)))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid domain pack:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
