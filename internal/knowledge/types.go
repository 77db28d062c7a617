// Package knowledge owns the domain pack: the versioned bundle of taxonomy,
// glossary, question bank, and tool recipes that the pipeline personalizes
// against. Packs come from an LLM-backed generator or from a deterministic
// offline template.
package knowledge

// Concept is one node of a domain taxonomy. Prerequisites link concepts
// into a DAG; Subconcepts are the fine-grained terms the signal extractor
// and mastery estimator match against.
type Concept struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Level         int      `json:"level"`
	Importance    int      `json:"importance"` // 1..10
	Core          bool     `json:"core"`       // receives the mapper's fixed relevance bonus
	Prerequisites []string `json:"prerequisites"`
	Subconcepts   []string `json:"subconcepts"`
}

// Question is a diagnostic multiple-choice item tied to one concept.
type Question struct {
	ID           string   `json:"id"`
	ConceptID    string   `json:"concept_id"`
	Difficulty   int      `json:"difficulty"` // 1..3
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// Recipe is a recommended tool/stack configuration at one experience level.
type Recipe struct {
	Name       string            `json:"name"`
	Level      string            `json:"level"` // beginner, intermediate, advanced
	Components map[string]string `json:"components"`
	Pros       []string          `json:"pros"`
	Cons       []string          `json:"cons"`
}

// DomainPack bundles everything the pipeline knows about one subject
// domain. A pack is owned by a single pipeline run after bootstrap and is
// treated as immutable from then on.
type DomainPack struct {
	Domain       string              `json:"domain"`
	Taxonomy     []Concept           `json:"taxonomy"`
	Glossary     map[string]string   `json:"glossary"`
	QuestionBank []Question          `json:"question_bank"`
	ToolRecipes  []Recipe            `json:"tool_recipes"`
	Version      string              `json:"version"`
}

// ConceptByID returns the taxonomy concept with the given ID.
func (p *DomainPack) ConceptByID(id string) (Concept, bool) {
	for _, c := range p.Taxonomy {
		if c.ID == id {
			return c, true
		}
	}
	return Concept{}, false
}
