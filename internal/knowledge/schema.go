package knowledge

import "github.com/sagekit/sage/internal/llm"

// TaxonomySchema constrains the generated concept taxonomy.
var TaxonomySchema = &llm.Schema{
	Name:        "domain-taxonomy",
	Description: "A learning taxonomy of 8-10 core concepts for a technical domain",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"concepts": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "snake_case concept identifier",
						},
						"name": map[string]any{
							"type":        "string",
							"description": "Human-readable concept name",
						},
						"level": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Depth in the learning path, 0 = foundation",
						},
						"importance": map[string]any{
							"type":    "integer",
							"minimum": 1,
							"maximum": 10,
						},
						"core": map[string]any{
							"type":        "boolean",
							"description": "True for the 2-3 concepts nearly every question in this domain touches",
						},
						"prerequisites": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"subconcepts": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Fine-grained terms and techniques under this concept",
						},
					},
					"required":             []any{"id", "name", "level", "importance", "core", "prerequisites", "subconcepts"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"concepts"},
		"additionalProperties": false,
	},
}

// GlossarySchema constrains the generated term glossary.
var GlossarySchema = &llm.Schema{
	Name:        "domain-glossary",
	Description: "15-20 essential terms with one-sentence definitions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"entries": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"term": map[string]any{"type": "string"},
						"definition": map[string]any{
							"type":        "string",
							"description": "Definition in at most 100 characters",
						},
					},
					"required":             []any{"term", "definition"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"entries"},
		"additionalProperties": false,
	},
}

// QuestionBankSchema constrains the generated diagnostic questions.
var QuestionBankSchema = &llm.Schema{
	Name:        "domain-questions",
	Description: "5 diagnostic multiple-choice questions for skill assessment",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{"type": "string"},
						"concept_id": map[string]any{
							"type":        "string",
							"description": "ID of a concept from the taxonomy",
						},
						"difficulty": map[string]any{
							"type":    "integer",
							"minimum": 1,
							"maximum": 3,
						},
						"prompt": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 answer options",
						},
						"correct_index": map[string]any{
							"type":    "integer",
							"minimum": 0,
							"maximum": 3,
						},
					},
					"required":             []any{"id", "concept_id", "difficulty", "prompt", "options", "correct_index"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// RecipesSchema constrains the generated tool recipes.
var RecipesSchema = &llm.Schema{
	Name:        "domain-recipes",
	Description: "3 tech stack recommendations (beginner, intermediate, advanced)",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"recipes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{"type": "string"},
						"level": map[string]any{
							"type": "string",
							"enum": []any{"beginner", "intermediate", "advanced"},
						},
						"components": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"role": map[string]any{"type": "string"},
									"tool": map[string]any{"type": "string"},
								},
								"required":             []any{"role", "tool"},
								"additionalProperties": false,
							},
						},
						"pros": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"cons": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required":             []any{"name", "level", "components", "pros", "cons"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"recipes"},
		"additionalProperties": false,
	},
}
