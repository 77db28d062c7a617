package knowledge

import (
	"fmt"
	"strings"
)

// Template builds a deterministic, offline domain pack for any domain name.
// This is the fallback used when no LLM provider is configured or when
// generation fails; two calls with the same domain always produce identical
// packs.
func Template(domain string) *DomainPack {
	slug := Slug(domain)

	return &DomainPack{
		Domain: domain,
		Taxonomy: []Concept{
			{
				ID:          slug + "_basics",
				Name:        domain + " Basics",
				Level:       0,
				Importance:  10,
				Core:        true,
				Subconcepts: []string{"fundamentals", "core_concepts", "terminology"},
			},
			{
				ID:            slug + "_intermediate",
				Name:          domain + " in Practice",
				Level:         1,
				Importance:    8,
				Prerequisites: []string{slug + "_basics"},
				Subconcepts:   []string{"best_practices", "common_patterns", "tools"},
			},
			{
				ID:            slug + "_advanced",
				Name:          "Advanced " + domain,
				Level:         2,
				Importance:    7,
				Prerequisites: []string{slug + "_intermediate"},
				Subconcepts:   []string{"optimization", "architecture", "production"},
			},
		},
		Glossary: map[string]string{
			domain:           "The core ideas and principles behind " + domain,
			"Best Practices": "Approaches the field has converged on after repeated production use",
			"Tools":          "Libraries and utilities commonly used when working in " + domain,
			"Architecture":   "How the parts of a system are arranged and connected",
			"Optimization":   "Techniques for improving performance and efficiency",
		},
		QuestionBank: []Question{
			{
				ID:         "q1",
				ConceptID:  slug + "_basics",
				Difficulty: 1,
				Prompt:     fmt.Sprintf("What is the primary purpose of %s?", domain),
				Options: []string{
					"Solving problems and creating value in its field",
					"Storing raw data",
					"Designing user interfaces",
					"Controlling hardware",
				},
				CorrectIndex: 0,
			},
		},
		ToolRecipes: []Recipe{
			{
				Name:  "starter_" + slug,
				Level: "beginner",
				Components: map[string]string{
					"primary_tool":      "an entry-level tool for " + domain,
					"learning_resource": "official documentation and tutorials",
				},
				Pros: []string{"quick start", "low barrier to entry"},
				Cons: []string{"limited capability", "does not scale"},
			},
		},
		Version: "1.0-template",
	}
}

// Slug lowercases a domain name and replaces spaces, for use in concept and
// recipe identifiers.
func Slug(domain string) string {
	return strings.ReplaceAll(strings.ToLower(domain), " ", "_")
}
