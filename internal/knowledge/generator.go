package knowledge

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/sagekit/sage/internal/llm"
)

// Generator produces a DomainPack for a detected domain.
type Generator interface {
	Generate(ctx context.Context, domain string) (*DomainPack, error)
}

// TemplateGenerator is the deterministic offline Generator.
type TemplateGenerator struct{}

// Generate returns the template pack for the domain. It never fails.
func (TemplateGenerator) Generate(_ context.Context, domain string) (*DomainPack, error) {
	return Template(domain), nil
}

// LLMGenerator builds domain packs with four schema-validated model calls
// (taxonomy, glossary, question bank, tool recipes). Callers are expected to
// fall back to Template on any error; the generator itself does not hide
// failures.
type LLMGenerator struct {
	provider llm.Provider
	log      *zap.Logger

	// MaxTokens per call. Zero means a 2048-token default.
	MaxTokens int
}

// NewLLMGenerator creates an LLM-backed Generator.
func NewLLMGenerator(provider llm.Provider, log *zap.Logger) *LLMGenerator {
	if log == nil {
		log = zap.NewNop()
	}
	return &LLMGenerator{provider: provider, log: log}
}

const generatorSystemPrompt = "You are a curriculum designer with deep expertise across technical fields. " +
	"You produce precise, well-structured learning material as JSON matching the requested schema exactly."

// Generate builds a full pack for the domain. The question bank and tool
// recipes are optional extras: if their calls fail, the pack is still
// returned with those sections empty, matching how much of the pipeline can
// run without them. Taxonomy or glossary failure fails the whole pack.
func (g *LLMGenerator) Generate(ctx context.Context, domain string) (*DomainPack, error) {
	taxonomy, err := g.generateTaxonomy(ctx, domain)
	if err != nil {
		return nil, fmt.Errorf("generate taxonomy: %w", err)
	}

	glossary, err := g.generateGlossary(ctx, domain)
	if err != nil {
		return nil, fmt.Errorf("generate glossary: %w", err)
	}

	pack := &DomainPack{
		Domain:   domain,
		Taxonomy: taxonomy,
		Glossary: glossary,
		Version:  "1.0-dynamic",
	}

	if questions, err := g.generateQuestions(ctx, domain, taxonomy); err != nil {
		g.log.Warn("question bank generation failed, continuing without",
			zap.String("domain", domain), zap.Error(err))
	} else {
		pack.QuestionBank = questions
	}

	if recipes, err := g.generateRecipes(ctx, domain); err != nil {
		g.log.Warn("tool recipe generation failed, continuing without",
			zap.String("domain", domain), zap.Error(err))
	} else {
		pack.ToolRecipes = recipes
	}

	if err := Validate(pack); err != nil {
		return nil, err
	}
	return pack, nil
}

func (g *LLMGenerator) maxTokens() int {
	if g.MaxTokens > 0 {
		return g.MaxTokens
	}
	return 2048
}

func (g *LLMGenerator) call(ctx context.Context, schema *llm.Schema, prompt string, out any) error {
	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      generatorSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:      schema,
		MaxTokens:   g.maxTokens(),
		Temperature: 0.7,
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Content, out); err != nil {
		return fmt.Errorf("parse %s response: %w", schema.Name, err)
	}
	return nil
}

func (g *LLMGenerator) generateTaxonomy(ctx context.Context, domain string) ([]Concept, error) {
	prompt := fmt.Sprintf(
		"Create a learning taxonomy for %q: 8-10 core concepts forming a prerequisite DAG. "+
			"Use snake_case ids, set level 0 for foundations, rate importance 1-10, and mark the "+
			"2-3 concepts nearly every question in this domain touches as core.", domain)

	var out struct {
		Concepts []Concept `json:"concepts"`
	}
	if err := g.call(ctx, TaxonomySchema, prompt, &out); err != nil {
		return nil, err
	}
	return out.Concepts, nil
}

func (g *LLMGenerator) generateGlossary(ctx context.Context, domain string) (map[string]string, error) {
	prompt := fmt.Sprintf(
		"Create a glossary of 15-20 essential %q terms. Keep each definition under 100 characters.", domain)

	var out struct {
		Entries []struct {
			Term       string `json:"term"`
			Definition string `json:"definition"`
		} `json:"entries"`
	}
	if err := g.call(ctx, GlossarySchema, prompt, &out); err != nil {
		return nil, err
	}

	glossary := make(map[string]string, len(out.Entries))
	for _, e := range out.Entries {
		glossary[e.Term] = e.Definition
	}
	return glossary, nil
}

func (g *LLMGenerator) generateQuestions(ctx context.Context, domain string, taxonomy []Concept) ([]Question, error) {
	ids := make([]string, len(taxonomy))
	for i, c := range taxonomy {
		ids[i] = c.ID
	}
	idsJSON, _ := json.Marshal(ids)

	prompt := fmt.Sprintf(
		"Create 5 diagnostic multiple-choice questions for %q skill assessment, each with exactly "+
			"4 options. concept_id must be one of: %s.", domain, idsJSON)

	var out struct {
		Questions []Question `json:"questions"`
	}
	if err := g.call(ctx, QuestionBankSchema, prompt, &out); err != nil {
		return nil, err
	}
	return out.Questions, nil
}

func (g *LLMGenerator) generateRecipes(ctx context.Context, domain string) ([]Recipe, error) {
	prompt := fmt.Sprintf(
		"Create 3 tech stack recommendations for %q: one each for beginner, intermediate, and "+
			"advanced practitioners. List each stack's components as role/tool pairs.", domain)

	var out struct {
		Recipes []struct {
			Name       string `json:"name"`
			Level      string `json:"level"`
			Components []struct {
				Role string `json:"role"`
				Tool string `json:"tool"`
			} `json:"components"`
			Pros []string `json:"pros"`
			Cons []string `json:"cons"`
		} `json:"recipes"`
	}
	if err := g.call(ctx, RecipesSchema, prompt, &out); err != nil {
		return nil, err
	}

	recipes := make([]Recipe, len(out.Recipes))
	for i, r := range out.Recipes {
		components := make(map[string]string, len(r.Components))
		for _, c := range r.Components {
			components[c.Role] = c.Tool
		}
		recipes[i] = Recipe{
			Name:       r.Name,
			Level:      r.Level,
			Components: components,
			Pros:       r.Pros,
			Cons:       r.Cons,
		}
	}
	return recipes, nil
}
