// Package signal mines the raw user message for evidence of what the user
// already knows: glossary terms, tool and technique names, and pasted code.
package signal

import (
	"regexp"
	"sort"
	"strings"

	"github.com/sagekit/sage/internal/knowledge"
)

// Signals is the evidence extracted from a single message.
type Signals struct {
	Terms         []string
	Skills        []string
	CodeFragments []string
}

// Empty reports whether the message yielded no terms and no skills. An
// empty signal set triggers the coldstart probe.
func (s Signals) Empty() bool {
	return len(s.Terms) == 0 && len(s.Skills) == 0
}

// techKeywords are tool and technique names recognized regardless of the
// active glossary.
var techKeywords = []string{
	"bm25", "hybrid", "vector", "embedding", "chunking",
	"rerank", "ragas", "llm", "gpt", "kubernetes", "k8s",
	"pinecone", "weaviate", "chroma", "qdrant",
	"vllm", "langchain", "llamaindex",
}

var codeFencePattern = regexp.MustCompile("```[\\s\\S]*?```")

// Extract pulls glossary terms, tech skills and fenced code blocks out of
// the message. Term matching is case-insensitive against the pack glossary;
// terms come back in sorted order so downstream output is stable.
func Extract(message string, pack *knowledge.DomainPack) Signals {
	lower := strings.ToLower(message)

	var terms []string
	if pack != nil {
		for term := range pack.Glossary {
			if strings.Contains(lower, strings.ToLower(term)) {
				terms = append(terms, term)
			}
		}
	}
	sort.Strings(terms)

	var skills []string
	for _, kw := range techKeywords {
		if strings.Contains(lower, kw) {
			skills = append(skills, kw)
		}
	}

	return Signals{
		Terms:         terms,
		Skills:        skills,
		CodeFragments: codeFencePattern.FindAllString(message, -1),
	}
}
