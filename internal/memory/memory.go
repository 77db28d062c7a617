// Package memory keeps the per-user personalization state across runs:
// interaction history, terms already seen and quiz outcomes. Everything is
// bounded so a long-lived session cannot grow without limit.
package memory

import (
	"sync"

	"github.com/sagekit/sage/internal/mastery"
)

const (
	maxHistory   = 50
	maxSeenTerms = 500
)

// Interaction is one answered question, trimmed for storage.
type Interaction struct {
	ID              string   `json:"id"`
	Message         string   `json:"message"`
	Intent          string   `json:"intent"`
	ConceptsCovered []string `json:"concepts_covered"`
	Confidence      float64  `json:"confidence"`
}

// Store is the in-process personalization memory. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	history []Interaction
	seen    []string
	seenSet map[string]bool
	quizzes []mastery.QuizRecord
}

func NewStore() *Store {
	return &Store{seenSet: make(map[string]bool)}
}

// Record appends an interaction, truncating the message to its first 100
// runes. The oldest entry falls off past the history bound.
func (s *Store) Record(in Interaction) {
	if r := []rune(in.Message); len(r) > 100 {
		in.Message = string(r[:100])
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, in)
	if len(s.history) > maxHistory {
		s.history = s.history[len(s.history)-maxHistory:]
	}
}

// AddSeenTerms marks terms as seen, ignoring duplicates. Oldest terms fall
// off past the bound.
func (s *Store) AddSeenTerms(terms ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range terms {
		if t == "" || s.seenSet[t] {
			continue
		}
		s.seenSet[t] = true
		s.seen = append(s.seen, t)
	}
	for len(s.seen) > maxSeenTerms {
		delete(s.seenSet, s.seen[0])
		s.seen = s.seen[1:]
	}
}

// AddQuizRecords appends diagnostic quiz outcomes.
func (s *Store) AddQuizRecords(records ...mastery.QuizRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quizzes = append(s.quizzes, records...)
}

// SeenTerms returns a copy of the seen-term list in insertion order.
func (s *Store) SeenTerms() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.seen))
	copy(out, s.seen)
	return out
}

// History returns a copy of the interaction log, oldest first.
func (s *Store) History() []Interaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Interaction, len(s.history))
	copy(out, s.history)
	return out
}

// QuizRecords returns a copy of the stored quiz outcomes.
func (s *Store) QuizRecords() []mastery.QuizRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]mastery.QuizRecord, len(s.quizzes))
	copy(out, s.quizzes)
	return out
}
