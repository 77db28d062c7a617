package memory

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sagekit/sage/internal/mastery"
)

func TestRecordTruncatesMessage(t *testing.T) {
	s := NewStore()
	long := strings.Repeat("한", 150)
	s.Record(Interaction{Message: long})

	got := s.History()
	if len(got) != 1 {
		t.Fatalf("history = %d entries", len(got))
	}
	if n := len([]rune(got[0].Message)); n != 100 {
		t.Errorf("message truncated to %d runes, want 100", n)
	}
}

func TestHistoryBounded(t *testing.T) {
	s := NewStore()
	for i := 0; i < 60; i++ {
		s.Record(Interaction{Message: fmt.Sprintf("q%d", i)})
	}
	got := s.History()
	if len(got) != 50 {
		t.Fatalf("history = %d entries, want 50", len(got))
	}
	if got[0].Message != "q10" || got[49].Message != "q59" {
		t.Errorf("oldest = %q, newest = %q", got[0].Message, got[49].Message)
	}
}

func TestSeenTermsDeduplicatedAndBounded(t *testing.T) {
	s := NewStore()
	s.AddSeenTerms("BM25", "Chunking", "BM25", "")
	if got := s.SeenTerms(); len(got) != 2 {
		t.Errorf("seen terms = %v, want BM25 and Chunking once each", got)
	}

	for i := 0; i < 600; i++ {
		s.AddSeenTerms(fmt.Sprintf("term%d", i))
	}
	got := s.SeenTerms()
	if len(got) != 500 {
		t.Fatalf("seen terms = %d, want 500", len(got))
	}
	if got[len(got)-1] != "term599" {
		t.Errorf("newest term = %q", got[len(got)-1])
	}
}

func TestQuizRecords(t *testing.T) {
	s := NewStore()
	s.AddQuizRecords(mastery.QuizRecord{QuestionID: "q1", ConceptID: "chunking", Correct: true})
	got := s.QuizRecords()
	if len(got) != 1 || got[0].QuestionID != "q1" {
		t.Errorf("quiz records = %+v", got)
	}
}
