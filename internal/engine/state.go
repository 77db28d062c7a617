package engine

import (
	"github.com/sagekit/sage/internal/advisor"
	"github.com/sagekit/sage/internal/classify"
	"github.com/sagekit/sage/internal/compose"
	"github.com/sagekit/sage/internal/concepts"
	"github.com/sagekit/sage/internal/gaps"
	"github.com/sagekit/sage/internal/knowledge"
	"github.com/sagekit/sage/internal/mastery"
	"github.com/sagekit/sage/internal/plan"
	"github.com/sagekit/sage/internal/signal"
)

// State is everything the pipeline knows about the current question.
// Stages receive it read-only and publish changes through a Delta.
type State struct {
	Message     string
	Domain      classify.DomainMatch
	Pack        *knowledge.DomainPack
	Signals     signal.Signals
	Profile     signal.Profile
	Constraints map[string]string
	Levels      map[string]float64
	QuizRecords []mastery.QuizRecord
	Intent      classify.Intent
	ConceptMap  concepts.Map
	Plan        plan.Plan
	Advice      []advisor.Advice
	Gaps        gaps.Result
	Answer      compose.Answer
	Eval        compose.Evaluation
	Final       string
}

// Delta is a stage's output: only non-nil fields are merged into the
// state, later stages overwriting earlier ones.
type Delta struct {
	Domain      *classify.DomainMatch
	Pack        *knowledge.DomainPack
	Signals     *signal.Signals
	Profile     *signal.Profile
	Constraints map[string]string
	Levels      map[string]float64
	QuizRecords []mastery.QuizRecord
	Intent      *classify.Intent
	ConceptMap  *concepts.Map
	Plan        *plan.Plan
	Advice      []advisor.Advice
	Gaps        *gaps.Result
	Answer      *compose.Answer
	Eval        *compose.Evaluation
	Final       *string
}

func (s *State) apply(d Delta) {
	if d.Domain != nil {
		s.Domain = *d.Domain
	}
	if d.Pack != nil {
		s.Pack = d.Pack
	}
	if d.Signals != nil {
		s.Signals = *d.Signals
	}
	if d.Profile != nil {
		s.Profile = *d.Profile
	}
	if d.Constraints != nil {
		s.Constraints = d.Constraints
	}
	if d.Levels != nil {
		s.Levels = d.Levels
	}
	if d.QuizRecords != nil {
		s.QuizRecords = append(s.QuizRecords, d.QuizRecords...)
	}
	if d.Intent != nil {
		s.Intent = *d.Intent
	}
	if d.ConceptMap != nil {
		s.ConceptMap = *d.ConceptMap
	}
	if d.Plan != nil {
		s.Plan = *d.Plan
	}
	if d.Advice != nil {
		s.Advice = d.Advice
	}
	if d.Gaps != nil {
		s.Gaps = *d.Gaps
	}
	if d.Answer != nil {
		s.Answer = *d.Answer
	}
	if d.Eval != nil {
		s.Eval = *d.Eval
	}
	if d.Final != nil {
		s.Final = *d.Final
	}
}
