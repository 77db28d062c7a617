// Package engine runs the answer pipeline: sixteen stages from domain
// detection to delivery, three of them conditional, threading a State
// aggregate and a per-session memory through each run.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sagekit/sage/internal/advisor"
	"github.com/sagekit/sage/internal/classify"
	"github.com/sagekit/sage/internal/compose"
	"github.com/sagekit/sage/internal/concepts"
	"github.com/sagekit/sage/internal/gaps"
	"github.com/sagekit/sage/internal/knowledge"
	"github.com/sagekit/sage/internal/mastery"
	"github.com/sagekit/sage/internal/memory"
	"github.com/sagekit/sage/internal/plan"
	"github.com/sagekit/sage/internal/signal"
)

// DefaultKnowledgeTimeout bounds the only I/O stage, pack generation.
const DefaultKnowledgeTimeout = 20 * time.Second

// fallbackAnswer is what the user sees when a stage fails. Raw error text
// never crosses the engine boundary.
const fallbackAnswer = "Sorry, I ran into a problem while preparing your answer. " +
	"Please try asking again, perhaps with a bit more detail."

// StageEvent reports one completed stage to a RunObserved observer.
type StageEvent struct {
	Stage   StageID
	Elapsed time.Duration
	Delta   Delta
}

// Options configures an Engine. Zero values get sane defaults.
type Options struct {
	Oracle           mastery.Oracle
	Memory           *memory.Store
	Logger           *zap.Logger
	KnowledgeTimeout time.Duration
}

// Engine owns one user session: the pack generator, the diagnostic oracle
// and the memory that persists across runs. Not safe for concurrent runs;
// one question at a time.
type Engine struct {
	gen       knowledge.Generator
	oracle    mastery.Oracle
	mem       *memory.Store
	log       *zap.Logger
	timeout   time.Duration
	sessionID string
}

func New(gen knowledge.Generator, opts Options) *Engine {
	if gen == nil {
		gen = knowledge.TemplateGenerator{}
	}
	e := &Engine{
		gen:       gen,
		oracle:    opts.Oracle,
		mem:       opts.Memory,
		log:       opts.Logger,
		timeout:   opts.KnowledgeTimeout,
		sessionID: uuid.NewString(),
	}
	if e.oracle == nil {
		e.oracle = mastery.NewRandomOracle(1)
	}
	if e.mem == nil {
		e.mem = memory.NewStore()
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}
	if e.timeout <= 0 {
		e.timeout = DefaultKnowledgeTimeout
	}
	return e
}

// Memory exposes the session memory, mainly for tests and the CLI.
func (e *Engine) Memory() *memory.Store { return e.mem }

// Run answers one question. Stage failures are logged and replaced with a
// generic fallback answer; the only error returned is context cancellation.
func (e *Engine) Run(ctx context.Context, message string) (string, error) {
	return e.RunObserved(ctx, message, nil)
}

// RunObserved is Run with an observer invoked after every completed stage.
func (e *Engine) RunObserved(ctx context.Context, message string, observe func(StageEvent)) (string, error) {
	st := &State{Message: message}

	for stage := StageDomainDetect; ; {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		start := time.Now()
		delta, err := e.step(ctx, stage, st)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			e.log.Error("stage failed",
				zap.String("session", e.sessionID),
				zap.Stringer("stage", stage),
				zap.Error(err))
			return fallbackAnswer, nil
		}
		st.apply(delta)

		e.log.Debug("stage done",
			zap.String("session", e.sessionID),
			zap.Stringer("stage", stage),
			zap.Duration("elapsed", time.Since(start)))
		if observe != nil {
			observe(StageEvent{Stage: stage, Elapsed: time.Since(start), Delta: delta})
		}

		if stage == StageDeliver {
			return st.Final, nil
		}
		stage = e.next(stage, st)
	}
}

// next routes to the following stage, taking the three conditional
// branches: coldstart when the message yielded no signals, diagnostic when
// three or more concepts look weak, tool advisor for experienced users or
// build-oriented intents.
func (e *Engine) next(stage StageID, st *State) StageID {
	switch stage {
	case StageSignals:
		if st.Signals.Empty() {
			return StageColdstart
		}
		return StageInferLevel
	case StageInferLevel:
		if len(mastery.Weak(st.Levels)) >= 3 {
			return StageDiagnostic
		}
		return StageIntentDetect
	case StagePlan:
		if st.Profile.ExperienceLevel >= 1 || buildIntent(st.Intent.Type) {
			return StageToolAdvisor
		}
		return StageGapMining
	default:
		return stage + 1
	}
}

func buildIntent(t classify.IntentType) bool {
	return t == classify.IntentDesign || t == classify.IntentImplementation || t == classify.IntentOptimization
}

func (e *Engine) step(ctx context.Context, stage StageID, st *State) (Delta, error) {
	switch stage {
	case StageDomainDetect:
		match := classify.DetectDomain(st.Message)
		return Delta{Domain: &match}, nil

	case StageKnowledge:
		return e.generatePack(ctx, st.Domain.Name)

	case StageBootstrap:
		pack := st.Pack
		if pack == nil {
			pack = knowledge.RAGPack()
		}
		if err := knowledge.Validate(pack); err != nil {
			e.log.Warn("generated pack invalid, using template",
				zap.String("domain", st.Domain.Name), zap.Error(err))
			pack = knowledge.Template(st.Domain.Name)
		}
		return Delta{Pack: pack}, nil

	case StageSignals:
		sig := signal.Extract(st.Message, st.Pack)
		profile := signal.DefaultProfile()
		return Delta{
			Signals:     &sig,
			Profile:     &profile,
			Constraints: signal.Constraints(st.Message),
		}, nil

	case StageColdstart:
		profile := signal.Probe(st.Message)
		return Delta{Profile: &profile}, nil

	case StageInferLevel:
		levels := mastery.Estimate(st.Pack, st.Signals, st.Profile.ExperienceLevel)
		e.mem.AddSeenTerms(st.Signals.Terms...)
		return Delta{Levels: levels}, nil

	case StageDiagnostic:
		levels, records := mastery.Diagnose(st.Pack, st.Levels, e.oracle)
		e.mem.AddQuizRecords(records...)
		return Delta{Levels: levels, QuizRecords: records}, nil

	case StageIntentDetect:
		intent := classify.DetectIntent(st.Message)
		return Delta{Intent: &intent}, nil

	case StageConceptMap:
		cmap := concepts.Build(st.Pack, st.Signals, st.Intent, st.Levels)
		return Delta{ConceptMap: &cmap}, nil

	case StagePlan:
		p := plan.Generate(st.Intent, st.Pack, st.Profile, st.Constraints)
		return Delta{Plan: &p}, nil

	case StageToolAdvisor:
		return Delta{Advice: advisor.Recommend(st.Profile, st.Constraints)}, nil

	case StageGapMining:
		result := gaps.Mine(st.Pack, st.ConceptMap, e.mem.SeenTerms())
		return Delta{Gaps: &result}, nil

	case StageCompose:
		answer, eval := compose.Compose(compose.Input{
			Question:    st.Message,
			Intent:      st.Intent,
			Profile:     st.Profile,
			Constraints: st.Constraints,
			Plan:        st.Plan,
			Advice:      st.Advice,
			Gaps:        st.Gaps,
		})
		return Delta{Answer: &answer, Eval: &eval}, nil

	case StageQualityGate:
		eval := compose.Review(st.Answer, st.Eval)
		return Delta{Eval: &eval}, nil

	case StageMemoryWrite:
		var covered []string
		for i, m := range st.ConceptMap.Core {
			if i == 3 {
				break
			}
			covered = append(covered, m.Name)
		}
		e.mem.Record(memory.Interaction{
			ID:              uuid.NewString(),
			Message:         st.Message,
			Intent:          string(st.Intent.Type),
			ConceptsCovered: covered,
			Confidence:      st.Eval.Confidence,
		})
		for _, g := range st.Gaps.Unknown {
			e.mem.AddSeenTerms(g.Name)
		}
		return Delta{}, nil

	case StageDeliver:
		final := st.Answer.Text() + compose.Footer(st.Eval)
		return Delta{Final: &final}, nil
	}
	return Delta{}, fmt.Errorf("unknown stage %d", stage)
}

// generatePack runs the only I/O stage under a deadline. One attempt; any
// failure falls back to the deterministic template for the domain.
func (e *Engine) generatePack(ctx context.Context, domain string) (Delta, error) {
	genCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	pack, err := e.gen.Generate(genCtx, domain)
	if err != nil {
		if ctx.Err() != nil {
			return Delta{}, ctx.Err()
		}
		e.log.Warn("pack generation failed, using template",
			zap.String("domain", domain), zap.Error(err))
		pack = knowledge.Template(domain)
	}
	return Delta{Pack: pack}, nil
}
