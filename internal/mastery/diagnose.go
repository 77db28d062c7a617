package mastery

import (
	"math/rand"

	"github.com/sagekit/sage/internal/knowledge"
)

// Oracle supplies the answer for a diagnostic question. In production this
// is the user; in tests and demos it is scripted or random.
type Oracle interface {
	Answer(q knowledge.Question) int
}

// ScriptedOracle replays a fixed answer sequence. Once the script runs out
// it keeps answering with the last entry.
type ScriptedOracle struct {
	Answers []int
	pos     int
}

func (o *ScriptedOracle) Answer(q knowledge.Question) int {
	if len(o.Answers) == 0 {
		return 0
	}
	if o.pos >= len(o.Answers) {
		return o.Answers[len(o.Answers)-1]
	}
	a := o.Answers[o.pos]
	o.pos++
	return a
}

// RandomOracle picks a uniformly random option, seeded for reproducibility.
type RandomOracle struct {
	rng *rand.Rand
}

func NewRandomOracle(seed int64) *RandomOracle {
	return &RandomOracle{rng: rand.New(rand.NewSource(seed))}
}

func (o *RandomOracle) Answer(q knowledge.Question) int {
	if len(q.Options) == 0 {
		return 0
	}
	return o.rng.Intn(len(q.Options))
}

// QuizRecord is the outcome of one asked question.
type QuizRecord struct {
	QuestionID string `json:"question_id"`
	ConceptID  string `json:"concept_id"`
	Correct    bool   `json:"correct"`
}

// Diagnose runs a short quiz over the weak concepts: it walks the question
// bank in order, asks up to three questions targeting weak concepts, and
// nudges the concept's mastery by +0.15 on a correct answer or -0.10 on a
// wrong one, clamped to [0, 1]. The adjustments land in a fresh copy of the
// levels map; the input map is never modified.
func Diagnose(pack *knowledge.DomainPack, levels map[string]float64, oracle Oracle) (map[string]float64, []QuizRecord) {
	if pack == nil || oracle == nil {
		return levels, nil
	}

	updated := make(map[string]float64, len(levels))
	for id, score := range levels {
		updated[id] = score
	}

	weak := make(map[string]bool)
	for _, id := range Weak(levels) {
		weak[id] = true
	}

	var records []QuizRecord
	for _, q := range pack.QuestionBank {
		if len(records) == 3 {
			break
		}
		if !weak[q.ConceptID] {
			continue
		}

		correct := oracle.Answer(q) == q.CorrectIndex
		records = append(records, QuizRecord{
			QuestionID: q.ID,
			ConceptID:  q.ConceptID,
			Correct:    correct,
		})

		if score, ok := updated[q.ConceptID]; ok {
			if correct {
				updated[q.ConceptID] = clamp(score + 0.15)
			} else {
				updated[q.ConceptID] = clamp(score - 0.10)
			}
		}
	}
	return updated, records
}
