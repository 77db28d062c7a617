package engine

// StageID identifies a pipeline stage. Routing decisions work on these
// values, never on stage names; String exists for logs only.
type StageID int

const (
	StageDomainDetect StageID = iota
	StageKnowledge
	StageBootstrap
	StageSignals
	StageColdstart
	StageInferLevel
	StageDiagnostic
	StageIntentDetect
	StageConceptMap
	StagePlan
	StageToolAdvisor
	StageGapMining
	StageCompose
	StageQualityGate
	StageMemoryWrite
	StageDeliver

	stageCount
)

var stageNames = [stageCount]string{
	"domain_detect",
	"knowledge",
	"bootstrap",
	"signals",
	"coldstart",
	"infer_level",
	"diagnostic",
	"intent_detect",
	"concept_map",
	"plan",
	"tool_advisor",
	"gap_mining",
	"compose",
	"quality_gate",
	"memory_write",
	"deliver",
}

func (s StageID) String() string {
	if s < 0 || s >= stageCount {
		return "unknown"
	}
	return stageNames[s]
}
