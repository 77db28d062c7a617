package classify

import "strings"

// IntentType enumerates the recognized question intents.
type IntentType string

const (
	IntentDesign         IntentType = "design"
	IntentImplementation IntentType = "implementation"
	IntentEvaluation     IntentType = "evaluation"
	IntentOptimization   IntentType = "optimization"
	IntentTroubleshoot   IntentType = "troubleshoot"
	IntentCompare        IntentType = "compare"
	IntentExplain        IntentType = "explain"
	IntentLearnPath      IntentType = "learn_path"
)

// Intent is the classified question intent plus the artifacts an answer for
// it is expected to carry.
type Intent struct {
	Type            IntentType
	SubType         string
	Confidence      float64
	RequiredOutputs []string
}

// intentPattern pairs an intent with its keyword set. Slice order is the
// tie-break order: the earliest intent wins when scores are equal.
type intentPattern struct {
	intent   IntentType
	keywords []string
}

var intentPatterns = []intentPattern{
	{IntentDesign, []string{"설계", "아키텍처", "구조", "어떻게 구성", "선택", "architecture", "design"}},
	{IntentImplementation, []string{"구현", "코드", "만들", "작성", "개발", "implement", "code"}},
	{IntentEvaluation, []string{"평가", "측정", "비교", "테스트", "ragas", "evaluate", "measure"}},
	{IntentOptimization, []string{"최적화", "성능", "빠르", "지연", "비용", "optimize", "performance"}},
	{IntentTroubleshoot, []string{"문제", "오류", "에러", "디버그", "안돼", "error", "debug", "fix"}},
	{IntentCompare, []string{"차이", "vs", "비교", "어느게", "compare", "difference"}},
	{IntentExplain, []string{"설명", "무엇", "뭐", "이란", "개념", "explain", "what is"}},
	{IntentLearnPath, []string{"배우", "학습", "공부", "시작", "learn", "study", "tutorial"}},
}

// requiredOutputs lists the answer artifacts each intent demands. Intents
// absent from the table require none.
var requiredOutputs = map[IntentType][]string{
	IntentDesign:         {"architecture_diagram", "component_list", "tradeoffs"},
	IntentImplementation: {"code_snippets", "setup_guide"},
	IntentEvaluation:     {"metrics", "evaluation_plan"},
}

// DetectIntent classifies the question intent by keyword scoring. The
// default with no hits is "explain" at confidence 0.3; otherwise confidence
// is min(0.9, 0.3+hits*0.2). Design questions get a sub-type when they
// mention indexing or retrieval.
func DetectIntent(message string) Intent {
	lower := strings.ToLower(message)

	detected := IntentExplain
	maxScore := 0
	for _, pat := range intentPatterns {
		score := 0
		for _, kw := range pat.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > maxScore {
			maxScore = score
			detected = pat.intent
		}
	}

	subType := ""
	if detected == IntentDesign {
		switch {
		case strings.Contains(lower, "인덱싱") || strings.Contains(lower, "indexing"):
			subType = "indexing_design"
		case strings.Contains(lower, "검색") || strings.Contains(lower, "retrieval"):
			subType = "retrieval_design"
		}
	}

	return Intent{
		Type:            detected,
		SubType:         subType,
		Confidence:      min(0.9, 0.3+float64(maxScore)*0.2),
		RequiredOutputs: requiredOutputs[detected],
	}
}
