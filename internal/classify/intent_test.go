package classify

import "testing"

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		name           string
		message        string
		wantType       IntentType
		wantConfidence float64
	}{
		{"design", "RAG 시스템 설계 방법이 궁금해", IntentDesign, 0.5},
		{"optimization two hits", "성능 최적화가 필요해", IntentOptimization, 0.7},
		{"troubleshoot", "이 에러 어떻게 fix 하나요", IntentTroubleshoot, 0.7},
		{"learn path", "쿠버네티스 배우고 싶어", IntentLearnPath, 0.5},
		{"default explain", "hello there", IntentExplain, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectIntent(tt.message)
			if got.Type != tt.wantType {
				t.Errorf("type = %q, want %q", got.Type, tt.wantType)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestDetectIntentTieKeepsDeclarationOrder(t *testing.T) {
	// "설계" scores design, "구현" scores implementation; design is declared
	// first and must win the tie.
	got := DetectIntent("설계와 구현")
	if got.Type != IntentDesign {
		t.Errorf("type = %q, want %q", got.Type, IntentDesign)
	}
}

func TestDetectIntentSubType(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"검색 파이프라인 설계", "retrieval_design"},
		{"인덱싱 구조 설계", "indexing_design"},
		{"전체 아키텍처 설계", ""},
	}
	for _, tt := range tests {
		got := DetectIntent(tt.message)
		if got.Type != IntentDesign {
			t.Fatalf("DetectIntent(%q).Type = %q, want design", tt.message, got.Type)
		}
		if got.SubType != tt.want {
			t.Errorf("DetectIntent(%q).SubType = %q, want %q", tt.message, got.SubType, tt.want)
		}
	}
}

func TestDetectIntentRequiredOutputs(t *testing.T) {
	design := DetectIntent("시스템 설계 좀")
	if len(design.RequiredOutputs) != 3 || design.RequiredOutputs[0] != "architecture_diagram" {
		t.Errorf("design outputs = %v", design.RequiredOutputs)
	}

	impl := DetectIntent("코드로 만들어줘")
	if len(impl.RequiredOutputs) != 2 || impl.RequiredOutputs[0] != "code_snippets" {
		t.Errorf("implementation outputs = %v", impl.RequiredOutputs)
	}

	explain := DetectIntent("개념 설명해줘")
	if len(explain.RequiredOutputs) != 0 {
		t.Errorf("explain outputs = %v, want none", explain.RequiredOutputs)
	}
}
