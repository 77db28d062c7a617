package signal

import (
	"reflect"
	"testing"

	"github.com/sagekit/sage/internal/knowledge"
)

func TestExtract(t *testing.T) {
	pack := knowledge.RAGPack()

	sig := Extract("should I combine BM25 with hybrid search and a rerank step?", pack)

	wantTerms := []string{"BM25", "Hybrid Search"}
	if !reflect.DeepEqual(sig.Terms, wantTerms) {
		t.Errorf("terms = %v, want %v", sig.Terms, wantTerms)
	}
	wantSkills := []string{"bm25", "hybrid", "rerank"}
	if !reflect.DeepEqual(sig.Skills, wantSkills) {
		t.Errorf("skills = %v, want %v", sig.Skills, wantSkills)
	}
}

func TestExtractCodeFences(t *testing.T) {
	msg := "this fails:\n```go\npanic(\"boom\")\n```\nand also\n```\nstack trace\n```"
	sig := Extract(msg, nil)
	if len(sig.CodeFragments) != 2 {
		t.Fatalf("code fragments = %d, want 2", len(sig.CodeFragments))
	}
}

func TestExtractEmpty(t *testing.T) {
	sig := Extract("안녕", knowledge.Template("General"))
	if !sig.Empty() {
		t.Errorf("expected empty signals, got %+v", sig)
	}
}

func TestProbeExperience(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    int
	}{
		{"no keywords", "그냥 궁금해서요", 1},
		{"beginner", "처음 해보는데요", 0},
		{"beginner wins over advanced", "처음 배우는데 쿠버네티스 배포 어떻게 해", 0},
		{"intermediate", "예전에 구현 해봤어요", 2},
		{"advanced", "프로덕션 성능이 고민이에요", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Probe(tt.message).ExperienceLevel; got != tt.want {
				t.Errorf("experience = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestProbeLangAndEnv(t *testing.T) {
	p := Probe("implement it in go and deploy on kubernetes")
	if p.CodeLang != "go" {
		t.Errorf("lang = %q, want go", p.CodeLang)
	}
	if p.DeployEnv != "kubernetes" {
		t.Errorf("env = %q, want kubernetes", p.DeployEnv)
	}

	// "good" and "algorithm" must not read as the Go language.
	p = Probe("a good algorithm for serverless search")
	if p.CodeLang != "python" {
		t.Errorf("lang = %q, want python default", p.CodeLang)
	}
	if p.DeployEnv != "serverless" {
		t.Errorf("env = %q, want serverless", p.DeployEnv)
	}
}

func TestConstraints(t *testing.T) {
	c := Constraints("저렴하면서 빠른 응답이 필요해요")
	if c["cost_priority"] != "high" || c["latency_priority"] != "high" {
		t.Errorf("constraints = %v", c)
	}
	if _, ok := c["quality_priority"]; ok {
		t.Errorf("unexpected quality constraint in %v", c)
	}

	if got := Constraints("그냥 설명해줘"); len(got) != 0 {
		t.Errorf("constraints = %v, want none", got)
	}
}
