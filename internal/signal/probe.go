package signal

import (
	"regexp"
	"strings"
)

// Profile captures the coldstart estimate of who is asking: rough
// experience tier, preferred implementation language and target deployment
// environment.
type Profile struct {
	ExperienceLevel int // 0 beginner .. 3 advanced
	CodeLang        string
	DeployEnv       string
}

// DefaultProfile is assumed when the message carried enough signals to skip
// the coldstart probe.
func DefaultProfile() Profile {
	return Profile{ExperienceLevel: 1, CodeLang: "python", DeployEnv: "local"}
}

var (
	beginnerKeywords     = []string{"처음", "시작", "입문", "초보", "모르", "배우"}
	intermediateKeywords = []string{"경험", "해봤", "알고", "구현"}
	advancedKeywords     = []string{"최적화", "프로덕션", "배포", "성능", "고급"}

	goWordPattern = regexp.MustCompile(`\bgo(lang)?\b`)
)

// Probe infers a user profile from the message alone. A beginner keyword
// wins over everything else: "deploying for the first time" is a beginner,
// not an expert, even though deployment reads as an advanced topic.
func Probe(message string) Profile {
	lower := strings.ToLower(message)

	p := DefaultProfile()
	switch {
	case hasAny(lower, beginnerKeywords):
		p.ExperienceLevel = 0
	case hasAny(lower, advancedKeywords):
		p.ExperienceLevel = 3
	case hasAny(lower, intermediateKeywords):
		p.ExperienceLevel = 2
	}

	if goWordPattern.MatchString(lower) {
		p.CodeLang = "go"
	}

	switch {
	case strings.Contains(lower, "k8s") || strings.Contains(lower, "kubernetes") || strings.Contains(lower, "쿠버네티스"):
		p.DeployEnv = "kubernetes"
	case strings.Contains(lower, "서버리스") || strings.Contains(lower, "serverless"):
		p.DeployEnv = "serverless"
	case strings.Contains(lower, "프로덕션") || strings.Contains(lower, "production"):
		p.DeployEnv = "production"
	}

	return p
}

// Constraints detects explicit priorities in the message. Unlike Probe this
// runs on every request, probed or not, so a cost remark in a fluent
// question still shapes the plan.
func Constraints(message string) map[string]string {
	lower := strings.ToLower(message)

	c := map[string]string{}
	if hasAny(lower, []string{"빠른", "지연", "latency"}) {
		c["latency_priority"] = "high"
	}
	if hasAny(lower, []string{"비용", "cost", "저렴"}) {
		c["cost_priority"] = "high"
	}
	if hasAny(lower, []string{"정확", "품질", "accuracy"}) {
		c["quality_priority"] = "high"
	}
	return c
}

func hasAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
