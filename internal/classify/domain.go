// Package classify scores the raw user message against keyword tables to
// detect the subject domain and the question intent. Keyword sets are
// bilingual (Korean and English) because that is what real traffic looks
// like for Sage.
package classify

import (
	"sort"
	"strings"
)

// DomainMatch is the result of domain detection.
type DomainMatch struct {
	Name       string
	Confidence float64
}

// Fallback domain labels.
const (
	DomainGeneral          = "General"
	DomainGeneralKnowledge = "General Knowledge"
)

// domainKeywords maps each known domain to its keyword set.
var domainKeywords = map[string][]string{
	"RAG": {
		"rag", "retrieval", "augmented", "generation",
		"벡터", "임베딩", "검색", "생성", "llm", "랭체인",
		"pinecone", "weaviate", "chroma", "qdrant",
	},
	"Machine Learning": {
		"머신러닝", "딥러닝", "학습", "모델", "훈련", "추론",
		"tensorflow", "pytorch", "keras", "scikit", "신경망",
		"cnn", "rnn", "transformer", "accuracy", "loss",
	},
	"Backend Development": {
		"백엔드", "서버", "api", "rest", "graphql", "데이터베이스",
		"django", "flask", "fastapi", "express", "spring",
		"postgresql", "mongodb", "redis", "kafka",
	},
	"Frontend Development": {
		"프론트엔드", "웹", "react", "vue", "angular", "ui", "ux",
		"javascript", "typescript", "css", "html", "component",
		"next.js", "nuxt", "svelte",
	},
	"DevOps": {
		"데브옵스", "배포", "ci/cd", "docker", "kubernetes", "쿠버네티스", "k8s",
		"jenkins", "github actions", "terraform", "ansible",
		"모니터링", "로깅", "prometheus", "grafana",
	},
	"Data Science": {
		"데이터 과학", "분석", "시각화", "통계", "pandas", "numpy",
		"matplotlib", "seaborn", "jupyter", "분포", "상관관계",
		"회귀", "분류", "군집",
	},
	"Blockchain": {
		"블록체인", "암호화폐", "스마트 컨트랙트", "이더리움",
		"solidity", "web3", "nft", "defi", "dapp", "합의",
	},
	"Cloud Computing": {
		"클라우드", "aws", "azure", "gcp", "람다", "s3", "ec2",
		"serverless", "cloud", "iaas", "paas", "saas",
	},
	"Cybersecurity": {
		"보안", "해킹", "취약점", "암호화", "인증", "방화벽",
		"penetration", "vulnerability", "encryption", "ssl", "tls",
	},
	"Mobile Development": {
		"모바일", "앱", "android", "ios", "swift", "kotlin",
		"react native", "flutter", "xamarin", "cross-platform",
	},
}

// genericLearningKeywords indicate a learning question with no clear domain.
var genericLearningKeywords = []string{
	"배우", "학습", "공부", "시작", "입문", "알려줘", "설명",
	"learn", "study", "explain",
}

// DetectDomain scores the message against every known domain's keyword set
// and returns the best match. Domains with zero keyword hits are excluded.
// Ties break to the lexicographically smallest domain name so detection is
// deterministic. Confidence is min(0.95, hits/len(keywords)*2).
//
// When no domain matches at all, the label is "General", or
// "General Knowledge" when the message carries a generic learning keyword
// and confidence stays below 0.3.
func DetectDomain(message string) DomainMatch {
	lower := strings.ToLower(message)

	names := make([]string, 0, len(domainKeywords))
	for name := range domainKeywords {
		names = append(names, name)
	}
	sort.Strings(names)

	best := DomainMatch{Name: DomainGeneral}
	bestCount := 0
	for _, name := range names {
		count := 0
		for _, kw := range domainKeywords[name] {
			if strings.Contains(lower, kw) {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			best = DomainMatch{
				Name:       name,
				Confidence: min(0.95, float64(count)/float64(len(domainKeywords[name]))*2),
			}
		}
	}

	if bestCount == 0 && best.Confidence < 0.3 && containsAny(lower, genericLearningKeywords) {
		best.Name = DomainGeneralKnowledge
	}

	return best
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
