package blog

import (
	"strings"
)

// DefaultCategory is assigned when no keyword list scores strictly highest.
const DefaultCategory = "engineering"

type categoryKeywords struct {
	category string
	keywords []string
}

// Keyword lists are fixed configuration; classification parity depends on
// them staying exactly as-is.
var classifierKeywords = []categoryKeywords{
	{"ml", []string{"machine learning", "ml", "ai", "artificial intelligence", "neural network",
		"deep learning", "model", "training", "inference", "pytorch", "tensorflow", "llm", "gpt", "transformer"}},
	{"infrastructure", []string{"infrastructure", "kubernetes", "k8s", "docker", "container",
		"cloud", "aws", "gcp", "azure", "serverless", "microservices", "scalability", "reliability"}},
	{"data", []string{"data", "database", "sql", "nosql", "analytics", "pipeline", "etl",
		"warehouse", "lake", "streaming", "kafka", "spark", "hadoop"}},
	{"mobile", []string{"mobile", "ios", "android", "swift", "kotlin", "react native", "flutter", "app"}},
	{"web", []string{"web", "frontend", "react", "javascript", "typescript", "css", "html",
		"browser", "performance", "ui", "ux"}},
}

// Classify scores the concatenated text and title against each category's
// keyword list, counting every keyword at most once. The strictly highest
// score wins; ties and all-zero scores resolve to DefaultCategory.
func Classify(content, title string) string {
	text := strings.ToLower(content + " " + title)

	maxScore := 0
	winners := 0
	detected := DefaultCategory

	for _, ck := range classifierKeywords {
		score := 0
		for _, keyword := range ck.keywords {
			if strings.Contains(text, keyword) {
				score++
			}
		}
		if score > maxScore {
			maxScore = score
			winners = 1
			detected = ck.category
		} else if score == maxScore && score > 0 {
			winners++
		}
	}

	if maxScore == 0 || winners > 1 {
		return DefaultCategory
	}
	return detected
}
