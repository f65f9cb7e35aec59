package extract

import (
	"regexp"
	"strings"
)

// Uber's listing mixes relative /blog/<slug> links with absolute,
// locale-prefixed ones; both passes normalize to the same canonical URL so
// one article never appears under two spellings.
var (
	uberRelativeRe = regexp.MustCompile(`(?i)href="(/blog/[a-z0-9-]+/?)"[^>]*>`)
	uberAbsoluteRe = regexp.MustCompile(`(?i)href="(https://www\.uber\.com/(?:en-[A-Z]{2}/)?blog/[a-z0-9-]+/?)"[^>]*>`)
	uberLocaleRe   = regexp.MustCompile(`/en-[A-Z]{2}/blog/`)
	uberSlugRe     = regexp.MustCompile(`/blog/([^/]+)`)
)

var uberSkipPaths = []string{
	"/engineering", "/advertising", "/earn", "/ride", "/eat", "/merchants",
	"/business", "/freight", "/health", "/higher-education", "/transit",
	"/careers", "/community-support", "/research", "/category", "/tag",
}

func uberCandidates(html string) []Candidate {
	found := newCandidateList()

	for _, match := range uberRelativeRe.FindAllStringSubmatch(html, -1) {
		path := strings.TrimSuffix(match[1], "/")
		slug := strings.TrimPrefix(path, "/blog/")

		if containsAnyOf(path, uberSkipPaths) || len(slug) < 5 {
			continue
		}

		found.add("https://www.uber.com"+path+"/", SlugTitle(slug))
	}

	for _, match := range uberAbsoluteRe.FindAllStringSubmatch(html, -1) {
		url := strings.TrimSuffix(match[1], "/") + "/"
		url = uberLocaleRe.ReplaceAllString(url, "/blog/")

		slugMatch := uberSlugRe.FindStringSubmatch(url)
		if slugMatch == nil || len(slugMatch[1]) < 5 {
			continue
		}
		if containsAnyOf(url, uberSkipPaths) {
			continue
		}

		found.add(url, SlugTitle(slugMatch[1]))
	}

	return found.candidates()
}

func containsAnyOf(s string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(s, pattern) {
			return true
		}
	}
	return false
}
