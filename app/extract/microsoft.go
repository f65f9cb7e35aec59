package extract

import (
	"regexp"
	"strings"
)

var (
	microsoftEngineeringRe = regexp.MustCompile(`(?i)href="(https://devblogs\.microsoft\.com/engineering-at-microsoft/[a-z0-9-]+/?)"[^>]*>`)
	microsoftSectionRe     = regexp.MustCompile(`(?i)href="(https://devblogs\.microsoft\.com/([a-z0-9-]+)/([a-z0-9-]+)/?)"[^>]*>`)
	microsoftTitledRe      = regexp.MustCompile(`(?i)<a[^>]*href="(https://devblogs\.microsoft\.com/[^"]+/[^"]+)"[^>]*>([^<]{15,150})</a>`)
	microsoftSlugRe        = regexp.MustCompile(`engineering-at-microsoft/([^/]+)`)
)

var (
	microsoftSkipSlugs      = []string{"tag", "author", "page", "category", "search", "about", "contact", "feed", "archive"}
	microsoftSkipCategories = []string{"tag", "author", "page", "category", "search", "feed", "landingpage"}
)

func microsoftCandidates(html string) []Candidate {
	found := newCandidateList()

	for _, match := range microsoftEngineeringRe.FindAllStringSubmatch(html, -1) {
		url := strings.TrimSuffix(match[1], "/") + "/"

		slugMatch := microsoftSlugRe.FindStringSubmatch(url)
		if slugMatch == nil {
			continue
		}
		slug := slugMatch[1]
		if len(slug) < 5 || containsString(microsoftSkipSlugs, slug) {
			continue
		}

		found.add(url, SlugTitle(slug))
	}

	// Other devblogs sections (dotnet, typescript, ...) use <section>/<slug>.
	for _, match := range microsoftSectionRe.FindAllStringSubmatch(html, -1) {
		url := strings.TrimSuffix(match[1], "/") + "/"
		category := match[2]
		slug := match[3]

		if containsString(microsoftSkipCategories, category) || containsString(microsoftSkipSlugs, slug) || len(slug) < 5 {
			continue
		}

		found.add(url, SlugTitle(slug))
	}

	// Anchors carrying a visible title. This pass alone rejects URLs with
	// query strings or fragments; the slug passes above do not.
	for _, match := range microsoftTitledRe.FindAllStringSubmatch(html, -1) {
		url := strings.TrimSuffix(match[1], "/") + "/"
		title := strings.TrimSpace(match[2])

		if strings.Contains(url, "?") || strings.Contains(url, "#") {
			continue
		}
		if len(title) < 15 {
			continue
		}

		found.add(url, title)
	}

	return found.candidates()
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
