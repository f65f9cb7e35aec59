package extract

import (
	"regexp"
	"strings"
)

// Cloudflare article URLs are a bare slug off the blog root, which also
// matches navigation pages and localized home pages; the slug-length
// threshold and the language-code pattern weed those out.
var (
	cloudflareRelativeRe = regexp.MustCompile(`(?i)href="/(([a-z0-9])[a-z0-9-]+)/?"`)
	cloudflareAbsoluteRe = regexp.MustCompile(`(?i)href="(https://blog\.cloudflare\.com/([a-z0-9][a-z0-9-]+)/?)"[^>]*>`)
	cloudflareLangRe     = regexp.MustCompile(`^[a-z]{2}-[a-z]{2}$`)
)

var cloudflareSkipSlugs = []string{
	"tag", "author", "page", "category", "search", "about", "contact", "rss", "feed", "cdn-cgi",
}

func cloudflareCandidates(html string) []Candidate {
	found := newCandidateList()

	for _, match := range cloudflareRelativeRe.FindAllStringSubmatch(html, -1) {
		slug := match[1]
		if skipCloudflareSlug(slug) {
			continue
		}
		found.add("https://blog.cloudflare.com/"+slug+"/", SlugTitle(slug))
	}

	for _, match := range cloudflareAbsoluteRe.FindAllStringSubmatch(html, -1) {
		url := strings.TrimSuffix(match[1], "/") + "/"
		slug := match[2]
		if skipCloudflareSlug(slug) {
			continue
		}
		found.add(url, SlugTitle(slug))
	}

	return found.candidates()
}

func skipCloudflareSlug(slug string) bool {
	if len(slug) < 8 {
		return true
	}
	for _, skip := range cloudflareSkipSlugs {
		if slug == skip {
			return true
		}
	}
	return cloudflareLangRe.MatchString(slug)
}
