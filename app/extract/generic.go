package extract

import (
	"net/url"
	"regexp"
	"strings"
)

// MaxCandidates caps how many links a single listing page can yield.
const MaxCandidates = 20

var genericSkipPatterns = []string{
	"tag", "category", "author", "page", "search", "about", "contact",
	"privacy", "terms", "login", "signup", "register", "feed", "rss",
	"cdn-cgi", "static", "assets", "images", "css", "js", "archive",
	"followers", "following", "membership", "subscribe", "newsletter",
}

var (
	mediumHashedRe  = regexp.MustCompile(`(?i)href="(https?://[^"]*/[a-z0-9-]+-[a-f0-9]{10,})"[^>]*>`)
	mediumHeadingRe = regexp.MustCompile(`(?is)<h[23][^>]*>.*?<a[^>]*href="([^"]+)"[^>]*>([^<]{10,200})</a>`)
	mediumDataRe    = regexp.MustCompile(`(?i)data-href="([^"]+)"[^>]*>([^<]{15,})<`)

	genericHeadingRe = regexp.MustCompile(`(?is)<h[1-3][^>]*>.*?<a[^>]*href="([^"]+)"[^>]*>([^<]{15,200})</a>`)
	genericClassRe   = regexp.MustCompile(`(?i)<a[^>]*href="([^"]+)"[^>]*class="[^"]*(?:post|article|entry|story)[^"]*"[^>]*>([^<]{10,})<`)
	genericHrefRe    = regexp.MustCompile(`(?i)href="([^"]+)"`)

	hexSuffixRe = regexp.MustCompile(`-[a-f0-9]{10,}$`)
	hexSlugRe   = regexp.MustCompile(`(?i)[a-f0-9]{10,}`)
	numericRe   = regexp.MustCompile(`^\d+$`)
)

// genericCandidates discovers article links on a page whose structure is not
// known in advance. Medium-hosted blogs get their own passes since Medium
// renders post links with a hex id suffix; everything else falls back to
// heading anchors, post-classed anchors, and finally any same-domain href
// whose last path segment looks like an article slug.
func genericCandidates(html string, base *url.URL) []Candidate {
	found := newCandidateList()
	isMedium := strings.Contains(base.Hostname(), "medium.com") ||
		strings.Contains(html, "medium.com") ||
		strings.Contains(html, "data-post-id")

	if isMedium {
		mediumPasses(html, base, found)
	}

	genericPasses(html, base, found, isMedium)

	all := found.candidates()
	if len(all) > MaxCandidates {
		all = all[:MaxCandidates]
	}
	return all
}

func mediumPasses(html string, base *url.URL, found *candidateList) {
	for _, match := range mediumHashedRe.FindAllStringSubmatch(html, -1) {
		link := match[1]
		parsed, err := url.Parse(link)
		if err != nil {
			continue
		}
		slug := hexSuffixRe.ReplaceAllString(lastPathSegment(parsed.Path), "")
		if len(slug) <= 5 {
			continue
		}
		found.add(link, SlugTitle(slug))
	}

	for _, match := range mediumHeadingRe.FindAllStringSubmatch(html, -1) {
		link := resolveLink(match[1], base)
		title := strings.TrimSpace(match[2])
		if link == "" || len(title) < 10 {
			continue
		}
		found.add(link, title)
	}

	for _, match := range mediumDataRe.FindAllStringSubmatch(html, -1) {
		link := resolveLink(match[1], base)
		title := strings.TrimSpace(match[2])
		if link == "" || title == "" {
			continue
		}
		found.add(link, title)
	}
}

func genericPasses(html string, base *url.URL, found *candidateList, isMedium bool) {
	for _, match := range genericHeadingRe.FindAllStringSubmatch(html, -1) {
		raw := match[1]
		title := strings.TrimSpace(match[2])

		if strings.HasPrefix(raw, "#") || strings.HasPrefix(raw, "javascript:") {
			continue
		}
		link := resolveLink(raw, base)
		if link == "" || len(title) < 15 {
			continue
		}
		parsed, err := url.Parse(link)
		if err != nil || !sameDomain(parsed, base, isMedium) {
			continue
		}
		if hasSkipPattern(link) {
			continue
		}

		found.add(strings.TrimSuffix(link, "/"), title)
	}

	// Anchors whose class marks them as post links. No domain check here:
	// aggregator themes routinely route these through the site itself.
	for _, match := range genericClassRe.FindAllStringSubmatch(html, -1) {
		link := resolveLink(match[1], base)
		title := strings.TrimSpace(match[2])
		if link == "" || len(title) < 10 {
			continue
		}
		found.add(strings.TrimSuffix(link, "/"), title)
	}

	for _, match := range genericHrefRe.FindAllStringSubmatch(html, -1) {
		raw := match[1]
		if strings.HasPrefix(raw, "#") || strings.HasPrefix(raw, "javascript:") || strings.HasPrefix(raw, "mailto:") {
			continue
		}
		link := resolveLink(raw, base)
		if link == "" {
			continue
		}
		parsed, err := url.Parse(link)
		if err != nil || !sameDomain(parsed, base, isMedium) {
			continue
		}

		slug := lastPathSegment(parsed.Path)
		if len(slug) < 8 || hasSkipPattern(link) || !looksLikeArticle(slug) {
			continue
		}

		cleanSlug := hexSuffixRe.ReplaceAllString(slug, "")
		if len(cleanSlug) < 5 {
			continue
		}

		found.add(strings.TrimSuffix(link, "/"), SlugTitle(cleanSlug))
	}
}

// resolveLink turns a possibly relative href into an absolute URL against
// the listing page's final URL.
func resolveLink(raw string, base *url.URL) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	if strings.HasPrefix(raw, "/") {
		return base.Scheme + "://" + base.Host + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return base.ResolveReference(parsed).String()
}

func sameDomain(link, base *url.URL, allowMedium bool) bool {
	if link.Hostname() == base.Hostname() {
		return true
	}
	if allowMedium && strings.HasSuffix(link.Hostname(), ".medium.com") {
		return true
	}
	return false
}

func hasSkipPattern(link string) bool {
	lowered := strings.ToLower(link)
	for _, pattern := range genericSkipPatterns {
		if strings.Contains(lowered, "/"+pattern+"/") ||
			strings.Contains(lowered, "/"+pattern+"?") ||
			strings.HasSuffix(lowered, "/"+pattern) {
			return true
		}
	}
	return false
}

func looksLikeArticle(slug string) bool {
	if numericRe.MatchString(slug) {
		return false
	}
	return strings.Contains(slug, "-") || hexSlugRe.MatchString(slug)
}

func lastPathSegment(path string) string {
	trimmed := strings.TrimSuffix(path, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return trimmed
	}
	return trimmed[idx+1:]
}
