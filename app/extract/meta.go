package extract

import (
	"regexp"
	"strings"
)

// Meta Engineering uses dated article URLs (engineering.fb.com/yyyy/mm/dd/...).
// The first pass requires visible link text; the second catches articles whose
// anchors sit inside h2/h3 headings.
var (
	metaDatedRe   = regexp.MustCompile(`(?i)<a[^>]*href="(https://engineering\.fb\.com/\d{4}/\d{2}/\d{2}/[^"]+)"[^>]*>([^<]*)</a>`)
	metaHeadingRe = regexp.MustCompile(`(?is)<h[23][^>]*>.*?<a[^>]*href="(https://engineering\.fb\.com/[^"]+)"[^>]*>([^<]+)</a>`)
)

func metaCandidates(html string) []Candidate {
	found := newCandidateList()

	for _, match := range metaDatedRe.FindAllStringSubmatch(html, -1) {
		url := match[1]
		title := strings.TrimSpace(match[2])
		if title != "" {
			found.add(url, title)
		}
	}

	for _, match := range metaHeadingRe.FindAllStringSubmatch(html, -1) {
		url := match[1]
		title := strings.TrimSpace(match[2])
		if title != "" {
			found.add(url, title)
		}
	}

	return found.candidates()
}
