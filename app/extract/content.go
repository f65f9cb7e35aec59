package extract

import (
	"regexp"
	"strings"
)

// MaxContentLength bounds extracted plaintext before summarization.
const MaxContentLength = 8000

// Tag stripping is deliberately regex-based over raw markup: no DOM is
// built anywhere in the pipeline, and malformed HTML degrades to partial
// text instead of failing.
var (
	scriptRe = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	navRe    = regexp.MustCompile(`(?is)<nav[^>]*>.*?</nav>`)
	headerRe = regexp.MustCompile(`(?is)<header[^>]*>.*?</header>`)
	footerRe = regexp.MustCompile(`(?is)<footer[^>]*>.*?</footer>`)
	tagRe    = regexp.MustCompile(`<[^>]+>`)
	spaceRe  = regexp.MustCompile(`\s+`)
	titleRe  = regexp.MustCompile(`(?i)<title>([^<]+)</title>`)
)

// Content reduces an HTML document to bounded plaintext: page chrome
// (scripts, styles, nav, header, footer) is removed, remaining tags are
// stripped, and whitespace is collapsed.
func Content(html string) string {
	content := scriptRe.ReplaceAllString(html, "")
	content = styleRe.ReplaceAllString(content, "")
	content = navRe.ReplaceAllString(content, "")
	content = headerRe.ReplaceAllString(content, "")
	content = footerRe.ReplaceAllString(content, "")
	content = tagRe.ReplaceAllString(content, " ")
	content = spaceRe.ReplaceAllString(content, " ")
	content = strings.TrimSpace(content)

	if len(content) > MaxContentLength {
		content = content[:MaxContentLength]
	}
	return content
}

// Title pulls the document title, or "" when absent.
func Title(html string) string {
	match := titleRe.FindStringSubmatch(html)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}
