package extract

import "net/url"

// Package extract pulls article links and readable text out of raw listing
// and article HTML using pattern matching only.

type patternFunc func(html string) []Candidate

var sourcePatterns = map[string]patternFunc{
	"meta":       metaCandidates,
	"uber":       uberCandidates,
	"cloudflare": cloudflareCandidates,
	"microsoft":  microsoftCandidates,
}

// Candidates extracts article links from a listing page using the pattern
// set registered for the source. Sources without a dedicated pattern set
// fall through to the generic extractor.
func Candidates(sourceID, html string, base *url.URL) []Candidate {
	if fn, ok := sourcePatterns[sourceID]; ok {
		return fn(html)
	}
	return genericCandidates(html, base)
}

// Generic extracts article links without source-specific patterns. The base
// URL must be the listing page's final URL after redirects so relative links
// resolve correctly.
func Generic(html string, base *url.URL) []Candidate {
	return genericCandidates(html, base)
}
