package summarize

import "context"

// Summary is the structured output for one article. Degraded is set when
// the model response could not be parsed as structured JSON and a fallback
// rendering was used instead.
type Summary struct {
	Brief        string
	Detailed     string
	KeyPoints    []string
	Technologies []string
	Degraded     bool
}

type Summarizer interface {
	Run(ctx context.Context, title, content string) Summary
}
