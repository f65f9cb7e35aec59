package summarize

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	jsonBlockRe = regexp.MustCompile(`\{[\s\S]*\}`)
	codeFenceRe = regexp.MustCompile("```json\n?|\n?```")
)

// Parse extracts a Summary from raw model output. Models drift between
// clean JSON, fenced JSON, and plain prose, so parsing cascades: the first
// {...} block parsed as JSON, then the defenced text as an unstructured
// summary, then a placeholder built from the title.
func Parse(text, title string) Summary {
	if match := jsonBlockRe.FindString(text); match != "" {
		var parsed map[string]any
		if err := json.Unmarshal([]byte(match), &parsed); err == nil {
			if brief, ok := parsed["brief"].(string); ok && brief != "" {
				detailed, _ := parsed["detailed"].(string)
				if detailed == "" {
					detailed = brief
				}
				return Summary{
					Brief:        brief,
					Detailed:     detailed,
					KeyPoints:    stringList(parsed["keyPoints"]),
					Technologies: stringList(parsed["technologies"]),
				}
			}
		}
	}

	cleaned := strings.TrimSpace(codeFenceRe.ReplaceAllString(text, ""))
	if len(cleaned) > 50 {
		return Summary{
			Brief:        truncate(cleaned, 300),
			Detailed:     cleaned,
			KeyPoints:    []string{},
			Technologies: []string{},
			Degraded:     true,
		}
	}

	return Summary{
		Brief:        "Summary for: " + truncate(title, 100),
		Detailed:     "Full summary generation pending.",
		KeyPoints:    []string{},
		Technologies: []string{},
		Degraded:     true,
	}
}

// stringList coerces a decoded JSON value into a string slice; anything
// that is not an array of strings becomes empty.
func stringList(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
