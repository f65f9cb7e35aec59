package extract

import (
	"strings"
	"testing"
)

func TestContentStripsChrome(t *testing.T) {
	html := `<html><head><title>Post</title>
<script>var x = "ignore me";</script>
<style>.hidden { display: none }</style></head>
<body><nav>Home | About</nav><header>Site Header</header>
<p>The actual article text.</p>
<footer>Copyright</footer></body></html>`

	content := Content(html)

	if !strings.Contains(content, "The actual article text.") {
		t.Errorf("Expected article text preserved, got %q", content)
	}
	for _, removed := range []string{"ignore me", "display: none", "Home | About", "Site Header", "Copyright"} {
		if strings.Contains(content, removed) {
			t.Errorf("Expected %q removed, still present in %q", removed, content)
		}
	}
}

func TestContentCollapsesWhitespace(t *testing.T) {
	html := "<p>one</p>\n\n\t<p>two</p>   <p>three</p>"

	if got := Content(html); got != "one two three" {
		t.Errorf("Expected 'one two three', got %q", got)
	}
}

func TestContentTruncated(t *testing.T) {
	html := "<p>" + strings.Repeat("a", MaxContentLength+500) + "</p>"

	if got := Content(html); len(got) != MaxContentLength {
		t.Errorf("Expected content truncated to %d, got %d", MaxContentLength, len(got))
	}
}

func TestContentMalformedHTML(t *testing.T) {
	// Unclosed tags degrade to partial text, never an error
	html := "<div><p>readable text <span>more"

	if got := Content(html); !strings.Contains(got, "readable text") {
		t.Errorf("Expected partial text from malformed markup, got %q", got)
	}
}

func TestTitle(t *testing.T) {
	if got := Title("<html><head><title>  My Post  </title></head></html>"); got != "My Post" {
		t.Errorf("Expected 'My Post', got %q", got)
	}
	if got := Title("<html><head></head></html>"); got != "" {
		t.Errorf("Expected empty title, got %q", got)
	}
}
