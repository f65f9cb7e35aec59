package extract

import (
	"net/url"
	"testing"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("Failed to parse %q: %v", raw, err)
	}
	return u
}

func TestMetaDatedAnchor(t *testing.T) {
	html := `<div><a href="https://engineering.fb.com/2024/01/01/ml/foo-bar/">Foo Bar</a></div>`

	got := metaCandidates(html)

	if len(got) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(got))
	}
	if got[0].URL != "https://engineering.fb.com/2024/01/01/ml/foo-bar/" {
		t.Errorf("Unexpected URL: %s", got[0].URL)
	}
	if got[0].Title != "Foo Bar" {
		t.Errorf("Expected title 'Foo Bar', got %q", got[0].Title)
	}
}

func TestMetaSkipsEmptyTitles(t *testing.T) {
	html := `<a href="https://engineering.fb.com/2024/02/02/web/post/">   </a>`

	if got := metaCandidates(html); len(got) != 0 {
		t.Errorf("Expected no candidates for empty title, got %d", len(got))
	}
}

func TestMetaHeadingAnchor(t *testing.T) {
	html := `<h2 class="entry-title"><a href="https://engineering.fb.com/some-post/">Some Post Title</a></h2>`

	got := metaCandidates(html)

	if len(got) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(got))
	}
	if got[0].Title != "Some Post Title" {
		t.Errorf("Expected 'Some Post Title', got %q", got[0].Title)
	}
}

func TestMetaDedupesAcrossPasses(t *testing.T) {
	html := `<a href="https://engineering.fb.com/2024/01/01/ml/foo-bar/">Foo Bar</a>
<h2><a href="https://engineering.fb.com/2024/01/01/ml/foo-bar/">Foo Bar Again</a></h2>`

	got := metaCandidates(html)

	if len(got) != 1 {
		t.Fatalf("Expected 1 deduplicated candidate, got %d", len(got))
	}
	if got[0].Title != "Foo Bar" {
		t.Errorf("Expected first pass title kept, got %q", got[0].Title)
	}
}

func TestUberRelativeLink(t *testing.T) {
	html := `<a href="/blog/scaling-mysql-clusters/" class="link">`

	got := uberCandidates(html)

	if len(got) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(got))
	}
	if got[0].URL != "https://www.uber.com/blog/scaling-mysql-clusters/" {
		t.Errorf("Unexpected URL: %s", got[0].URL)
	}
	if got[0].Title != "Scaling Mysql Clusters" {
		t.Errorf("Unexpected title: %q", got[0].Title)
	}
}

func TestUberAbsoluteLocaleNormalized(t *testing.T) {
	html := `<a href="https://www.uber.com/en-US/blog/improving-driver-safety/" data-test="x">`

	got := uberCandidates(html)

	if len(got) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(got))
	}
	if got[0].URL != "https://www.uber.com/blog/improving-driver-safety/" {
		t.Errorf("Expected locale stripped, got %s", got[0].URL)
	}
}

func TestUberSkipsShortAndNavSlugs(t *testing.T) {
	html := `<a href="/blog/faq/">
<a href="/blog/tag-listing/" class="x">`

	got := uberCandidates(html)

	// "faq" is below the slug length floor; the second path contains "/tag"
	if len(got) != 0 {
		t.Errorf("Expected no candidates, got %d: %+v", len(got), got)
	}
}

func TestCloudflareSlugLinks(t *testing.T) {
	html := `<a href="/how-we-built-magic-transit/">
<a href="https://blog.cloudflare.com/inside-our-network-stack">`

	got := cloudflareCandidates(html)

	if len(got) != 2 {
		t.Fatalf("Expected 2 candidates, got %d: %+v", len(got), got)
	}
	if got[0].URL != "https://blog.cloudflare.com/how-we-built-magic-transit/" {
		t.Errorf("Unexpected URL: %s", got[0].URL)
	}
	if got[0].Title != "How We Built Magic Transit" {
		t.Errorf("Unexpected title: %q", got[0].Title)
	}
	if got[1].URL != "https://blog.cloudflare.com/inside-our-network-stack/" {
		t.Errorf("Expected trailing slash normalized, got %s", got[1].URL)
	}
}

func TestCloudflareSkipsNavAndShortSlugs(t *testing.T) {
	html := `<a href="/en-us/"><a href="/search/"><a href="/tag/"><a href="/short/">`

	if got := cloudflareCandidates(html); len(got) != 0 {
		t.Errorf("Expected no candidates, got %d: %+v", len(got), got)
	}
}

func TestMicrosoftEngineeringLink(t *testing.T) {
	html := `<a href="https://devblogs.microsoft.com/engineering-at-microsoft/scaling-git-at-microsoft/">`

	got := microsoftCandidates(html)

	if len(got) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(got))
	}
	if got[0].URL != "https://devblogs.microsoft.com/engineering-at-microsoft/scaling-git-at-microsoft/" {
		t.Errorf("Unexpected URL: %s", got[0].URL)
	}
	if got[0].Title != "Scaling Git At Microsoft" {
		t.Errorf("Unexpected title: %q", got[0].Title)
	}
}

func TestMicrosoftSectionLinkSkipsNavCategories(t *testing.T) {
	html := `<a href="https://devblogs.microsoft.com/typescript/announcing-typescript-six/">
<a href="https://devblogs.microsoft.com/tag/performance-tips/">`

	got := microsoftCandidates(html)

	if len(got) != 1 {
		t.Fatalf("Expected 1 candidate, got %d: %+v", len(got), got)
	}
	if got[0].URL != "https://devblogs.microsoft.com/typescript/announcing-typescript-six/" {
		t.Errorf("Unexpected URL: %s", got[0].URL)
	}
}

func TestMicrosoftTitledAnchorRejectsQueryStrings(t *testing.T) {
	html := `<a class="post" href="https://devblogs.microsoft.com/dotnet/perf/announcing?utm=x">Announcing Performance Improvements</a>`

	if got := microsoftCandidates(html); len(got) != 0 {
		t.Errorf("Expected query-string URL rejected, got %d: %+v", len(got), got)
	}
}

func TestMicrosoftTitledAnchor(t *testing.T) {
	html := `<a href="https://devblogs.microsoft.com/dotnet/perf/announcing">Announcing Performance Improvements</a>`

	got := microsoftCandidates(html)

	if len(got) != 1 {
		t.Fatalf("Expected 1 candidate, got %d: %+v", len(got), got)
	}
	if got[0].Title != "Announcing Performance Improvements" {
		t.Errorf("Unexpected title: %q", got[0].Title)
	}
}

func TestCandidatesDispatch(t *testing.T) {
	base := mustParse(t, "https://engineering.fb.com/")
	html := `<a href="https://engineering.fb.com/2024/01/01/ml/foo-bar/">Foo Bar</a>`

	got := Candidates("meta", html, base)
	if len(got) != 1 {
		t.Errorf("Expected meta extractor via dispatch, got %d candidates", len(got))
	}

	// Unknown source ids fall through to the generic extractor
	genericBase := mustParse(t, "https://blog.example.com/")
	genericHTML := `<h2><a href="https://blog.example.com/building-fast-caches">Building Fast Caches In Production</a></h2>`

	got = Candidates("custom_abc12345", genericHTML, genericBase)
	if len(got) != 1 {
		t.Errorf("Expected generic extractor via dispatch, got %d candidates", len(got))
	}
}
