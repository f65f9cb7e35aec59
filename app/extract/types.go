package extract

// Candidate is a discovered article link. Candidates only live for the
// duration of one extraction pass over a source's listing page.
type Candidate struct {
	URL   string
	Title string
}

// candidateList accumulates candidates across passes, deduplicating by URL
// so a later, looser pass never overwrites an earlier match.
type candidateList struct {
	seen map[string]bool
	list []Candidate
}

func newCandidateList() *candidateList {
	return &candidateList{seen: make(map[string]bool)}
}

func (c *candidateList) add(url, title string) {
	if c.seen[url] {
		return
	}
	c.seen[url] = true
	c.list = append(c.list, Candidate{URL: url, Title: title})
}

func (c *candidateList) candidates() []Candidate {
	return c.list
}
