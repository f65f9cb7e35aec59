package blog

import (
	"time"
)

// Source is a blog listing page articles are discovered from. Built-in
// sources ship with the service; custom sources are owned by a user.
type Source struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	URL       string `json:"url" yaml:"url"`
	Logo      string `json:"logo" yaml:"logo"`
	Color     string `json:"color" yaml:"color"`
	IsCustom  bool   `json:"isCustom,omitempty" yaml:"-"`
	UserID    string `json:"userId,omitempty" yaml:"-"`
	CreatedAt string `json:"createdAt,omitempty" yaml:"-"`
}

// Category is a topic bucket articles are classified into.
type Category struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon" yaml:"icon"`
}

// Entry is a fully processed article summary. Immutable once written;
// reprocessing the same URL short-circuits on the existing entry.
type Entry struct {
	ID            string    `json:"id"`
	Source        string    `json:"source"`
	SourceName    string    `json:"sourceName"`
	SourceLogo    string    `json:"sourceLogo"`
	SourceColor   string    `json:"sourceColor"`
	URL           string    `json:"url"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Summary       string    `json:"summary"`
	FullSummary   string    `json:"fullSummary"`
	KeyPoints     []string  `json:"keyPoints"`
	Technologies  []string  `json:"technologies"`
	FetchedAt     time.Time `json:"fetchedAt"`
	ContentLength int       `json:"contentLength"`
}

// IndexEntry is the lightweight listing projection of an Entry.
type IndexEntry struct {
	ID           string    `json:"id"`
	Source       string    `json:"source"`
	SourceName   string    `json:"sourceName"`
	SourceLogo   string    `json:"sourceLogo"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Summary      string    `json:"summary"`
	Technologies []string  `json:"technologies"`
	FetchedAt    time.Time `json:"fetchedAt"`
}
