package blog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/techdigest/techdigest/app/store"
)

const (
	entryKeyPrefix = "blog:"
	indexKey       = "blogs:index"
	jobStatusKey   = "job:status"

	// EntryTTL bounds how long processed summaries are retained.
	EntryTTL = 30 * 24 * time.Hour

	// IndexLimit caps the listing index at the most recent entries.
	IndexLimit = 100
)

var _ EntryRepository = (*Repository)(nil)

// Repository persists blog entries and the bounded listing index in the
// key-value store.
type Repository struct {
	store store.Store
}

func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

func entryKey(id string) string {
	return entryKeyPrefix + id
}

// GetEntry returns the stored entry for an id, or nil when absent.
func (r *Repository) GetEntry(ctx context.Context, id string) (*Entry, error) {
	data, err := r.store.Get(ctx, entryKey(id))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	var entry Entry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		return nil, fmt.Errorf("failed to decode entry %s: %w", id, err)
	}
	return &entry, nil
}

func (r *Repository) SaveEntry(ctx context.Context, entry Entry) error {
	return r.store.Set(ctx, entryKey(entry.ID), entry, EntryTTL)
}

// GetIndex returns the listing index, newest first. A missing or corrupt
// index reads as empty.
func (r *Repository) GetIndex(ctx context.Context) ([]IndexEntry, error) {
	data, err := r.store.Get(ctx, indexKey)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return []IndexEntry{}, nil
	}

	var index []IndexEntry
	if err := json.Unmarshal([]byte(data), &index); err != nil {
		return []IndexEntry{}, nil
	}
	return index, nil
}

// AddToIndex front-inserts the entry's projection unless the id is already
// present, then truncates to IndexLimit.
func (r *Repository) AddToIndex(ctx context.Context, entry Entry) error {
	index, err := r.GetIndex(ctx)
	if err != nil {
		return err
	}

	for _, existing := range index {
		if existing.ID == entry.ID {
			return nil
		}
	}

	projection := IndexEntry{
		ID:           entry.ID,
		Source:       entry.Source,
		SourceName:   entry.SourceName,
		SourceLogo:   entry.SourceLogo,
		Title:        entry.Title,
		Category:     entry.Category,
		Summary:      entry.Summary,
		Technologies: entry.Technologies,
		FetchedAt:    entry.FetchedAt,
	}
	if projection.Technologies == nil {
		projection.Technologies = []string{}
	}

	index = append([]IndexEntry{projection}, index...)
	if len(index) > IndexLimit {
		index = index[:IndexLimit]
	}

	return r.store.Set(ctx, indexKey, index, EntryTTL)
}

func (r *Repository) EntryCount(ctx context.Context) (int, error) {
	keys, err := r.store.Keys(ctx, entryKeyPrefix)
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

// Clear removes the index, the job status record, and every stored entry,
// returning the number of entries removed.
func (r *Repository) Clear(ctx context.Context) (int, error) {
	keys, err := r.store.Keys(ctx, entryKeyPrefix)
	if err != nil {
		return 0, err
	}

	toDelete := append([]string{indexKey, jobStatusKey}, keys...)
	if err := r.store.Delete(ctx, toDelete...); err != nil {
		return 0, err
	}

	return len(keys), nil
}
