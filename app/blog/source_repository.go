package blog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/techdigest/techdigest/app/store"
)

const userSourcesKeyPrefix = "user_sources:"

var _ SourceRepository = (*CustomSources)(nil)

// CustomSources persists per-user custom source lists.
type CustomSources struct {
	store store.Store
}

func NewCustomSources(s store.Store) *CustomSources {
	return &CustomSources{store: s}
}

func userSourcesKey(userID string) string {
	return userSourcesKeyPrefix + userID
}

func (r *CustomSources) GetUserSources(ctx context.Context, userID string) ([]Source, error) {
	data, err := r.store.Get(ctx, userSourcesKey(userID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return []Source{}, nil
	}

	var sources []Source
	if err := json.Unmarshal([]byte(data), &sources); err != nil {
		return nil, fmt.Errorf("failed to decode sources for user %s: %w", userID, err)
	}
	return sources, nil
}

func (r *CustomSources) SaveUserSources(ctx context.Context, userID string, sources []Source) error {
	return r.store.Set(ctx, userSourcesKey(userID), sources, 0)
}

// AllCustomSources collects every user's custom sources, deduplicated by URL.
// Unreadable user lists are skipped so one bad record cannot block a refresh.
func (r *CustomSources) AllCustomSources(ctx context.Context) ([]Source, error) {
	keys, err := r.store.Keys(ctx, userSourcesKeyPrefix)
	if err != nil {
		return nil, err
	}

	seenURLs := make(map[string]bool)
	var all []Source

	for _, key := range keys {
		data, err := r.store.Get(ctx, key)
		if err != nil || data == "" {
			continue
		}

		var sources []Source
		if err := json.Unmarshal([]byte(data), &sources); err != nil {
			slog.Warn("Skipping unreadable custom source list", "key", key, "error", err)
			continue
		}

		for _, source := range sources {
			if seenURLs[source.URL] {
				continue
			}
			seenURLs[source.URL] = true
			source.IsCustom = true
			all = append(all, source)
		}
	}

	return all, nil
}
