package blog

import (
	"context"
)

type EntryRepository interface {
	GetEntry(ctx context.Context, id string) (*Entry, error)
	SaveEntry(ctx context.Context, entry Entry) error
	GetIndex(ctx context.Context) ([]IndexEntry, error)
	AddToIndex(ctx context.Context, entry Entry) error
	EntryCount(ctx context.Context) (int, error)
	Clear(ctx context.Context) (int, error)
}

type SourceRepository interface {
	GetUserSources(ctx context.Context, userID string) ([]Source, error)
	SaveUserSources(ctx context.Context, userID string, sources []Source) error
	AllCustomSources(ctx context.Context) ([]Source, error)
}
