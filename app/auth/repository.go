package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/techdigest/techdigest/app/store"
)

const (
	userKeyPrefix    = "user:"
	sessionKeyPrefix = "session:"

	// SessionTTL bounds how long a login stays valid.
	SessionTTL = 7 * 24 * time.Hour
)

// Repository persists users and sessions in the key-value store. Users are
// keyed by email and never expire; sessions are keyed by an opaque token
// and expire with SessionTTL.
type Repository struct {
	store store.Store
}

var (
	_ UserRepository    = (*Repository)(nil)
	_ SessionRepository = (*Repository)(nil)
)

func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

func (r *Repository) GetUser(ctx context.Context, email string) (*User, error) {
	data, err := r.store.Get(ctx, userKeyPrefix+email)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if data == "" {
		return nil, nil
	}

	var user User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}
	return &user, nil
}

func (r *Repository) SaveUser(ctx context.Context, user *User) error {
	if err := r.store.Set(ctx, userKeyPrefix+user.Email, user, 0); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func (r *Repository) GetSession(ctx context.Context, token string) (*Session, error) {
	data, err := r.store.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if data == "" {
		return nil, nil
	}

	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

func (r *Repository) CreateSession(ctx context.Context, session *Session) (string, error) {
	token := uuid.NewString()
	if err := r.store.Set(ctx, sessionKeyPrefix+token, session, SessionTTL); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}

func (r *Repository) DeleteSession(ctx context.Context, token string) error {
	if err := r.store.Delete(ctx, sessionKeyPrefix+token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
