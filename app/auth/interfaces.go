package auth

import "context"

type UserRepository interface {
	GetUser(ctx context.Context, email string) (*User, error)
	SaveUser(ctx context.Context, user *User) error
}

type SessionRepository interface {
	GetSession(ctx context.Context, token string) (*Session, error)
	CreateSession(ctx context.Context, session *Session) (string, error)
	DeleteSession(ctx context.Context, token string) error
}
