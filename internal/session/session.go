// Package session provides server-side session storage keyed by opaque
// tokens. Tokens are delivered to clients in an HTTP-only cookie and map
// back to a user ID on each request.
package session

import (
	"context"
	"errors"
	"time"
)

// CookieName is the cookie that carries the session token.
const CookieName = "homegenie_session"

// TTL is how long a session stays valid after creation.
const TTL = 24 * time.Hour

// ErrNotFound is returned when a token does not resolve to a live session.
var ErrNotFound = errors.New("session not found")

// Store persists session tokens. Implementations must generate
// unguessable tokens and expire them after TTL.
type Store interface {
	// Create starts a session for the user and returns its token.
	Create(ctx context.Context, userID uint) (string, error)
	// Get resolves a token to a user ID, or ErrNotFound.
	Get(ctx context.Context, token string) (uint, error)
	// Destroy ends the session. Destroying an unknown token is not an error.
	Destroy(ctx context.Context, token string) error
}
