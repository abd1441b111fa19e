// Package sessionstorage implements server-side storage for browser sessions.
// There are implementations backed by process memory, Redis and PostgreSQL.
package sessionstorage

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/helmethub/dealerdesk/sessioninfo"
	"github.com/helmethub/dealerdesk/sessionstorage/internal/dbtype"
	"github.com/helmethub/dealerdesk/sessionstorage/internal/postgres"
)

var (
	_ Store = (*Memory)(nil)
	_ Store = (*Redis)(nil)
	_ Store = (*Postgres)(nil)
)

// Store defines an interface for managing session storage.
//
// Session returns an httpio not found message when the session does not
// exist, was destroyed or timed out.
type Store interface {
	Session(ctx context.Context, sessionID uuid.UUID) (*sessioninfo.Session, error)
	SaveSession(ctx context.Context, session *sessioninfo.Session) error
	UpdateSessionActivity(ctx context.Context, sessionID uuid.UUID) error
	DestroySession(ctx context.Context, sessionID uuid.UUID) error
}

var _ db = (*postgres.SessionStorageDriver)(nil)

// db defines an interface for database operations related to session management.
type db interface {
	// Session returns the live session row for given sessionID.
	Session(ctx context.Context, sessionID uuid.UUID) (*dbtype.Session, error)
	// SaveSession inserts or replaces the session row.
	SaveSession(ctx context.Context, session *dbtype.Session) error
	// UpdateSessionActivity updates the session activity column with the current time.
	UpdateSessionActivity(ctx context.Context, sessionID uuid.UUID) error
	// DestroySession marks the session as expired.
	DestroySession(ctx context.Context, sessionID uuid.UUID) error
}
