package sessionstorage

import (
	"context"
	"time"

	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
	"github.com/helmethub/dealerdesk/sessioninfo"
	"github.com/helmethub/dealerdesk/sessionstorage/internal/dbtype"
	"github.com/helmethub/dealerdesk/sessionstorage/internal/postgres"
)

// Postgres is the session storage implementation for PostgreSQL.
type Postgres struct {
	db     db
	driver *postgres.SessionStorageDriver
}

// NewPostgres creates a new Postgres store. Sessions idle for longer than
// timeout are treated as missing.
func NewPostgres(conn postgres.Queryer, timeout time.Duration) *Postgres {
	driver := postgres.NewSessionStorageDriver(conn, timeout)

	return &Postgres{
		db:     driver,
		driver: driver,
	}
}

// EnsureSchema creates the session table when it does not exist.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	if err := p.driver.EnsureSchema(ctx); err != nil {
		return errors.Wrap(err, "postgres.SessionStorageDriver.EnsureSchema()")
	}

	return nil
}

// PruneSessions deletes sessions that were destroyed or timed out.
func (p *Postgres) PruneSessions(ctx context.Context) (int64, error) {
	n, err := p.driver.PruneSessions(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "postgres.SessionStorageDriver.PruneSessions()")
	}

	return n, nil
}

// Session returns the session information from the database for given sessionID
func (p *Postgres) Session(ctx context.Context, sessionID uuid.UUID) (*sessioninfo.Session, error) {
	ctx, span := tracer.Start(ctx, "Postgres.Session()")
	defer span.End()

	row, err := p.db.Session(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "db.Session()")
	}

	session, err := decode(row.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode()")
	}
	session.ID = row.ID
	session.CreatedAt = row.CreatedAt
	session.UpdatedAt = row.UpdatedAt

	return session, nil
}

// SaveSession inserts or replaces the session
func (p *Postgres) SaveSession(ctx context.Context, session *sessioninfo.Session) error {
	ctx, span := tracer.Start(ctx, "Postgres.SaveSession()")
	defer span.End()

	data, err := encode(session)
	if err != nil {
		return errors.Wrap(err, "encode()")
	}

	if err := p.db.SaveSession(ctx, &dbtype.Session{
		ID:        session.ID,
		Data:      data,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}); err != nil {
		return errors.Wrap(err, "db.SaveSession()")
	}

	return nil
}

// UpdateSessionActivity updates the database with the current time for the session activity
func (p *Postgres) UpdateSessionActivity(ctx context.Context, sessionID uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "Postgres.UpdateSessionActivity()")
	defer span.End()

	if err := p.db.UpdateSessionActivity(ctx, sessionID); err != nil {
		return errors.Wrap(err, "db.UpdateSessionActivity()")
	}

	return nil
}

// DestroySession marks the session as expired
func (p *Postgres) DestroySession(ctx context.Context, sessionID uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "Postgres.DestroySession()")
	defer span.End()

	if err := p.db.DestroySession(ctx, sessionID); err != nil {
		return errors.Wrap(err, "db.DestroySession()")
	}

	return nil
}
