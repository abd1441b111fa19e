// Package postgres implements the session storage driver for PostgreSQL.
package postgres

import (
	"context"
	_ "embed"
	"strings"
	"time"

	"github.com/cccteam/httpio"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
	"github.com/helmethub/dealerdesk/sessionstorage/internal/dbtype"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
)

//go:embed schema.sql
var schema string

var tracer = otel.Tracer("github.com/helmethub/dealerdesk/sessionstorage/internal/postgres")

// Queryer is the subset of pgx connection and pool methods used by the driver.
type Queryer interface {
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
}

// SessionStorageDriver represents the session storage implementation for PostgreSQL.
type SessionStorageDriver struct {
	conn    Queryer
	timeout time.Duration
}

// NewSessionStorageDriver creates a new SessionStorageDriver. Sessions idle for
// longer than timeout are treated as missing.
func NewSessionStorageDriver(conn Queryer, timeout time.Duration) *SessionStorageDriver {
	return &SessionStorageDriver{
		conn:    conn,
		timeout: timeout,
	}
}

// EnsureSchema creates the Sessions table when it does not exist.
func (d *SessionStorageDriver) EnsureSchema(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "SessionStorageDriver.EnsureSchema()")
	defer span.End()

	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := d.conn.Exec(ctx, stmt); err != nil {
			return errors.Wrap(err, "failed to apply session schema")
		}
	}

	return nil
}

// Session returns the live session row for given sessionID
func (d *SessionStorageDriver) Session(ctx context.Context, sessionID uuid.UUID) (*dbtype.Session, error) {
	ctx, span := tracer.Start(ctx, "SessionStorageDriver.Session()")
	defer span.End()

	query := `
		SELECT
			"Id", "Data", "CreatedAt", "UpdatedAt", "Expired"
		FROM "Sessions"
		WHERE "Id" = $1 AND NOT "Expired" AND "UpdatedAt" > $2
	`

	i := &dbtype.Session{}
	if err := pgxscan.Get(ctx, d.conn, i, query, sessionID, time.Now().Add(-d.timeout)); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpio.NewNotFoundMessagef("session %s not found in database", sessionID)
		}

		return nil, errors.Wrapf(err, "failed to scan row for session %s", sessionID)
	}

	return i, nil
}

// SaveSession inserts the session or replaces its data
func (d *SessionStorageDriver) SaveSession(ctx context.Context, session *dbtype.Session) error {
	ctx, span := tracer.Start(ctx, "SessionStorageDriver.SaveSession()")
	defer span.End()

	query := `
		INSERT INTO "Sessions"
			("Id", "Data", "CreatedAt", "UpdatedAt", "Expired")
		VALUES
			($1, $2, $3, $4, FALSE)
		ON CONFLICT ("Id") DO UPDATE SET
			"Data" = EXCLUDED."Data",
			"UpdatedAt" = EXCLUDED."UpdatedAt"
		`

	if _, err := d.conn.Exec(ctx, query, session.ID, session.Data, session.CreatedAt, session.UpdatedAt); err != nil {
		return errors.Wrapf(err, "failed to upsert Sessions table for %s", session.ID)
	}

	return nil
}

// UpdateSessionActivity updates the session activity column with the current time
func (d *SessionStorageDriver) UpdateSessionActivity(ctx context.Context, sessionID uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "SessionStorageDriver.UpdateSessionActivity()")
	defer span.End()

	query := `
		UPDATE "Sessions" SET "UpdatedAt" = $1
		WHERE "Id" = $2 AND NOT "Expired"`

	res, err := d.conn.Exec(ctx, query, time.Now(), sessionID)
	if err != nil {
		return errors.Wrapf(err, "failed to update Sessions table for ID: %s", sessionID)
	}

	if cnt := res.RowsAffected(); cnt != 1 {
		return httpio.NewNotFoundMessagef("failed to find Session %s", sessionID)
	}

	return nil
}

// DestroySession marks the session as expired
func (d *SessionStorageDriver) DestroySession(ctx context.Context, sessionID uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "SessionStorageDriver.DestroySession()")
	defer span.End()

	query := `
		UPDATE "Sessions" SET "Expired" = TRUE
		WHERE "Id" = $1`

	if _, err := d.conn.Exec(ctx, query, sessionID); err != nil {
		return errors.Wrapf(err, "failed to update Sessions table for %s", sessionID)
	}

	return nil
}

// PruneSessions deletes expired and timed out sessions and returns how many were removed.
func (d *SessionStorageDriver) PruneSessions(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "SessionStorageDriver.PruneSessions()")
	defer span.End()

	query := `
		DELETE FROM "Sessions"
		WHERE "Expired" OR "UpdatedAt" <= $1`

	res, err := d.conn.Exec(ctx, query, time.Now().Add(-d.timeout))
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete from Sessions table")
	}

	return res.RowsAffected(), nil
}
