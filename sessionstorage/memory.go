package sessionstorage

import (
	"context"
	"sync"
	"time"

	"github.com/cccteam/httpio"
	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
	"github.com/helmethub/dealerdesk/sessioninfo"
	gocache "github.com/patrickmn/go-cache"
)

// Memory keeps sessions in process memory. Sessions are lost on restart and
// are not shared between replicas.
type Memory struct {
	c       *gocache.Cache
	timeout time.Duration

	// mu orders writes so an activity stamp never writes back a copy that
	// a concurrent save has replaced.
	mu sync.Mutex
}

// NewMemory returns a Memory store whose sessions expire after timeout of inactivity.
func NewMemory(timeout time.Duration) *Memory {
	return &Memory{
		c:       gocache.New(timeout, time.Minute),
		timeout: timeout,
	}
}

// Session returns a copy of the stored session.
func (m *Memory) Session(ctx context.Context, sessionID uuid.UUID) (*sessioninfo.Session, error) {
	_, span := tracer.Start(ctx, "Memory.Session()")
	defer span.End()

	v, ok := m.c.Get(sessionID.String())
	if !ok {
		return nil, httpio.NewNotFoundMessagef("session %s not found", sessionID)
	}

	session, err := decode(v.([]byte))
	if err != nil {
		return nil, errors.Wrap(err, "decode()")
	}

	return session, nil
}

// SaveSession stores the session and resets its expiration.
func (m *Memory) SaveSession(ctx context.Context, session *sessioninfo.Session) error {
	_, span := tracer.Start(ctx, "Memory.SaveSession()")
	defer span.End()

	b, err := encode(session)
	if err != nil {
		return errors.Wrap(err, "encode()")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.c.Set(session.ID.String(), b, m.timeout)

	return nil
}

// UpdateSessionActivity stamps the session with the current time and resets its expiration.
func (m *Memory) UpdateSessionActivity(ctx context.Context, sessionID uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "Memory.UpdateSessionActivity()")
	defer span.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	session, err := m.Session(ctx, sessionID)
	if err != nil {
		return errors.Wrap(err, "Memory.Session()")
	}
	session.UpdatedAt = time.Now()

	b, err := encode(session)
	if err != nil {
		return errors.Wrap(err, "encode()")
	}
	m.c.Set(sessionID.String(), b, m.timeout)

	return nil
}

// DestroySession removes the session.
func (m *Memory) DestroySession(ctx context.Context, sessionID uuid.UUID) error {
	_, span := tracer.Start(ctx, "Memory.DestroySession()")
	defer span.End()

	m.c.Delete(sessionID.String())

	return nil
}
