package sessionstorage

import (
	"context"
	"time"

	"github.com/cccteam/httpio"
	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
	"github.com/helmethub/dealerdesk/sessioninfo"
	rdb "github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "dealerdesk:session:"

// Redis stores sessions as JSON values with a sliding TTL.
type Redis struct {
	c       rdb.Cmdable
	timeout time.Duration
}

// NewRedis returns a Redis store whose sessions expire after timeout of inactivity.
func NewRedis(c rdb.Cmdable, timeout time.Duration) *Redis {
	return &Redis{
		c:       c,
		timeout: timeout,
	}
}

func redisKey(sessionID uuid.UUID) string {
	return redisKeyPrefix + sessionID.String()
}

// Session returns the stored session.
func (r *Redis) Session(ctx context.Context, sessionID uuid.UUID) (*sessioninfo.Session, error) {
	ctx, span := tracer.Start(ctx, "Redis.Session()")
	defer span.End()

	b, err := r.c.Get(ctx, redisKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, rdb.Nil) {
			return nil, httpio.NewNotFoundMessagef("session %s not found in redis", sessionID)
		}

		return nil, errors.Wrapf(err, "failed to get session %s", sessionID)
	}

	session, err := decode(b)
	if err != nil {
		return nil, errors.Wrap(err, "decode()")
	}

	return session, nil
}

// SaveSession stores the session and resets its TTL.
func (r *Redis) SaveSession(ctx context.Context, session *sessioninfo.Session) error {
	ctx, span := tracer.Start(ctx, "Redis.SaveSession()")
	defer span.End()

	b, err := encode(session)
	if err != nil {
		return errors.Wrap(err, "encode()")
	}
	if err := r.c.Set(ctx, redisKey(session.ID), b, r.timeout).Err(); err != nil {
		return errors.Wrapf(err, "failed to set session %s", session.ID)
	}

	return nil
}

// UpdateSessionActivity resets the TTL of the session. The stored record is
// not rewritten, so UpdatedAt is the time of the last save.
func (r *Redis) UpdateSessionActivity(ctx context.Context, sessionID uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "Redis.UpdateSessionActivity()")
	defer span.End()

	ok, err := r.c.Expire(ctx, redisKey(sessionID), r.timeout).Result()
	if err != nil {
		return errors.Wrapf(err, "failed to touch session %s", sessionID)
	}
	if !ok {
		return httpio.NewNotFoundMessagef("session %s not found in redis", sessionID)
	}

	return nil
}

// DestroySession removes the session.
func (r *Redis) DestroySession(ctx context.Context, sessionID uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "Redis.DestroySession()")
	defer span.End()

	if err := r.c.Del(ctx, redisKey(sessionID)).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete session %s", sessionID)
	}

	return nil
}
