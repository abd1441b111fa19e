package sessioninfo

import (
	"context"
	"fmt"
	"net/http"
)

// ctxKey is a type for storing values in the request context
type ctxKey string

const (
	// CtxSession is the key used to store the Session in the context.
	CtxSession ctxKey = "session"
)

// NewCtx returns a copy of ctx carrying the session.
func NewCtx(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, CtxSession, sess)
}

// FromRequest returns the session from the request context.
func FromRequest(r *http.Request) *Session {
	return FromCtx(r.Context())
}

// FromCtx returns the session from the context.
func FromCtx(ctx context.Context) *Session {
	sess, ok := ctx.Value(CtxSession).(*Session)
	if !ok {
		panic(fmt.Sprintf("failed to find %s in request context", CtxSession))
	}

	return sess
}

// Lookup returns the session from the context, if present.
func Lookup(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(CtxSession).(*Session)

	return sess, ok
}

// TokenFromCtx returns the bearer token of the session in the context, or an
// empty string when there is none.
func TokenFromCtx(ctx context.Context) string {
	sess, ok := Lookup(ctx)
	if !ok {
		return ""
	}

	return sess.Token
}
