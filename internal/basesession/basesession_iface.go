package basesession

import (
	"context"
	"net/http"

	"github.com/helmethub/dealerdesk/internal/cookie"
	"github.com/helmethub/dealerdesk/sessioninfo"
)

var _ Handlers = &BaseSession{}

// Handlers defines the interface for the session handlers shared by every route.
type Handlers interface {
	Authenticated() http.HandlerFunc
	StartSession(next http.Handler) http.Handler
	SetXSRFToken(next http.Handler) http.Handler
	ValidateXSRFToken(next http.Handler) http.Handler
}

// Writer defines the only operations allowed to change a session.
type Writer interface {
	SetToken(ctx context.Context, w http.ResponseWriter, sess *sessioninfo.Session, token string) error
	SetUser(ctx context.Context, sess *sessioninfo.Session, user *sessioninfo.User) error
	SetPermissions(ctx context.Context, sess *sessioninfo.Session, perms sessioninfo.PermissionSet) error
	Authenticate(ctx context.Context, w http.ResponseWriter, sess *sessioninfo.Session, token string, user *sessioninfo.User, perms sessioninfo.PermissionSet) error
	Clear(ctx context.Context, w http.ResponseWriter, sess *sessioninfo.Session) error
	Notify(w http.ResponseWriter, r *http.Request, kind cookie.FlashKind, message string)
}
