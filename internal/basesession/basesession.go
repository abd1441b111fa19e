// Package basesession implements the session management for the application.
package basesession

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
	"github.com/helmethub/dealerdesk/apiclient"
	"github.com/helmethub/dealerdesk/internal/cookie"
	"github.com/helmethub/dealerdesk/sessioninfo"
	"github.com/helmethub/dealerdesk/sessionstorage"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/singleflight"
)

var tracer = otel.Tracer("github.com/helmethub/dealerdesk/internal/basesession")

// Bootstrap results reported to the Observer.
const (
	BootstrapAnonymous     = "anonymous"
	BootstrapAuthenticated = "authenticated"
	BootstrapFailed        = "failed"
)

// errBootstrapPending is returned when the wait budget ran out before the
// bootstrap of the session finished.
var errBootstrapPending = errors.New("session bootstrap still running")

// LogHandler defines the handler signature required for handling logs.
type LogHandler func(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc

// Observer receives session lifecycle events.
type Observer interface {
	ObserveBootstrap(result string)
	ObserveBootstrapTimeout()
}

// BaseSession implements the browser session shared by every route.
type BaseSession struct {
	BootstrapWait time.Duration
	Handle        LogHandler
	Storage       sessionstorage.Store
	CookieHandler cookie.Handler
	Auth          apiclient.Authenticator
	Observer      Observer

	// LoadingPage is served while the bootstrap of the session is running.
	// It defaults to a plain text page that refreshes itself.
	LoadingPage http.Handler

	flights singleflight.Group
	once    sync.Once
}

func (s *BaseSession) init() {
	s.once.Do(func() {
		if s.LoadingPage == nil {
			s.LoadingPage = http.HandlerFunc(defaultLoadingPage)
		}
	})
}

// StartSession restores the session named by the auth cookie, or starts a new
// one, bootstraps it on first use and stores it in the request context.
// Requests of a session that is still bootstrapping after BootstrapWait get
// the loading page instead of reaching next.
func (s *BaseSession) StartSession(next http.Handler) http.Handler {
	s.init()

	return s.Handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := tracer.Start(r.Context(), "BaseSession.StartSession()")
		defer span.End()

		ctx, err := s.StartSessionAPI(ctx, w, r)
		if err != nil {
			if errors.Is(err, errBootstrapPending) {
				s.LoadingPage.ServeHTTP(w, r.WithContext(ctx))

				return nil
			}

			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		next.ServeHTTP(w, r.WithContext(ctx))

		return nil
	})
}

// StartSessionAPI exposes the internals of the StartSession Handler.
func (s *BaseSession) StartSessionAPI(ctx context.Context, w http.ResponseWriter, r *http.Request) (context.Context, error) {
	cval, foundAuthCookie := s.CookieHandler.ReadAuthCookie(r)
	sessionID, validSessionID := cookie.ValidSessionID(cval[cookie.SessionID])
	if !foundAuthCookie || !validSessionID {
		var err error
		sessionID, err = uuid.NewV4()
		if err != nil {
			return ctx, errors.Wrap(err, "uuid.NewV4()")
		}
		cval, err = s.CookieHandler.NewAuthCookie(w, true, sessionID)
		if err != nil {
			return ctx, errors.Wrap(err, "cookie.Handler.NewAuthCookie()")
		}
	}

	if cval[cookie.SameSiteStrict] != strconv.FormatBool(true) {
		if err := s.CookieHandler.WriteAuthCookie(w, true, cval); err != nil {
			return ctx, errors.Wrap(err, "cookie.Handler.WriteAuthCookie()")
		}
	}

	l := logger.Ctx(ctx).AddRequestAttribute("session ID", sessionID).
		WithAttributes().AddAttribute("session ID", sessionID).Logger()
	ctx = logger.NewCtx(ctx, l)

	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return ctx, err
	}

	if sess.Loading() {
		sess, err = s.bootstrap(ctx, r, sess.ID)
		if err != nil {
			return ctx, err
		}
	}

	// A token the session does not hold was rejected by a bootstrap whose
	// response never reached this browser.
	if _, ok := s.CookieHandler.ReadTokenCookie(r); ok && !sess.Authenticated() {
		if err := s.CookieHandler.WriteTokenCookie(w, ""); err != nil {
			return ctx, errors.Wrap(err, "cookie.Handler.WriteTokenCookie()")
		}
	}

	if username := sess.Username(); username != "" {
		l := logger.Ctx(ctx).AddRequestAttribute("username", username).
			WithAttributes().AddAttribute("username", username).Logger()
		ctx = logger.NewCtx(ctx, l)
	}

	return sessioninfo.NewCtx(ctx, sess), nil
}

// loadSession returns the stored session, or a new one when the store does not
// know the ID or the session timed out.
func (s *BaseSession) loadSession(ctx context.Context, sessionID uuid.UUID) (*sessioninfo.Session, error) {
	ctx, span := tracer.Start(ctx, "BaseSession.loadSession()")
	defer span.End()

	sess, err := s.Storage.Session(ctx, sessionID)
	if err != nil {
		if httpio.HasNotFound(err) {
			return sessioninfo.New(sessionID), nil
		}

		return nil, errors.Wrap(err, "sessionstorage.Store.Session()")
	}

	// Update last activity (rate limit updates)
	if time.Since(sess.UpdatedAt) > time.Second*5 {
		if err := s.Storage.UpdateSessionActivity(ctx, sess.ID); err != nil {
			if !httpio.HasNotFound(err) {
				return nil, errors.Wrap(err, "sessionstorage.Store.UpdateSessionActivity()")
			}
			logger.Ctx(ctx).Infof("session %s expired while loading", sess.ID)
		}
	}

	return sess, nil
}

// bootstrap resolves the session from the persisted token. Concurrent requests
// of one session share a single call to the API.
func (s *BaseSession) bootstrap(ctx context.Context, r *http.Request, sessionID uuid.UUID) (*sessioninfo.Session, error) {
	token, _ := s.CookieHandler.ReadTokenCookie(r)

	ch := s.flights.DoChan(sessionID.String(), func() (any, error) {
		return s.runBootstrap(context.WithoutCancel(ctx), sessionID, token)
	})

	timer := time.NewTimer(s.BootstrapWait)
	defer timer.Stop()

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}

		return res.Val.(*sessioninfo.Session).Clone(), nil
	case <-timer.C:
		if s.Observer != nil {
			s.Observer.ObserveBootstrapTimeout()
		}

		return nil, errBootstrapPending
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "waiting for session bootstrap")
	}
}

func (s *BaseSession) runBootstrap(ctx context.Context, sessionID uuid.UUID, token string) (*sessioninfo.Session, error) {
	ctx, span := tracer.Start(ctx, "BaseSession.runBootstrap()")
	defer span.End()

	// A previous flight may have finished between loading and joining.
	stored, err := s.Storage.Session(ctx, sessionID)
	switch {
	case err == nil && stored.Bootstrapped:
		return stored, nil
	case err != nil && !httpio.HasNotFound(err):
		return nil, errors.Wrap(err, "sessionstorage.Store.Session()")
	}

	sess := stored
	if sess == nil {
		sess = sessioninfo.New(sessionID)
	}
	result := BootstrapAnonymous
	if token == "" {
		sess.Clear()
	} else {
		user, err := s.Auth.CurrentUser(apiclient.WithToken(ctx, token))
		if err != nil {
			logger.Ctx(ctx).Infof("persisted token rejected: %v", err)
			sess.Clear()
			result = BootstrapFailed
		} else {
			sess.Authenticate(token, &user.User, user.EffectivePermissions())
			result = BootstrapAuthenticated
		}
	}

	if err := s.Storage.SaveSession(ctx, sess); err != nil {
		return nil, errors.Wrap(err, "sessionstorage.Store.SaveSession()")
	}
	if s.Observer != nil {
		s.Observer.ObserveBootstrap(result)
	}

	return sess, nil
}

// SetToken stores token in the session and in the browser. An empty token
// clears both.
func (s *BaseSession) SetToken(ctx context.Context, w http.ResponseWriter, sess *sessioninfo.Session, token string) error {
	sess.Token = token
	if err := s.CookieHandler.WriteTokenCookie(w, token); err != nil {
		return errors.Wrap(err, "cookie.Handler.WriteTokenCookie()")
	}

	return s.save(ctx, sess)
}

// SetUser replaces the session user.
func (s *BaseSession) SetUser(ctx context.Context, sess *sessioninfo.Session, user *sessioninfo.User) error {
	sess.User = user

	return s.save(ctx, sess)
}

// SetPermissions replaces the session permissions.
func (s *BaseSession) SetPermissions(ctx context.Context, sess *sessioninfo.Session, perms sessioninfo.PermissionSet) error {
	sess.Permissions = perms

	return s.save(ctx, sess)
}

// Authenticate stores a validated token with its user and permissions in the
// session and persists the token in the browser.
func (s *BaseSession) Authenticate(ctx context.Context, w http.ResponseWriter, sess *sessioninfo.Session, token string, user *sessioninfo.User, perms sessioninfo.PermissionSet) error {
	sess.Authenticate(token, user, perms)
	if err := s.CookieHandler.WriteTokenCookie(w, token); err != nil {
		return errors.Wrap(err, "cookie.Handler.WriteTokenCookie()")
	}

	return s.save(ctx, sess)
}

// Clear drops the token, user and permissions of the session and removes the
// persisted token from the browser.
func (s *BaseSession) Clear(ctx context.Context, w http.ResponseWriter, sess *sessioninfo.Session) error {
	sess.Clear()
	if err := s.CookieHandler.WriteTokenCookie(w, ""); err != nil {
		return errors.Wrap(err, "cookie.Handler.WriteTokenCookie()")
	}

	return s.save(ctx, sess)
}

func (s *BaseSession) save(ctx context.Context, sess *sessioninfo.Session) error {
	sess.UpdatedAt = time.Now()
	if err := s.Storage.SaveSession(ctx, sess); err != nil {
		return errors.Wrap(err, "sessionstorage.Store.SaveSession()")
	}

	return nil
}

// Authenticated is the handler that reports the state of the session.
func (s *BaseSession) Authenticated() http.HandlerFunc {
	type response struct {
		Authenticated bool     `json:"authenticated"`
		Username      string   `json:"username"`
		SuperAdmin    bool     `json:"superAdmin"`
		Permissions   []string `json:"permissions"`
	}

	return s.Handle(func(w http.ResponseWriter, r *http.Request) error {
		sess := sessioninfo.FromRequest(r)
		if !sess.Authenticated() {
			return httpio.NewEncoder(w).Ok(response{Permissions: []string{}})
		}

		return httpio.NewEncoder(w).Ok(response{
			Authenticated: true,
			Username:      sess.Username(),
			SuperAdmin:    sess.SuperAdmin(),
			Permissions:   sess.Permissions.Names(),
		})
	})
}

// Notify queues a flash notification for the next rendered page.
func (s *BaseSession) Notify(w http.ResponseWriter, r *http.Request, kind cookie.FlashKind, message string) {
	if err := s.CookieHandler.WriteFlash(w, cookie.Flash{Kind: kind, Message: message}); err != nil {
		logger.Req(r).Error(errors.Wrap(err, "cookie.Handler.WriteFlash()"))
	}
}

type xsrfCtxKey struct{}

// XSRFToken returns the token forms must echo back in the xsrf_token field.
func XSRFToken(ctx context.Context) string {
	token, _ := ctx.Value(xsrfCtxKey{}).(string)

	return token
}

// SetXSRFToken sets or refreshes the XSRF cookie and makes the token
// available to the rendered forms.
func (s *BaseSession) SetXSRFToken(next http.Handler) http.Handler {
	return s.Handle(func(w http.ResponseWriter, r *http.Request) error {
		token, err := s.CookieHandler.RefreshXSRFTokenCookie(w, r, sessioninfo.FromRequest(r).ID)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(r.Context(), err)
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), xsrfCtxKey{}, token)))

		return nil
	})
}

// ValidateXSRFToken rejects unsafe requests that do not carry a valid XSRF token.
func (s *BaseSession) ValidateXSRFToken(next http.Handler) http.Handler {
	return s.Handle(func(w http.ResponseWriter, r *http.Request) error {
		if !cookie.SafeMethods.Contain(r.Method) && !s.CookieHandler.HasValidXSRFToken(r) {
			return httpio.NewEncoder(w).ClientMessage(r.Context(), httpio.NewForbiddenMessage("invalid XSRF token"))
		}

		next.ServeHTTP(w, r)

		return nil
	})
}

func defaultLoadingPage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Refresh", "1")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusServiceUnavailable)
	fmt.Fprintln(w, "Loading...")
}
