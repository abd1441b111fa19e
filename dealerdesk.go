// Package dealerdesk implements the browser side of the dealer dashboard:
// sessions bootstrapped from the persisted API token, login and logout, and
// the route guards in front of every page.
package dealerdesk

import (
	"net/http"
	"time"

	"github.com/cccteam/httpio"
	"github.com/go-playground/errors/v5"
	"github.com/helmethub/dealerdesk/apiclient"
	"github.com/helmethub/dealerdesk/internal/basesession"
	"github.com/helmethub/dealerdesk/internal/cookie"
	"github.com/helmethub/dealerdesk/sessionstorage"
	"go.opentelemetry.io/otel"
)

const name = "github.com/helmethub/dealerdesk"

var tracer = otel.Tracer(name)

const (
	defaultBootstrapWait = 3 * time.Second
	defaultLoginURL      = "/login"
	defaultHomeURL       = "/"
)

// Option defines the interface for functional options used when creating a new Dashboard.
type Option interface {
	isDashboardOption()
}

var _ Handlers = &Dashboard{}

// Dashboard ties the browser session to the remote API and guards the pages.
type Dashboard struct {
	api         apiclient.Authenticator
	views       Views
	observer    GuardObserver
	loginURL    string
	homeURL     string
	baseSession *basesession.BaseSession
}

// New creates a new Dashboard. cookieKey is the base64 encoded key the
// session, token, XSRF and flash cookies are encrypted with.
func New(storage sessionstorage.Store, api apiclient.Authenticator, views Views, cookieKey string, options ...Option) (*Dashboard, error) {
	var cookieOptions []cookie.Option
	for _, opt := range options {
		if o, ok := opt.(CookieOption); ok {
			cookieOptions = append(cookieOptions, cookie.Option(o))
		}
	}

	cookieClient, err := cookie.NewCookieClient(cookieKey, cookieOptions...)
	if err != nil {
		return nil, errors.Wrap(err, "cookie.NewCookieClient()")
	}

	baseSession := &basesession.BaseSession{
		BootstrapWait: defaultBootstrapWait,
		Handle:        httpio.Log,
		Storage:       storage,
		CookieHandler: cookieClient,
		Auth:          api,
		LoadingPage:   http.HandlerFunc(views.Loading),
	}

	d := &Dashboard{
		api:         api,
		views:       views,
		loginURL:    defaultLoginURL,
		homeURL:     defaultHomeURL,
		baseSession: baseSession,
	}

	for _, opt := range options {
		switch o := any(opt).(type) {
		case BaseSessionOption:
			o(baseSession)
		case dashboardOption:
			o(d)
		}
	}

	return d, nil
}

// Authenticated is the handler that reports the state of the session as JSON.
func (d *Dashboard) Authenticated() http.HandlerFunc {
	return d.baseSession.Authenticated()
}

// StartSession restores or starts the browser session and bootstraps it from
// the persisted token on first use.
func (d *Dashboard) StartSession(next http.Handler) http.Handler {
	return d.baseSession.StartSession(next)
}

// SetXSRFToken sets the XSRF cookie and exposes its token to the forms.
func (d *Dashboard) SetXSRFToken(next http.Handler) http.Handler {
	return d.baseSession.SetXSRFToken(next)
}

// ValidateXSRFToken rejects unsafe requests without a valid XSRF token.
func (d *Dashboard) ValidateXSRFToken(next http.Handler) http.Handler {
	return d.baseSession.ValidateXSRFToken(next)
}

// Notify queues a flash notification shown by the next rendered page.
func (d *Dashboard) Notify(w http.ResponseWriter, r *http.Request, kind cookie.FlashKind, message string) {
	d.baseSession.Notify(w, r, kind, message)
}

// Flash returns and removes the pending flash notification, if any.
func (d *Dashboard) Flash(w http.ResponseWriter, r *http.Request) (cookie.Flash, bool) {
	return d.baseSession.CookieHandler.ConsumeFlash(w, r)
}

// Handle returns a handler that logs any error returned by handler.
func (d *Dashboard) Handle(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return d.baseSession.Handle(handler)
}
