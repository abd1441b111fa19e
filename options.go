package dealerdesk

import (
	"time"

	"github.com/helmethub/dealerdesk/internal/basesession"
	"github.com/helmethub/dealerdesk/internal/cookie"
)

// CookieOption defines a function signature for setting cookie client options.
type CookieOption cookie.Option

func (CookieOption) isDashboardOption() {}

// WithCookieName sets the cookie name for the session cookie. (default: auth)
func WithCookieName(name string) CookieOption {
	return CookieOption(cookie.WithCookieName(name))
}

// WithTokenCookieName sets the cookie name for the persisted API token. (default: token)
func WithTokenCookieName(name string) CookieOption {
	return CookieOption(cookie.WithTokenCookieName(name))
}

// WithCookieDomain sets the domain for the session and token cookies.
func WithCookieDomain(domain string) CookieOption {
	return CookieOption(cookie.WithCookieDomain(domain))
}

// WithXSRFCookieName sets the cookie name for the XSRF cookie.
func WithXSRFCookieName(name string) CookieOption {
	return CookieOption(cookie.WithXSRFCookieName(name))
}

// WithXSRFHeaderName sets the header name for the XSRF header.
func WithXSRFHeaderName(name string) CookieOption {
	return CookieOption(cookie.WithXSRFHeaderName(name))
}

// BaseSessionOption defines a function signature for setting session options.
type BaseSessionOption func(*basesession.BaseSession)

func (BaseSessionOption) isDashboardOption() {}

// WithLogHandler sets the LogHandler. (default: httpio.Log)
func WithLogHandler(l LogHandler) BaseSessionOption {
	return BaseSessionOption(func(b *basesession.BaseSession) {
		b.Handle = basesession.LogHandler(l)
	})
}

// WithBootstrapWait sets how long a request waits for the bootstrap of its
// session before the loading page is served. (default: 3s)
func WithBootstrapWait(d time.Duration) BaseSessionOption {
	return BaseSessionOption(func(b *basesession.BaseSession) {
		b.BootstrapWait = d
	})
}

type dashboardOption func(*Dashboard)

func (dashboardOption) isDashboardOption() {}

// WithObserver reports bootstrap results and guard decisions to o.
func WithObserver(o Observer) Option {
	return dashboardOption(func(d *Dashboard) {
		d.observer = o
		d.baseSession.Observer = o
	})
}

// WithLoginURL sets where unauthenticated requests are sent. (default: /login)
func WithLoginURL(u string) Option {
	return dashboardOption(func(d *Dashboard) {
		d.loginURL = u
	})
}

// WithHomeURL sets where authenticated requests to public pages are sent. (default: /)
func WithHomeURL(u string) Option {
	return dashboardOption(func(d *Dashboard) {
		d.homeURL = u
	})
}
