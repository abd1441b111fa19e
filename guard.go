package dealerdesk

import (
	"net/http"

	"github.com/helmethub/dealerdesk/access"
	"github.com/helmethub/dealerdesk/sessioninfo"
)

// Guard selects the rule applied to a route.
type Guard int

const (
	// GuardPublic routes are only for visitors that are not signed in.
	GuardPublic Guard = iota
	// GuardPrivate routes need a signed in user and, optionally, a permission.
	GuardPrivate
)

// Outcome is the decision of a guard for one request.
type Outcome int

const (
	// Render lets the request through to the page.
	Render Outcome = iota
	// RedirectLogin sends a visitor that is not signed in to the login page.
	RedirectLogin
	// RedirectHome sends a signed in user away from a public page.
	RedirectHome
	// Denied renders the access-denied view in place of the page.
	Denied
	// Loading is only returned for sessions that have not finished their
	// bootstrap. StartSession never lets such a session through.
	Loading
)

func (o Outcome) String() string {
	switch o {
	case Render:
		return "render"
	case RedirectLogin:
		return "redirect_login"
	case RedirectHome:
		return "redirect_home"
	case Denied:
		return "denied"
	case Loading:
		return "loading"
	default:
		return "unknown"
	}
}

// Decide returns what a guard does with a request of sess. An empty
// permission on a private route only requires a signed in user.
func Decide(sess *sessioninfo.Session, guard Guard, permission string) Outcome {
	if sess == nil || sess.Loading() {
		return Loading
	}

	switch guard {
	case GuardPublic:
		if sess.Authenticated() {
			return RedirectHome
		}

		return Render
	default:
		if !sess.Authenticated() {
			return RedirectLogin
		}
		if permission != "" && !access.HasPermission(sess, permission) {
			return Denied
		}

		return Render
	}
}

// Public lets through visitors that are not signed in and sends the others home.
func (d *Dashboard) Public(next http.Handler) http.Handler {
	return d.guard(GuardPublic, "", next)
}

// Private requires a signed in user holding permission. The access-denied
// page is rendered in place when the permission is missing.
func (d *Dashboard) Private(permission string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return d.guard(GuardPrivate, permission, next)
	}
}

func (d *Dashboard) guard(g Guard, permission string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := sessioninfo.Lookup(r.Context())
		outcome := Decide(sess, g, permission)
		if d.observer != nil {
			d.observer.ObserveGuard(outcome.String())
		}

		switch outcome {
		case Render:
			next.ServeHTTP(w, r)
		case RedirectLogin:
			http.Redirect(w, r, d.loginURL, http.StatusSeeOther)
		case RedirectHome:
			http.Redirect(w, r, d.homeURL, http.StatusSeeOther)
		case Denied:
			d.views.AccessDenied(w, r)
		default:
			d.views.Loading(w, r)
		}
	})
}
