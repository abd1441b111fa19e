package dealerdesk

import (
	"net/http"

	"github.com/helmethub/dealerdesk/internal/basesession"
)

// LogHandler defines the handler signature required for handling logs.
type LogHandler func(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc

// GuardObserver receives the outcome of every guard decision.
type GuardObserver interface {
	ObserveGuard(outcome string)
}

// Observer receives session and guard events.
type Observer interface {
	basesession.Observer
	GuardObserver
}

// Views renders the pages owned by the session layer.
type Views interface {
	// Login renders the login form. form.Status, when set, is the response status.
	Login(w http.ResponseWriter, r *http.Request, form LoginForm)
	// AccessDenied renders the access-denied page with status 403.
	AccessDenied(w http.ResponseWriter, r *http.Request)
	// Loading renders the placeholder served while the session bootstraps.
	Loading(w http.ResponseWriter, r *http.Request)
}

// LoginForm holds the state of a rendered login form.
type LoginForm struct {
	Email   string
	Errors  map[string]string
	Message string
	Status  int
}

// Handlers defines the handlers and middleware of the dashboard session.
type Handlers interface {
	Authenticated() http.HandlerFunc
	Login() http.HandlerFunc
	Logout() http.HandlerFunc
	StartSession(next http.Handler) http.Handler
	SetXSRFToken(next http.Handler) http.Handler
	ValidateXSRFToken(next http.Handler) http.Handler
	Public(next http.Handler) http.Handler
	Private(permission string) func(next http.Handler) http.Handler
}
