package dealerdesk

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/helmethub/dealerdesk/access"
	"github.com/helmethub/dealerdesk/sessioninfo"
)

type fakeViews struct {
	mu     sync.Mutex
	logins []LoginForm
}

func (v *fakeViews) Login(w http.ResponseWriter, _ *http.Request, form LoginForm) {
	v.mu.Lock()
	v.logins = append(v.logins, form)
	v.mu.Unlock()

	status := form.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = w.Write([]byte("login"))
}

func (v *fakeViews) AccessDenied(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte("denied"))
}

func (v *fakeViews) Loading(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusServiceUnavailable)
	_, _ = w.Write([]byte("loading"))
}

type guardRecorder struct {
	mu       sync.Mutex
	outcomes []string
}

func (g *guardRecorder) ObserveBootstrap(string)   {}
func (g *guardRecorder) ObserveBootstrapTimeout() {}
func (g *guardRecorder) ObserveGuard(outcome string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.outcomes = append(g.outcomes, outcome)
}

func signedIn(superAdmin bool, perms ...string) *sessioninfo.Session {
	set := make(sessioninfo.PermissionSet, 0, len(perms))
	for i, p := range perms {
		set = append(set, sessioninfo.Permission{ID: i + 1, Name: p, Module: "User"})
	}

	return &sessioninfo.Session{
		Token:        "token",
		User:         &sessioninfo.User{Name: "Rana", IsSuperAdmin: superAdmin},
		Permissions:  set,
		Bootstrapped: true,
	}
}

func anonymous() *sessioninfo.Session {
	return &sessioninfo.Session{Bootstrapped: true}
}

func TestDecide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sess       *sessioninfo.Session
		guard      Guard
		permission string
		want       Outcome
	}{
		{
			name:  "public anonymous renders",
			sess:  anonymous(),
			guard: GuardPublic,
			want:  Render,
		},
		{
			name:  "public signed in goes home",
			sess:  signedIn(false),
			guard: GuardPublic,
			want:  RedirectHome,
		},
		{
			name:  "private anonymous goes to login",
			sess:  anonymous(),
			guard: GuardPrivate,
			want:  RedirectLogin,
		},
		{
			name:       "private anonymous goes to login before permission check",
			sess:       anonymous(),
			guard:      GuardPrivate,
			permission: access.EditUser,
			want:       RedirectLogin,
		},
		{
			name:  "private signed in without permission requirement renders",
			sess:  signedIn(false),
			guard: GuardPrivate,
			want:  Render,
		},
		{
			name:       "private with held permission renders",
			sess:       signedIn(false, access.PreviewUser),
			guard:      GuardPrivate,
			permission: access.PreviewUser,
			want:       Render,
		},
		{
			name:       "private with missing permission is denied",
			sess:       signedIn(false, access.PreviewUser),
			guard:      GuardPrivate,
			permission: access.EditUser,
			want:       Denied,
		},
		{
			name:       "permission names are case sensitive",
			sess:       signedIn(false, "preview user"),
			guard:      GuardPrivate,
			permission: access.PreviewUser,
			want:       Denied,
		},
		{
			name:       "super admin holds every permission",
			sess:       signedIn(true),
			guard:      GuardPrivate,
			permission: access.EditRole,
			want:       Render,
		},
		{
			name:  "session still bootstrapping",
			sess:  &sessioninfo.Session{},
			guard: GuardPrivate,
			want:  Loading,
		},
		{
			name:  "no session",
			guard: GuardPublic,
			want:  Loading,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Decide(tt.sess, tt.guard, tt.permission); got != tt.want {
				t.Errorf("Decide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDashboard_guards(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("page"))
	})

	tests := []struct {
		name         string
		sess         *sessioninfo.Session
		middleware   func(d *Dashboard) func(http.Handler) http.Handler
		wantStatus   int
		wantLocation string
		wantBody     string
		wantOutcome  string
	}{
		{
			name:        "public page for anonymous visitor",
			sess:        anonymous(),
			middleware:  func(d *Dashboard) func(http.Handler) http.Handler { return d.Public },
			wantStatus:  http.StatusOK,
			wantBody:    "page",
			wantOutcome: "render",
		},
		{
			name:         "public page for signed in user",
			sess:         signedIn(false),
			middleware:   func(d *Dashboard) func(http.Handler) http.Handler { return d.Public },
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/",
			wantOutcome:  "redirect_home",
		},
		{
			name:         "private page for anonymous visitor",
			sess:         anonymous(),
			middleware:   func(d *Dashboard) func(http.Handler) http.Handler { return d.Private("") },
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login",
			wantOutcome:  "redirect_login",
		},
		{
			name:        "private page without permission renders denied in place",
			sess:        signedIn(false),
			middleware:  func(d *Dashboard) func(http.Handler) http.Handler { return d.Private(access.PreviewRole) },
			wantStatus:  http.StatusForbidden,
			wantBody:    "denied",
			wantOutcome: "denied",
		},
		{
			name:        "private page with permission",
			sess:        signedIn(false, access.PreviewRole),
			middleware:  func(d *Dashboard) func(http.Handler) http.Handler { return d.Private(access.PreviewRole) },
			wantStatus:  http.StatusOK,
			wantBody:    "page",
			wantOutcome: "render",
		},
		{
			name:        "session still bootstrapping",
			sess:        &sessioninfo.Session{},
			middleware:  func(d *Dashboard) func(http.Handler) http.Handler { return d.Private("") },
			wantStatus:  http.StatusServiceUnavailable,
			wantBody:    "loading",
			wantOutcome: "loading",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := &guardRecorder{}
			d := &Dashboard{
				views:    &fakeViews{},
				observer: rec,
				loginURL: defaultLoginURL,
				homeURL:  defaultHomeURL,
			}

			r := httptest.NewRequest(http.MethodGet, "/users", http.NoBody)
			r = r.WithContext(sessioninfo.NewCtx(r.Context(), tt.sess))
			w := httptest.NewRecorder()
			tt.middleware(d)(ok).ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get("Location"); got != tt.wantLocation {
				t.Errorf("Location = %q, want %q", got, tt.wantLocation)
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
			if diff := cmp.Diff([]string{tt.wantOutcome}, rec.outcomes); diff != "" {
				t.Errorf("observed outcomes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOutcome_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		outcome Outcome
		want    string
	}{
		{outcome: Render, want: "render"},
		{outcome: RedirectLogin, want: "redirect_login"},
		{outcome: RedirectHome, want: "redirect_home"},
		{outcome: Denied, want: "denied"},
		{outcome: Loading, want: "loading"},
		{outcome: Outcome(42), want: "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if got := tt.outcome.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
