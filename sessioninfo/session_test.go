package sessioninfo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/google/go-cmp/cmp"
)

func Test_sessionFromRequest(t *testing.T) {
	t.Parallel()

	id := uuid.Must(uuid.FromString("de6e1a12-2d4d-4c4d-aaf1-d82cb9a9eff5"))

	tests := []struct {
		name      string
		r         *http.Request
		want      *Session
		wantPanic bool
	}{
		{
			name:      "does not find session in request",
			r:         httptest.NewRequest(http.MethodGet, "/testPath", http.NoBody),
			wantPanic: true,
		},
		{
			name: "gets session from request",
			r: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/testPath", http.NoBody)

				return req.WithContext(NewCtx(context.Background(), &Session{ID: id}))
			}(),
			want: &Session{ID: id},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				if r := recover(); (r != nil) != tt.wantPanic {
					t.Errorf("FromRequest() panic = %v, wantPanic %v", r, tt.wantPanic)
				}
			}()

			if diff := cmp.Diff(tt.want, FromRequest(tt.r)); diff != "" {
				t.Errorf("FromRequest() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenFromCtx(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{
			name: "no session",
			ctx:  context.Background(),
			want: "",
		},
		{
			name: "session without token",
			ctx:  NewCtx(context.Background(), &Session{}),
			want: "",
		},
		{
			name: "session with token",
			ctx:  NewCtx(context.Background(), &Session{Token: "abc"}),
			want: "abc",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TokenFromCtx(tt.ctx); got != tt.want {
				t.Errorf("TokenFromCtx() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSession_Authenticated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sess       *Session
		want       bool
		wantAdmin  bool
		wantLoaded bool
	}{
		{
			name: "nil session",
		},
		{
			name:       "bootstrapped without token",
			sess:       &Session{Bootstrapped: true},
			wantLoaded: true,
		},
		{
			name:       "token and user",
			sess:       &Session{Token: "t", User: &User{Name: "Rana"}, Bootstrapped: true},
			want:       true,
			wantLoaded: true,
		},
		{
			name:       "super admin",
			sess:       &Session{Token: "t", User: &User{IsSuperAdmin: true}, Bootstrapped: true},
			want:       true,
			wantAdmin:  true,
			wantLoaded: true,
		},
		{
			name: "super admin flag without token",
			sess: &Session{User: &User{IsSuperAdmin: true}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.sess.Authenticated(); got != tt.want {
				t.Errorf("Authenticated() = %v, want %v", got, tt.want)
			}
			if got := tt.sess.SuperAdmin(); got != tt.wantAdmin {
				t.Errorf("SuperAdmin() = %v, want %v", got, tt.wantAdmin)
			}
			if tt.sess != nil {
				if got := !tt.sess.Loading(); got != tt.wantLoaded {
					t.Errorf("!Loading() = %v, want %v", got, tt.wantLoaded)
				}
			}
		})
	}
}

func TestUser_EffectivePermissions(t *testing.T) {
	t.Parallel()

	user := &User{
		Roles: []Role{
			{Name: "Manager", Permissions: PermissionSet{{ID: 1, Name: "Preview User", Module: "User"}, {ID: 2, Name: "Edit User", Module: "User"}}},
			{Name: "Auditor", Permissions: PermissionSet{{ID: 1, Name: "Preview User", Module: "User"}, {ID: 5, Name: "Preview Role", Module: "Role"}}},
		},
	}

	want := PermissionSet{
		{ID: 1, Name: "Preview User", Module: "User"},
		{ID: 2, Name: "Edit User", Module: "User"},
		{ID: 5, Name: "Preview Role", Module: "Role"},
	}
	if diff := cmp.Diff(want, user.EffectivePermissions()); diff != "" {
		t.Errorf("EffectivePermissions() mismatch (-want +got):\n%s", diff)
	}

	var nilUser *User
	if got := nilUser.EffectivePermissions(); got != nil {
		t.Errorf("EffectivePermissions() on nil user = %v, want nil", got)
	}
}

func TestPermissionSet_Has(t *testing.T) {
	t.Parallel()

	set := PermissionSet{{Name: "Edit User"}}
	if !set.Has("Edit User") {
		t.Errorf("Has(%q) = false, want true", "Edit User")
	}
	if set.Has("edit user") {
		t.Errorf("Has(%q) = true, want false", "edit user")
	}
	if diff := cmp.Diff([]string{"Edit User"}, set.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_Clone(t *testing.T) {
	t.Parallel()

	orig := &Session{
		Token:       "t",
		User:        &User{Name: "Rana", Roles: []Role{{Name: "Manager", Permissions: PermissionSet{{ID: 1, Name: "Edit User"}}}}},
		Permissions: PermissionSet{{ID: 1, Name: "Edit User"}},
	}

	c := orig.Clone()
	if diff := cmp.Diff(orig, c); diff != "" {
		t.Errorf("Clone() mismatch (-want +got):\n%s", diff)
	}

	c.User.Name = "Other"
	c.User.Roles[0].Permissions[0].Name = "Changed"
	c.Permissions[0].Name = "Changed"
	if orig.User.Name != "Rana" || orig.User.Roles[0].Permissions[0].Name != "Edit User" || orig.Permissions[0].Name != "Edit User" {
		t.Errorf("Clone() shares state with the original: %+v", orig)
	}

	var nilSess *Session
	if nilSess.Clone() != nil {
		t.Error("Clone() of nil session should be nil")
	}
}

func TestSession_CloneRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sess *Session
	}{
		{name: "anonymous", sess: &Session{Bootstrapped: true}},
		{name: "user without roles", sess: &Session{Token: "t", User: &User{Name: "Rana"}, Bootstrapped: true}},
		{name: "user with empty roles", sess: &Session{Token: "t", User: &User{Name: "Rana", Roles: []Role{}}, Permissions: PermissionSet{}}},
		{name: "role without permissions", sess: &Session{Token: "t", User: &User{Name: "Rana", Roles: []Role{{ID: 2, Name: "Viewer"}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.sess, tt.sess.Clone()); diff != "" {
				t.Errorf("Clone() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSession_AuthenticateClear(t *testing.T) {
	t.Parallel()

	sess := New(uuid.Must(uuid.NewV4()))
	if !sess.Loading() {
		t.Fatal("Loading() = false for a new session")
	}

	user := &User{ID: "u-1", Name: "Rana"}
	perms := PermissionSet{{ID: 1, Name: "Preview User"}}
	sess.Authenticate("tok", user, perms)

	if !sess.Authenticated() || sess.Loading() {
		t.Fatalf("after Authenticate() Authenticated = %v, Loading = %v", sess.Authenticated(), sess.Loading())
	}
	if got := sess.Username(); got != "Rana" {
		t.Errorf("Username() = %q, want %q", got, "Rana")
	}
	if diff := cmp.Diff(perms, sess.Permissions); diff != "" {
		t.Errorf("Permissions mismatch (-want +got):\n%s", diff)
	}

	sess.Clear()
	if sess.Authenticated() || sess.Loading() {
		t.Fatalf("after Clear() Authenticated = %v, Loading = %v", sess.Authenticated(), sess.Loading())
	}
	if sess.User != nil || sess.Permissions != nil {
		t.Errorf("after Clear() User = %v, Permissions = %v", sess.User, sess.Permissions)
	}
}
