package screens

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/helmethub/dealerdesk/apiclient"
	"github.com/helmethub/dealerdesk/internal/cookie"
	"github.com/helmethub/dealerdesk/mock/mock_apiclient"
	"github.com/helmethub/dealerdesk/sessioninfo"
	gomock "go.uber.org/mock/gomock"
)

func TestPages_Users(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sess       *sessioninfo.Session
		wantCreate bool
		wantEdit   bool
	}{
		{name: "super admin", sess: admin(), wantCreate: true, wantEdit: true},
		{
			name: "preview only",
			sess: &sessioninfo.Session{
				Token:        "token",
				User:         &sessioninfo.User{Name: "Rana"},
				Permissions:  sessioninfo.PermissionSet{{ID: 1, Name: "Preview User"}},
				Bootstrapped: true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, api, _ := newTestPages(t)
			api.EXPECT().Users(gomock.Any(), "kar").Return([]apiclient.User{
				{UUID: "u1", Name: "Karim", Email: "karim@example.com", Status: apiclient.StatusActive, Roles: []sessioninfo.Role{{Name: "Ops"}, {Name: "Sales"}}},
			}, nil)

			r := request(http.MethodGet, "/users?search=+kar+", nil)
			r = r.WithContext(sessioninfo.NewCtx(r.Context(), tt.sess))
			w := httptest.NewRecorder()
			p.Users().ServeHTTP(w, r)

			body := w.Body.String()
			for _, want := range []string{"Ops, Sales", `value="kar"`, "/users/u1/suspend"} {
				if !strings.Contains(body, want) {
					t.Errorf("Users() body missing %q", want)
				}
			}
			if got := strings.Contains(body, `href="/users/create"`); got != tt.wantCreate {
				t.Errorf("Users() create link = %v, want %v", got, tt.wantCreate)
			}
			if got := strings.Contains(body, `href="/users/edit/u1"`); got != tt.wantEdit {
				t.Errorf("Users() edit link = %v, want %v", got, tt.wantEdit)
			}
		})
	}
}

func TestPages_userForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		edit       bool
		form       url.Values
		prepare    func(api *mock_apiclient.MockAPI)
		wantStatus int
		wantBody   []string
		wantFlash  []cookie.Flash
	}{
		{
			name:       "create needs a password",
			form:       url.Values{"name": {"Karim"}, "email": {"karim@example.com"}},
			prepare:    func(*mock_apiclient.MockAPI) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{"Password is required"},
		},
		{
			name:       "short password is not echoed",
			form:       url.Values{"name": {"Ka"}, "email": {"karim@example.com"}, "password": {"abc12"}},
			prepare:    func(*mock_apiclient.MockAPI) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{"Must be at least 3 characters", "Must be at least 6 characters"},
		},
		{
			name: "created",
			form: url.Values{"name": {"Karim"}, "email": {"karim@example.com"}, "password": {" secret1 "}},
			prepare: func(api *mock_apiclient.MockAPI) {
				api.EXPECT().CreateUser(gomock.Any(), apiclient.UserInput{Name: "Karim", Email: "karim@example.com", Password: " secret1 "}).Return("", nil)
			},
			wantStatus: http.StatusSeeOther,
			wantFlash:  []cookie.Flash{{Kind: cookie.FlashSuccess, Message: "User created!"}},
		},
		{
			name: "update keeps a blank password",
			edit: true,
			form: url.Values{"name": {"Karim"}, "email": {"karim@example.com"}, "password": {""}},
			prepare: func(api *mock_apiclient.MockAPI) {
				api.EXPECT().UpdateUser(gomock.Any(), "u1", apiclient.UserInput{Name: "Karim", Email: "karim@example.com"}).Return("", nil)
			},
			wantStatus: http.StatusSeeOther,
			wantFlash:  []cookie.Flash{{Kind: cookie.FlashSuccess, Message: "User updated!"}},
		},
		{
			name: "api failure",
			edit: true,
			form: url.Values{"name": {"Karim"}, "email": {"karim@example.com"}, "password": {"secret1"}},
			prepare: func(api *mock_apiclient.MockAPI) {
				api.EXPECT().UpdateUser(gomock.Any(), "u1", gomock.Any()).Return("", &apiclient.StatusError{StatusCode: http.StatusInternalServerError})
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   []string{"Failed to save User"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, api, sess := newTestPages(t)
			tt.prepare(api)

			handler, r := p.CreateUser(), postForm("/users/create", tt.form)
			if tt.edit {
				handler, r = p.EditUser(), postForm("/users/edit/u1", tt.form, "id", "u1")
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			body := w.Body.String()
			for _, want := range tt.wantBody {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q", want)
				}
			}
			if pw := tt.form.Get("password"); pw != "" && strings.Contains(body, pw) {
				t.Errorf("body echoes the password")
			}
			if diff := cmp.Diff(tt.wantFlash, sess.flashes); diff != "" {
				t.Errorf("flashes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPages_EditBikeModel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		form       url.Values
		prepare    func(api *mock_apiclient.MockAPI)
		wantStatus int
		wantBody   string
		wantFlash  []cookie.Flash
	}{
		{
			name:   "prefills the form",
			method: http.MethodGet,
			prepare: func(api *mock_apiclient.MockAPI) {
				api.EXPECT().BikeModel(gomock.Any(), "m1").Return(&apiclient.BikeModel{UUID: "m1", Name: "Pulsar", Detail: "150cc"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "150cc",
		},
		{
			name:   "unknown model",
			method: http.MethodGet,
			prepare: func(api *mock_apiclient.MockAPI) {
				api.EXPECT().BikeModel(gomock.Any(), "m1").Return(nil, &apiclient.StatusError{StatusCode: http.StatusNotFound})
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "Page not found",
		},
		{
			name:       "name too short",
			method:     http.MethodPost,
			form:       url.Values{"name": {"Pu"}},
			prepare:    func(*mock_apiclient.MockAPI) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "Must be at least 3 characters",
		},
		{
			name:   "updated",
			method: http.MethodPost,
			form:   url.Values{"name": {"Pulsar N"}, "detail": {"160cc"}},
			prepare: func(api *mock_apiclient.MockAPI) {
				api.EXPECT().UpdateBikeModel(gomock.Any(), "m1", apiclient.BikeModelInput{Name: "Pulsar N", Detail: "160cc"}).Return("", nil)
			},
			wantStatus: http.StatusSeeOther,
			wantFlash:  []cookie.Flash{{Kind: cookie.FlashSuccess, Message: "Bike model updated!"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, api, sess := newTestPages(t)
			tt.prepare(api)

			r := request(http.MethodGet, "/models/edit/m1", nil, "id", "m1")
			if tt.method == http.MethodPost {
				r = postForm("/models/edit/m1", tt.form, "id", "m1")
			}
			w := httptest.NewRecorder()
			p.EditBikeModel().ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("EditBikeModel() status = %d, want %d", w.Code, tt.wantStatus)
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("EditBikeModel() body missing %q", tt.wantBody)
			}
			if diff := cmp.Diff(tt.wantFlash, sess.flashes); diff != "" {
				t.Errorf("EditBikeModel() flashes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPages_Dealers(t *testing.T) {
	t.Parallel()

	p, api, _ := newTestPages(t)
	api.EXPECT().Dealers(gomock.Any()).Return(nil, &apiclient.StatusError{StatusCode: http.StatusBadGateway})

	w := httptest.NewRecorder()
	p.Dealers().ServeHTTP(w, request(http.MethodGet, "/become-dealer", nil))

	for _, want := range []string{"Failed to fetch dealers", "No dealers found.", `action="/become-dealer/import"`} {
		if !strings.Contains(w.Body.String(), want) {
			t.Errorf("Dealers() body missing %q", want)
		}
	}
}

func TestPages_ImportDealers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		r         func() *http.Request
		prepare   func(api *mock_apiclient.MockAPI)
		wantFlash []cookie.Flash
	}{
		{
			name:      "rejects other files",
			r:         func() *http.Request { return uploadRequest("/become-dealer/import", "logo.png", []byte("\x89PNG\r\n\x1a\n0000")) },
			prepare:   func(*mock_apiclient.MockAPI) {},
			wantFlash: []cookie.Flash{{Kind: cookie.FlashError, Message: "Only Excel or CSV files are accepted, got image/png"}},
		},
		{
			name: "uploaded",
			r: func() *http.Request {
				return uploadRequest("/become-dealer/import", "dealers.csv", []byte("name,phone\nAcme,0171\nBolt,0181\n"))
			},
			prepare: func(api *mock_apiclient.MockAPI) {
				api.EXPECT().ImportDealers(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, up apiclient.Upload) (string, error) {
					return "", nil
				})
			},
			wantFlash: []cookie.Flash{{Kind: cookie.FlashSuccess, Message: "Dealers uploaded successfully"}},
		},
		{
			name: "api failure",
			r: func() *http.Request {
				return uploadRequest("/become-dealer/import", "dealers.csv", []byte("name,phone\nAcme,0171\nBolt,0181\n"))
			},
			prepare: func(api *mock_apiclient.MockAPI) {
				api.EXPECT().ImportDealers(gomock.Any(), gomock.Any()).Return("", &apiclient.StatusError{StatusCode: http.StatusInternalServerError, Message: "Row 2 is invalid"})
			},
			wantFlash: []cookie.Flash{{Kind: cookie.FlashError, Message: "Row 2 is invalid"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, api, sess := newTestPages(t)
			tt.prepare(api)

			w := httptest.NewRecorder()
			p.ImportDealers().ServeHTTP(w, tt.r())

			if got := w.Header().Get("Location"); got != "/become-dealer" {
				t.Errorf("ImportDealers() Location = %q, want %q", got, "/become-dealer")
			}
			if diff := cmp.Diff(tt.wantFlash, sess.flashes); diff != "" {
				t.Errorf("ImportDealers() flashes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
