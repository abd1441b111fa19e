package cookie

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/google/go-cmp/cmp"
	"github.com/helmethub/dealerdesk/sessioninfo"
)

const cookieKey = "Rsgb6WsDvBsMQ5IJr2WJjVLCPO+o9WW6SdVktdaaq9O0WFA0Hc/EmJeOwCGV6LIqG8ue3iSZ/lycpv8ZNKvWjWU42hZnlO15vYANZG89R1ncjmu4KStldFuP/r0RFhZa"

var (
	sessionA = uuid.Must(uuid.FromString("de6e1a12-2d4d-4c4d-aaf1-d82cb9a9eff5"))
	sessionB = uuid.Must(uuid.FromString("ba4fdd80-b566-4128-b593-68614e15a753"))
)

func newClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewCookieClient(cookieKey)
	if err != nil {
		t.Fatalf("NewCookieClient() error = %v", err)
	}

	return c
}

// requestWithCookies copies the cookies set on w into a new request.
func requestWithCookies(method string, w *httptest.ResponseRecorder) *http.Request {
	return &http.Request{
		Method: method,
		Header: http.Header{"Cookie": w.Header().Values("Set-Cookie")},
	}
}

// mockRequestWithXSRFToken Mocks Request with XSRF Token
func mockRequestWithXSRFToken(t *testing.T, setHeader bool, cookieSessionID, requestSessionID uuid.UUID) *http.Request {
	t.Helper()

	w := httptest.NewRecorder()
	c := newClient(t)
	token, err := c.RefreshXSRFTokenCookie(w, &http.Request{}, cookieSessionID)
	if err != nil || token == "" {
		t.Fatalf("RefreshXSRFTokenCookie() = %q, %v; should have set cookie in request recorder", token, err)
	}

	r := requestWithCookies(http.MethodPost, w)
	if setHeader {
		r.Header.Set(XSRFHeaderName, token)
	}

	return r.WithContext(sessioninfo.NewCtx(context.Background(), &sessioninfo.Session{ID: requestSessionID}))
}

func TestNewCookieClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cookieKey string
		wantErr   bool
	}{
		{name: "valid key", cookieKey: cookieKey},
		{name: "random key", cookieKey: ""},
		{name: "not base64", cookieKey: "Invalid Key", wantErr: true},
		{name: "too short", cookieKey: "c2hvcnQ=", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := NewCookieClient(tt.cookieKey); (err != nil) != tt.wantErr {
				t.Errorf("NewCookieClient() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateKey(t *testing.T) {
	t.Parallel()

	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() error = %v", err)
	}
	if len(key) != 128 {
		t.Errorf("len(GenerateKey()) = %d, want 128", len(key))
	}
	if _, err := NewCookieClient(key); err != nil {
		t.Errorf("NewCookieClient(GenerateKey()) error = %v", err)
	}
}

func TestClient_NewAuthCookie(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		sameSiteStrict bool
	}{
		{name: "same site strict", sameSiteStrict: true},
		{name: "same site lax", sameSiteStrict: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newClient(t)
			w := httptest.NewRecorder()
			got, err := c.NewAuthCookie(w, tt.sameSiteStrict, sessionA)
			if err != nil {
				t.Fatalf("NewAuthCookie() error = %v", err)
			}
			if got[SessionID] != sessionA.String() {
				t.Errorf("NewAuthCookie()[SessionID] = %q, want %q", got[SessionID], sessionA)
			}

			cookie := w.Header().Get("Set-Cookie")
			if sameSiteStrict := strings.Contains(cookie, "; SameSite=Strict"); sameSiteStrict != tt.sameSiteStrict {
				t.Errorf("SameSiteStrict: %v, want SameSiteStrict: %v", sameSiteStrict, tt.sameSiteStrict)
			}
			if secure := strings.Contains(cookie, "; Secure"); secure != secureCookie() {
				t.Errorf("Secure: %v, want Secure: %v", secure, secureCookie())
			}
			if !strings.Contains(cookie, "; HttpOnly") {
				t.Errorf("HttpOnly missing from %q", cookie)
			}
		})
	}
}

func TestClient_ReadAuthCookie(t *testing.T) {
	t.Parallel()

	c := newClient(t)
	w := httptest.NewRecorder()
	cval := map[Key]string{
		SessionID: sessionA.String(),
	}
	if err := c.WriteAuthCookie(w, true, cval); err != nil {
		t.Fatalf("WriteAuthCookie() err = %v", err)
	}

	tests := []struct {
		name      string
		req       *http.Request
		want      map[Key]string
		wantFound bool
	}{
		{
			name:      "success",
			req:       requestWithCookies(http.MethodGet, w),
			want:      map[Key]string{SessionID: sessionA.String(), SameSiteStrict: "true"},
			wantFound: true,
		},
		{
			name: "missing cookie",
			req:  &http.Request{},
			want: map[Key]string{},
		},
		{
			name: "fails to decode",
			req:  &http.Request{Header: http.Header{"Cookie": []string{fmt.Sprintf("%s=some-value", AuthCookieName)}}},
			want: map[Key]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, found := c.ReadAuthCookie(tt.req)
			if found != tt.wantFound {
				t.Errorf("ReadAuthCookie() found = %v, want %v", found, tt.wantFound)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadAuthCookie() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClient_TokenCookie(t *testing.T) {
	t.Parallel()

	c := newClient(t)

	w := httptest.NewRecorder()
	if err := c.WriteTokenCookie(w, "bearer-123"); err != nil {
		t.Fatalf("WriteTokenCookie() error = %v", err)
	}
	if set := w.Header().Get("Set-Cookie"); !strings.Contains(set, "; HttpOnly") || !strings.Contains(set, "Expires=") {
		t.Errorf("token cookie should be persistent and HttpOnly, got %q", set)
	}

	got, found := c.ReadTokenCookie(requestWithCookies(http.MethodGet, w))
	if !found || got != "bearer-123" {
		t.Errorf("ReadTokenCookie() = %q, %v, want %q, true", got, found, "bearer-123")
	}

	cleared := httptest.NewRecorder()
	if err := c.WriteTokenCookie(cleared, ""); err != nil {
		t.Fatalf("WriteTokenCookie(\"\") error = %v", err)
	}
	if set := cleared.Header().Get("Set-Cookie"); !strings.Contains(set, "Max-Age=0") {
		t.Errorf("clearing the token should expire the cookie, got %q", set)
	}

	if _, found := c.ReadTokenCookie(&http.Request{}); found {
		t.Error("ReadTokenCookie() without cookie found = true, want false")
	}

	tampered := &http.Request{Header: http.Header{"Cookie": []string{TokenCookieName + "=abc"}}}
	if _, found := c.ReadTokenCookie(tampered); found {
		t.Error("ReadTokenCookie() with tampered cookie found = true, want false")
	}
}

func TestClient_RefreshXSRFTokenCookie(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		r         *http.Request
		sessionID uuid.UUID
		wantSet   bool
	}{
		{
			name:      "set missing cookie",
			r:         &http.Request{Method: http.MethodGet},
			sessionID: sessionA,
			wantSet:   true,
		},
		{
			name:      "found valid cookie",
			r:         mockRequestWithXSRFToken(t, true, sessionA, sessionA),
			sessionID: sessionA,
			wantSet:   false,
		},
		{
			name:      "session does not match, set new cookie",
			r:         mockRequestWithXSRFToken(t, true, sessionA, sessionB),
			sessionID: sessionB,
			wantSet:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newClient(t)
			w := httptest.NewRecorder()
			token, err := c.RefreshXSRFTokenCookie(w, tt.r, tt.sessionID)
			if err != nil {
				t.Fatalf("RefreshXSRFTokenCookie() error = %v", err)
			}
			if token == "" {
				t.Error("RefreshXSRFTokenCookie() returned empty token")
			}
			if gotSet := w.Header().Get("Set-Cookie") != ""; gotSet != tt.wantSet {
				t.Errorf("RefreshXSRFTokenCookie() set = %v, want %v", gotSet, tt.wantSet)
			}
		})
	}
}

func TestClient_HasValidXSRFToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  *http.Request
		want bool
	}{
		{
			name: "success with header",
			req:  mockRequestWithXSRFToken(t, true, sessionA, sessionA),
			want: true,
		},
		{
			name: "success with form field",
			req: func() *http.Request {
				cookies := mockRequestWithXSRFToken(t, false, sessionA, sessionA)
				xsrf, err := cookies.Cookie(XSRFCookieName)
				if err != nil {
					t.Fatalf("Request.Cookie() error = %v", err)
				}
				body := url.Values{XSRFFormField: {xsrf.Value}}.Encode()
				r := httptest.NewRequest(http.MethodPost, "/users/create", strings.NewReader(body))
				r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				r.AddCookie(xsrf)

				return r.WithContext(cookies.Context())
			}(),
			want: true,
		},
		{
			name: "failure, missing token",
			req:  &http.Request{},
		},
		{
			name: "failure, missing header",
			req:  mockRequestWithXSRFToken(t, false, sessionA, sessionA),
		},
		{
			name: "failure, mismatched session",
			req:  mockRequestWithXSRFToken(t, true, sessionA, sessionB),
		},
		{
			name: "failure, invalid header",
			req: func() *http.Request {
				r := mockRequestWithXSRFToken(t, false, sessionA, sessionA)
				r.Header.Set(XSRFHeaderName, "invalid")

				return r
			}(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newClient(t)
			if got := c.HasValidXSRFToken(tt.req); got != tt.want {
				t.Errorf("HasValidXSRFToken() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClient_Flash(t *testing.T) {
	t.Parallel()

	c := newClient(t)
	w := httptest.NewRecorder()
	want := Flash{Kind: FlashSuccess, Message: "Saved"}
	if err := c.WriteFlash(w, want); err != nil {
		t.Fatalf("WriteFlash() error = %v", err)
	}

	consume := httptest.NewRecorder()
	got, ok := c.ConsumeFlash(consume, requestWithCookies(http.MethodGet, w))
	if !ok {
		t.Fatal("ConsumeFlash() ok = false, want true")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ConsumeFlash() mismatch (-want +got):\n%s", diff)
	}
	if set := consume.Header().Get("Set-Cookie"); !strings.Contains(set, FlashCookieName+"=;") {
		t.Errorf("ConsumeFlash() should expire the flash cookie, got %q", set)
	}

	if _, ok := c.ConsumeFlash(httptest.NewRecorder(), &http.Request{}); ok {
		t.Error("ConsumeFlash() without cookie ok = true, want false")
	}
}

func TestValidSessionID(t *testing.T) {
	t.Parallel()

	if _, ok := ValidSessionID("not-a-uuid"); ok {
		t.Error("ValidSessionID(not-a-uuid) = true")
	}
	if _, ok := ValidSessionID(uuid.Nil.String()); ok {
		t.Error("ValidSessionID(nil uuid) = true")
	}
	if got, ok := ValidSessionID(sessionA.String()); !ok || got != sessionA {
		t.Errorf("ValidSessionID() = %v, %v, want %v, true", got, ok, sessionA)
	}
}
