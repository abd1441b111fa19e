package cookie

import (
	"slices"
	"time"

	"github.com/gofrs/uuid"
)

// Key is a type for storing values in an encoded cookie
type Key string

const (
	// SessionID is the key used to store the SessionID in the auth cookie
	SessionID Key = "sessionID"

	// SameSiteStrict is the key used to store the sameSiteStrict cookie setting
	SameSiteStrict Key = "sameSiteStrict"

	// Token is the key used to store the API bearer token in the token cookie
	Token Key = "token"

	// xsrfSessionID is the key used to store the SessionID in the XSRF cookie
	xsrfSessionID Key = "sessionid"

	// xsrfExpiration is the key used to store the expiration in the XSRF cookie
	xsrfExpiration Key = "expiration"

	flashKind    Key = "kind"
	flashMessage Key = "message"
)

const (
	// AuthCookieName is the cookie name of the session ID cookie
	AuthCookieName = "auth"

	// TokenCookieName is the cookie name of the persisted bearer token
	TokenCookieName = "token"

	// XSRFCookieName is the cookie name of the XSRF Token Cookie
	XSRFCookieName = "XSRF-TOKEN"

	// XSRFHeaderName is the header name of the XSRF Token
	XSRFHeaderName = "X-XSRF-TOKEN"

	// XSRFFormField is the form field carrying the XSRF Token on HTML form posts
	XSRFFormField = "xsrf_token"

	// FlashCookieName is the cookie name of the one-shot notification
	FlashCookieName = "flash"

	// XSRFCookieLife controls XSRF Cookie expiration
	XSRFCookieLife = time.Hour

	// XSRFReWriteWindow controls rewriting the xsrf cookie if it expires within the duration
	XSRFReWriteWindow = 30 * time.Minute

	// TokenCookieLife is how long the browser keeps the bearer token
	TokenCookieLife = 30 * 24 * time.Hour

	flashCookieLife = time.Minute
)

// FlashKind is the severity of a Flash.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

// Flash is a notification shown once on the next rendered page.
type Flash struct {
	Kind    FlashKind
	Message string
}

// SafeMethods are Idempotent methods as defined by RFC7231 section 4.2.2.
var SafeMethods = methods([]string{"GET", "HEAD", "OPTIONS", "TRACE"})

type methods []string

func (vals methods) Contain(s string) bool {
	return slices.Contains(vals, s)
}

// ValidSessionID checks that the sessionID is a valid uuid
func ValidSessionID(sessionID string) (uuid.UUID, bool) {
	id, err := uuid.FromString(sessionID)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}

	return id, true
}
