// Package cookie reads and writes the encoded cookies that carry browser
// state: the session ID, the persisted API token, the XSRF token and
// one-shot flash notifications.
package cookie

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
	"github.com/gorilla/securecookie"
	"github.com/helmethub/dealerdesk/sessioninfo"
)

// Client implements Handler on top of securecookie.
type Client struct {
	secureCookie *securecookie.SecureCookie
	cookieOptions
}

// NewCookieClient derives the cookie codec from cookieKey, a base64 encoded key
// of at least 96 bytes. An empty key generates a random one.
func NewCookieClient(cookieKey string, options ...Option) (*Client, error) {
	sc, err := createSecureCookie(cookieKey)
	if err != nil {
		return nil, errors.Wrap(err, "createSecureCookie()")
	}

	c := &Client{
		secureCookie: sc,
		cookieOptions: cookieOptions{
			CookieName:      AuthCookieName,
			TokenCookieName: TokenCookieName,
			XSRFCookieName:  XSRFCookieName,
			XSRFHeaderName:  XSRFHeaderName,
		},
	}
	for _, opt := range options {
		opt(&c.cookieOptions)
	}

	return c, nil
}

func (c *Client) NewAuthCookie(w http.ResponseWriter, sameSiteStrict bool, sessionID uuid.UUID) (map[Key]string, error) {
	cval := map[Key]string{
		SessionID: sessionID.String(),
	}

	if err := c.WriteAuthCookie(w, sameSiteStrict, cval); err != nil {
		return nil, errors.Wrap(err, "Client.WriteAuthCookie()")
	}

	return cval, nil
}

func (c *Client) ReadAuthCookie(r *http.Request) (map[Key]string, bool) {
	cval := make(map[Key]string)

	cookie, err := r.Cookie(c.CookieName)
	if err != nil {
		return cval, false
	}
	if err := c.secureCookie.Decode(c.CookieName, cookie.Value, &cval); err != nil {
		logger.Req(r).Error(errors.Wrap(err, "secureCookie.Decode()"))

		return cval, false
	}

	return cval, true
}

func (c *Client) WriteAuthCookie(w http.ResponseWriter, sameSiteStrict bool, cval map[Key]string) error {
	cval[SameSiteStrict] = strconv.FormatBool(sameSiteStrict)
	encoded, err := c.secureCookie.Encode(c.CookieName, cval)
	if err != nil {
		return errors.Wrap(err, "securecookie.Encode()")
	}

	sameSite := http.SameSiteStrictMode
	if !sameSiteStrict {
		sameSite = http.SameSiteLaxMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     c.CookieName,
		Value:    encoded,
		Path:     "/",
		Domain:   c.Domain,
		Secure:   secureCookie(),
		HttpOnly: true,
		SameSite: sameSite,
	})

	return nil
}

func (c *Client) DeleteAuthCookie(w http.ResponseWriter) {
	c.delete(w, c.CookieName, c.Domain)
}

// ReadTokenCookie returns the persisted bearer token. A missing, unreadable or
// empty cookie is reported as not found.
func (c *Client) ReadTokenCookie(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(c.TokenCookieName)
	if err != nil {
		return "", false
	}

	cval := make(map[Key]string)
	if err := c.secureCookie.Decode(c.TokenCookieName, cookie.Value, &cval); err != nil {
		logger.Req(r).Error(errors.Wrap(err, "secureCookie.Decode()"))

		return "", false
	}

	token := cval[Token]

	return token, token != ""
}

// WriteTokenCookie persists token in the browser. An empty token removes the
// cookie.
func (c *Client) WriteTokenCookie(w http.ResponseWriter, token string) error {
	if token == "" {
		c.delete(w, c.TokenCookieName, c.Domain)

		return nil
	}

	encoded, err := c.secureCookie.Encode(c.TokenCookieName, map[Key]string{Token: token})
	if err != nil {
		return errors.Wrap(err, "securecookie.Encode()")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     c.TokenCookieName,
		Value:    encoded,
		Expires:  time.Now().Add(TokenCookieLife),
		Path:     "/",
		Domain:   c.Domain,
		Secure:   secureCookie(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// RefreshXSRFTokenCookie sets the cookie if it does not exist and updates the cookie when it is close to expiration.
// It returns the token value forms must echo back.
func (c *Client) RefreshXSRFTokenCookie(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID) (string, error) {
	if cookie, err := r.Cookie(c.XSRFCookieName); err == nil {
		if cval, found := c.decodeXSRF(r, cookie.Value); found && cval[xsrfSessionID] == sessionID.String() {
			exp, err := time.Parse(time.UnixDate, cval[xsrfExpiration])
			if err != nil {
				logger.Req(r).Error("parsing expiration")
			} else if time.Now().Before(exp.Add(-XSRFReWriteWindow)) {
				return cookie.Value, nil
			}
		}
	}

	cval := map[Key]string{
		xsrfSessionID:  sessionID.String(),
		xsrfExpiration: time.Now().Add(XSRFCookieLife).Format(time.UnixDate),
	}

	token, err := c.writeXSRFCookie(w, cval)
	if err != nil {
		return "", errors.Wrap(err, "Client.writeXSRFCookie()")
	}

	return token, nil
}

// HasValidXSRFToken checks the XSRF cookie against the header, or the form
// field when no header is sent, and the session in the request context.
func (c *Client) HasValidXSRFToken(r *http.Request) bool {
	cookie, err := r.Cookie(c.XSRFCookieName)
	if err != nil {
		return false
	}
	cval, found := c.decodeXSRF(r, cookie.Value)
	if !found {
		return false
	}
	exp, err := time.Parse(time.UnixDate, cval[xsrfExpiration])
	if err != nil {
		logger.Req(r).Error("parsing expiration")

		return false
	}
	if time.Now().After(exp) {
		return false
	}
	sess, ok := sessioninfo.Lookup(r.Context())
	if !ok || sess.ID.String() != cval[xsrfSessionID] {
		return false
	}

	submitted := r.Header.Get(c.XSRFHeaderName)
	if submitted == "" {
		submitted = r.PostFormValue(XSRFFormField)
	}
	hval, found := c.decodeXSRF(r, submitted)
	if !found {
		return false
	}

	return hval[xsrfSessionID] == cval[xsrfSessionID]
}

func (c *Client) writeXSRFCookie(w http.ResponseWriter, cval map[Key]string) (string, error) {
	encoded, err := c.secureCookie.Encode(c.XSRFCookieName, cval)
	if err != nil {
		return "", errors.Wrap(err, "securecookie.Encode()")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     c.XSRFCookieName,
		Expires:  time.Now().Add(XSRFCookieLife),
		Value:    encoded,
		Path:     "/",
		Secure:   secureCookie(),
		SameSite: http.SameSiteStrictMode,
	})

	return encoded, nil
}

func (c *Client) decodeXSRF(r *http.Request, value string) (map[Key]string, bool) {
	if value == "" {
		return nil, false
	}

	cval := make(map[Key]string)
	if err := c.secureCookie.Decode(c.XSRFCookieName, value, &cval); err != nil {
		logger.Req(r).Error(errors.Wrap(err, "securecookie.Decode()"))

		return nil, false
	}

	return cval, true
}

// WriteFlash queues a notification for the next rendered page.
func (c *Client) WriteFlash(w http.ResponseWriter, flash Flash) error {
	encoded, err := c.secureCookie.Encode(FlashCookieName, map[Key]string{
		flashKind:    string(flash.Kind),
		flashMessage: flash.Message,
	})
	if err != nil {
		return errors.Wrap(err, "securecookie.Encode()")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    encoded,
		Expires:  time.Now().Add(flashCookieLife),
		Path:     "/",
		Secure:   secureCookie(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// ConsumeFlash returns the queued notification, if any, and removes it.
func (c *Client) ConsumeFlash(w http.ResponseWriter, r *http.Request) (Flash, bool) {
	cookie, err := r.Cookie(FlashCookieName)
	if err != nil {
		return Flash{}, false
	}
	c.delete(w, FlashCookieName, "")

	cval := make(map[Key]string)
	if err := c.secureCookie.Decode(FlashCookieName, cookie.Value, &cval); err != nil {
		logger.Req(r).Error(errors.Wrap(err, "securecookie.Decode()"))

		return Flash{}, false
	}
	if cval[flashMessage] == "" {
		return Flash{}, false
	}

	return Flash{Kind: FlashKind(cval[flashKind]), Message: cval[flashMessage]}, true
}

func (c *Client) delete(w http.ResponseWriter, name, domain string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Path:     "/",
		Domain:   domain,
		Secure:   secureCookie(),
		HttpOnly: true,
	})
}
