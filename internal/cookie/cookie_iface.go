package cookie

import (
	"net/http"

	"github.com/gofrs/uuid"
)

var _ Handler = &Client{}

// Handler Interface included for testability
type Handler interface {
	NewAuthCookie(w http.ResponseWriter, sameSiteStrict bool, sessionID uuid.UUID) (map[Key]string, error)
	ReadAuthCookie(r *http.Request) (map[Key]string, bool)
	WriteAuthCookie(w http.ResponseWriter, sameSiteStrict bool, cval map[Key]string) error
	DeleteAuthCookie(w http.ResponseWriter)
	ReadTokenCookie(r *http.Request) (string, bool)
	WriteTokenCookie(w http.ResponseWriter, token string) error
	RefreshXSRFTokenCookie(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID) (token string, err error)
	HasValidXSRFToken(r *http.Request) bool
	WriteFlash(w http.ResponseWriter, flash Flash) error
	ConsumeFlash(w http.ResponseWriter, r *http.Request) (Flash, bool)
}
