package sessionstorage

import (
	"encoding/json"

	"github.com/go-playground/errors/v5"
	"github.com/helmethub/dealerdesk/sessioninfo"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("github.com/helmethub/dealerdesk/sessionstorage")

func encode(session *sessioninfo.Session) ([]byte, error) {
	b, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrap(err, "json.Marshal()")
	}

	return b, nil
}

func decode(b []byte) (*sessioninfo.Session, error) {
	session := &sessioninfo.Session{}
	if err := json.Unmarshal(b, session); err != nil {
		return nil, errors.Wrap(err, "json.Unmarshal()")
	}

	return session, nil
}
