// Package dbtype contains types used by the database driver packages for session storage.
package dbtype

import (
	"time"

	"github.com/gofrs/uuid"
)

// Session defines the structure for storing session data in the database.
// Data holds the JSON encoded session state.
type Session struct {
	ID        uuid.UUID `db:"Id"`
	Data      []byte    `db:"Data"`
	CreatedAt time.Time `db:"CreatedAt"`
	UpdatedAt time.Time `db:"UpdatedAt"`
	Expired   bool      `db:"Expired"`
}
