// Package sessioninfo defines the browser session state shared by the
// dashboard: who is logged in, which token they hold and what they may do.
package sessioninfo

import (
	"slices"
	"time"

	"github.com/gofrs/uuid"
)

// Permission is an action label granted through roles, e.g. "Edit User".
type Permission struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Module string `json:"module"`
}

// PermissionSet is the set of permissions held by a session.
type PermissionSet []Permission

// Has reports whether the set contains a permission with the exact name.
func (p PermissionSet) Has(name string) bool {
	return slices.ContainsFunc(p, func(perm Permission) bool {
		return perm.Name == name
	})
}

// Names returns the permission names in set order.
func (p PermissionSet) Names() []string {
	names := make([]string, 0, len(p))
	for _, perm := range p {
		names = append(names, perm.Name)
	}

	return names
}

// Role groups permissions.
type Role struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Permissions PermissionSet `json:"permissions,omitempty"`
}

// User is the authenticated user as reported by the API.
type User struct {
	ID           string `json:"uuid"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	IsSuperAdmin bool   `json:"is_super_admin"`
	Roles        []Role `json:"roles,omitempty"`
}

// EffectivePermissions returns the union of the permissions of all roles
// assigned to the user. Duplicate names collapse to the first occurrence.
func (u *User) EffectivePermissions() PermissionSet {
	if u == nil {
		return nil
	}

	var set PermissionSet
	for _, role := range u.Roles {
		for _, perm := range role.Permissions {
			if !set.Has(perm.Name) {
				set = append(set, perm)
			}
		}
	}

	return set
}

// Session contains the authentication state of one browser session.
//
// Token presence is the single source of truth for authentication. User and
// Permissions are only ever set together with a validated token.
type Session struct {
	ID           uuid.UUID     `json:"id"`
	Token        string        `json:"token,omitempty"`
	User         *User         `json:"user,omitempty"`
	Permissions  PermissionSet `json:"permissions,omitempty"`
	Bootstrapped bool          `json:"bootstrapped"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// New returns an empty session that has not been bootstrapped yet.
func New(id uuid.UUID) *Session {
	now := time.Now()

	return &Session{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Authenticated reports whether the session holds a token.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// Loading reports whether the session is still waiting on its bootstrap.
func (s *Session) Loading() bool {
	return s != nil && !s.Bootstrapped
}

// SuperAdmin reports whether the authenticated user bypasses permission checks.
func (s *Session) SuperAdmin() bool {
	return s.Authenticated() && s.User != nil && s.User.IsSuperAdmin
}

// Username returns the name of the authenticated user or an empty string.
func (s *Session) Username() string {
	if !s.Authenticated() || s.User == nil {
		return ""
	}

	return s.User.Name
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	c := *s
	c.Permissions = slices.Clone(s.Permissions)
	if s.User != nil {
		u := *s.User
		u.Roles = slices.Clone(s.User.Roles)
		for i := range u.Roles {
			u.Roles[i].Permissions = slices.Clone(u.Roles[i].Permissions)
		}
		c.User = &u
	}

	return &c
}

// Authenticate stores a validated token together with its user and
// permissions.
func (s *Session) Authenticate(token string, user *User, perms PermissionSet) {
	s.Token = token
	s.User = user
	s.Permissions = perms
	s.Bootstrapped = true
}

// Clear drops the token, user and permissions. The session stays
// bootstrapped.
func (s *Session) Clear() {
	s.Token = ""
	s.User = nil
	s.Permissions = nil
	s.Bootstrapped = true
}
