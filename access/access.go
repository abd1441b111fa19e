// Package access decides whether the current session may perform an action.
//
// Permissions are flat, human-readable names compared with exact,
// case-sensitive equality. A super admin passes every check, including checks
// for names the API has never defined.
package access

import (
	"context"

	"github.com/helmethub/dealerdesk/sessioninfo"
)

// Permission names gating dashboard routes.
const (
	PreviewUser = "Preview User"
	CreateUser  = "Create User"
	EditUser    = "Edit User"
	PreviewRole = "Preview Role"
	CreateRole  = "Create Role"
	EditRole    = "Edit Role"
)

// HasPermission reports whether sess may perform the action called name.
func HasPermission(sess *sessioninfo.Session, name string) bool {
	if !sess.Authenticated() || sess.User == nil {
		return false
	}
	if sess.User.IsSuperAdmin {
		return true
	}

	return sess.Permissions.Has(name)
}

// HasPermissionCtx is HasPermission for the session stored in ctx.
func HasPermissionCtx(ctx context.Context, name string) bool {
	sess, ok := sessioninfo.Lookup(ctx)
	if !ok {
		return false
	}

	return HasPermission(sess, name)
}

// Checker binds HasPermission to one session so templates can call it.
type Checker struct {
	sess *sessioninfo.Session
}

// For returns a Checker for sess.
func For(sess *sessioninfo.Session) Checker {
	return Checker{sess: sess}
}

// Can reports whether the bound session holds the permission.
func (c Checker) Can(name string) bool {
	return HasPermission(c.sess, name)
}
