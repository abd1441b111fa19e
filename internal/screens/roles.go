package screens

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/errors/v5"
	"github.com/helmethub/dealerdesk/access"
	"github.com/helmethub/dealerdesk/apiclient"
	"github.com/helmethub/dealerdesk/internal/cookie"
	"github.com/helmethub/dealerdesk/sessioninfo"
)

type rolesContent struct {
	Roles     []apiclient.Role
	Search    string
	CanCreate bool
	CanEdit   bool
}

// Roles renders the role list, filtered by the search query parameter.
func (p *Pages) Roles() http.HandlerFunc {
	return p.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := tracer.Start(r.Context(), "Pages.Roles()")
		defer span.End()
		r = r.WithContext(ctx)

		search := strings.TrimSpace(r.URL.Query().Get("search"))
		pg := page{name: "roles.html", title: "Roles"}
		roles, err := p.api.Roles(ctx, search)
		if err != nil {
			if p.failed(w, r, err) {
				return nil
			}
			pg.notice = errorNotice(err, "Failed to load roles")
		}
		pg.content = rolesContent{
			Roles:     roles,
			Search:    search,
			CanCreate: access.HasPermissionCtx(ctx, access.CreateRole),
			CanEdit:   access.HasPermissionCtx(ctx, access.EditRole),
		}
		p.render(w, r, pg)

		return err
	})
}

// DeleteRole deletes the role named by the id URL parameter.
func (p *Pages) DeleteRole() http.HandlerFunc {
	return p.mutation("id", "/roles", "Role deleted successfully", "Failed to delete role",
		func(r *http.Request, id string) (string, error) {
			roleID, err := strconv.Atoi(id)
			if err != nil {
				return "", errors.Wrapf(err, "role id %q", id)
			}

			return p.api.DeleteRole(r.Context(), roleID)
		})
}

// Actions of the role form buttons that do not save.
const (
	roleActionToggleAll = "toggle-all"
	roleActionReload    = "reload"
)

type matrixPermission struct {
	ID      int
	Name    string
	Checked bool
}

type matrixModule struct {
	Name        string
	Checked     bool
	Permissions []matrixPermission
}

type roleFormContent struct {
	Form       Form
	ID         int
	Modules    []matrixModule
	AllChecked bool

	// Unavailable is set when the permission list could not be loaded. The
	// form then carries Kept as hidden fields and offers no save.
	Unavailable bool
	Kept        []int
}

// newRoleFormContent projects the selection onto the permission matrix.
func newRoleFormContent(form Form, id int, modules []access.Module, sel *access.Selection) *roleFormContent {
	content := &roleFormContent{Form: form, ID: id, AllChecked: sel.AllChecked()}
	for _, m := range modules {
		mm := matrixModule{Name: m.Name, Checked: sel.ModuleChecked(m)}
		for _, perm := range m.Permissions {
			mm.Permissions = append(mm.Permissions, matrixPermission{ID: perm.ID, Name: perm.Name, Checked: sel.Selected(perm.ID)})
		}
		content.Modules = append(content.Modules, mm)
	}

	return content
}

// CreateRole renders the empty role form and creates the posted role.
func (p *Pages) CreateRole() http.HandlerFunc {
	return p.roleForm(false)
}

// EditRole renders the role named by the id URL parameter and saves the
// posted changes.
func (p *Pages) EditRole() http.HandlerFunc {
	return p.roleForm(true)
}

// roleForm serves the role form. Posts with an action other than saving
// toggle the permission matrix and render it again without calling the API.
func (p *Pages) roleForm(edit bool) http.HandlerFunc {
	return p.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := tracer.Start(r.Context(), "Pages.roleForm()")
		defer span.End()
		r = r.WithContext(ctx)

		pg := page{name: "role_form.html", title: "Create Role"}
		var id int
		if edit {
			var err error
			if id, err = strconv.Atoi(urlParam(r, "id")); err != nil {
				p.NotFound(w, r)

				return nil
			}
			pg.title = "Edit Role"
		}

		all, err := p.api.Permissions(ctx)
		if err != nil {
			if p.failed(w, r, err) {
				return nil
			}

			return p.permissionsUnavailable(w, r, pg, id, edit, err)
		}
		modules := access.GroupByModule(all)

		if r.Method != http.MethodPost {
			var form Form
			var selected []int
			if edit {
				role, err := p.api.Role(ctx, id)
				if err != nil {
					return p.loadFailed(w, r, err, "/roles", "Failed to load role")
				}
				form.Values = map[string][]string{"name": {role.Name}}
				selected = permissionIDs(role.Permissions)
			}
			pg.content = newRoleFormContent(form, id, modules, access.NewSelection(all, selected))
			p.render(w, r, pg)

			return nil
		}

		form := newForm(r)
		sel := access.NewSelection(all, postedIDs(form.Values["permissions"]))
		delete(form.Values, "permissions")

		// The module and permission buttons name what they toggle.
		switch {
		case form.Value("action") == roleActionReload:
		case form.Value("action") == roleActionToggleAll:
			sel.ToggleAll()
		case form.Value("module") != "":
			for _, m := range modules {
				if m.Name == form.Value("module") {
					sel.ToggleModule(m)
				}
			}
		case form.Value("permission") != "":
			if permID, err := strconv.Atoi(form.Value("permission")); err == nil {
				sel.Toggle(permID)
			}
		default:
			return p.saveRole(w, r, pg, form, id, modules, sel, edit)
		}
		delete(form.Values, "action")
		delete(form.Values, "module")
		delete(form.Values, "permission")

		pg.content = newRoleFormContent(form, id, modules, sel)
		p.render(w, r, pg)

		return nil
	})
}

// permissionsUnavailable renders the role form without the matrix. The role's
// or the posted permission IDs are kept in the form so a reload restores them,
// and nothing is saved.
func (p *Pages) permissionsUnavailable(w http.ResponseWriter, r *http.Request, pg page, id int, edit bool, loadErr error) error {
	var form Form
	var kept []int
	if r.Method == http.MethodPost {
		form = newForm(r)
		kept = postedIDs(form.Values["permissions"])
		for _, field := range []string{"permissions", "action", "module", "permission"} {
			delete(form.Values, field)
		}
	} else if edit {
		role, err := p.api.Role(r.Context(), id)
		if err != nil {
			return p.loadFailed(w, r, err, "/roles", "Failed to load role")
		}
		form.Values = map[string][]string{"name": {role.Name}}
		kept = permissionIDs(role.Permissions)
	}

	pg.content = &roleFormContent{Form: form, ID: id, Unavailable: true, Kept: kept}
	pg.status = http.StatusBadGateway
	pg.notice = errorNotice(loadErr, "Failed to load permissions")
	p.render(w, r, pg)

	return nil
}

func (p *Pages) saveRole(w http.ResponseWriter, r *http.Request, pg page, form Form, id int, modules []access.Module, sel *access.Selection, edit bool) error {
	content := newRoleFormContent(form, id, modules, sel)
	pg.content = content

	in := apiclient.RoleInput{Name: content.Form.Value("name"), Permissions: sel.IDs()}
	if in.Name == "" {
		content.Form.Errors = map[string]string{"name": "Role Name is required"}
		pg.status = http.StatusUnprocessableEntity
		p.render(w, r, pg)

		return nil
	}

	var (
		msg     string
		err     error
		success = "Role created!"
	)
	if edit {
		msg, err = p.api.UpdateRole(r.Context(), id, in)
		success = "Role updated!"
	} else {
		msg, err = p.api.CreateRole(r.Context(), in)
	}

	return p.finishForm(w, r, &content.Form, msg, err, formOutcome{
		success: success,
		failure: "Failed to save Role",
		next:    "/roles",
		render: func(status int, notice *cookie.Flash) {
			pg.status, pg.notice = status, notice
			p.render(w, r, pg)
		},
	})
}

func permissionIDs(perms sessioninfo.PermissionSet) []int {
	ids := make([]int, 0, len(perms))
	for _, perm := range perms {
		ids = append(ids, perm.ID)
	}

	return ids
}

func postedIDs(vals []string) []int {
	ids := make([]int, 0, len(vals))
	for _, v := range vals {
		if id, err := strconv.Atoi(v); err == nil {
			ids = append(ids, id)
		}
	}

	return ids
}
