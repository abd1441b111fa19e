package screens

import (
	"net/http"
	"strings"

	"github.com/helmethub/dealerdesk/access"
	"github.com/helmethub/dealerdesk/apiclient"
	"github.com/helmethub/dealerdesk/internal/cookie"
)

type usersContent struct {
	Users     []apiclient.User
	Search    string
	CanCreate bool
	CanEdit   bool
}

// Users renders the user list, filtered by the search query parameter.
func (p *Pages) Users() http.HandlerFunc {
	return p.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := tracer.Start(r.Context(), "Pages.Users()")
		defer span.End()
		r = r.WithContext(ctx)

		search := strings.TrimSpace(r.URL.Query().Get("search"))
		pg := page{name: "users.html", title: "Users"}
		users, err := p.api.Users(ctx, search)
		if err != nil {
			if p.failed(w, r, err) {
				return nil
			}
			pg.notice = errorNotice(err, "Failed to load users")
		}
		pg.content = usersContent{
			Users:     users,
			Search:    search,
			CanCreate: access.HasPermissionCtx(ctx, access.CreateUser),
			CanEdit:   access.HasPermissionCtx(ctx, access.EditUser),
		}
		p.render(w, r, pg)

		return err
	})
}

// DeleteUser deletes the user named by the uuid URL parameter.
func (p *Pages) DeleteUser() http.HandlerFunc {
	return p.mutation("uuid", "/users", "User deleted successfully", "Failed to delete user",
		func(r *http.Request, id string) (string, error) {
			return p.api.DeleteUser(r.Context(), id)
		})
}

// SuspendUser marks the user inactive.
func (p *Pages) SuspendUser() http.HandlerFunc {
	return p.mutation("uuid", "/users", "User suspended successfully", "Failed to suspend user",
		func(r *http.Request, id string) (string, error) {
			return p.api.SuspendUser(r.Context(), id)
		})
}

// ActivateUser marks the user active.
func (p *Pages) ActivateUser() http.HandlerFunc {
	return p.mutation("uuid", "/users", "User activated successfully", "Failed to activate user",
		func(r *http.Request, id string) (string, error) {
			return p.api.ActivateUser(r.Context(), id)
		})
}

type newUserInput struct {
	Name     string `form:"name" validate:"required,min=3"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

// userUpdateInput leaves the password unchanged when it is blank.
type userUpdateInput struct {
	Name     string `form:"name" validate:"required,min=3"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"omitempty,min=6"`
}

var userMessages = map[string]string{
	"name.required":     "Name is required",
	"name.min":          "Must be at least 3 characters",
	"email.required":    "Email is required",
	"email.email":       "Invalid email format",
	"password.required": "Password is required",
	"password.min":      "Must be at least 6 characters",
}

type userFormContent struct {
	Form Form
	UUID string
}

// CreateUser renders the empty user form and creates the posted user.
func (p *Pages) CreateUser() http.HandlerFunc {
	return p.userForm(false)
}

// EditUser renders the user named by the id URL parameter and saves the
// posted changes.
func (p *Pages) EditUser() http.HandlerFunc {
	return p.userForm(true)
}

func (p *Pages) userForm(edit bool) http.HandlerFunc {
	return p.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := tracer.Start(r.Context(), "Pages.userForm()")
		defer span.End()
		r = r.WithContext(ctx)

		content := &userFormContent{}
		pg := page{name: "user_form.html", title: "Create User", content: content}
		if edit {
			content.UUID = urlParam(r, "id")
			pg.title = "Edit User"
		}

		if r.Method != http.MethodPost {
			if edit {
				user, err := p.api.User(ctx, content.UUID)
				if err != nil {
					return p.loadFailed(w, r, err, "/users", "Failed to load user")
				}
				content.Form.Values = map[string][]string{"name": {user.Name}, "email": {user.Email}}
			}
			p.render(w, r, pg)

			return nil
		}

		content.Form = newForm(r)
		in := apiclient.UserInput{
			Name:     content.Form.Value("name"),
			Email:    content.Form.Value("email"),
			Password: r.PostFormValue("password"),
		}
		// The password is never echoed back into the form.
		delete(content.Form.Values, "password")
		if edit {
			content.Form.check(userUpdateInput(in), userMessages)
		} else {
			content.Form.check(newUserInput(in), userMessages)
		}
		if content.Form.Invalid() {
			pg.status = http.StatusUnprocessableEntity
			p.render(w, r, pg)

			return nil
		}

		var (
			msg     string
			err     error
			success = "User created!"
		)
		if edit {
			msg, err = p.api.UpdateUser(ctx, content.UUID, in)
			success = "User updated!"
		} else {
			msg, err = p.api.CreateUser(ctx, in)
		}

		return p.finishForm(w, r, &content.Form, msg, err, formOutcome{
			success: success,
			failure: "Failed to save User",
			next:    "/users",
			render: func(status int, notice *cookie.Flash) {
				pg.status, pg.notice = status, notice
				p.render(w, r, pg)
			},
		})
	})
}
