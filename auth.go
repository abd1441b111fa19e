package dealerdesk

import (
	"context"
	"net/http"
	"strings"

	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"github.com/go-playground/validator/v10"
	"github.com/helmethub/dealerdesk/apiclient"
	"github.com/helmethub/dealerdesk/internal/cookie"
	"github.com/helmethub/dealerdesk/sessioninfo"
)

const minPasswordLength = 6

var validate = validator.New(validator.WithRequiredStructEnabled())

// Login serves the login form and signs the browser in with the posted
// credentials.
func (d *Dashboard) Login() http.HandlerFunc {
	return d.baseSession.Handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := tracer.Start(r.Context(), "Dashboard.Login()")
		defer span.End()
		r = r.WithContext(ctx)

		if r.Method != http.MethodPost {
			d.views.Login(w, r, LoginForm{})

			return nil
		}

		form := LoginForm{Email: strings.TrimSpace(r.PostFormValue("email"))}
		password := r.PostFormValue("password")
		if errs := validateLogin(form.Email, password); len(errs) > 0 {
			form.Errors = errs
			form.Status = http.StatusUnprocessableEntity
			d.views.Login(w, r, form)

			return nil
		}

		username, err := d.login(ctx, w, form.Email, password)
		if err != nil {
			var status *apiclient.StatusError
			switch v, isValidation := apiclient.AsValidation(err); {
			case isValidation:
				form.Errors = v.FieldErrors()
				form.Message = v.Message
				form.Status = http.StatusUnprocessableEntity
			case apiclient.IsUnauthorized(err), errors.As(err, &status) && status.StatusCode < http.StatusInternalServerError:
				form.Message = "Invalid email or password"
				if msg := apiclient.ServerMessage(err); msg != "" {
					form.Message = msg
				}
				form.Status = http.StatusUnauthorized
			default:
				form.Message = "Login failed, please try again"
				form.Status = http.StatusBadGateway
				d.views.Login(w, r, form)

				return errors.Wrap(err, "Dashboard.login()")
			}
			d.views.Login(w, r, form)

			return httpio.NewUnauthorizedMessageWithError(err, "login rejected")
		}

		logger.Ctx(ctx).Infof("user %s logged in", username)
		d.baseSession.Notify(w, r, cookie.FlashSuccess, "Logged in successfully!")
		http.Redirect(w, r, d.homeURL, http.StatusSeeOther)

		return nil
	})
}

// login exchanges the credentials for a token, resolves its user and stores
// both in the session.
func (d *Dashboard) login(ctx context.Context, w http.ResponseWriter, email, password string) (string, error) {
	token, err := d.api.Login(ctx, apiclient.Credentials{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	user, err := d.api.CurrentUser(apiclient.WithToken(ctx, token))
	if err != nil {
		return "", err
	}

	sess := sessioninfo.FromCtx(ctx)
	if err := d.baseSession.Authenticate(ctx, w, sess, token, &user.User, user.EffectivePermissions()); err != nil {
		return "", err
	}

	return user.Name, nil
}

func validateLogin(email, password string) map[string]string {
	errs := make(map[string]string)
	switch {
	case email == "":
		errs["email"] = "Email is required"
	case validate.Var(email, "email") != nil:
		errs["email"] = "Invalid email format"
	}

	switch {
	case password == "":
		errs["password"] = "Password is required"
	case len(password) < minPasswordLength:
		errs["password"] = "Password must be at least 6 characters"
	}

	return errs
}

// Logout revokes the token at the API, clears the session and sends the
// browser to the login page.
func (d *Dashboard) Logout() http.HandlerFunc {
	return d.baseSession.Handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := tracer.Start(r.Context(), "Dashboard.Logout()")
		defer span.End()

		// The session is cleared even when the API refuses the call.
		if err := d.api.Logout(ctx); err != nil && !apiclient.IsUnauthorized(err) {
			logger.Ctx(ctx).Error(errors.Wrap(err, "apiclient.Authenticator.Logout()"))
		}

		return d.endSession(w, r.WithContext(ctx), cookie.FlashSuccess, "Logged out")
	})
}

// EndSession signs the browser out after the API reported its token invalid.
// Screens call it when a request fails with apiclient.ErrUnauthorized.
func (d *Dashboard) EndSession(w http.ResponseWriter, r *http.Request) {
	if err := d.endSession(w, r, cookie.FlashError, "Your session has expired, please log in again"); err != nil {
		logger.Req(r).Error(err)
		_ = httpio.NewEncoder(w).ClientMessage(r.Context(), err)
	}
}

func (d *Dashboard) endSession(w http.ResponseWriter, r *http.Request, kind cookie.FlashKind, message string) error {
	sess := sessioninfo.FromRequest(r)
	if err := d.baseSession.Clear(r.Context(), w, sess); err != nil {
		return errors.Wrap(err, "basesession.BaseSession.Clear()")
	}

	d.baseSession.Notify(w, r, kind, message)
	http.Redirect(w, r, d.loginURL, http.StatusSeeOther)

	return nil
}
