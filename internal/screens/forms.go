package screens

import (
	"bytes"
	"html/template"
	"net/http"
	"reflect"
	"strings"
	texttemplate "text/template"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/errors/v5"
	"github.com/go-playground/validator/v10"
	"github.com/helmethub/dealerdesk/apiclient"
	"github.com/helmethub/dealerdesk/internal/cookie"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var validate = newValidator()

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Form is the state of a submitted form: the values as typed, one error per
// field and an optional message above the form.
type Form struct {
	Values  map[string][]string
	Errors  map[string]string
	Message string
}

// Value returns the first value of field.
func (f Form) Value(field string) string {
	if vals := f.Values[field]; len(vals) > 0 {
		return vals[0]
	}

	return ""
}

// Error returns the error shown under field.
func (f Form) Error(field string) string {
	return f.Errors[field]
}

// Invalid reports whether the form carries field errors.
func (f Form) Invalid() bool {
	return len(f.Errors) > 0
}

// newForm captures the submitted values of r, trimmed.
func newForm(r *http.Request) Form {
	if r.PostForm == nil {
		_ = r.ParseForm()
	}

	f := Form{Values: make(map[string][]string)}
	for field, vals := range r.PostForm {
		for _, v := range vals {
			f.Values[field] = append(f.Values[field], strings.TrimSpace(v))
		}
	}

	return f
}

// check validates in and records the first failing rule of every field,
// worded by messages["field.tag"].
func (f *Form) check(in any, messages map[string]string) {
	err := validate.Struct(in)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return
	}

	if f.Errors == nil {
		f.Errors = make(map[string]string)
	}
	for _, fe := range verrs {
		field, _, _ := strings.Cut(fe.Field(), "[")
		if _, ok := f.Errors[field]; ok {
			continue
		}
		msg, ok := messages[field+"."+fe.Tag()]
		if !ok {
			msg = field + " is invalid"
		}
		f.Errors[field] = msg
	}
}

// apply maps a 422 response onto the form. It reports whether err was a
// validation error.
func (f *Form) apply(err error) bool {
	v, ok := apiclient.AsValidation(err)
	if !ok {
		return false
	}

	if f.Errors == nil {
		f.Errors = make(map[string]string)
	}
	for field, msg := range v.FieldErrors() {
		f.Errors[field] = msg
	}
	f.Message = v.Message

	return true
}

func urlParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// renderMarkdown executes the embedded markdown file as a text template with
// data and converts the result to HTML.
func renderMarkdown(file string, data any) (template.HTML, error) {
	src, err := contentFS.ReadFile(file)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", file)
	}

	t, err := texttemplate.New(file).Parse(string(src))
	if err != nil {
		return "", errors.Wrapf(err, "parse %s", file)
	}
	var md bytes.Buffer
	if err := t.Execute(&md, data); err != nil {
		return "", errors.Wrapf(err, "execute %s", file)
	}

	var out bytes.Buffer
	if err := markdown.Convert(md.Bytes(), &out); err != nil {
		return "", errors.Wrapf(err, "goldmark.Markdown.Convert(%s)", file)
	}

	// goldmark omits raw HTML from the source, so the output is safe to embed.
	return template.HTML(out.String()), nil
}

// formOutcome describes how a submitted form ends.
type formOutcome struct {
	success string
	failure string
	next    string
	render  func(status int, notice *cookie.Flash)
}

// finishForm redirects to o.next with a success notification, re-renders the
// form with the field errors of a 422, or re-renders it with a failure notice.
func (p *Pages) finishForm(w http.ResponseWriter, r *http.Request, form *Form, msg string, err error, o formOutcome) error {
	if err == nil {
		p.notify(w, r, cookie.FlashSuccess, msg, o.success)
		http.Redirect(w, r, o.next, http.StatusSeeOther)

		return nil
	}
	if p.failed(w, r, err) {
		return nil
	}
	if form.apply(err) {
		o.render(http.StatusUnprocessableEntity, &cookie.Flash{Kind: cookie.FlashError, Message: "Please check the form for errors"})

		return nil
	}

	o.render(http.StatusBadGateway, errorNotice(err, o.failure))

	return errors.Wrap(err, o.failure)
}
