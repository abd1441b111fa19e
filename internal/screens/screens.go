// Package screens renders the dashboard pages and forwards their forms to the
// remote API.
package screens

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"github.com/helmethub/dealerdesk/access"
	"github.com/helmethub/dealerdesk/apiclient"
	"github.com/helmethub/dealerdesk/internal/basesession"
	"github.com/helmethub/dealerdesk/internal/cookie"
	"github.com/helmethub/dealerdesk/sessioninfo"
	"go.opentelemetry.io/otel"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed content/*.md
var contentFS embed.FS

var tracer = otel.Tracer("github.com/helmethub/dealerdesk/internal/screens")

var pageNames = []string{
	"login.html", "loading.html", "error.html", "dashboard.html",
	"customers.html", "customer_information.html", "registration.html", "warranty_check.html",
	"products.html", "product_form.html", "import.html",
	"models.html", "model_form.html",
	"users.html", "user_form.html",
	"roles.html", "role_form.html",
	"settings.html", "sms_api.html", "dealers.html",
}

// Session is the part of the browser session the screens depend on.
type Session interface {
	Notify(w http.ResponseWriter, r *http.Request, kind cookie.FlashKind, message string)
	Flash(w http.ResponseWriter, r *http.Request) (cookie.Flash, bool)
	EndSession(w http.ResponseWriter, r *http.Request)
}

// Pages serves every dashboard screen.
type Pages struct {
	api       apiclient.API
	session   Session
	handle    func(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc
	menu      []access.MenuItem
	smsAPIKey string
	smsPage   template.HTML
	pages     map[string]*template.Template
}

// Option configures Pages.
type Option func(*Pages)

// WithMenu replaces the sidebar items. (default: access.DefaultMenu)
func WithMenu(items []access.MenuItem) Option {
	return func(p *Pages) {
		p.menu = items
	}
}

// WithSMSAPIKey sets the key shown on the SMS API settings page.
func WithSMSAPIKey(key string) Option {
	return func(p *Pages) {
		p.smsAPIKey = key
	}
}

// New parses the embedded templates and returns the screens.
func New(api apiclient.API, session Session, options ...Option) (*Pages, error) {
	p := &Pages{
		api:     api,
		session: session,
		handle:  httpio.Log,
		menu:    access.DefaultMenu,
	}
	for _, opt := range options {
		opt(p)
	}

	funcs := template.FuncMap{
		"list":  func(vals ...string) []string { return vals },
		"label": fieldLabel,
	}

	// Each page gets its own clone of the layout so their "content" blocks
	// do not overwrite each other.
	layout, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, errors.Wrap(err, "template.ParseFS()")
	}

	p.pages = make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := layout.Clone()
		if err != nil {
			return nil, errors.Wrapf(err, "clone layout for %s", name)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name); err != nil {
			return nil, errors.Wrapf(err, "parse %s", name)
		}
		p.pages[name] = t
	}

	if p.smsPage, err = renderMarkdown("content/sms_api.md", struct{ APIKey string }{p.smsAPIKey}); err != nil {
		return nil, err
	}

	return p, nil
}

// fieldLabels holds the labels of form fields that are rendered in a loop.
var fieldLabels = map[string]string{
	"customerName": "Customer Name",
	"phone":        "Phone",
	"email":        "Email",
	"address":      "Address",
	"serialNumber": "Serial Number",
	"memoNumber":   "Memo Number",
	"productName":  "Product Name",
	"model":        "Model",
	"modelNumber":  "Model Number",
	"price":        "Price",
}

func fieldLabel(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}

	return field
}

// page describes one rendered screen.
type page struct {
	name    string
	title   string
	status  int
	notice  *cookie.Flash
	content any

	// keepFlash leaves a queued flash for the next page.
	keepFlash bool
}

// view is the data every template receives.
type view struct {
	Title     string
	Path      string
	Username  string
	SignedIn  bool
	Menu      []access.MenuItem
	Flash     *cookie.Flash
	XSRFField string
	XSRFToken string
	Content   any
}

func (p *Pages) render(w http.ResponseWriter, r *http.Request, pg page) {
	t, ok := p.pages[pg.name]
	if !ok {
		logger.Req(r).Errorf("template %s not found", pg.name)
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return
	}

	v := view{
		Title:     pg.title,
		Path:      r.URL.Path,
		Flash:     pg.notice,
		XSRFField: cookie.XSRFFormField,
		XSRFToken: basesession.XSRFToken(r.Context()),
		Content:   pg.content,
	}
	if sess, ok := sessioninfo.Lookup(r.Context()); ok {
		v.SignedIn = sess.Authenticated()
		v.Username = sess.Username()
		v.Menu = access.Menu(sess, p.menu)
	}
	if v.Flash == nil && !pg.keepFlash {
		if f, ok := p.session.Flash(w, r); ok {
			v.Flash = &f
		}
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", v); err != nil {
		logger.Req(r).Error(errors.Wrapf(err, "render %s", pg.name))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return
	}

	status := pg.status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// notify queues a flash for the next page, using fallback when the API sent
// no message.
func (p *Pages) notify(w http.ResponseWriter, r *http.Request, kind cookie.FlashKind, message, fallback string) {
	if message == "" {
		message = fallback
	}
	p.session.Notify(w, r, kind, message)
}

// failed handles an API failure that is not a form validation error. It
// reports whether the session was ended because the API rejected the token.
func (p *Pages) failed(w http.ResponseWriter, r *http.Request, err error) bool {
	if apiclient.IsUnauthorized(err) {
		logger.Req(r).Infof("api rejected the session token: %v", err)
		p.session.EndSession(w, r)

		return true
	}

	return false
}

// errorNotice builds the inline notice for a failed API call.
func errorNotice(err error, fallback string) *cookie.Flash {
	msg := apiclient.ServerMessage(err)
	if msg == "" {
		msg = fallback
	}

	return &cookie.Flash{Kind: cookie.FlashError, Message: msg}
}

// mutation returns a handler that applies call to the record named by the
// URL parameter param and redirects back with a notification.
func (p *Pages) mutation(param, back, success, failure string, call func(r *http.Request, id string) (string, error)) http.HandlerFunc {
	return p.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := tracer.Start(r.Context(), "Pages.mutation()")
		defer span.End()
		r = r.WithContext(ctx)

		msg, err := call(r, urlParam(r, param))
		if err != nil {
			if p.failed(w, r, err) {
				return nil
			}
			p.notify(w, r, cookie.FlashError, apiclient.ServerMessage(err), failure)
			http.Redirect(w, r, back, http.StatusSeeOther)

			return errors.Wrap(err, back)
		}

		p.notify(w, r, cookie.FlashSuccess, msg, success)
		http.Redirect(w, r, back, http.StatusSeeOther)

		return nil
	})
}

// loadFailed handles a record that could not be loaded for editing.
func (p *Pages) loadFailed(w http.ResponseWriter, r *http.Request, err error, back, failure string) error {
	switch {
	case p.failed(w, r, err):
		return nil
	case isNotFound(err):
		p.NotFound(w, r)

		return nil
	}

	p.notify(w, r, cookie.FlashError, apiclient.ServerMessage(err), failure)
	http.Redirect(w, r, back, http.StatusSeeOther)

	return errors.Wrap(err, failure)
}
