package screens

import (
	"net/http"
	"strconv"

	"github.com/helmethub/dealerdesk"
	"golang.org/x/sync/errgroup"
)

var _ dealerdesk.Views = &Pages{}

type loginContent struct {
	Form Form
}

// Login renders the login form.
func (p *Pages) Login(w http.ResponseWriter, r *http.Request, form dealerdesk.LoginForm) {
	f := Form{
		Values:  map[string][]string{"email": {form.Email}},
		Errors:  form.Errors,
		Message: form.Message,
	}
	p.render(w, r, page{name: "login.html", title: "Sign In", status: form.Status, content: loginContent{Form: f}})
}

type errorContent struct {
	Heading string
	Message string
}

// AccessDenied renders the access-denied page in place of the requested one.
func (p *Pages) AccessDenied(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, page{
		name:   "error.html",
		title:  "Access Denied",
		status: http.StatusForbidden,
		content: errorContent{
			Heading: "Access Denied",
			Message: "You do not have permission to view this page.",
		},
	})
}

// NotFound renders the not-found page.
func (p *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, page{
		name:   "error.html",
		title:  "Not Found",
		status: http.StatusNotFound,
		content: errorContent{
			Heading: "Page not found",
			Message: "The page you are looking for does not exist.",
		},
	})
}

// Loading renders the placeholder served while the session bootstraps. The
// browser retries on its own.
func (p *Pages) Loading(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Refresh", "1")
	w.Header().Set("Cache-Control", "no-store")
	p.render(w, r, page{name: "loading.html", title: "Loading", status: http.StatusServiceUnavailable, keepFlash: true})
}

type stat struct {
	Title string
	Value string
}

type dashboardContent struct {
	Stats []stat
}

// Dashboard renders the home page with record counts.
func (p *Pages) Dashboard() http.HandlerFunc {
	return p.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := tracer.Start(r.Context(), "Pages.Dashboard()")
		defer span.End()
		r = r.WithContext(ctx)

		counts := make([]int, 4)
		errs := make([]error, len(counts))
		calls := []func() (int, error){
			func() (int, error) { v, err := p.api.Customers(ctx); return len(v), err },
			func() (int, error) { v, err := p.api.Products(ctx); return len(v), err },
			func() (int, error) { v, err := p.api.BikeModels(ctx); return len(v), err },
			func() (int, error) { v, err := p.api.Dealers(ctx); return len(v), err },
		}

		// Every call runs to completion so a rejected token is seen even
		// when another count failed first.
		var g errgroup.Group
		for i, call := range calls {
			g.Go(func() error {
				counts[i], errs[i] = call()

				return nil
			})
		}
		_ = g.Wait()

		pg := page{name: "dashboard.html", title: "Dashboard"}
		for _, err := range errs {
			if p.failed(w, r, err) {
				return nil
			}
		}
		for i, err := range errs {
			if err != nil {
				counts[i] = -1
				if pg.notice == nil {
					pg.notice = errorNotice(err, "Failed to load dashboard figures")
				}
			}
		}

		titles := []string{"Registered Customers", "Products", "Bike Models", "Dealers"}
		content := dashboardContent{Stats: make([]stat, 0, len(titles))}
		for i, title := range titles {
			value := "-"
			if counts[i] >= 0 {
				value = strconv.Itoa(counts[i])
			}
			content.Stats = append(content.Stats, stat{Title: title, Value: value})
		}
		pg.content = content
		p.render(w, r, pg)

		return err
	})
}
