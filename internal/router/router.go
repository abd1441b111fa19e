// Package router wires the dashboard handlers to their routes.
package router

import (
	"net/http"

	"github.com/cccteam/logger"
	"github.com/go-chi/chi/v5"
	"github.com/helmethub/dealerdesk"
	"github.com/helmethub/dealerdesk/access"
	"github.com/helmethub/dealerdesk/internal/metrics"
	"github.com/helmethub/dealerdesk/internal/screens"
)

// New returns the handler serving every dashboard route. Page routes run
// behind the session, XSRF and guard middleware; /healthz and /metrics do not.
func New(desk dealerdesk.Handlers, pages *screens.Pages, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(logger.NewConsoleExporter().Middleware())
	r.Use(m.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	withSession := func(h http.Handler) http.Handler {
		return desk.StartSession(desk.SetXSRFToken(desk.ValidateXSRFToken(h)))
	}
	r.NotFound(withSession(http.HandlerFunc(pages.NotFound)).ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(desk.StartSession, desk.SetXSRFToken, desk.ValidateXSRFToken)

		r.Get("/api/session", desk.Authenticated())

		form(r.With(desk.Public), "/login", desk.Login())

		r.Group(func(r chi.Router) {
			r.Use(desk.Private(""))

			r.Post("/logout", desk.Logout())
			r.Get("/", pages.Dashboard())

			r.Get("/customers", pages.Customers())
			r.Get("/customer-information", pages.CustomerInformation())
			r.Post("/customer-information/{uuid}/delete", pages.DeleteCustomer())
			form(r, "/warranty-registration", pages.WarrantyRegistration())
			r.Get("/warranty-check", pages.WarrantyCheck())

			r.Route("/products", func(r chi.Router) {
				r.Get("/", pages.Products())
				form(r, "/add", pages.AddProduct())
				form(r, "/import", pages.ImportProducts())
				r.Get("/import/template", pages.ProductImportTemplate())
				r.Post("/{uuid}/delete", pages.DeleteProduct())
				r.Post("/{uuid}/suspend", pages.SuspendProduct())
				r.Post("/{uuid}/activate", pages.ActivateProduct())
			})

			r.Route("/models", func(r chi.Router) {
				r.Get("/", pages.BikeModels())
				form(r, "/create", pages.CreateBikeModel())
				form(r, "/edit/{id}", pages.EditBikeModel())
				r.Post("/{uuid}/delete", pages.DeleteBikeModel())
				r.Post("/{uuid}/suspend", pages.SuspendBikeModel())
				r.Post("/{uuid}/activate", pages.ActivateBikeModel())
			})

			r.Get("/settings", pages.Settings())
			r.Get("/settings/sms-api", pages.SMSAPI())

			r.Get("/become-dealer", pages.Dealers())
			r.Post("/become-dealer/import", pages.ImportDealers())
			r.Post("/become-dealer/{id}/delete", pages.DeleteDealer())
		})

		r.Route("/users", func(r chi.Router) {
			r.With(desk.Private(access.PreviewUser)).Get("/", pages.Users())
			r.With(desk.Private(access.PreviewUser)).Post("/{uuid}/delete", pages.DeleteUser())
			r.With(desk.Private(access.PreviewUser)).Post("/{uuid}/suspend", pages.SuspendUser())
			r.With(desk.Private(access.PreviewUser)).Post("/{uuid}/activate", pages.ActivateUser())
			form(r.With(desk.Private(access.CreateUser)), "/create", pages.CreateUser())
			form(r.With(desk.Private(access.EditUser)), "/edit/{id}", pages.EditUser())
		})

		r.Route("/roles", func(r chi.Router) {
			r.With(desk.Private(access.PreviewRole)).Get("/", pages.Roles())
			r.With(desk.Private(access.PreviewRole)).Post("/{id}/delete", pages.DeleteRole())
			form(r.With(desk.Private(access.CreateRole)), "/create", pages.CreateRole())
			form(r.With(desk.Private(access.EditRole)), "/edit/{id}", pages.EditRole())
		})
	})

	return r
}

// form routes the GET and POST of a form page to h.
func form(r chi.Router, pattern string, h http.HandlerFunc) {
	r.Get(pattern, h)
	r.Post(pattern, h)
}
