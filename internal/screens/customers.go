package screens

import (
	"net/http"
	"strings"

	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"github.com/helmethub/dealerdesk/apiclient"
	"github.com/helmethub/dealerdesk/internal/cookie"
	"golang.org/x/sync/errgroup"
)

type customersContent struct {
	Customers []apiclient.Customer
	Deletable bool
}

// Customers renders the customer list.
func (p *Pages) Customers() http.HandlerFunc {
	return p.customerList("customers.html", "Customers", false)
}

// CustomerInformation renders the customer list with delete actions.
func (p *Pages) CustomerInformation() http.HandlerFunc {
	return p.customerList("customer_information.html", "Customer Information", true)
}

func (p *Pages) customerList(name, title string, deletable bool) http.HandlerFunc {
	return p.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := tracer.Start(r.Context(), "Pages.customerList()")
		defer span.End()
		r = r.WithContext(ctx)

		pg := page{name: name, title: title}
		customers, err := p.api.Customers(ctx)
		if err != nil {
			if p.failed(w, r, err) {
				return nil
			}
			pg.notice = errorNotice(err, "Failed to load customers")
		}
		pg.content = customersContent{Customers: customers, Deletable: deletable}
		p.render(w, r, pg)

		return err
	})
}

// DeleteCustomer deletes the customer named by the uuid URL parameter.
func (p *Pages) DeleteCustomer() http.HandlerFunc {
	return p.mutation("uuid", "/customer-information", "The customer has been successfully deleted.", "Failed to delete customer",
		func(r *http.Request, id string) (string, error) {
			return p.api.DeleteCustomer(r.Context(), id)
		})
}

type registrationInput struct {
	CustomerName string `form:"customerName" validate:"required"`
	Phone        string `form:"phone" validate:"required,number,min=10"`
	Email        string `form:"email" validate:"required,email"`
	Address      string `form:"address" validate:"required"`
	Product      string `form:"product" validate:"required"`
	Model        string `form:"model" validate:"required"`
	SerialNumber string `form:"serialNumber" validate:"required"`
	MemoNumber   string `form:"memoNumber" validate:"required"`
}

var registrationMessages = map[string]string{
	"customerName.required": "Customer Name is required",
	"phone.required":        "Phone is required",
	"phone.number":          "Phone must be only digits",
	"phone.min":             "Phone must be at least 10 digits",
	"email.required":        "Email is required",
	"email.email":           "Invalid email",
	"address.required":      "Address is required",
	"product.required":      "Product selection is required",
	"model.required":        "Model selection is required",
	"serialNumber.required": "Serial Number is required",
	"memoNumber.required":   "Memo Number is required",
}

type registrationContent struct {
	Form     Form
	Products []apiclient.Product
	Models   []apiclient.BikeModel
}

// WarrantyRegistration renders the registration form and registers the
// posted customer warranty.
func (p *Pages) WarrantyRegistration() http.HandlerFunc {
	return p.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := tracer.Start(r.Context(), "Pages.WarrantyRegistration()")
		defer span.End()
		r = r.WithContext(ctx)

		pg := page{name: "registration.html", title: "Warranty Registration"}
		content, err := p.registrationOptions(r)
		if err != nil {
			if p.failed(w, r, err) {
				return nil
			}
			pg.notice = errorNotice(err, "Failed to load products and models")
			logger.Req(r).Error(err)
		}

		if r.Method != http.MethodPost {
			pg.content = content
			p.render(w, r, pg)

			return nil
		}

		content.Form = newForm(r)
		in := registrationInput{
			CustomerName: content.Form.Value("customerName"),
			Phone:        content.Form.Value("phone"),
			Email:        content.Form.Value("email"),
			Address:      content.Form.Value("address"),
			Product:      content.Form.Value("product"),
			Model:        content.Form.Value("model"),
			SerialNumber: content.Form.Value("serialNumber"),
			MemoNumber:   content.Form.Value("memoNumber"),
		}
		content.Form.check(in, registrationMessages)
		pg.content = &content
		if content.Form.Invalid() {
			pg.status = http.StatusUnprocessableEntity
			p.render(w, r, pg)

			return nil
		}

		msg, err := p.api.RegisterWarranty(ctx, apiclient.Registration(in))

		return p.finishForm(w, r, &content.Form, msg, err, formOutcome{
			success: "Customer registered successfully",
			failure: "Failed to register customer. Please try again.",
			next:    "/warranty-registration",
			render: func(status int, notice *cookie.Flash) {
				pg.status, pg.notice = status, notice
				p.render(w, r, pg)
			},
		})
	})
}

// registrationOptions loads the products and bike models offered by the
// registration form.
func (p *Pages) registrationOptions(r *http.Request) (registrationContent, error) {
	var content registrationContent
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		products, err := p.api.Products(ctx)
		if err != nil {
			return errors.Wrap(err, "apiclient.API.Products()")
		}
		for _, product := range products {
			if product.Active() {
				content.Products = append(content.Products, product)
			}
		}

		return nil
	})
	g.Go(func() error {
		models, err := p.api.BikeModels(ctx)
		if err != nil {
			return errors.Wrap(err, "apiclient.API.BikeModels()")
		}
		for _, model := range models {
			if model.Active() {
				content.Models = append(content.Models, model)
			}
		}

		return nil
	})

	return content, g.Wait()
}

type warrantyContent struct {
	Form     Form
	Searched bool
	Warranty *apiclient.Warranty
}

// WarrantyCheck looks up a warranty by registration or mobile number.
func (p *Pages) WarrantyCheck() http.HandlerFunc {
	return p.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := tracer.Start(r.Context(), "Pages.WarrantyCheck()")
		defer span.End()
		r = r.WithContext(ctx)

		pg := page{name: "warranty_check.html", title: "Warranty Check"}
		query := r.URL.Query()
		if !query.Has("search") {
			pg.content = warrantyContent{}
			p.render(w, r, pg)

			return nil
		}

		search := strings.TrimSpace(query.Get("search"))
		content := warrantyContent{Form: Form{Values: map[string][]string{"search": {search}}}, Searched: true}
		if search == "" {
			content.Form.Errors = map[string]string{"search": "Please enter a registration number or mobile number"}
			pg.status = http.StatusUnprocessableEntity
			pg.content = content
			p.render(w, r, pg)

			return nil
		}

		warranty, err := p.api.CheckWarranty(ctx, search)
		switch {
		case err == nil:
			content.Warranty = warranty
			pg.notice = &cookie.Flash{Kind: cookie.FlashSuccess, Message: "Warranty details found"}
		case p.failed(w, r, err):
			return nil
		case isNotFound(err):
			pg.notice = &cookie.Flash{Kind: cookie.FlashError, Message: "No warranty found for " + search}
			err = nil
		default:
			pg.notice = errorNotice(err, "Failed to fetch warranty details. Please try again.")
		}
		pg.content = content
		p.render(w, r, pg)

		return err
	})
}

func isNotFound(err error) bool {
	var status *apiclient.StatusError

	return errors.As(err, &status) && status.StatusCode == http.StatusNotFound
}
