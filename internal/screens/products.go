package screens

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-playground/errors/v5"
	"github.com/helmethub/dealerdesk/apiclient"
	"github.com/helmethub/dealerdesk/internal/cookie"
)

type productsContent struct {
	Products []apiclient.Product
}

// Products renders the product list.
func (p *Pages) Products() http.HandlerFunc {
	return p.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := tracer.Start(r.Context(), "Pages.Products()")
		defer span.End()
		r = r.WithContext(ctx)

		pg := page{name: "products.html", title: "Products"}
		products, err := p.api.Products(ctx)
		if err != nil {
			if p.failed(w, r, err) {
				return nil
			}
			pg.notice = errorNotice(err, "Failed to load products")
		}
		pg.content = productsContent{Products: products}
		p.render(w, r, pg)

		return err
	})
}

// DeleteProduct deletes the product named by the uuid URL parameter.
func (p *Pages) DeleteProduct() http.HandlerFunc {
	return p.mutation("uuid", "/products", "Product deleted successfully", "Failed to delete product",
		func(r *http.Request, id string) (string, error) {
			return p.api.DeleteProduct(r.Context(), id)
		})
}

// SuspendProduct marks the product inactive.
func (p *Pages) SuspendProduct() http.HandlerFunc {
	return p.mutation("uuid", "/products", "Product suspended successfully", "Failed to suspend product",
		func(r *http.Request, id string) (string, error) {
			return p.api.SuspendProduct(r.Context(), id)
		})
}

// ActivateProduct marks the product active.
func (p *Pages) ActivateProduct() http.HandlerFunc {
	return p.mutation("uuid", "/products", "Product activated successfully", "Failed to activate product",
		func(r *http.Request, id string) (string, error) {
			return p.api.ActivateProduct(r.Context(), id)
		})
}

// Option lists of the product form.
var (
	productTypes = []option{
		{Value: "full-face", Label: "Full Face"},
		{Value: "open-face", Label: "Open Face"},
		{Value: "half-face", Label: "Half Face"},
		{Value: "flip-up", Label: "Flip-up"},
	}
	productSizes = []option{
		{Value: "s", Label: "S"},
		{Value: "m", Label: "M"},
		{Value: "l", Label: "L"},
		{Value: "xl", Label: "XL"},
		{Value: "free", Label: "Free Size"},
	}
)

type option struct {
	Value string
	Label string
}

type productInput struct {
	ProductName string   `form:"productName" validate:"min=2"`
	Model       string   `form:"model" validate:"min=2"`
	ModelNumber string   `form:"modelNumber" validate:"required"`
	Type        string   `form:"type" validate:"required,oneof=full-face open-face half-face flip-up"`
	Size        string   `form:"size" validate:"required,oneof=s m l xl free"`
	Colors      []string `form:"colors" validate:"min=1,dive,hexcolor"`
	Price       string   `form:"price" validate:"omitempty,numeric"`
}

var productMessages = map[string]string{
	"productName.min":      "Product name must be at least 2 characters",
	"model.min":            "Model must be at least 2 characters",
	"modelNumber.required": "Model number is required",
	"type.required":        "Type is required",
	"type.oneof":           "Type is required",
	"size.required":        "Size is required",
	"size.oneof":           "Size is required",
	"colors.min":           "At least one color is required",
	"colors.hexcolor":      "Colors must be hex values like #1f2937",
	"price.numeric":        "Price must be a number",
}

type productFormContent struct {
	Form  Form
	Types []option
	Sizes []option
}

// AddProduct renders the product form and creates the posted product.
func (p *Pages) AddProduct() http.HandlerFunc {
	return p.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := tracer.Start(r.Context(), "Pages.AddProduct()")
		defer span.End()
		r = r.WithContext(ctx)

		content := &productFormContent{Types: productTypes, Sizes: productSizes}
		pg := page{name: "product_form.html", title: "Add Product", content: content}
		if r.Method != http.MethodPost {
			p.render(w, r, pg)

			return nil
		}

		content.Form = newForm(r)
		in := productInput{
			ProductName: content.Form.Value("productName"),
			Model:       content.Form.Value("model"),
			ModelNumber: content.Form.Value("modelNumber"),
			Type:        content.Form.Value("type"),
			Size:        content.Form.Value("size"),
			Colors:      splitColors(content.Form.Value("colors")),
			Price:       content.Form.Value("price"),
		}
		content.Form.check(in, productMessages)
		if content.Form.Invalid() {
			pg.status = http.StatusUnprocessableEntity
			p.render(w, r, pg)

			return nil
		}

		msg, err := p.api.CreateProduct(ctx, apiclient.NewProduct(in))

		return p.finishForm(w, r, &content.Form, msg, err, formOutcome{
			success: in.ProductName + " has been added to the catalog.",
			failure: "Failed to add product. Please try again.",
			next:    "/products",
			render: func(status int, notice *cookie.Flash) {
				pg.status, pg.notice = status, notice
				p.render(w, r, pg)
			},
		})
	})
}

// splitColors parses the comma separated colour list, dropping blanks and
// repeats.
func splitColors(s string) []string {
	var colors []string
	for _, c := range strings.Split(s, ",") {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" && !slices.Contains(colors, c) {
			colors = append(colors, c)
		}
	}

	return colors
}

type importContent struct {
	Heading     string
	Action      string
	TemplateURL string
	Form        Form
}

// ImportProducts renders the product upload form and forwards the posted
// spreadsheet to the API.
func (p *Pages) ImportProducts() http.HandlerFunc {
	return p.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := tracer.Start(r.Context(), "Pages.ImportProducts()")
		defer span.End()
		r = r.WithContext(ctx)

		content := &importContent{
			Heading:     "Import Products",
			Action:      "/products/import",
			TemplateURL: "/products/import/template",
		}
		pg := page{name: "import.html", title: "Import Products", content: content}
		if r.Method != http.MethodPost {
			p.render(w, r, pg)

			return nil
		}

		upload, file, err := spreadsheet(w, r, "file")
		if err != nil {
			var userErr errUpload
			if !errors.As(err, &userErr) {
				pg.status = http.StatusBadRequest
				pg.notice = &cookie.Flash{Kind: cookie.FlashError, Message: "Failed to read the uploaded file"}
				p.render(w, r, pg)

				return errors.Wrap(err, "spreadsheet()")
			}
			content.Form.Errors = map[string]string{"file": userErr.Error()}
			pg.status = http.StatusUnprocessableEntity
			p.render(w, r, pg)

			return nil
		}
		defer file.Close()

		msg, err := p.api.ImportProducts(ctx, upload)

		return p.finishForm(w, r, &content.Form, msg, err, formOutcome{
			success: "Product uploaded successfully!",
			failure: "Failed to upload product",
			next:    "/products",
			render: func(status int, notice *cookie.Flash) {
				pg.status, pg.notice = status, notice
				p.render(w, r, pg)
			},
		})
	})
}

// ProductImportTemplate sends the browser to the spreadsheet template.
func (p *Pages) ProductImportTemplate() http.HandlerFunc {
	return p.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := tracer.Start(r.Context(), "Pages.ProductImportTemplate()")
		defer span.End()
		r = r.WithContext(ctx)

		tmpl, err := p.api.ProductImportTemplate(ctx)
		if err == nil && tmpl.DownloadURL == "" {
			err = errors.New("import template response carried no download_url")
		}
		if err != nil {
			if p.failed(w, r, err) {
				return nil
			}
			p.notify(w, r, cookie.FlashError, apiclient.ServerMessage(err), "Failed to fetch the import template")
			http.Redirect(w, r, "/products/import", http.StatusSeeOther)

			return err
		}

		http.Redirect(w, r, tmpl.DownloadURL, http.StatusFound)

		return nil
	})
}
