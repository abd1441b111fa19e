package screens

import (
	"net/http"

	"github.com/helmethub/dealerdesk/apiclient"
	"github.com/helmethub/dealerdesk/internal/cookie"
)

type modelsContent struct {
	Models []apiclient.BikeModel
}

// BikeModels renders the bike model list.
func (p *Pages) BikeModels() http.HandlerFunc {
	return p.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := tracer.Start(r.Context(), "Pages.BikeModels()")
		defer span.End()
		r = r.WithContext(ctx)

		pg := page{name: "models.html", title: "Bike Models"}
		models, err := p.api.BikeModels(ctx)
		if err != nil {
			if p.failed(w, r, err) {
				return nil
			}
			pg.notice = errorNotice(err, "Failed to load bike models")
		}
		pg.content = modelsContent{Models: models}
		p.render(w, r, pg)

		return err
	})
}

// DeleteBikeModel deletes the bike model named by the uuid URL parameter.
func (p *Pages) DeleteBikeModel() http.HandlerFunc {
	return p.mutation("uuid", "/models", "Bike model deleted successfully", "Failed to delete bike model",
		func(r *http.Request, id string) (string, error) {
			return p.api.DeleteBikeModel(r.Context(), id)
		})
}

// SuspendBikeModel marks the bike model inactive.
func (p *Pages) SuspendBikeModel() http.HandlerFunc {
	return p.mutation("uuid", "/models", "Bike model suspended successfully", "Failed to suspend bike model",
		func(r *http.Request, id string) (string, error) {
			return p.api.SuspendBikeModel(r.Context(), id)
		})
}

// ActivateBikeModel marks the bike model active.
func (p *Pages) ActivateBikeModel() http.HandlerFunc {
	return p.mutation("uuid", "/models", "Bike model activated successfully", "Failed to activate bike model",
		func(r *http.Request, id string) (string, error) {
			return p.api.ActivateBikeModel(r.Context(), id)
		})
}

type modelInput struct {
	Name   string `form:"name" validate:"required,min=3"`
	Detail string `form:"detail"`
}

var modelMessages = map[string]string{
	"name.required": "Name is required",
	"name.min":      "Must be at least 3 characters",
}

type modelFormContent struct {
	Form Form
	UUID string
}

// CreateBikeModel renders the empty bike model form and creates the posted model.
func (p *Pages) CreateBikeModel() http.HandlerFunc {
	return p.modelForm(false)
}

// EditBikeModel renders the bike model named by the id URL parameter and
// saves the posted changes.
func (p *Pages) EditBikeModel() http.HandlerFunc {
	return p.modelForm(true)
}

func (p *Pages) modelForm(edit bool) http.HandlerFunc {
	return p.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := tracer.Start(r.Context(), "Pages.modelForm()")
		defer span.End()
		r = r.WithContext(ctx)

		content := &modelFormContent{}
		pg := page{name: "model_form.html", title: "Create Bike Model", content: content}
		if edit {
			content.UUID = urlParam(r, "id")
			pg.title = "Edit Bike Model"
		}

		if r.Method != http.MethodPost {
			if edit {
				model, err := p.api.BikeModel(ctx, content.UUID)
				if err != nil {
					return p.loadFailed(w, r, err, "/models", "Failed to load bike model")
				}
				content.Form.Values = map[string][]string{"name": {model.Name}, "detail": {model.Detail}}
			}
			p.render(w, r, pg)

			return nil
		}

		content.Form = newForm(r)
		in := modelInput{Name: content.Form.Value("name"), Detail: content.Form.Value("detail")}
		content.Form.check(in, modelMessages)
		if content.Form.Invalid() {
			pg.status = http.StatusUnprocessableEntity
			p.render(w, r, pg)

			return nil
		}

		var (
			msg     string
			err     error
			success = "Bike model created!"
		)
		if edit {
			msg, err = p.api.UpdateBikeModel(ctx, content.UUID, apiclient.BikeModelInput(in))
			success = "Bike model updated!"
		} else {
			msg, err = p.api.CreateBikeModel(ctx, apiclient.BikeModelInput(in))
		}

		return p.finishForm(w, r, &content.Form, msg, err, formOutcome{
			success: success,
			failure: "Failed to save bike model",
			next:    "/models",
			render: func(status int, notice *cookie.Flash) {
				pg.status, pg.notice = status, notice
				p.render(w, r, pg)
			},
		})
	})
}
