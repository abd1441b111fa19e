package screens

import (
	"net/http"
	"strconv"

	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"github.com/helmethub/dealerdesk/apiclient"
	"github.com/helmethub/dealerdesk/internal/cookie"
)

type dealersContent struct {
	Dealers []apiclient.Dealer
}

// Dealers renders the dealer directory with the dealer upload form.
func (p *Pages) Dealers() http.HandlerFunc {
	return p.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := tracer.Start(r.Context(), "Pages.Dealers()")
		defer span.End()
		r = r.WithContext(ctx)

		pg := page{name: "dealers.html", title: "Become a Dealer"}
		dealers, err := p.api.Dealers(ctx)
		if err != nil {
			if p.failed(w, r, err) {
				return nil
			}
			pg.notice = errorNotice(err, "Failed to fetch dealers")
		}
		pg.content = dealersContent{Dealers: dealers}
		p.render(w, r, pg)

		return err
	})
}

// DeleteDealer deletes the dealer named by the id URL parameter.
func (p *Pages) DeleteDealer() http.HandlerFunc {
	return p.mutation("id", "/become-dealer", "Dealer deleted successfully", "Failed to delete dealer",
		func(r *http.Request, id string) (string, error) {
			dealerID, err := strconv.Atoi(id)
			if err != nil {
				return "", errors.Wrapf(err, "dealer id %q", id)
			}

			return p.api.DeleteDealer(r.Context(), dealerID)
		})
}

// ImportDealers forwards the posted dealer spreadsheet to the API and returns
// to the dealer directory.
func (p *Pages) ImportDealers() http.HandlerFunc {
	return p.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := tracer.Start(r.Context(), "Pages.ImportDealers()")
		defer span.End()
		r = r.WithContext(ctx)

		upload, file, err := spreadsheet(w, r, "file")
		if err != nil {
			var userErr errUpload
			if errors.As(err, &userErr) {
				p.session.Notify(w, r, cookie.FlashError, userErr.Error())
				http.Redirect(w, r, "/become-dealer", http.StatusSeeOther)

				return nil
			}
			p.session.Notify(w, r, cookie.FlashError, "Failed to upload dealers")
			http.Redirect(w, r, "/become-dealer", http.StatusSeeOther)

			return errors.Wrap(err, "spreadsheet()")
		}
		defer file.Close()

		msg, err := p.api.ImportDealers(ctx, upload)
		if err != nil {
			if p.failed(w, r, err) {
				return nil
			}
			p.notify(w, r, cookie.FlashError, apiclient.ServerMessage(err), "Failed to upload dealers")
			http.Redirect(w, r, "/become-dealer", http.StatusSeeOther)

			return errors.Wrap(err, "apiclient.API.ImportDealers()")
		}

		logger.Req(r).Infof("dealer spreadsheet %s imported", upload.Filename)
		p.notify(w, r, cookie.FlashSuccess, msg, "Dealers uploaded successfully")
		http.Redirect(w, r, "/become-dealer", http.StatusSeeOther)

		return nil
	})
}
