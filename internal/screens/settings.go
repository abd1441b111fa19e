package screens

import (
	"html/template"
	"net/http"
)

type integration struct {
	Name        string
	Description string
	Href        string
}

type settingsContent struct {
	Integrations []integration
}

// Settings renders the settings index.
func (p *Pages) Settings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "Pages.Settings()")
		defer span.End()

		p.render(w, r, page{
			name:  "settings.html",
			title: "Settings",
			content: settingsContent{Integrations: []integration{
				{Name: "SMS API", Description: "Send warranty notifications by text message.", Href: "/settings/sms-api"},
			}},
		})
	}
}

type smsContent struct {
	APIKey string
	Body   template.HTML
}

// SMSAPI renders the SMS gateway integration guide.
func (p *Pages) SMSAPI() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "Pages.SMSAPI()")
		defer span.End()

		p.render(w, r, page{
			name:    "sms_api.html",
			title:   "SMS API Integration",
			content: smsContent{APIKey: p.smsAPIKey, Body: p.smsPage},
		})
	}
}
