package screens

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-playground/errors/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/helmethub/dealerdesk/apiclient"
	"github.com/helmethub/dealerdesk/internal/cookie"
	"github.com/helmethub/dealerdesk/mock/mock_apiclient"
	gomock "go.uber.org/mock/gomock"
)

func TestPages_customerLists(t *testing.T) {
	t.Parallel()

	customers := []apiclient.Customer{{UUID: "c1", Name: "Karim", Email: "karim@example.com", Phone: "01711000000", Product: "Ninja"}}

	tests := []struct {
		name        string
		handler     func(p *Pages) http.HandlerFunc
		wantDelete  bool
		wantHeading string
	}{
		{name: "customers", handler: (*Pages).Customers, wantHeading: "Customers"},
		{name: "customer information", handler: (*Pages).CustomerInformation, wantDelete: true, wantHeading: "Customer Information"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, api, _ := newTestPages(t)
			api.EXPECT().Customers(gomock.Any()).Return(customers, nil)

			w := httptest.NewRecorder()
			tt.handler(p).ServeHTTP(w, request(http.MethodGet, "/customers", nil))

			body := w.Body.String()
			if !strings.Contains(body, "karim@example.com") {
				t.Errorf("body missing customer")
			}
			if !strings.Contains(body, "<h1>"+tt.wantHeading+"</h1>") {
				t.Errorf("body missing heading %q", tt.wantHeading)
			}
			if got := strings.Contains(body, "/customer-information/c1/delete"); got != tt.wantDelete {
				t.Errorf("delete action present = %v, want %v", got, tt.wantDelete)
			}
		})
	}
}

func TestPages_WarrantyRegistration(t *testing.T) {
	t.Parallel()

	products := []apiclient.Product{
		{UUID: "p1", Name: "Ninja", Status: apiclient.StatusActive},
		{UUID: "p2", Name: "Retired", Status: apiclient.StatusInactive},
	}
	models := []apiclient.BikeModel{{UUID: "m1", Name: "Pulsar", Status: apiclient.StatusActive}}
	valid := url.Values{
		"customerName": {"Karim"},
		"phone":        {"01711000000"},
		"email":        {"karim@example.com"},
		"address":      {"Dhaka"},
		"product":      {"p1"},
		"model":        {"m1"},
		"serialNumber": {"SN-1"},
		"memoNumber":   {"MEMO-1"},
	}

	tests := []struct {
		name       string
		method     string
		form       url.Values
		prepare    func(api *mock_apiclient.MockAPI)
		wantStatus int
		wantBody   []string
		wantAbsent []string
		wantFlash  []cookie.Flash
	}{
		{
			name:   "offers active products only",
			method: http.MethodGet,
			prepare: func(api *mock_apiclient.MockAPI) {
				api.EXPECT().Products(gomock.Any()).Return(products, nil)
				api.EXPECT().BikeModels(gomock.Any()).Return(models, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`value="p1"`, `value="m1"`},
			wantAbsent: []string{"Retired"},
		},
		{
			name:   "option load failure still renders the form",
			method: http.MethodGet,
			prepare: func(api *mock_apiclient.MockAPI) {
				api.EXPECT().Products(gomock.Any()).Return(nil, &apiclient.StatusError{StatusCode: http.StatusInternalServerError})
				api.EXPECT().BikeModels(gomock.Any()).Return(models, nil).AnyTimes()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{"Failed to load products and models", `name="customerName"`},
		},
		{
			name:   "field errors",
			method: http.MethodPost,
			form:   url.Values{"phone": {"12ab"}, "email": {"karim"}},
			prepare: func(api *mock_apiclient.MockAPI) {
				api.EXPECT().Products(gomock.Any()).Return(products, nil)
				api.EXPECT().BikeModels(gomock.Any()).Return(models, nil)
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{"Customer Name is required", "Phone must be only digits", "Invalid email", "Serial Number is required", `value="12ab"`},
		},
		{
			name:   "registered",
			method: http.MethodPost,
			form:   valid,
			prepare: func(api *mock_apiclient.MockAPI) {
				api.EXPECT().Products(gomock.Any()).Return(products, nil)
				api.EXPECT().BikeModels(gomock.Any()).Return(models, nil)
				api.EXPECT().RegisterWarranty(gomock.Any(), apiclient.Registration{
					CustomerName: "Karim",
					Phone:        "01711000000",
					Email:        "karim@example.com",
					Address:      "Dhaka",
					Product:      "p1",
					Model:        "m1",
					SerialNumber: "SN-1",
					MemoNumber:   "MEMO-1",
				}).Return("", nil)
			},
			wantStatus: http.StatusSeeOther,
			wantFlash:  []cookie.Flash{{Kind: cookie.FlashSuccess, Message: "Customer registered successfully"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, api, sess := newTestPages(t)
			tt.prepare(api)

			r := request(tt.method, "/warranty-registration", nil)
			if tt.method == http.MethodPost {
				r = postForm("/warranty-registration", tt.form)
			}
			w := httptest.NewRecorder()
			p.WarrantyRegistration().ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("WarrantyRegistration() status = %d, want %d", w.Code, tt.wantStatus)
			}
			for _, want := range tt.wantBody {
				if !strings.Contains(w.Body.String(), want) {
					t.Errorf("WarrantyRegistration() body missing %q", want)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(w.Body.String(), absent) {
					t.Errorf("WarrantyRegistration() body contains %q", absent)
				}
			}
			if diff := cmp.Diff(tt.wantFlash, sess.flashes); diff != "" {
				t.Errorf("WarrantyRegistration() flashes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPages_WarrantyCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		prepare    func(api *mock_apiclient.MockAPI)
		wantStatus int
		wantBody   []string
	}{
		{
			name:       "no search yet",
			target:     "/warranty-check",
			prepare:    func(*mock_apiclient.MockAPI) {},
			wantStatus: http.StatusOK,
			wantBody:   []string{`name="search"`},
		},
		{
			name:       "blank search",
			target:     "/warranty-check?search=+",
			prepare:    func(*mock_apiclient.MockAPI) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{"Please enter a registration number or mobile number"},
		},
		{
			name:   "found",
			target: "/warranty-check?search=01711000000",
			prepare: func(api *mock_apiclient.MockAPI) {
				api.EXPECT().CheckWarranty(gomock.Any(), "01711000000").Return(&apiclient.Warranty{
					ProductName:    "Ninja",
					WarrantyNumber: "W-100",
					DealerPoint:    "Motijheel",
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{"Warranty details found", "W-100", "Motijheel"},
		},
		{
			name:   "not found",
			target: "/warranty-check?search=W-404",
			prepare: func(api *mock_apiclient.MockAPI) {
				api.EXPECT().CheckWarranty(gomock.Any(), "W-404").Return(nil, &apiclient.StatusError{StatusCode: http.StatusNotFound})
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{"No warranty found for W-404"},
		},
		{
			name:   "failure",
			target: "/warranty-check?search=W-1",
			prepare: func(api *mock_apiclient.MockAPI) {
				api.EXPECT().CheckWarranty(gomock.Any(), "W-1").Return(nil, errors.New("timeout"))
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{"Failed to fetch warranty details. Please try again."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, api, _ := newTestPages(t)
			tt.prepare(api)

			w := httptest.NewRecorder()
			p.WarrantyCheck().ServeHTTP(w, request(http.MethodGet, tt.target, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("WarrantyCheck() status = %d, want %d", w.Code, tt.wantStatus)
			}
			for _, want := range tt.wantBody {
				if !strings.Contains(w.Body.String(), want) {
					t.Errorf("WarrantyCheck() body missing %q", want)
				}
			}
		})
	}
}
