package apiclient

import (
	"github.com/helmethub/dealerdesk/sessioninfo"
)

// Status values used by suspendable records.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// envelope is the {data: ...} wrapper of every API response.
type envelope[T any] struct {
	Data T `json:"data"`
}

// Message is the body of mutation responses.
type Message struct {
	Message string `json:"message"`
}

// CurrentUser is the response of the current user endpoint.
type CurrentUser struct {
	sessioninfo.User
	Permissions sessioninfo.PermissionSet `json:"permissions,omitempty"`
}

// EffectivePermissions returns the permissions reported at the top level, or
// the union of the role permissions when the API did not send them.
func (u *CurrentUser) EffectivePermissions() sessioninfo.PermissionSet {
	if len(u.Permissions) > 0 {
		return u.Permissions
	}

	return u.User.EffectivePermissions()
}

// Credentials are posted to the login endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResult struct {
	Token string `json:"token"`
}

// Customer is a warranty customer.
type Customer struct {
	UUID    string `json:"uuid"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Product string `json:"product"`
}

// Registration is a warranty registration posted to the customer endpoint.
type Registration struct {
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Product      string `json:"product"`
	Model        string `json:"model"`
	SerialNumber string `json:"serialNumber"`
	MemoNumber   string `json:"memoNumber"`
}

// Product is a helmet product.
type Product struct {
	UUID   string `json:"uuid"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

// Active reports whether the product is active.
func (p Product) Active() bool { return p.Status == StatusActive }

// NewProduct is posted to create a product.
type NewProduct struct {
	ProductName string   `json:"productName"`
	Model       string   `json:"model"`
	ModelNumber string   `json:"modelNumber"`
	Type        string   `json:"type"`
	Size        string   `json:"size"`
	Colors      []string `json:"colors"`
	Price       string   `json:"price"`
}

// ImportTemplate points at the product spreadsheet template.
type ImportTemplate struct {
	DownloadURL string `json:"download_url"`
}

// BikeModel is a bike model record.
type BikeModel struct {
	UUID   string `json:"uuid"`
	Name   string `json:"name"`
	Detail string `json:"detail"`
	Status string `json:"status"`
}

// Active reports whether the model is active.
func (m BikeModel) Active() bool { return m.Status == StatusActive }

// BikeModelInput is posted to create or update a bike model.
type BikeModelInput struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

// User is a dashboard user as managed through the users endpoints.
type User struct {
	UUID   string             `json:"uuid"`
	Name   string             `json:"name"`
	Email  string             `json:"email"`
	Status string             `json:"status"`
	Roles  []sessioninfo.Role `json:"roles,omitempty"`
}

// Active reports whether the user is active.
func (u User) Active() bool { return u.Status == StatusActive }

// UserInput is posted to create or update a user. An empty password leaves
// the password unchanged on update.
type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// RoleInput is posted to create or update a role.
type RoleInput struct {
	Name        string `json:"name"`
	Permissions []int  `json:"permissions"`
}

// Warranty is the result of a warranty lookup.
type Warranty struct {
	ProductName    string `json:"productName"`
	DateOfSell     string `json:"dateOfSell"`
	WarrantyNumber string `json:"warrantyNumber"`
	MemoNo         string `json:"memoNo"`
	DealerPoint    string `json:"dealerPoint"`
}

// Dealer is a dealer directory entry.
type Dealer struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
