package apiclient

import (
	"context"
)

var (
	_ Authenticator = &Client{}
	_ API           = &Client{}
)

// Authenticator validates and exchanges bearer tokens.
type Authenticator interface {
	CurrentUser(ctx context.Context) (*CurrentUser, error)
	Login(ctx context.Context, creds Credentials) (token string, err error)
	Logout(ctx context.Context) error
}

// API is the set of remote operations used by the dashboard screens.
// Mutations return the success message reported by the API, if any.
type API interface {
	Authenticator

	Customers(ctx context.Context) ([]Customer, error)
	RegisterWarranty(ctx context.Context, reg Registration) (string, error)
	DeleteCustomer(ctx context.Context, uuid string) (string, error)

	Products(ctx context.Context) ([]Product, error)
	CreateProduct(ctx context.Context, p NewProduct) (string, error)
	DeleteProduct(ctx context.Context, uuid string) (string, error)
	SuspendProduct(ctx context.Context, uuid string) (string, error)
	ActivateProduct(ctx context.Context, uuid string) (string, error)
	ImportProducts(ctx context.Context, file Upload) (string, error)
	ProductImportTemplate(ctx context.Context) (*ImportTemplate, error)

	BikeModels(ctx context.Context) ([]BikeModel, error)
	BikeModel(ctx context.Context, uuid string) (*BikeModel, error)
	CreateBikeModel(ctx context.Context, in BikeModelInput) (string, error)
	UpdateBikeModel(ctx context.Context, uuid string, in BikeModelInput) (string, error)
	DeleteBikeModel(ctx context.Context, uuid string) (string, error)
	SuspendBikeModel(ctx context.Context, uuid string) (string, error)
	ActivateBikeModel(ctx context.Context, uuid string) (string, error)

	Users(ctx context.Context, search string) ([]User, error)
	User(ctx context.Context, uuid string) (*User, error)
	CreateUser(ctx context.Context, in UserInput) (string, error)
	UpdateUser(ctx context.Context, uuid string, in UserInput) (string, error)
	DeleteUser(ctx context.Context, uuid string) (string, error)
	SuspendUser(ctx context.Context, uuid string) (string, error)
	ActivateUser(ctx context.Context, uuid string) (string, error)

	Roles(ctx context.Context, search string) ([]Role, error)
	Role(ctx context.Context, id int) (*Role, error)
	CreateRole(ctx context.Context, in RoleInput) (string, error)
	UpdateRole(ctx context.Context, id int, in RoleInput) (string, error)
	DeleteRole(ctx context.Context, id int) (string, error)
	Permissions(ctx context.Context) (PermissionSet, error)

	CheckWarranty(ctx context.Context, search string) (*Warranty, error)

	Dealers(ctx context.Context) ([]Dealer, error)
	DeleteDealer(ctx context.Context, id int) (string, error)
	ImportDealers(ctx context.Context, file Upload) (string, error)
}
