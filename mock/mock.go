// Package mock is used to generate mock files for testing.
package mock

//go:generate mockgen -source ../internal/cookie/cookie_iface.go -destination mock_cookie/mock_cookie_iface.go
//go:generate mockgen -source ../sessionstorage/sessionstorage_iface.go -destination mock_sessionstorage/mock_sessionstorage_iface.go
//go:generate mockgen -source ../apiclient/apiclient_iface.go -destination mock_apiclient/mock_apiclient_iface.go
//go:generate mockgen -package sessionstorage -source ../sessionstorage/sessionstorage_iface.go -destination ../sessionstorage/mock_db_test.go
