//go:build !insecurecookie

package cookie

// secureCookie reports whether cookies carry the Secure attribute.
func secureCookie() bool {
	return true
}
