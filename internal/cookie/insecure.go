//go:build insecurecookie

package cookie

// secureCookie is disabled for plain-http local development builds.
func secureCookie() bool {
	return false
}
