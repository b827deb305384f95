package gmocoin

import "net/http"

// EmptyHeaders returns the header set used for public, unauthenticated calls.
// Private APIs would populate API-key and signature headers here instead.
func EmptyHeaders() http.Header {
	return http.Header{}
}
