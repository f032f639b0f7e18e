package xhttp

import "net/http"

const (
	Authorization = "Authorization"
	Accept        = "Accept"
	ContentType   = "Content-Type"
	UserAgent     = "User-Agent"
	XRequestID    = "X-Request-ID"
	XSessionID    = "X-Session-ID"
)

const (
	ApplicationJSON = "application/json"
	FormURLEncoded  = "application/x-www-form-urlencoded"
)

func SetRequestHeaderBearer(r *http.Request, token string) {
	r.Header.Set(Authorization, "Bearer "+token)
}

// SetRequestHeaderJSON marks the request as sending and expecting JSON.
// An already set Content-Type (e.g. a form body) is preserved.
func SetRequestHeaderJSON(r *http.Request) {
	if r.Header.Get(ContentType) == "" {
		r.Header.Set(ContentType, ApplicationJSON)
	}
	r.Header.Set(Accept, ApplicationJSON)
}

func SetRequestHeaderSessionID(r *http.Request, sessionID string) {
	r.Header.Set(XSessionID, sessionID)
}
