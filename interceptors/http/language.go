package http

import (
	"net/http"

	"github.com/pitabwire/localized"
)

// LanguageHTTPMiddleware is an HTTP middleware that extracts the caller's
// locale preferences and sets them in the request context.
func LanguageHTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := localized.ExtractLanguageFromHTTPRequest(r)
		if l != nil {
			r = r.WithContext(localized.ToContext(r.Context(), l))
		}

		next.ServeHTTP(w, r)
	})
}
