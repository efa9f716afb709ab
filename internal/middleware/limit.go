package middleware

import "net/http"

// LimitBytes caps request body size so oversized uploads fail fast instead of
// exhausting memory in the spreadsheet readers.
func LimitBytes(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
