package middleware

import "net/http"

// LimitBytes ограничивает размер тела запроса; превышение отдаёт 413
// из http.MaxBytesReader при первом чтении тела хендлером.
func LimitBytes(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
