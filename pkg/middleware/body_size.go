package middleware

import (
	"fmt"
	"net/http"

	apperrors "dogbooking/pkg/errors"
	httputil "dogbooking/pkg/http"
)

// MaxRequestSize caps the request body at limit bytes. Reads past the cap
// fail with *http.MaxBytesError, which DecodeJSON turns into a 413.
func MaxRequestSize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				_ = httputil.WriteError(w, apperrors.New(
					apperrors.CodeInvalidInput,
					fmt.Sprintf("Request body exceeds %d bytes", limit),
					http.StatusRequestEntityTooLarge,
				))
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
