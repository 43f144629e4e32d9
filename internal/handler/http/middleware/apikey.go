package middleware

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/staffsight/hr-analytics-go/internal/handler/http/response"
)

// APIKeyRequired guards the headless job-trigger endpoints. External
// schedulers authenticate with X-API-Key; only the bcrypt hash of the key
// is configured on the server.
func APIKeyRequired(keyHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			if keyHash == "" {
				response.Forbidden(w, "Scheduler API access is not configured")
				return
			}

			key := r.Header.Get("X-API-Key")
			if key == "" {
				response.Unauthorized(w, "X-API-Key header is required")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)); err != nil {
				response.Unauthorized(w, "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
