package bearer

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"eventSubmitter/internal/lib/api/response"

	"github.com/go-chi/render"
)

// New rejects requests whose Authorization header does not carry the
// expected bearer token.
func New(log *slog.Logger, token string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log = log.With(
			slog.String("component", "middleware/bearer"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				log.Warn("unauthorized request", slog.String("remote_addr", r.RemoteAddr))

				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or missing bearer token"))

				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}
