package middleware

import (
	"net/http"

	"github.com/heartmarshall/timebill-backend/pkg/ctxutil"
)

// RequireAdmin lets only admins through: anonymous callers get 401 and
// authenticated non-admins get 403. Services repeat the check, so this
// only saves a round trip to the database.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeError(w, http.StatusForbidden, "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
