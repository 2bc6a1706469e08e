package middleware

import (
	"context"
	"log"
	"net/http"
)

// SessionCookieName is the cookie carrying the anonymous session id. The
// value is an opaque bearer token grouping transactions, not a credential.
const SessionCookieName = "sessionId"

// SessionAuthMiddleware rejects requests without a session cookie and
// stashes the session id on the context for handlers. The create route is
// not behind it; creating is what establishes the session.
func SessionAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			log.Printf("ERROR: Missing session cookie - %s %s", r.Method, r.URL.Path)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), "session_id", cookie.Value)

		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}
