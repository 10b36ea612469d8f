package router

import (
	"net/http"
	"strings"

	"github.com/cookingforum/auth/internal/pkg/jwt"
)

// middlewareAuthentication guards the listed endpoints with a bearer token.
//
// A missing or unverifiable token is reported as a malformed request (400),
// not as 401: no authentication challenge is ever issued here.
func middlewareAuthentication(verifier jwt.JWT, protected map[string]map[string]struct{}) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := matchedRoutePath(r)

			s, ok := protected[r.Method]
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			if _, guard := s[path]; !guard {
				next.ServeHTTP(w, r)
				return
			}

			p := strings.Fields(r.Header.Get("Authorization"))
			if len(p) != 2 || !strings.EqualFold(p[0], "Bearer") {
				writeJSON(w, errorResponse{Error: true, Message: "Authentication required"}, http.StatusBadRequest)
				return
			}

			claims, err := verifier.Verify(p[1])
			if err != nil {
				writeJSON(w, errorResponse{Error: true, Message: "Invalid or expired token"}, http.StatusBadRequest)
				return
			}

			ctx := jwt.SetAuth(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
