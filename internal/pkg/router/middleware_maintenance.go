package router

import (
	"net/http"
	"strings"

	"github.com/cookingforum/auth/internal/pkg/config"
	"github.com/samber/lo"
)

func middlewareMaintenance(cfg config.Config) Middleware {
	var listed []string
	if cfg != nil {
		listed = cfg.GetArray("app.maintenance.endpoints")
	}

	endpoints := lo.SliceToMap(
		lo.Filter(lo.Map(listed, func(e string, _ int) string { return strings.TrimSpace(e) }),
			func(e string, _ int) bool { return e != "" }),
		func(e string) (string, struct{}) { return e, struct{}{} },
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := matchedRoutePath(r)
			if _, blocked := endpoints[route]; blocked {
				writeJSON(w, errorResponse{Error: true, Message: "Service is under maintenance"}, http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
