package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/radiology-workload-api/pkg/apiErrors"
)

// RequireSession bloqueia a rota para requisições sem sessão válida
func RequireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := SessionFromContext(r.Context()); !ok {
				logrus.WithField("path", r.URL.Path).Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
