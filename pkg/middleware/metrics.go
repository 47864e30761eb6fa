package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/influencer-stats-api/pkg/apiErrors"
)

// MetricsAuth protege o endpoint de métricas com um token estático do scraper.
// Sem token configurado a rota fica aberta, já que os contadores não carregam ids de influenciadores.
func MetricsAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				logrus.WithField("remote_addr", r.RemoteAddr).Warning("Acesso às métricas negado")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Invalid metrics token", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
