package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/vfg2006/influencer-stats-api/internal/domain"
	"github.com/vfg2006/influencer-stats-api/internal/usecases/authenticating"
	"github.com/vfg2006/influencer-stats-api/pkg/apiErrors"
	"github.com/vfg2006/influencer-stats-api/pkg/log"
)

func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		token, err := service.LoginAdmin(req.Email, req.Password)
		if err != nil {
			handleAuthError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, token)
	})
}

// IssueReferrerToken emite o token que o influenciador usa no painel
func IssueReferrerToken(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		token, err := service.IssueReferrerToken(r.Context(), id)
		if err != nil {
			handleAuthError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, token)
	})
}

func handleAuthError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Warn("Falha de autenticação")

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		var details map[string]any
		if authErr.ReferrerID != "" {
			details = map[string]any{"referrer_id": authErr.ReferrerID}
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Err.Error(), details)
		return
	}

	if errors.Is(err, authenticating.ErrInvalidCredentials) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao autenticar", nil)
}
