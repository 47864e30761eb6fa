package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/vfg2006/influencer-stats-api/internal/usecases/reconciling"
	"github.com/vfg2006/influencer-stats-api/pkg/apiErrors"
	"github.com/vfg2006/influencer-stats-api/pkg/log"
	"github.com/vfg2006/influencer-stats-api/pkg/middleware"
)

// GetMyStats reconcilia as estatísticas do influenciador autenticado
func GetMyStats(service reconciling.ReconcilingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok || claims.ReferrerID == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		reconcileAndRespond(w, r, service, claims.ReferrerID)
	})
}

// GetReferrerStats reconcilia as estatísticas de um influenciador escolhido pelo admin
func GetReferrerStats(service reconciling.ReconcilingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do influenciador é obrigatório", nil)
			return
		}

		reconcileAndRespond(w, r, service, id)
	})
}

func reconcileAndRespond(w http.ResponseWriter, r *http.Request, service reconciling.ReconcilingService, referrerID string) {
	result, err := service.Reconcile(r.Context(), referrerID)
	if err != nil {
		log.ForReferrer(r.Context(), referrerID).WithError(err).Error("Erro ao reconciliar estatísticas")

		var reconcileErr *reconciling.ReconcileError
		if errors.As(err, &reconcileErr) {
			apiErrors.WriteError(w, reconcileErr.Code, reconcileErr.Err.Error(), map[string]any{
				"referrer_id": reconcileErr.ReferrerID,
			})
			return
		}

		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao reconciliar estatísticas", nil)
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}
