package handler

import (
	"net/http"

	"github.com/vfg2006/influencer-stats-api/pkg/apiErrors"
)

// StatsSyncRunner é o subconjunto do agendador usado pelos handlers de cron
type StatsSyncRunner interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

func RunStatsSync(runner StatsSyncRunner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if runner == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		if !runner.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Sincronização já em andamento", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]string{
			"message": "Sincronização iniciada com sucesso",
			"type":    "stats-sync",
		})
	})
}

func GetCronStatus(runner StatsSyncRunner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if runner == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"stats-sync": runner.GetStatus(),
		})
	})
}
