package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/vfg2006/influencer-stats-api/internal/domain"
	"github.com/vfg2006/influencer-stats-api/internal/usecases/referrer"
	"github.com/vfg2006/influencer-stats-api/pkg/apiErrors"
	"github.com/vfg2006/influencer-stats-api/pkg/log"
)

func CreateReferrer(service referrer.ReferrerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateReferrerRequest
		if !decodeBody(w, r, &req) {
			return
		}

		created, err := service.Create(r.Context(), &req)
		if err != nil {
			handleReferrerError(w, r, err, "Erro ao criar influenciador")
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	})
}

func ListReferrers(service referrer.ReferrerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		referrers, err := service.List(r.Context())
		if err != nil {
			handleReferrerError(w, r, err, "Erro ao listar influenciadores")
			return
		}

		writeJSON(w, r, http.StatusOK, referrers)
	})
}

func GetReferrer(service referrer.ReferrerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		found, err := service.Get(r.Context(), id)
		if err != nil {
			handleReferrerError(w, r, err, "Erro ao buscar influenciador")
			return
		}

		writeJSON(w, r, http.StatusOK, found)
	})
}

func handleReferrerError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var referrerErr *referrer.ReferrerError
	if errors.As(err, &referrerErr) {
		log.ForContext(r.Context()).WithError(err).Warn(message)
		apiErrors.WriteError(w, referrerErr.Code, referrerErr.Err.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error(message)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}
