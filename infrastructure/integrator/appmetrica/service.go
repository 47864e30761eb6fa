package appmetrica

import (
	"context"

	"github.com/vfg2006/influencer-stats-api/infrastructure/integrator/appmetrica/appmetricaclient"
	appmetricadomain "github.com/vfg2006/influencer-stats-api/infrastructure/integrator/appmetrica/domain"
	"github.com/vfg2006/influencer-stats-api/internal/domain"
	"github.com/vfg2006/influencer-stats-api/pkg/log"
	"github.com/vfg2006/influencer-stats-api/pkg/metrics"
)

const (
	reasonUpstreamError  = "upstream_error"
	reasonLayoutMismatch = "layout_mismatch"
	reasonNoMatch        = "no_match"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Integrator busca as métricas de um influenciador no AppMetrica.
// Falhas da API nunca sobem: o resultado degrada para zero e o erro fica no log.
type Integrator interface {
	FetchAcquisition(ctx context.Context, referrerID string) domain.AcquisitionStats
	FetchRegistrations(ctx context.Context, referrerID string) int
}

type AppMetricaIntegrator struct {
	settings Settings
	Client   appmetricaclient.Client
}

func New(settings Settings, client appmetricaclient.Client) Integrator {
	return &AppMetricaIntegrator{
		settings: settings,
		Client:   client,
	}
}

func (s *AppMetricaIntegrator) FetchAcquisition(ctx context.Context, referrerID string) domain.AcquisitionStats {
	logger := log.ForReferrer(ctx, referrerID).WithField("endpoint", metrics.EndpointAcquisition)

	layout, err := appmetricadomain.NewMetricLayout(s.settings.Metrics)
	if err == nil {
		err = layout.ExpectStandard()
	}
	if err != nil {
		logger.WithField("error", err.Error()).Error("acquisition: invalid metric layout")
		metrics.RecordDegraded(metrics.EndpointAcquisition, reasonLayoutMismatch)
		return domain.AcquisitionStats{}
	}

	resp, err := s.Client.GetAcquisition(ctx, appmetricaclient.AcquisitionParams{
		AppID:       s.settings.AppID,
		DateSince:   s.settings.DateSince,
		Metrics:     layout.Param(),
		Limit:       s.settings.RowLimit,
		Currency:    s.settings.Currency,
		Publisher:   s.settings.Publisher,
		Campaign:    s.settings.Campaign,
		InstallType: s.settings.InstallType,
	})
	metrics.RecordRequest(metrics.EndpointAcquisition, err)
	if err != nil {
		logger.WithField("error", err.Error()).Error("acquisition: failed to get stats from API")
		metrics.RecordDegraded(metrics.EndpointAcquisition, reasonUpstreamError)
		return domain.AcquisitionStats{}
	}

	if err := layout.Verify(resp.Query); err != nil {
		logger.WithField("error", err.Error()).Error("acquisition: response metric order differs from request")
		metrics.RecordDegraded(metrics.EndpointAcquisition, reasonLayoutMismatch)
		return domain.AcquisitionStats{}
	}

	logger.WithField("rows", len(resp.Data)).Debug("acquisition: rows received")

	for _, row := range resp.Data {
		if !row.MatchesTag(referrerID) {
			continue
		}

		values, err := layout.Decode(row)
		if err != nil {
			logger.WithField("error", err.Error()).Error("acquisition: failed to decode matched row")
			metrics.RecordDegraded(metrics.EndpointAcquisition, reasonLayoutMismatch)
			return domain.AcquisitionStats{}
		}

		logger.WithFields(log.Fields{
			"clicks":   values.Clicks,
			"installs": values.Installs,
		}).Debug("acquisition: row matched")

		return domain.AcquisitionStats{
			Clicks:   values.Clicks,
			Installs: values.Installs,
		}
	}

	logger.Warn("acquisition: no row for referrer")
	metrics.RecordDegraded(metrics.EndpointAcquisition, reasonNoMatch)

	return domain.AcquisitionStats{}
}

func (s *AppMetricaIntegrator) FetchRegistrations(ctx context.Context, referrerID string) int {
	logger := log.ForReferrer(ctx, referrerID).WithField("endpoint", metrics.EndpointEvents)

	resp, err := s.Client.ExportEvents(ctx, appmetricaclient.EventsParams{
		AppID:     s.settings.AppID,
		DateSince: s.settings.DateSince,
		DateUntil: s.settings.LogsDateUntil,
		Limit:     s.settings.RowLimit,
	})
	metrics.RecordRequest(metrics.EndpointEvents, err)
	if err != nil {
		logger.WithField("error", err.Error()).Error("events: failed to export events from API")
		metrics.RecordDegraded(metrics.EndpointEvents, reasonUpstreamError)
		return 0
	}

	registrations := 0
	for i, event := range resp.Data {
		if !event.IsRegistration() {
			continue
		}

		payload, err := event.Payload()
		if err != nil {
			logger.WithFields(log.Fields{
				"event_index": i,
				"error":       err.Error(),
			}).Warn("events: skipping event with invalid payload")
			continue
		}

		if appmetricadomain.AttributionTag(payload) == referrerID {
			registrations++
		}
	}

	logger.WithFields(log.Fields{
		"events":        len(resp.Data),
		"registrations": registrations,
	}).Debug("events: registrations counted")

	return registrations
}
