package appmetrica

import (
	appmetricadomain "github.com/vfg2006/influencer-stats-api/infrastructure/integrator/appmetrica/domain"
	"github.com/vfg2006/influencer-stats-api/internal/config"
)

// Settings são os parâmetros fixos das consultas, lidos uma vez da configuração
type Settings struct {
	AppID         string
	Publisher     string
	Campaign      string
	InstallType   string
	DateSince     string
	LogsDateUntil string
	Currency      string
	RowLimit      int
	Metrics       []appmetricadomain.Metric
}

func NewSettings(cfg *config.AppMetrica) Settings {
	metrics := make([]appmetricadomain.Metric, len(appmetricadomain.AcquisitionMetrics))
	copy(metrics, appmetricadomain.AcquisitionMetrics)

	return Settings{
		AppID:         cfg.AppID,
		Publisher:     cfg.Publisher,
		Campaign:      cfg.Campaign,
		InstallType:   cfg.InstallType,
		DateSince:     cfg.DateSince,
		LogsDateUntil: cfg.LogsDateUntil,
		Currency:      cfg.Currency,
		RowLimit:      cfg.RowLimit,
		Metrics:       metrics,
	}
}
