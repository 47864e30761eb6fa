package appmetricaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/time/rate"

	appmetricadomain "github.com/vfg2006/influencer-stats-api/infrastructure/integrator/appmetrica/domain"
	"github.com/vfg2006/influencer-stats-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

type Client interface {
	GetAcquisition(ctx context.Context, params AcquisitionParams) (*appmetricadomain.AcquisitionResponse, error)
	ExportEvents(ctx context.Context, params EventsParams) (*appmetricadomain.EventsResponse, error)
}

type AppMetricaClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	config     *config.AppMetrica
}

// NewClient cria o cliente HTTP das APIs de relatório e de logs do AppMetrica.
func NewClient(cfg *config.AppMetrica) Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 45 * time.Second
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &AppMetricaClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(limit, 1),
		config:  cfg,
	}
}

// do executa a requisição autenticada e decodifica a resposta em out
func (c *AppMetricaClient) do(ctx context.Context, endpoint string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("erro aguardando o limite de requisições: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "OAuth "+c.config.OAuthToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	// A Logs API responde 202 enquanto prepara a exportação, sem dados ainda
	if resp.StatusCode == http.StatusAccepted {
		return fmt.Errorf("%w: %s", ErrExportNotReady, resp.Status)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &appmetricadomain.ErrorResponse{}
		if err := json.Unmarshal(body, apiErr); err == nil && (apiErr.Code != 0 || len(apiErr.Errors) > 0) {
			if apiErr.Code == 0 {
				apiErr.Code = resp.StatusCode
			}
			return fmt.Errorf("requisição falhou com status %s: %w", resp.Status, apiErr)
		}
		return fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
