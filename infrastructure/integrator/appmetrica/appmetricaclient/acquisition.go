package appmetricaclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	appmetricadomain "github.com/vfg2006/influencer-stats-api/infrastructure/integrator/appmetrica/domain"
)

// Agrupa as linhas pelo parâmetro ad_content da URL de rastreamento
const acquisitionDimension = "urlParameter{'ad_content'}"

type AcquisitionParams struct {
	AppID       string
	DateSince   string
	DateUntil   string
	Metrics     string
	Limit       int
	Currency    string
	Publisher   string
	Campaign    string
	InstallType string
}

// Filters monta a expressão de filtro por publisher, campanha e tipo de instalação
func (p AcquisitionParams) Filters() string {
	return fmt.Sprintf("(publisher=='%s' AND campaign=='%s' AND installType=='%s')", p.Publisher, p.Campaign, p.InstallType)
}

func (p AcquisitionParams) Values() url.Values {
	dateUntil := p.DateUntil
	if dateUntil == "" {
		dateUntil = "today"
	}

	query := url.Values{}
	query.Set("ids", p.AppID)
	query.Set("id", p.AppID)
	query.Set("date1", p.DateSince)
	query.Set("date2", dateUntil)
	query.Set("group", "Day")
	query.Set("metrics", p.Metrics)
	query.Set("dimensions", acquisitionDimension)
	query.Set("limit", strconv.Itoa(p.Limit))
	query.Set("accuracy", "medium")
	query.Set("include_undefined", "true")
	query.Set("currency", p.Currency)
	query.Set("sort", "-devices")
	query.Set("source", "installation")
	query.Set("filters", p.Filters())
	return query
}

func (c *AppMetricaClient) GetAcquisition(ctx context.Context, params AcquisitionParams) (*appmetricadomain.AcquisitionResponse, error) {
	endpoint, err := url.Parse(c.config.AcquisitionURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.RawQuery = params.Values().Encode()

	response := &appmetricadomain.AcquisitionResponse{}
	if err := c.do(ctx, endpoint.String(), response); err != nil {
		return nil, err
	}

	return response, nil
}
