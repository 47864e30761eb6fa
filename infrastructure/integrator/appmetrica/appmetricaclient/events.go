package appmetricaclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	appmetricadomain "github.com/vfg2006/influencer-stats-api/infrastructure/integrator/appmetrica/domain"
)

// Campos mínimos para identificar o evento e ler o ad_content
const eventFields = "event_name,event_json"

type EventsParams struct {
	AppID     string
	DateSince string
	DateUntil string
	Limit     int
}

func (p EventsParams) Values() url.Values {
	query := url.Values{}
	query.Set("application_id", p.AppID)
	query.Set("date_since", p.DateSince)
	query.Set("date_until", p.DateUntil)
	query.Set("fields", eventFields)
	query.Set("limit", strconv.Itoa(p.Limit))
	return query
}

func (c *AppMetricaClient) ExportEvents(ctx context.Context, params EventsParams) (*appmetricadomain.EventsResponse, error) {
	endpoint, err := url.Parse(c.config.LogsURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.RawQuery = params.Values().Encode()

	response := &appmetricadomain.EventsResponse{}
	if err := c.do(ctx, endpoint.String(), response); err != nil {
		return nil, err
	}

	return response, nil
}
