package appmetricadomain

import (
	"errors"
	"fmt"
	"strings"
)

type Metric string

const (
	MetricImpressions Metric = "impressions"
	MetricClicks      Metric = "clicks"
	MetricDevices     Metric = "devices"
	MetricDeeplinks   Metric = "deeplinks"
	MetricConversion  Metric = "conversion"
	MetricSessions    Metric = "sessions"
)

// AcquisitionMetrics é a lista de métricas pedida à API, na ordem em que as colunas voltam
var AcquisitionMetrics = []Metric{
	MetricImpressions,
	MetricClicks,
	MetricDevices,
	MetricDeeplinks,
	MetricConversion,
	MetricSessions,
}

var (
	ErrMetricLayoutMismatch = errors.New("acquisition metric layout mismatch")
	ErrMetricCountMismatch  = errors.New("acquisition row has fewer metrics than requested")
	ErrMissingMetric        = errors.New("required acquisition metric not requested")
)

// AcquisitionValues são as métricas de uma linha, decodificadas por nome
type AcquisitionValues struct {
	Impressions int
	Clicks      int
	Installs    int
	Deeplinks   int
	Conversion  float64
	Sessions    int
}

// MetricLayout decodifica as colunas de métricas pelo nome pedido na consulta
type MetricLayout struct {
	names []Metric
	index map[Metric]int
}

func NewMetricLayout(requested []Metric) (*MetricLayout, error) {
	index := make(map[Metric]int, len(requested))
	for i, m := range requested {
		if _, dup := index[m]; dup {
			return nil, fmt.Errorf("%w: metric %q requested twice", ErrMetricLayoutMismatch, m)
		}
		index[m] = i
	}

	for _, required := range []Metric{MetricClicks, MetricDevices} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingMetric, required)
		}
	}

	names := make([]Metric, len(requested))
	copy(names, requested)

	return &MetricLayout{names: names, index: index}, nil
}

// Param retorna a lista de métricas no formato csv esperado pela API
func (l *MetricLayout) Param() string {
	parts := make([]string, len(l.names))
	for i, m := range l.names {
		parts[i] = string(m)
	}
	return strings.Join(parts, ",")
}

// ExpectStandard confirma que a lista pedida é a ordem padrão de AcquisitionMetrics
func (l *MetricLayout) ExpectStandard() error {
	if len(l.names) != len(AcquisitionMetrics) {
		return fmt.Errorf("%w: requested %d metrics, expected %d", ErrMetricLayoutMismatch, len(l.names), len(AcquisitionMetrics))
	}

	for i, m := range AcquisitionMetrics {
		if l.names[i] != m {
			return fmt.Errorf("%w: position %d is %q, expected %q", ErrMetricLayoutMismatch, i, l.names[i], m)
		}
	}

	return nil
}

// Verify compara o eco de métricas da resposta com a lista pedida.
// Uma API que reordena as colunas faz a decodificação falhar em vez de trocar cliques por instalações.
func (l *MetricLayout) Verify(echo *AcquisitionQueryEcho) error {
	if echo == nil || len(echo.Metrics) == 0 {
		return nil
	}

	if len(echo.Metrics) != len(l.names) {
		return fmt.Errorf("%w: requested %d metrics, response has %d", ErrMetricLayoutMismatch, len(l.names), len(echo.Metrics))
	}

	for i, name := range echo.Metrics {
		if normalizeMetricName(name) != l.names[i] {
			return fmt.Errorf("%w: position %d is %q, expected %q", ErrMetricLayoutMismatch, i, name, l.names[i])
		}
	}

	return nil
}

// Decode lê os valores da linha pelo nome da métrica
func (l *MetricLayout) Decode(row AcquisitionRow) (AcquisitionValues, error) {
	if len(row.Metrics) < len(l.names) {
		return AcquisitionValues{}, fmt.Errorf("%w: got %d, want %d", ErrMetricCountMismatch, len(row.Metrics), len(l.names))
	}

	return AcquisitionValues{
		Impressions: int(l.value(row, MetricImpressions)),
		Clicks:      int(l.value(row, MetricClicks)),
		Installs:    int(l.value(row, MetricDevices)),
		Deeplinks:   int(l.value(row, MetricDeeplinks)),
		Conversion:  l.value(row, MetricConversion),
		Sessions:    int(l.value(row, MetricSessions)),
	}, nil
}

func (l *MetricLayout) value(row AcquisitionRow, m Metric) float64 {
	i, ok := l.index[m]
	if !ok {
		return 0
	}
	return row.Metrics[i]
}

// A API pode ecoar as métricas com prefixo de namespace (ex.: "ym:ai:clicks")
func normalizeMetricName(name string) Metric {
	if i := strings.LastIndex(name, ":"); i >= 0 {
		name = name[i+1:]
	}
	return Metric(strings.TrimSpace(name))
}
