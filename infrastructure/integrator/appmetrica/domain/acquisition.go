package appmetricadomain

import (
	"strconv"
)

// AcquisitionResponse é o corpo devolvido por /v2/user/acquisition
type AcquisitionResponse struct {
	Query *AcquisitionQueryEcho `json:"query,omitempty"`
	Data  []AcquisitionRow      `json:"data"`
}

// AcquisitionQueryEcho é o eco da consulta que a API devolve junto com os dados
type AcquisitionQueryEcho struct {
	Metrics    []string `json:"metrics"`
	Dimensions []string `json:"dimensions"`
}

type AcquisitionRow struct {
	Dimensions []Dimension `json:"dimensions"`
	Metrics    []float64   `json:"metrics"`
}

// Dimension pode trazer value/name como string, número ou null
type Dimension struct {
	Name  any `json:"name"`
	Value any `json:"value"`
}

// MatchesTag compara a primeira dimensão da linha com a tag de atribuição,
// primeiro pelo valor e depois pelo nome
func (r AcquisitionRow) MatchesTag(tag string) bool {
	if len(r.Dimensions) == 0 || tag == "" {
		return false
	}

	dimension := r.Dimensions[0]
	return CoerceString(dimension.Value) == tag || CoerceString(dimension.Name) == tag
}

// CoerceString converte valores JSON escalares para string. null vira string vazia.
func CoerceString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
