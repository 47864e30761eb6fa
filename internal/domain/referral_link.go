package domain

import (
	"net/url"
)

// BuildReferralLink monta o link de redirecionamento do AppMetrica para um influenciador.
// Sem tracker master o link continua sintaticamente válido; validar a configuração é papel de quem chama.
func BuildReferralLink(redirectHost, masterTrackerID, referrerID string) string {
	link := url.URL{
		Scheme: "https",
		Host:   redirectHost,
		Path:   "/",
		RawQuery: "appmetrica_tracking_id=" + url.QueryEscape(masterTrackerID) +
			"&ad_content=" + url.QueryEscape(referrerID),
	}

	return link.String()
}
