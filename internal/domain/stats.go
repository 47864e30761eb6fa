package domain

// AcquisitionStats são as métricas de aquisição atribuídas a um influenciador
type AcquisitionStats struct {
	Clicks   int `json:"clicks"`
	Installs int `json:"installs"`
}

// StatsResult é o resultado devolvido ao painel do influenciador
type StatsResult struct {
	Name          string `json:"name"`
	Clicks        int    `json:"clicks"`
	Installs      int    `json:"installs"`
	Registrations int    `json:"registrations"`
	Earnings      string `json:"earnings"`
	ReferralLink  string `json:"referralLink"`
}

func NewStatsResult(r *Referrer) *StatsResult {
	return &StatsResult{
		Name:          r.Name,
		Clicks:        r.Clicks,
		Installs:      r.Installs,
		Registrations: r.Registrations,
		Earnings:      r.Earnings.String(),
		ReferralLink:  r.ReferralLink,
	}
}

// SyncSummary resume uma execução de reconciliação de todos os influenciadores
type SyncSummary struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}
