package domain

import "time"

// Referrer é o influenciador cujo identificador viaja no link de rastreamento
type Referrer struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TrackerID     string    `json:"tracker_id"`
	ReferralLink  string    `json:"referral_link"`
	Clicks        int       `json:"clicks"`
	Installs      int       `json:"installs"`
	Registrations int       `json:"registrations"`
	Earnings      Earnings  `json:"earnings"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AttributionTag retorna o valor esperado no parâmetro ad_content do AppMetrica
func (r *Referrer) AttributionTag() string {
	if r.TrackerID != "" {
		return r.TrackerID
	}
	return r.ID
}

// ApplyStats sobrescreve os contadores derivados. Os valores nunca são incrementados.
func (r *Referrer) ApplyStats(stats AcquisitionStats, registrations int) {
	r.Clicks = stats.Clicks
	r.Installs = stats.Installs
	r.Registrations = registrations
	r.Earnings = ComputeEarnings(stats.Installs)
}

type CreateReferrerRequest struct {
	Name string `json:"name"`
}

type ReferrerResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TrackerID     string `json:"tracker_id"`
	ReferralLink  string `json:"referral_link"`
	Clicks        int    `json:"clicks"`
	Installs      int    `json:"installs"`
	Registrations int    `json:"registrations"`
	Earnings      string `json:"earnings"`
}

func NewReferrerResponse(r *Referrer) *ReferrerResponse {
	return &ReferrerResponse{
		ID:            r.ID,
		Name:          r.Name,
		TrackerID:     r.TrackerID,
		ReferralLink:  r.ReferralLink,
		Clicks:        r.Clicks,
		Installs:      r.Installs,
		Registrations: r.Registrations,
		Earnings:      r.Earnings.String(),
	}
}
