package domain

import "strconv"

const (
	// InstallsPerPayoutGroup é a quantidade de instalações que gera um pagamento
	InstallsPerPayoutGroup = 20
	// PayoutPerGroup é o valor pago por grupo completo, na moeda de relatório
	PayoutPerGroup = 1
)

// Earnings é um valor inteiro na moeda de relatório
type Earnings int64

// ComputeEarnings aplica a regra de pagamento: floor(installs / 20) * 1
func ComputeEarnings(installs int) Earnings {
	if installs <= 0 {
		return 0
	}

	groups := installs / InstallsPerPayoutGroup
	return Earnings(groups * PayoutPerGroup)
}

// String formata o valor com exatamente duas casas decimais ("2.00")
func (e Earnings) String() string {
	return strconv.FormatFloat(float64(e), 'f', 2, 64)
}
