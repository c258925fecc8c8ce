package entity

import "time"

// Status possíveis de um boleto. "cancelado" só é alcançável via edição
// explícita, nunca pelo toggle.
const (
	BoletoAberto    = "aberto"
	BoletoPago      = "pago"
	BoletoCancelado = "cancelado"
)

// Boleto é um título a pagar simples, independente do cálculo de lucro.
type Boleto struct {
	ID            string
	Descricao     string
	ValorCentavos int64
	Vencimento    *time.Time
	Status        string
	CreatedAt     time.Time
}

// ToggleStatus alterna o status: aberto→pago, pago→aberto, cancelado→aberto.
func (b *Boleto) ToggleStatus() {
	switch b.Status {
	case BoletoAberto:
		b.Status = BoletoPago
	case BoletoPago:
		b.Status = BoletoAberto
	default:
		b.Status = BoletoAberto
	}
}

// NormalizeStatus coage valores desconhecidos para "aberto".
func NormalizeStatus(s string) string {
	switch s {
	case BoletoAberto, BoletoPago, BoletoCancelado:
		return s
	default:
		return BoletoAberto
	}
}
