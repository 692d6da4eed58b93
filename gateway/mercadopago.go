package gateway

import (
	"fmt"

	"github.com/comanda-digital/comanda-app/models"
)

// MercadoPago é o adapter para o gateway Mercado Pago.
// TODO: trocar as respostas stub pela chamada real à API do Mercado Pago.
type MercadoPago struct {
	accessToken string
	publicKey   string
}

func novoMercadoPago(est models.Estabelecimento) (Gateway, error) {
	if est.MPAccessToken == "" {
		return nil, fmt.Errorf("estabelecimento %d sem access token do Mercado Pago", est.ID)
	}
	return &MercadoPago{
		accessToken: est.MPAccessToken,
		publicKey:   est.MPPublicKey,
	}, nil
}

func (mp *MercadoPago) CriarPagamento(referencia string, valor float64, moeda string) (*Cobranca, error) {
	return &Cobranca{
		Referencia: referencia,
		Status:     "stub",
	}, nil
}

func (mp *MercadoPago) ConsultarStatus(referencia string) (string, error) {
	return "stub", nil
}

func (mp *MercadoPago) TratarWebhook(payload map[string]interface{}) (string, error) {
	return "stub", nil
}
