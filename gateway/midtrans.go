package gateway

import (
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"

	"github.com/comanda-digital/comanda-app/models"
)

// Midtrans é o adapter para o gateway Midtrans (Core API, cobrança via QRIS).
type Midtrans struct {
	client coreapi.Client
}

func novoMidtrans(est models.Estabelecimento) (Gateway, error) {
	if est.MidtransServerKey == "" {
		return nil, fmt.Errorf("estabelecimento %d sem server key do Midtrans", est.ID)
	}

	env := midtrans.Sandbox
	if est.MidtransProducao {
		env = midtrans.Production
	}

	var client coreapi.Client
	client.New(est.MidtransServerKey, env)
	return &Midtrans{client: client}, nil
}

func (m *Midtrans) CriarPagamento(referencia string, valor float64, moeda string) (*Cobranca, error) {
	req := &coreapi.ChargeReq{
		PaymentType: coreapi.PaymentTypeQris,
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  referencia,
			GrossAmt: int64(valor),
		},
	}

	resp, errMidtrans := m.client.ChargeTransaction(req)
	if errMidtrans != nil {
		return nil, errMidtrans
	}

	cobranca := &Cobranca{
		Referencia: referencia,
		Status:     resp.TransactionStatus,
	}
	for _, action := range resp.Actions {
		if action.Name == "generate-qr-code" {
			cobranca.QRCode = action.URL
			break
		}
	}
	return cobranca, nil
}

func (m *Midtrans) ConsultarStatus(referencia string) (string, error) {
	resp, errMidtrans := m.client.CheckTransaction(referencia)
	if errMidtrans != nil {
		return "", errMidtrans
	}
	return resp.TransactionStatus, nil
}

// TratarWebhook confirma a notificação consultando a transação de volta na
// API, em vez de confiar no status do payload.
func (m *Midtrans) TratarWebhook(payload map[string]interface{}) (string, error) {
	referencia, ok := payload["order_id"].(string)
	if !ok || referencia == "" {
		return "", fmt.Errorf("notificação sem order_id")
	}
	return m.ConsultarStatus(referencia)
}
