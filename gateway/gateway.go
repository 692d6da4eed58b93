package gateway

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/comanda-digital/comanda-app/models"
	"github.com/comanda-digital/comanda-app/utils"
)

// Cobranca é o resultado normalizado de uma cobrança criada em um gateway
// externo, independente do provedor.
type Cobranca struct {
	Referencia string `json:"referencia"`
	Status     string `json:"status"`
	QRCode     string `json:"qr_code,omitempty"`
	URL        string `json:"url,omitempty"`
}

// Gateway é a interface esperada de um provedor de pagamento externo.
type Gateway interface {
	CriarPagamento(referencia string, valor float64, moeda string) (*Cobranca, error)
	ConsultarStatus(referencia string) (string, error)
	TratarWebhook(payload map[string]interface{}) (string, error)
}

// ErrGatewayDesconhecido indica um nome de gateway sem implementação
// registrada na configuração do estabelecimento.
type ErrGatewayDesconhecido struct {
	Nome string
}

func (e *ErrGatewayDesconhecido) Error() string {
	return fmt.Sprintf("gateway de pagamento não configurado: %q", e.Nome)
}

type fabrica func(est models.Estabelecimento) (Gateway, error)

// registro mapeia o nome do gateway gravado no estabelecimento para o
// construtor do adapter correspondente.
var registro = map[string]fabrica{
	"mercadopago": novoMercadoPago,
	"midtrans":    novoMidtrans,
}

// ParaEstabelecimento resolve o gateway configurado para o estabelecimento.
// A seleção acontece uma vez por registro de estabelecimento; nomes sem
// implementação produzem ErrGatewayDesconhecido.
func ParaEstabelecimento(db *gorm.DB, estabelecimentoID uint) (Gateway, error) {
	var est models.Estabelecimento
	if err := db.First(&est, estabelecimentoID).Error; err != nil {
		return nil, utils.NewNotFoundError("Estabelecimento não encontrado")
	}

	constroi, ok := registro[est.Gateway]
	if !ok {
		return nil, &ErrGatewayDesconhecido{Nome: est.Gateway}
	}
	return constroi(est)
}
