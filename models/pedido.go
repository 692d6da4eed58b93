package models

import (
	"strings"
	"time"
)

// Status canônicos de um pedido. O campo continua texto livre no banco e a
// casing enviada pelo chamador é armazenada como veio; apenas a transição
// para "Pago" é comparada sem diferenciar maiúsculas (ver StatusEhPago).
const (
	StatusPedidoAguardandoSelecao   = "Aguardando Seleção"
	StatusPedidoCozinha             = "Cozinha"
	StatusPedidoAguardandoPagamento = "Aguardando Pagamento"
	StatusPedidoPago                = "Pago"
	StatusPedidoFechado             = "Fechado"
)

// Pedido representa a comanda de um cliente. Fechado indica que o pedido não
// aceita mais itens e aguarda pagamento; Total é mantido incrementalmente a
// cada item adicionado.
type Pedido struct {
	PedidoID  uint         `gorm:"primaryKey;column:pedido_id" json:"pedido_id"`
	ClienteID uint         `gorm:"column:cliente_id;not null" json:"cliente_id"`
	Status    string       `gorm:"type:varchar(50);not null;default:'Aguardando Seleção'" json:"status"`
	DataHora  time.Time    `gorm:"not null" json:"data_hora"`
	Total     float64      `gorm:"type:decimal(10,2);not null;default:0" json:"total"`
	Fechado   bool         `gorm:"not null;default:false" json:"fechado"`
	Itens     []PedidoItem `gorm:"foreignKey:PedidoID;references:PedidoID;constraint:OnDelete:CASCADE" json:"itens"`
	Cliente   *Cliente     `gorm:"foreignKey:ClienteID;references:ClienteID" json:"cliente,omitempty"`
}

func (Pedido) TableName() string {
	return "pedido"
}

// StatusEhPago compara um status informado com "Pago" sem diferenciar
// maiúsculas de minúsculas.
func StatusEhPago(status string) bool {
	return strings.EqualFold(status, StatusPedidoPago)
}
