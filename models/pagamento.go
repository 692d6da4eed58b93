package models

import "time"

// Pagamento representa a quitação de um pedido. O uniqueIndex em PedidoID
// impede dois pagamentos para o mesmo pedido no nível do banco. ValorPago e
// Troco só são preenchidos em pagamentos em dinheiro. O valor é registrado
// como informado, sem conferência contra o total do pedido.
type Pagamento struct {
	PagamentoID uint      `gorm:"primaryKey;column:pagamento_id" json:"pagamento_id"`
	PedidoID    uint      `gorm:"column:pedido_id;uniqueIndex;not null" json:"pedido_id"`
	Metodo      string    `gorm:"type:varchar(50);not null" json:"metodo"`
	Valor       float64   `gorm:"type:decimal(10,2);not null" json:"valor"`
	ValorPago   *float64  `gorm:"type:decimal(10,2)" json:"valor_pago"`
	Troco       *float64  `gorm:"type:decimal(10,2)" json:"troco"`
	DataHora    time.Time `gorm:"not null" json:"data_hora"`
}

func (Pagamento) TableName() string {
	return "pagamento"
}
