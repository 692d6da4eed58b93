package models

// Cliente representa um cliente sentado em uma mesa. O uniqueIndex em Mesa
// garante no banco que nunca existam dois clientes na mesma mesa, mesmo que
// duas requisições concorrentes passem pela checagem da aplicação.
type Cliente struct {
	ClienteID uint     `gorm:"primaryKey;column:cliente_id" json:"cliente_id"`
	Nome      string   `gorm:"type:varchar(255);not null" json:"nome"`
	Mesa      int      `gorm:"column:mesa;uniqueIndex;not null" json:"mesa"`
	Pedidos   []Pedido `gorm:"foreignKey:ClienteID;references:ClienteID" json:"-"`
}

func (Cliente) TableName() string {
	return "cliente"
}
