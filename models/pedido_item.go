package models

// PedidoItem associa um item do menu a um pedido com quantidade. A chave
// composta garante uma única linha por par (pedido, item); repetir o item em
// um novo envio incrementa Quantidade em vez de duplicar a linha.
type PedidoItem struct {
	PedidoID   uint  `gorm:"primaryKey;column:pedido_id;autoIncrement:false" json:"pedido_id"`
	ItemID     uint  `gorm:"primaryKey;column:item_id;autoIncrement:false" json:"item_id"`
	Quantidade int   `gorm:"not null" json:"quantidade"`
	Item       *Item `gorm:"foreignKey:ItemID;references:ItemID" json:"item,omitempty"`
}

func (PedidoItem) TableName() string {
	return "pedido_item"
}
