package models

type Item struct {
	ItemID    uint    `gorm:"primaryKey;column:item_id" json:"item_id"`
	Nome      string  `gorm:"type:varchar(255);not null" json:"nome"`
	Descricao string  `gorm:"type:text" json:"descricao"`
	Preco     float64 `gorm:"type:decimal(10,2);not null" json:"preco"`
}

func (Item) TableName() string {
	return "item"
}
