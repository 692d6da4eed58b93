package models

// Estabelecimento guarda a configuração de gateway de pagamento de um local
// que usa o sistema de comandas. As credenciais nunca são serializadas.
type Estabelecimento struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	Nome              string `gorm:"type:varchar(255)" json:"nome"`
	Gateway           string `gorm:"type:varchar(50)" json:"gateway"`
	MPAccessToken     string `gorm:"type:varchar(255)" json:"-"`
	MPPublicKey       string `gorm:"type:varchar(255)" json:"-"`
	MidtransServerKey string `gorm:"type:varchar(255)" json:"-"`
	MidtransProducao  bool   `json:"-"`
}

func (Estabelecimento) TableName() string {
	return "establishments"
}
