package models

const (
	StatusMesaLivre   = "livre"
	StatusMesaOcupada = "ocupada"
)

type Mesa struct {
	MesaID     uint   `gorm:"primaryKey;column:mesa_id" json:"mesa_id"`
	Numero     int    `gorm:"uniqueIndex;not null" json:"numero"`
	Capacidade int    `gorm:"not null" json:"capacidade"`
	Status     string `gorm:"type:varchar(50);not null;default:'livre'" json:"status"`
}

func (Mesa) TableName() string {
	return "mesa"
}
