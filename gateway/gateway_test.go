package gateway

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/comanda-digital/comanda-app/models"
)

func setupGatewayDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:gateway?mode=memory&cache=shared"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Estabelecimento{}))
	return db
}

func TestParaEstabelecimentoMercadoPago(t *testing.T) {
	db := setupGatewayDB(t)

	est := models.Estabelecimento{
		Nome:          "Bar do Zé",
		Gateway:       "mercadopago",
		MPAccessToken: "APP_USR-token",
		MPPublicKey:   "APP_USR-key",
	}
	db.Create(&est)

	gw, err := ParaEstabelecimento(db, est.ID)
	assert.NoError(t, err)
	assert.IsType(t, &MercadoPago{}, gw)

	cobranca, err := gw.CriarPagamento("pedido-1", 38.30, "BRL")
	assert.NoError(t, err)
	assert.Equal(t, "pedido-1", cobranca.Referencia)
}

func TestParaEstabelecimentoGatewayDesconhecido(t *testing.T) {
	db := setupGatewayDB(t)

	est := models.Estabelecimento{Nome: "Sem Gateway", Gateway: "paypal"}
	db.Create(&est)

	_, err := ParaEstabelecimento(db, est.ID)
	var desconhecido *ErrGatewayDesconhecido
	assert.True(t, errors.As(err, &desconhecido))
	assert.Equal(t, "paypal", desconhecido.Nome)
}

func TestParaEstabelecimentoSemCredenciais(t *testing.T) {
	db := setupGatewayDB(t)

	est := models.Estabelecimento{Nome: "Sem Token", Gateway: "mercadopago"}
	db.Create(&est)

	_, err := ParaEstabelecimento(db, est.ID)
	assert.Error(t, err)
}

func TestParaEstabelecimentoInexistente(t *testing.T) {
	db := setupGatewayDB(t)

	_, err := ParaEstabelecimento(db, 9999)
	assert.Error(t, err)
}

func TestNovoMidtransExigeServerKey(t *testing.T) {
	_, err := novoMidtrans(models.Estabelecimento{Nome: "Sem Key", Gateway: "midtrans"})
	assert.Error(t, err)

	gw, err := novoMidtrans(models.Estabelecimento{
		Nome:              "Com Key",
		Gateway:           "midtrans",
		MidtransServerKey: "SB-Mid-server-xxxx",
	})
	assert.NoError(t, err)
	assert.IsType(t, &Midtrans{}, gw)
}
