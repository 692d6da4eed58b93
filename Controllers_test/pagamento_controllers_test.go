package Controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/comanda-digital/comanda-app/controllers"
	"github.com/comanda-digital/comanda-app/events"
	"github.com/comanda-digital/comanda-app/models"
	"github.com/comanda-digital/comanda-app/utils"
)

func setupTestDBForPagamentos() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:pagamentos?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(&models.Mesa{}, &models.Cliente{}, &models.Pedido{}, &models.PedidoItem{}, &models.Item{}, &models.Pagamento{})
	if err != nil {
		panic(err)
	}
	return db
}

func setupPagamentoRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	pagamentoCtrl := controllers.NewPagamentoController(db, events.NewHub())
	router.POST("/pagamentos", pagamentoCtrl.CreatePagamento)
	router.GET("/pagamentos/:pagamento_id", pagamentoCtrl.GetPagamentoByID)
	router.GET("/pagamentos/pedido/:pedido_id", pagamentoCtrl.GetPagamentoByPedido)
	return router
}

func seedPedidoFechado(db *gorm.DB, numeroMesa int) models.Pedido {
	db.Create(&models.Mesa{Numero: numeroMesa, Capacidade: 4, Status: models.StatusMesaOcupada})
	cliente := models.Cliente{Nome: "Pagante", Mesa: numeroMesa}
	db.Create(&cliente)
	pedido := models.Pedido{
		ClienteID: cliente.ClienteID,
		Status:    models.StatusPedidoAguardandoPagamento,
		Total:     38.30,
		Fechado:   true,
	}
	db.Create(&pedido)
	return pedido
}

func TestCreatePagamento(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPagamentos()
	router := setupPagamentoRouter(db)

	pedido := seedPedidoFechado(db, 20)

	w := postJSON(t, router, "/pagamentos", map[string]interface{}{
		"pedido_id": pedido.PedidoID,
		"metodo":    "Dinheiro",
		"valor":     38.30,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Pagamento criado com sucesso", resp["message"])
	pagamento := resp["pagamento"].(map[string]interface{})
	assert.InDelta(t, 38.30, pagamento["valor"].(float64), 0.001)

	// Pedido vai para "Pago" e a mesa do cliente é liberada
	var recarregado models.Pedido
	db.First(&recarregado, pedido.PedidoID)
	assert.Equal(t, models.StatusPedidoPago, recarregado.Status)

	var mesa models.Mesa
	db.Where("numero = ?", 20).First(&mesa)
	assert.Equal(t, models.StatusMesaLivre, mesa.Status)
}

func TestCreatePagamentoEmDinheiroComTroco(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPagamentos()
	router := setupPagamentoRouter(db)

	pedido := seedPedidoFechado(db, 21)

	w := postJSON(t, router, "/pagamentos", map[string]interface{}{
		"pedido_id":  pedido.PedidoID,
		"metodo":     "Dinheiro",
		"valor":      38.30,
		"valor_pago": 50.00,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	pagamento := resp["pagamento"].(map[string]interface{})
	assert.InDelta(t, 50.00, pagamento["valor_pago"].(float64), 0.001)
	assert.InDelta(t, 11.70, pagamento["troco"].(float64), 0.001)
}

func TestCreatePagamentoPedidoAberto(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPagamentos()
	router := setupPagamentoRouter(db)

	cliente := models.Cliente{Nome: "Apressado", Mesa: 22}
	db.Create(&cliente)
	pedido := models.Pedido{ClienteID: cliente.ClienteID, Status: models.StatusPedidoCozinha, Fechado: false}
	db.Create(&pedido)

	w := postJSON(t, router, "/pagamentos", map[string]interface{}{
		"pedido_id": pedido.PedidoID,
		"metodo":    "Cartão",
		"valor":     10.00,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Pedido deve estar fechado para pagamento", resp["error"])
}

func TestCreatePagamentoDuplicado(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPagamentos()
	router := setupPagamentoRouter(db)

	pedido := seedPedidoFechado(db, 23)

	payload := map[string]interface{}{
		"pedido_id": pedido.PedidoID,
		"metodo":    "Pix",
		"valor":     38.30,
	}
	w := postJSON(t, router, "/pagamentos", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/pagamentos", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Já existe pagamento para este pedido", resp["error"])

	var count int64
	db.Model(&models.Pagamento{}).Where("pedido_id = ?", pedido.PedidoID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreatePagamentoCamposObrigatorios(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPagamentos()
	router := setupPagamentoRouter(db)

	w := postJSON(t, router, "/pagamentos", map[string]interface{}{"metodo": "Pix"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pedido_id, metodo e valor são obrigatórios", resp["error"])
}

func TestCreatePagamentoPedidoInexistente(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPagamentos()
	router := setupPagamentoRouter(db)

	w := postJSON(t, router, "/pagamentos", map[string]interface{}{
		"pedido_id": 9999,
		"metodo":    "Pix",
		"valor":     10.00,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPagamentoByPedido(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPagamentos()
	router := setupPagamentoRouter(db)

	pedido := seedPedidoFechado(db, 24)
	w := postJSON(t, router, "/pagamentos", map[string]interface{}{
		"pedido_id": pedido.PedidoID,
		"metodo":    "Cartão",
		"valor":     38.30,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	url := fmt.Sprintf("/pagamentos/pedido/%d", pedido.PedidoID)
	req, _ := http.NewRequest("GET", url, nil)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w2.Body.Bytes(), &resp))
	pagamento := resp["pagamento"].(map[string]interface{})
	assert.Equal(t, float64(pedido.PedidoID), pagamento["pedido_id"])
	assert.Equal(t, "Cartão", pagamento["metodo"])
}
