package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/comanda-digital/comanda-app/controllers"
	"github.com/comanda-digital/comanda-app/models"
	"github.com/comanda-digital/comanda-app/utils"
)

func setupTestDBForMesas(t *testing.T) *gorm.DB {
	// DSN por teste: com cache=shared, um nome fixo vazaria as mesas
	// criadas por um teste para os outros do pacote.
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(&models.Mesa{}, &models.Cliente{})
	if err != nil {
		panic(err)
	}
	return db
}

func setupMesaRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mesaCtrl := controllers.NewMesaController(db)
	router.GET("/mesas", mesaCtrl.GetAllMesas)
	router.GET("/mesas/disponiveis", mesaCtrl.GetMesasDisponiveis)
	router.POST("/mesas", mesaCtrl.CreateMesa)
	return router
}

func TestCreateMesa(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForMesas(t)
	router := setupMesaRouter(db)

	w := postJSON(t, router, "/mesas", map[string]interface{}{"numero": 1, "capacidade": 4})
	assert.Equal(t, http.StatusCreated, w.Code)

	var mesa map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &mesa))
	assert.Equal(t, float64(1), mesa["numero"])
	assert.Equal(t, models.StatusMesaLivre, mesa["status"])

	// Número duplicado
	w = postJSON(t, router, "/mesas", map[string]interface{}{"numero": 1, "capacidade": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Já existe uma mesa com esse número", resp["error"])
}

func TestGetMesasDisponiveis(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForMesas(t)
	router := setupMesaRouter(db)

	db.Create(&models.Mesa{Numero: 30, Capacidade: 4, Status: models.StatusMesaLivre})
	db.Create(&models.Mesa{Numero: 31, Capacidade: 4, Status: models.StatusMesaOcupada})
	// Livre no cadastro, mas com cliente ativo: não deve aparecer
	db.Create(&models.Mesa{Numero: 32, Capacidade: 2, Status: models.StatusMesaLivre})
	db.Create(&models.Cliente{Nome: "Ocupante", Mesa: 32})

	req, _ := http.NewRequest("GET", "/mesas/disponiveis", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	disponiveis := resp["mesas_disponiveis"].([]interface{})
	assert.Len(t, disponiveis, 1)
	assert.Equal(t, float64(30), disponiveis[0].(map[string]interface{})["numero"])
	assert.Equal(t, float64(3), resp["total_mesas"])
}
