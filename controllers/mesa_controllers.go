package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/comanda-digital/comanda-app/models"
	"github.com/comanda-digital/comanda-app/utils"
)

type MesaController struct {
	DB *gorm.DB
}

func NewMesaController(db *gorm.DB) *MesaController {
	return &MesaController{DB: db}
}

// GetAllMesas -> lista todas as mesas cadastradas.
func (mc *MesaController) GetAllMesas(c *gin.Context) {
	var mesas []models.Mesa
	if err := mc.DB.Find(&mesas).Error; err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, mesas)
}

// GetMesasDisponiveis -> mesas livres e sem cliente ativo.
func (mc *MesaController) GetMesasDisponiveis(c *gin.Context) {
	var mesas []models.Mesa
	err := mc.DB.
		Where("status = ?", models.StatusMesaLivre).
		Where("numero NOT IN (?)", mc.DB.Model(&models.Cliente{}).Select("mesa")).
		Find(&mesas).Error
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var total int64
	if err := mc.DB.Model(&models.Mesa{}).Count(&total).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"mesas_disponiveis": mesas,
		"total_mesas":       total,
	})
}

// GetMesaByID -> detalhe de uma mesa.
func (mc *MesaController) GetMesaByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("mesa_id"))

	var mesa models.Mesa
	if err := mc.DB.First(&mesa, id).Error; err != nil {
		utils.RespondError(c, utils.NewNotFoundError("Mesa não encontrada"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, mesa)
}

// CreateMesa -> cadastra uma nova mesa.
func (mc *MesaController) CreateMesa(c *gin.Context) {
	type reqBody struct {
		Numero     *int `json:"numero"`
		Capacidade *int `json:"capacidade"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil || req.Numero == nil || req.Capacidade == nil {
		utils.RespondError(c, utils.NewValidationError("Número e capacidade são obrigatórios"))
		return
	}

	var existente models.Mesa
	if err := mc.DB.Where("numero = ?", *req.Numero).First(&existente).Error; err == nil {
		utils.RespondError(c, utils.NewConflictError("Já existe uma mesa com esse número"))
		return
	}

	mesa := models.Mesa{
		Numero:     *req.Numero,
		Capacidade: *req.Capacidade,
		Status:     models.StatusMesaLivre,
	}
	if err := mc.DB.Create(&mesa).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Mesa %d criada (capacidade %d)", mesa.Numero, mesa.Capacidade)
	utils.RespondJSON(c, http.StatusCreated, mesa)
}

// UpdateMesa -> edita número e/ou capacidade de uma mesa.
func (mc *MesaController) UpdateMesa(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("mesa_id"))

	var mesa models.Mesa
	if err := mc.DB.First(&mesa, id).Error; err != nil {
		utils.RespondError(c, utils.NewNotFoundError("Mesa não encontrada"))
		return
	}

	type reqBody struct {
		Numero     *int `json:"numero"`
		Capacidade *int `json:"capacidade"`
	}
	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Corpo da requisição inválido"))
		return
	}

	if req.Numero != nil {
		var outra models.Mesa
		if err := mc.DB.Where("numero = ? AND mesa_id <> ?", *req.Numero, mesa.MesaID).First(&outra).Error; err == nil {
			utils.RespondError(c, utils.NewConflictError("Já existe uma mesa com esse número"))
			return
		}
		mesa.Numero = *req.Numero
	}
	if req.Capacidade != nil {
		mesa.Capacidade = *req.Capacidade
	}

	if err := mc.DB.Save(&mesa).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, mesa)
}

// DeleteMesa -> remove uma mesa.
func (mc *MesaController) DeleteMesa(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("mesa_id"))

	var mesa models.Mesa
	if err := mc.DB.First(&mesa, id).Error; err != nil {
		utils.RespondError(c, utils.NewNotFoundError("Mesa não encontrada"))
		return
	}

	if err := mc.DB.Delete(&mesa).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"message": "Mesa deletada com sucesso"})
}
