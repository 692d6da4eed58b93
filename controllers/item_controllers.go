package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/comanda-digital/comanda-app/models"
	"github.com/comanda-digital/comanda-app/utils"
)

type ItemController struct {
	DB *gorm.DB
}

func NewItemController(db *gorm.DB) *ItemController {
	return &ItemController{DB: db}
}

// GetAllItens -> lista todos os itens do menu.
func (ic *ItemController) GetAllItens(c *gin.Context) {
	var itens []models.Item
	if err := ic.DB.Find(&itens).Error; err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"itens": itens})
}

// CreateItem -> cadastra um item no menu.
func (ic *ItemController) CreateItem(c *gin.Context) {
	type reqBody struct {
		Nome      string   `json:"nome"`
		Descricao string   `json:"descricao"`
		Preco     *float64 `json:"preco"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil || req.Nome == "" || req.Preco == nil {
		utils.RespondError(c, utils.NewValidationError("Nome e preço são obrigatórios"))
		return
	}
	if *req.Preco < 0 {
		utils.RespondError(c, utils.NewValidationError("Preço não pode ser negativo"))
		return
	}

	item := models.Item{
		Nome:      req.Nome,
		Descricao: req.Descricao,
		Preco:     *req.Preco,
	}
	if err := ic.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, gin.H{
		"message": "Item criado com sucesso",
		"item":    item,
	})
}

// GetItemByID -> detalhe de um item do menu.
func (ic *ItemController) GetItemByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	var item models.Item
	if err := ic.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, utils.NewNotFoundError("Item não encontrado"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"item": item})
}

// UpdateItem -> edita um item do menu.
func (ic *ItemController) UpdateItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	var item models.Item
	if err := ic.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, utils.NewNotFoundError("Item não encontrado"))
		return
	}

	type reqBody struct {
		Nome      *string  `json:"nome"`
		Descricao *string  `json:"descricao"`
		Preco     *float64 `json:"preco"`
	}
	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Corpo da requisição inválido"))
		return
	}

	if req.Nome != nil {
		item.Nome = *req.Nome
	}
	if req.Descricao != nil {
		item.Descricao = *req.Descricao
	}
	if req.Preco != nil {
		if *req.Preco < 0 {
			utils.RespondError(c, utils.NewValidationError("Preço não pode ser negativo"))
			return
		}
		item.Preco = *req.Preco
	}

	if err := ic.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"item": item})
}

// DeleteItem -> remove um item do menu.
func (ic *ItemController) DeleteItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	var item models.Item
	if err := ic.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, utils.NewNotFoundError("Item não encontrado"))
		return
	}

	if err := ic.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"message": "Item removido com sucesso"})
}
