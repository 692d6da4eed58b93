package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/comanda-digital/comanda-app/events"
	"github.com/comanda-digital/comanda-app/models"
	"github.com/comanda-digital/comanda-app/utils"
)

type ClienteController struct {
	DB  *gorm.DB
	Hub *events.Hub
}

func NewClienteController(db *gorm.DB, hub *events.Hub) *ClienteController {
	return &ClienteController{DB: db, Hub: hub}
}

// CreateCliente -> registra um cliente em uma mesa e marca a mesa como
// ocupada. Pedidos abertos deixados por um ocupante anterior da mesa são
// fechados à força antes da checagem de ocupação, recuperando mesas cuja
// comanda nunca foi encerrada explicitamente.
func (cc *ClienteController) CreateCliente(c *gin.Context) {
	type reqBody struct {
		Nome string `json:"nome"`
		Mesa *int   `json:"mesa"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil || req.Nome == "" || req.Mesa == nil {
		utils.RespondError(c, utils.NewValidationError("Nome e mesa são obrigatórios"))
		return
	}

	var cliente models.Cliente
	var mesa *models.Mesa

	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := fecharPedidosAbertosDaMesa(tx, *req.Mesa); err != nil {
			return err
		}

		var existente models.Cliente
		if err := tx.Where("mesa = ?", *req.Mesa).First(&existente).Error; err == nil {
			return utils.NewConflictError("Já existe um cliente nesta mesa")
		}

		cliente = models.Cliente{Nome: req.Nome, Mesa: *req.Mesa}
		if err := tx.Create(&cliente).Error; err != nil {
			return err
		}

		var m models.Mesa
		if err := tx.Where("numero = ?", *req.Mesa).First(&m).Error; err == nil {
			m.Status = models.StatusMesaOcupada
			if err := tx.Save(&m).Error; err != nil {
				return err
			}
			mesa = &m
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if mesa != nil {
		cc.Hub.BroadcastMesaStatus(mesa)
	}

	utils.InfoLogger.Printf("Cliente %d criado na mesa %d", cliente.ClienteID, cliente.Mesa)
	utils.RespondJSON(c, http.StatusCreated, gin.H{
		"message": "Cliente criado com sucesso",
		"cliente": cliente,
	})
}

// GetClienteByMesa -> cliente atualmente sentado na mesa informada.
func (cc *ClienteController) GetClienteByMesa(c *gin.Context) {
	numero, err := strconv.Atoi(c.Param("mesa"))
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("Número de mesa inválido"))
		return
	}

	var cliente models.Cliente
	if err := cc.DB.Where("mesa = ?", numero).First(&cliente).Error; err != nil {
		utils.RespondError(c, utils.NewNotFoundError("Cliente não encontrado"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"cliente": cliente})
}

// DeleteCliente -> remove um cliente, somente se não houver nenhum pedido
// associado (aberto, fechado ou pago). Bloqueio estrito, sem opção de força.
func (cc *ClienteController) DeleteCliente(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("cliente_id"))
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("ID de cliente inválido"))
		return
	}

	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		var cliente models.Cliente
		if err := tx.First(&cliente, id).Error; err != nil {
			return utils.NewNotFoundError("Cliente não encontrado")
		}

		var pedidos int64
		if err := tx.Model(&models.Pedido{}).Where("cliente_id = ?", cliente.ClienteID).Count(&pedidos).Error; err != nil {
			return err
		}
		if pedidos > 0 {
			return utils.NewConflictError("Não é possível remover cliente com pedidos associados")
		}

		return tx.Delete(&cliente).Error
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"message": "Cliente removido com sucesso"})
}

// fecharPedidosAbertosDaMesa força o fechamento de pedidos abertos de
// clientes sentados na mesa. Ao contrário do fechamento normal, o status vai
// direto para "Fechado" e não para "Aguardando Pagamento".
func fecharPedidosAbertosDaMesa(tx *gorm.DB, numero int) error {
	sub := tx.Model(&models.Cliente{}).Select("cliente_id").Where("mesa = ?", numero)
	return tx.Model(&models.Pedido{}).
		Where("fechado = ? AND cliente_id IN (?)", false, sub).
		Updates(map[string]interface{}{
			"fechado": true,
			"status":  models.StatusPedidoFechado,
		}).Error
}
