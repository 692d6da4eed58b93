package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/comanda-digital/comanda-app/events"
	"github.com/comanda-digital/comanda-app/models"
	"github.com/comanda-digital/comanda-app/utils"
)

type PagamentoController struct {
	DB  *gorm.DB
	Hub *events.Hub
}

func NewPagamentoController(db *gorm.DB, hub *events.Hub) *PagamentoController {
	return &PagamentoController{DB: db, Hub: hub}
}

// CreatePagamento -> registra o pagamento de um pedido fechado e ainda não
// pago, marca o pedido como "Pago" e libera a mesa do cliente, tudo na mesma
// transação. O valor é registrado como informado, sem conferência contra o
// total do pedido. Em pagamentos em dinheiro, valor_pago opcional gera o
// troco calculado.
func (pc *PagamentoController) CreatePagamento(c *gin.Context) {
	type reqBody struct {
		PedidoID  *uint    `json:"pedido_id"`
		Metodo    string   `json:"metodo"`
		Valor     *float64 `json:"valor"`
		ValorPago *float64 `json:"valor_pago"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil || req.PedidoID == nil || req.Metodo == "" || req.Valor == nil {
		utils.RespondError(c, utils.NewValidationError("pedido_id, metodo e valor são obrigatórios"))
		return
	}

	var pagamento models.Pagamento
	var mesa *models.Mesa

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		var pedido models.Pedido
		if err := tx.Preload("Cliente").First(&pedido, *req.PedidoID).Error; err != nil {
			return utils.NewNotFoundError("Pedido não encontrado")
		}

		var existente models.Pagamento
		if err := tx.Where("pedido_id = ?", pedido.PedidoID).First(&existente).Error; err == nil {
			return utils.NewConflictError("Já existe pagamento para este pedido")
		}

		if !pedido.Fechado {
			return utils.NewConflictError("Pedido deve estar fechado para pagamento")
		}

		pagamento = models.Pagamento{
			PedidoID: pedido.PedidoID,
			Metodo:   req.Metodo,
			Valor:    *req.Valor,
			DataHora: time.Now().UTC(),
		}
		if req.ValorPago != nil {
			troco := *req.ValorPago - *req.Valor
			pagamento.ValorPago = req.ValorPago
			pagamento.Troco = &troco
		}
		if err := tx.Create(&pagamento).Error; err != nil {
			return err
		}

		pedido.Status = models.StatusPedidoPago
		if err := tx.Save(&pedido).Error; err != nil {
			return err
		}

		m, err := liberarMesa(tx, pedido.Cliente)
		if err != nil {
			return err
		}
		mesa = m
		return nil
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	pc.Hub.BroadcastPagamentoRecebido(pagamento)
	if mesa != nil {
		pc.Hub.BroadcastMesaStatus(mesa)
	}

	utils.InfoLogger.Printf("Pagamento %d registrado para pedido %d (%.2f via %s)",
		pagamento.PagamentoID, pagamento.PedidoID, pagamento.Valor, pagamento.Metodo)
	utils.RespondJSON(c, http.StatusCreated, gin.H{
		"message":   "Pagamento criado com sucesso",
		"pagamento": pagamento,
	})
}

// GetPagamentoByID -> detalhe de um pagamento.
func (pc *PagamentoController) GetPagamentoByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("pagamento_id"))

	var pagamento models.Pagamento
	if err := pc.DB.First(&pagamento, id).Error; err != nil {
		utils.RespondError(c, utils.NewNotFoundError("Pagamento não encontrado"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"pagamento": pagamento})
}

// GetPagamentoByPedido -> pagamento associado a um pedido.
func (pc *PagamentoController) GetPagamentoByPedido(c *gin.Context) {
	pedidoID, _ := strconv.Atoi(c.Param("pedido_id"))

	var pagamento models.Pagamento
	if err := pc.DB.Where("pedido_id = ?", pedidoID).First(&pagamento).Error; err != nil {
		utils.RespondError(c, utils.NewNotFoundError("Pagamento não encontrado"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"pagamento": pagamento})
}

// liberarMesa marca a mesa do cliente como livre, sem remover o cliente.
// Retorna a mesa alterada para o broadcast pós-commit, ou nil se o cliente
// não tem mesa cadastrada.
func liberarMesa(tx *gorm.DB, cliente *models.Cliente) (*models.Mesa, error) {
	if cliente == nil {
		return nil, nil
	}

	var mesa models.Mesa
	if err := tx.Where("numero = ?", cliente.Mesa).First(&mesa).Error; err != nil {
		return nil, nil
	}

	mesa.Status = models.StatusMesaLivre
	if err := tx.Save(&mesa).Error; err != nil {
		return nil, err
	}
	return &mesa, nil
}
