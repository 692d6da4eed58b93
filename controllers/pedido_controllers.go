package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/comanda-digital/comanda-app/events"
	"github.com/comanda-digital/comanda-app/models"
	"github.com/comanda-digital/comanda-app/utils"
)

type PedidoController struct {
	DB  *gorm.DB
	Hub *events.Hub
}

func NewPedidoController(db *gorm.DB, hub *events.Hub) *PedidoController {
	return &PedidoController{DB: db, Hub: hub}
}

// CreatePedido -> adiciona itens à comanda do cliente. Se o cliente já tem um
// pedido aberto ele é reaproveitado (no máximo um pedido aberto por cliente);
// caso contrário um novo é criado. Repetir um item incrementa a quantidade da
// linha existente e o total cresce de forma incremental, sem recalcular todas
// as linhas. A operação não é idempotente: reenviar o mesmo corpo dobra
// quantidades e total. A quantidade não é validada; um valor negativo
// decrementa a linha e o total, servindo de ajuste manual.
func (pc *PedidoController) CreatePedido(c *gin.Context) {
	type itemReq struct {
		ItemID     uint `json:"item_id"`
		Quantidade int  `json:"quantidade"`
	}
	type reqBody struct {
		ClienteID *uint     `json:"cliente_id"`
		Itens     []itemReq `json:"itens"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil || req.ClienteID == nil || req.Itens == nil {
		utils.RespondError(c, utils.NewValidationError("cliente_id e itens são obrigatórios"))
		return
	}

	var pedido models.Pedido

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		var cliente models.Cliente
		if err := tx.First(&cliente, *req.ClienteID).Error; err != nil {
			return utils.NewNotFoundError("Cliente não encontrado")
		}

		// Reaproveita o pedido aberto do cliente, se existir.
		err := tx.Where("cliente_id = ? AND fechado = ?", cliente.ClienteID, false).First(&pedido).Error
		switch {
		case err == nil:
			pedido.Status = models.StatusPedidoCozinha
			if err := tx.Save(&pedido).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			pedido = models.Pedido{
				ClienteID: cliente.ClienteID,
				Status:    models.StatusPedidoCozinha,
				DataHora:  time.Now().UTC(),
				Total:     0,
				Fechado:   false,
			}
			if err := tx.Create(&pedido).Error; err != nil {
				return err
			}
		default:
			// Falha de consulta não significa pedido inexistente; criar aqui
			// poderia deixar o cliente com dois pedidos abertos.
			return err
		}

		var totalAdicionado float64
		for _, linha := range req.Itens {
			var item models.Item
			if err := tx.First(&item, linha.ItemID).Error; err != nil {
				return utils.NewNotFoundError(fmt.Sprintf("Item %d não encontrado", linha.ItemID))
			}

			var pedidoItem models.PedidoItem
			err := tx.Where("pedido_id = ? AND item_id = ?", pedido.PedidoID, item.ItemID).First(&pedidoItem).Error
			if err == nil {
				pedidoItem.Quantidade += linha.Quantidade
				if err := tx.Save(&pedidoItem).Error; err != nil {
					return err
				}
			} else {
				pedidoItem = models.PedidoItem{
					PedidoID:   pedido.PedidoID,
					ItemID:     item.ItemID,
					Quantidade: linha.Quantidade,
				}
				if err := tx.Create(&pedidoItem).Error; err != nil {
					return err
				}
			}
			totalAdicionado += item.Preco * float64(linha.Quantidade)
		}

		pedido.Total += totalAdicionado
		if err := tx.Save(&pedido).Error; err != nil {
			return err
		}

		// Recarrega com itens e cliente aninhados para resposta e broadcast.
		return tx.Preload("Itens.Item").Preload("Cliente").First(&pedido, pedido.PedidoID).Error
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	pc.Hub.BroadcastPedidoNovo(pedido)

	utils.InfoLogger.Printf("Pedido %d atualizado para cliente %d (total %.2f)", pedido.PedidoID, pedido.ClienteID, pedido.Total)
	utils.RespondJSON(c, http.StatusCreated, gin.H{
		"message": "Itens adicionados ao pedido com sucesso",
		"pedido":  pedido,
	})
}

// GetAllPedidos -> lista todos os pedidos com itens e cliente.
func (pc *PedidoController) GetAllPedidos(c *gin.Context) {
	var pedidos []models.Pedido
	if err := pc.DB.Preload("Itens.Item").Preload("Cliente").Find(&pedidos).Error; err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"pedidos": pedidos})
}

// GetPedidoByID -> detalhe de um pedido.
func (pc *PedidoController) GetPedidoByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("pedido_id"))

	var pedido models.Pedido
	if err := pc.DB.Preload("Itens.Item").Preload("Cliente").First(&pedido, id).Error; err != nil {
		utils.RespondError(c, utils.NewNotFoundError("Pedido não encontrado"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"pedido": pedido})
}

// UpdateStatusPedido -> atualiza o status do pedido. Quando o novo status é
// "Pago" (sem diferenciar maiúsculas) a mesa do cliente é liberada na mesma
// transação. O broadcast carrega o retrato do pedido tirado logo após a
// escrita do status, antes do efeito colateral na mesa.
func (pc *PedidoController) UpdateStatusPedido(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("pedido_id"))

	type reqBody struct {
		Status string `json:"status"`
	}
	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		utils.RespondError(c, utils.NewValidationError("Status é obrigatório"))
		return
	}

	var snapshot models.Pedido
	var mesa *models.Mesa

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		var pedido models.Pedido
		if err := tx.Preload("Itens.Item").Preload("Cliente").First(&pedido, id).Error; err != nil {
			return utils.NewNotFoundError("Pedido não encontrado")
		}

		// A casing enviada pelo chamador é armazenada como veio.
		pedido.Status = req.Status
		if err := tx.Save(&pedido).Error; err != nil {
			return err
		}
		snapshot = pedido

		if models.StatusEhPago(req.Status) {
			m, err := liberarMesa(tx, pedido.Cliente)
			if err != nil {
				return err
			}
			mesa = m
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	pc.Hub.BroadcastPedidoAtualizado(snapshot)
	if mesa != nil {
		pc.Hub.BroadcastMesaStatus(mesa)
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"message": "Status atualizado com sucesso",
		"pedido":  snapshot,
	})
}

// GetPedidosByCliente -> todos os pedidos de um cliente.
func (pc *PedidoController) GetPedidosByCliente(c *gin.Context) {
	clienteID, _ := strconv.Atoi(c.Param("cliente_id"))

	var pedidos []models.Pedido
	if err := pc.DB.Preload("Itens.Item").Where("cliente_id = ?", clienteID).Find(&pedidos).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"pedidos": pedidos})
}

// GetPedidoAtivo -> pedido aberto (fechado = false) de um cliente.
func (pc *PedidoController) GetPedidoAtivo(c *gin.Context) {
	clienteID, _ := strconv.Atoi(c.Param("cliente_id"))

	var pedido models.Pedido
	err := pc.DB.Preload("Itens.Item").
		Where("cliente_id = ? AND fechado = ?", clienteID, false).
		First(&pedido).Error
	if err != nil {
		utils.RespondError(c, utils.NewNotFoundError("Nenhum pedido ativo encontrado"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"pedido": pedido})
}

// FecharPedido -> fecha o pedido para pagamento. A partir daqui ele não
// aceita mais itens.
func (pc *PedidoController) FecharPedido(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("pedido_id"))

	var pedido models.Pedido
	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Itens.Item").First(&pedido, id).Error; err != nil {
			return utils.NewNotFoundError("Pedido não encontrado")
		}
		if pedido.Fechado {
			return utils.NewConflictError("Pedido já está fechado")
		}

		pedido.Fechado = true
		pedido.Status = models.StatusPedidoAguardandoPagamento
		return tx.Save(&pedido).Error
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"message": "Pedido fechado com sucesso",
		"pedido":  pedido,
	})
}
