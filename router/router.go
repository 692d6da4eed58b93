package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/comanda-digital/comanda-app/controllers"
	"github.com/comanda-digital/comanda-app/events"
	"github.com/comanda-digital/comanda-app/middlewares"
)

func SetupRouter(db *gorm.DB, hub *events.Hub) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	clienteCtrl := controllers.NewClienteController(db, hub)
	pedidoCtrl := controllers.NewPedidoController(db, hub)
	pagamentoCtrl := controllers.NewPagamentoController(db, hub)
	mesaCtrl := controllers.NewMesaController(db)
	itemCtrl := controllers.NewItemController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Eventos em tempo real
	r.GET("/eventos/ws", controllers.EventosHandler(hub))

	// Clientes
	r.POST("/cliente", clienteCtrl.CreateCliente)
	r.GET("/cliente/:mesa", clienteCtrl.GetClienteByMesa)
	r.DELETE("/cliente/:cliente_id", clienteCtrl.DeleteCliente)

	// Mesas
	r.GET("/mesas", mesaCtrl.GetAllMesas)
	r.GET("/mesas/disponiveis", mesaCtrl.GetMesasDisponiveis)
	r.POST("/mesas", mesaCtrl.CreateMesa)
	r.GET("/mesas/:mesa_id", mesaCtrl.GetMesaByID)
	r.PUT("/mesas/:mesa_id", mesaCtrl.UpdateMesa)
	r.DELETE("/mesas/:mesa_id", mesaCtrl.DeleteMesa)

	// Menu
	r.GET("/itens", itemCtrl.GetAllItens)
	r.POST("/itens", itemCtrl.CreateItem)
	r.GET("/itens/:item_id", itemCtrl.GetItemByID)
	r.PUT("/itens/:item_id", itemCtrl.UpdateItem)
	r.DELETE("/itens/:item_id", itemCtrl.DeleteItem)

	// Pedidos
	r.POST("/pedidos", pedidoCtrl.CreatePedido)
	r.GET("/pedidos", pedidoCtrl.GetAllPedidos)
	r.GET("/pedidos/:pedido_id", pedidoCtrl.GetPedidoByID)
	r.PUT("/pedidos/:pedido_id/status", pedidoCtrl.UpdateStatusPedido)
	r.POST("/pedidos/:pedido_id/fechar", pedidoCtrl.FecharPedido)
	r.GET("/pedidos/cliente/:cliente_id", pedidoCtrl.GetPedidosByCliente)
	r.GET("/pedidos/cliente/:cliente_id/ativo", pedidoCtrl.GetPedidoAtivo)

	// Pagamentos
	r.POST("/pagamentos", middlewares.NewStrictRateLimiter(), pagamentoCtrl.CreatePagamento)
	r.GET("/pagamentos/:pagamento_id", pagamentoCtrl.GetPagamentoByID)
	r.GET("/pagamentos/pedido/:pedido_id", pagamentoCtrl.GetPagamentoByPedido)

	return r
}
