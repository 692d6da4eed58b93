package events

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/comanda-digital/comanda-app/utils"
)

// Nomes dos eventos enviados aos clientes conectados.
const (
	EventPedidoNovo        = "pedido_novo"
	EventPedidoAtualizado  = "pedido_atualizado"
	EventPagamentoRecebido = "pagamento_recebido"
	EventMesaStatus        = "mesa_status"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub mantém as conexões websocket interessadas nos eventos da comanda.
// É injetado nos controllers; os broadcasts são melhor-esforço e acontecem
// sempre depois do commit da transação, nunca dentro dela.
type Hub struct {
	clients map[*websocket.Conn]struct{}
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// RegisterClient adiciona uma conexão ao conjunto de ouvintes.
func (h *Hub) RegisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = struct{}{}
}

// ClientCount informa quantas conexões estão registradas.
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// UnregisterClient remove e fecha a conexão.
func (h *Hub) UnregisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// BroadcastPedidoNovo anuncia um pedido criado/estendido.
func (h *Hub) BroadcastPedidoNovo(pedido interface{}) {
	h.broadcast(Message{Event: EventPedidoNovo, Data: pedido})
}

// BroadcastPedidoAtualizado anuncia uma mudança de status de pedido.
func (h *Hub) BroadcastPedidoAtualizado(pedido interface{}) {
	h.broadcast(Message{Event: EventPedidoAtualizado, Data: pedido})
}

// BroadcastPagamentoRecebido anuncia um pagamento registrado.
func (h *Hub) BroadcastPagamentoRecebido(pagamento interface{}) {
	h.broadcast(Message{Event: EventPagamentoRecebido, Data: pagamento})
}

// BroadcastMesaStatus anuncia a mudança de ocupação de uma mesa.
func (h *Hub) BroadcastMesaStatus(mesa interface{}) {
	h.broadcast(Message{Event: EventMesaStatus, Data: mesa})
}

// broadcast envia a mensagem para todas as conexões registradas. Falhas de
// escrita são registradas e descartadas; nunca propagam para o chamador.
func (h *Hub) broadcast(msg Message) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		if utils.ErrorLogger != nil {
			utils.ErrorLogger.Printf("Error marshaling event %s: %v", msg.Event, err)
		}
		return
	}

	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			if utils.ErrorLogger != nil {
				utils.ErrorLogger.Printf("Error sending event %s to client: %v", msg.Event, err)
			}
			continue
		}
	}
}
