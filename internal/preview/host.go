// Package preview реализует мост сообщений предпросмотра.
//
// Собранный документ живет в изолированной поверхности рендеринга и
// сообщает о действиях пользователя структурированными сообщениями.
// Host принимает эти сообщения, ведет машину состояний предпросмотра и
// передает размещенные заказы обратно в состояние проекта.
package preview

import (
	"encoding/json"
	"sync"
	"time"

	"nexusforge/internal/model"
	"nexusforge/internal/sitegen"

	"go.uber.org/zap"
)

// Action представляет тип входящего сообщения
type Action string

const (
	ActionNavigate     Action = "navigate"
	ActionViewProduct  Action = "viewProduct"
	ActionViewCheckout Action = "viewCheckout"
	ActionPlaceOrder   Action = "placeOrder"
)

// Message представляет входящее сообщение от документа предпросмотра
type Message struct {
	Action  Action          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// OrderPlacer принимает размещенный заказ в коллекцию проекта
type OrderPlacer interface {
	PlaceOrder(projectID string, order model.Order) error
}

// Host представляет хост предпросмотра одного проекта
type Host struct {
	mu            sync.Mutex
	logger        *zap.Logger
	trustedOrigin string
	projectID     string
	state         sitegen.PreviewState
	orders        OrderPlacer
}

// NewHost создает хост предпросмотра. Начальное состояние — домашняя
// страница.
func NewHost(projectID, trustedOrigin string, orders OrderPlacer, logger *zap.Logger) *Host {
	return &Host{
		logger:        logger,
		trustedOrigin: trustedOrigin,
		projectID:     projectID,
		state:         sitegen.PageState("home"),
		orders:        orders,
	}
}

// State возвращает текущее состояние предпросмотра
func (h *Host) State() sitegen.PreviewState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Handle обрабатывает одно входящее сообщение. Сообщения с чужим
// origin и неразбираемые сообщения отбрасываются молча: документ
// предпросмотра — недоверенная сторона.
func (h *Host) Handle(origin string, data []byte) {
	if origin != h.trustedOrigin {
		h.logger.Debug("Dropped preview message from untrusted origin",
			zap.String("origin", origin))
		return
	}

	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		h.logger.Debug("Dropped malformed preview message", zap.Error(err))
		return
	}

	switch msg.Action {
	case ActionNavigate:
		h.handleNavigate(msg.Payload)
	case ActionViewProduct:
		h.handleViewProduct(msg.Payload)
	case ActionViewCheckout:
		h.handleViewCheckout(msg.Payload)
	case ActionPlaceOrder:
		h.handlePlaceOrder(msg.Payload)
	default:
		h.logger.Debug("Dropped preview message with unknown action",
			zap.String("action", string(msg.Action)))
	}
}

type idPayload struct {
	ID string `json:"id"`
}

func (h *Host) handleNavigate(payload json.RawMessage) {
	var p idPayload
	if err := json.Unmarshal(payload, &p); err != nil || p.ID == "" {
		h.logger.Debug("Dropped navigate message with bad payload")
		return
	}

	h.mu.Lock()
	h.state = sitegen.PageState(p.ID)
	h.mu.Unlock()
}

func (h *Host) handleViewProduct(payload json.RawMessage) {
	var p idPayload
	if err := json.Unmarshal(payload, &p); err != nil || p.ID == "" {
		h.logger.Debug("Dropped viewProduct message with bad payload")
		return
	}

	h.mu.Lock()
	h.state = sitegen.ProductState(p.ID)
	h.mu.Unlock()
}

func (h *Host) handleViewCheckout(payload json.RawMessage) {
	var p struct {
		Cart []model.WebsiteProduct `json:"cart"`
	}
	if err := json.Unmarshal(payload, &p); err != nil || len(p.Cart) == 0 {
		h.logger.Debug("Dropped viewCheckout message with bad payload")
		return
	}

	h.mu.Lock()
	h.state = sitegen.CheckoutState(p.Cart)
	h.mu.Unlock()
}

// handlePlaceOrder создает неизменяемый заказ из полезной нагрузки и
// передает его в коллекцию проекта. Заказ хранит копии купленных
// товаров: каталог может поменять цены позже.
func (h *Host) handlePlaceOrder(payload json.RawMessage) {
	var p struct {
		CustomerEmail   string                 `json:"customerEmail"`
		Items           []model.WebsiteProduct `json:"items"`
		Total           float64                `json:"total"`
		ShippingAddress *model.ShippingAddress `json:"shippingAddress,omitempty"`
	}
	if err := json.Unmarshal(payload, &p); err != nil {
		h.logger.Debug("Dropped placeOrder message with bad payload", zap.Error(err))
		return
	}

	order := model.Order{
		ID:              model.NewID("order"),
		CreatedAt:       time.Now(),
		CustomerEmail:   p.CustomerEmail,
		Items:           p.Items,
		Total:           p.Total,
		ShippingAddress: p.ShippingAddress,
	}
	if err := order.Validate(); err != nil {
		h.logger.Debug("Dropped invalid order", zap.Error(err))
		return
	}

	if err := h.orders.PlaceOrder(h.projectID, order); err != nil {
		h.logger.Error("Failed to place order",
			zap.String("project_id", h.projectID),
			zap.Error(err))
		return
	}

	h.mu.Lock()
	h.state = sitegen.OrderSuccessState()
	h.mu.Unlock()
}
