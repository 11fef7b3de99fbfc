package sitegen

import "nexusforge/internal/model"

// StateKind представляет тип экрана предпросмотра
type StateKind string

const (
	StatePage         StateKind = "page"
	StateProduct      StateKind = "product"
	StateCheckout     StateKind = "checkout"
	StateOrderSuccess StateKind = "order_success"
)

// PreviewState представляет активный виртуальный экран предпросмотра.
// Состояние — размеченное объединение: поля ID и Cart заполняются в
// зависимости от Kind.
type PreviewState struct {
	Kind StateKind
	ID   string
	Cart []model.WebsiteProduct
}

// PageState возвращает состояние просмотра страницы
func PageState(pageID string) PreviewState {
	return PreviewState{Kind: StatePage, ID: pageID}
}

// ProductState возвращает состояние просмотра товара
func ProductState(productID string) PreviewState {
	return PreviewState{Kind: StateProduct, ID: productID}
}

// CheckoutState возвращает состояние оформления заказа.
// Корзина копируется: содержимое экрана не должно меняться от
// последующих правок каталога.
func CheckoutState(cart []model.WebsiteProduct) PreviewState {
	snapshot := make([]model.WebsiteProduct, len(cart))
	copy(snapshot, cart)
	return PreviewState{Kind: StateCheckout, Cart: snapshot}
}

// OrderSuccessState возвращает состояние подтверждения заказа
func OrderSuccessState() PreviewState {
	return PreviewState{Kind: StateOrderSuccess}
}
