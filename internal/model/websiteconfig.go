// Package model содержит модели данных платформы.
//
// Группа: WEBSITE - Конфигурация сайта
// Содержит: WebsiteConfig, WebsitePage, WebsiteProduct, Order
package model

import "time"

// SiteTemplate представляет визуальный шаблон сайта
type SiteTemplate string

const (
	TemplateModern     SiteTemplate = "modern"
	TemplateMinimalist SiteTemplate = "minimalist"
	TemplateBold       SiteTemplate = "bold"
)

// WebsiteConfig представляет конфигурацию сайта
type WebsiteConfig struct {
	Theme             Theme             `json:"theme"`
	Template          SiteTemplate      `json:"template"`
	ProductPageLayout string            `json:"productPageLayout"`
	SEO               SEOConfig         `json:"seo"`
	Domain            DomainConfig      `json:"domain"`
	Pages             []WebsitePage     `json:"pages"`
	Products          []WebsiteProduct  `json:"products"`
	Categories        []WebsiteCategory `json:"categories"`
	Subcategories     []WebsiteSubcat   `json:"subcategories"`
	Ecommerce         EcommerceConfig   `json:"ecommerce"`
	Orders            []Order           `json:"orders"`
	CustomHTML        string            `json:"customHtml"`
	CustomCSS         string            `json:"customCss"`
	CustomJS          string            `json:"customJs"`
}

// Theme представляет цветовую тему сайта
type Theme struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	Font           string `json:"font"`
}

// SEOConfig представляет SEO-настройки сайта
type SEOConfig struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	FaviconURL      string `json:"faviconUrl"`
}

// DomainConfig представляет настройку домена
type DomainConfig struct {
	CustomDomain string `json:"customDomain"`
	Status       string `json:"status"`
}

// WebsitePage представляет страницу сайта
type WebsitePage struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Path     string          `json:"path"`
	Sections WebsiteSections `json:"sections"`
}

// WebsiteSections представляет секции страницы
type WebsiteSections struct {
	Hero     HeroSection     `json:"hero"`
	Products ProductsSection `json:"products"`
	About    AboutSection    `json:"about"`
	Contact  ContactSection  `json:"contact"`
	Footer   FooterSection   `json:"footer"`
}

// HeroSection представляет hero-секцию
type HeroSection struct {
	Enabled  bool   `json:"enabled"`
	Order    int    `json:"order"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTA      string `json:"cta"`
}

// ProductsSection представляет секцию каталога
type ProductsSection struct {
	Enabled bool   `json:"enabled"`
	Order   int    `json:"order"`
	Title   string `json:"title"`
}

// AboutSection представляет секцию "о нас"
type AboutSection struct {
	Enabled bool   `json:"enabled"`
	Order   int    `json:"order"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ContactSection представляет контактную секцию
type ContactSection struct {
	Enabled bool   `json:"enabled"`
	Order   int    `json:"order"`
	Title   string `json:"title"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// FooterSection представляет подвал страницы
type FooterSection struct {
	Enabled bool   `json:"enabled"`
	Order   int    `json:"order"`
	Text    string `json:"text"`
}

// WebsiteCategory представляет категорию товаров
type WebsiteCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// WebsiteSubcat представляет подкатегорию товаров
type WebsiteSubcat struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parentId"`
}

// ProductVariant представляет вариант товара (размер, цвет)
type ProductVariant struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"`
	Options []string `json:"options"`
}

// WebsiteProduct представляет товар каталога
type WebsiteProduct struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Price         float64          `json:"price"`
	SalePrice     float64          `json:"salePrice,omitempty"`
	ImageURL      string           `json:"imageUrl"`
	Description   string           `json:"description"`
	ProductType   string           `json:"productType"`
	CategoryID    string           `json:"categoryId,omitempty"`
	SubcategoryID string           `json:"subcategoryId,omitempty"`
	Variants      []ProductVariant `json:"variants,omitempty"`
}

// EffectivePrice возвращает цену с учетом скидки
func (p WebsiteProduct) EffectivePrice() float64 {
	if p.SalePrice > 0 {
		return p.SalePrice
	}
	return p.Price
}

// EcommerceConfig представляет настройку e-commerce
type EcommerceConfig struct {
	Enabled         bool             `json:"enabled"`
	StripePublicKey string           `json:"stripePublicKey"`
	StripeSecretKey string           `json:"stripeSecretKey"`
	EnabledGateways Gateways         `json:"enabledGateways"`
	Cart            CartConfig       `json:"cart"`
	Discounts       []DiscountCode   `json:"discounts"`
	ShippingOptions []ShippingOption `json:"shippingOptions"`
}

// Gateways представляет включенные платежные шлюзы
type Gateways struct {
	Stripe bool `json:"stripe"`
	PayPal bool `json:"paypal"`
	Crypto bool `json:"crypto"`
}

// CartConfig представляет настройку корзины
type CartConfig struct {
	Enabled bool `json:"enabled"`
}

// DiscountCode представляет промокод
type DiscountCode struct {
	ID    string  `json:"id"`
	Code  string  `json:"code"`
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// ShippingOption представляет способ доставки
type ShippingOption struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ShippingAddress представляет адрес доставки
type ShippingAddress struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// Order представляет заказ. Заказ неизменяем после создания и хранит
// копии товаров на момент покупки, а не ссылки на каталог.
type Order struct {
	ID              string           `json:"id"`
	CreatedAt       time.Time        `json:"createdAt"`
	CustomerEmail   string           `json:"customerEmail"`
	Items           []WebsiteProduct `json:"items"`
	Total           float64          `json:"total"`
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty"`
}

// Validate проверяет валидность заказа
func (o *Order) Validate() error {
	var errors ValidationErrors

	if err := ValidateRequired("customerEmail", o.CustomerEmail); err != nil {
		errors = append(errors, err.(ValidationError))
	}

	if len(o.Items) == 0 {
		errors = append(errors, ValidationError{Field: "items", Message: "order must contain at least one item"})
	}

	if errors.HasErrors() {
		return errors
	}
	return nil
}
