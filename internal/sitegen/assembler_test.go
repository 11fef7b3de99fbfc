package sitegen

import (
	"encoding/json"
	"strings"
	"testing"

	"nexusforge/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSite() model.WebsiteConfig {
	return model.WebsiteConfig{
		Theme: model.Theme{
			PrimaryColor:   "#3b82f6",
			SecondaryColor: "#1f2937",
			Font:           "Inter",
		},
		Template:          model.TemplateModern,
		ProductPageLayout: "image-left",
		Pages: []model.WebsitePage{
			{
				ID:    "home",
				Title: "Home",
				Sections: model.WebsiteSections{
					Hero:     model.HeroSection{Enabled: true, Title: "Welcome", Subtitle: "The best shop", CTA: "Shop Now"},
					Products: model.ProductsSection{Enabled: true, Title: "Products"},
					About:    model.AboutSection{Enabled: false, Title: "About", Content: "About us"},
					Contact:  model.ContactSection{Enabled: false},
					Footer:   model.FooterSection{Enabled: true, Text: "© 2025 Test Shop"},
				},
			},
			{ID: "faq", Title: "FAQ"},
		},
		Categories: []model.WebsiteCategory{{ID: "cat_1", Name: "Apparel"}},
		Products: []model.WebsiteProduct{
			{
				ID:          "p1",
				Name:        "Hoodie",
				Price:       10,
				SalePrice:   8,
				ImageURL:    "https://img.example/hoodie.jpg",
				ProductType: "physical",
				CategoryID:  "cat_1",
				Variants:    []model.ProductVariant{{ID: "v1", Type: "Size", Options: []string{"S", "M", "L"}}},
			},
			{
				ID:          "p2",
				Name:        "License",
				Price:       20,
				ImageURL:    "https://img.example/license.jpg",
				ProductType: "digital",
				CategoryID:  "cat_1",
			},
		},
		Ecommerce: model.EcommerceConfig{
			Enabled: true,
			Cart:    model.CartConfig{Enabled: true},
		},
	}
}

func TestAssemble_DeterministicAndPure(t *testing.T) {
	site := sampleSite()
	before, err := json.Marshal(site)
	require.NoError(t, err)

	first := Assemble(site, "Test Shop", PageState("home"))
	second := Assemble(site, "Test Shop", PageState("home"))
	assert.Equal(t, first, second)

	after, err := json.Marshal(site)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after), "Assemble must not mutate its input")
}

func TestAssemble_PageSections(t *testing.T) {
	site := sampleSite()
	html := Assemble(site, "Test Shop", PageState("home"))

	assert.Contains(t, html, "Welcome")
	assert.Contains(t, html, "Shop Now")
	assert.Contains(t, html, "© 2025 Test Shop")
	assert.Contains(t, html, "Apparel")
	// Выключенные секции не дают разметки
	assert.NotContains(t, html, "About us")
	assert.NotContains(t, html, "Email:")
}

func TestAssemble_SectionDisabledContributesNothing(t *testing.T) {
	site := sampleSite()
	site.Pages[0].Sections.Hero.Enabled = false
	site.Pages[0].Sections.Footer.Enabled = false
	site.Pages[0].Sections.Products.Enabled = false

	html := Assemble(site, "Test Shop", PageState("home"))

	assert.NotContains(t, html, "<header")
	assert.NotContains(t, html, "<footer")
	assert.NotContains(t, html, "<main")
}

func TestAssemble_NavListsPages(t *testing.T) {
	html := Assemble(sampleSite(), "Test Shop", PageState("home"))

	assert.Contains(t, html, `data-action="navigate" data-id="home"`)
	assert.Contains(t, html, `data-action="navigate" data-id="faq"`)
	assert.Contains(t, html, `id="cart-icon"`)
}

func TestAssemble_CartIconGatedByEcommerce(t *testing.T) {
	site := sampleSite()
	site.Ecommerce.Cart.Enabled = false

	html := Assemble(site, "Test Shop", PageState("home"))

	assert.NotContains(t, html, `id="cart-icon"`)
}

func TestAssemble_ProductView(t *testing.T) {
	site := sampleSite()
	html := Assemble(site, "Test Shop", ProductState("p1"))

	// Скидка: новая цена рядом с зачеркнутой старой
	assert.Contains(t, html, "$8.00")
	assert.Contains(t, html, "line-through")
	assert.Contains(t, html, "$10.00")
	assert.Contains(t, html, `data-action="addToCart"`)
	assert.Contains(t, html, `"id":"p1"`)
	// Варианты товара
	assert.Contains(t, html, "Size")
	assert.Contains(t, html, "<option>M</option>")
	// Раскладка страницы товара
	assert.Contains(t, html, "md:grid-cols-2")
}

func TestAssemble_UnknownProductRendersEmptyContent(t *testing.T) {
	site := sampleSite()
	html := Assemble(site, "Test Shop", ProductState("missing"))

	assert.NotContains(t, html, "Add to Cart")
	// Навигация остается
	assert.Contains(t, html, `data-action="navigate"`)
}

func TestAssemble_CheckoutTotals(t *testing.T) {
	site := sampleSite()
	cart := []model.WebsiteProduct{site.Products[0], site.Products[1]}

	html := Assemble(site, "Test Shop", CheckoutState(cart))

	// 8 + 20 + 4.99 = 32.99, ровно два знака после запятой
	assert.Contains(t, html, "$28.00")
	assert.Contains(t, html, "$4.99")
	assert.Contains(t, html, "$32.99")
	assert.InDelta(t, 32.99, CheckoutTotal(cart), 0.0001)
}

func TestAssemble_CheckoutShippingForm(t *testing.T) {
	site := sampleSite()

	physical := Assemble(site, "Test Shop", CheckoutState([]model.WebsiteProduct{site.Products[0]}))
	assert.Contains(t, physical, `id="shipping-address-form" style="display: block"`)
	assert.Contains(t, physical, "street: data.street")

	digital := Assemble(site, "Test Shop", CheckoutState([]model.WebsiteProduct{site.Products[1]}))
	assert.Contains(t, digital, `id="shipping-address-form" style="display: none"`)
	assert.Contains(t, digital, "shippingAddress: undefined")
}

func TestAssemble_CheckoutStateSnapshotsCart(t *testing.T) {
	site := sampleSite()
	cart := []model.WebsiteProduct{site.Products[0]}

	state := CheckoutState(cart)
	cart[0].Name = "Renamed"

	html := Assemble(site, "Test Shop", state)
	assert.Contains(t, html, "Hoodie")
	assert.NotContains(t, html, "Renamed")
}

func TestAssemble_OrderSuccess(t *testing.T) {
	html := Assemble(sampleSite(), "Test Shop", OrderSuccessState())

	assert.Contains(t, html, "Thank You!")
	assert.Contains(t, html, `data-action="navigate" data-id="home"`)
}

func TestAssemble_PlaceOrderScript(t *testing.T) {
	site := sampleSite()
	html := Assemble(site, "Test Shop", CheckoutState([]model.WebsiteProduct{site.Products[1]}))

	assert.Contains(t, html, "window.parent.postMessage({ action: 'placeOrder', payload: order }, '*')")
}

func TestTemplateStyles_Presets(t *testing.T) {
	theme := model.Theme{PrimaryColor: "#ff0000", SecondaryColor: "#00ff00"}

	modern := templateStyles(model.TemplateModern, theme)
	assert.Contains(t, modern, "linear-gradient(to right, #ff0000")

	minimalist := templateStyles(model.TemplateMinimalist, theme)
	assert.Contains(t, minimalist, "background-color: #ffffff")
	assert.Contains(t, minimalist, "background-color: #ff0000")

	bold := templateStyles(model.TemplateBold, theme)
	assert.Contains(t, bold, "text-transform: uppercase")
	assert.Contains(t, bold, "color: #00ff00")

	// Неизвестный шаблон получает пресет modern
	fallback := templateStyles(model.SiteTemplate("unknown"), theme)
	assert.Equal(t, modern, fallback)
}

func TestAssemble_CustomCSSAndJS(t *testing.T) {
	site := sampleSite()
	site.CustomCSS = ".custom-banner { color: red; }"
	site.CustomJS = "console.log('hi');"

	html := Assemble(site, "Test Shop", PageState("home"))

	assert.Contains(t, html, ".custom-banner { color: red; }")
	assert.Contains(t, html, "console.log('hi');")
	// Стиль до </head>, скрипт внутри body
	assert.Less(t, strings.Index(html, ".custom-banner"), strings.Index(html, "</head>"))
}
