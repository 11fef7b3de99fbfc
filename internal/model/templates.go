// Package model содержит модели данных платформы.
//
// Группа: WEBSITE - Каталог шаблонов
// Содержит: WebsiteTemplate, встроенные шаблоны
package model

// WebsiteTemplate представляет шаблон сайта из каталога
type WebsiteTemplate struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	PreviewImageURL string        `json:"previewImageUrl"`
	Tags            []string      `json:"tags"`
	Config          WebsiteConfig `json:"config"`
}

// defaultEcommerceConfig возвращает настройку e-commerce по умолчанию
func defaultEcommerceConfig() EcommerceConfig {
	return EcommerceConfig{
		Enabled:         true,
		EnabledGateways: Gateways{Stripe: true, PayPal: true},
		Cart:            CartConfig{Enabled: true},
		Discounts: []DiscountCode{
			{ID: "d1", Code: "NEXUS10", Type: "percentage", Value: 10},
		},
		ShippingOptions: []ShippingOption{
			{ID: "s1", Name: "Standard", Price: 4.99},
			{ID: "s2", Name: "Express", Price: 14.99},
		},
	}
}

// homeSections возвращает типовой набор секций главной страницы
func homeSections(hero HeroSection, about AboutSection, contact ContactSection, productsTitle, footerText string) WebsiteSections {
	return WebsiteSections{
		Hero:     hero,
		Products: ProductsSection{Enabled: true, Order: 2, Title: productsTitle},
		About:    about,
		Contact:  contact,
		Footer:   FooterSection{Enabled: true, Order: 5, Text: footerText},
	}
}

// BuiltinTemplates возвращает встроенные шаблоны каталога
func BuiltinTemplates() []WebsiteTemplate {
	return []WebsiteTemplate{
		{
			ID:              "quantum",
			Name:            "Quantum",
			Description:     "A sleek, modern, dark-themed template perfect for tech gadgets and electronics.",
			PreviewImageURL: "https://images.unsplash.com/photo-1550745165-9bc0b252726a?q=80&w=800",
			Tags:            []string{"E-commerce", "Tech", "Dark", "Modern"},
			Config: WebsiteConfig{
				Theme:             Theme{PrimaryColor: "#3b82f6", SecondaryColor: "#1f2937", Font: "Inter"},
				Template:          TemplateModern,
				ProductPageLayout: "image-left",
				SEO: SEOConfig{
					MetaTitle:       "Quantum Tech Store",
					MetaDescription: "The latest in tech gadgets and electronics.",
					FaviconURL:      "https://cdn-icons-png.flaticon.com/512/8106/8106114.png",
				},
				Domain: DomainConfig{Status: "unlinked"},
				Pages: []WebsitePage{{
					ID: "home", Title: "Home", Path: "/",
					Sections: homeSections(
						HeroSection{Enabled: true, Order: 1, Title: "Welcome to Quantum", Subtitle: "Discover the future of technology.", CTA: "Shop Now"},
						AboutSection{Order: 3, Title: "About Us", Content: "We are a company dedicated to selling the best things."},
						ContactSection{Order: 4, Title: "Contact Us", Email: "contact@example.com", Phone: "123-456-7890"},
						"Featured Products",
						"© 2024 Quantum. All rights reserved.",
					),
				}},
				Products: []WebsiteProduct{
					{ID: "prod_1", Name: "Astro-Gears", Price: 199.99, ProductType: "physical", ImageURL: "https://images.unsplash.com/photo-1518314916381-77a37c2a49ae?q=80&w=800", Description: "High-performance mechanical gears for astrogation units.", CategoryID: "cat_1"},
					{ID: "prod_2", Name: "Cyber-Core License", Price: 499.99, SalePrice: 449.99, ProductType: "digital", ImageURL: "https://images.unsplash.com/photo-1620282433428-b1416757c913?q=80&w=800", Description: "A quantum-entangled processor license for advanced AI.", CategoryID: "cat_1"},
					{ID: "prod_3", Name: "Retro Gaming Console", Price: 89.99, ProductType: "physical", ImageURL: "https://images.unsplash.com/photo-1550745165-9bc0b252726a?q=80&w=800", Description: "Classic gaming experience, reimagined.", CategoryID: "cat_2"},
				},
				Categories:    []WebsiteCategory{{ID: "cat_1", Name: "Processors"}, {ID: "cat_2", Name: "Gaming"}},
				Subcategories: []WebsiteSubcat{},
				Ecommerce:     defaultEcommerceConfig(),
				Orders:        []Order{},
			},
		},
		{
			ID:              "serene",
			Name:            "Serene",
			Description:     "A clean, minimalist, light-themed template for portfolios, blogs, or artisan shops.",
			PreviewImageURL: "https://images.unsplash.com/photo-1491975474562-1f4e30bc9468?q=80&w=800",
			Tags:            []string{"Minimalist", "Light", "Portfolio", "Blog"},
			Config: WebsiteConfig{
				Theme:             Theme{PrimaryColor: "#10b981", SecondaryColor: "#f9fafb", Font: "Roboto"},
				Template:          TemplateMinimalist,
				ProductPageLayout: "image-top",
				SEO: SEOConfig{
					MetaTitle:       "Serene Creations",
					MetaDescription: "Handcrafted goods and articles.",
				},
				Domain: DomainConfig{Status: "unlinked"},
				Pages: []WebsitePage{{
					ID: "home", Title: "Home", Path: "/",
					Sections: homeSections(
						HeroSection{Enabled: true, Order: 1, Title: "Simplicity & Elegance", Subtitle: "Handcrafted goods for a mindful life.", CTA: "Explore"},
						AboutSection{Enabled: true, Order: 3, Title: "Our Story", Content: "We believe in the power of simplicity and quality craftsmanship."},
						ContactSection{Order: 4, Title: "Contact Us", Email: "contact@example.com", Phone: "123-456-7890"},
						"Our Collection",
						"© 2024 Serene. All rights reserved.",
					),
				}},
				Products: []WebsiteProduct{
					{ID: "p1", Name: "Ceramic Vase", Price: 45.00, ProductType: "physical", ImageURL: "https://images.unsplash.com/photo-1525944322196-216a97e065a3?q=80&w=800", Description: "A beautiful, handcrafted ceramic vase.", CategoryID: "c1"},
					{ID: "p2", Name: "E-Book: The Art of Zen", Price: 19.99, ProductType: "digital", ImageURL: "https://images.unsplash.com/photo-1532012197267-da84d127e765?q=80&w=800", Description: "A digital guide to mindful living and design.", CategoryID: "c1"},
				},
				Categories:    []WebsiteCategory{{ID: "c1", Name: "Homeware"}},
				Subcategories: []WebsiteSubcat{},
				Ecommerce:     defaultEcommerceConfig(),
				Orders:        []Order{},
			},
		},
		{
			ID:              "ember",
			Name:            "Ember",
			Description:     "A bold and vibrant template ideal for restaurants, cafes, or food blogs.",
			PreviewImageURL: "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?q=80&w=800",
			Tags:            []string{"Bold", "Food", "Restaurant", "Vibrant"},
			Config: WebsiteConfig{
				Theme:             Theme{PrimaryColor: "#ef4444", SecondaryColor: "#111827", Font: "Poppins"},
				Template:          TemplateBold,
				ProductPageLayout: "image-left",
				SEO: SEOConfig{
					MetaTitle:       "Ember Grill",
					MetaDescription: "Taste the flame.",
				},
				Domain: DomainConfig{Status: "unlinked"},
				Pages: []WebsitePage{{
					ID: "home", Title: "Home", Path: "/",
					Sections: homeSections(
						HeroSection{Enabled: true, Order: 1, Title: "EMBER GRILL", Subtitle: "Where Fire Meets Flavor.", CTA: "View Menu"},
						AboutSection{Order: 3, Title: "About Us", Content: "We are a company dedicated to selling the best things."},
						ContactSection{Enabled: true, Order: 4, Title: "Reservations", Email: "book@ember.com", Phone: "123-555-7890"},
						"Signature Dishes",
						"© 2024 Ember Grill. All rights reserved.",
					),
				}},
				Products: []WebsiteProduct{
					{ID: "d1", Name: "Flame-Grilled Steak", Price: 32.50, SalePrice: 28.00, ProductType: "physical", ImageURL: "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?q=80&w=800", Description: "Aged to perfection and grilled over an open flame.", CategoryID: "mains"},
					{ID: "d2", Name: "Gourmet Spice Rub", Price: 16.00, ProductType: "physical", ImageURL: "https://images.unsplash.com/photo-1600742444738-9e0c72b2a8d3?q=80&w=800", Description: "Take home the signature taste of Ember Grill.", CategoryID: "starters"},
				},
				Categories:    []WebsiteCategory{{ID: "mains", Name: "Mains"}, {ID: "starters", Name: "Starters"}},
				Subcategories: []WebsiteSubcat{},
				Ecommerce:     defaultEcommerceConfig(),
				Orders:        []Order{},
			},
		},
	}
}

// FindTemplate возвращает шаблон по идентификатору
func FindTemplate(templates []WebsiteTemplate, id string) (WebsiteTemplate, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return WebsiteTemplate{}, false
}
