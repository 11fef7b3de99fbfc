// Package sitegen собирает HTML-документ предпросмотра сайта.
//
// Сборка — чистая функция от (конфигурация сайта, состояние
// предпросмотра) к полному самодостаточному документу. Входные данные
// не изменяются, повторный вызов с теми же аргументами дает тот же
// документ.
package sitegen

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"nexusforge/internal/model"
)

// ShippingFlatRate — фиксированная стоимость доставки на экране
// оформления заказа
const ShippingFlatRate = 4.99

// Assemble возвращает полный HTML-документ предпросмотра: шапку с
// навигацией, содержимое активного экрана, панель корзины и скрипт
// взаимодействия, отправляющий события протокола предпросмотра.
func Assemble(site model.WebsiteConfig, projectName string, state PreviewState) string {
	var content string
	switch state.Kind {
	case StateProduct:
		content = productContent(site, state.ID)
	case StateCheckout:
		content = checkoutContent(state.Cart)
	case StateOrderSuccess:
		content = orderSuccessContent()
	default:
		content = pageContent(site, state.ID)
	}

	var b strings.Builder
	b.WriteString("<html>\n<head>\n")
	b.WriteString(`<script src="https://cdn.tailwindcss.com"></script>` + "\n")
	b.WriteString(`<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/@tailwindcss/typography@0.5.x/dist/typography.min.css">` + "\n")
	b.WriteString("<style>\n")
	fmt.Fprintf(&b, "@import url('https://fonts.googleapis.com/css2?family=%s:wght@400;700;900&display=swap');\n",
		strings.ReplaceAll(site.Theme.Font, " ", "+"))
	b.WriteString("html { scroll-behavior: smooth; }\n")
	fmt.Fprintf(&b, "body { font-family: '%s', sans-serif; }\n", site.Theme.Font)
	b.WriteString(templateStyles(site.Template, site.Theme))
	b.WriteString("\n.prose img { margin-top: 1em; margin-bottom: 1em; border-radius: 0.5rem; }\n")
	if site.CustomCSS != "" {
		b.WriteString(site.CustomCSS)
		b.WriteString("\n")
	}
	b.WriteString("</style>\n</head>\n")
	fmt.Fprintf(&b, `<body class="theme-%s">`+"\n", site.Template)
	b.WriteString(navBlock(site, projectName))
	b.WriteString(content)
	b.WriteString(cartBlock(site))
	b.WriteString(interactionScript)
	if site.CustomJS != "" {
		b.WriteString("<script>\n" + site.CustomJS + "\n</script>\n")
	}
	b.WriteString("</body>\n</html>")
	return b.String()
}

// CheckoutTotal возвращает итог оформления заказа: сумма цен корзины
// (с учетом скидок) плюс фиксированная доставка
func CheckoutTotal(cart []model.WebsiteProduct) float64 {
	subtotal := 0.0
	for _, item := range cart {
		subtotal += item.EffectivePrice()
	}
	return subtotal + ShippingFlatRate
}

// money форматирует сумму с двумя знаками после запятой
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// navBlock собирает навигацию по страницам и значок корзины
func navBlock(site model.WebsiteConfig, projectName string) string {
	navBackground := site.Theme.SecondaryColor
	if site.Template == model.TemplateMinimalist {
		navBackground = "white"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<nav class="p-4 flex justify-between items-center text-gray-200 sticky top-0 z-10" style="background-color: %s;">`+"\n", navBackground)
	fmt.Fprintf(&b, `<h1 class="text-xl font-bold" style="color: %s;">%s</h1>`+"\n", site.Theme.PrimaryColor, projectName)
	b.WriteString(`<div class="hidden md:flex gap-6 items-center">` + "\n")
	for _, page := range site.Pages {
		fmt.Fprintf(&b, `<a href="#" data-action="navigate" data-id="%s" class="hover:text-gray-400">%s</a>`+"\n", page.ID, page.Title)
	}
	if site.Ecommerce.Cart.Enabled {
		b.WriteString(`<div id="cart-icon" class="relative cursor-pointer">
<svg xmlns="http://www.w3.org/2000/svg" class="h-6 w-6" fill="none" viewBox="0 0 24 24" stroke="currentColor"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M3 3h2l.4 2M7 13h10l4-8H5.4M7 13L5.4 5M7 13l-2.293 2.293c-.63.63-.184 1.707.707 1.707H17m0 0a2 2 0 100 4 2 2 0 000-4zm-8 2a2 2 0 11-4 0 2 2 0 014 0z" /></svg>
<span id="cart-count" class="absolute -top-2 -right-2 bg-red-500 text-white text-xs rounded-full h-5 w-5 flex items-center justify-center font-bold">0</span>
</div>
`)
	}
	b.WriteString("</div>\n</nav>\n")
	return b.String()
}

// pageContent собирает содержимое страницы из включенных секций.
// Выключенная секция не дает разметки совсем.
func pageContent(site model.WebsiteConfig, pageID string) string {
	var page *model.WebsitePage
	for i := range site.Pages {
		if site.Pages[i].ID == pageID {
			page = &site.Pages[i]
			break
		}
	}
	if page == nil {
		return ""
	}

	sections := page.Sections
	primary := site.Theme.PrimaryColor
	secondary := site.Theme.SecondaryColor

	var b strings.Builder
	if sections.Hero.Enabled {
		fmt.Fprintf(&b, `<header class="text-center py-20 px-4" style="background-color: %s;">
<h2 class="text-4xl font-bold">%s</h2>
<p class="mt-2 text-lg text-gray-300">%s</p>
<button class="mt-6 px-6 py-3 font-semibold btn-primary">%s</button>
</header>
`, secondary, sections.Hero.Title, sections.Hero.Subtitle, sections.Hero.CTA)
	}
	if sections.About.Enabled {
		fmt.Fprintf(&b, `<section class="p-8"><div class="max-w-4xl mx-auto"><h3 class="text-3xl font-bold text-center mb-4">%s</h3><p>%s</p></div></section>`+"\n",
			sections.About.Title, sections.About.Content)
	}
	if sections.Products.Enabled {
		b.WriteString(`<main class="p-8">` + "\n")
		for _, category := range site.Categories {
			var categoryProducts []model.WebsiteProduct
			for _, product := range site.Products {
				if product.CategoryID == category.ID {
					categoryProducts = append(categoryProducts, product)
				}
			}
			if len(categoryProducts) == 0 {
				continue
			}
			fmt.Fprintf(&b, `<div class="mb-12">
<h3 class="text-3xl font-bold mb-6">%s</h3>
<div class="grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-4 gap-6">
`, category.Name)
			for _, product := range categoryProducts {
				fmt.Fprintf(&b, `<div class="card overflow-hidden flex flex-col">
<img src="%s" alt="%s" class="w-full h-48 object-cover" />
<div class="p-4 flex-grow flex flex-col">
<h4 class="font-bold text-lg">%s</h4>
<div class="mt-1 mb-4">%s</div>
<button data-action="viewProduct" data-id="%s" class="mt-auto w-full py-2 font-semibold btn-primary">View Details</button>
</div>
</div>
`, product.ImageURL, product.Name, product.Name, priceBadge(product, primary, "text-xl", "text-sm", "ml-2"), product.ID)
			}
			b.WriteString("</div>\n</div>\n")
		}
		b.WriteString("</main>\n")
	}
	if sections.Contact.Enabled {
		fmt.Fprintf(&b, `<section class="p-8 bg-gray-800"><div class="max-w-4xl mx-auto text-center"><h3 class="text-3xl font-bold mb-4">%s</h3><p>Email: %s</p><p>Phone: %s</p></div></section>`+"\n",
			sections.Contact.Title, sections.Contact.Email, sections.Contact.Phone)
	}
	if sections.Footer.Enabled {
		fmt.Fprintf(&b, `<footer class="text-center py-6" style="background-color: %s"><p class="opacity-70">%s</p></footer>`+"\n",
			secondary, sections.Footer.Text)
	}
	return b.String()
}

// priceBadge собирает разметку цены: при скидке зачеркнутая старая цена
// рядом с новой
func priceBadge(product model.WebsiteProduct, primary, mainSize, strikeSize, strikeMargin string) string {
	if product.SalePrice > 0 {
		return fmt.Sprintf(`<span class="%s font-bold text-red-500">$%s</span><span class="%s line-through text-gray-400 %s">$%s</span>`,
			mainSize, money(product.SalePrice), strikeSize, strikeMargin, money(product.Price))
	}
	return fmt.Sprintf(`<span class="%s font-bold" style="color:%s">$%s</span>`,
		mainSize, primary, money(product.Price))
}

// productContent собирает страницу товара
func productContent(site model.WebsiteConfig, productID string) string {
	var product *model.WebsiteProduct
	for i := range site.Products {
		if site.Products[i].ID == productID {
			product = &site.Products[i]
			break
		}
	}
	if product == nil {
		return ""
	}

	layoutClasses := "md:grid-cols-1 gap-4"
	if site.ProductPageLayout == "image-left" {
		layoutClasses = "md:grid-cols-2 gap-8"
	}

	productJSON, err := json.Marshal(product)
	if err != nil {
		productJSON = []byte("{}")
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="p-8 max-w-6xl mx-auto">
<div class="grid %s items-start">
<img src="%s" alt="%s" class="w-full rounded-lg shadow-lg"/>
<div class="pt-8 md:pt-0">
<h2 class="text-4xl font-bold">%s</h2>
<div class="text-3xl my-4">%s</div>
<div class="text-gray-400 mb-6 prose">%s</div>
<div class="space-y-4 mb-6">
`, layoutClasses, product.ImageURL, product.Name, product.Name,
		priceBadge(*product, site.Theme.PrimaryColor, "", "text-xl", "ml-3"), product.Description)
	for _, variant := range product.Variants {
		fmt.Fprintf(&b, `<div>
<label class="block text-sm font-medium mb-1">%s</label>
<select class="w-full bg-gray-700 p-2 rounded-md border border-gray-600">
`, variant.Type)
		for _, option := range variant.Options {
			fmt.Fprintf(&b, "<option>%s</option>\n", option)
		}
		b.WriteString("</select>\n</div>\n")
	}
	fmt.Fprintf(&b, `</div>
<button data-action="addToCart" data-product='%s' class="px-8 py-4 font-semibold btn-primary text-lg">Add to Cart</button>
</div>
</div>
</div>
`, string(productJSON))
	return b.String()
}

// checkoutContent собирает экран оформления заказа
func checkoutContent(cart []model.WebsiteProduct) string {
	subtotal := 0.0
	needsShipping := false
	for _, item := range cart {
		subtotal += item.EffectivePrice()
		if item.ProductType == "physical" {
			needsShipping = true
		}
	}
	total := subtotal + ShippingFlatRate

	shippingDisplay := "none"
	if needsShipping {
		shippingDisplay = "block"
	}

	cartJSON, err := json.Marshal(cart)
	if err != nil {
		cartJSON = []byte("[]")
	}
	shippingExpr := "undefined"
	if needsShipping {
		shippingExpr = "{ name: data.name, street: data.street, city: data.city, state: data.state, zip: data.zip, country: data.country }"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div id="checkout-view" class="p-8 max-w-4xl mx-auto">
<h2 class="text-3xl font-bold text-center mb-8">Checkout</h2>
<form id="checkout-form" class="grid md:grid-cols-2 gap-8">
<div>
<div class="space-y-4">
<div>
<h3 class="font-bold text-lg mb-4">Contact Information</h3>
<input type="email" name="email" placeholder="Email Address" class="form-input w-full" required />
</div>
<div id="shipping-address-form" style="display: %s">
<h3 class="font-bold text-lg mb-4 mt-6">Shipping Address</h3>
<div class="space-y-4">
<input type="text" name="name" placeholder="Full Name" class="form-input w-full" />
<input type="text" name="street" placeholder="Street Address" class="form-input w-full" />
<div class="flex gap-4">
<input type="text" name="city" placeholder="City" class="form-input w-full" />
<input type="text" name="state" placeholder="State / Province" class="form-input w-full" />
</div>
<div class="flex gap-4">
<input type="text" name="zip" placeholder="ZIP / Postal Code" class="form-input w-full" />
<input type="text" name="country" placeholder="Country" class="form-input w-full" />
</div>
</div>
</div>
</div>
</div>
<div class="bg-gray-800 p-6 rounded-lg">
<h3 class="font-bold text-lg mb-4">Your Order</h3>
<div class="space-y-3">
`, shippingDisplay)
	for _, item := range cart {
		fmt.Fprintf(&b, `<div class="flex justify-between items-center text-sm">
<div class="flex items-center gap-2">
<img src="%s" class="w-10 h-10 rounded-md object-cover" />
<p>%s</p>
</div>
<p>$%s</p>
</div>
`, item.ImageURL, item.Name, money(item.EffectivePrice()))
	}
	fmt.Fprintf(&b, `<div class="flex justify-between border-t border-gray-600 pt-3 mt-3">
<p>Subtotal</p>
<p>$%s</p>
</div>
<div class="flex justify-between">
<p>Shipping</p>
<p>$%s</p>
</div>
<div class="flex justify-between font-bold border-t border-gray-600 pt-3 mt-3">
<p>Total</p>
<p>$%s</p>
</div>
<button type="submit" class="w-full py-3 btn-primary font-semibold mt-4">Place Order</button>
</div>
</div>
</form>
<script>
    document.getElementById('checkout-form').addEventListener('submit', function(e) {
        e.preventDefault();
        const formData = new FormData(e.target);
        const data = Object.fromEntries(formData.entries());

        const order = {
            customerEmail: data.email,
            items: %s,
            total: %s,
            shippingAddress: %s
        };
        window.parent.postMessage({ action: 'placeOrder', payload: order }, '*');
    });
</script>
</div>
`, money(subtotal), money(ShippingFlatRate), money(total), string(cartJSON), money(total), shippingExpr)
	return b.String()
}

// orderSuccessContent собирает экран подтверждения заказа
func orderSuccessContent() string {
	return `<div class="p-8 max-w-2xl mx-auto text-center">
<div class="text-6xl mb-4">✅</div>
<h2 class="text-3xl font-bold mb-4">Thank You!</h2>
<p class="text-gray-400 mb-6">Your order has been placed successfully. A confirmation email has been sent to you.</p>
<button data-action="navigate" data-id="home" class="px-8 py-3 font-semibold btn-primary">Continue Shopping</button>
</div>
`
}

// cartBlock собирает выдвижную панель корзины с ее стилями и скриптом
func cartBlock(site model.WebsiteConfig) string {
	panelBackground, panelColor, borderClass := "#1f2937", "#FFF", "border-gray-700"
	if site.Template == model.TemplateMinimalist {
		panelBackground, panelColor, borderClass = "#FFF", "#111", "border-gray-200"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<style>
  #cart-panel {
    position: fixed;
    top: 0;
    right: 0;
    width: 350px;
    height: 100%%;
    background-color: %s;
    color: %s;
    box-shadow: -10px 0 20px rgba(0,0,0,0.2);
    transform: translateX(100%%);
    transition: transform 0.3s ease-in-out;
    z-index: 100;
  }
  #cart-panel.open {
    transform: translateX(0);
  }
  #cart-backdrop {
    position: fixed;
    top: 0;
    left: 0;
    width: 100%%;
    height: 100%%;
    background-color: rgba(0,0,0,0.5);
    z-index: 99;
    opacity: 0;
    pointer-events: none;
    transition: opacity 0.3s ease-in-out;
  }
  #cart-backdrop.open {
    opacity: 1;
    pointer-events: auto;
  }
</style>
<div id="cart-backdrop"></div>
<div id="cart-panel" class="flex flex-col">
    <div class="p-4 border-b %s flex justify-between items-center">
        <h3 class="font-bold text-lg">Your Cart</h3>
        <button id="close-cart-btn" class="text-2xl">&times;</button>
    </div>
    <div id="cart-items" class="flex-grow p-4 overflow-y-auto">
        <p class="text-gray-400">Your cart is empty.</p>
    </div>
    <div class="p-4 border-t %s">
        <div class="flex justify-between font-bold">
            <span>Subtotal</span>
            <span id="cart-subtotal">$0.00</span>
        </div>
        <button id="checkout-btn" class="w-full mt-4 py-3 font-semibold btn-primary">Proceed to Checkout</button>
    </div>
</div>
`, panelBackground, panelColor, borderClass, borderClass)
	fmt.Fprintf(&b, `<script>
    const cartPanel = document.getElementById('cart-panel');
    const cartBackdrop = document.getElementById('cart-backdrop');
    const cartIcon = document.getElementById('cart-icon');
    const closeCartBtn = document.getElementById('close-cart-btn');
    const cartItemsContainer = document.getElementById('cart-items');
    const cartSubtotalEl = document.getElementById('cart-subtotal');
    const cartCountEl = document.getElementById('cart-count');
    const checkoutBtn = document.getElementById('checkout-btn');

    let cart = [];

    function toggleCart() {
        cartPanel.classList.toggle('open');
        cartBackdrop.classList.toggle('open');
    }

    if(cartIcon) cartIcon.addEventListener('click', toggleCart);
    if(closeCartBtn) closeCartBtn.addEventListener('click', toggleCart);
    if(cartBackdrop) cartBackdrop.addEventListener('click', toggleCart);
    if(checkoutBtn) checkoutBtn.addEventListener('click', () => {
        if (cart.length > 0) {
            window.parent.postMessage({ action: 'viewCheckout', payload: { cart } }, '*');
        }
    });

    function renderCart() {
        if (cart.length === 0) {
            cartItemsContainer.innerHTML = '<p class="text-gray-400">Your cart is empty.</p>';
        } else {
            cartItemsContainer.innerHTML = cart.map(item => `+"`"+`
                <div class="flex gap-4 mb-4 items-center">
                    <img src="${item.imageUrl}" class="w-16 h-16 object-cover rounded-md" />
                    <div>
                        <p class="font-bold">${item.name}</p>
                        <p class="text-sm" style="color: %s;">$ ${(item.salePrice || item.price).toFixed(2)}</p>
                    </div>
                </div>
            `+"`"+`).join('');
        }

        const subtotal = cart.reduce((acc, item) => acc + (item.salePrice || item.price), 0);
        cartSubtotalEl.textContent = '$' + subtotal.toFixed(2);
        if(cartCountEl) cartCountEl.textContent = cart.length;
    }

    window.parent.addToCart = function(product) {
        cart.push(JSON.parse(product));
        renderCart();
        if (!cartPanel.classList.contains('open')) {
            toggleCart();
        }
    }
</script>
`, site.Theme.PrimaryColor)
	return b.String()
}

const interactionScript = `<script>
  document.addEventListener('click', function(e) {
    let target = e.target.closest('[data-action]');
    if (target) {
      e.preventDefault();
      const action = target.dataset.action;
      const id = target.dataset.id;
      if (action === 'addToCart') {
          window.parent.addToCart(target.dataset.product);
      } else {
          window.parent.postMessage({ action, payload: { id } }, '*');
      }
    }
  });
</script>
`
