package sitegen

import (
	"fmt"

	"nexusforge/internal/model"
)

// templateStyles возвращает CSS-пресет шаблона, раскрашенный цветами
// темы. Неизвестный шаблон получает пресет modern.
func templateStyles(template model.SiteTemplate, theme model.Theme) string {
	primary := theme.PrimaryColor
	secondary := theme.SecondaryColor

	switch template {
	case model.TemplateMinimalist:
		return fmt.Sprintf(`
            body { background-color: #ffffff; color: #374151; }
            .card { border: 1px solid #e5e7eb; border-radius: 0; }
            .btn-primary { background-color: %[1]s; color: white; border-radius: 0; }
            header { background-color: #ffffff; box-shadow: none; border-bottom: 1px solid #e5e7eb; }
            nav { color: #1f2937; }
            .form-input { background-color: #f9fafb; border: 1px solid #d1d5db; border-radius: 0.25rem; padding: 0.75rem 1rem; color: #111827; }
            .form-input:focus { outline: none; border-color: %[1]s; box-shadow: 0 0 0 2px %[1]s40; }
        `, primary)
	case model.TemplateBold:
		return fmt.Sprintf(`
            body { background-color: #000000; color: #ffffff; }
            .card { background-color: #111827; border: 2px solid %[1]s; border-radius: 0; }
            .btn-primary { background-color: %[1]s; color: %[2]s; font-weight: 900; border-radius: 0; }
            h1, h2, h3, h4 { text-transform: uppercase; font-weight: 900; letter-spacing: 0.05em; }
            .form-input { background-color: #1f2937; border: 1px solid #4b5563; border-radius: 0; padding: 0.75rem 1rem; color: #f3f4f6; }
            .form-input:focus { outline: none; border-color: %[1]s; box-shadow: 0 0 0 2px %[1]s40; }
        `, primary, secondary)
	default:
		return fmt.Sprintf(`
            body { background-color: #111827; color: #f3f4f6; }
            .card { background-color: #1f2937; border-radius: 0.75rem; box-shadow: 0 10px 15px -3px rgba(0,0,0,0.1), 0 4px 6px -2px rgba(0,0,0,0.05); }
            .btn-primary { background-image: linear-gradient(to right, %[1]s, #6366f1); color: white; border-radius: 9999px; transition: transform 0.2s; }
            .btn-primary:hover { transform: scale(1.05); }
            header { background-color: rgba(31, 41, 55, 0.8); backdrop-filter: blur(10px); }
            .form-input { background-color: #374151; border: 1px solid #4b5563; border-radius: 0.5rem; padding: 0.75rem 1rem; color: #f3f4f6; }
            .form-input:focus { outline: none; border-color: %[1]s; box-shadow: 0 0 0 2px %[1]s40; }
        `, primary)
	}
}
