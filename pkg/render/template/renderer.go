package template

// TemplateRenderer is the engine contract template-backed tag renderers rely
// on. Render accepts either a template name or inline template content.
type TemplateRenderer interface {
	Render(name string, data map[string]any) (string, error)
	RenderTemplate(name string, data map[string]any) (string, error)
	RenderString(content string, data map[string]any) (string, error)
}
