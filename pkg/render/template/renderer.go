package template

// TemplateRenderer executes named templates or inline template strings with a
// flat data map. Values visible to every template are configured on the
// implementation.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any) (string, error)
	RenderString(templateContent string, data map[string]any) (string, error)
}
