// Package page renders generated articles into complete HTML documents.
package page

import (
	_ "embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed page.html
var rawTemplate string

var pageTemplate = template.Must(template.New("page").Parse(rawTemplate))

// Data is the input to the page template.
type Data struct {
	Topic           string
	Category        string
	CategoryName    string
	Content         template.HTML
	MetaDescription string
}

// Render produces the full HTML document for one generated article. The
// article body is injected unescaped: the model's HTML fragment IS the page
// content. Everything else (topic, names, description) is escaped.
func Render(topic, category, categoryName, content, metaDescription string) (string, error) {
	var b strings.Builder
	err := pageTemplate.Execute(&b, Data{
		Topic:           topic,
		Category:        category,
		CategoryName:    categoryName,
		Content:         template.HTML(content),
		MetaDescription: metaDescription,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return b.String(), nil
}
