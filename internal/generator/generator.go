// Package generator produces article content and meta descriptions through a
// text-generation model.
package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/NikitaForGit/lambda-generate-content/internal/category"
	"github.com/NikitaForGit/lambda-generate-content/internal/domain"
)

// maxMetaLength caps the meta description regardless of what the model
// returns for the 150-160 character request.
const maxMetaLength = 160

// Generator turns a (topic, category) pair into a generated article.
type Generator struct {
	text TextGenerator
}

// New creates a Generator on top of a text generation backend.
func New(text TextGenerator) *Generator {
	return &Generator{text: text}
}

// Generate builds the article body and meta description for a pair. The pair
// is atomic: a failure on either model call discards the whole result.
func (g *Generator) Generate(ctx context.Context, topic, categoryKey string) (domain.Article, error) {
	def, ok := category.Lookup(categoryKey)
	if !ok {
		return domain.Article{}, fmt.Errorf("unknown category: %s", categoryKey)
	}

	content, err := g.text.Generate(ctx, articlePrompt(def.PromptTemplate, topic))
	if err != nil {
		return domain.Article{}, fmt.Errorf("content generation failed: %w", err)
	}

	meta, err := g.text.Generate(ctx, metaPrompt(topic, def.Name))
	if err != nil {
		return domain.Article{}, fmt.Errorf("meta description generation failed: %w", err)
	}

	return domain.Article{
		Content:         content,
		MetaDescription: truncate(strings.TrimSpace(meta), maxMetaLength),
		CategoryName:    def.Name,
	}, nil
}

// truncate limits s to max characters, counting runes so a multi-byte
// character is never split.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
