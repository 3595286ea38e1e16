package generator

import (
	"fmt"
	"strings"
)

// htmlInstructions is appended to every article prompt so the model emits a
// clean HTML fragment ready to drop into the page template.
const htmlInstructions = `

Format the article in clean HTML suitable for a blog post. Include:
- A compelling <h1> title
- Use <h2> and <h3> for section headers
- Use <p> tags for paragraphs
- Use <ul>/<ol> and <li> for lists where appropriate
- Use <strong> and <em> for emphasis
- Do NOT include <html>, <head>, or <body> tags - just the article content
- Make the content engaging, well-researched, and approximately 800-1200 words`

// articlePrompt builds the main content prompt from a category template.
func articlePrompt(template, topic string) string {
	return strings.ReplaceAll(template, "{topic}", topic) + htmlInstructions
}

// metaPrompt asks for only the meta description text. The length target is a
// request, not a guarantee; the caller truncates regardless.
func metaPrompt(topic, categoryName string) string {
	return fmt.Sprintf(`Write a compelling meta description (150-160 characters) for a blog article about %q focusing on %s.
The description should be engaging and include the main keyword. Return ONLY the meta description text, nothing else.`,
		topic, strings.ToLower(categoryName))
}
