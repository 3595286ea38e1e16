// Package category holds the static content category table.
//
// The table is embedded in the binary and parsed once at startup; categories
// are configuration, not data, and a broken table should fail the deploy
// rather than individual requests.
package category

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed categories.yaml
var rawTable []byte

// Definition describes one content category.
type Definition struct {
	Name           string `yaml:"name"`
	PromptTemplate string `yaml:"prompt_template"`
}

var table map[string]Definition

func init() {
	var err error
	table, err = parseTable(rawTable)
	if err != nil {
		panic(fmt.Sprintf("category: embedded table is invalid: %v", err))
	}
}

func parseTable(raw []byte) (map[string]Definition, error) {
	var t map[string]Definition
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, err
	}
	if len(t) == 0 {
		return nil, fmt.Errorf("no categories defined")
	}
	for key, def := range t {
		if def.Name == "" {
			return nil, fmt.Errorf("category %q has no name", key)
		}
		if !strings.Contains(def.PromptTemplate, "{topic}") {
			return nil, fmt.Errorf("category %q template has no {topic} placeholder", key)
		}
	}
	return t, nil
}

// Lookup returns the definition for a category key.
func Lookup(key string) (Definition, bool) {
	def, ok := table[key]
	return def, ok
}

// Invalid returns the keys that are not in the table, in input order.
func Invalid(keys []string) []string {
	var invalid []string
	for _, key := range keys {
		if _, ok := table[key]; !ok {
			invalid = append(invalid, key)
		}
	}
	return invalid
}
