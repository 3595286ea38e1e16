package category

import (
	"strings"
	"testing"
)

func TestEmbeddedTable(t *testing.T) {
	// init() panics on a broken table; this re-parses to surface errors as
	// test failures with messages instead.
	parsed, err := parseTable(rawTable)
	if err != nil {
		t.Fatalf("parseTable() error: %v", err)
	}

	for key, def := range parsed {
		if def.Name == "" {
			t.Errorf("category %q has empty name", key)
		}
		if !strings.Contains(def.PromptTemplate, "{topic}") {
			t.Errorf("category %q template missing {topic}: %q", key, def.PromptTemplate)
		}
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("facts"); !ok {
		t.Error("Lookup(facts) should succeed")
	}
	if _, ok := Lookup("bogus"); ok {
		t.Error("Lookup(bogus) should fail")
	}
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		expected []string
	}{
		{
			name:     "all known",
			keys:     []string{"facts", "history"},
			expected: nil,
		},
		{
			name:     "one unknown",
			keys:     []string{"facts", "bogus"},
			expected: []string{"bogus"},
		},
		{
			name:     "preserves input order",
			keys:     []string{"zzz", "facts", "aaa"},
			expected: []string{"zzz", "aaa"},
		},
		{
			name:     "empty input",
			keys:     nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Invalid(tt.keys)
			if len(got) != len(tt.expected) {
				t.Fatalf("Invalid(%v) = %v, want %v", tt.keys, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Invalid(%v)[%d] = %q, want %q", tt.keys, i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestParseTableErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not yaml", raw: "{{{"},
		{name: "empty table", raw: ""},
		{name: "missing name", raw: "facts:\n  prompt_template: \"about {topic}\"\n"},
		{name: "missing placeholder", raw: "facts:\n  name: Facts\n  prompt_template: \"no placeholder\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseTable([]byte(tt.raw)); err == nil {
				t.Error("parseTable() should have returned error")
			}
		})
	}
}
