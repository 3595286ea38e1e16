package gateway

import (
	"encoding/base64"
	"encoding/json"
	"testing"
)

func TestEventMethod(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "v1 httpMethod",
			raw:      `{"httpMethod":"POST"}`,
			expected: "POST",
		},
		{
			name:     "v2 requestContext method",
			raw:      `{"requestContext":{"http":{"method":"POST"}}}`,
			expected: "POST",
		},
		{
			name:     "v2 wins over v1",
			raw:      `{"httpMethod":"GET","requestContext":{"http":{"method":"OPTIONS"}}}`,
			expected: "OPTIONS",
		},
		{
			name:     "neither present defaults to GET",
			raw:      `{}`,
			expected: "GET",
		},
		{
			name:     "non-object payload defaults to GET",
			raw:      `"warmup"`,
			expected: "GET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Parse(json.RawMessage(tt.raw))
			if got := e.Method(); got != tt.expected {
				t.Errorf("Method() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEventDecodeBody(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		expected map[string]any
	}{
		{
			name:     "missing body decodes to empty",
			event:    Event{},
			expected: map[string]any{},
		},
		{
			name:     "plain JSON body",
			event:    Event{Body: `{"topics":["go"]}`},
			expected: map[string]any{"topics": []any{"go"}},
		},
		{
			name: "base64 encoded body",
			event: Event{
				Body:            base64.StdEncoding.EncodeToString([]byte(`{"topics":["go"]}`)),
				IsBase64Encoded: true,
			},
			expected: map[string]any{"topics": []any{"go"}},
		},
		{
			name:     "malformed JSON decodes to empty",
			event:    Event{Body: `{"topics": [`},
			expected: map[string]any{},
		},
		{
			name:     "invalid base64 decodes to empty",
			event:    Event{Body: "not-base64!!!", IsBase64Encoded: true},
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := map[string]any{}
			tt.event.DecodeBody(&got)

			if len(got) != len(tt.expected) {
				t.Fatalf("DecodeBody() = %v, want %v", got, tt.expected)
			}
			for k := range tt.expected {
				if _, ok := got[k]; !ok {
					t.Errorf("DecodeBody() missing key %q", k)
				}
			}
		})
	}
}

func TestRespond(t *testing.T) {
	resp := Respond(200, map[string]string{"status": "ok"}, nil)

	if resp.StatusCode != 200 {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}
	if resp.Body != `{"status":"ok"}` {
		t.Errorf("Body = %q, want %q", resp.Body, `{"status":"ok"}`)
	}

	wantHeaders := map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET,POST,OPTIONS",
	}
	for k, v := range wantHeaders {
		if resp.Headers[k] != v {
			t.Errorf("Headers[%q] = %q, want %q", k, resp.Headers[k], v)
		}
	}
}

func TestRespondExtraHeadersOverride(t *testing.T) {
	resp := Respond(200, map[string]string{}, map[string]string{
		"Content-Type":  "text/plain",
		"Cache-Control": "no-store",
	})

	if resp.Headers["Content-Type"] != "text/plain" {
		t.Errorf("extra header should override default, got %q", resp.Headers["Content-Type"])
	}
	if resp.Headers["Cache-Control"] != "no-store" {
		t.Errorf("extra header should be added, got %q", resp.Headers["Cache-Control"])
	}
	if resp.Headers["Access-Control-Allow-Origin"] != "*" {
		t.Errorf("untouched defaults should remain, got %q", resp.Headers["Access-Control-Allow-Origin"])
	}
}
