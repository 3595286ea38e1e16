// Package gateway normalizes API Gateway events and builds response envelopes.
//
// API Gateway delivers two event shapes depending on the integration version:
// the REST API (v1) payload carries the method in a top-level httpMethod field,
// while the HTTP API (v2) payload nests it under requestContext.http.method.
// This Lambda has to answer both, so Event captures the fields of both shapes
// and resolves them with a fixed fallback order.
package gateway

import (
	"encoding/base64"
	"encoding/json"
)

// Event is the subset of an API Gateway proxy event this Lambda reads.
type Event struct {
	HTTPMethod     string `json:"httpMethod"`
	RequestContext struct {
		HTTP struct {
			Method string `json:"method"`
		} `json:"http"`
	} `json:"requestContext"`
	Body            string `json:"body"`
	IsBase64Encoded bool   `json:"isBase64Encoded"`
}

// Parse decodes a raw Lambda payload into an Event. Unknown fields are
// ignored; a payload that is not a JSON object yields a zero Event.
func Parse(raw json.RawMessage) Event {
	var e Event
	_ = json.Unmarshal(raw, &e)
	return e
}

// Method returns the HTTP method of the event. The v2 location wins when
// present, then the v1 field; an event carrying neither defaults to GET.
func (e Event) Method() string {
	if m := e.RequestContext.HTTP.Method; m != "" {
		return m
	}
	if e.HTTPMethod != "" {
		return e.HTTPMethod
	}
	return "GET"
}

// DecodeBody unmarshals the event body into v. A base64-encoded body is
// decoded first. Missing bodies, bad base64, and malformed JSON all leave v
// untouched; request validation rejects the resulting empty request, so the
// caller never needs to distinguish a bad body from an absent one.
func (e Event) DecodeBody(v any) {
	body := e.Body
	if body == "" {
		return
	}

	if e.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return
		}
		body = string(decoded)
	}

	if !json.Valid([]byte(body)) {
		return
	}
	_ = json.Unmarshal([]byte(body), v)
}
