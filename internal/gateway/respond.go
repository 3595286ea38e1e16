package gateway

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
)

// defaultHeaders are attached to every response. The wildcard origin and the
// header/method allow-lists serve the CORS preflight contract.
var defaultHeaders = map[string]string{
	"Content-Type":                 "application/json",
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token",
	"Access-Control-Allow-Methods": "GET,POST,OPTIONS",
}

// Respond wraps a status code and payload into an API Gateway proxy response.
// Entries in extra override the default headers. Payloads are plain structs
// and maps with JSON-native fields, so serialization cannot fail; a payload
// that somehow resists marshaling degrades to an empty object rather than
// breaking the envelope.
func Respond(status int, payload any, extra map[string]string) events.APIGatewayProxyResponse {
	headers := make(map[string]string, len(defaultHeaders)+len(extra))
	for k, v := range defaultHeaders {
		headers[k] = v
	}
	for k, v := range extra {
		headers[k] = v
	}

	body, err := json.Marshal(payload)
	if err != nil {
		body = []byte("{}")
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(body),
	}
}
