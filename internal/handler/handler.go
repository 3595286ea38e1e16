// Package handler provides the Lambda handler for batch content generation.
package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/NikitaForGit/lambda-generate-content/internal/category"
	"github.com/NikitaForGit/lambda-generate-content/internal/domain"
	"github.com/NikitaForGit/lambda-generate-content/internal/gateway"
)

// Generator produces an article for one (topic, category) pair.
type Generator interface {
	Generate(ctx context.Context, topic, category string) (domain.Article, error)
}

// Persister renders and stores one article, returning the object key.
type Persister interface {
	Persist(ctx context.Context, topic, category string, article domain.Article) (string, error)
}

// Handler orchestrates a batch generation request.
type Handler struct {
	Generator Generator
	Persister Persister
	Bucket    string

	// Now stamps completed pages; overridable in tests.
	Now func() time.Time
}

// New creates a Handler wired to a generator and persister.
func New(gen Generator, per Persister, bucket string) *Handler {
	return &Handler{
		Generator: gen,
		Persister: per,
		Bucket:    bucket,
		Now:       time.Now,
	}
}

// Handle processes one gateway event: validate, iterate topics×categories,
// and report the aggregate outcome. Validation problems abort the request
// with a 4xx/5xx before any generation; once processing starts, per-pair
// failures are collected and the batch always runs to completion with a 200.
func (h *Handler) Handle(ctx context.Context, event gateway.Event) events.APIGatewayProxyResponse {
	method := event.Method()

	// CORS preflight.
	if method == http.MethodOptions {
		return gateway.Respond(http.StatusOK, map[string]string{}, nil)
	}
	if method != http.MethodPost {
		return gateway.Respond(http.StatusMethodNotAllowed, domain.ErrorResponse{Error: "Method not allowed"}, nil)
	}

	var req domain.GenerateRequest
	event.DecodeBody(&req)

	if len(req.Topics) == 0 {
		return gateway.Respond(http.StatusBadRequest, domain.ErrorResponse{Error: "At least one topic is required"}, nil)
	}
	if len(req.Categories) == 0 {
		return gateway.Respond(http.StatusBadRequest, domain.ErrorResponse{Error: "At least one category is required"}, nil)
	}
	if invalid := category.Invalid(req.Categories); len(invalid) > 0 {
		return gateway.Respond(http.StatusBadRequest, domain.ErrorResponse{
			Error: fmt.Sprintf("Invalid categories: %v", invalid),
		}, nil)
	}
	if h.Bucket == "" {
		return gateway.Respond(http.StatusInternalServerError, domain.ErrorResponse{Error: "OUTPUT_BUCKET_NAME not configured"}, nil)
	}

	log.Info().
		Int("topics", len(req.Topics)).
		Int("categories", len(req.Categories)).
		Msg("Starting batch generation")

	generated := []domain.GeneratedPage{}
	failed := []domain.Failure{}

	for _, topic := range req.Topics {
		for _, cat := range req.Categories {
			key, err := h.processPair(ctx, topic, cat)
			if err != nil {
				log.Error().Err(err).Str("topic", topic).Str("category", cat).Msg("Pair failed")
				failed = append(failed, domain.Failure{
					Topic:    topic,
					Category: cat,
					Error:    err.Error(),
				})
				continue
			}

			generated = append(generated, domain.GeneratedPage{
				Topic:      topic,
				Category:   cat,
				OutputPath: key,
				CreatedAt:  h.Now().UTC().Format(time.RFC3339),
			})
		}
	}

	outcome := domain.BatchOutcome{
		Success:        len(failed) == 0,
		Generated:      generated,
		Failed:         failed,
		TotalGenerated: len(generated),
		Message:        summarize(len(generated), len(failed)),
	}

	log.Info().
		Int("generated", outcome.TotalGenerated).
		Int("failed", len(failed)).
		Msg("Batch complete")

	return gateway.Respond(http.StatusOK, outcome, nil)
}

// processPair runs the generate-then-persist sequence for one pair. The pair
// is atomic: a persistence failure discards the generated article.
func (h *Handler) processPair(ctx context.Context, topic, cat string) (string, error) {
	article, err := h.Generator.Generate(ctx, topic, cat)
	if err != nil {
		return "", err
	}
	return h.Persister.Persist(ctx, topic, cat, article)
}

func summarize(generated, failed int) string {
	if failed > 0 {
		return fmt.Sprintf("Generated %d pages. %d failed.", generated, failed)
	}
	return fmt.Sprintf("Successfully generated %d pages.", generated)
}
