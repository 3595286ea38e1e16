// Package main is the entry point for the content generation Lambda function.
package main

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/NikitaForGit/lambda-generate-content/internal/gateway"
	"github.com/NikitaForGit/lambda-generate-content/internal/generator"
	"github.com/NikitaForGit/lambda-generate-content/internal/handler"
	"github.com/NikitaForGit/lambda-generate-content/internal/storage"
)

const defaultModelID = "anthropic.claude-3-haiku-20240307-v1:0"

// Clients and configuration initialized once at cold start and reused across
// invocations.
var h *handler.Handler

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if level, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL"))); err == nil && level != zerolog.NoLevel {
		zerolog.SetGlobalLevel(level)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load AWS config")
	}

	modelID := os.Getenv("BEDROCK_MODEL_ID")
	if modelID == "" {
		modelID = defaultModelID
	}

	// An empty bucket is not fatal here: OPTIONS and validation must still
	// answer, so the handler reports it per request as a 500.
	bucket := os.Getenv("OUTPUT_BUCKET_NAME")
	if bucket == "" {
		log.Warn().Msg("OUTPUT_BUCKET_NAME not set; generation requests will fail")
	}

	gen := generator.New(generator.NewBedrock(bedrockruntime.NewFromConfig(cfg), modelID))
	per := storage.NewPersister(storage.NewS3Store(s3.NewFromConfig(cfg), bucket))
	h = handler.New(gen, per, bucket)

	log.Info().Str("model", modelID).Str("bucket", bucket).Msg("Cold start complete")
}

func main() {
	lambda.Start(handleRequest)
}

func handleRequest(ctx context.Context, event json.RawMessage) (interface{}, error) {
	// Warmup detection (MUST be first - before any other processing)
	if warmup, ok := IsWarmupEvent(event); ok {
		return HandleWarmup(ctx, warmup)
	}

	// Request-level problems are reported inside the envelope; returning a Go
	// error here would make API Gateway answer 502 instead.
	return h.Handle(ctx, gateway.Parse(event)), nil
}
