package observability_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"video-catalog-api/internal/config"
	"video-catalog-api/internal/infrastructure/observability"
)

func TestSetup_Disabled(t *testing.T) {
	configs := []*config.Config{
		{EnableTracing: false, OTLPEndpoint: "collector:4318"},
		{EnableTracing: true, OTLPEndpoint: ""},
	}

	for _, cfg := range configs {
		shutdown, err := observability.Setup(context.Background(), cfg, zerolog.Nop())
		if err != nil {
			t.Fatalf("disabled setup must not fail: %v", err)
		}
		if shutdown == nil {
			t.Fatal("expected a no-op shutdown function")
		}
		if err := shutdown(context.Background()); err != nil {
			t.Errorf("no-op shutdown returned error: %v", err)
		}
	}
}
