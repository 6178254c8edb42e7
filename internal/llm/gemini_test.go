package llm

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestNewGeminiRequiresAPIKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "", zap.NewNop())
	if err == nil {
		t.Fatal("expected error for empty API key")
	}
}

func TestNewGeminiDefaultsModel(t *testing.T) {
	g, err := NewGemini(context.Background(), "test-key", "", nil)
	if err != nil {
		t.Fatalf("NewGemini: %v", err)
	}
	if g.Model() != DefaultModel {
		t.Errorf("Model() = %q, want %q", g.Model(), DefaultModel)
	}
}
