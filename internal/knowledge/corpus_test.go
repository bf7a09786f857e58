package knowledge_test

import (
	"context"
	"testing"

	"github.com/SuedePritch/auditagents/internal/knowledge"
)

func TestSearch_CalibrationQueryHitsDirective017(t *testing.T) {
	c := knowledge.NewDirectiveCorpus()

	res, err := c.Search(context.Background(), "What are the calibration requirements for gas metering equipment?", 3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Answer == "" {
		t.Fatal("expected non-empty answer")
	}
	if len(res.Sources) == 0 {
		t.Fatal("expected at least one source")
	}
	if res.Sources[0].Document != "AER Directive 017: Measurement Requirements" {
		t.Errorf("expected Directive 017 as top source, got %q", res.Sources[0].Document)
	}
	if res.Sources[0].Relevance <= 0 {
		t.Errorf("expected positive relevance, got %f", res.Sources[0].Relevance)
	}
}

func TestSearch_FlaringQueryHitsDirective060(t *testing.T) {
	c := knowledge.NewDirectiveCorpus()

	res, err := c.Search(context.Background(), "How often must flare stacks be inspected?", 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res.Sources) != 1 {
		t.Fatalf("topK=1 should return one source, got %d", len(res.Sources))
	}
	if res.Sources[0].Document != "AER Directive 060: Upstream Petroleum Industry Flaring" {
		t.Errorf("expected Directive 060, got %q", res.Sources[0].Document)
	}
}

func TestSearch_NoMatchIsError(t *testing.T) {
	c := knowledge.NewDirectiveCorpus()

	if _, err := c.Search(context.Background(), "zzzz qqqq wwww", 3); err == nil {
		t.Error("expected error for a query matching nothing")
	}
}

func TestSearch_CancelledContext(t *testing.T) {
	c := knowledge.NewDirectiveCorpus()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Search(ctx, "calibration", 3); err == nil {
		t.Error("expected error for cancelled context")
	}
}
