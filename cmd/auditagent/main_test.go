package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/SuedePritch/auditagents/internal/mockops"
	"github.com/SuedePritch/auditagents/internal/tools"
)

type catalogParams struct {
	Zebra    string `json:"zebra,omitempty" description:"last alphabetically"`
	Alpha    string `json:"alpha,omitempty" description:"first alphabetically"`
	Middle   string `json:"middle,omitempty" description:"between the two"`
	Required string `json:"required_field" description:"always present"`
}

func TestPrintCatalog_OptionalFieldsSorted(t *testing.T) {
	registry := tools.NewRegistry()
	err := registry.Register("catalog_fixture", "ordering fixture", func(ctx context.Context, p catalogParams) (string, error) {
		return "", nil
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	var buf bytes.Buffer
	printCatalog(&buf, registry)

	out := buf.String()
	alpha := strings.Index(out, "alpha (")
	middle := strings.Index(out, "middle (")
	zebra := strings.Index(out, "zebra (")
	if alpha < 0 || middle < 0 || zebra < 0 {
		t.Fatalf("optional fields missing from catalog:\n%s", out)
	}
	if !(alpha < middle && middle < zebra) {
		t.Errorf("optional fields not in sorted order:\n%s", out)
	}
	if req := strings.Index(out, "required_field ("); req < 0 || req > alpha {
		t.Errorf("required fields must precede optional ones:\n%s", out)
	}
}

func TestPrintCatalog_OutputIsStable(t *testing.T) {
	store := mockops.New()
	registry, err := tools.NewAuditRegistry(tools.Deps{Store: store})
	if err != nil {
		t.Fatalf("NewAuditRegistry: %v", err)
	}

	var first bytes.Buffer
	printCatalog(&first, registry)
	for i := 0; i < 5; i++ {
		var again bytes.Buffer
		printCatalog(&again, registry)
		if first.String() != again.String() {
			t.Fatalf("catalog output varied between runs:\n--- first ---\n%s\n--- run %d ---\n%s", first.String(), i, again.String())
		}
	}
	if !strings.Contains(first.String(), "list_facilities") {
		t.Errorf("catalog missing list_facilities:\n%s", first.String())
	}
}
