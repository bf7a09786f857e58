package vertex

import (
	"context"
	"testing"

	"cloud.google.com/go/vertexai/genai"

	"github.com/SuedePritch/auditagents/internal/planner"
)

func TestNew_RequiresProject(t *testing.T) {
	if _, err := New(context.Background(), "", "us-central1", "gemini-1.5-flash"); err == nil {
		t.Fatal("expected error without project")
	}
}

func TestToSchema_KindMapping(t *testing.T) {
	in := &planner.Schema{
		Type: planner.TypeObject,
		Properties: map[string]*planner.Schema{
			"facility_id": {Type: planner.TypeString},
			"top_k":       {Type: planner.TypeInteger},
			"threshold":   {Type: planner.TypeNumber},
			"dry_run":     {Type: planner.TypeBoolean},
		},
		Required: []string{"facility_id"},
	}

	out, err := toSchema(in)
	if err != nil {
		t.Fatalf("toSchema: %v", err)
	}
	want := map[string]genai.Type{
		"facility_id": genai.TypeString,
		"top_k":       genai.TypeInteger,
		"threshold":   genai.TypeNumber,
		"dry_run":     genai.TypeBoolean,
	}
	for name, kind := range want {
		if out.Properties[name].Type != kind {
			t.Errorf("%s: expected %v, got %v", name, kind, out.Properties[name].Type)
		}
	}
}
