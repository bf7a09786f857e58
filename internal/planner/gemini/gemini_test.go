package gemini

import (
	"context"
	"os"
	"testing"

	"github.com/google/generative-ai-go/genai"

	"github.com/SuedePritch/auditagents/internal/planner"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := New(context.Background(), "", "gemini-1.5-flash-latest"); err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestToSchema_ObjectWithArray(t *testing.T) {
	in := &planner.Schema{
		Type: planner.TypeObject,
		Properties: map[string]*planner.Schema{
			"recipient": {Type: planner.TypeString, Description: "Email address"},
			"cc":        {Type: planner.TypeArray, Items: &planner.Schema{Type: planner.TypeString}},
		},
		Required: []string{"recipient"},
	}

	out, err := toSchema(in)
	if err != nil {
		t.Fatalf("toSchema: %v", err)
	}
	if out.Type != genai.TypeObject {
		t.Errorf("expected object type, got %v", out.Type)
	}
	if out.Properties["recipient"].Type != genai.TypeString {
		t.Errorf("recipient: expected string, got %v", out.Properties["recipient"].Type)
	}
	if out.Properties["recipient"].Description != "Email address" {
		t.Errorf("description lost: %q", out.Properties["recipient"].Description)
	}
	cc := out.Properties["cc"]
	if cc.Type != genai.TypeArray || cc.Items == nil || cc.Items.Type != genai.TypeString {
		t.Errorf("cc: expected array of strings, got %+v", cc)
	}
	if len(out.Required) != 1 || out.Required[0] != "recipient" {
		t.Errorf("required not carried: %v", out.Required)
	}
}

func TestToSchema_NilIsEmptyObject(t *testing.T) {
	out, err := toSchema(nil)
	if err != nil {
		t.Fatalf("toSchema: %v", err)
	}
	if out.Type != genai.TypeObject || len(out.Properties) != 0 {
		t.Errorf("nil schema must become an empty object, got %+v", out)
	}
}

func TestToSchema_UnknownType(t *testing.T) {
	if _, err := toSchema(&planner.Schema{Type: "tuple"}); err == nil {
		t.Error("expected error for unknown schema type")
	}
}

// TestLiveSession exercises a real Gemini session end to end. It requires
// the GEMINI_API_KEY environment variable to be set.
func TestLiveSession(t *testing.T) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping test: GEMINI_API_KEY environment variable not set.")
	}

	ctx := context.Background()
	p, err := New(ctx, apiKey, "gemini-1.5-flash-latest")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close()

	session, err := p.NewSession(ctx, "You answer in one short sentence.", nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	turn, err := session.Send(ctx, "Say hello.")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if turn.Text == "" {
		t.Error("expected a text response from the model")
	}
}
