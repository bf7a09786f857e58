// Package gemini is the Gemini API planner backend, authenticated with an
// API key.
package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/SuedePritch/auditagents/internal/planner"
)

// Provider talks to the Gemini API with an API key.
type Provider struct {
	client *genai.Client
	model  string
}

// New creates the provider. The API key is required; without it the
// process cannot do anything useful, so callers treat an error here as
// fatal at startup.
func New(ctx context.Context, apiKey, model string) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Provider{client: client, model: model}, nil
}

// Close releases the underlying API client.
func (p *Provider) Close() error {
	return p.client.Close()
}

func (p *Provider) Name() string {
	return "gemini:" + p.model
}

// NewSession configures a generative model with the system prompt and tool
// catalog and starts a chat.
func (p *Provider) NewSession(_ context.Context, systemPrompt string, tools []planner.ToolDecl) (planner.Session, error) {
	model := p.client.GenerativeModel(p.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, t := range tools {
		s, err := toSchema(t.Params)
		if err != nil {
			return nil, fmt.Errorf("gemini: tool %s: %w", t.Name, err)
		}
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  s,
		})
	}
	if len(decls) > 0 {
		model.Tools = []*genai.Tool{{FunctionDeclarations: decls}}
	}

	return &session{chat: model.StartChat()}, nil
}

type session struct {
	chat *genai.ChatSession
}

func (s *session) Send(ctx context.Context, text string) (*planner.Turn, error) {
	resp, err := s.chat.SendMessage(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("gemini: send message: %w", err)
	}
	return toTurn(resp)
}

func (s *session) Reply(ctx context.Context, results []planner.ToolResult) (*planner.Turn, error) {
	parts := make([]genai.Part, 0, len(results))
	for _, r := range results {
		parts = append(parts, genai.FunctionResponse{
			Name:     r.Name,
			Response: r.Response,
		})
	}
	resp, err := s.chat.SendMessage(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini: send tool results: %w", err)
	}
	return toTurn(resp)
}

func toTurn(resp *genai.GenerateContentResponse) (*planner.Turn, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini: no candidates in response")
	}
	turn := &planner.Turn{}
	for _, part := range resp.Candidates[0].Content.Parts {
		switch v := part.(type) {
		case genai.Text:
			turn.Text += string(v)
		case genai.FunctionCall:
			turn.Calls = append(turn.Calls, planner.ToolCall{
				Name: v.Name,
				Args: v.Args,
			})
		}
	}
	return turn, nil
}

func toSchema(s *planner.Schema) (*genai.Schema, error) {
	if s == nil {
		return &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}}, nil
	}
	out := &genai.Schema{
		Description: s.Description,
		Required:    s.Required,
	}
	switch s.Type {
	case planner.TypeObject:
		out.Type = genai.TypeObject
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			converted, err := toSchema(prop)
			if err != nil {
				return nil, err
			}
			out.Properties[name] = converted
		}
	case planner.TypeString:
		out.Type = genai.TypeString
	case planner.TypeInteger:
		out.Type = genai.TypeInteger
	case planner.TypeNumber:
		out.Type = genai.TypeNumber
	case planner.TypeBoolean:
		out.Type = genai.TypeBoolean
	case planner.TypeArray:
		out.Type = genai.TypeArray
		items, err := toSchema(s.Items)
		if err != nil {
			return nil, err
		}
		out.Items = items
	default:
		return nil, fmt.Errorf("unsupported schema type %q", s.Type)
	}
	return out, nil
}
