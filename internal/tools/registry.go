// Package tools is the fixed catalog of operations the planner may invoke
// against the mock operational systems. Every operation declares an input
// schema, validates its arguments before touching any state, and returns a
// human-readable summary of what it did.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/SuedePritch/auditagents/internal/planner"
)

// SchemaError reports a tool call whose arguments do not match the tool's
// declared schema. It names the offending field so the planner can correct
// the call.
type SchemaError struct {
	Tool   string
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("tool %s: field %s: %s", e.Tool, e.Field, e.Reason)
}

// Registry holds the registered tools in registration order.
type Registry struct {
	names []string
	tools map[string]*tool
}

type tool struct {
	decl planner.ToolDecl
	run  func(ctx context.Context, args json.RawMessage) (string, error)
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*tool)}
}

var ctxType = reflect.TypeOf((*context.Context)(nil)).Elem()
var errType = reflect.TypeOf((*error)(nil)).Elem()

// Register adds a tool built from a function with the signature
// func(context.Context, T) (string, error) where T is a struct. The input
// schema is generated from T's json and description tags.
func (r *Registry) Register(name, description string, toolFunc any) error {
	val := reflect.ValueOf(toolFunc)
	if val.Kind() != reflect.Func {
		return fmt.Errorf("tool %s: toolFunc must be a function", name)
	}
	typ := val.Type()
	if typ.NumIn() != 2 || typ.NumOut() != 2 {
		return fmt.Errorf("tool %s: toolFunc must have the signature func(context.Context, T) (string, error)", name)
	}
	if !typ.In(0).Implements(ctxType) {
		return fmt.Errorf("tool %s: first argument must be context.Context", name)
	}
	paramType := typ.In(1)
	if paramType.Kind() != reflect.Struct {
		return fmt.Errorf("tool %s: second argument must be a struct", name)
	}
	if typ.Out(0).Kind() != reflect.String || !typ.Out(1).Implements(errType) {
		return fmt.Errorf("tool %s: toolFunc must return (string, error)", name)
	}

	schema, err := schemaFromStruct(paramType)
	if err != nil {
		return fmt.Errorf("tool %s: generate schema: %w", name, err)
	}

	run := func(ctx context.Context, args json.RawMessage) (string, error) {
		paramPtr := reflect.New(paramType)
		if err := json.Unmarshal(args, paramPtr.Interface()); err != nil {
			return "", &SchemaError{Tool: name, Field: "(arguments)", Reason: err.Error()}
		}
		results := val.Call([]reflect.Value{reflect.ValueOf(ctx), paramPtr.Elem()})
		out := results[0].String()
		if !results[1].IsNil() {
			return out, results[1].Interface().(error)
		}
		return out, nil
	}

	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool %s: already registered", name)
	}
	r.names = append(r.names, name)
	r.tools[name] = &tool{
		decl: planner.ToolDecl{Name: name, Description: description, Params: schema},
		run:  run,
	}
	return nil
}

// Declarations returns the tool catalog in registration order, for handing
// to the planner.
func (r *Registry) Declarations() []planner.ToolDecl {
	out := make([]planner.ToolDecl, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.tools[name].decl)
	}
	return out
}

// Dispatch validates the call against the tool's declared schema and, only
// if it passes, executes it. Validation happens before any state mutation.
func (r *Registry) Dispatch(ctx context.Context, call planner.ToolCall) (string, error) {
	t, ok := r.tools[call.Name]
	if !ok {
		toolErrors.WithLabelValues(call.Name, "unknown_tool").Inc()
		return "", fmt.Errorf("unknown tool %q", call.Name)
	}
	toolCalls.WithLabelValues(call.Name).Inc()

	if serr := validateArgs(call.Name, t.decl.Params, call.Args); serr != nil {
		toolErrors.WithLabelValues(call.Name, "schema").Inc()
		return "", serr
	}

	raw, err := json.Marshal(call.Args)
	if err != nil {
		toolErrors.WithLabelValues(call.Name, "schema").Inc()
		return "", &SchemaError{Tool: call.Name, Field: "(arguments)", Reason: err.Error()}
	}

	out, err := t.run(ctx, raw)
	if err != nil {
		toolErrors.WithLabelValues(call.Name, "execution").Inc()
		slog.Warn("tool execution failed", "tool", call.Name, "error", err)
		return out, err
	}
	return out, nil
}

// validateArgs checks required fields are present and every provided field
// has the JSON kind its schema declares.
func validateArgs(toolName string, schema *planner.Schema, args map[string]any) *SchemaError {
	if schema == nil {
		return nil
	}
	for _, field := range schema.Required {
		if _, ok := args[field]; !ok {
			return &SchemaError{Tool: toolName, Field: field, Reason: "required field missing"}
		}
	}
	for field, value := range args {
		prop, ok := schema.Properties[field]
		if !ok {
			// Planners occasionally invent extra arguments; they are
			// dropped at unmarshal time rather than rejected.
			continue
		}
		if value == nil {
			continue
		}
		if reason := kindMismatch(prop, value); reason != "" {
			return &SchemaError{Tool: toolName, Field: field, Reason: reason}
		}
	}
	return nil
}

func kindMismatch(prop *planner.Schema, value any) string {
	switch prop.Type {
	case planner.TypeString:
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("expected string, got %T", value)
		}
	case planner.TypeInteger, planner.TypeNumber:
		switch value.(type) {
		case float64, float32, int, int64:
		default:
			return fmt.Sprintf("expected number, got %T", value)
		}
	case planner.TypeBoolean:
		if _, ok := value.(bool); !ok {
			return fmt.Sprintf("expected boolean, got %T", value)
		}
	case planner.TypeArray:
		items, ok := value.([]any)
		if !ok {
			return fmt.Sprintf("expected array, got %T", value)
		}
		if prop.Items != nil {
			for i, item := range items {
				if reason := kindMismatch(prop.Items, item); reason != "" {
					return fmt.Sprintf("element %d: %s", i, reason)
				}
			}
		}
	}
	return ""
}
