package tools

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/SuedePritch/auditagents/internal/planner"
)

// schemaFromStruct builds the input schema for a tool from its parameter
// struct using reflection. Field names come from `json` tags, descriptions
// from `description` tags; fields tagged omitempty are optional, everything
// else is required.
func schemaFromStruct(paramType reflect.Type) (*planner.Schema, error) {
	schema := &planner.Schema{
		Type:       planner.TypeObject,
		Properties: make(map[string]*planner.Schema),
	}

	for i := 0; i < paramType.NumField(); i++ {
		field := paramType.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" || jsonTag == "-" {
			continue
		}

		parts := strings.Split(jsonTag, ",")
		propName := parts[0]

		optional := false
		for _, part := range parts[1:] {
			if part == "omitempty" {
				optional = true
				break
			}
		}
		if !optional {
			schema.Required = append(schema.Required, propName)
		}

		prop, err := schemaForType(field.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		prop.Description = field.Tag.Get("description")
		schema.Properties[propName] = prop
	}

	return schema, nil
}

func schemaForType(t reflect.Type) (*planner.Schema, error) {
	switch t.Kind() {
	case reflect.String:
		return &planner.Schema{Type: planner.TypeString}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &planner.Schema{Type: planner.TypeInteger}, nil
	case reflect.Float32, reflect.Float64:
		return &planner.Schema{Type: planner.TypeNumber}, nil
	case reflect.Bool:
		return &planner.Schema{Type: planner.TypeBoolean}, nil
	case reflect.Slice:
		items, err := schemaForType(t.Elem())
		if err != nil {
			return nil, err
		}
		return &planner.Schema{Type: planner.TypeArray, Items: items}, nil
	default:
		return nil, fmt.Errorf("unsupported kind %s", t.Kind())
	}
}
