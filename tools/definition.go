package tools

import (
	"context"

	"github.com/invopop/jsonschema"
)

// ToolFunc runs one tool call. params is the decoded tool_params value as the
// model sent it.
type ToolFunc func(ctx context.Context, env Env, params any) Result

type ToolDefinition struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"parameters"`
	Function    ToolFunc           `json:"-"`
}

// GenerateSchema reflects T into an inline object schema.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	schema.Version = ""
	return schema
}
