package tools

import (
	"context"
)

// Registry returns all tool definitions wired for the agent
func Registry() []ToolDefinition {
	return []ToolDefinition{
		AddToPantryDefinition,
		RemoveFromPantryDefinition,
		AddFeedbackDefinition,
		ViewPantryDefinition,
		GenerateMealPlanDefinition,
		GenerateRecipeDefinition,
		CreateCalendarFileDefinition,
	}
}

// Lookup finds a definition by exact name.
func Lookup(defs []ToolDefinition, name string) (ToolDefinition, bool) {
	for _, d := range defs {
		if d.Name == name {
			return d, true
		}
	}
	return ToolDefinition{}, false
}

// Dispatch runs the named tool, or returns an "Unknown tool" error result.
func Dispatch(ctx context.Context, defs []ToolDefinition, env Env, name string, params any) Result {
	def, ok := Lookup(defs, name)
	if !ok {
		return Failed("Unknown tool: "+name, &toolError{ErrUnknownTool, name})
	}
	return def.Function(ctx, env, params)
}
