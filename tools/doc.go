// Package tools defines the kitchen tools the model can invoke and how a tool
// call is dispatched.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, handler.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - Pantry tools: add_to_pantry, remove_from_pantry, view_pantry.
//   - add_feedback, generate_meal_plan, generate_recipe, create_calendar_file.
//
// Handlers never return a Go error; failures are error-kind Results carrying
// the cause in Result.Err.
package tools
