package tools

import (
	"context"
	"strings"
)

type PantryInput struct {
	Ingredients []string `json:"ingredients" jsonschema_description:"A list of ingredients."`
}

type ViewPantryInput struct{}

const (
	addToPantryName      = "add_to_pantry"
	removeFromPantryName = "remove_from_pantry"
	viewPantryName       = "view_pantry"
)

var AddToPantryDefinition = ToolDefinition{
	Name:        addToPantryName,
	Description: "Add a list of ingredients to the user's pantry. Expects a JSON object with an 'ingredients' key, which is a list of strings.",
	InputSchema: GenerateSchema[PantryInput](),
	Function:    AddToPantry,
}

var RemoveFromPantryDefinition = ToolDefinition{
	Name:        removeFromPantryName,
	Description: "Remove a list of ingredients from the user's pantry. Expects a JSON object with an 'ingredients' key, which is a list of strings.",
	InputSchema: GenerateSchema[PantryInput](),
	Function:    RemoveFromPantry,
}

var ViewPantryDefinition = ToolDefinition{
	Name:        viewPantryName,
	Description: "View the current contents of the user's pantry. Does not require any parameters.",
	InputSchema: GenerateSchema[ViewPantryInput](),
	Function:    ViewPantry,
}

func AddToPantry(ctx context.Context, env Env, params any) Result {
	var in PantryInput
	if err := decodeParams(params, &in, "ingredients"); err != nil {
		return paramFailure(addToPantryName, err)
	}
	env.Record().AddToPantry(in.Ingredients)
	if res, failed := persist(ctx, env); failed {
		return res
	}
	return Success("Added " + listText(in.Ingredients) + " to pantry.")
}

func RemoveFromPantry(ctx context.Context, env Env, params any) Result {
	var in PantryInput
	if err := decodeParams(params, &in, "ingredients"); err != nil {
		return paramFailure(removeFromPantryName, err)
	}
	env.Record().RemoveFromPantry(in.Ingredients)
	if res, failed := persist(ctx, env); failed {
		return res
	}
	return Success("Removed " + listText(in.Ingredients) + " from pantry.")
}

// ViewPantry ignores its parameters.
func ViewPantry(_ context.Context, env Env, _ any) Result {
	return Result{Kind: KindPantry, Pantry: env.Record().PantryItems()}
}

func persist(ctx context.Context, env Env) (Result, bool) {
	if err := env.Persist(ctx); err != nil {
		return Failed("Failed to save memory: "+err.Error(), &toolError{ErrPersist, err.Error()}), true
	}
	return Result{}, false
}

// listText renders items as given, e.g. "[eggs, Milk]".
func listText(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
