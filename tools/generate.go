package tools

import (
	"context"
)

type MealPlanInput struct {
	Days        int    `json:"days,omitempty" jsonschema_description:"Number of days for the meal plan (e.g., 3)."`
	Diet        string `json:"diet,omitempty" jsonschema_description:"Dietary restrictions (e.g., 'vegetarian', 'vegan')."`
	Preferences string `json:"preferences,omitempty" jsonschema_description:"General meal preferences (e.g., 'quick meals', 'high protein')."`
}

type RecipeInput struct {
	ExtraIngredients string `json:"extra_ingredients,omitempty" jsonschema_description:"Additional ingredients to include (e.g., 'chicken, bell peppers')."`
	DietaryNeeds     string `json:"dietary_needs,omitempty" jsonschema_description:"Specific dietary requirements (e.g., 'gluten-free', 'low-carb')."`
	CookingTime      string `json:"cooking_time,omitempty" jsonschema_description:"Maximum cooking time (e.g., '30 minutes')."`
}

const (
	generateMealPlanName = "generate_meal_plan"
	generateRecipeName   = "generate_recipe"

	defaultPlanDays = 3
	defaultPlanDiet = "any"
)

var GenerateMealPlanDefinition = ToolDefinition{
	Name:        generateMealPlanName,
	Description: "Generates a meal plan based on specified days, diet, and preferences. Returns a JSON object with a 'plan' key.",
	InputSchema: GenerateSchema[MealPlanInput](),
	Function:    GenerateMealPlan,
}

var GenerateRecipeDefinition = ToolDefinition{
	Name:        generateRecipeName,
	Description: "Generates a recipe based on pantry items, extra ingredients, dietary needs, and cooking time. Returns a JSON object with recipe details.",
	InputSchema: GenerateSchema[RecipeInput](),
	Function:    GenerateRecipe,
}

// GenerateMealPlan asks the model for a {"plan": [...]} object and returns
// whatever the reply classifies as.
func GenerateMealPlan(ctx context.Context, env Env, params any) Result {
	in := MealPlanInput{Days: defaultPlanDays, Diet: defaultPlanDiet}
	if err := decodeParams(params, &in); err != nil {
		return paramFailure(generateMealPlanName, err)
	}
	prompt, err := MealPlanPrompt(in)
	if err != nil {
		return Failed("Failed to build meal plan prompt: "+err.Error(), err)
	}
	return env.Generate(ctx, prompt)
}

// GenerateRecipe asks the model for a recipe object seeded with the pantry and
// the user's recipe feedback.
func GenerateRecipe(ctx context.Context, env Env, params any) Result {
	var in RecipeInput
	if err := decodeParams(params, &in); err != nil {
		return paramFailure(generateRecipeName, err)
	}
	prompt, err := RecipePrompt(in, env)
	if err != nil {
		return Failed("Failed to build recipe prompt: "+err.Error(), err)
	}
	return env.Generate(ctx, prompt)
}

func MealPlanPrompt(in MealPlanInput) (string, error) {
	return render("meal_plan.md.tmpl", mealPlanValues(in))
}

func RecipePrompt(in RecipeInput, env Env) (string, error) {
	rec := env.Record()
	return render("recipe.md.tmpl", recipeValues{
		Pantry:           rec.PantryItems(),
		ExtraIngredients: in.ExtraIngredients,
		DietaryNeeds:     in.DietaryNeeds,
		CookingTime:      in.CookingTime,
		Liked:            rec.LikedRecipes(),
		Disliked:         rec.DislikedRecipes(),
	})
}
