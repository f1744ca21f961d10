package tools

import "context"

type FeedbackInput struct {
	RecipeName string `json:"recipe_name" jsonschema_description:"The name of the recipe."`
	Feedback   string `json:"feedback" jsonschema:"enum=like,enum=dislike" jsonschema_description:"The feedback ('like' or 'dislike')."`
}

const (
	addFeedbackName = "add_feedback"
)

var AddFeedbackDefinition = ToolDefinition{
	Name:        addFeedbackName,
	Description: "Add user feedback for a recipe. Expects a JSON object with 'recipe_name' (string) and 'feedback' (string: 'like' or 'dislike').",
	InputSchema: GenerateSchema[FeedbackInput](),
	Function:    AddFeedback,
}

// AddFeedback records a like or dislike. A feedback value other than like or
// dislike leaves the record unchanged but is still acknowledged.
func AddFeedback(ctx context.Context, env Env, params any) Result {
	var in FeedbackInput
	if err := decodeParams(params, &in, "recipe_name", "feedback"); err != nil {
		return paramFailure(addFeedbackName, err)
	}
	env.Record().AddFeedback(in.RecipeName, in.Feedback)
	if res, failed := persist(ctx, env); failed {
		return res
	}
	return Success("Feedback for '" + in.RecipeName + "' received.")
}
