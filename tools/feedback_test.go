package tools_test

import (
	"context"
	"testing"

	"github.com/petasbytes/sous-chef/tools"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFeedback_LikeThenDislike(t *testing.T) {
	env := newEnv(t)

	res := tools.AddFeedback(context.Background(), env, map[string]any{"recipe_name": "Pad Thai", "feedback": "like"})
	require.Equal(t, tools.KindSuccess, res.Kind)
	assert.Equal(t, "Feedback for 'Pad Thai' received.", res.Message)
	assert.Equal(t, []string{"pad thai"}, env.record.LikedRecipes())

	tools.AddFeedback(context.Background(), env, map[string]any{"recipe_name": "pad thai ", "feedback": "DISLIKE"})
	assert.Empty(t, env.record.LikedRecipes())
	assert.Equal(t, []string{"pad thai"}, env.record.DislikedRecipes())
	assert.Equal(t, 2, env.persists)
}

func TestAddFeedback_UnknownValueAcknowledged(t *testing.T) {
	env := newEnv(t)
	res := tools.AddFeedback(context.Background(), env, map[string]any{"recipe_name": "Soup", "feedback": "meh"})

	require.Equal(t, tools.KindSuccess, res.Kind)
	assert.Empty(t, env.record.LikedRecipes())
	assert.Empty(t, env.record.DislikedRecipes())
}

func TestAddFeedback_MissingFeedback(t *testing.T) {
	env := newEnv(t)
	res := tools.AddFeedback(context.Background(), env, map[string]any{"recipe_name": "Soup"})

	require.True(t, res.IsError())
	assert.True(t, errors.Is(res.Err, tools.ErrMissingParam))
	assert.Contains(t, res.Message, `"feedback"`)
	assert.Equal(t, 0, env.persists)
}
