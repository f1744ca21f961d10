package windowing_test

import (
	"testing"

	"github.com/petasbytes/sous-chef/internal/windowing"
	"github.com/petasbytes/sous-chef/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupExchanges_PairsUserThenAssistant(t *testing.T) {
	msgs := []memory.Message{u("q1"), a("r1"), u("q2"), a("r2"), u("q3")}

	assert.Equal(t, []windowing.Group{
		{Kind: windowing.GroupExchange, Start: 0, End: 2},
		{Kind: windowing.GroupExchange, Start: 2, End: 4},
		{Kind: windowing.GroupSingleton, Start: 4, End: 5},
	}, windowing.GroupExchanges(msgs))
}

func TestGroupExchanges_LoneMessagesStandAlone(t *testing.T) {
	// assistant first, then two users in a row
	msgs := []memory.Message{a("hello"), u("x"), u("y"), a("z")}
	got := windowing.GroupExchanges(msgs)

	require.Len(t, got, 3)
	assert.Equal(t, windowing.GroupSingleton, got[0].Kind, "leading assistant")
	assert.Equal(t, windowing.GroupSingleton, got[1].Kind, "unanswered user")
	assert.Equal(t, windowing.Group{Kind: windowing.GroupExchange, Start: 2, End: 4}, got[2])
}

func TestGroupExchanges_OrphanThenMixed(t *testing.T) {
	msgs := []memory.Message{a("orphan"), u("q1"), a("r1"), u("q2"), u("q3"), a("r3")}

	assert.Equal(t, []windowing.Group{
		{Kind: windowing.GroupSingleton, Start: 0, End: 1},
		{Kind: windowing.GroupExchange, Start: 1, End: 3},
		{Kind: windowing.GroupSingleton, Start: 3, End: 4},
		{Kind: windowing.GroupExchange, Start: 4, End: 6},
	}, windowing.GroupExchanges(msgs))
}

func TestGroupExchanges_Empty(t *testing.T) {
	assert.Empty(t, windowing.GroupExchanges(nil))
}
