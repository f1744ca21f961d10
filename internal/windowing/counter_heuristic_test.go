package windowing_test

import (
	"testing"

	"github.com/petasbytes/sous-chef/internal/windowing"
	"github.com/petasbytes/sous-chef/memory"
	"github.com/stretchr/testify/assert"
)

// The per-message overhead is part of the budget contract.
func TestHeuristicCounter_CountsRunes(t *testing.T) {
	h := windowing.HeuristicCounter{}
	// ASCII + multibyte
	assert.Equal(t, 5+4, h.CountMessage(u("héllo")))
	assert.Equal(t, 4, h.CountMessage(u("")), "empty message costs the overhead only")
}

func TestHeuristicCounter_CountGroup(t *testing.T) {
	h := windowing.HeuristicCounter{}
	msgs := []memory.Message{u("abc"), a("de"), u("f")}

	got := h.CountGroup(windowing.Group{Kind: windowing.GroupExchange, Start: 0, End: 2}, msgs)
	assert.Equal(t, (3+4)+(2+4), got)

	// End past the slice is clamped
	got = h.CountGroup(windowing.Group{Start: 2, End: 5}, msgs)
	assert.Equal(t, 1+4, got)
}
