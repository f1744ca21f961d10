package windowing

import (
	"unicode/utf8"

	"github.com/petasbytes/sous-chef/memory"
)

// TokenCounter estimates input cost for messages or groups.
type TokenCounter interface {
	CountMessage(m memory.Message) int
	CountGroup(g Group, all []memory.Message) int
}

// HeuristicCounter is the default deterministic estimator: the rune count of the
// message text plus a small fixed per-message overhead.
type HeuristicCounter struct{}

// Fixed per-message overhead; TestHeuristicCounter_CountsRunes pins it.
const messageOverhead = 4

func (HeuristicCounter) CountMessage(m memory.Message) int {
	return utf8.RuneCountInString(m.Text) + messageOverhead
}

func (h HeuristicCounter) CountGroup(g Group, all []memory.Message) int {
	total := 0
	for i := g.Start; i < g.End && i < len(all); i++ {
		total += h.CountMessage(all[i])
	}
	return total
}
