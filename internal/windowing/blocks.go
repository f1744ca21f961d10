package windowing

import "github.com/petasbytes/sous-chef/memory"

// GroupKind denotes the atomic unit type when preparing a send window.
type GroupKind int

const (
	GroupSingleton GroupKind = iota
	GroupExchange
)

// Group describes a contiguous span of messages [Start, End) in the original slice.
type Group struct {
	Kind  GroupKind
	Start int // inclusive index into msgs
	End   int // exclusive index into msgs
}

// GroupExchanges groups messages into units that are kept or dropped together.
// A user message directly followed by an assistant message is one exchange;
// anything else stands alone.
func GroupExchanges(msgs []memory.Message) []Group {
	groups := make([]Group, 0, len(msgs))
	for i := 0; i < len(msgs); {
		if msgs[i].Role == memory.RoleUser && i+1 < len(msgs) && msgs[i+1].Role == memory.RoleAssistant {
			groups = append(groups, Group{Kind: GroupExchange, Start: i, End: i + 2})
			i += 2
			continue
		}
		groups = append(groups, Group{Kind: GroupSingleton, Start: i, End: i + 1})
		i++
	}
	return groups
}
