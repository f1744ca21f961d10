// Package windowing trims the session transcript to a send budget before each
// model call.
package windowing

import "github.com/petasbytes/sous-chef/memory"

// Stats summarizes the result of window preparation.
//
// Fields:
// - Total: estimated cost of the included groups.
// - Budget: the budget used; <= 0 means unlimited.
// - IncludedGroups / SkippedGroups: groups sent and groups dropped.
// - OverBudgetNewest: the newest group alone exceeds Budget (it is still sent).
type Stats struct {
	Total            int
	Budget           int
	IncludedGroups   int
	SkippedGroups    int
	OverBudgetNewest bool
}

// PrepareSendWindow returns the suffix of msgs (oldest→newest) that fits within
// budget, never splitting an exchange.
//
// Rules:
// - budget <= 0 sends everything.
// - Groups are taken newest→oldest while the running total stays within budget;
//   the first group that does not fit ends the window.
// - The newest group is always sent, even when it alone is over budget.
func PrepareSendWindow(msgs []memory.Message, budget int, c TokenCounter) ([]memory.Message, Stats) {
	if len(msgs) == 0 {
		return nil, Stats{Budget: budget}
	}

	groups := GroupExchanges(msgs)

	if budget <= 0 {
		total := 0
		for _, g := range groups {
			total += c.CountGroup(g, msgs)
		}
		return msgs, Stats{Total: total, Budget: budget, IncludedGroups: len(groups)}
	}

	newest := groups[len(groups)-1]
	total := c.CountGroup(newest, msgs)
	stats := Stats{Budget: budget, IncludedGroups: 1, OverBudgetNewest: total > budget}
	start := newest.Start

	for gi := len(groups) - 2; gi >= 0 && !stats.OverBudgetNewest; gi-- {
		cost := c.CountGroup(groups[gi], msgs)
		if total+cost > budget {
			break
		}
		total += cost
		stats.IncludedGroups++
		start = groups[gi].Start
	}

	stats.Total = total
	stats.SkippedGroups = len(groups) - stats.IncludedGroups
	return msgs[start:], stats
}
