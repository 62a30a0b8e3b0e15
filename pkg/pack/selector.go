package pack

import (
	"math/rand/v2"
)

// Selection is an exhaustive partition of estimated items: every input item
// lands in exactly one of Chosen or Remaining. Chosen order is selection
// order; the sum of estimated sizes over Chosen never exceeds the budget.
type Selection struct {
	Chosen    []EstimatedItem
	Remaining []EstimatedItem
}

// Select randomly picks items whose estimated sizes fit the byte budget.
//
// The input is shuffled into a uniformly random permutation and walked once
// with a running estimated total. An item that would push the total past the
// budget goes to Remaining; otherwise it is chosen and counted. The walk
// stops as soon as the total reaches the budget, and any unvisited tail of
// the permutation is classified into Remaining on the spot, keeping the
// partition exhaustive by construction.
//
// Selection is deliberately not size-ordered: fairness across folders and
// files comes from the shuffle, not from greedy-by-size packing. rng may be
// nil, in which case the shared seeded source is used.
func Select(items []EstimatedItem, budgetBytes int64, rng *rand.Rand) Selection {
	var sel Selection
	if len(items) == 0 {
		return sel
	}

	perm := make([]EstimatedItem, len(items))
	copy(perm, items)
	shuffleItems(perm, rng)

	var total int64
	next := 0
	for ; next < len(perm); next++ {
		item := perm[next]
		if total+item.EstimatedSize > budgetBytes {
			sel.Remaining = append(sel.Remaining, item)
			continue
		}

		sel.Chosen = append(sel.Chosen, item)
		total += item.EstimatedSize

		if total >= budgetBytes {
			next++
			break
		}
	}

	// Unvisited tail after an early stop.
	sel.Remaining = append(sel.Remaining, perm[next:]...)

	return sel
}

// shuffleItems applies a Fisher-Yates shuffle in place
func shuffleItems(items []EstimatedItem, rng *rand.Rand) {
	swap := func(i, j int) { items[i], items[j] = items[j], items[i] }
	if rng != nil {
		rng.Shuffle(len(items), swap)
		return
	}
	rand.Shuffle(len(items), swap)
}
