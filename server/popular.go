// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import "sort"

const popularCount = 10

// Popular sends the most-used formulas to each Client.
func (h *Hub) Popular() {
	if len(h.scores) == 0 {
		return
	}
	h.Broadcast(&Popular{Popular: TopFormulas(h.scores, popularCount)})
}

// TopFormulas returns the count highest-scoring formulas, ties broken by
// label for stable output.
func TopFormulas(scores map[string]*FormulaScore, count int) []FormulaScore {
	top := make([]FormulaScore, 0, len(scores))
	for _, score := range scores {
		top = append(top, *score)
	}

	sort.Slice(top, func(i, j int) bool {
		if top[i].Score != top[j].Score {
			return top[i].Score > top[j].Score
		}
		return top[i].Label < top[j].Label
	})

	if len(top) > count {
		top = top[:count]
	}
	return top
}
