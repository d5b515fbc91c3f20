package menu

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Find returns the selectable entry that best matches query. Exact and
// prefix matches on the name win; otherwise the closest fuzzy match is used,
// ties going to the entry shown first.
func (b *Bar) Find(query string) (Ref, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return Ref{}, false
	}
	refs, names := b.Selectable()
	lower := strings.ToLower(trimmed)
	for i, name := range names {
		if strings.EqualFold(name, trimmed) {
			return refs[i], true
		}
	}
	for i, name := range names {
		if strings.HasPrefix(strings.ToLower(name), lower) {
			return refs[i], true
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return Ref{}, false
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return refs[best.OriginalIndex], true
}
