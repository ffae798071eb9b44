package clipper

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// handles plurals and small typos between watchlist terms and the
// words of an offer name ("banana" vs "Bananas")
const watchlistSimilarity = 0.88

// matchesWatchlist reports whether an offer name is close enough to
// any watchlist term. an empty watchlist matches everything, which
// keeps clip-all as the default behavior.
func matchesWatchlist(name string, watchlist []string) bool {
	if len(watchlist) == 0 {
		return true
	}

	loweredName := strings.ToLower(name)
	words := strings.Fields(loweredName)

	for _, term := range watchlist {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if strings.Contains(loweredName, term) {
			return true
		}
		for _, word := range words {
			if matchr.JaroWinkler(word, term, false) >= watchlistSimilarity {
				return true
			}
		}
	}
	return false
}
