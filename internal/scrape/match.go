package scrape

import "strings"

// Candidate is one search result on the price site.
type Candidate struct {
	Title string
	URL   string
}

// BestMatch picks the candidate whose title the card name contains,
// case-insensitively. Listing names carry set suffixes the price site does
// not ("Island (Foil) [Commander 2021]"), so containment runs in that
// direction only. Among multiple contained titles the longest wins, so
// "Island (Foil)" beats "Island"; equal lengths keep the first in page order.
func BestMatch(cardName string, candidates []Candidate) (Candidate, bool) {
	name := strings.ToLower(cardName)

	var best Candidate
	bestLen := 0
	for _, c := range candidates {
		title := strings.ToLower(strings.TrimSpace(c.Title))
		if title == "" || !strings.Contains(name, title) {
			continue
		}
		if len(title) > bestLen {
			best = c
			bestLen = len(title)
		}
	}

	return best, bestLen > 0
}
