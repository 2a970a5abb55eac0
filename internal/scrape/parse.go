package scrape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selectors for the price site's markup. Brittle by nature; everything that
// touches them lives in this package.
const (
	selSearchResult = ".search-result"
	selResultTitle  = ".search-result__title"
	selResultLink   = "a"
	selPriceRow     = ".price-guide tr"
	selPriceCell    = ".price-guide td.price"
)

// ParseCandidates extracts the search-result candidates from rendered HTML.
func ParseCandidates(html string) ([]Candidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("scrape: parse search results: %w", err)
	}

	var candidates []Candidate
	doc.Find(selSearchResult).Each(func(_ int, s *goquery.Selection) {
		title := strings.TrimSpace(s.Find(selResultTitle).Text())
		href, _ := s.Find(selResultLink).Attr("href")
		if title == "" || href == "" {
			return
		}
		candidates = append(candidates, Candidate{Title: title, URL: href})
	})

	return candidates, nil
}

// ParsePrices pulls the normal and foil amounts out of a detail page's price
// table. Rows are matched by their finish label; a page with unlabeled cells
// falls back to positional order (first cell normal, second foil). A price
// that does not parse is returned as nil, never as an error.
func ParsePrices(html string) (normal, foil *float64) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil
	}

	doc.Find(selPriceRow).Each(func(_ int, row *goquery.Selection) {
		label := strings.ToLower(row.Find("td").First().Text())
		cell := strings.TrimSpace(row.Find("td.price").Text())
		amount, err := ParseMoney(cell)
		if err != nil {
			return
		}
		switch {
		case strings.Contains(label, "foil"):
			if foil == nil {
				foil = &amount
			}
		case strings.Contains(label, "normal"):
			if normal == nil {
				normal = &amount
			}
		}
	})

	if normal != nil || foil != nil {
		return normal, foil
	}

	// Unlabeled table: take cells in order.
	doc.Find(selPriceCell).Each(func(i int, cell *goquery.Selection) {
		amount, err := ParseMoney(strings.TrimSpace(cell.Text()))
		if err != nil {
			return
		}
		switch i {
		case 0:
			normal = &amount
		case 1:
			foil = &amount
		}
	})

	return normal, foil
}

// ParseMoney normalizes currency-formatted text ("$1,234.56") to an amount.
func ParseMoney(s string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, s)

	if cleaned == "" {
		return 0, fmt.Errorf("scrape: no amount in %q", s)
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("scrape: bad amount %q: %w", s, err)
	}
	return v, nil
}
