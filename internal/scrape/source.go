package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"

	"cardsync/internal/model"
)

// Source looks up market prices by driving a headless browser against the
// price site. One browser process is launched and torn down per lookup, so a
// long catalog never accumulates Chrome instances.
type Source struct {
	BaseURL string
	Wait    time.Duration
}

func NewSource(baseURL string) *Source {
	return &Source{BaseURL: baseURL, Wait: 30 * time.Second}
}

// Lookup searches the price site for cardName and returns the scraped
// reference price. (nil, nil) means no candidate matched; an error means the
// browser or the page failed. Either way the caller should skip the card and
// move on.
func (s *Source) Lookup(ctx context.Context, cardName string) (*model.ReferencePrice, error) {
	l := launcher.New().Headless(true).NoSandbox(true)
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("scrape: launch browser: %w", err)
	}
	defer l.Cleanup()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("scrape: connect browser: %w", err)
	}
	defer browser.Close()

	return s.lookup(ctx, browser, cardName)
}

func (s *Source) lookup(ctx context.Context, browser *rod.Browser, cardName string) (*model.ReferencePrice, error) {
	page, err := stealth.Page(browser)
	if err != nil {
		return nil, fmt.Errorf("scrape: create page: %w", err)
	}

	searchURL := fmt.Sprintf("%s/search?q=%s", s.BaseURL, url.QueryEscape(cardName))
	if err := page.Context(ctx).Navigate(searchURL); err != nil {
		return nil, fmt.Errorf("scrape: navigate %s: %w", searchURL, err)
	}
	if _, err := page.Timeout(s.Wait).Element(selSearchResult); err != nil {
		return nil, fmt.Errorf("scrape: no search results for %q: %w", cardName, err)
	}

	html, err := page.HTML()
	if err != nil {
		return nil, fmt.Errorf("scrape: read search page: %w", err)
	}
	candidates, err := ParseCandidates(html)
	if err != nil {
		return nil, err
	}

	best, ok := BestMatch(cardName, candidates)
	if !ok {
		return nil, nil
	}

	detailURL := s.resolve(best.URL)
	if err := page.Context(ctx).Navigate(detailURL); err != nil {
		return nil, fmt.Errorf("scrape: navigate %s: %w", detailURL, err)
	}
	// Prices render asynchronously; wait until a cell carries a digit.
	if _, err := page.Timeout(s.Wait).ElementR(selPriceCell, `\d`); err != nil {
		return nil, fmt.Errorf("scrape: prices never rendered for %q: %w", best.Title, err)
	}

	html, err = page.HTML()
	if err != nil {
		return nil, fmt.Errorf("scrape: read detail page: %w", err)
	}

	normal, foil := ParsePrices(html)
	if normal == nil && foil == nil {
		return nil, nil
	}

	return &model.ReferencePrice{Name: best.Title, Normal: normal, Foil: foil}, nil
}

func (s *Source) resolve(href string) string {
	if strings.HasPrefix(href, "/") {
		return s.BaseURL + href
	}
	return href
}
