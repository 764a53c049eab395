package enrich

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/jonathan/resume-structurer/internal/fetch"
)

// searchClient wraps the Google Custom Search API.
type searchClient struct {
	svc *customsearch.Service
	cx  string
}

func newCustomSearchClient(ctx context.Context, apiKey, cx string) (*searchClient, error) {
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &searchClient{svc: svc, cx: cx}, nil
}

// FirstResult returns the link of the first organic search result.
func (c *searchClient) FirstResult(ctx context.Context, query string) (string, error) {
	resp, err := c.svc.Cse.List().Q(query).Cx(c.cx).Num(3).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	for _, item := range resp.Items {
		if link := cleanResultLink(item.Link); link != "" {
			return link, nil
		}
	}
	return "", nil
}

// scrapeSearch queries the DuckDuckGo HTML endpoint and parses result links
// with goquery. When the page comes back too short to be a real result list
// and browser fallback is enabled, it re-renders the page headlessly.
func (l *HTTPLookup) scrapeSearch(ctx context.Context, query string) (string, error) {
	searchURL := "https://html.duckduckgo.com/html/?q=" + url.QueryEscape(query)

	attemptCtx, cancel := context.WithTimeout(ctx, l.opts.AttemptTimeout)
	result, err := fetch.URL(attemptCtx, searchURL, &fetch.Options{
		Timeout:   l.opts.AttemptTimeout,
		UserAgent: l.opts.UserAgent,
	})
	cancel()
	if err != nil {
		return "", err
	}

	html := result.HTML
	if fetch.ShouldUseBrowser(html) && l.opts.UseBrowser {
		rendered, berr := fetch.WithBrowser(ctx, searchURL, l.opts.AttemptTimeout, l.opts.Verbose)
		if berr == nil {
			html = rendered
		}
	}

	return firstSearchLink(html)
}

// firstSearchLink extracts the first usable result link from a DuckDuckGo
// HTML results page.
func firstSearchLink(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	var found string
	doc.Find("a.result__a").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, ok := s.Attr("href")
		if !ok {
			return true
		}
		if link := cleanResultLink(decodeRedirect(href)); link != "" {
			found = link
			return false
		}
		return true
	})
	return found, nil
}

// decodeRedirect unwraps DuckDuckGo's /l/?uddg= redirect links.
func decodeRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}

// aggregatorHosts are result domains that are never an organization's own
// website.
var aggregatorHosts = []string{
	"wikipedia.org",
	"linkedin.com",
	"facebook.com",
	"twitter.com",
	"x.com",
	"instagram.com",
	"glassdoor.com",
	"indeed.com",
	"crunchbase.com",
	"bloomberg.com",
	"duckduckgo.com",
}

// cleanResultLink validates a search result link and rejects aggregator and
// social-profile pages. It returns "" when the link is unusable.
func cleanResultLink(link string) string {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	host := strings.ToLower(u.Host)
	for _, agg := range aggregatorHosts {
		if host == agg || strings.HasSuffix(host, "."+agg) {
			return ""
		}
	}
	// Keep only the site root; deep links are not canonical websites.
	return u.Scheme + "://" + u.Host
}
