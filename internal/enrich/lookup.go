package enrich

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/resume-structurer/internal/fetch"
	"github.com/jonathan/resume-structurer/internal/types"
)

// DefaultAttemptTimeout bounds each individual network attempt (domain probe
// or search query) so a slow site cannot stall the whole parse.
const DefaultAttemptTimeout = 5 * time.Second

// DefaultUserAgent is the user agent string for lookup requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeStructurer/1.0)"

// Options configures the network lookup behavior.
type Options struct {
	AttemptTimeout time.Duration
	UserAgent      string
	SearchAPIKey   string
	SearchCX       string
	UseBrowser     bool
	Verbose        bool
}

// DefaultOptions returns sensible defaults for lookups.
func DefaultOptions() *Options {
	return &Options{
		AttemptTimeout: DefaultAttemptTimeout,
		UserAgent:      DefaultUserAgent,
	}
}

// HTTPLookup resolves organization websites by probing guessed domains first
// and falling back to web search when no guess verifies.
type HTTPLookup struct {
	opts   *Options
	search *searchClient
}

// NewHTTPLookup creates a lookup collaborator. The Custom Search client is
// only constructed when an API key is configured; otherwise search falls
// back to scraping.
func NewHTTPLookup(ctx context.Context, opts *Options) (*HTTPLookup, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.AttemptTimeout <= 0 {
		opts.AttemptTimeout = DefaultAttemptTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}

	l := &HTTPLookup{opts: opts}

	if opts.SearchAPIKey != "" && opts.SearchCX != "" {
		sc, err := newCustomSearchClient(ctx, opts.SearchAPIKey, opts.SearchCX)
		if err != nil {
			return nil, &Error{Message: "failed to create search client", Cause: err}
		}
		l.search = sc
	}
	return l, nil
}

// Resolve finds the canonical website for an organization name. It returns
// an Error when no website could be verified; callers treat that as a
// degraded result, not a failure.
func (l *HTTPLookup) Resolve(ctx context.Context, name string) (types.CompanyInfo, error) {
	info := types.CompanyInfo{Name: name}

	for _, domain := range candidateDomains(name) {
		if l.verifyDomain(ctx, domain, name) {
			info.Website = "https://www." + domain
			info.Domain = domain
			return info, nil
		}
	}

	site, err := l.searchWebsite(ctx, name)
	if err != nil {
		return info, &Error{Name: name, Message: "search lookup failed", Cause: err}
	}
	if site == "" {
		return info, &Error{Name: name, Message: "no website found"}
	}
	info.Website = site
	info.Domain = domainOf(site)
	return info, nil
}

var slugStripRe = regexp.MustCompile(`[^a-z0-9 ]+`)

// candidateDomains guesses plausible domains from the organization name:
// the compacted slug under common TLDs, plus a hyphenated variant for
// multi-word names.
func candidateDomains(name string) []string {
	base := slugStripRe.ReplaceAllString(NormalizeName(name), "")
	base = strings.TrimSpace(base)
	compact := strings.ReplaceAll(base, " ", "")
	if compact == "" {
		return nil
	}

	domains := []string{
		compact + ".com",
		compact + ".io",
		compact + ".co",
		compact + ".net",
		compact + ".org",
	}
	if hyphenated := strings.ReplaceAll(base, " ", "-"); hyphenated != compact {
		domains = append(domains, hyphenated+".com")
	}
	return domains
}

// verifyDomain probes a guessed domain with a bounded GET. A domain only
// verifies when the site is live and its page text actually mentions the
// organization; a parked or unrelated site must not be claimed.
func (l *HTTPLookup) verifyDomain(ctx context.Context, domain, name string) bool {
	return l.probePage(ctx, "https://www."+domain, name)
}

func (l *HTTPLookup) probePage(ctx context.Context, pageURL, name string) bool {
	attemptCtx, cancel := context.WithTimeout(ctx, l.opts.AttemptTimeout)
	defer cancel()

	result, _ := fetch.URL(attemptCtx, pageURL, &fetch.Options{
		Timeout:   l.opts.AttemptTimeout,
		UserAgent: l.opts.UserAgent,
	})
	if result == nil || result.StatusCode >= 400 {
		return false
	}
	return pageMentionsName(result.Text, name)
}

// pageMentionsName reports whether extracted page text mentions the
// organization. Both sides are normalized first so legal suffixes and
// punctuation differences do not block verification.
func pageMentionsName(text, name string) bool {
	norm := NormalizeName(name)
	if norm == "" {
		return false
	}
	page := NormalizeName(text)
	if strings.Contains(page, norm) {
		return true
	}
	for _, token := range strings.Fields(norm) {
		if len(token) >= 3 && strings.Contains(page, token) {
			return true
		}
	}
	return false
}

// searchWebsite discovers a website through web search when domain guessing
// fails. The Custom Search API is preferred; scraping is the fallback.
func (l *HTTPLookup) searchWebsite(ctx context.Context, name string) (string, error) {
	query := fmt.Sprintf("%s official website", name)

	if l.search != nil {
		site, err := l.search.FirstResult(ctx, query)
		if err == nil && site != "" {
			return site, nil
		}
		// Fall through to scraping on API errors.
	}

	return l.scrapeSearch(ctx, query)
}
