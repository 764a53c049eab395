// Package enrich augments named organizations (companies, institutions) with
// canonical websites, using a known-mapping table first and a network lookup
// collaborator as fallback. Lookup failures degrade to "no website" and are
// never surfaced to the caller.
package enrich

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/resume-structurer/internal/types"
)

// Lookup is the external collaborator that resolves an organization name to
// its canonical website.
type Lookup interface {
	Resolve(ctx context.Context, name string) (types.CompanyInfo, error)
}

// Target is the capability record that lets the pipeline treat companies and
// institutions uniformly: how to read the entity's name key, how to write
// the resolved website back, and which known mappings apply.
type Target[T any] struct {
	Kind  string
	Key   func(T) string
	Apply func(*T, types.CompanyInfo)
	Known map[string]string
}

// Pipeline memoizes lookups for the lifetime of the process. The cache is
// shared across concurrent enrichment tasks; singleflight collapses
// simultaneous lookups of the same normalized name.
type Pipeline struct {
	lookup Lookup

	sf    singleflight.Group
	mu    sync.RWMutex
	cache map[string]types.CompanyInfo
}

// New creates a Pipeline around the given lookup collaborator. A nil lookup
// disables network fallback; known mappings still apply.
func New(lookup Lookup) *Pipeline {
	return &Pipeline{
		lookup: lookup,
		cache:  make(map[string]types.CompanyInfo),
	}
}

// EnrichAll enriches every entity concurrently. Failures are isolated per
// task, and results are recombined by original index, so output ordering is
// stable regardless of network timing. Entities with a blank key pass
// through unchanged.
func EnrichAll[T any](ctx context.Context, p *Pipeline, target Target[T], items []T) []T {
	if len(items) == 0 {
		return items
	}

	out := make([]T, len(items))
	var g errgroup.Group
	for i := range items {
		g.Go(func() error {
			item := items[i]
			key := strings.TrimSpace(target.Key(item))
			if key != "" {
				info := p.resolve(ctx, key, target.Known)
				target.Apply(&item, info)
			}
			out[i] = item
			return nil
		})
	}
	_ = g.Wait() // tasks never return errors
	return out
}

// resolve returns the CompanyInfo for a raw name, consulting the cache, the
// known-mapping table, and finally the network collaborator. The result is
// cached whether or not a website was found.
func (p *Pipeline) resolve(ctx context.Context, name string, known map[string]string) types.CompanyInfo {
	norm := NormalizeName(name)
	if norm == "" {
		return types.CompanyInfo{Name: name}
	}

	p.mu.RLock()
	info, ok := p.cache[norm]
	p.mu.RUnlock()
	if ok {
		return info
	}

	v, _, _ := p.sf.Do(norm, func() (any, error) {
		p.mu.RLock()
		cached, hit := p.cache[norm]
		p.mu.RUnlock()
		if hit {
			return cached, nil
		}

		resolved := p.lookupInfo(ctx, name, norm, known)
		p.mu.Lock()
		p.cache[norm] = resolved
		p.mu.Unlock()
		return resolved, nil
	})

	info, _ = v.(types.CompanyInfo)
	return info
}

func (p *Pipeline) lookupInfo(ctx context.Context, name, norm string, known map[string]string) types.CompanyInfo {
	info := types.CompanyInfo{Name: name}

	// Fuzzy known-mapping match: exact, contains, or contained-by. This is
	// intentionally optimistic; short names can false-positive.
	for key, site := range known {
		if norm == key || strings.Contains(norm, key) || strings.Contains(key, norm) {
			info.Website = site
			info.Domain = domainOf(site)
			return info
		}
	}

	if p.lookup == nil {
		return info
	}
	resolved, err := p.lookup.Resolve(ctx, name)
	if err != nil {
		// Degraded to "no website"; the entity is returned unmodified.
		return info
	}
	resolved.Name = name
	return resolved
}

// legalSuffixRe matches trailing legal-entity words stripped during
// normalization.
var legalSuffixRe = regexp.MustCompile(`\b(incorporated|inc|llc|llp|corporation|corp|limited|ltd|company|co|gmbh|plc|sa)\b\.?`)

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9 ]+`)

var spaceRe = regexp.MustCompile(`\s+`)

// NormalizeName lowercases a name, strips legal-entity suffixes and
// punctuation, and collapses whitespace. It is the cache key for lookups.
func NormalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = legalSuffixRe.ReplaceAllString(s, " ")
	s = nonAlnumRe.ReplaceAllString(s, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// domainOf extracts the bare host from a website URL.
func domainOf(site string) string {
	s := strings.TrimPrefix(site, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "www.")
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	return s
}
