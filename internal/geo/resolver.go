// Package geo classifies visitors: a pure user-agent to device-category
// mapping, and a cached city lookup backed by an external IP geolocation
// service.
//
// This file implements the city resolver. Lookups hit an ip-api.com style
// endpoint (GET {base}/json/{ip}?fields=city,status) and degrade to the
// "Unknown" sentinel on any failure: timeout, non-2xx status, malformed
// payload, or an unsuccessful lookup status. Failures are never cached, so a
// transient outage does not poison the cache.
//
// Resolved cities are kept in a bounded in-memory cache (max entries + TTL).
// Concurrent misses for the same IP are collapsed via singleflight so only
// one outbound call is in flight per address, and all outbound traffic is
// throttled with a token bucket to stay inside the provider's free-tier
// budget (45 lookups per minute for ip-api.com).
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/netip"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/autokursai/landing-api/internal/domain"
)

// ResolverOptions configures a Resolver.
type ResolverOptions struct {
	// BaseURL of the geolocation service, e.g. "http://ip-api.com".
	BaseURL string
	// Timeout bounds each outbound lookup. Defaults to 3s.
	Timeout time.Duration
	// CacheTTL is how long a resolved city stays valid. Defaults to 12h.
	CacheTTL time.Duration
	// CacheMax bounds the number of cached entries. Defaults to 4096.
	CacheMax int
	// LookupsPerMin throttles outbound calls. Defaults to 45.
	LookupsPerMin float64
	// Client overrides the HTTP client (tests). When nil a plain client is
	// used; per-lookup deadlines come from Timeout, not the client.
	Client *http.Client
}

type cacheEntry struct {
	city    string
	expires time.Time
}

// Resolver maps an IP address to a city label. Safe for concurrent use.
type Resolver struct {
	baseURL string
	timeout time.Duration
	ttl     time.Duration
	max     int

	client  *http.Client
	limiter *rate.Limiter
	group   singleflight.Group

	mu    sync.Mutex
	cache map[string]cacheEntry

	now func() time.Time // test seam
}

// NewResolver constructs a Resolver with the given options, applying
// defaults for any zero value.
func NewResolver(opts ResolverOptions) *Resolver {
	if opts.BaseURL == "" {
		opts.BaseURL = "http://ip-api.com"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 3 * time.Second
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 12 * time.Hour
	}
	if opts.CacheMax < 1 {
		opts.CacheMax = 4096
	}
	if opts.LookupsPerMin <= 0 {
		opts.LookupsPerMin = 45
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{}
	}
	return &Resolver{
		baseURL: opts.BaseURL,
		timeout: opts.Timeout,
		ttl:     opts.CacheTTL,
		max:     opts.CacheMax,
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(opts.LookupsPerMin/60.0), int(opts.LookupsPerMin)),
		cache:   make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Resolve returns the city label for ip.
//
// Loopback and private-range addresses short-circuit to "Localhost" without
// any outbound call. Otherwise the cache is consulted; on a miss a single
// throttled lookup is issued and, when successful, the city is cached.
// Every failure path returns "Unknown".
func (r *Resolver) Resolve(ctx context.Context, ip string) string {
	if isLocal(ip) {
		return domain.CityLocalhost
	}
	if city, ok := r.cached(ip); ok {
		return city
	}

	v, _, _ := r.group.Do(ip, func() (any, error) {
		// Re-check under singleflight: a concurrent caller may have filled
		// the cache while this one was queued.
		if city, ok := r.cached(ip); ok {
			return city, nil
		}
		city := r.lookup(ctx, ip)
		if city != domain.CityUnknown {
			r.store(ip, city)
		}
		return city, nil
	})
	city, ok := v.(string)
	if !ok {
		return domain.CityUnknown
	}
	return city
}

// lookup performs one outbound geolocation call. It never returns an error;
// the caller's primary operation must proceed regardless of lookup outcome.
func (r *Resolver) lookup(ctx context.Context, ip string) string {
	if !r.limiter.Allow() {
		return domain.CityUnknown
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/json/%s?fields=city,status", r.baseURL, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.CityUnknown
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return domain.CityUnknown
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.CityUnknown
	}

	var payload struct {
		Status string `json:"status"`
		City   string `json:"city"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.CityUnknown
	}
	if payload.Status != "success" || payload.City == "" {
		return domain.CityUnknown
	}
	return payload.City
}

// cached returns a non-expired cache entry for ip.
func (r *Resolver) cached(ip string) (string, bool) {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.cache[ip]
	if !ok {
		return "", false
	}
	if now.After(e.expires) {
		delete(r.cache, ip)
		return "", false
	}
	return e.city, true
}

// store caches a resolved city, evicting expired entries first and then
// arbitrary ones when the cache is still at capacity.
func (r *Resolver) store(ip, city string) {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.cache) >= r.max {
		for k, e := range r.cache {
			if now.After(e.expires) {
				delete(r.cache, k)
			}
		}
		for k := range r.cache {
			if len(r.cache) < r.max {
				break
			}
			delete(r.cache, k)
		}
	}
	r.cache[ip] = cacheEntry{city: city, expires: now.Add(r.ttl)}
}

// isLocal reports whether ip is loopback or inside a private range
// (10.0.0.0/8, 172.16.0.0/12, 192.168.0.0/16, and their IPv6 equivalents).
// Unparsable addresses are not considered local; the lookup for them simply
// fails and degrades to "Unknown".
func isLocal(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	return addr.IsLoopback() || addr.IsPrivate() || addr.IsLinkLocalUnicast()
}
