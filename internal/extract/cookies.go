package extract

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"tubecfg/internal/logging"

	"github.com/browserutils/kooky"
	// Use all browsers for Kooky:
	_ "github.com/browserutils/kooky/browser/all"
)

// CookieManager holds browser cookies per domain. When browser is non-empty,
// only cookie stores belonging to that browser are read.
type CookieManager struct {
	browser string
	mu      sync.RWMutex
	cookies map[string][]*http.Cookie
}

// NewCookieManager initializes a cookie manager reading from the named
// browser's cookie stores, or from every installed browser when browser is
// empty.
func NewCookieManager(browser string) *CookieManager {
	return &CookieManager{
		browser: browser,
		cookies: make(map[string][]*http.Cookie),
	}
}

// GetCookies retrieves the browser cookies for a given URL, loading them from
// the local browser stores on first use.
func (cm *CookieManager) GetCookies(ctx context.Context, u string) ([]*http.Cookie, error) {
	domain, err := baseDomain(u)
	if err != nil {
		return nil, fmt.Errorf("error extracting base domain in cookie grab: %w", err)
	}

	cm.mu.RLock()
	if cookies, ok := cm.cookies[domain]; ok {
		cm.mu.RUnlock()
		return cookies, nil
	}
	cm.mu.RUnlock()

	cookies := cm.loadCookiesForDomain(ctx, domain)

	cm.mu.Lock()
	cm.cookies[domain] = cookies
	cm.mu.Unlock()

	return cookies, nil
}

// loadCookiesForDomain loads the cookies associated with a particular domain,
// honoring the browser filter when one was requested.
func (cm *CookieManager) loadCookiesForDomain(ctx context.Context, domain string) []*http.Cookie {
	kookieCookies, err := cm.readCookies(ctx, domain)
	if err != nil {
		logging.D(2, "Failed reading cookies: %v", err)
		return nil
	}

	if len(kookieCookies) > 0 {
		logging.I("Found %d cookies for %s", len(kookieCookies), domain)
		return convertToHTTPCookies(kookieCookies)
	}

	logging.I("No cookies found for %s", domain)
	return nil
}

// readCookies pulls valid cookies for the domain, restricted to the requested
// browser's stores when a browser name is set.
func (cm *CookieManager) readCookies(ctx context.Context, domain string) ([]*kooky.Cookie, error) {
	if cm.browser == "" {
		return kooky.ReadCookies(kooky.Valid, kooky.Domain(domain)), nil
	}

	stores := kooky.FindAllCookieStores()

	var cookies []*kooky.Cookie
	matched := false
	for _, store := range stores {
		if !matchesBrowser(store.Browser(), cm.browser) {
			continue
		}
		matched = true

		storeCookies, err := store.ReadCookies(kooky.Valid, kooky.Domain(domain))
		if err != nil {
			logging.D(2, "Failed reading %s cookie store: %v", store.Browser(), err)
			continue
		}
		cookies = append(cookies, storeCookies...)
	}

	if !matched {
		logging.W("No cookie stores found for browser %q", cm.browser)
	}
	return cookies, nil
}

// matchesBrowser reports whether a store's browser name satisfies the
// requested filter. An empty filter matches everything.
func matchesBrowser(storeBrowser, requested string) bool {
	if requested == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(storeBrowser), strings.TrimSpace(requested))
}

// convertToHTTPCookies converts kooky cookies to http.Cookie format.
func convertToHTTPCookies(kookyCookies []*kooky.Cookie) []*http.Cookie {
	httpCookies := make([]*http.Cookie, len(kookyCookies))
	for i, c := range kookyCookies {
		httpCookies[i] = &http.Cookie{
			Name:   c.Name,
			Value:  c.Value,
			Path:   c.Path,
			Domain: c.Domain,
			Secure: c.Secure,
		}
	}
	return httpCookies
}

// baseDomain reduces a URL to its bare host, e.g. "www.youtube.com" to
// "youtube.com".
func baseDomain(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("no hostname in URL %q", rawURL)
	}
	return strings.TrimPrefix(host, "www."), nil
}
