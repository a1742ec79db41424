package extract

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"tubecfg/internal/domain/consts"
	"tubecfg/internal/logging"

	"github.com/gocolly/colly"
	"golang.org/x/net/publicsuffix"
)

// RequestOptions bound each probe request.
type RequestOptions struct {
	UserAgent string
	Headers   map[string]string
	Timeout   time.Duration
	Cookies   []*http.Cookie
}

// DefaultRequestOptions returns the fixed probe identity used against the
// known key sources.
func DefaultRequestOptions() RequestOptions {
	return RequestOptions{
		UserAgent: consts.DefaultUserAgent,
		Headers: map[string]string{
			"Accept-Language": consts.HeaderAcceptLanguage,
			"Accept":          consts.HeaderAccept,
		},
		Timeout: consts.FetchTimeout,
	}
}

// KeyFromSources probes sources in order, fetching each page once and running
// the extractor against its body. The first hit wins. Per-source network
// faults and non-success statuses are logged and skipped; exhausting every
// source returns "" and false, which is a normal outcome rather than an error.
func KeyFromSources(name string, sources []string, opts RequestOptions) (string, bool) {
	for _, src := range sources {
		logging.I("Trying to fetch %q from %s", name, src)

		body, err := fetchPage(src, opts)
		if err != nil {
			logging.W("Skipping %s: %v", src, err)
			continue
		}

		if v, ok := Key(name, body); ok {
			logging.S("Found %s on %s", name, src)
			return v, true
		}
		logging.D(1, "No %s present at %s", name, src)
	}
	return "", false
}

// fetchPage issues a single GET for the page and returns its body.
func fetchPage(rawURL string, opts RequestOptions) (string, error) {
	c, err := newCollector(rawURL, opts)
	if err != nil {
		return "", err
	}

	var body string
	c.OnRequest(func(r *colly.Request) {
		for k, v := range opts.Headers {
			r.Headers.Set(k, v)
		}
	})
	c.OnResponse(func(r *colly.Response) {
		body = string(r.Body)
	})

	// The collector is synchronous, so the body is populated once Visit returns.
	if err := c.Visit(rawURL); err != nil {
		return "", fmt.Errorf("error visiting webpage %q: %w", rawURL, err)
	}

	return body, nil
}

// newCollector builds a single-use collector carrying the probe identity and
// any cookies for the target domain.
func newCollector(rawURL string, opts RequestOptions) (*colly.Collector, error) {
	c := colly.NewCollector(
		colly.UserAgent(opts.UserAgent),
		colly.IgnoreRobotsTxt(),
	)

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = consts.FetchTimeout
	}
	c.SetRequestTimeout(timeout)

	if len(opts.Cookies) > 0 {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}

		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, fmt.Errorf("invalid URL: %w", err)
		}

		jar.SetCookies(u, opts.Cookies)
		c.SetCookieJar(jar)
	}

	return c, nil
}
