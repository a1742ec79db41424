// Package keys holds the terminal flag keys used across tubecfg.
package keys

// Terminal keys
const (
	OutputPath   string = "output"
	Port         string = "port"
	MainURL      string = "main-url"
	APIKeys      string = "api-keys"
	SkipFetch    string = "skip-fetch"
	CookieSource string = "cookie-source"
	FetchTimeout string = "timeout"
	DebugLevel   string = "debug"
)
