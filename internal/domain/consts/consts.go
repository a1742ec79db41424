// Package consts holds process-wide constants for tubecfg.
package consts

// InnertubeKeyName is the config key YouTube pages embed the API key under.
const InnertubeKeyName = "INNERTUBE_API_KEY"

// DefaultUserAgent is the client identity sent with every probe request.
// The webOS smart-TV identity tends to get served the plain page variants.
const DefaultUserAgent = "Mozilla/5.0 (Web0S; Linux/SmartTV) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/79.0.3945.79 Safari/537.36 " +
	"DMOST/2.0.0 (; LGE; webOSTV; WEBOS6.3.2 03.34.95; W6_lm21a;)"

// Probe request headers.
const (
	HeaderAcceptLanguage = "en-US,en;q=0.9"
	HeaderAccept         = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
)

// KeySources are the pages probed for the Innertube key, in priority order.
// The TV page is the most reliable variant, the site root and the embed
// player are fallbacks.
var KeySources = []string{
	"https://www.youtube.com/tv",
	"https://www.youtube.com/",
	"https://www.youtube.com/embed/",
}
