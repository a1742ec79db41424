package consts

// Server defaults.
const (
	DefaultPort       = 2823
	DefaultSecretKey  = "test"
	DefaultOutputFile = "config.yml"
)

// API defaults.
const (
	DefaultRequestTimeout = 30
	DefaultOAuthClientID  = "861556708454-d6dlm3lh05idd8npek18k6be8ba3oc68.apps.googleusercontent.com"
	DefaultOAuthSecret    = "SboVhoG9s0rNafixCSGGKXAT"
)

// Video defaults.
const (
	DefaultVideoSource = "innertube"
	DefaultQuality     = "360"
	DefaultVideoCount  = 50
)

// DefaultQualities lists the quality levels the proxy can serve.
var DefaultQualities = []string{"144", "240", "360", "480", "720", "1080", "1440", "2160"}

// Cache defaults (MB).
const (
	DefaultTempFolderMaxSizeMB = 5120
	DefaultCleanupThresholdMB  = 100
)

// DefaultInstances are the upstream proxy instances shipped in a fresh config.
var DefaultInstances = []string{
	"https://yt.legacyprojects.ru",
	"https://yt.modyleprojects.ru",
	"https://ytcloud.meetlook.ru",
}
