// Package models defines the config document written for the video-proxy server.
package models

import (
	"sort"
	"strings"

	"tubecfg/internal/domain/consts"
)

// Config is the full config.yml document. Field order matches the section
// order the downstream server documents, and the YAML encoder preserves it.
type Config struct {
	Server    ServerConfig `yaml:"server"`
	API       APIConfig    `yaml:"api"`
	Video     VideoConfig  `yaml:"video"`
	Proxy     ProxyConfig  `yaml:"proxy"`
	Cache     CacheConfig  `yaml:"cache"`
	Instances []string     `yaml:"instances"`
}

// ServerConfig holds the listener settings.
type ServerConfig struct {
	Port      int    `yaml:"port"`
	MainURL   string `yaml:"main_url"`
	SecretKey string `yaml:"secret_key"`
}

// APIConfig holds API keys and upstream identity settings.
type APIConfig struct {
	RequestTimeout int             `yaml:"request_timeout"`
	Keys           KeysConfig      `yaml:"keys"`
	Innertube      InnertubeConfig `yaml:"innertube"`
	OAuth          OAuthConfig     `yaml:"oauth"`
}

// KeysConfig splits API keys into active rotation and disabled sets.
type KeysConfig struct {
	Active   []string `yaml:"active"`
	Disabled []string `yaml:"disabled"`
}

// InnertubeConfig carries the extracted Innertube key. A nil Key serializes
// as null, signalling the server to fall back to its own default.
type InnertubeConfig struct {
	Key *string `yaml:"key"`
}

// OAuthConfig holds the TV-client OAuth identity.
type OAuthConfig struct {
	ClientID     string  `yaml:"client_id"`
	ClientSecret string  `yaml:"client_secret"`
	RedirectURI  *string `yaml:"redirect_uri"`
}

// VideoConfig holds playback and source settings.
type VideoConfig struct {
	Source             string   `yaml:"source"`
	UseCookies         bool     `yaml:"use_cookies"`
	DefaultQuality     string   `yaml:"default_quality"`
	AvailableQualities []string `yaml:"available_qualities"`
	DefaultCount       int      `yaml:"default_count"`
}

// ProxyConfig holds proxying toggles.
type ProxyConfig struct {
	Thumbnails ThumbnailsConfig `yaml:"thumbnails"`
	VideoProxy bool             `yaml:"video_proxy"`
}

// ThumbnailsConfig toggles thumbnail proxying per media type.
type ThumbnailsConfig struct {
	Video                  bool `yaml:"video"`
	Channel                bool `yaml:"channel"`
	FetchChannelThumbnails bool `yaml:"fetch_channel_thumbnails"`
}

// CacheConfig holds temp-folder cache thresholds.
type CacheConfig struct {
	TempFolderMaxSizeMB int `yaml:"temp_folder_max_size_mb"`
	CleanupThresholdMB  int `yaml:"cleanup_threshold_mb"`
}

// NewConfig assembles a config document from the collected inputs, filling
// every remaining field with the shipped defaults. innertubeKey may be nil
// when no key could be extracted.
func NewConfig(port int, mainURL string, activeKeys []string, innertubeKey *string) *Config {
	if activeKeys == nil {
		activeKeys = []string{}
	}

	return &Config{
		Server: ServerConfig{
			Port:      port,
			MainURL:   mainURL,
			SecretKey: consts.DefaultSecretKey,
		},
		API: APIConfig{
			RequestTimeout: consts.DefaultRequestTimeout,
			Keys: KeysConfig{
				Active:   activeKeys,
				Disabled: []string{},
			},
			Innertube: InnertubeConfig{
				Key: innertubeKey,
			},
			OAuth: OAuthConfig{
				ClientID:     consts.DefaultOAuthClientID,
				ClientSecret: consts.DefaultOAuthSecret,
				RedirectURI:  nil,
			},
		},
		Video: VideoConfig{
			Source:             consts.DefaultVideoSource,
			UseCookies:         false,
			DefaultQuality:     consts.DefaultQuality,
			AvailableQualities: append([]string(nil), consts.DefaultQualities...),
			DefaultCount:       consts.DefaultVideoCount,
		},
		Proxy: ProxyConfig{
			Thumbnails: ThumbnailsConfig{
				Video:                  true,
				Channel:                false,
				FetchChannelThumbnails: false,
			},
			VideoProxy: true,
		},
		Cache: CacheConfig{
			TempFolderMaxSizeMB: consts.DefaultTempFolderMaxSizeMB,
			CleanupThresholdMB:  consts.DefaultCleanupThresholdMB,
		},
		Instances: append([]string(nil), consts.DefaultInstances...),
	}
}

// Tidy normalizes the document the same way the downstream server does on
// load: key lists trimmed, deduped and sorted, qualities sorted numerically,
// instances deduped ignoring case and trailing slashes.
func (c *Config) Tidy() {
	c.API.Keys.Active = tidyKeyList(c.API.Keys.Active)
	c.API.Keys.Disabled = tidyKeyList(c.API.Keys.Disabled)

	sort.SliceStable(c.Video.AvailableQualities, func(i, j int) bool {
		return compareQuality(c.Video.AvailableQualities[i], c.Video.AvailableQualities[j]) < 0
	})
	c.Video.AvailableQualities = dedupSorted(c.Video.AvailableQualities)

	sort.SliceStable(c.Instances, func(i, j int) bool {
		return normalizeURL(c.Instances[i]) < normalizeURL(c.Instances[j])
	})
	seen := make(map[string]struct{}, len(c.Instances))
	kept := c.Instances[:0]
	for _, inst := range c.Instances {
		n := normalizeURL(inst)
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		kept = append(kept, inst)
	}
	c.Instances = kept
}

// tidyKeyList trims entries, drops empties, sorts and dedupes.
func tidyKeyList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, k := range in {
		k = strings.TrimSpace(k)
		if k != "" {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return dedupSorted(out)
}

// dedupSorted removes adjacent duplicates from a sorted slice.
func dedupSorted(in []string) []string {
	out := in[:0]
	for i, v := range in {
		if i == 0 || v != in[i-1] {
			out = append(out, v)
		}
	}
	return out
}

// compareQuality orders quality labels by their numeric component, pushing
// non-numeric labels to the end.
func compareQuality(a, b string) int {
	av, aok := qualityValue(a)
	bv, bok := qualityValue(b)

	switch {
	case aok && bok:
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case aok:
		return -1
	case bok:
		return 1
	}
	return strings.Compare(a, b)
}

// qualityValue pulls the digits out of a quality label, e.g. "1080p" -> 1080.
func qualityValue(s string) (int, bool) {
	n := 0
	found := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			found = true
		}
	}
	return n, found
}

// normalizeURL lowercases an instance URL and strips trailing slashes.
func normalizeURL(s string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(s), "/"))
}
