package app

import (
	"tubecfg/internal/domain/consts"
	"tubecfg/internal/logging"
)

// FetchKey probes the source pages and prints the extracted Innertube key.
// Exhausting every source without a hit is reported but is not an error.
func FetchKey() error {
	if key, ok := fetchInnertubeKey(); ok {
		logging.P("%s", key)
		return nil
	}

	logging.W("Could not find %s on any page", consts.InnertubeKeyName)
	return nil
}
