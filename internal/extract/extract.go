// Package extract locates API keys embedded in fetched page content.
//
// YouTube pages carry the Innertube key either as a bare quoted literal or
// tucked inside the runtime config object passed to ytcfg.set(...). The
// extractor tries the cheap literal pattern first and only falls back to
// parsing the embedded object when the literal is missing.
package extract

import (
	"encoding/json"
	"regexp"
	"sync"

	"tubecfg/internal/logging"
)

// embeddedObjectRegex matches a call-like construct wrapping a JSON object
// literal, e.g. ytcfg.set({ ... });. The object may span multiple lines.
var embeddedObjectRegex = regexp.MustCompile(`(?s)[\w$.]+\(\s*(\{.+?\})\s*\)\s*;`)

var (
	literalRegexes   = make(map[string]*regexp.Regexp)
	literalRegexesMu sync.Mutex
)

// literalRegex returns the compiled literal pattern for a key name, compiling
// it once per name.
func literalRegex(name string) *regexp.Regexp {
	literalRegexesMu.Lock()
	defer literalRegexesMu.Unlock()

	re, ok := literalRegexes[name]
	if !ok {
		re = regexp.MustCompile(`"` + regexp.QuoteMeta(name) + `"\s*:\s*"([^"]+)"`)
		literalRegexes[name] = re
	}
	return re
}

// attempt is a single extraction strategy. Strategies report a miss rather
// than an error; malformed input is never fatal.
type attempt func(name, text string) (value string, found bool)

// strategies are tried in order, first match wins. The literal match takes
// precedence over the embedded object even when the object appears earlier
// in the text.
var strategies = []attempt{
	matchLiteral,
	matchEmbeddedObject,
}

// Key searches text for the value of the named key. It returns the value and
// true on a match, or "" and false when neither strategy finds one.
func Key(name, text string) (string, bool) {
	for _, try := range strategies {
		if v, ok := try(name, text); ok {
			return v, true
		}
	}
	return "", false
}

// matchLiteral looks for a direct "name": "value" literal anywhere in the text.
func matchLiteral(name, text string) (string, bool) {
	m := literalRegex(name).FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// matchEmbeddedObject scans for a call wrapping a JSON object and looks the
// key up in the parsed object. A parse failure downgrades to a miss.
func matchEmbeddedObject(name, text string) (string, bool) {
	m := embeddedObjectRegex.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	var cfg map[string]any
	if err := json.Unmarshal([]byte(m[1]), &cfg); err != nil {
		logging.D(2, "Embedded config object did not parse as JSON: %v", err)
		return "", false
	}

	v, ok := cfg[name].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
