package models_test

import (
	"reflect"
	"strings"
	"testing"

	"tubecfg/internal/models"

	"gopkg.in/yaml.v3"
)

// TestNewConfigDefaults checks the hardcoded fill values.
func TestNewConfigDefaults(t *testing.T) {
	cfg := models.NewConfig(2823, "", nil, nil)

	if cfg.Server.Port != 2823 {
		t.Fatalf("expected port 2823, got %d", cfg.Server.Port)
	}
	if cfg.Server.SecretKey != "test" {
		t.Fatalf("expected secret key default, got %q", cfg.Server.SecretKey)
	}
	if cfg.API.RequestTimeout != 30 {
		t.Fatalf("expected request timeout 30, got %d", cfg.API.RequestTimeout)
	}
	if cfg.API.Keys.Active == nil || len(cfg.API.Keys.Active) != 0 {
		t.Fatalf("expected empty non-nil active keys, got %#v", cfg.API.Keys.Active)
	}
	if cfg.API.Innertube.Key != nil {
		t.Fatalf("expected nil innertube key, got %v", *cfg.API.Innertube.Key)
	}
	if cfg.Video.Source != "innertube" || cfg.Video.DefaultQuality != "360" || cfg.Video.DefaultCount != 50 {
		t.Fatalf("unexpected video defaults: %+v", cfg.Video)
	}
	if len(cfg.Video.AvailableQualities) != 8 {
		t.Fatalf("expected 8 quality levels, got %d", len(cfg.Video.AvailableQualities))
	}
	if !cfg.Proxy.VideoProxy || !cfg.Proxy.Thumbnails.Video || cfg.Proxy.Thumbnails.Channel {
		t.Fatalf("unexpected proxy defaults: %+v", cfg.Proxy)
	}
	if cfg.Cache.TempFolderMaxSizeMB != 5120 || cfg.Cache.CleanupThresholdMB != 100 {
		t.Fatalf("unexpected cache defaults: %+v", cfg.Cache)
	}
	if len(cfg.Instances) != 3 {
		t.Fatalf("expected 3 default instances, got %d", len(cfg.Instances))
	}
}

// TestNewConfigCollectedValues places the operator inputs.
func TestNewConfigCollectedValues(t *testing.T) {
	key := "AIzaSyFresh"
	cfg := models.NewConfig(8080, "https://proxy.example", []string{"k1", "k2"}, &key)

	if cfg.Server.Port != 8080 || cfg.Server.MainURL != "https://proxy.example" {
		t.Fatalf("unexpected server section: %+v", cfg.Server)
	}
	if !reflect.DeepEqual(cfg.API.Keys.Active, []string{"k1", "k2"}) {
		t.Fatalf("unexpected active keys: %v", cfg.API.Keys.Active)
	}
	if cfg.API.Innertube.Key == nil || *cfg.API.Innertube.Key != key {
		t.Fatalf("expected innertube key %q, got %v", key, cfg.API.Innertube.Key)
	}
}

// TestConfigYAMLShape checks section order, null rendering and empty lists in
// the serialized document.
func TestConfigYAMLShape(t *testing.T) {
	cfg := models.NewConfig(2823, "", nil, nil)

	out, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	doc := string(out)

	sections := []string{"server:", "api:", "video:", "proxy:", "cache:", "instances:"}
	last := -1
	for _, s := range sections {
		idx := strings.Index(doc, "\n"+s)
		if s == "server:" {
			idx = strings.Index(doc, s)
		}
		if idx < 0 {
			t.Fatalf("section %q missing from document:\n%s", s, doc)
		}
		if idx < last {
			t.Fatalf("section %q out of order in document:\n%s", s, doc)
		}
		last = idx
	}

	if !strings.Contains(doc, "key: null") {
		t.Errorf("expected absent innertube key to render as null:\n%s", doc)
	}
	if !strings.Contains(doc, "active: []") {
		t.Errorf("expected empty active keys to render as []:\n%s", doc)
	}
	if !strings.Contains(doc, "redirect_uri: null") {
		t.Errorf("expected redirect_uri to render as null:\n%s", doc)
	}
}

// TestTidyKeyLists trims, dedupes and sorts key lists.
func TestTidyKeyLists(t *testing.T) {
	cfg := models.NewConfig(2823, "", []string{" b", "a", "a", "", "  "}, nil)
	cfg.API.Keys.Disabled = []string{"z ", "z"}

	cfg.Tidy()

	if !reflect.DeepEqual(cfg.API.Keys.Active, []string{"a", "b"}) {
		t.Fatalf("expected [a b], got %v", cfg.API.Keys.Active)
	}
	if !reflect.DeepEqual(cfg.API.Keys.Disabled, []string{"z"}) {
		t.Fatalf("expected [z], got %v", cfg.API.Keys.Disabled)
	}
}

// TestTidyQualities sorts quality labels numerically and dedupes.
func TestTidyQualities(t *testing.T) {
	cfg := models.NewConfig(2823, "", nil, nil)
	cfg.Video.AvailableQualities = []string{"720", "144", "1080p", "144", "240"}

	cfg.Tidy()

	want := []string{"144", "240", "720", "1080p"}
	if !reflect.DeepEqual(cfg.Video.AvailableQualities, want) {
		t.Fatalf("expected %v, got %v", want, cfg.Video.AvailableQualities)
	}
}

// TestTidyInstances dedupes instances ignoring case and trailing slashes.
func TestTidyInstances(t *testing.T) {
	cfg := models.NewConfig(2823, "", nil, nil)
	cfg.Instances = []string{
		"https://B.example/",
		"https://a.example",
		"https://b.example",
	}

	cfg.Tidy()

	if len(cfg.Instances) != 2 {
		t.Fatalf("expected 2 instances after dedup, got %v", cfg.Instances)
	}
	if !strings.Contains(strings.ToLower(cfg.Instances[0]), "a.example") {
		t.Fatalf("expected a.example first, got %v", cfg.Instances)
	}
}
