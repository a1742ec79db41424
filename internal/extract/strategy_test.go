package extract

import "testing"

// White-box checks that each strategy works in isolation, since the literal
// fast path shadows the embedded-object scan on most real pages.

func TestMatchLiteral(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{"plain", `"TOKEN": "abc"`, "abc", true},
		{"no space", `"TOKEN":"abc"`, "abc", true},
		{"newline around colon", "\"TOKEN\"\n:\n\"abc\"", "abc", true},
		{"missing", `"OTHER": "abc"`, "", false},
		{"empty value", `"TOKEN": ""`, "", false},
		{"unquoted name", `TOKEN: "abc"`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := matchLiteral("TOKEN", tt.text)
			if ok != tt.found || got != tt.want {
				t.Fatalf("matchLiteral(%q) = %q, %v; want %q, %v", tt.text, got, ok, tt.want, tt.found)
			}
		})
	}
}

// TestMatchLiteralRepeatedAndMetaNames exercises the per-name pattern cache:
// repeated lookups stay correct, and regex metacharacters in a key name are
// matched literally.
func TestMatchLiteralRepeatedAndMetaNames(t *testing.T) {
	for i := 0; i < 3; i++ {
		got, ok := matchLiteral("TOKEN", `"TOKEN": "abc"`)
		if !ok || got != "abc" {
			t.Fatalf("lookup %d: matchLiteral = %q, %v; want abc, true", i, got, ok)
		}
	}

	metaName := "A.B(C)"
	got, ok := matchLiteral(metaName, `"A.B(C)": "meta"`)
	if !ok || got != "meta" {
		t.Fatalf("matchLiteral(%q) = %q, %v; want meta, true", metaName, got, ok)
	}
	if _, ok := matchLiteral(metaName, `"AxB(C)": "meta"`); ok {
		t.Fatalf("expected %q not to match as a wildcard", metaName)
	}
}

func TestMatchEmbeddedObject(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{"simple call", `ytcfg.set({"TOKEN": "abc"});`, "abc", true},
		{"multiline", "init(\n{\n \"TOKEN\": \"abc\",\n \"X\": 1\n}\n);", "abc", true},
		{"invalid json", `ytcfg.set({TOKEN: abc});`, "", false},
		{"key absent", `ytcfg.set({"X": "y"});`, "", false},
		{"non-string value", `ytcfg.set({"TOKEN": 5});`, "", false},
		{"no terminator", `ytcfg.set({"TOKEN": "abc"})`, "", false},
		{"no call at all", `just text`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := matchEmbeddedObject("TOKEN", tt.text)
			if ok != tt.found || got != tt.want {
				t.Fatalf("matchEmbeddedObject(%q) = %q, %v; want %q, %v", tt.text, got, ok, tt.want, tt.found)
			}
		})
	}
}
