package domain

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNormalizeRank(t *testing.T) {
	cases := map[string]string{
		"特化Ⅲ":   "特化III",
		"特化Ⅰ":   "特化I",
		"特化II":  "特化II",
		"７":     "7",
		" 1 ":   "1",
		"ランク":   "ランク",
	}
	for in, want := range cases {
		if got := NormalizeRank(in); got != want {
			t.Fatalf("NormalizeRank(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestIsRank(t *testing.T) {
	for _, r := range RankOrder {
		if !IsRank(r) {
			t.Fatalf("expected %q to be a rank", r)
		}
	}
	for _, s := range []string{"", "0", "8", "特化IV", "ランク"} {
		if IsRank(s) {
			t.Fatalf("expected %q not to be a rank", s)
		}
	}
}

func TestConfigRejectsUnknownKeys(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal([]byte("data_dir: x\nbogus: 1\n"), &cfg); err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if err := yaml.Unmarshal([]byte("data_dir: x\ndefaults:\n  targets: 2\n"), &cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataDir != "x" || cfg.Defaults.Targets != 2 {
		t.Fatalf("unexpected config: %#v", cfg)
	}
}
