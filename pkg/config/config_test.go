package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestInitConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	config, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), config); diff != "" {
		t.Errorf("InitConfig mismatch (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Default config file not created: %v", err)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if diff := cmp.Diff(config, reloaded); diff != "" {
		t.Errorf("Saved config did not round-trip (-want +got):\n%s", diff)
	}
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, `
[analysis]
rank_limit = 5
start_word = "It"
`)
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	want := DefaultConfig()
	want.Analysis.RankLimit = 5
	want.Analysis.StartWord = "It"
	if diff := cmp.Diff(want, config); diff != "" {
		t.Errorf("LoadConfig mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := writeConfig(t, `
[source]
book_path = "emma.txt"

[analysis]
rank_limit = "twenty"
sentence_budget = 12

[cli]
default_limit = 5
`)
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	want := DefaultConfig()
	want.Source.BookPath = "emma.txt"
	want.Analysis.SentenceBudget = 12
	want.CLI.DefaultLimit = 5
	if diff := cmp.Diff(want, config); diff != "" {
		t.Errorf("Partial recovery mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigInvalidSyntax(t *testing.T) {
	path := writeConfig(t, "[analysis\nrank_limit = ")
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig should fall back to defaults, got error: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), config); diff != "" {
		t.Errorf("Expected defaults (-want +got):\n%s", diff)
	}
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := writeConfig(t, "[server]\nmax_limit = 8\n")
	config, used, err := LoadConfigWithPriority(path)
	if err != nil {
		t.Fatalf("LoadConfigWithPriority failed: %v", err)
	}
	if used != path {
		t.Errorf("Expected config path %s, got %s", path, used)
	}
	if config.Server.MaxLimit != 8 {
		t.Errorf("Expected max_limit 8, got %d", config.Server.MaxLimit)
	}
}

func TestSourceMarkers(t *testing.T) {
	m := DefaultConfig().Source.Markers()
	if m.Start != "Chapter 1" || m.ChapterPrefix != "Chapter " {
		t.Errorf("Unexpected markers: %+v", m)
	}
}

func TestUpdate(t *testing.T) {
	path := writeConfig(t, "")
	config := DefaultConfig()
	limit, filter := 12, false
	if err := config.Update(path, &limit, nil, nil, &filter); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if reloaded.Server.MaxLimit != 12 || reloaded.Server.EnableFilter {
		t.Errorf("Update not persisted: %+v", reloaded.Server)
	}
	if reloaded.Server.MinPrefix != DefaultConfig().Server.MinPrefix {
		t.Errorf("Unset field changed: %+v", reloaded.Server)
	}
}
