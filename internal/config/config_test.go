package config_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"rowgroup/internal/config"
	"rowgroup/internal/matching"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("ROWGROUP_LOG_LEVEL", "")
	t.Setenv("ROWGROUP_LOG_FORMAT", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	wantPath := filepath.Join(tempHome, ".config", "rowgroup", "config.toml")
	if resolved != wantPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, wantPath)
	}
	if cfg.Output.IDHeader != "ID" {
		t.Fatalf("unexpected id header %q", cfg.Output.IDHeader)
	}
	if cfg.Output.Settle || cfg.Output.Summary {
		t.Fatal("expected settle and summary disabled by default")
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if len(cfg.Columns()) != 0 {
		t.Fatalf("expected no column overrides, got %v", cfg.Columns())
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv("ROWGROUP_LOG_LEVEL", "")
	t.Setenv("ROWGROUP_LOG_FORMAT", "")
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "rowgroup.toml")

	type payload struct {
		Matching struct {
			Columns map[string][]string `toml:"columns"`
		} `toml:"matching"`
		Output struct {
			IDHeader string `toml:"id_header"`
			Settle   bool   `toml:"settle"`
		} `toml:"output"`
		Logging struct {
			Level string `toml:"level"`
			File  string `toml:"file"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Matching.Columns = map[string][]string{"Email": {" Work Email ", "", "Home Email"}}
	custom.Output.IDHeader = " GroupID "
	custom.Output.Settle = true
	custom.Logging.Level = "DEBUG"
	custom.Logging.File = filepath.Join(tempDir, "run.log")
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Output.IDHeader != "GroupID" || !cfg.Output.Settle {
		t.Fatalf("unexpected output section: %+v", cfg.Output)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected lowercased level, got %q", cfg.Logging.Level)
	}
	want := map[matching.FieldGroup][]string{matching.FieldGroupEmail: {"Work Email", "Home Email"}}
	if got := cfg.Columns(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Columns() = %v, want %v", got, want)
	}
}

func TestLoadMissingExplicitPathFallsBackToDefaults(t *testing.T) {
	t.Setenv("ROWGROUP_LOG_LEVEL", "")
	t.Setenv("ROWGROUP_LOG_FORMAT", "")
	path := filepath.Join(t.TempDir(), "absent.toml")

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists || resolved != path {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Output.IDHeader != "ID" {
		t.Fatalf("expected defaults, got %+v", cfg.Output)
	}
}

func TestEnvOverridesLogging(t *testing.T) {
	t.Setenv("ROWGROUP_LOG_LEVEL", "Info")
	t.Setenv("ROWGROUP_LOG_FORMAT", "JSON")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Fatalf("expected env overrides, got %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("ROWGROUP_LOG_LEVEL", "")
	t.Setenv("ROWGROUP_LOG_FORMAT", "")

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown field group", "[matching.columns]\nfax = [\"Fax\"]\n", "unknown field group"},
		{"empty column list", "[matching.columns]\nphone = [\" \"]\n", "matching.columns.phone"},
		{"bad level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
		{"bad format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"unknown key", "[output]\ncolour = true\n", "parse config"},
		{"malformed", "[output\n", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rowgroup.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Load error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	t.Setenv("ROWGROUP_LOG_LEVEL", "")
	t.Setenv("ROWGROUP_LOG_FORMAT", "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	defaults := matching.DefaultColumns()
	if got := cfg.Columns(); !reflect.DeepEqual(got, defaults) {
		t.Fatalf("sample columns %v differ from defaults %v", got, defaults)
	}
}

func TestExpandPathHandlesTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := config.ExpandPath("~/data/in.csv")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if want := filepath.Join(home, "data", "in.csv"); got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}
