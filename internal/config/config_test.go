package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// clearEnv unsets every override for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvDataDir, EnvDataURL, EnvAssetsURL, EnvAddr, EnvLogLevel} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.LabName != DefaultLabName || cfg.Addr != DefaultAddr || cfg.LogLevel != DefaultLogLevel {
		t.Errorf("Default() = %+v", cfg)
	}
	if cfg.FetchTimeout != DefaultFetchTimeout {
		t.Errorf("FetchTimeout = %v", cfg.FetchTimeout)
	}
	if len(cfg.YearButtons) == 0 {
		t.Error("no default year buttons")
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	path := filepath.Join(root, ConfigFile)
	writeFile(t, path, `
lab_name: Vision Lab
data_dir: data
assets_dir: /srv/assets
assets_url: /static
year_buttons: ["2025", "2024", "-2023"]
fetch_rate: 2
fetch_timeout: 3s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := &Config{
		LabName:        "Vision Lab",
		DataDir:        filepath.Join(root, "data"),
		AssetsURL:      "/static",
		AssetsDir:      "/srv/assets",
		PeopleImageDir: DefaultPeopleImageDir,
		Addr:           DefaultAddr,
		LogLevel:       DefaultLogLevel,
		YearButtons:    []string{"2025", "2024", "-2023"},
		FetchRate:      2,
		FetchTimeout:   3 * time.Second,
		Path:           path,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	path := filepath.Join(root, ConfigFile)
	writeFile(t, path, "data_dir: data\naddr: :9000\n")

	t.Setenv(EnvDataURL, "https://example.org/data")
	t.Setenv(EnvAddr, ":7000")
	t.Setenv(EnvLogLevel, "DEBUG")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataURL != "https://example.org/data" || !cfg.UsesRemoteData() {
		t.Errorf("DataURL = %q", cfg.DataURL)
	}
	if cfg.Addr != ":7000" {
		t.Errorf("Addr = %q, want :7000", cfg.Addr)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	path := filepath.Join(root, ConfigFile)
	writeFile(t, path, "lab_name: X\n")
	writeFile(t, filepath.Join(root, EnvFile), EnvAddr+"=:6000\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != ":6000" {
		t.Errorf("Addr = %q, want value from .env", cfg.Addr)
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("Load(missing) succeeded")
	}

	path := filepath.Join(t.TempDir(), ConfigFile)
	writeFile(t, path, "lab_name: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Error("Load(invalid yaml) succeeded")
	}
}

func TestFind(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := t.TempDir()
	path := filepath.Join(root, ConfigFile)
	writeFile(t, path, "lab_name: X\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := Find(nested)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if got != path {
		t.Errorf("Find() = %q, want %q", got, path)
	}
}

func TestFindGlobalFallback(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	if _, err := Find(t.TempDir()); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Find() error = %v, want ErrConfigNotFound", err)
	}

	global := filepath.Join(xdg, GlobalConfigDir, ConfigFile)
	writeFile(t, global, "lab_name: X\n")
	got, err := Find(t.TempDir())
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if got != global {
		t.Errorf("Find() = %q, want %q", got, global)
	}
}

func TestValidate(t *testing.T) {
	dataDir := t.TempDir()
	file := filepath.Join(dataDir, "file.txt")
	writeFile(t, file, "x")

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		ok      bool
	}{
		{"valid dir", func(c *Config) { c.DataDir = dataDir }, nil, true},
		{"valid url", func(c *Config) { c.DataURL = "https://example.org" }, nil, true},
		{"no source", func(c *Config) {}, ErrNoDataSource, false},
		{"bad level", func(c *Config) { c.DataDir = dataDir; c.LogLevel = "loud" }, nil, false},
		{"bad year button", func(c *Config) { c.DataDir = dataDir; c.YearButtons = []string{"abc"} }, nil, false},
		{"missing data dir", func(c *Config) { c.DataDir = filepath.Join(dataDir, "nope") }, nil, false},
		{"data dir is a file", func(c *Config) { c.DataDir = file }, nil, false},
		{"negative rate", func(c *Config) { c.DataDir = dataDir; c.FetchRate = -1 }, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() succeeded")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ConfigFile)
	cfg := Default()
	cfg.DataURL = "https://example.org/data"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cfg.Path = path
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}
	if got := ExpandPath("~/data"); got != filepath.Join(home, "data") {
		t.Errorf("ExpandPath(~/data) = %q", got)
	}
	if got := ExpandPath("/abs"); got != "/abs" {
		t.Errorf("ExpandPath(/abs) = %q", got)
	}
}
