package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vilab/labsite/internal/config"
	"github.com/vilab/labsite/internal/datasource"
)

func setFlags(t *testing.T, cfgPath, dataDir string) {
	t.Helper()
	oldConfig, oldData := configPath, dataDirFlag
	configPath, dataDirFlag = cfgPath, dataDir
	t.Cleanup(func() { configPath, dataDirFlag = oldConfig, oldData })

	for _, env := range []string{config.EnvDataDir, config.EnvDataURL, config.EnvAssetsURL, config.EnvAddr, config.EnvLogLevel} {
		t.Setenv(env, "")
	}
}

func TestLoadConfigDataDirFlag(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, config.ConfigFile)
	content := "lab_name: TESTLAB\ndata_url: https://example.com/data\n"
	if err := os.WriteFile(cfgFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	setFlags(t, cfgFile, "")
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.LabName != "TESTLAB" || !cfg.UsesRemoteData() {
		t.Errorf("cfg = %+v", cfg)
	}
	if _, ok := newFetcher(cfg).(*datasource.HTTPFetcher); !ok {
		t.Errorf("newFetcher = %T, want *datasource.HTTPFetcher", newFetcher(cfg))
	}

	// --data-dir replaces the remote source.
	setFlags(t, cfgFile, dir)
	cfg, err = loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.DataDir != dir || cfg.UsesRemoteData() {
		t.Errorf("DataDir = %q, DataURL = %q", cfg.DataDir, cfg.DataURL)
	}
	f, ok := newFetcher(cfg).(datasource.DirFetcher)
	if !ok {
		t.Fatalf("newFetcher = %T, want datasource.DirFetcher", newFetcher(cfg))
	}
	if f.Dir != dir {
		t.Errorf("Dir = %q, want %q", f.Dir, dir)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	setFlags(t, filepath.Join(t.TempDir(), "missing.yml"), "")
	if _, err := loadConfig(); err == nil {
		t.Error("loadConfig succeeded for a missing explicit config file")
	}
}
