package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInitAndValidate(t *testing.T) {
	isolateConfig(t)

	out, _, err := runCLI(t, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "defaults were used")
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "img2rle", "config.toml")
	out, _, err = runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected init to refuse overwriting without --overwrite")
	}
	if _, _, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, "--config", target, "config", "validate")
	if err != nil {
		t.Fatalf("config validate with file: %v", err)
	}
	requireContains(t, out, "Config path: "+target)
	requireContains(t, out, "Threshold: 128")
}

func TestConfigValidateRejectsBadFile(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[grid]\nthreshold = 999\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, err := runCLI(t, "--config", path, "config", "validate"); err == nil {
		t.Fatal("expected validation failure")
	}
}
