package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rupor-github/gencfg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Editor.TableRows != 3 || cfg.Editor.TableColumns != 3 {
		t.Errorf("default table shape = %dx%d, want 3x3", cfg.Editor.TableRows, cfg.Editor.TableColumns)
	}
	if cfg.Service.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Service.Timeout)
	}
	if cfg.Editor.Images.SVG != SVGModeKeep {
		t.Errorf("SVG = %v, want keep", cfg.Editor.Images.SVG)
	}
	// template field must survive expansion untouched
	if !strings.Contains(cfg.Output.OutputNameTemplate, "{{ .Name }}") {
		t.Errorf("output_name_template was expanded: %q", cfg.Output.OutputNameTemplate)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
editor:
  font: Times-Roman
  table_rows: 5
  images:
    max_width: 800
    jpeq_quality_level: 70
    svg: rasterize
service:
  base_url: https://pdf.example.com
  token: abc
  timeout: 5s
logging:
  console:
    level: debug
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Editor.Font != "Times-Roman" || cfg.Editor.TableRows != 5 {
		t.Errorf("unexpected editor section: %+v", cfg.Editor)
	}
	// defaults survive for unspecified fields
	if cfg.Editor.TableColumns != 3 || cfg.Editor.FontSize != 12 {
		t.Errorf("defaults lost: %+v", cfg.Editor)
	}
	if cfg.Editor.Images.MaxWidth != 800 || cfg.Editor.Images.MaxHeight != 2000 {
		t.Errorf("unexpected images section: %+v", cfg.Editor.Images)
	}
	if cfg.Service.BaseURL != "https://pdf.example.com" || string(cfg.Service.Token) != "abc" || cfg.Service.Timeout != 5*time.Second {
		t.Errorf("unexpected service section: %+v", cfg.Service)
	}

	lim := cfg.Editor.Images.Limits()
	if !lim.RasterizeSVG || lim.JPEGQuality != 70 || lim.MaxWidth != 800 {
		t.Errorf("unexpected limits: %+v", lim)
	}
	d := cfg.Editor.Defaults()
	if d.Font != "Times-Roman" || d.TableRows != 5 || d.SpacerHeight != 20 {
		t.Errorf("unexpected defaults: %+v", d)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\neditor:\n  font: x\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"wrong version", "version: 2\n"},
		{"bad svg mode", "version: 1\neditor:\n  images:\n    svg: vectorize\n"},
		{"bad table shape", "version: 1\neditor:\n  table_columns: 0\n"},
		{"bad url", "version: 1\nservice:\n  base_url: not a url\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {}
	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	cfg := &Config{}
	if err := decode(data, cfg); err != nil {
		t.Fatalf("Prepared config cannot be decoded: %v", err)
	}
	if err := check(cfg); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Service.Token = "do-not-show"

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if strings.Contains(string(data), "do-not-show") {
		t.Error("token leaked into dump")
	}

	cfg2 := &Config{}
	if err := decode(data, cfg2); err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Editor != cfg.Editor || cfg2.Service.Timeout != cfg.Service.Timeout {
		t.Errorf("mismatch after dump/load:\n%+v\n%+v", cfg2.Editor, cfg.Editor)
	}
}

func TestCheck_WrapsValidationError(t *testing.T) {
	cfg := &Config{}
	if err := decode([]byte("version: 99\n"), cfg); err != nil {
		t.Fatal(err)
	}
	err := check(cfg)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "validat") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error, got bare error: %v", err)
	}
}

func TestSVGMode(t *testing.T) {
	for _, name := range SVGModeNames() {
		m, err := ParseSVGMode(name)
		if err != nil {
			t.Fatalf("ParseSVGMode(%q) error = %v", name, err)
		}
		if m.String() != name || !m.IsValid() {
			t.Errorf("round trip failed for %q", name)
		}
	}
	if _, err := ParseSVGMode("bogus"); !errors.Is(err, ErrInvalidSVGMode) {
		t.Errorf("expected ErrInvalidSVGMode, got %v", err)
	}
}
