package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// clearEnv blanks every variable the loader reads so host settings do not
// leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"GHG_INPUT_DIR", "GHG_BACKEND", "GHG_KEYWORDS", "GHG_MODE", "GHG_WORKERS", "GHG_SECTORS",
		"DOCAI_PROJECT_ID", "DOCAI_PROCESSOR_ID", "DOCAI_LOCATION", "DOCAI_MAX_PAGES", "DOCAI_TIMEOUT",
		"LOG_LEVEL", "LOG_FORMAT", "SERVER_ADDR", "SERVER_SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(name, "")
	}
}

func TestDefaultTags(t *testing.T) {
	cfg := &Config{}
	if err := applyDefaults(reflect.ValueOf(cfg).Elem()); err != nil {
		t.Fatalf("applyDefaults() error = %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Backend != BackendDocAI {
		t.Errorf("Backend = %q, want %q", cfg.Backend, BackendDocAI)
	}
	if !reflect.DeepEqual(cfg.Keywords, []string{"scope 1", "scope 2", "scope 3"}) {
		t.Errorf("Keywords = %q", cfg.Keywords)
	}
	if cfg.Mode != "standard" {
		t.Errorf("Mode = %q, want %q", cfg.Mode, "standard")
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want %d", cfg.Workers, 1)
	}
	if cfg.DocAI.Location != "us" {
		t.Errorf("DocAI.Location = %q, want %q", cfg.DocAI.Location, "us")
	}
	if cfg.DocAI.MaxPages != 15 {
		t.Errorf("DocAI.MaxPages = %d, want %d", cfg.DocAI.MaxPages, 15)
	}
	if cfg.DocAI.Timeout != 2*time.Minute {
		t.Errorf("DocAI.Timeout = %v, want %v", cfg.DocAI.Timeout, 2*time.Minute)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":8080")
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "ghgextract.yaml")
	yaml := `
input_dir: /data/reports
backend: local
keywords: ["Scope 1", "Net Zero"]
workers: 4
docai:
  location: eu
  timeout: 30s
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("GHG_WORKERS", "8")
	t.Setenv("DOCAI_PROJECT_ID", "1234")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.InputDir != "/data/reports" || cfg.Backend != BackendLocal {
		t.Errorf("InputDir, Backend = %q, %q", cfg.InputDir, cfg.Backend)
	}
	if !reflect.DeepEqual(cfg.Keywords, []string{"scope 1", "net zero"}) {
		t.Errorf("Keywords = %q, want lower-cased file values", cfg.Keywords)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want env override %d", cfg.Workers, 8)
	}
	if cfg.DocAI.Location != "eu" || cfg.DocAI.Timeout != 30*time.Second {
		t.Errorf("DocAI = %+v", cfg.DocAI)
	}
	if cfg.DocAI.MaxPages != 15 {
		t.Errorf("DocAI.MaxPages = %d, want default kept", cfg.DocAI.MaxPages)
	}
	if cfg.DocAI.ProjectID != "1234" {
		t.Errorf("DocAI.ProjectID = %q", cfg.DocAI.ProjectID)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DOCAI_TIMEOUT", "soon")

	if _, err := Load(""); err == nil || !strings.Contains(err.Error(), "DOCAI_TIMEOUT") {
		t.Errorf("Load() error = %v, want DOCAI_TIMEOUT error", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); !os.IsNotExist(err) {
		t.Errorf("LoadFile() error = %v, want not-exist", err)
	}
}

func TestSetField_Slice(t *testing.T) {
	var cfg Config
	v := reflect.ValueOf(&cfg).Elem().FieldByName("Sectors")
	if err := setField(v, " Airlines , ,Banks"); err != nil {
		t.Fatalf("setField() error = %v", err)
	}
	if !reflect.DeepEqual(cfg.Sectors, []string{"Airlines", "Banks"}) {
		t.Errorf("Sectors = %q", cfg.Sectors)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr []string
	}{
		{
			name:   "local backend defaults",
			modify: func(c *Config) { c.Backend = BackendLocal },
		},
		{
			name: "docai with processor",
			modify: func(c *Config) {
				c.DocAI.ProjectID = "1"
				c.DocAI.ProcessorID = "p"
			},
		},
		{
			name:    "docai without processor",
			modify:  func(c *Config) {},
			wantErr: []string{"docai.project_id", "docai.processor_id"},
		},
		{
			name: "collects every failure",
			modify: func(c *Config) {
				c.Backend = "ocr"
				c.Mode = "verbose"
				c.Workers = 0
				c.Logging.Format = "xml"
			},
			wantErr: []string{"backend", "mode", "workers", "logging.format"},
		},
	}

	for _, tt := range tests {
		cfg := Default()
		tt.modify(cfg)
		err := cfg.Validate()

		if len(tt.wantErr) == 0 {
			if err != nil {
				t.Errorf("%s: Validate() error = %v", tt.name, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("%s: Validate() = nil, want errors %q", tt.name, tt.wantErr)
			continue
		}
		for _, want := range tt.wantErr {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("%s: Validate() error %q does not mention %q", tt.name, err, want)
			}
		}
	}
}
