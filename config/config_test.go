package config

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/gomonad/errors"
)

type mockFS struct {
	files  map[string]bool
	loaded []string
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error {
	m.loaded = append(m.loaded, path)
	return nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestSettingsApplyDefaults(t *testing.T) {
	var s Settings
	s.ApplyDefaults()

	if s.Name != "gomonad" {
		t.Errorf("expected name 'gomonad', got %q", s.Name)
	}
	if s.Environment != "development" {
		t.Errorf("expected 'development', got %q", s.Environment)
	}
	if s.Logging.Level != "warn" {
		t.Errorf("expected logging level 'warn', got %q", s.Logging.Level)
	}
	if s.Telemetry.ServiceName != "gomonad" {
		t.Errorf("expected telemetry service name to follow name, got %q", s.Telemetry.ServiceName)
	}
	if s.Telemetry.Environment != "development" {
		t.Errorf("expected telemetry environment to follow environment, got %q", s.Telemetry.Environment)
	}
	if s.Telemetry.Enabled() {
		t.Error("expected telemetry disabled without an endpoint")
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
		errMsg  string
	}{
		{"defaults", func(*Settings) {}, false, ""},
		{"staging", func(s *Settings) { s.Environment = "staging" }, false, ""},
		{"missing name", func(s *Settings) { s.Name = "" }, true, "config.name is required"},
		{"invalid environment", func(s *Settings) { s.Environment = "qa" }, true, "config.environment must be one of"},
		{"invalid log level", func(s *Settings) { s.Logging.Level = "loud" }, true, "config.logging"},
		{"invalid sample rate", func(s *Settings) { s.Telemetry.SampleRate = 2 }, true, "config.telemetry"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var s Settings
			s.ApplyDefaults()
			tc.mutate(&s)
			err := s.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tc.errMsg) {
					t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yml", `
name: pipeline
environment: staging
logging:
  level: debug
  format: json
telemetry:
  endpoint: collector:4318
  sample_rate: 0.25
  interval: 30s
`)

	s, err := Load(WithConfigFile(configPath), WithFileSystem(&RealFileSystem{}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Name != "pipeline" {
		t.Errorf("expected name 'pipeline', got %q", s.Name)
	}
	if s.Environment != "staging" {
		t.Errorf("expected environment 'staging', got %q", s.Environment)
	}
	if s.Logging.Level != "debug" || s.Logging.Format != "json" {
		t.Errorf("unexpected logging config: %+v", s.Logging)
	}
	if s.Telemetry.Endpoint != "collector:4318" {
		t.Errorf("expected endpoint 'collector:4318', got %q", s.Telemetry.Endpoint)
	}
	if s.Telemetry.SampleRate != 0.25 {
		t.Errorf("expected sample rate 0.25, got %v", s.Telemetry.SampleRate)
	}
	if s.Telemetry.Interval != 30*time.Second {
		t.Errorf("expected interval 30s, got %v", s.Telemetry.Interval)
	}
	if s.Telemetry.ServiceName != "pipeline" {
		t.Errorf("expected telemetry service name 'pipeline', got %q", s.Telemetry.ServiceName)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yml", `
logging:
  level: info
`)
	t.Setenv("GOMONAD_LOGGING_LEVEL", "error")
	t.Setenv("GOMONAD_TELEMETRY_SAMPLE_RATE", "0.5")
	t.Setenv("UNRELATED_LOGGING_LEVEL", "debug")

	s, err := Load(WithConfigFile(configPath))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Logging.Level != "error" {
		t.Errorf("expected env to override level, got %q", s.Logging.Level)
	}
	if s.Telemetry.SampleRate != 0.5 {
		t.Errorf("expected sample rate 0.5, got %v", s.Telemetry.SampleRate)
	}
}

func TestLoadWithEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "GOMONAD_LOGGING_FORMAT=json\nGOMONAD_ENVIRONMENT=test\n")
	t.Cleanup(func() {
		_ = os.Unsetenv("GOMONAD_LOGGING_FORMAT")
		_ = os.Unsetenv("GOMONAD_ENVIRONMENT")
	})

	s, err := Load(WithEnvFile(envPath), WithConfigFile(filepath.Join(dir, "missing.yml")))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Logging.Format != "json" {
		t.Errorf("expected format from .env, got %q", s.Logging.Format)
	}
	if s.Environment != "test" {
		t.Errorf("expected environment from .env, got %q", s.Environment)
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yml", `
logging:
  level: loud
`)

	_, err := Load(WithConfigFile(configPath))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errors.ErrCodeConfigInvalid) {
		t.Errorf("expected CONFIG_INVALID, got %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(WithFileSystem(&mockFS{}))
	if err != nil {
		t.Fatalf("expected Load to succeed without files, got %v", err)
	}
	if s.Name != "gomonad" {
		t.Errorf("expected default name, got %q", s.Name)
	}
}

type appSettings struct {
	Settings  `yaml:",inline" mapstructure:",squash"`
	BatchSize int `yaml:"batch_size" mapstructure:"batch_size"`
}

func TestLoadIntoEmbedded(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yml", `
name: embedded
batch_size: 64
`)

	var cfg appSettings
	if err := LoadInto(&cfg, WithConfigFile(configPath)); err != nil {
		t.Fatalf("LoadInto failed: %v", err)
	}
	if cfg.Name != "embedded" || cfg.BatchSize != 64 {
		t.Errorf("unexpected settings: %+v", cfg)
	}
	if cfg.GetSettings().Logging.Format != "console" {
		t.Errorf("expected defaults applied through the embedded settings")
	}
}

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./config/config.yml": true,
		"./.env":              true,
	}}
	resolver := &Resolver{FileSystem: fs}

	files := resolver.ResolveFiles(LoaderConfig{})
	if files.ConfigFile != "./config/config.yml" {
		t.Errorf("expected ./config/config.yml, got %q", files.ConfigFile)
	}
	if files.EnvFile != "./.env" {
		t.Errorf("expected ./.env, got %q", files.EnvFile)
	}

	files = resolver.ResolveFiles(LoaderConfig{ConfigFile: "/explicit.yml"})
	if files.ConfigFile != "/explicit.yml" {
		t.Errorf("expected explicit path to win, got %q", files.ConfigFile)
	}
}

func TestLoadUsesFileSystemForEnv(t *testing.T) {
	fs := &mockFS{files: map[string]bool{"./.env": true}}
	if _, err := Load(WithFileSystem(fs)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !slices.Equal(fs.loaded, []string{"./.env"}) {
		t.Errorf("expected ./.env to be loaded, got %v", fs.loaded)
	}
}

func TestGenerateEnvKeyVariants(t *testing.T) {
	got := generateEnvKeyVariants("TELEMETRY_SAMPLE_RATE")
	for _, want := range []string{"telemetry_sample_rate", "telemetry.sample.rate", "telemetry.sample_rate"} {
		if !slices.Contains(got, want) {
			t.Errorf("expected variant %q in %v", want, got)
		}
	}
	if got := generateEnvKeyVariants("NAME"); !slices.Equal(got, []string{"name"}) {
		t.Errorf("expected [name], got %v", got)
	}
}

func TestOptions(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	WithFileSystem(fs)(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)

	if lc.FileSystem != fs {
		t.Error("expected FileSystem to be set")
	}
	if lc.ConfigFile != "/path/to/config.yml" {
		t.Errorf("expected config file path, got %q", lc.ConfigFile)
	}
	if lc.EnvFile != "/path/to/.env" {
		t.Errorf("expected env file path, got %q", lc.EnvFile)
	}
}

func TestApplyWithoutTelemetry(t *testing.T) {
	var s Settings
	s.ApplyDefaults()

	shutdown, err := Apply(context.Background(), &s)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if shutdown == nil {
		t.Fatal("expected non-nil shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("unexpected shutdown error: %v", err)
	}
}

func TestApplyWithTelemetry(t *testing.T) {
	var s Settings
	s.Telemetry.Endpoint = "localhost:4318"
	s.Telemetry.Insecure = true
	s.ApplyDefaults()

	shutdown, err := Apply(context.Background(), &s)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	// No collector is listening; only the wiring is under test.
	_ = shutdown(ctx)
}

func TestLoadDefaultSampleRate(t *testing.T) {
	s, err := Load(WithFileSystem(&mockFS{}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Telemetry.SampleRate != 1.0 {
		t.Errorf("expected default sample rate 1.0, got %v", s.Telemetry.SampleRate)
	}
}

func TestBindEnvVarsStripsQuotes(t *testing.T) {
	t.Setenv("GOMONAD_NAME", `"quoted"`)

	s, err := Load(WithFileSystem(&mockFS{}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Name != "quoted" {
		t.Errorf("expected quotes stripped, got %q", s.Name)
	}
}
