package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/isometry-bench/internal/bench"
)

func TestDefaultBenchConfig(t *testing.T) {
	cfg := DefaultBenchConfig()

	if cfg.TotalSamples == nil || *cfg.TotalSamples != 1000 {
		t.Errorf("Expected TotalSamples 1000, got %v", cfg.TotalSamples)
	}
	if cfg.SubSamples == nil || *cfg.SubSamples != 100000 {
		t.Errorf("Expected SubSamples 100000, got %v", cfg.SubSamples)
	}
	if cfg.Seed != nil {
		t.Errorf("Expected nil Seed, got %v", *cfg.Seed)
	}
	if cfg.GetLogLevel() != "info" {
		t.Errorf("GetLogLevel() = %q, want info", cfg.GetLogLevel())
	}
	assert.Equal(t, bench.DefaultConfig(), cfg.BenchRunConfig())
}

func TestEmptyBenchConfig_GettersFallBack(t *testing.T) {
	cfg := EmptyBenchConfig()

	assert.Equal(t, 1000, cfg.GetTotalSamples())
	assert.Equal(t, 100000, cfg.GetSubSamples())
	assert.False(t, cfg.GetVerify())
	assert.Equal(t, 1e-9, cfg.GetVerifyTolerance())
	assert.Equal(t, "", cfg.GetLogLevel())

	_, ok := cfg.GetSeed()
	assert.False(t, ok)
}

func TestLoadBenchConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bench.json")

	testJSON := `{
  "total_samples": 10,
  "sub_samples": 500,
  "seed": 18446744073709551615,
  "verify": true
}`
	require.NoError(t, os.WriteFile(configPath, []byte(testJSON), 0644))

	cfg, err := LoadBenchConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.GetTotalSamples())
	assert.Equal(t, 500, cfg.GetSubSamples())
	assert.True(t, cfg.GetVerify())
	// omitted field keeps its default
	assert.Equal(t, 1e-9, cfg.GetVerifyTolerance())

	seed, ok := cfg.GetSeed()
	assert.True(t, ok)
	assert.Equal(t, uint64(18446744073709551615), seed)

	run := cfg.BenchRunConfig()
	assert.Equal(t, bench.Config{TotalSamples: 10, SubSamples: 500, Verify: true, VerifyTolerance: 1e-9}, run)
}

func TestLoadBenchConfig_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(tmpDir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0644))
		return p
	}

	tests := []struct {
		name    string
		path    string
		wantMsg string
	}{
		{"wrong extension", write("bench.yaml", "{}"), ".json extension"},
		{"missing file", filepath.Join(tmpDir, "missing.json"), "failed to stat"},
		{"bad json", write("bad.json", "{"), "failed to parse"},
		{"negative samples", write("neg.json", `{"total_samples": -1}`), "total_samples"},
		{"negative sub samples", write("negsub.json", `{"sub_samples": -3}`), "sub_samples"},
		{"zero tolerance", write("tol.json", `{"verify_tolerance": 0}`), "verify_tolerance"},
		{"bad log level", write("lvl.json", `{"log_level": "chatty"}`), "log_level"},
		{"too large", write("big.json", `{"pad":"`+strings.Repeat("x", 1024*1024)+`"}`), "too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBenchConfig(tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestMustLoadDefaultConfig(t *testing.T) {
	cfg := MustLoadDefaultConfig()
	assert.Equal(t, DefaultBenchConfig().BenchRunConfig(), cfg.BenchRunConfig())
	assert.Equal(t, "info", cfg.GetLogLevel())
}
