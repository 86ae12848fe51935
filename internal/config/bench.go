package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/isometry-bench/internal/bench"
	"github.com/banshee-data/isometry-bench/internal/monitoring"
)

// DefaultConfigPath is the path to the canonical benchmark defaults file.
const DefaultConfigPath = "config/bench.defaults.json"

// BenchConfig represents the benchmark configuration file. Every field is
// optional; Get* accessors supply the default for omitted fields.
type BenchConfig struct {
	TotalSamples    *int     `json:"total_samples,omitempty"`
	SubSamples      *int     `json:"sub_samples,omitempty"`
	Seed            *uint64  `json:"seed,omitempty"` // nil draws a random seed
	Verify          *bool    `json:"verify,omitempty"`
	VerifyTolerance *float64 `json:"verify_tolerance,omitempty"`
	LogLevel        *string  `json:"log_level,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }
func ptrString(v string) *string    { return &v }
func ptrInt(v int) *int             { return &v }

// EmptyBenchConfig returns a BenchConfig with all fields set to nil.
func EmptyBenchConfig() *BenchConfig {
	return &BenchConfig{}
}

// DefaultBenchConfig returns a BenchConfig with every default filled in.
func DefaultBenchConfig() *BenchConfig {
	d := bench.DefaultConfig()
	return &BenchConfig{
		TotalSamples:    ptrInt(d.TotalSamples),
		SubSamples:      ptrInt(d.SubSamples),
		Verify:          ptrBool(d.Verify),
		VerifyTolerance: ptrFloat64(d.VerifyTolerance),
		LogLevel:        ptrString("info"),
	}
}

// LoadBenchConfig loads a BenchConfig from a JSON file.
// The file is validated to ensure it has a .json extension and is under the max file size.
// Fields omitted from the JSON file retain their default values, so
// partial configs are safe.
func LoadBenchConfig(path string) (*BenchConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyBenchConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads the canonical defaults from DefaultConfigPath.
// It searches for the file in the current directory and common parent directories.
// Panics if the file cannot be loaded, intended for test setup.
func MustLoadDefaultConfig() *BenchConfig {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,       // from cmd/
		"../../" + DefaultConfigPath,    // from internal/config/, cmd/isobench/
		"../../../" + DefaultConfigPath, // deeper packages
	}
	for _, path := range candidates {
		if cfg, err := LoadBenchConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that the configuration values are valid.
func (c *BenchConfig) Validate() error {
	if c.TotalSamples != nil && *c.TotalSamples < 0 {
		return fmt.Errorf("total_samples must be non-negative, got %d", *c.TotalSamples)
	}
	if c.SubSamples != nil && *c.SubSamples < 0 {
		return fmt.Errorf("sub_samples must be non-negative, got %d", *c.SubSamples)
	}
	if c.VerifyTolerance != nil && *c.VerifyTolerance <= 0 {
		return fmt.Errorf("verify_tolerance must be positive, got %g", *c.VerifyTolerance)
	}
	if c.LogLevel != nil {
		if _, err := monitoring.ParseLevel(*c.LogLevel); err != nil {
			return fmt.Errorf("invalid log_level: %w", err)
		}
	}
	return nil
}

// GetTotalSamples returns the total_samples value or the default.
func (c *BenchConfig) GetTotalSamples() int {
	if c.TotalSamples == nil {
		return bench.DefaultConfig().TotalSamples
	}
	return *c.TotalSamples
}

// GetSubSamples returns the sub_samples value or the default.
func (c *BenchConfig) GetSubSamples() int {
	if c.SubSamples == nil {
		return bench.DefaultConfig().SubSamples
	}
	return *c.SubSamples
}

// GetSeed returns the seed and whether one was configured.
func (c *BenchConfig) GetSeed() (uint64, bool) {
	if c.Seed == nil {
		return 0, false
	}
	return *c.Seed, true
}

// GetVerify returns the verify value or the default.
func (c *BenchConfig) GetVerify() bool {
	if c.Verify == nil {
		return false
	}
	return *c.Verify
}

// GetVerifyTolerance returns the verify_tolerance value or the default.
func (c *BenchConfig) GetVerifyTolerance() float64 {
	if c.VerifyTolerance == nil {
		return bench.DefaultConfig().VerifyTolerance
	}
	return *c.VerifyTolerance
}

// GetLogLevel returns the log_level value, or "" when unset so the
// environment decides.
func (c *BenchConfig) GetLogLevel() string {
	if c.LogLevel == nil {
		return ""
	}
	return *c.LogLevel
}

// BenchRunConfig converts the file configuration into a runner config.
func (c *BenchConfig) BenchRunConfig() bench.Config {
	return bench.Config{
		TotalSamples:    c.GetTotalSamples(),
		SubSamples:      c.GetSubSamples(),
		Verify:          c.GetVerify(),
		VerifyTolerance: c.GetVerifyTolerance(),
	}
}
