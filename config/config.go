// Package config loads cmd/storekeyctl's YAML configuration file.
package config

import (
	"os"

	"github.com/c2h5oh/datasize"
	"gopkg.in/yaml.v3"
)

// Config is the top-level shape of a storekeyctl config file.
type Config struct {
	// SeedPath, if set, is a newline-delimited hex-key/hex-value file
	// loaded into the reference engine at startup.
	SeedPath string `yaml:"seed_path"`
	// Export holds settings for the export subcommand.
	Export ExportConfig `yaml:"export"`
}

// ExportConfig controls cmd/storekeyctl's snapshot-export subcommand.
type ExportConfig struct {
	// MaxSize, e.g. "256MB", is the uncompressed export size above which
	// the export is split across several chunk files of equal row count;
	// the byte size of each chunk file is not checked against it. Zero
	// value (unset) means a single file, whatever its size.
	MaxSize datasize.ByteSize `yaml:"max_size"`
	// Compress enables zstd compression of the export stream.
	Compress bool `yaml:"compress"`
}

// Load reads and parses the YAML config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
