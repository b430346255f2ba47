package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-ini/ini"
)

// defaultBenchIterations matches the reference CLI's fixed repeat count.
const defaultBenchIterations = 1000

// cliConfig holds the CLI's file-configurable defaults. The hashing library
// itself takes no configuration; these only shape the command's behaviour.
type cliConfig struct {
	VerboseLevel    int // [verbose] level
	BenchIterations int // [bench] iterations
}

// defaultConfigPath returns the conventional config location, or "" when no
// home directory is resolvable.
func defaultConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "oshash", "config")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "oshash", "config")
}

// loadConfig reads the ini config at path, or at the default location when
// path is empty. A missing file at the default location yields defaults; an
// explicitly requested file must exist.
func loadConfig(path string) (*cliConfig, error) {
	cfg := &cliConfig{
		BenchIterations: defaultBenchIterations,
	}

	if path == "" {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
		// The default location is optional; only an explicitly requested
		// file is required to exist.
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return cfg, nil
		}
	}

	iniFile, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}

	if iniFile.HasSection("verbose") {
		section := iniFile.Section("verbose")
		if section.HasKey("level") {
			cfg.VerboseLevel = section.Key("level").MustInt(0)
		}
	}

	if iniFile.HasSection("bench") {
		section := iniFile.Section("bench")
		if section.HasKey("iterations") {
			if n := section.Key("iterations").MustInt(defaultBenchIterations); n > 0 {
				cfg.BenchIterations = n
			}
		}
	}

	return cfg, nil
}
