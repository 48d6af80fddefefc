// Package config loads arkpower.yaml and applies environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/ishi-private/arknights-power-calc/internal/domain"
)

// FileName is the config file probed for by app.FindRoot.
const FileName = "arkpower.yaml"

// Load reads arkpower.yaml under appRoot, applies ARKPOWER_* environment
// overrides on top of it, then the command-line dataDir override, and fills
// in defaults for anything still unset.
func Load(appRoot, dataDirOverride string) (domain.Config, error) {
	var cfg domain.Config

	path := filepath.Join(appRoot, FileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if dataDirOverride != "" {
		cfg.DataDir = dataDirOverride
	}

	applyDefaults(&cfg, appRoot)
	return cfg, nil
}

func applyDefaults(cfg *domain.Config, appRoot string) {
	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Join(appRoot, "src")
	}
	if !filepath.IsAbs(cfg.DataDir) {
		cfg.DataDir = filepath.Join(appRoot, cfg.DataDir)
	}
	if cfg.CSVFile == "" {
		cfg.CSVFile = "arknights_star6.csv"
	}
	if !filepath.IsAbs(cfg.CSVFile) {
		cfg.CSVFile = filepath.Join(cfg.DataDir, cfg.CSVFile)
	}
	if cfg.XlsxDir == "" {
		cfg.XlsxDir = "xlsx"
	}
	if !filepath.IsAbs(cfg.XlsxDir) {
		cfg.XlsxDir = filepath.Join(cfg.DataDir, cfg.XlsxDir)
	}
	if cfg.LogFile == "" {
		cfg.LogFile = "calc_log.txt"
	}
	if !filepath.IsAbs(cfg.LogFile) {
		cfg.LogFile = filepath.Join(cfg.DataDir, cfg.LogFile)
	}
	if cfg.Defaults.EnemyDef == 0 {
		cfg.Defaults.EnemyDef = 300
	}
	if cfg.Defaults.Targets == 0 {
		cfg.Defaults.Targets = 1
	}
}
