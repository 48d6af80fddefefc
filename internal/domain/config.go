package domain

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Defaults are pre-filled answers for the enemy-stat prompts.
type Defaults struct {
	EnemyDef int `yaml:"enemy_def" env:"ARKPOWER_ENEMY_DEF"`
	EnemyRes int `yaml:"enemy_res" env:"ARKPOWER_ENEMY_RES"`
	Targets  int `yaml:"targets" env:"ARKPOWER_TARGETS"`
}

type Config struct {
	// DataDir is the base directory for the roster CSV, skill workbooks and
	// the calc log. Relative entries below resolve against it.
	DataDir string `yaml:"data_dir" env:"ARKPOWER_DATA_DIR"`
	// CSVFile points to the star-6 roster CSV.
	CSVFile string `yaml:"csv_file" env:"ARKPOWER_CSV_FILE"`
	// XlsxDir holds one <character name>.xlsx skill workbook per character.
	XlsxDir string `yaml:"xlsx_dir" env:"ARKPOWER_XLSX_DIR"`
	// LogFile is the append-only calc log.
	LogFile  string   `yaml:"log_file" env:"ARKPOWER_LOG_FILE"`
	Defaults Defaults `yaml:"defaults"`
}

func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	if value != nil && value.Kind == yaml.MappingNode {
		allowed := map[string]struct{}{
			"data_dir": {},
			"csv_file": {},
			"xlsx_dir": {},
			"log_file": {},
			"defaults": {},
		}

		for i := 0; i+1 < len(value.Content); i += 2 {
			k := value.Content[i]
			if k.Kind != yaml.ScalarNode {
				continue
			}
			if _, ok := allowed[k.Value]; !ok {
				return fmt.Errorf("config: unsupported key %q", k.Value)
			}
		}
	}

	// Plain struct decode once the keys have been vetted.
	type raw Config
	var tmp raw
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*c = Config(tmp)
	return nil
}
