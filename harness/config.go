package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DEFAULT_RUNS       = 5
	DEFAULT_DATA_SIZE  = 20
	DEFAULT_MIN_REPEAT = 2
	DEFAULT_MAX_REPEAT = 6
)

type Config struct {
	Runs      int    `yaml:"runs"`
	DataSize  int    `yaml:"data_size"`
	MinRepeat int    `yaml:"min_repeat"`
	MaxRepeat int    `yaml:"max_repeat"`
	Seed      uint64 `yaml:"seed"` // 0 picks a time-based seed
	PrintData bool   `yaml:"print_data"`
}

func DefaultConfig() Config {
	return Config{
		Runs:      DEFAULT_RUNS,
		DataSize:  DEFAULT_DATA_SIZE,
		MinRepeat: DEFAULT_MIN_REPEAT,
		MaxRepeat: DEFAULT_MAX_REPEAT,
		PrintData: true,
	}
}

// LoadConfig reads a YAML config. Keys missing from the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", c.Runs)
	}
	if c.DataSize < 0 {
		return fmt.Errorf("data_size cannot be negative, got %d", c.DataSize)
	}
	if c.MinRepeat < 1 {
		return fmt.Errorf("min_repeat must be at least 1, got %d", c.MinRepeat)
	}
	if c.MaxRepeat < c.MinRepeat {
		return fmt.Errorf("max_repeat %d is below min_repeat %d", c.MaxRepeat, c.MinRepeat)
	}
	return nil
}
