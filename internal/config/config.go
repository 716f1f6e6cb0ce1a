package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Fan    FanConfig    `yaml:"fan"`
	Button ButtonConfig `yaml:"button"`
	Temp   TempConfig   `yaml:"temp"`
}

type FanConfig struct {
	// Dynamic selects step-table control; when false the fan is pinned to
	// ConstantLevel for the life of the process.
	Dynamic bool `yaml:"dynamic"`
	// ConstantLevel is a pointer so "absent" and "0" are distinguishable.
	ConstantLevel *int `yaml:"constant_level"`
	// Delay is the decision interval between fan evaluations.
	Delay time.Duration `yaml:"delay"`
	Steps []Step        `yaml:"steps"`

	I2CBus  string `yaml:"i2c_bus"`
	I2CAddr uint16 `yaml:"i2c_addr"`
}

// Step maps a temperature band to a fan level. An entry means "use Level while
// the temperature stays below Temperature"; a sample at or above the highest
// configured threshold falls through to level 0, so tables should end with an
// effectively unbounded final threshold.
type Step struct {
	Temperature int `yaml:"temperature"`
	Level       int `yaml:"level"`
}

type ButtonConfig struct {
	Chip string `yaml:"chip"`
	// Pin is BCM GPIO numbering.
	Pin          int           `yaml:"pin"`
	PollInterval time.Duration `yaml:"poll_interval"`
	// QuietWindow is how long the pulse counter must hold still before a
	// burst is considered complete.
	QuietWindow time.Duration `yaml:"quiet_window"`
}

type TempConfig struct {
	// Command is the external temperature reporter, argv style. Its stdout
	// must look like "temp=48.3'C".
	Command []string `yaml:"command"`
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	if err := DefaultAndValidate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultAndValidate fills defaults, validates, and sorts the step table
// ascending by temperature so authors may list entries in any order.
func DefaultAndValidate(cfg *Config) error {
	if cfg.Fan.Delay == 0 {
		cfg.Fan.Delay = 30 * time.Second
	}
	if cfg.Fan.Delay < 0 {
		return fmt.Errorf("fan.delay must be > 0")
	}
	if cfg.Fan.I2CBus == "" {
		cfg.Fan.I2CBus = "/dev/i2c-1"
	}
	if cfg.Fan.I2CAddr == 0 {
		cfg.Fan.I2CAddr = 0x1A
	}

	if cfg.Fan.Dynamic {
		if len(cfg.Fan.Steps) == 0 {
			return fmt.Errorf("fan.steps must not be empty when fan.dynamic is true")
		}
		for i, s := range cfg.Fan.Steps {
			if s.Level < 0 || s.Level > 100 {
				return fmt.Errorf("fan.steps[%d].level is %d, must be 0..100", i, s.Level)
			}
		}
		sort.SliceStable(cfg.Fan.Steps, func(i, j int) bool {
			return cfg.Fan.Steps[i].Temperature < cfg.Fan.Steps[j].Temperature
		})
	} else {
		if cfg.Fan.ConstantLevel == nil {
			return fmt.Errorf("fan.constant_level is required when fan.dynamic is false")
		}
		if v := *cfg.Fan.ConstantLevel; v < 0 || v > 100 {
			return fmt.Errorf("fan.constant_level is %d, must be 0..100", v)
		}
	}

	if cfg.Button.Chip == "" {
		cfg.Button.Chip = "gpiochip0"
	}
	if cfg.Button.Pin == 0 {
		cfg.Button.Pin = 4
	}
	if cfg.Button.Pin < 0 {
		return fmt.Errorf("button.pin must be >= 0")
	}
	if cfg.Button.PollInterval == 0 {
		cfg.Button.PollInterval = 50 * time.Millisecond
	}
	if cfg.Button.PollInterval < 0 {
		return fmt.Errorf("button.poll_interval must be > 0")
	}
	if cfg.Button.QuietWindow == 0 {
		cfg.Button.QuietWindow = 400 * time.Millisecond
	}
	if cfg.Button.QuietWindow < 0 {
		return fmt.Errorf("button.quiet_window must be > 0")
	}

	if len(cfg.Temp.Command) == 0 {
		cfg.Temp.Command = []string{"/opt/vc/bin/vcgencmd", "measure_temp"}
	}

	return nil
}
