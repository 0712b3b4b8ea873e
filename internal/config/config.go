package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jask/fretta/internal/trainer"
	"github.com/jask/fretta/internal/tuning"
)

// Config holds application configuration.
type Config struct {
	Trainer TrainerConfig
	UI      UIConfig
}

// TrainerConfig holds question settings.
type TrainerConfig struct {
	Tuning  tuning.Tuning
	MinFret int `mapstructure:"min_fret"`
	MaxFret int `mapstructure:"max_fret"`
	Seed    int64
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Plain bool
	Color bool
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"tuning":   "trainer.tuning",
	"min-fret": "trainer.min_fret",
	"max-fret": "trainer.max_fret",
	"seed":     "trainer.seed",
	"plain":    "ui.plain",
	"color":    "ui.color",
}

// Flags registers the command-line overrides on fs.
func Flags(fs *pflag.FlagSet) {
	fs.StringP("tuning", "t", tuning.Standard().String(), "Comma-separated list of notes representing the tuning of the instrument")
	fs.Int("min-fret", trainer.DefaultMinFret, "Lowest fret to ask about")
	fs.Int("max-fret", trainer.DefaultMaxFret, "Highest fret to ask about")
	fs.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	fs.Bool("plain", false, "Use the line-oriented prompt instead of the full-screen UI")
	fs.Bool("color", true, "Colorize output")
}

// Load reads configuration from defaults, file, env and fs, in increasing
// precedence. Env var overrides use prefix FRETTA_. Only flags the user set
// override the lower layers; fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("trainer.tuning", tuning.Standard().String())
	v.SetDefault("trainer.min_fret", trainer.DefaultMinFret)
	v.SetDefault("trainer.max_fret", trainer.DefaultMaxFret)
	v.SetDefault("trainer.seed", 0)
	v.SetDefault("ui.plain", false)
	v.SetDefault("ui.color", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FRETTA_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "fretta"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FRETTA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// an explicit FRETTA_CONFIG must exist and parse
		if _, missing := err.(viper.ConfigFileNotFoundError); !missing || cfgPath != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var c Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&c, hook); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// TrainerOptions converts the trainer settings into trainer options.
func (c Config) TrainerOptions() []trainer.Option {
	return []trainer.Option{
		trainer.WithFretRange(c.Trainer.MinFret, c.Trainer.MaxFret),
		trainer.WithSeed(c.Trainer.Seed),
	}
}
