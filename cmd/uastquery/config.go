package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const configName = ".uastquery"

const configType = "yaml"

const envPrefix = "UASTQUERY"

const envKeySeparator = "_"

// Config is the CLI's resolved configuration: environment variables
// override a config file (explicit or discovered), which overrides
// defaults, following the same layering as the CLI this one is modeled
// on.
type Config struct {
	RoleTableFile string `mapstructure:"role_table_file"`
	OutputFormat  string `mapstructure:"output_format"`
	MaxTreeNodes  int    `mapstructure:"max_tree_nodes"`
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("output_format", "json")
	v.SetDefault("max_tree_nodes", 1_000_000)
}

// LoadConfig loads configuration from file, env vars, and defaults. If
// configPath is non-empty it is used as the explicit config file path;
// otherwise the config file is searched in the working directory and
// the user's home directory. A missing config file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
	}

	readErr := v.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
