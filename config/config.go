// Package config resolves settings from flags, BASHRAND_* environment
// variables and an optional YAML file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/tutils/bashrand/log"
)

// EnvPrefix prefixes every environment variable
const EnvPrefix = "BASHRAND"

// default config file looked up in the home directory
const defaultName = ".bashrand"

// Keys
const (
	KeyVersion   = "version"
	KeyNumber    = "number"
	KeyWorkers   = "workers"
	KeyLogLevel  = "log.level"
	KeyLogPretty = "log.pretty"
	KeyPprof     = "pprof"
)

// Settings shared by every command
type Settings struct {
	Version string     `mapstructure:"version"`
	Number  int        `mapstructure:"number"`
	Workers int        `mapstructure:"workers"`
	Log     log.Config `mapstructure:"log"`
	Pprof   string     `mapstructure:"pprof"`
}

// New returns a viper instance with defaults and environment lookup.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyVersion, "both")
	v.SetDefault(KeyNumber, 10)
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogPretty, log.IsTerminal(os.Stderr))
	v.SetDefault(KeyPprof, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Read loads cfgFile, or ~/.bashrand.yaml when cfgFile is empty. A missing
// default file is fine; a missing explicit one is not.
func Read(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("find home directory: %w", err)
		}
		v.AddConfigPath(home)
		v.SetConfigName(defaultName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Decode returns the resolved settings.
func Decode(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("decode config: %w", err)
	}
	if s.Number < 0 {
		return s, fmt.Errorf("number must not be negative (got %d)", s.Number)
	}
	return s, nil
}
