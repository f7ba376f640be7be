package config

import (
	"bytes"
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/quantumauth-io/quantum-auth-keys/internal/constants"
)

//go:embed default.yaml
var EmbeddedConfigYAML []byte

const (
	ChainEVM    = "evm"
	ChainSolana = "solana"
)

type Config struct {
	Chain  string `mapstructure:"Chain"`
	Secure bool   `mapstructure:"Secure"`
}

// Load reads the embedded defaults, then merges the first config file found
// (explicit path, ~/.config/quantumauth, or the working directory), then
// KEYCONV_* environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(EmbeddedConfigYAML)); err != nil {
		return nil, errors.Wrap(err, "read embedded config")
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, _ := os.UserHomeDir()
		v.SetConfigName(strings.TrimSuffix(constants.ConfigFile, filepath.Ext(constants.ConfigFile)))
		v.AddConfigPath(filepath.Join(home, ".config", constants.AppName))
		v.AddConfigPath(".")
	}
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "merge config")
		}
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Normalize() error {
	c.Chain = strings.ToLower(strings.TrimSpace(c.Chain))
	switch c.Chain {
	case ChainEVM, ChainSolana:
		return nil
	case "viem", "ethereum", "eth":
		c.Chain = ChainEVM
		return nil
	default:
		return errors.Newf("invalid chain %q (allowed: evm, solana)", c.Chain)
	}
}
