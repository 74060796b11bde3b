// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/ammvm/chain"
	"github.com/ava-labs/ammvm/pebble"

	alogging "github.com/ava-labs/ammvm/internal/logging"
)

const envPrefix = "AMMVM"

var (
	ErrMissingDataDir = errors.New("data_dir is required")
	ErrInvalidMaxFee  = errors.New("rules.max_fee_bps must be below 10000")
)

type Config struct {
	DataDir string          `mapstructure:"data_dir"`
	Log     alogging.Config `mapstructure:"log"`
	DB      DBConfig        `mapstructure:"db"`
	Rules   RulesConfig     `mapstructure:"rules"`
	Metrics MetricsConfig   `mapstructure:"metrics"`
}

type DBConfig struct {
	Sync         bool  `mapstructure:"sync"`
	CacheSize    int64 `mapstructure:"cache_size"`
	BytesPerSync int   `mapstructure:"bytes_per_sync"`
	MaxOpenFiles int   `mapstructure:"max_open_files"`
}

type RulesConfig struct {
	AllowLockedWithdrawals bool   `mapstructure:"allow_locked_withdrawals"`
	MaxFeeBps              uint16 `mapstructure:"max_fee_bps"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func setDefaults(v *viper.Viper) {
	dbDefaults := pebble.NewDefaultConfig()

	v.SetDefault("data_dir", ".ammvm")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "")
	v.SetDefault("log.max_size_mb", 8)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 7)
	v.SetDefault("log.compress", false)
	v.SetDefault("db.sync", dbDefaults.Sync)
	v.SetDefault("db.cache_size", dbDefaults.CacheSize)
	v.SetDefault("db.bytes_per_sync", dbDefaults.BytesPerSync)
	v.SetDefault("db.max_open_files", dbDefaults.MaxOpenFiles)
	v.SetDefault("rules.allow_locked_withdrawals", true)
	v.SetDefault("rules.max_fee_bps", chain.MaxFeeBps)
	v.SetDefault("metrics.enabled", true)
}

// Load reads configuration from defaults, then [cfgFile] (if any), then
// AMMVM_* environment variables, then [flags]. Later sources win.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName("ammvm")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, cfg.Validate()
}

// bindFlags maps CLI flag names onto their config keys.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range map[string]string{
		"data_dir":  "data-dir",
		"log.level": "log-level",
		"log.dir":   "log-dir",
		"db.sync":   "db-sync",
	} {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Config) Validate() error {
	if c.DataDir == "" {
		return ErrMissingDataDir
	}
	if _, err := logging.ToLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Rules.MaxFeeBps > chain.MaxFeeBps {
		return ErrInvalidMaxFee
	}
	return nil
}

// GetRules returns the execution rules handed to every action.
func (c *Config) GetRules() chain.Rules {
	return &chain.StaticRules{
		LockedWithdrawals: c.Rules.AllowLockedWithdrawals,
		FeeCap:            c.Rules.MaxFeeBps,
	}
}

// GetDBConfig returns the pebble configuration derived from c.
func (c *Config) GetDBConfig() pebble.Config {
	cfg := pebble.NewDefaultConfig()
	cfg.Sync = c.DB.Sync
	cfg.CacheSize = c.DB.CacheSize
	cfg.BytesPerSync = c.DB.BytesPerSync
	cfg.MaxOpenFiles = c.DB.MaxOpenFiles
	return cfg
}
