package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	Network      string
	RPCURL       string
	TxLimit      int
	PageSize     int
	MaxPages     int
	Timeout      time.Duration
	RPS          float64
	MaxRetries   int
	RetryBackoff time.Duration
	Format       string
	Out          string
	Interval     time.Duration
	LogLevel     string
	Protocols    []ProtocolEntry
}

// ProtocolEntry declares an extra protocol signature in the config file.
// Fields maps a display label to a dotted path inside the object's fields.
type ProtocolEntry struct {
	Name     string            `mapstructure:"name"`
	Prefixes []string          `mapstructure:"prefixes"`
	Fields   map[string]string `mapstructure:"fields"`
}

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("WALLETSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("network", "mainnet")
	v.SetDefault("tx-limit", 50)
	v.SetDefault("page-size", 50)
	v.SetDefault("max-pages", 20)
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("rps", float64(10))
	v.SetDefault("max-retries", 3)
	v.SetDefault("retry-backoff", 500*time.Millisecond)
	v.SetDefault("format", "table")
	v.SetDefault("interval", 30*time.Second)
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		Network:      v.GetString("network"),
		RPCURL:       v.GetString("rpc"),
		TxLimit:      v.GetInt("tx-limit"),
		PageSize:     v.GetInt("page-size"),
		MaxPages:     v.GetInt("max-pages"),
		Timeout:      v.GetDuration("timeout"),
		RPS:          v.GetFloat64("rps"),
		MaxRetries:   v.GetInt("max-retries"),
		RetryBackoff: v.GetDuration("retry-backoff"),
		Format:       v.GetString("format"),
		Out:          v.GetString("out"),
		Interval:     v.GetDuration("interval"),
		LogLevel:     v.GetString("log-level"),
	}

	if v.IsSet("protocols") {
		if err := v.UnmarshalKey("protocols", &cfg.Protocols); err != nil {
			return Config{}, fmt.Errorf("parse protocols: %w", err)
		}
	}

	return cfg, nil
}
