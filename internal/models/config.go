package models

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type Config struct {
	Seed              int     `mapstructure:"seed"`
	Days              int     `mapstructure:"days"`
	TurnsPerDay       int     `mapstructure:"turns-per-day"`
	StartingCash      float64 `mapstructure:"starting-cash"`
	MaxAdBudget       float64 `mapstructure:"max-ad-budget"`
	AdBudget          float64 `mapstructure:"ad-budget"`
	AllowSubstitution bool    `mapstructure:"allow-substitution"`

	KafkaEnabled      bool   `mapstructure:"kafka-enabled"`
	KafkaBrokerList   string `mapstructure:"kafka-broker-list"`
	OutputFormat      string `mapstructure:"output-format"`
	OutputPath        string `mapstructure:"output-path"`
	OutputFolder      string `mapstructure:"output-folder"`
	OutputDestination string `mapstructure:"output-destination"`

	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`
	Database     DatabaseConfig     `mapstructure:"database"`
}

// LoadConfig initializes and reads the configuration using Viper.
// The config file is optional; flag and environment values are enough
// to run a simulation.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Days <= 0 {
		cfg.Days = 3
	}
	if cfg.TurnsPerDay <= 0 {
		cfg.TurnsPerDay = TurnsPerDay
	}
	if cfg.StartingCash == 0 {
		cfg.StartingCash = StartingCash
	}
	if cfg.MaxAdBudget == 0 {
		cfg.MaxAdBudget = MaxAdBudget
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "console"
	}
	if cfg.OutputFolder == "" {
		cfg.OutputFolder = "bobasim"
	}
	if cfg.OutputDestination == "" {
		cfg.OutputDestination = "local"
	}
}
