package config

import (
	"errors"
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/at-ishikawa/randomwords/internal/dictionary"
	"github.com/at-ishikawa/randomwords/internal/generator"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	Source              string             `mapstructure:"source" validate:"required"`
	Length              string             `mapstructure:"length" validate:"length_tier"`
	ParagraphLength     int                `mapstructure:"paragraph_length" validate:"gte=1"`
	ExtendedPunctuation bool               `mapstructure:"extended_punctuation"`
	Lengths             LengthsConfig      `mapstructure:"lengths"`
	Dictionaries        DictionariesConfig `mapstructure:"dictionaries"`
	Database            DatabaseConfig     `mapstructure:"database"`
}

// LengthsConfig is the target character count of each sentence length tier.
type LengthsConfig struct {
	Short    int `mapstructure:"short" validate:"gte=1"`
	Medium   int `mapstructure:"medium" validate:"gte=1"`
	Long     int `mapstructure:"long" validate:"gte=1"`
	VeryLong int `mapstructure:"very_long" validate:"gte=1"`
}

type DictionariesConfig struct {
	UserDirectory string `mapstructure:"user_directory"`
	// RemoteURL serves sources as <remote_url>/<name>/<file>.
	RemoteURL string `mapstructure:"remote_url" validate:"omitempty,url"`
}

type DatabaseConfig struct {
	Driver          string            `mapstructure:"driver" validate:"oneof=mysql sqlite"`
	Path            string            `mapstructure:"path" validate:"required_if=Driver sqlite"`
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/randomwords")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	defaults := generator.DefaultConfig()
	lengths := generator.DefaultLengths()
	v.SetDefault("source", dictionary.DefaultSource)
	v.SetDefault("length", defaults.SentenceLength.String())
	v.SetDefault("paragraph_length", defaults.ParagraphLength)
	v.SetDefault("extended_punctuation", defaults.ExtendedPunctuation)
	v.SetDefault("lengths.short", lengths[generator.Short])
	v.SetDefault("lengths.medium", lengths[generator.Medium])
	v.SetDefault("lengths.long", lengths[generator.Long])
	v.SetDefault("lengths.very_long", lengths[generator.VeryLong])
	v.SetDefault("dictionaries.user_directory", "dictionaries")
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "randomwords.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "randomwords")
	v.SetDefault("database.username", "user")

	if err := v.BindEnv("source", "RANDOMWORDS_SOURCE"); err != nil {
		return nil, fmt.Errorf("failed to bind RANDOMWORDS_SOURCE environment variable: %w", err)
	}
	if err := v.BindEnv("length", "RANDOMWORDS_LENGTH"); err != nil {
		return nil, fmt.Errorf("failed to bind RANDOMWORDS_LENGTH environment variable: %w", err)
	}
	if err := v.BindEnv("dictionaries.user_directory", "RANDOMWORDS_DICTIONARIES"); err != nil {
		return nil, fmt.Errorf("failed to bind RANDOMWORDS_DICTIONARIES environment variable: %w", err)
	}

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "RANDOMWORDS_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind RANDOMWORDS_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	// only a YAML boolean is accepted
	if value := v.Get("extended_punctuation"); value != nil {
		if _, ok := value.(bool); !ok {
			return nil, fmt.Errorf("%w: extended_punctuation must be true or false, got %v", generator.ErrInvalidConfiguration, value)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: invalid configuration format: %w", generator.ErrInvalidConfiguration, err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validator.Struct > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("%w: %s", generator.ErrInvalidConfiguration, strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// GenerationConfig converts the loaded settings into the generator policy.
func (cfg *Config) GenerationConfig() (generator.Config, error) {
	tier, err := generator.ParseLengthTier(cfg.Length)
	if err != nil {
		return generator.Config{}, fmt.Errorf("generator.ParseLengthTier > %w", err)
	}

	result := generator.Config{
		SentenceLength:      tier,
		ParagraphLength:     cfg.ParagraphLength,
		ExtendedPunctuation: cfg.ExtendedPunctuation,
		Lengths: map[generator.LengthTier]int{
			generator.Short:    cfg.Lengths.Short,
			generator.Medium:   cfg.Lengths.Medium,
			generator.Long:     cfg.Lengths.Long,
			generator.VeryLong: cfg.Lengths.VeryLong,
		},
	}
	if err := result.Validate(); err != nil {
		return generator.Config{}, fmt.Errorf("generator.Config.Validate > %w", err)
	}
	return result, nil
}
