package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/marcelsud/contentful-notifier/notification"
	"github.com/spf13/viper"
)

/* Config is a helper package, it could be an external lib
 * Values come from the environment and an optional dotenv style .env file
 */

type Config struct {
	Port        string        `mapstructure:"PORT"`
	SlackURL    string        `mapstructure:"SLACK_URL"`
	CMAToken    string        `mapstructure:"CMA_TOKEN"`
	CMABaseURL  string        `mapstructure:"CMA_BASE_URL"`
	AppBaseURL  string        `mapstructure:"APP_BASE_URL"`
	Locale      string        `mapstructure:"LOCALE"`
	Topics      []string      `mapstructure:"TOPICS"`
	HTTPTimeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
	LogLevel    string        `mapstructure:"LOG_LEVEL"`
}

// envAliases lists the environment variables read for each key, first match wins
var envAliases = map[string][]string{
	"PORT":         {"PORT"},
	"SLACK_URL":    {"slackURL", "SLACK_URL"},
	"CMA_TOKEN":    {"cmaToken", "CMA_TOKEN"},
	"CMA_BASE_URL": {"CMA_BASE_URL"},
	"APP_BASE_URL": {"APP_BASE_URL"},
	"LOCALE":       {"LOCALE"},
	"TOPICS":       {"TOPICS"},
	"HTTP_TIMEOUT": {"HTTP_TIMEOUT"},
	"LOG_LEVEL":    {"LOG_LEVEL"},
}

func GetConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.SetDefault("PORT", "5000")
	v.SetDefault("CMA_BASE_URL", "https://api.contentful.com")
	v.SetDefault("APP_BASE_URL", notification.DefaultAppBaseURL)
	v.SetDefault("LOCALE", notification.DefaultLocale)
	v.SetDefault("TOPICS", []string{})
	v.SetDefault("HTTP_TIMEOUT", "30s")
	v.SetDefault("LOG_LEVEL", "info")

	for key, envs := range envAliases {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("binding env for %s: %w", key, err)
		}
	}

	// The config file is optional, the environment is enough
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	applyFileAliases(v)

	var config Config
	err := v.Unmarshal(&config)
	if err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	return &config, nil
}

// applyFileAliases lets the .env file use the same names as the environment.
// An alias only fills in a key the file does not set under its own name.
func applyFileAliases(v *viper.Viper) {
	for key, names := range envAliases {
		if v.InConfig(key) {
			continue
		}
		for _, name := range names {
			if v.InConfig(name) {
				v.SetDefault(key, v.Get(name))
				break
			}
		}
	}
}

// Validate checks that the configuration can run the pipeline
func (c *Config) Validate() error {
	if c.SlackURL == "" {
		return fmt.Errorf("slackURL is required")
	}
	if err := validateURL(c.SlackURL); err != nil {
		return fmt.Errorf("invalid slackURL: %w", err)
	}
	if c.CMAToken == "" {
		return fmt.Errorf("cmaToken is required")
	}
	if err := validateURL(c.CMABaseURL); err != nil {
		return fmt.Errorf("invalid CMA_BASE_URL: %w", err)
	}
	if err := validateURL(c.AppBaseURL); err != nil {
		return fmt.Errorf("invalid APP_BASE_URL: %w", err)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.Locale == "" {
		return fmt.Errorf("LOCALE cannot be empty")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive (got %s)", c.HTTPTimeout)
	}
	for _, topic := range c.Topics {
		if err := notification.ValidateTopicPattern(topic); err != nil {
			return fmt.Errorf("invalid topic '%s': %w", topic, err)
		}
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https: %s", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required: %s", raw)
	}
	return nil
}
