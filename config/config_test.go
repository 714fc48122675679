package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("slackURL", "https://hooks.slack.com/services/T/B/X")
		t.Setenv("cmaToken", "token")

		cfg, err := GetConfig()

		require.NoError(t, err)
		assert.Equal(t, "5000", cfg.Port)
		assert.Equal(t, "https://hooks.slack.com/services/T/B/X", cfg.SlackURL)
		assert.Equal(t, "token", cfg.CMAToken)
		assert.Equal(t, "https://api.contentful.com", cfg.CMABaseURL)
		assert.Equal(t, "https://app.contentful.com", cfg.AppBaseURL)
		assert.Equal(t, "en-US", cfg.Locale)
		assert.Empty(t, cfg.Topics)
		assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, "info", cfg.LogLevel)
		require.NoError(t, cfg.Validate())
	})

	t.Run("upper case aliases and overrides", func(t *testing.T) {
		t.Setenv("SLACK_URL", "https://hooks.slack.com/services/T/B/Y")
		t.Setenv("CMA_TOKEN", "other")
		t.Setenv("PORT", "8080")
		t.Setenv("TOPICS", "ContentManagement.Entry.publish,ContentManagement.Entry.unpublish")
		t.Setenv("HTTP_TIMEOUT", "5s")
		t.Setenv("LOCALE", "de-DE")

		cfg, err := GetConfig()

		require.NoError(t, err)
		assert.Equal(t, "https://hooks.slack.com/services/T/B/Y", cfg.SlackURL)
		assert.Equal(t, "other", cfg.CMAToken)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, []string{"ContentManagement.Entry.publish", "ContentManagement.Entry.unpublish"}, cfg.Topics)
		assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, "de-DE", cfg.Locale)
	})

	t.Run("camel case name wins over upper case", func(t *testing.T) {
		t.Setenv("slackURL", "https://a.example.com/hook")
		t.Setenv("SLACK_URL", "https://b.example.com/hook")

		cfg, err := GetConfig()

		require.NoError(t, err)
		assert.Equal(t, "https://a.example.com/hook", cfg.SlackURL)
	})

	t.Run("dotenv file", func(t *testing.T) {
		dir := t.TempDir()
		env := "slackURL=https://hooks.slack.com/services/T/B/Z\n" +
			"CMA_TOKEN=file-token\n" +
			"PORT=7000\n" +
			"TOPICS=ContentManagement.Entry.*\n" +
			"HTTP_TIMEOUT=10s\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
		chdir(t, dir)

		cfg, err := GetConfig()

		require.NoError(t, err)
		assert.Equal(t, "https://hooks.slack.com/services/T/B/Z", cfg.SlackURL)
		assert.Equal(t, "file-token", cfg.CMAToken)
		assert.Equal(t, "7000", cfg.Port)
		assert.Equal(t, []string{"ContentManagement.Entry.*"}, cfg.Topics)
		assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, "en-US", cfg.Locale)
		require.NoError(t, cfg.Validate())
	})

	t.Run("environment wins over the dotenv file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("slackURL=https://file.example.com/hook\nPORT=7000\n"), 0o600))
		chdir(t, dir)
		t.Setenv("slackURL", "https://env.example.com/hook")
		t.Setenv("PORT", "8000")

		cfg, err := GetConfig()

		require.NoError(t, err)
		assert.Equal(t, "https://env.example.com/hook", cfg.SlackURL)
		assert.Equal(t, "8000", cfg.Port)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:        "5000",
			SlackURL:    "https://hooks.slack.com/services/T/B/X",
			CMAToken:    "token",
			CMABaseURL:  "https://api.contentful.com",
			AppBaseURL:  "https://app.contentful.com",
			Locale:      "en-US",
			HTTPTimeout: time.Second,
		}
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing slack url", func(c *Config) { c.SlackURL = "" }, "slackURL is required"},
		{"relative slack url", func(c *Config) { c.SlackURL = "/services/T/B/X" }, "invalid slackURL"},
		{"missing token", func(c *Config) { c.CMAToken = "" }, "cmaToken is required"},
		{"bad cma url", func(c *Config) { c.CMABaseURL = "ftp://api.contentful.com" }, "invalid CMA_BASE_URL"},
		{"bad app url", func(c *Config) { c.AppBaseURL = "" }, "invalid APP_BASE_URL"},
		{"empty locale", func(c *Config) { c.Locale = "" }, "LOCALE"},
		{"zero timeout", func(c *Config) { c.HTTPTimeout = 0 }, "HTTP_TIMEOUT"},
		{"bad topic", func(c *Config) { c.Topics = []string{"not-a-topic"} }, "invalid topic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
