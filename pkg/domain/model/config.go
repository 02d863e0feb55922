package model

import (
	"time"

	"github.com/breweryteam/releasehook/pkg/domain"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultTimeout      = 10 * time.Second
	DefaultRateInterval = 500 * time.Millisecond
	DefaultChangelogEnv = "CHANGE_LOG"
)

// Config represents the application configuration
type Config struct {
	WebhookURL   string          `yaml:"webhook_url,omitempty"`
	Project      string          `yaml:"project,omitempty"`
	Version      string          `yaml:"version,omitempty"`
	Title        string          `yaml:"title,omitempty"`   // text/template, see Release
	Content      string          `yaml:"content,omitempty"` // text/template, see Release
	UserName     string          `yaml:"username,omitempty"`
	AvatarURL    string          `yaml:"avatar_url,omitempty"`
	Color        string          `yaml:"color,omitempty"` // hex, e.g. 2c2d45 or #2c2d45
	ThumbnailURL string          `yaml:"thumbnail_url,omitempty"`
	NoThumbnail  bool            `yaml:"no_thumbnail,omitempty"`
	ImageURL     string          `yaml:"image_url,omitempty"`
	Timeout      string          `yaml:"timeout,omitempty"`
	RateInterval string          `yaml:"rate_interval,omitempty"`
	Changelog    ChangelogConfig `yaml:"changelog,omitempty"`
	Ledger       LedgerConfig    `yaml:"ledger,omitempty"`
}

// ChangelogConfig defines where the announcement body comes from
type ChangelogConfig struct {
	Text   string                `yaml:"text,omitempty"`
	File   string                `yaml:"file,omitempty"`
	Env    string                `yaml:"env,omitempty"` // defaults to CHANGE_LOG
	GitHub GitHubChangelogConfig `yaml:"github,omitempty"`
}

// GitHubChangelogConfig reads the changelog from a GitHub release body
type GitHubChangelogConfig struct {
	Repository string `yaml:"repository,omitempty"` // owner/name or remote URL
	Tag        string `yaml:"tag,omitempty"`        // defaults to v<version>
}

// LedgerConfig points at the SQLite file recording delivered announcements
type LedgerConfig struct {
	Path string `yaml:"path,omitempty"`
}

// Merge overlays every non-empty field of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	overlay := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	overlay(&c.WebhookURL, other.WebhookURL)
	overlay(&c.Project, other.Project)
	overlay(&c.Version, other.Version)
	overlay(&c.Title, other.Title)
	overlay(&c.Content, other.Content)
	overlay(&c.UserName, other.UserName)
	overlay(&c.AvatarURL, other.AvatarURL)
	overlay(&c.Color, other.Color)
	overlay(&c.ThumbnailURL, other.ThumbnailURL)
	overlay(&c.ImageURL, other.ImageURL)
	overlay(&c.Timeout, other.Timeout)
	overlay(&c.RateInterval, other.RateInterval)
	overlay(&c.Changelog.Text, other.Changelog.Text)
	overlay(&c.Changelog.File, other.Changelog.File)
	overlay(&c.Changelog.Env, other.Changelog.Env)
	overlay(&c.Changelog.GitHub.Repository, other.Changelog.GitHub.Repository)
	overlay(&c.Changelog.GitHub.Tag, other.Changelog.GitHub.Tag)
	overlay(&c.Ledger.Path, other.Ledger.Path)

	if other.NoThumbnail {
		c.NoThumbnail = true
	}
}

// ApplyDefaults fills unset presentation fields with the release defaults.
func (c *Config) ApplyDefaults() {
	if c.Project == "" {
		c.Project = DefaultProject
	}
	if c.UserName == "" {
		c.UserName = DefaultUserName
	}
	if c.AvatarURL == "" {
		c.AvatarURL = DefaultAvatarURL
	}
	if c.Color == "" {
		c.Color = DefaultColor
	}
	if c.ThumbnailURL == "" && !c.NoThumbnail {
		c.ThumbnailURL = DefaultThumbnailURL
	}
	if c.NoThumbnail {
		c.ThumbnailURL = ""
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Changelog.Env == "" {
		c.Changelog.Env = DefaultChangelogEnv
	}
}

// TimeoutDuration parses Timeout, falling back to DefaultTimeout.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	return parseDuration("timeout", c.Timeout, DefaultTimeout)
}

// RateIntervalDuration parses RateInterval, falling back to DefaultRateInterval.
// Zero disables pacing.
func (c *Config) RateIntervalDuration() (time.Duration, error) {
	return parseDuration("rate_interval", c.RateInterval, DefaultRateInterval)
}

func (c *Config) Release() Release {
	return Release{
		Project: c.Project,
		Version: c.Version,
	}
}

func parseDuration(name, value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, domain.Wrap(domain.ErrConfiguration, err, "invalid duration", goerr.V("field", name), goerr.V("value", value))
	}
	if d < 0 {
		return 0, goerr.Wrap(domain.ErrConfiguration, "duration must not be negative", goerr.V("field", name), goerr.V("value", value))
	}
	return d, nil
}
