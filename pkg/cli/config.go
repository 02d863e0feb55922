package cli

import (
	"github.com/breweryteam/releasehook/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Config holds the command line options that are not part of model.Config
type Config struct {
	ConfigPath  string
	Once        bool
	Strict      bool
	GitHubToken string
	GitHubAPI   string
	// Overrides are merged on top of the configuration files.
	Overrides *model.Config
}

func NewConfig(cmd *cli.Command) *Config {
	return &Config{
		ConfigPath:  cmd.String("config"),
		Once:        cmd.Bool("once"),
		Strict:      cmd.Bool("strict"),
		GitHubToken: cmd.String("github-token"),
		GitHubAPI:   cmd.String("github-api"),
		Overrides: &model.Config{
			WebhookURL:   cmd.String("webhook"),
			Project:      cmd.String("project"),
			Version:      cmd.String("release-version"),
			Title:        cmd.String("title"),
			Content:      cmd.String("content"),
			UserName:     cmd.String("username"),
			AvatarURL:    cmd.String("avatar-url"),
			Color:        cmd.String("color"),
			ThumbnailURL: cmd.String("thumbnail-url"),
			NoThumbnail:  cmd.Bool("no-thumbnail"),
			ImageURL:     cmd.String("image-url"),
			Timeout:      cmd.String("timeout"),
			RateInterval: cmd.String("rate-interval"),
			Changelog: model.ChangelogConfig{
				Text: cmd.String("changelog"),
				File: cmd.String("changelog-file"),
				Env:  cmd.String("changelog-env"),
				GitHub: model.GitHubChangelogConfig{
					Repository: cmd.String("github-repo"),
					Tag:        cmd.String("github-tag"),
				},
			},
			Ledger: model.LedgerConfig{
				Path: cmd.String("ledger"),
			},
		},
	}
}

func DefineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Configuration file (default: ./.releasehook.yml, then ~/.config/releasehook/config.yml)",
		},
		&cli.StringFlag{
			Name:    "webhook",
			Aliases: []string{"w"},
			Usage:   "Webhook URL; the announcement is skipped when empty",
			Sources: cli.EnvVars("DISCORD_WEBHOOK"),
		},
		&cli.StringFlag{
			Name:  "project",
			Usage: "Project name used in templates",
		},
		&cli.StringFlag{
			Name:    "release-version",
			Aliases: []string{"r"},
			Usage:   "Version being announced",
			Sources: cli.EnvVars("RELEASE_VERSION"),
		},
		&cli.StringFlag{
			Name:  "title",
			Usage: "Embed title template, e.g. '{{.Project}} - v{{.Version}}'",
		},
		&cli.StringFlag{
			Name:  "content",
			Usage: "Plain message content template, e.g. a role mention",
		},
		&cli.StringFlag{
			Name:  "username",
			Usage: "Sender display name",
		},
		&cli.StringFlag{
			Name:  "avatar-url",
			Usage: "Sender avatar URL",
		},
		&cli.StringFlag{
			Name:  "color",
			Usage: "Embed accent color as hex, e.g. 2c2d45",
		},
		&cli.StringFlag{
			Name:  "thumbnail-url",
			Usage: "Embed thumbnail URL",
		},
		&cli.BoolFlag{
			Name:  "no-thumbnail",
			Usage: "Do not attach a thumbnail",
		},
		&cli.StringFlag{
			Name:  "image-url",
			Usage: "Embed image URL",
		},
		&cli.StringFlag{
			Name:    "changelog",
			Aliases: []string{"m"},
			Usage:   "Changelog text",
		},
		&cli.StringFlag{
			Name:  "changelog-file",
			Usage: "Read the changelog from a file",
		},
		&cli.StringFlag{
			Name:  "changelog-env",
			Usage: "Environment variable holding the changelog (default: CHANGE_LOG)",
		},
		&cli.StringFlag{
			Name:  "github-repo",
			Usage: "Read the changelog from a GitHub release of owner/name",
		},
		&cli.StringFlag{
			Name:  "github-tag",
			Usage: "GitHub release tag (default: v<version>)",
		},
		&cli.StringFlag{
			Name:    "github-token",
			Usage:   "GitHub token for release lookups",
			Sources: cli.EnvVars("GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:   "github-api",
			Usage:  "GitHub API base URL",
			Hidden: true,
		},
		&cli.StringFlag{
			Name:  "timeout",
			Usage: "HTTP timeout per request (default: 10s)",
		},
		&cli.StringFlag{
			Name:  "rate-interval",
			Usage: "Minimum gap between segment requests, 0s disables pacing (default: 500ms)",
		},
		&cli.StringFlag{
			Name:  "ledger",
			Usage: "SQLite file recording delivered announcements",
		},
		&cli.BoolFlag{
			Name:  "once",
			Usage: "Skip releases already recorded in the ledger",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "Exit with an error when the announcement is not fully delivered",
		},
	}
}
