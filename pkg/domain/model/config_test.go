package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/breweryteam/releasehook/pkg/domain"
	"github.com/breweryteam/releasehook/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestConfigMerge(t *testing.T) {
	t.Run("Non-empty fields override", func(t *testing.T) {
		base := &model.Config{
			WebhookURL: "https://example.com/base",
			Project:    "Malts",
			Color:      "2c2d45",
		}
		base.Merge(&model.Config{
			WebhookURL: "https://example.com/override",
			Version:    "0.8-BETA",
			Changelog: model.ChangelogConfig{
				GitHub: model.GitHubChangelogConfig{Repository: "breweryteam/malts"},
			},
		})

		gt.Equal(t, base.WebhookURL, "https://example.com/override")
		gt.Equal(t, base.Project, "Malts")
		gt.Equal(t, base.Version, "0.8-BETA")
		gt.Equal(t, base.Color, "2c2d45")
		gt.Equal(t, base.Changelog.GitHub.Repository, "breweryteam/malts")
	})

	t.Run("Empty fields keep existing values", func(t *testing.T) {
		base := &model.Config{Title: "custom", Ledger: model.LedgerConfig{Path: "/tmp/ledger.db"}}
		base.Merge(&model.Config{})
		gt.Equal(t, base.Title, "custom")
		gt.Equal(t, base.Ledger.Path, "/tmp/ledger.db")
	})

	t.Run("Nil is ignored", func(t *testing.T) {
		base := &model.Config{Project: "Malts"}
		base.Merge(nil)
		gt.Equal(t, base.Project, "Malts")
	})
}

func TestConfigApplyDefaults(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := &model.Config{}
		cfg.ApplyDefaults()

		gt.Equal(t, cfg.Project, "Malts")
		gt.Equal(t, cfg.UserName, model.DefaultUserName)
		gt.Equal(t, cfg.AvatarURL, model.DefaultAvatarURL)
		gt.Equal(t, cfg.Color, model.DefaultColor)
		gt.Equal(t, cfg.ThumbnailURL, model.DefaultThumbnailURL)
		gt.Equal(t, cfg.Title, model.DefaultTitle)
		gt.Equal(t, cfg.ImageURL, "")
		gt.Equal(t, cfg.Changelog.Env, "CHANGE_LOG")
	})

	t.Run("NoThumbnail clears thumbnail", func(t *testing.T) {
		cfg := &model.Config{ThumbnailURL: "https://example.com/t.png", NoThumbnail: true}
		cfg.ApplyDefaults()
		gt.Equal(t, cfg.ThumbnailURL, "")
	})

	t.Run("Explicit values are kept", func(t *testing.T) {
		cfg := &model.Config{UserName: "Bot", Color: "#ff0000"}
		cfg.ApplyDefaults()
		gt.Equal(t, cfg.UserName, "Bot")
		gt.Equal(t, cfg.Color, "#ff0000")
	})
}

func TestConfigDurations(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      model.Config
		timeout  time.Duration
		interval time.Duration
		wantErr  bool
	}{
		{
			name:     "defaults",
			timeout:  10 * time.Second,
			interval: 500 * time.Millisecond,
		},
		{
			name:     "explicit",
			cfg:      model.Config{Timeout: "3s", RateInterval: "0s"},
			timeout:  3 * time.Second,
			interval: 0,
		},
		{
			name:    "invalid",
			cfg:     model.Config{Timeout: "soon", RateInterval: "-1s"},
			wantErr: true,
		},
		{
			name:    "negative",
			cfg:     model.Config{Timeout: "-5s", RateInterval: "fast"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			timeout, err := tc.cfg.TimeoutDuration()
			if tc.wantErr {
				gt.Error(t, err)
				gt.True(t, errors.Is(err, domain.ErrConfiguration))
				_, err = tc.cfg.RateIntervalDuration()
				gt.Error(t, err)
				gt.True(t, errors.Is(err, domain.ErrConfiguration))
				return
			}
			gt.NoError(t, err)
			gt.Equal(t, timeout, tc.timeout)

			interval, err := tc.cfg.RateIntervalDuration()
			gt.NoError(t, err)
			gt.Equal(t, interval, tc.interval)
		})
	}
}
