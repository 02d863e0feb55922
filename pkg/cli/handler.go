package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/breweryteam/releasehook/pkg/domain/interfaces"
	"github.com/breweryteam/releasehook/pkg/domain/model"
	"github.com/breweryteam/releasehook/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

func setupLogger(ctx context.Context, cmd *cli.Command) (context.Context, *slog.Logger) {
	logLevel := slog.LevelWarn
	if cmd.Bool("debug") {
		logLevel = slog.LevelDebug
	} else if cmd.Bool("verbose") {
		logLevel = slog.LevelInfo
	}

	w := cmd.Root().ErrWriter
	if w == nil {
		w = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))

	return ctxlog.With(ctx, logger), logger
}

// loadConfig layers the user config, the project (or --config) file and the
// command line, then applies defaults.
func loadConfig(ctx context.Context, opts *Config) (*model.Config, error) {
	logger := ctxlog.From(ctx)
	service := usecase.NewConfigService()

	config, err := service.LoadDefault()
	if err != nil {
		return nil, err
	}

	if opts.ConfigPath != "" {
		fileConfig, err := service.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		config.Merge(fileConfig)
	} else {
		currentDir, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dirConfig, path, err := service.LoadFromDirectory(currentDir)
		if err != nil {
			return nil, err
		}
		if path != "" {
			logger.Debug("loaded project config", slog.String("path", path))
		}
		config.Merge(dirConfig)
	}

	config.Merge(opts.Overrides)
	config.ApplyDefaults()
	return config, nil
}

func changelogSources(ctx context.Context, opts *Config, config *model.Config) ([]interfaces.ChangelogSource, error) {
	sources := []interfaces.ChangelogSource{
		usecase.NewTextChangelog(config.Changelog.Text),
		usecase.NewFileChangelog(config.Changelog.File),
		usecase.NewEnvChangelog(config.Changelog.Env, os.Getenv),
	}

	if config.Changelog.GitHub.Repository != "" {
		repo, err := usecase.ParseRepository(config.Changelog.GitHub.Repository)
		if err != nil {
			return nil, err
		}
		github, err := usecase.NewGitHubService(ctx, usecase.GitHubOptions{
			Token:   opts.GitHubToken,
			BaseURL: opts.GitHubAPI,
		})
		if err != nil {
			return nil, err
		}
		sources = append(sources, usecase.NewGitHubChangelog(github, repo, config.Changelog.GitHub.Tag))
	}

	return sources, nil
}

func newAnnounceUseCase(ctx context.Context, opts *Config, config *model.Config, notifier interfaces.Notifier, ledger interfaces.Ledger) (*usecase.AnnounceUseCase, error) {
	sources, err := changelogSources(ctx, opts, config)
	if err != nil {
		return nil, err
	}

	return usecase.NewAnnounceUseCase(usecase.AnnounceUseCaseOptions{
		Config:    config,
		Notifier:  notifier,
		Changelog: sources,
		Ledger:    ledger,
		Once:      opts.Once,
	}), nil
}

// RunAnnounce sends the announcement. Only configuration errors fail the
// command, unless --strict is set.
func RunAnnounce(ctx context.Context, cmd *cli.Command) error {
	ctx, logger := setupLogger(ctx, cmd)
	opts := NewConfig(cmd)

	config, err := loadConfig(ctx, opts)
	if err != nil {
		return err
	}

	timeout, err := config.TimeoutDuration()
	if err != nil {
		return err
	}
	interval, err := config.RateIntervalDuration()
	if err != nil {
		return err
	}

	var ledger interfaces.Ledger
	if config.Ledger.Path != "" {
		ledger, err = usecase.OpenLedger(ctx, config.Ledger.Path)
		if err != nil {
			// the ledger is bookkeeping only
			logger.Warn("ledger unavailable, continuing without it",
				slog.String("error", err.Error()),
			)
			ledger = nil
		} else {
			defer ledger.Close()
		}
	}

	notifier := usecase.NewWebhookNotifier(usecase.WebhookOptions{
		URL:          config.WebhookURL,
		Timeout:      timeout,
		RateInterval: interval,
	})

	uc, err := newAnnounceUseCase(ctx, opts, config, notifier, ledger)
	if err != nil {
		return err
	}

	result, err := uc.Execute(ctx)
	if err != nil {
		return err
	}

	PrintResult(cmd.Root().Writer, result)

	if opts.Strict && (result.Status == model.DeliveryStatusFailed || result.Status == model.DeliveryStatusPartial) {
		return fmt.Errorf("announcement was not fully delivered (%d/%d segments): %w", result.Delivered, result.Total, result.Err)
	}
	return nil
}

// RunPreview prints the requests RunAnnounce would send.
func RunPreview(ctx context.Context, cmd *cli.Command) error {
	ctx, _ = setupLogger(ctx, cmd)
	opts := NewConfig(cmd)

	config, err := loadConfig(ctx, opts)
	if err != nil {
		return err
	}

	notifier := usecase.NewPreviewNotifier(cmd.Root().Writer, model.DescriptionLimit)
	uc, err := newAnnounceUseCase(ctx, opts, config, notifier, nil)
	if err != nil {
		return err
	}

	_, err = uc.Execute(ctx)
	return err
}
