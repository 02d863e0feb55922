package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/breweryteam/releasehook/pkg/domain/interfaces"
	"github.com/breweryteam/releasehook/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
)

type AnnounceUseCase struct {
	config    *model.Config
	notifier  interfaces.Notifier
	changelog []interfaces.ChangelogSource
	ledger    interfaces.Ledger
	once      bool
	now       func() time.Time
}

type AnnounceUseCaseOptions struct {
	// Config must already have defaults applied.
	Config    *model.Config
	Notifier  interfaces.Notifier
	Changelog []interfaces.ChangelogSource
	// Ledger is optional.
	Ledger interfaces.Ledger
	// Once skips releases already present in the ledger.
	Once bool
	Now  func() time.Time
}

func NewAnnounceUseCase(opts AnnounceUseCaseOptions) *AnnounceUseCase {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &AnnounceUseCase{
		config:    opts.Config,
		notifier:  opts.Notifier,
		changelog: opts.Changelog,
		ledger:    opts.Ledger,
		once:      opts.Once,
		now:       now,
	}
}

// BuildAnnouncement renders the title and content templates and resolves the
// changelog into an Announcement.
func (u *AnnounceUseCase) BuildAnnouncement(ctx context.Context) (*model.Announcement, error) {
	release := u.config.Release()

	title, err := renderTemplate("title", u.config.Title, release)
	if err != nil {
		return nil, err
	}
	content, err := renderTemplate("content", u.config.Content, release)
	if err != nil {
		return nil, err
	}
	description, err := ResolveChangelog(ctx, u.changelog, release)
	if err != nil {
		return nil, err
	}

	return &model.Announcement{
		UserName:     u.config.UserName,
		AvatarURL:    u.config.AvatarURL,
		Content:      content,
		Title:        title,
		Description:  description,
		Color:        u.config.Color,
		ThumbnailURL: u.config.ThumbnailURL,
		ImageURL:     u.config.ImageURL,
	}, nil
}

// Execute announces the configured release. The returned error is only set
// for configuration problems; delivery failures are reported in the result.
func (u *AnnounceUseCase) Execute(ctx context.Context) (*model.DeliveryResult, error) {
	logger := ctxlog.From(ctx)
	release := u.config.Release()

	if u.once {
		if u.ledger == nil {
			logger.Warn("--once has no effect without a ledger")
		} else if u.alreadyAnnounced(ctx, release) {
			logger.Info("release already announced, skipping",
				slog.String("project", release.Project),
				slog.String("version", release.Version),
			)
			return &model.DeliveryResult{Status: model.DeliveryStatusSkipped}, nil
		}
	}

	announcement, err := u.BuildAnnouncement(ctx)
	if err != nil {
		return nil, err
	}

	result, err := u.notifier.Notify(ctx, announcement)
	if err != nil {
		return nil, err
	}

	if result.OK() && u.ledger != nil {
		record := &model.ReleaseRecord{
			Project:     release.Project,
			Version:     release.Version,
			DeliveryID:  result.ID,
			Segments:    result.Delivered,
			DeliveredAt: u.now(),
		}
		if err := u.ledger.Record(ctx, record); err != nil {
			logger.Warn("failed to record announcement",
				slog.String("error", err.Error()),
			)
		}
	}

	return result, nil
}

func (u *AnnounceUseCase) alreadyAnnounced(ctx context.Context, release model.Release) bool {
	announced, err := u.ledger.Announced(ctx, release)
	if err != nil {
		ctxlog.From(ctx).Warn("failed to query ledger, announcing anyway",
			slog.String("error", err.Error()),
		)
		return false
	}
	return announced
}
