package interfaces

import (
	"context"

	"github.com/breweryteam/releasehook/pkg/domain/model"
)

// ChangelogSource yields the announcement body. An empty string means the
// source has nothing to offer and the next one should be tried.
type ChangelogSource interface {
	Name() string
	Changelog(ctx context.Context, release model.Release) (string, error)
}

type GitHubService interface {
	GetReleaseNotes(ctx context.Context, repo model.Repository, tag string) (string, error)
}
