package usecase

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/breweryteam/releasehook/pkg/domain"
	"github.com/breweryteam/releasehook/pkg/domain/interfaces"
	"github.com/breweryteam/releasehook/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type textChangelog struct {
	text string
}

// NewTextChangelog returns a source yielding text as is
func NewTextChangelog(text string) interfaces.ChangelogSource {
	return &textChangelog{text: text}
}

func (s *textChangelog) Name() string { return "text" }

func (s *textChangelog) Changelog(ctx context.Context, release model.Release) (string, error) {
	return s.text, nil
}

type fileChangelog struct {
	path string
}

// NewFileChangelog reads the changelog from a file. A missing file is a
// configuration error.
func NewFileChangelog(path string) interfaces.ChangelogSource {
	return &fileChangelog{path: path}
}

func (s *fileChangelog) Name() string { return "file" }

func (s *fileChangelog) Changelog(ctx context.Context, release model.Release) (string, error) {
	if s.path == "" {
		return "", nil
	}
	data, err := os.ReadFile(s.path) // #nosec G304 - path is given by the operator
	if err != nil {
		return "", domain.Wrap(domain.ErrConfiguration, err, "failed to read changelog file",
			goerr.V("path", s.path),
		)
	}
	return string(data), nil
}

type envChangelog struct {
	key    string
	getenv func(string) string
}

// NewEnvChangelog reads the changelog from an environment variable
func NewEnvChangelog(key string, getenv func(string) string) interfaces.ChangelogSource {
	if getenv == nil {
		getenv = os.Getenv
	}
	return &envChangelog{key: key, getenv: getenv}
}

func (s *envChangelog) Name() string { return "env" }

func (s *envChangelog) Changelog(ctx context.Context, release model.Release) (string, error) {
	if s.key == "" {
		return "", nil
	}
	return s.getenv(s.key), nil
}

type githubChangelog struct {
	service interfaces.GitHubService
	repo    model.Repository
	tag     string
}

// NewGitHubChangelog reads the body of the GitHub release tagged tag, or
// v<version> when tag is empty.
func NewGitHubChangelog(service interfaces.GitHubService, repo model.Repository, tag string) interfaces.ChangelogSource {
	return &githubChangelog{service: service, repo: repo, tag: tag}
}

func (s *githubChangelog) Name() string { return "github" }

func (s *githubChangelog) Changelog(ctx context.Context, release model.Release) (string, error) {
	if s.service == nil || s.repo.IsZero() {
		return "", nil
	}

	tag := s.tag
	if tag == "" {
		if release.Version == "" {
			return "", nil
		}
		tag = "v" + release.Version
	}

	return s.service.GetReleaseNotes(ctx, s.repo, tag)
}

// ResolveChangelog returns the first non-blank changelog among sources, or
// model.DefaultChangelog. Configuration errors abort; any other source error
// is logged and the next source is tried.
func ResolveChangelog(ctx context.Context, sources []interfaces.ChangelogSource, release model.Release) (string, error) {
	logger := ctxlog.From(ctx)

	for _, source := range sources {
		text, err := source.Changelog(ctx, release)
		if err != nil {
			if domain.IsConfiguration(err) {
				return "", err
			}
			logger.Warn("changelog source failed, trying next",
				slog.String("source", source.Name()),
				slog.String("error", err.Error()),
			)
			continue
		}

		if strings.TrimSpace(text) == "" {
			continue
		}

		logger.Debug("changelog resolved",
			slog.String("source", source.Name()),
			slog.Int("length", len(text)),
		)
		return text, nil
	}

	return model.DefaultChangelog, nil
}
