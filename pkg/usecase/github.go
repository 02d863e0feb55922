package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/breweryteam/releasehook/pkg/domain"
	"github.com/breweryteam/releasehook/pkg/domain/interfaces"
	"github.com/breweryteam/releasehook/pkg/domain/model"
	"github.com/google/go-github/v74/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

type GitHubOptions struct {
	Token string
	// BaseURL points the client at a GitHub Enterprise or test server.
	BaseURL string
}

type GitHubService struct {
	client *github.Client
}

func NewGitHubService(ctx context.Context, opts GitHubOptions) (interfaces.GitHubService, error) {
	var httpClient *http.Client
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		httpClient = oauth2.NewClient(ctx, ts)
	}

	client := github.NewClient(httpClient)
	if opts.BaseURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(opts.BaseURL, "/") + "/")
		if err != nil {
			return nil, domain.Wrap(domain.ErrConfiguration, err, "invalid GitHub base URL",
				goerr.V("url", opts.BaseURL),
			)
		}
		client.BaseURL = baseURL
	}

	return &GitHubService{client: client}, nil
}

// GetReleaseNotes returns the body of the release tagged tag. A missing
// release yields an empty string.
func (s *GitHubService) GetReleaseNotes(ctx context.Context, repo model.Repository, tag string) (string, error) {
	logger := ctxlog.From(ctx)

	release, resp, err := s.client.Repositories.GetReleaseByTag(ctx, repo.Owner, repo.Name, tag)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			logger.Info("GitHub release not found",
				slog.String("repo", repo.FullName()),
				slog.String("tag", tag),
			)
			return "", nil
		}
		return "", domain.Wrap(domain.ErrAPIRequest, err, "failed to get GitHub release",
			goerr.V("repo", repo.FullName()),
			goerr.V("tag", tag),
		)
	}

	logger.Debug("fetched GitHub release",
		slog.String("repo", repo.FullName()),
		slog.String("tag", tag),
		slog.String("name", release.GetName()),
	)

	return release.GetBody(), nil
}

// ParseRepository accepts "owner/name" or a GitHub remote URL.
func ParseRepository(s string) (model.Repository, error) {
	s = strings.TrimSpace(s)
	owner, name := parseGitHubURL(s)
	if owner == "" || name == "" {
		parts := strings.Split(s, "/")
		if len(parts) == 2 && parts[0] != "" && parts[1] != "" {
			owner, name = parts[0], parts[1]
		}
	}
	if owner == "" || name == "" {
		return model.Repository{}, goerr.Wrap(domain.ErrConfiguration, "invalid GitHub repository", goerr.V("repository", s))
	}

	return model.Repository{
		Owner: owner,
		Name:  name,
	}, nil
}

func parseGitHubURL(url string) (owner, repo string) {
	url = strings.TrimSuffix(url, ".git")

	for _, prefix := range []string{"git@github.com:", "https://github.com/", "ssh://git@github.com/"} {
		if !strings.HasPrefix(url, prefix) {
			continue
		}
		parts := strings.Split(strings.TrimPrefix(url, prefix), "/")
		if len(parts) == 2 {
			return parts[0], parts[1]
		}
	}

	return "", ""
}
