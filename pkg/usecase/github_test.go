package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/breweryteam/releasehook/pkg/domain"
	"github.com/breweryteam/releasehook/pkg/domain/model"
	"github.com/breweryteam/releasehook/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestParseGitHubURL(t *testing.T) {
	testCases := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
	}{
		{
			name:      "SSH URL",
			url:       "git@github.com:breweryteam/malts.git",
			wantOwner: "breweryteam",
			wantRepo:  "malts",
		},
		{
			name:      "HTTPS URL",
			url:       "https://github.com/breweryteam/malts.git",
			wantOwner: "breweryteam",
			wantRepo:  "malts",
		},
		{
			name:      "SSH URL with ssh://",
			url:       "ssh://git@github.com/breweryteam/malts.git",
			wantOwner: "breweryteam",
			wantRepo:  "malts",
		},
		{
			name:      "Without .git suffix",
			url:       "https://github.com/breweryteam/malts",
			wantOwner: "breweryteam",
			wantRepo:  "malts",
		},
		{
			name:      "Invalid URL",
			url:       "https://example.com/something",
			wantOwner: "",
			wantRepo:  "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			owner, repo := usecase.ParseGitHubURL(tc.url)
			gt.Equal(t, owner, tc.wantOwner)
			gt.Equal(t, repo, tc.wantRepo)
		})
	}
}

func TestParseRepository(t *testing.T) {
	t.Run("owner/name", func(t *testing.T) {
		repo, err := usecase.ParseRepository("breweryteam/malts")
		gt.NoError(t, err)
		gt.Equal(t, repo.FullName(), "breweryteam/malts")
	})

	t.Run("remote URL", func(t *testing.T) {
		repo, err := usecase.ParseRepository("git@github.com:breweryteam/malts.git")
		gt.NoError(t, err)
		gt.Equal(t, repo.FullName(), "breweryteam/malts")
	})

	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{"", "malts", "/malts", "a/b/c"} {
			_, err := usecase.ParseRepository(s)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, domain.ErrConfiguration))
		}
	})
}

func TestGitHubService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/breweryteam/malts/releases/tags/v0.8-BETA":
			gt.Equal(t, r.Header.Get("Authorization"), "Bearer test-token")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"name":"0.8-BETA","body":"- Fixed vault search"}`))
		case "/repos/breweryteam/malts/releases/tags/v0.9":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"boom"}`))
		}
	}))
	defer server.Close()

	ctx := context.Background()
	svc, err := usecase.NewGitHubService(ctx, usecase.GitHubOptions{
		Token:   "test-token",
		BaseURL: server.URL,
	})
	gt.NoError(t, err)

	repo := model.Repository{Owner: "breweryteam", Name: "malts"}

	t.Run("Release body", func(t *testing.T) {
		body, err := svc.GetReleaseNotes(ctx, repo, "v0.8-BETA")
		gt.NoError(t, err)
		gt.Equal(t, body, "- Fixed vault search")
	})

	t.Run("Missing release is empty", func(t *testing.T) {
		body, err := svc.GetReleaseNotes(ctx, repo, "v0.9")
		gt.NoError(t, err)
		gt.Equal(t, body, "")
	})

	t.Run("Server error", func(t *testing.T) {
		_, err := svc.GetReleaseNotes(ctx, repo, "v1.0")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, domain.ErrAPIRequest))
	})
}
