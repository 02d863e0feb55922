package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/breweryteam/releasehook/pkg/domain"
	"github.com/breweryteam/releasehook/pkg/domain/interfaces"
	"github.com/breweryteam/releasehook/pkg/domain/model"
	"github.com/breweryteam/releasehook/pkg/usecase"
	"github.com/m-mizutani/gt"
)

type fakeGitHub struct {
	notes   string
	err     error
	lastTag string
}

func (f *fakeGitHub) GetReleaseNotes(ctx context.Context, repo model.Repository, tag string) (string, error) {
	f.lastTag = tag
	return f.notes, f.err
}

func TestResolveChangelog(t *testing.T) {
	ctx := context.Background()
	release := model.Release{Project: "Malts", Version: "0.8-BETA"}
	env := func(values map[string]string) func(string) string {
		return func(key string) string { return values[key] }
	}

	t.Run("First non-blank source wins", func(t *testing.T) {
		sources := []interfaces.ChangelogSource{
			usecase.NewTextChangelog(""),
			usecase.NewEnvChangelog("CHANGE_LOG", env(map[string]string{"CHANGE_LOG": "  \n"})),
			usecase.NewTextChangelog("- Added /vaults search"),
			usecase.NewTextChangelog("never used"),
		}
		text, err := usecase.ResolveChangelog(ctx, sources, release)
		gt.NoError(t, err)
		gt.Equal(t, text, "- Added /vaults search")
	})

	t.Run("Fallback when every source is empty", func(t *testing.T) {
		sources := []interfaces.ChangelogSource{
			usecase.NewTextChangelog(""),
			usecase.NewFileChangelog(""),
			usecase.NewEnvChangelog("CHANGE_LOG", env(nil)),
		}
		text, err := usecase.ResolveChangelog(ctx, sources, release)
		gt.NoError(t, err)
		gt.Equal(t, text, "No changelog provided.")
	})

	t.Run("Env source", func(t *testing.T) {
		source := usecase.NewEnvChangelog("CHANGE_LOG", env(map[string]string{"CHANGE_LOG": "from env"}))
		text, err := usecase.ResolveChangelog(ctx, []interfaces.ChangelogSource{source}, release)
		gt.NoError(t, err)
		gt.Equal(t, text, "from env")
	})

	t.Run("File source keeps content as is", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "CHANGELOG.md")
		gt.NoError(t, os.WriteFile(path, []byte("## 0.8\n- Warehouse mode\n"), 0600))

		text, err := usecase.ResolveChangelog(ctx, []interfaces.ChangelogSource{usecase.NewFileChangelog(path)}, release)
		gt.NoError(t, err)
		gt.Equal(t, text, "## 0.8\n- Warehouse mode\n")
	})

	t.Run("Missing file is a configuration error", func(t *testing.T) {
		source := usecase.NewFileChangelog(filepath.Join(t.TempDir(), "missing.md"))
		_, err := usecase.ResolveChangelog(ctx, []interfaces.ChangelogSource{source}, release)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, domain.ErrConfiguration))
		gt.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("GitHub source uses v<version> tag", func(t *testing.T) {
		gh := &fakeGitHub{notes: "release notes"}
		source := usecase.NewGitHubChangelog(gh, model.Repository{Owner: "breweryteam", Name: "malts"}, "")
		text, err := usecase.ResolveChangelog(ctx, []interfaces.ChangelogSource{source}, release)
		gt.NoError(t, err)
		gt.Equal(t, text, "release notes")
		gt.Equal(t, gh.lastTag, "v0.8-BETA")
	})

	t.Run("GitHub source explicit tag", func(t *testing.T) {
		gh := &fakeGitHub{notes: "tagged"}
		source := usecase.NewGitHubChangelog(gh, model.Repository{Owner: "breweryteam", Name: "malts"}, "release-1")
		_, err := usecase.ResolveChangelog(ctx, []interfaces.ChangelogSource{source}, release)
		gt.NoError(t, err)
		gt.Equal(t, gh.lastTag, "release-1")
	})

	t.Run("GitHub failure falls through", func(t *testing.T) {
		gh := &fakeGitHub{err: errors.New("rate limited")}
		sources := []interfaces.ChangelogSource{
			usecase.NewGitHubChangelog(gh, model.Repository{Owner: "breweryteam", Name: "malts"}, ""),
			usecase.NewTextChangelog("local notes"),
		}
		text, err := usecase.ResolveChangelog(ctx, sources, release)
		gt.NoError(t, err)
		gt.Equal(t, text, "local notes")
	})

	t.Run("GitHub source without repository or version is empty", func(t *testing.T) {
		gh := &fakeGitHub{notes: "unused"}
		sources := []interfaces.ChangelogSource{
			usecase.NewGitHubChangelog(gh, model.Repository{}, ""),
			usecase.NewGitHubChangelog(gh, model.Repository{Owner: "breweryteam", Name: "malts"}, ""),
		}
		text, err := usecase.ResolveChangelog(ctx, sources, model.Release{Project: "Malts"})
		gt.NoError(t, err)
		gt.Equal(t, text, "No changelog provided.")
		gt.Equal(t, gh.lastTag, "")
	})
}
