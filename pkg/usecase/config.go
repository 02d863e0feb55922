package usecase

import (
	"os"
	"path/filepath"

	"github.com/breweryteam/releasehook/pkg/domain"
	"github.com/breweryteam/releasehook/pkg/domain/interfaces"
	"github.com/breweryteam/releasehook/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// configFileNames are looked up in order inside a directory
var configFileNames = []string{".releasehook.yml", ".releasehook.yaml"}

const configTemplate = `# releasehook configuration
# Values may reference environment variables as ${VAR}.
# Command line flags and environment variables take precedence over this file.

# Discord-compatible webhook. Leave empty to skip the announcement.
webhook_url: ${DISCORD_WEBHOOK}

project: Malts
# version: 0.8-BETA

# title and content are Go templates with {{.Project}} and {{.Version}}
title: "{{.Project}} - v{{.Version}}"
content: ""

username: Malts Updates
avatar_url: https://github.com/breweryteam.png
color: 2c2d45
thumbnail_url: https://iili.io/KUX4gYQ.png
# image_url: https://example.com/banner.png

timeout: 10s
rate_interval: 500ms

changelog:
  # file: CHANGELOG.md
  env: CHANGE_LOG
  # github:
  #   repository: breweryteam/malts
  #   tag: v0.8-BETA

# ledger:
#   path: ~/.config/releasehook/ledger.db
`

type configService struct {
	homeDir string
}

func NewConfigService() interfaces.ConfigService {
	homeDir, _ := os.UserHomeDir()
	return &configService{homeDir: homeDir}
}

func (c *configService) GetDefaultPath() string {
	return filepath.Join(c.homeDir, ".config", "releasehook", "config.yml")
}

// Load reads and parses the file at path, expanding ${VAR} references first.
func (c *configService) Load(path string) (*model.Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is given by the operator
	if err != nil {
		return nil, domain.Wrap(domain.ErrConfiguration, err, "failed to read config file",
			goerr.V("path", path),
		)
	}

	var config model.Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &config); err != nil {
		return nil, domain.Wrap(domain.ErrConfiguration, err, "failed to parse config file",
			goerr.V("path", path),
		)
	}

	return &config, nil
}

// LoadDefault loads the per-user config, returning an empty config when it does not exist.
func (c *configService) LoadDefault() (*model.Config, error) {
	path := c.GetDefaultPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &model.Config{}, nil
	}
	return c.Load(path)
}

// LoadFromDirectory loads the project config in dir. The returned path is
// empty when no file exists, and is set even if parsing fails.
func (c *configService) LoadFromDirectory(dir string) (*model.Config, string, error) {
	path := c.findConfigInDirectory(dir)
	if path == "" {
		return &model.Config{}, "", nil
	}

	config, err := c.Load(path)
	if err != nil {
		return nil, path, err
	}
	return config, path, nil
}

func (c *configService) findConfigInDirectory(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func (c *configService) GenerateTemplate() string {
	return configTemplate
}

// SaveTemplate writes the template to path, refusing to overwrite unless force.
func (c *configService) SaveTemplate(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return goerr.Wrap(domain.ErrConfiguration, "config file already exists, use --force to overwrite", goerr.V("path", path))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return domain.Wrap(domain.ErrConfiguration, err, "failed to create config directory",
			goerr.V("path", path),
		)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return domain.Wrap(domain.ErrConfiguration, err, "failed to write config file",
			goerr.V("path", path),
		)
	}

	return nil
}
