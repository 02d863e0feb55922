package usecase

import (
	"net/http"
	"time"

	"github.com/breweryteam/releasehook/pkg/domain/interfaces"
)

// Export for testing
var (
	ParseGitHubURL   = parseGitHubURL
	SplitDescription = splitDescription
	MaskWebhookURL   = maskWebhookURL
	RenderTemplate   = renderTemplate
)

// ConfigService exports for testing
type ConfigService = configService

// Export configService methods for testing
func (c *configService) FindConfigInDirectory(dir string) string {
	return c.findConfigInDirectory(dir)
}

// WebhookClientTimeout returns the timeout of the default HTTP client
func WebhookClientTimeout(n interfaces.Notifier) time.Duration {
	client, ok := n.(*webhookNotifier).transport.(*http.Client)
	if !ok {
		return 0
	}
	return client.Timeout
}
