package interfaces

import (
	"context"
	"net/http"

	"github.com/breweryteam/releasehook/pkg/domain/model"
)

// Transport performs a single HTTP exchange. *http.Client satisfies it.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

// Notifier delivers an announcement. The returned error is reserved for
// configuration problems detected before any network call; delivery outcomes
// are reported through DeliveryResult.
type Notifier interface {
	Notify(ctx context.Context, announcement *model.Announcement) (*model.DeliveryResult, error)
}
