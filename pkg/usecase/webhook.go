package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/breweryteam/releasehook/pkg/domain"
	"github.com/breweryteam/releasehook/pkg/domain/interfaces"
	"github.com/breweryteam/releasehook/pkg/domain/model"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/time/rate"
)

const userAgent = "releasehook"

type WebhookOptions struct {
	URL string
	// Transport defaults to an *http.Client bounded by Timeout.
	Transport interfaces.Transport
	Timeout   time.Duration
	// RateInterval is the minimum gap between two requests. Zero disables pacing.
	RateInterval time.Duration
	// Limit overrides model.DescriptionLimit.
	Limit int
}

type webhookNotifier struct {
	url       string
	transport interfaces.Transport
	limiter   *rate.Limiter
	limit     int
}

// NewWebhookNotifier creates a Notifier posting to a Discord-compatible webhook
func NewWebhookNotifier(opts WebhookOptions) interfaces.Notifier {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = model.DefaultTimeout
	}

	transport := opts.Transport
	if transport == nil {
		transport = &http.Client{
			Timeout: timeout,
		}
	}

	var limiter *rate.Limiter
	if opts.RateInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(opts.RateInterval), 1)
	}

	return &webhookNotifier{
		url:       strings.TrimSpace(opts.URL),
		transport: transport,
		limiter:   limiter,
		limit:     opts.Limit,
	}
}

// Notify composes the announcement and posts one request per segment, in
// order. Delivery stops at the first failed segment.
func (w *webhookNotifier) Notify(ctx context.Context, announcement *model.Announcement) (*model.DeliveryResult, error) {
	logger := ctxlog.From(ctx)

	segments := Compose(announcement, w.limit)
	payload, err := Serialize(segments, announcement.Sender())
	if err != nil {
		return nil, err
	}
	requests := payload.Requests()

	result := &model.DeliveryResult{
		ID:    uuid.NewString(),
		Total: len(requests),
	}

	if w.url == "" {
		logger.Info("webhook URL is not configured, skipping announcement",
			slog.String("title", announcement.Title),
		)
		result.Status = model.DeliveryStatusSkipped
		return result, nil
	}

	logger.Debug("delivering announcement",
		slog.String("delivery_id", result.ID),
		slog.String("webhook_url", maskWebhookURL(w.url)),
		slog.Int("segments", len(requests)),
	)

	start := time.Now()
	for i, request := range requests {
		if w.limiter != nil {
			if err := w.limiter.Wait(ctx); err != nil {
				result.Err = domain.Wrap(domain.ErrDelivery, err, "interrupted while pacing requests",
					goerr.V("segment", i),
				)
				break
			}
		}

		code, size, err := w.send(ctx, request)
		result.StatusCode = code
		result.Bytes += size
		if err != nil {
			result.Err = goerr.Wrap(err, "segment was not delivered", goerr.V("segment", i))
			break
		}
		result.Delivered++

		logger.Debug("segment delivered",
			slog.String("delivery_id", result.ID),
			slog.Int("segment", i+1),
			slog.Int("status", code),
		)
	}
	result.Duration = time.Since(start)

	switch {
	case result.Delivered == result.Total:
		result.Status = model.DeliveryStatusSent
	case result.Delivered > 0:
		result.Status = model.DeliveryStatusPartial
	default:
		result.Status = model.DeliveryStatusFailed
	}

	if result.Err != nil {
		logger.Warn("failed to deliver announcement",
			slog.String("delivery_id", result.ID),
			slog.String("status", string(result.Status)),
			slog.Int("delivered", result.Delivered),
			slog.Int("total", result.Total),
			slog.Int("status_code", result.StatusCode),
			slog.String("error", result.Err.Error()),
		)
	}

	return result, nil
}

// send posts a single request body and returns the HTTP status code and the
// number of bytes written.
func (w *webhookNotifier) send(ctx context.Context, payload model.Payload) (int, int, error) {
	logger := ctxlog.From(ctx)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return 0, 0, goerr.Wrap(err, "failed to marshal webhook payload")
	}

	logger.Debug("sending to webhook",
		slog.String("webhook_url", maskWebhookURL(w.url)),
		slog.String("payload", string(jsonData)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(jsonData))
	if err != nil {
		return 0, 0, domain.Wrap(domain.ErrConfiguration, err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := w.transport.Do(req)
	if err != nil {
		return 0, len(jsonData), domain.Wrap(domain.ErrDelivery, err, "failed to send request")
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096)) // best effort, only used for the error message

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, len(jsonData), goerr.Wrap(domain.ErrDelivery, "webhook returned non-2xx status",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(respBody)),
		)
	}

	return resp.StatusCode, len(jsonData), nil
}

// maskWebhookURL masks the webhook token for logging
func maskWebhookURL(url string) string {
	if idx := strings.Index(url, "/api/webhooks/"); idx >= 0 {
		parts := strings.Split(url[idx+len("/api/webhooks/"):], "/")
		if len(parts) >= 2 {
			return url[:idx] + "/api/webhooks/" + parts[0] + "/***"
		}
	}
	if len(url) > 20 {
		return url[:20] + "***"
	}
	return "***"
}
