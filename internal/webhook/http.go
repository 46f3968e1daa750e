package webhook

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"video-catalog-api/internal/infrastructure/metrics"
)

// HTTPNotifier POSTs catalog-change payloads to a configured URL. An empty
// URL disables delivery entirely.
type HTTPNotifier struct {
	client *resty.Client
	url    string
	log    zerolog.Logger
}

// NewHTTPNotifier creates an HTTP-based notifier.
func NewHTTPNotifier(url string, timeout time.Duration, log zerolog.Logger) *HTTPNotifier {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(2 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &HTTPNotifier{
		client: client,
		url:    url,
		log:    log.With().Str("component", "webhook").Logger(),
	}
}

type payload struct {
	Event   string    `json:"event"`
	VideoID int64     `json:"video_id"`
	Title   string    `json:"title"`
	SentAt  time.Time `json:"sent_at"`
}

// NotifyVideoEvent delivers the notification in the background so mutations
// never wait on the receiver.
func (n *HTTPNotifier) NotifyVideoEvent(event Event, videoID int64, title string) {
	if n.url == "" {
		return
	}
	go func() {
		if err := n.Send(event, videoID, title); err != nil {
			n.log.Error().Err(err).Str("event", string(event)).Int64("video_id", videoID).Msg("webhook delivery failed")
		}
	}()
}

// Send performs one delivery, including resty's retry handling.
func (n *HTTPNotifier) Send(event Event, videoID int64, title string) error {
	resp, err := n.client.R().
		SetBody(payload{
			Event:   string(event),
			VideoID: videoID,
			Title:   title,
			SentAt:  time.Now().UTC(),
		}).
		Post(n.url)
	if err != nil {
		metrics.WebhookDeliveriesTotal.WithLabelValues(string(event), "error").Inc()
		return err
	}
	if resp.IsError() {
		metrics.WebhookDeliveriesTotal.WithLabelValues(string(event), "error").Inc()
		return &DeliveryError{StatusCode: resp.StatusCode()}
	}

	metrics.WebhookDeliveriesTotal.WithLabelValues(string(event), "ok").Inc()
	n.log.Debug().Str("event", string(event)).Int64("video_id", videoID).Msg("webhook delivered")
	return nil
}

// DeliveryError reports a non-2xx response from the receiver.
type DeliveryError struct {
	StatusCode int
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("webhook receiver returned status %d", e.StatusCode)
}
