package slack

import (
	"context"
	"fmt"

	"github.com/marcelsud/contentful-notifier/internal/httpclient"
	"github.com/marcelsud/contentful-notifier/notification"
)

// Notifier posts messages to a Slack incoming webhook
type Notifier struct {
	http       *httpclient.Client
	webhookURL string
}

// NewNotifier creates a notifier for the given incoming webhook URL
func NewNotifier(hc *httpclient.Client, webhookURL string) *Notifier {
	return &Notifier{
		http:       hc,
		webhookURL: webhookURL,
	}
}

// Deliver posts msg as JSON. The webhook URL is the only credential.
func (n *Notifier) Deliver(ctx context.Context, msg notification.Message) error {
	if err := n.http.PostJSON(ctx, n.webhookURL, nil, msg, nil); err != nil {
		return fmt.Errorf("%w: %w", notification.ErrDelivery, err)
	}
	return nil
}
