package notify

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/allmart/backoffice/internal/config"
)

// Module exposes the webhook sender to the fx graph. When no webhook URL is
// configured the provided value is nil and the notifier stays idle.
var Module = fx.Provide(newWebhook)

type webhookParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newWebhook(p webhookParams) (*Webhook, error) {
	if p.Config.NotifyWebhookURL == "" {
		return nil, nil
	}
	return NewWebhook(p.Config.NotifyWebhookURL, p.Logger)
}
