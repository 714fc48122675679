package chi

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/httplog"
	"github.com/marcelsud/contentful-notifier/notification"
	"github.com/marcelsud/contentful-notifier/notification/payload"
)

const (
	headerWebhookName = "X-Contentful-Webhook-Name"
	headerTopic       = "X-Contentful-Topic"

	// maxBodyBytes is well above the largest entry Contentful will send
	maxBodyBytes = 8 << 20

	deliveredMessage = "Notification sent to Slack"
)

// postChange handles ALL / with a Contentful change notification.
// Every failure becomes a 500 carrying the error text.
func postChange(notificationService notification.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		oplog := httplog.LogEntry(r.Context())

		result, err := handleChange(w, r, notificationService)
		if result.ID != "" {
			httplog.LogEntrySetField(r.Context(), "run_id", result.ID)
		}
		if err != nil {
			oplog.Error().
				Err(err).
				Str("error_kind", notification.ErrorKind(err)).
				Str("run_id", result.ID).
				Msg("processing change notification")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		body := deliveredMessage
		if result.Status == notification.Skipped {
			body = "Ignored: " + result.Reason
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	})
}

func handleChange(w http.ResponseWriter, r *http.Request, notificationService notification.UseCase) (notification.Result, error) {
	contentType := r.Header.Get("Content-Type")
	if !isJSON(contentType) {
		return notification.Result{}, fmt.Errorf("%w: unsupported content type %q", notification.ErrMalformed, contentType)
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return notification.Result{}, fmt.Errorf("%w: request body too large (limit %d bytes)", notification.ErrMalformed, tooLarge.Limit)
		}
		return notification.Result{}, fmt.Errorf("%w: reading request body: %v", notification.ErrMalformed, err)
	}

	change, err := payload.Parse(body)
	if err != nil {
		return notification.Result{}, err
	}

	meta := notification.WebhookMetadata{
		Name:  r.Header.Get(headerWebhookName),
		Topic: r.Header.Get(headerTopic),
	}

	return notificationService.Handle(r.Context(), change, meta)
}

// isJSON accepts application/json and any application/*+json media type
func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	if mediaType == "application/json" {
		return true
	}
	return strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json")
}
