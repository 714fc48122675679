package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marcelsud/contentful-notifier/metrics"
)

/* Service represents the business logic layer
 * Uses pointer semantics as it's an API, not data
 * Holds only collaborators and settings, every request value travels as an argument
 */

// UseCase defines the notification pipeline
type UseCase interface {
	Handle(ctx context.Context, change ChangeNotification, meta WebhookMetadata) (Result, error)
}

type Service struct {
	Users      UserResolver
	Notifier   Notifier
	Metrics    metrics.Recorder
	AppBaseURL string
	Locale     string
	// Topics restricts the forwarded topics, empty means all
	Topics []string
}

// Option customizes a Service
type Option func(*Service)

// WithMetrics sets the recorder for pipeline outcomes
func WithMetrics(r metrics.Recorder) Option {
	return func(s *Service) { s.Metrics = r }
}

// WithAppBaseURL sets the base URL of deeplinks
func WithAppBaseURL(u string) Option {
	return func(s *Service) { s.AppBaseURL = u }
}

// WithLocale sets the locale of the field values shown in messages
func WithLocale(locale string) Option {
	return func(s *Service) { s.Locale = locale }
}

// WithTopics only forwards changes whose topic matches one of patterns
func WithTopics(patterns []string) Option {
	return func(s *Service) { s.Topics = patterns }
}

// NewService creates a new notification service with dependency injection
func NewService(users UserResolver, notifier Notifier, opts ...Option) *Service {
	s := &Service{
		Users:      users,
		Notifier:   notifier,
		Metrics:    metrics.Noop{},
		AppBaseURL: DefaultAppBaseURL,
		Locale:     DefaultLocale,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle runs the pipeline for one change notification.
// Non-Entry changes and filtered topics return a Skipped result without any outbound call.
func (s *Service) Handle(ctx context.Context, change ChangeNotification, meta WebhookMetadata) (Result, error) {
	start := time.Now()
	result, err := s.handle(ctx, change, meta)

	// RawType is caller controlled, the label only takes the known types
	outcome := metrics.Outcome{
		EntityType: change.EntityType.String(),
		Duration:   time.Since(start),
	}
	switch {
	case err != nil:
		outcome.Result = metrics.ResultFailed
		outcome.ErrorKind = ErrorKind(err)
	case result.Status == Skipped:
		outcome.Result = metrics.ResultSkipped
	default:
		outcome.Result = metrics.ResultDelivered
	}
	s.Metrics.Observe(ctx, outcome)

	return result, err
}

func (s *Service) handle(ctx context.Context, change ChangeNotification, meta WebhookMetadata) (Result, error) {
	result := Result{ID: uuid.New().String()}

	if change.EntityType != Entry {
		result.Status = Skipped
		result.Reason = fmt.Sprintf("only Entry changes are forwarded, got %q", change.RawType)
		return result, nil
	}

	if !MatchesTopic(meta.Topic, s.Topics) {
		result.Status = Skipped
		result.Reason = fmt.Sprintf("topic %q is not forwarded", meta.Topic)
		return result, nil
	}

	if err := change.Validate(); err != nil {
		return result, err
	}

	userID, err := s.resolveUserID(ctx, change)
	if err != nil {
		return result, fmt.Errorf("resolving user id: %w", err)
	}

	user, err := s.resolveUserName(ctx, change.SpaceID, userID)
	if err != nil {
		return result, fmt.Errorf("resolving user name: %w", err)
	}
	result.User = user

	msg := Compose(change, meta, user, s.AppBaseURL, s.Locale)
	if err := s.Notifier.Deliver(ctx, msg); err != nil {
		return result, fmt.Errorf("delivering message: %w", err)
	}

	result.Status = Delivered
	return result, nil
}

// resolveUserID prefers the id carried by the payload over a management API lookup
func (s *Service) resolveUserID(ctx context.Context, change ChangeNotification) (string, error) {
	if change.UpdatedByUserID != "" {
		return change.UpdatedByUserID, nil
	}
	return s.Users.UpdatedBy(ctx, change.SpaceID, change.EntityType, change.EntityID)
}

func (s *Service) resolveUserName(ctx context.Context, spaceID, userID string) (ResolvedUser, error) {
	return s.Users.DisplayName(ctx, spaceID, userID)
}
