package notification

import (
	"encoding/json"
	"fmt"
)

/* ChangeNotification is the inbound Contentful webhook payload
 * Uses value semantics as it represents data, not behavior
 */
type ChangeNotification struct {
	EntityID   string
	SpaceID    string
	EntityType EntityType
	// RawType keeps the literal sys.type, EntityType is Unknown for anything unexpected
	RawType string
	// UpdatedByUserID is only set when the change came through the management API
	UpdatedByUserID string
	// Fields maps field key to locale code to the raw JSON value
	Fields map[string]map[string]json.RawMessage
}

// Validate checks the fields every Entry notification must carry
func (c ChangeNotification) Validate() error {
	if c.EntityID == "" {
		return fmt.Errorf("%w: sys.id is required", ErrMalformed)
	}
	if c.SpaceID == "" {
		return fmt.Errorf("%w: sys.space.sys.id is required", ErrMalformed)
	}
	return nil
}

// WebhookMetadata holds the values Contentful sends as headers
type WebhookMetadata struct {
	Name  string
	Topic string
}

// ResolvedUser is the author of a change
type ResolvedUser struct {
	ID          string
	DisplayName string
}

// Status is the terminal state of a pipeline run
type Status int

const (
	Delivered Status = iota + 1
	Skipped
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case Delivered:
		return "delivered"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result describes a successful pipeline run
type Result struct {
	ID     string
	Status Status
	Reason string
	User   ResolvedUser
}
