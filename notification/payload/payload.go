package payload

import (
	"encoding/json"
	"fmt"

	"github.com/marcelsud/contentful-notifier/notification"
)

// link is the {"sys": {"id": ...}} shape Contentful uses for references
type link struct {
	Sys struct {
		ID string `json:"id"`
	} `json:"sys"`
}

// contentfulPayload mirrors the body of a Contentful webhook call
type contentfulPayload struct {
	Sys struct {
		ID        string `json:"id"`
		Type      string `json:"type"`
		Space     *link  `json:"space"`
		UpdatedBy *link  `json:"updatedBy"`
	} `json:"sys"`

	// Fields maps field key to locale code to value
	Fields map[string]map[string]json.RawMessage `json:"fields"`
}

// Parse parses a Contentful webhook body into a ChangeNotification.
// Only sys.type is required here, the remaining fields are validated once the
// entity type is known to be forwarded.
func Parse(data []byte) (notification.ChangeNotification, error) {
	if len(data) == 0 {
		return notification.ChangeNotification{}, fmt.Errorf("%w: empty body", notification.ErrMalformed)
	}

	var p contentfulPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return notification.ChangeNotification{}, fmt.Errorf("%w: unmarshaling payload: %v", notification.ErrMalformed, err)
	}

	if p.Sys.Type == "" {
		return notification.ChangeNotification{}, fmt.Errorf("%w: sys.type is required", notification.ErrMalformed)
	}

	change := notification.ChangeNotification{
		EntityID:   p.Sys.ID,
		EntityType: notification.NewEntityType(p.Sys.Type),
		RawType:    p.Sys.Type,
		Fields:     p.Fields,
	}
	if p.Sys.Space != nil {
		change.SpaceID = p.Sys.Space.Sys.ID
	}
	if p.Sys.UpdatedBy != nil {
		change.UpdatedByUserID = p.Sys.UpdatedBy.Sys.ID
	}

	return change, nil
}
