package notification

import "fmt"

/* EntityType is the kind of Contentful entity a change notification refers to
 * Only Entry changes travel the whole pipeline, the others are acknowledged and dropped
 */
type EntityType int

const (
	Unknown EntityType = iota
	Entry
	Asset
	ContentType
)

// String returns the sys.type representation of the entity type
func (e EntityType) String() string {
	switch e {
	case Entry:
		return "Entry"
	case Asset:
		return "Asset"
	case ContentType:
		return "ContentType"
	default:
		return "unknown"
	}
}

// NewEntityType creates an EntityType from a sys.type value
func NewEntityType(s string) EntityType {
	switch s {
	case "Entry":
		return Entry
	case "Asset":
		return Asset
	case "ContentType":
		return ContentType
	default:
		return Unknown
	}
}

// URLFragment returns the management API collection name for the entity type
func (e EntityType) URLFragment() (string, error) {
	switch e {
	case Entry:
		return "entries", nil
	case Asset:
		return "assets", nil
	case ContentType:
		return "content_types", nil
	default:
		return "", fmt.Errorf("no management API collection for entity type %q", e.String())
	}
}
