package notification

import "errors"

/* Error taxonomy of the pipeline
 * Adapters wrap these sentinels so the HTTP layer and metrics can classify failures
 */
var (
	ErrUpstream   = errors.New("management API request failed")
	ErrLookupMiss = errors.New("user not found")
	ErrDelivery   = errors.New("delivering notification failed")
	ErrMalformed  = errors.New("malformed change notification")
)

// ErrorKind returns a short label for the category of err
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMalformed):
		return "malformed"
	case errors.Is(err, ErrLookupMiss):
		return "lookup_miss"
	case errors.Is(err, ErrUpstream):
		return "upstream"
	case errors.Is(err, ErrDelivery):
		return "delivery"
	default:
		return "unknown"
	}
}
