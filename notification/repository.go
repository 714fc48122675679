package notification

import "context"

/* Small, focused interfaces following "The Go Way"
 * Interfaces abstract behavior, not things
 */

// UserResolver looks up the author of a change in the management API
type UserResolver interface {
	/* UpdatedBy fetches the entity and returns the id of the user who last updated it
	 * Context is always the first parameter in functions that do I/O
	 */
	UpdatedBy(ctx context.Context, spaceID string, entityType EntityType, entityID string) (string, error)
	/* DisplayName lists the users of the space and returns the one matching userID
	 * Returns an error wrapping ErrLookupMiss when nobody matches
	 */
	DisplayName(ctx context.Context, spaceID, userID string) (ResolvedUser, error)
}

// Notifier delivers a composed message to the chat destination
type Notifier interface {
	Deliver(ctx context.Context, msg Message) error
}
