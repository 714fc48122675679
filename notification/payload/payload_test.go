package payload

import (
	"testing"

	"github.com/marcelsud/contentful-notifier/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("success - entry published from the web app", func(t *testing.T) {
		data := []byte(`{
			"sys": {
				"type": "Entry",
				"id": "5KsDBWseXY6QegucYAoacS",
				"space": {"sys": {"type": "Link", "linkType": "Space", "id": "yadj1kx9rmg0"}},
				"updatedBy": {"sys": {"type": "Link", "linkType": "User", "id": "4FLrUHftHW3v2BLi9fzfjU"}},
				"version": 3
			},
			"fields": {
				"title": {"en-US": "Hello", "de-DE": "Hallo"},
				"count": {"en-US": 3}
			}
		}`)

		change, err := Parse(data)
		require.NoError(t, err)
		assert.Equal(t, notification.Entry, change.EntityType)
		assert.Equal(t, "Entry", change.RawType)
		assert.Equal(t, "5KsDBWseXY6QegucYAoacS", change.EntityID)
		assert.Equal(t, "yadj1kx9rmg0", change.SpaceID)
		assert.Equal(t, "4FLrUHftHW3v2BLi9fzfjU", change.UpdatedByUserID)
		require.Len(t, change.Fields, 2)
		assert.JSONEq(t, `"Hello"`, string(change.Fields["title"]["en-US"]))
		assert.JSONEq(t, `3`, string(change.Fields["count"]["en-US"]))
	})

	t.Run("success - without updatedBy", func(t *testing.T) {
		data := []byte(`{"sys": {"type": "Entry", "id": "e1", "space": {"sys": {"id": "s1"}}}}`)

		change, err := Parse(data)
		require.NoError(t, err)
		assert.Empty(t, change.UpdatedByUserID)
		assert.Empty(t, change.Fields)
	})

	t.Run("success - other types only need sys.type", func(t *testing.T) {
		change, err := Parse([]byte(`{"sys": {"type": "Asset"}}`))
		require.NoError(t, err)
		assert.Equal(t, notification.Asset, change.EntityType)

		change, err = Parse([]byte(`{"sys": {"type": "DeletedEntry", "id": "x"}}`))
		require.NoError(t, err)
		assert.Equal(t, notification.Unknown, change.EntityType)
		assert.Equal(t, "DeletedEntry", change.RawType)
	})

	t.Run("error - empty body", func(t *testing.T) {
		_, err := Parse(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, notification.ErrMalformed)
	})

	t.Run("error - invalid JSON", func(t *testing.T) {
		_, err := Parse([]byte(`{invalid json}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, notification.ErrMalformed)
		assert.Contains(t, err.Error(), "unmarshaling payload")
	})

	t.Run("error - missing sys.type", func(t *testing.T) {
		_, err := Parse([]byte(`{"sys": {"id": "e1"}}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sys.type is required")
	})

	t.Run("error - fields with wrong shape", func(t *testing.T) {
		_, err := Parse([]byte(`{"sys": {"type": "Entry"}, "fields": {"title": "Hello"}}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, notification.ErrMalformed)
	})
}
