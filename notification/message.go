package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

const (
	// DefaultAppBaseURL is the Contentful web app used to build deeplinks
	DefaultAppBaseURL = "https://app.contentful.com"

	// DefaultLocale is the locale whose field values are shown
	DefaultLocale = "en-US"

	iconEmoji       = ":memo:"
	attachmentColor = "#2478CC"
	actionTitle     = "Action applied to Entry"
	fieldPrefix     = "field."
)

/* Message is the Slack incoming-webhook payload
 * Built fresh for every change and discarded after delivery
 */
type Message struct {
	Username    string       `json:"username"`
	IconEmoji   string       `json:"icon_emoji"`
	Attachments []Attachment `json:"attachments"`
}

// Attachment is a Slack legacy message attachment
type Attachment struct {
	Fallback string  `json:"fallback"`
	Pretext  string  `json:"pretext"`
	Color    string  `json:"color"`
	Fields   []Field `json:"fields"`
}

// Field is a single title/value row of an attachment
type Field struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

// Deeplink returns the web app URL of an entry
func Deeplink(appBaseURL, spaceID, entryID string) string {
	return fmt.Sprintf("%s/spaces/%s/entries/%s", strings.TrimSuffix(appBaseURL, "/"), spaceID, entryID)
}

// Compose builds the Slack message announcing a change made by user.
// Every payload field becomes one "field.<key>" row holding its value in locale;
// a field without that locale is kept with an empty value.
func Compose(change ChangeNotification, meta WebhookMetadata, user ResolvedUser, appBaseURL, locale string) Message {
	summary := fmt.Sprintf(
		"An Entry has just been changed by %s. The full Entry is below in the fields. Here is the link to the entry: <%s|Link to Entry>",
		user.DisplayName,
		Deeplink(appBaseURL, change.SpaceID, change.EntityID),
	)

	fields := make([]Field, 0, len(change.Fields)+1)
	fields = append(fields, Field{Title: actionTitle, Value: meta.Topic})

	keys := make([]string, 0, len(change.Fields))
	for key := range change.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fields = append(fields, Field{
			Title: fieldPrefix + key,
			Value: renderValue(change.Fields[key][locale]),
		})
	}

	return Message{
		Username:  "Webhook: " + meta.Name,
		IconEmoji: iconEmoji,
		Attachments: []Attachment{
			{
				Fallback: summary,
				Pretext:  summary,
				Color:    attachmentColor,
				Fields:   fields,
			},
		},
	}
}

// renderValue turns a localized field value into Slack text.
// Strings are shown verbatim, anything else as compact JSON.
func renderValue(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
