package notification

import (
	"fmt"
	"regexp"
	"strings"
)

// topicPattern validates topics: full-stop delimited, [a-zA-Z0-9_.]
var topicPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+(\.[a-zA-Z0-9_]+)*$`)

// MatchesTopic checks if topic matches any of the given patterns
// Supports exact matching and prefix matching (e.g., "ContentManagement.Entry.*"
// matches "ContentManagement.Entry.publish")
func MatchesTopic(topic string, patterns []string) bool {
	if len(patterns) == 0 {
		// No filter means accept all
		return true
	}

	for _, pattern := range patterns {
		if topic == pattern {
			return true
		}

		if prefix, ok := strings.CutSuffix(pattern, ".*"); ok && prefix != "" {
			if strings.HasPrefix(topic, prefix+".") && len(topic) > len(prefix)+1 {
				return true
			}
		}
	}

	return false
}

// ValidateTopicPattern validates a topic filter pattern
func ValidateTopicPattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("topic pattern cannot be empty")
	}

	// Allow wildcard suffix for filtering
	if prefix, ok := strings.CutSuffix(pattern, ".*"); ok && prefix != "" {
		pattern = prefix
	}

	if !topicPattern.MatchString(pattern) {
		return fmt.Errorf("topic must be full-stop delimited and contain only [a-zA-Z0-9_.]: %s", pattern)
	}

	return nil
}
