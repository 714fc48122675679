package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/marcelsud/contentful-notifier/config"
)

/* validate-config - Standalone CLI tool to validate the environment configuration
 * Usage: go run cmd/validate-config/main.go
 * Exit codes: 0 = valid, 1 = invalid
 */

func main() {
	fmt.Println("Validating configuration")
	fmt.Println(strings.Repeat("-", 50))

	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "VALIDATION FAILED\n\nError: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "VALIDATION FAILED\n\nError: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("VALIDATION PASSED\n\n")
	fmt.Printf("   Port:          %s\n", cfg.Port)
	fmt.Printf("   Slack URL:     %s\n", redact(cfg.SlackURL))
	fmt.Printf("   CMA token:     %s\n", redact(cfg.CMAToken))
	fmt.Printf("   CMA base URL:  %s\n", cfg.CMABaseURL)
	fmt.Printf("   App base URL:  %s\n", cfg.AppBaseURL)
	fmt.Printf("   Locale:        %s\n", cfg.Locale)
	fmt.Printf("   HTTP timeout:  %s\n", cfg.HTTPTimeout)
	fmt.Printf("   Log level:     %s\n", cfg.LogLevel)
	if len(cfg.Topics) == 0 {
		fmt.Printf("   Topics:        (all)\n")
	} else {
		fmt.Printf("   Topics:        %s\n", strings.Join(cfg.Topics, ", "))
	}
}

// redact keeps the first characters of a secret
func redact(s string) string {
	if len(s) <= 8 {
		return strings.Repeat("*", len(s))
	}
	return s[:8] + strings.Repeat("*", 8)
}
