package main

import (
	"context"
	"fmt"
	"os"

	"github.com/marcelsud/contentful-notifier/config"
	"github.com/marcelsud/contentful-notifier/internal/httpclient"
	"github.com/marcelsud/contentful-notifier/notification"
	"github.com/marcelsud/contentful-notifier/notification/contentful"
	"github.com/marcelsud/contentful-notifier/notification/payload"
	"github.com/marcelsud/contentful-notifier/notification/slack"
)

/* cli - Runs the notification pipeline once against a payload file
 * Usage: go run cmd/cli/main.go payload.json [webhook-name] [topic]
 */

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: cli <payload.json> [webhook-name] [topic]")
		os.Exit(2)
	}
	meta := notification.WebhookMetadata{Name: "cli"}
	if len(os.Args) > 2 {
		meta.Name = os.Args[2]
	}
	if len(os.Args) > 3 {
		meta.Topic = os.Args[3]
	}

	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	body, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	change, err := payload.Parse(body)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	hc := httpclient.New(cfg.HTTPTimeout)
	s := notification.NewService(
		contentful.NewClient(hc, cfg.CMABaseURL, cfg.CMAToken),
		slack.NewNotifier(hc, cfg.SlackURL),
		notification.WithAppBaseURL(cfg.AppBaseURL),
		notification.WithLocale(cfg.Locale),
		notification.WithTopics(cfg.Topics),
	)
	result, err := s.Handle(context.Background(), change, meta)
	if err != nil {
		fmt.Printf("run failed (%s): %v\n", notification.ErrorKind(err), err)
		os.Exit(1)
	}
	fmt.Printf("run %s: %s", result.ID, result.Status)
	if result.Reason != "" {
		fmt.Printf(" (%s)", result.Reason)
	}
	if result.User.DisplayName != "" {
		fmt.Printf(" by %s", result.User.DisplayName)
	}
	fmt.Println()
}
