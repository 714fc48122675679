package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog"
	"github.com/marcelsud/contentful-notifier/config"
	"github.com/marcelsud/contentful-notifier/internal/http/chi"
	"github.com/marcelsud/contentful-notifier/internal/httpclient"
	"github.com/marcelsud/contentful-notifier/metrics"
	"github.com/marcelsud/contentful-notifier/notification"
	"github.com/marcelsud/contentful-notifier/notification/contentful"
	"github.com/marcelsud/contentful-notifier/notification/slack"
	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

const TIMEOUT = 30 * time.Second

/* main wires config, adapters and the HTTP layer
 * Imports go in one direction only: the binary imports the domain, which knows nothing about transports
 */

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := httplog.NewLogger("contentful-notifier", httplog.Options{
		JSON:     true,
		LogLevel: cfg.LogLevel,
	})

	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	exporter, err := metrics.NewOTelExporter(promclient.NewRegistry())
	if err != nil {
		return fmt.Errorf("creating metrics exporter: %w", err)
	}
	defer exporter.Shutdown(context.Background())

	hc := httpclient.New(cfg.HTTPTimeout)
	s := notification.NewService(
		contentful.NewClient(hc, cfg.CMABaseURL, cfg.CMAToken),
		slack.NewNotifier(hc, cfg.SlackURL),
		notification.WithMetrics(exporter),
		notification.WithAppBaseURL(cfg.AppBaseURL),
		notification.WithLocale(cfg.Locale),
		notification.WithTopics(cfg.Topics),
	)

	requestTimeout := chi.RequestTimeout(cfg.HTTPTimeout)
	r := chi.WebhookHandlers(ctx, s, logger, exporter.ServeHTTP(), requestTimeout)
	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: requestTimeout + 5*time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      r,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)

	logger.Info().Str("port", cfg.Port).Strs("topics", cfg.Topics).Msg("listening")
	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-errShutdown
	if err != nil {
		return err
	}
	logger.Info().Msg("shutting down server")
	return nil
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("forcing closing the server")
	default:
		errShutdown <- fmt.Errorf("forcing closing the server: %w", err)
	}
}
