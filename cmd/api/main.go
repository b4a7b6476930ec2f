package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"enquiry/internal/config"
	"enquiry/internal/httpserver"
	"enquiry/internal/logging"
	"enquiry/internal/mail"
	"enquiry/internal/observability"
	"enquiry/internal/providers/resendapi"
	"enquiry/internal/providers/smtprelay"
	"enquiry/internal/service"
	"enquiry/internal/util"
)

func main() {
	cfg := config.LoadAPI()
	logging.Init("api", cfg.LogFormat)

	observability.Register(prometheus.DefaultRegisterer)

	mailTimeout := time.Duration(cfg.MailTimeout) * time.Second

	var sender mail.Sender
	provider := strings.ToLower(cfg.MailProvider)
	switch provider {
	case "resend":
		sender = &resendapi.Client{
			APIKey:  cfg.ResendAPIKey,
			BaseURL: cfg.ResendBaseURL,
			HTTP:    &http.Client{Timeout: mailTimeout},
		}
	case "smtp":
		sender = &smtprelay.Client{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Pass:     cfg.SMTPPass,
			StartTLS: cfg.SMTPStartTLS,
		}
	default:
		slog.Error("unknown mail provider", "provider", cfg.MailProvider)
		os.Exit(1)
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.SendRPS), cfg.SendBurst)
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        provider,
		MaxRequests: 3,
		Timeout:     20 * time.Second,
		ReadyToTrip: func(c gobreaker.Counts) bool { return c.ConsecutiveFailures >= 10 },
	})

	svc := &service.EnquiryService{
		Sender:   sender,
		Provider: provider,
		From:     cfg.MailFrom,
		To:       cfg.MailTo,
		Timeout:  mailTimeout,
		Limiter:  limiter,
		Breaker:  cb,
	}

	s := httpserver.New()
	api := &httpserver.API{
		Svc:   svc,
		IDGen: util.NewEnquiryID,
	}
	api.Register(s.Mux)

	s.Mux.HandleFunc("/healthz", httpserver.Healthz())
	s.Mux.HandleFunc("/readyz", httpserver.Readyz(2*time.Second, func(ctx context.Context) error {
		// the site is unservable if the static root is missing
		_, err := os.Stat(cfg.StaticDir)
		return err
	}))

	// Static site; must be registered last so API routes win.
	s.Mux.PathPrefix("/").Handler(httpserver.Static(cfg.StaticDir))

	handler := httpserver.Logging(httpserver.Metrics(observability.HTTPRequests)(s.Mux))
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		slog.Info("api shutdown", "signal", sig.String())
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("api listening", "port", cfg.Port, "provider", provider)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("api server failed", "err", err)
		os.Exit(1)
	}
}
