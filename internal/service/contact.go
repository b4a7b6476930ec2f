package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"enquiry/internal/domain"
	"enquiry/internal/mail"
	"enquiry/internal/observability"
	"enquiry/internal/spam"
	"enquiry/internal/validate"
)

// EnquiryService runs one submission through validation, the honeypot
// filter, and outbound email dispatch. It holds no state between
// submissions; every collaborator is injected.
type EnquiryService struct {
	Sender   mail.Sender
	Provider string // metrics label: "smtp", "resend", ...
	From     string
	To       string
	Timeout  time.Duration
	Limiter  *rate.Limiter
	Breaker  *gobreaker.CircuitBreaker
}

func (s *EnquiryService) Submit(ctx context.Context, raw domain.Submission, enquiryID string, now time.Time) (domain.SubmitResult, error) {
	// 1) validate (authoritative; the client-side check is only an optimization)
	clean, fieldErrs := validate.Check(raw)
	if len(fieldErrs) > 0 {
		observability.ContactRequests.WithLabelValues("rejected").Inc()
		return domain.SubmitResult{EnquiryID: enquiryID, State: domain.StateRejected, FieldErrors: fieldErrs}, nil
	}

	// 2) honeypot: drop quietly, the caller still reports success
	if spam.IsHoneypot(clean.Website) {
		observability.Suppressed.WithLabelValues("honeypot").Inc()
		observability.ContactRequests.WithLabelValues("suppressed").Inc()
		return domain.SubmitResult{EnquiryID: enquiryID, State: domain.StateSuppressed}, nil
	}

	// 3) compose + dispatch, single attempt
	msg := mail.Compose(clean, enquiryID, s.From, s.To, now)

	if s.Limiter != nil {
		waitCtx, cancelWait := context.WithTimeout(ctx, 2*time.Second)
		err := s.Limiter.Wait(waitCtx)
		cancelWait()
		if err != nil {
			observability.EmailSend.WithLabelValues("rate_limited_local", s.Provider).Inc()
			return domain.SubmitResult{}, fmt.Errorf("send rate limit: %w", err)
		}
	}

	start := time.Now()
	if err := s.dispatch(ctx, msg); err != nil {
		observability.EmailSend.WithLabelValues("error", s.Provider).Inc()
		observability.ContactRequests.WithLabelValues("error").Inc()
		return domain.SubmitResult{}, err
	}
	observability.EmailSend.WithLabelValues("ok", s.Provider).Inc()
	observability.EmailSendLatency.Observe(time.Since(start).Seconds())
	observability.ContactRequests.WithLabelValues("sent").Inc()

	return domain.SubmitResult{EnquiryID: enquiryID, State: domain.StateSent}, nil
}

func (s *EnquiryService) dispatch(ctx context.Context, msg mail.Message) error {
	call := func() (any, error) {
		// The browser may abandon the connection mid-send; finish the
		// delivery anyway so the enquiry is not lost. The timeout still
		// bounds the attempt.
		sendCtx := context.WithoutCancel(ctx)
		if s.Timeout > 0 {
			var cancel context.CancelFunc
			sendCtx, cancel = context.WithTimeout(sendCtx, s.Timeout)
			defer cancel()
		}
		return nil, s.Sender.Send(sendCtx, msg)
	}

	if s.Breaker == nil {
		_, err := call()
		return err
	}
	_, err := s.Breaker.Execute(call)
	return err
}
