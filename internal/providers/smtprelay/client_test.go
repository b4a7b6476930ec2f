package smtprelay

import (
	"strings"
	"testing"
	"time"

	"enquiry/internal/mail"
)

func TestRenderMultipartAlternative(t *testing.T) {
	msg := mail.Message{
		From:    "site@example.com",
		To:      "owner@example.com",
		ReplyTo: "jo@x.com",
		Subject: "New enquiry: Jo Smith",
		Text:    "plain body",
		HTML:    "<p>html body</p>",
	}
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	raw, err := render(msg, now)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := string(raw)

	for _, want := range []string{
		"From: site@example.com\r\n",
		"To: owner@example.com\r\n",
		"Reply-To: jo@x.com\r\n",
		"Subject: New enquiry: Jo Smith\r\n",
		"MIME-Version: 1.0\r\n",
		"Content-Type: multipart/alternative; boundary=",
		"Content-Type: text/plain; charset=UTF-8",
		"Content-Type: text/html; charset=UTF-8",
		"plain body",
		"<p>html body</p>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered message missing %q:\n%s", want, out)
		}
	}

	// text part must come before html so clients prefer the richer last part
	if strings.Index(out, "plain body") > strings.Index(out, "<p>html body</p>") {
		t.Fatalf("text part must precede html part")
	}
}

func TestRenderOmitsEmptyReplyTo(t *testing.T) {
	raw, err := render(mail.Message{From: "a@b.c", To: "d@e.f", Subject: "s"}, time.Now())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(raw), "Reply-To:") {
		t.Fatalf("unexpected Reply-To header")
	}
}
