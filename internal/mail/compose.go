package mail

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"enquiry/internal/domain"
)

var (
	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#039;",
	)
	spaceRun = regexp.MustCompile(`\s+`)
)

func escapeHTML(s string) string { return htmlEscaper.Replace(s) }

// oneLine collapses whitespace runs to single spaces and trims the result.
func oneLine(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

// headerSafe replaces control characters (CR/LF included) with spaces and
// collapses the result, so free-text field values cannot inject additional
// headers when used in a subject line.
func headerSafe(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, s)
	return oneLine(s)
}

// Compose projects an accepted submission into the notification email.
// Values in the HTML body are escaped; the plain-text body carries the raw
// message. The reply-to is the submitter's address so a human can answer
// directly.
func Compose(sub domain.Submission, enquiryID, from, to string, now time.Time) Message {
	stamp := now.UTC().Format(time.RFC3339)

	text := "New website enquiry\n\n" +
		"Name: " + oneLine(sub.Name) + "\n" +
		"Email: " + oneLine(sub.Email) + "\n" +
		"Phone: " + oneLine(sub.Phone) + "\n" +
		"Date: " + stamp + "\n" +
		"Ref: " + enquiryID + "\n\n" +
		"Message:\n" + sub.Message + "\n"

	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif;">` + "\n")
	b.WriteString("<h2>New website enquiry</h2>\n")
	b.WriteString(`<table cellpadding="6" cellspacing="0" style="border-collapse: collapse;">` + "\n")
	writeRow(&b, "Name", sub.Name)
	writeRow(&b, "Email", sub.Email)
	writeRow(&b, "Phone", sub.Phone)
	writeRow(&b, "Date", stamp)
	writeRow(&b, "Ref", enquiryID)
	b.WriteString("</table>\n<h3>Message</h3>\n")
	fmt.Fprintf(&b, `<div style="border: 1px solid #ddd; padding: 10px; white-space: pre-wrap;">%s</div>`, escapeHTML(sub.Message))
	b.WriteString("\n</div>")

	return Message{
		From:    from,
		To:      to,
		ReplyTo: sub.Email,
		Subject: "New enquiry: " + headerSafe(sub.Name),
		Text:    text,
		HTML:    b.String(),
	}
}

func writeRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b,
		`<tr><td style="border: 1px solid #ddd;"><strong>%s</strong></td><td style="border: 1px solid #ddd;">%s</td></tr>`+"\n",
		label, escapeHTML(value))
}
