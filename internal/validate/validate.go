// Package validate holds the single rule table both checkers run on: the
// server evaluates it directly, the browser controller fetches it as JSON
// and applies the same boundaries before posting.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"enquiry/internal/domain"
)

type Rule struct {
	Field     string `json:"field"`
	Min       int    `json:"min"`
	Max       int    `json:"max"`
	Pattern   string `json:"pattern,omitempty"`
	TooShort  string `json:"tooShort"`
	TooLong   string `json:"tooLong"`
	BadFormat string `json:"badFormat,omitempty"`
}

// Permissive syntactic check, not RFC 5322. Must stay in ECMAScript-compatible
// syntax because the client compiles the same pattern.
const emailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

// Rules is evaluated in order; the order fixes error ordering only, every
// field is always checked.
var Rules = []Rule{
	{Field: "name", Min: 2, Max: 100,
		TooShort: "Please enter your name.",
		TooLong:  "Name must be at most 100 characters."},
	{Field: "email", Min: 1, Max: 200, Pattern: emailPattern,
		TooShort:  "Please enter your email.",
		TooLong:   "Email must be at most 200 characters.",
		BadFormat: "Please enter a valid email."},
	{Field: "phone", Min: 6, Max: 30,
		TooShort: "Please enter a valid phone number.",
		TooLong:  "Phone number is too long."},
	{Field: "message", Min: 5, Max: 4000,
		TooShort: "Please enter a message.",
		TooLong:  "Message is too long."},
}

var patterns = map[string]*regexp.Regexp{}

func init() {
	for _, r := range Rules {
		if r.Pattern != "" {
			patterns[r.Field] = regexp.MustCompile(r.Pattern)
		}
	}
}

// Check trims every field and evaluates the rule table. It returns the
// cleaned submission and one error per failing field; an empty slice means
// the submission is fully valid. Fields are checked independently so the
// caller can report multiple errors at once.
func Check(raw domain.Submission) (domain.Submission, []domain.FieldError) {
	clean := domain.Submission{
		Name:    strings.TrimSpace(raw.Name),
		Email:   strings.TrimSpace(raw.Email),
		Phone:   strings.TrimSpace(raw.Phone),
		Message: strings.TrimSpace(raw.Message),
		Website: strings.TrimSpace(raw.Website),
	}

	var errs []domain.FieldError
	for _, r := range Rules {
		v := fieldValue(clean, r.Field)
		// Limits count characters, not bytes; the browser's .length check
		// must land on the same boundary for non-ASCII input.
		n := utf8.RuneCountInString(v)
		switch {
		case n < r.Min:
			errs = append(errs, domain.FieldError{Field: r.Field, Message: r.TooShort})
		case n > r.Max:
			errs = append(errs, domain.FieldError{Field: r.Field, Message: r.TooLong})
		case r.Pattern != "" && !patterns[r.Field].MatchString(v):
			errs = append(errs, domain.FieldError{Field: r.Field, Message: r.BadFormat})
		}
	}
	return clean, errs
}

func fieldValue(s domain.Submission, field string) string {
	switch field {
	case "name":
		return s.Name
	case "email":
		return s.Email
	case "phone":
		return s.Phone
	case "message":
		return s.Message
	}
	return ""
}
