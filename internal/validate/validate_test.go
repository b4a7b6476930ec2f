package validate

import (
	"strings"
	"testing"

	"enquiry/internal/domain"
)

func valid() domain.Submission {
	return domain.Submission{
		Name:    "Jo Smith",
		Email:   "jo@x.com",
		Phone:   "0912345678",
		Message: "Interested in pool service.",
	}
}

func TestCheckAcceptsAndTrims(t *testing.T) {
	sub := valid()
	sub.Name = "  Jo Smith\n"
	sub.Phone = " 0912345678 "

	clean, errs := Check(sub)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if clean.Name != "Jo Smith" {
		t.Fatalf("expected trimmed name, got %q", clean.Name)
	}
	if clean.Phone != "0912345678" {
		t.Fatalf("expected trimmed phone, got %q", clean.Phone)
	}
}

func TestCheckBoundaries(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.Submission)
		field  string // "" means accepted
	}{
		{"name at min", func(s *domain.Submission) { s.Name = "Jo" }, ""},
		{"name below min", func(s *domain.Submission) { s.Name = "J" }, "name"},
		{"name at max", func(s *domain.Submission) { s.Name = strings.Repeat("a", 100) }, ""},
		{"name above max", func(s *domain.Submission) { s.Name = strings.Repeat("a", 101) }, "name"},
		{"name trimmed below min", func(s *domain.Submission) { s.Name = " J " }, "name"},
		{"name multi-byte at max", func(s *domain.Submission) { s.Name = strings.Repeat("ž", 100) }, ""},
		{"name multi-byte above max", func(s *domain.Submission) { s.Name = strings.Repeat("ž", 101) }, "name"},
		{"email empty", func(s *domain.Submission) { s.Email = "" }, "email"},
		{"email missing at", func(s *domain.Submission) { s.Email = "jo.x.com" }, "email"},
		{"email missing dot", func(s *domain.Submission) { s.Email = "jo@xcom" }, "email"},
		{"email with space", func(s *domain.Submission) { s.Email = "jo n@x.com" }, "email"},
		{"email above max", func(s *domain.Submission) { s.Email = strings.Repeat("a", 195) + "@x.com" }, "email"},
		{"phone at min", func(s *domain.Submission) { s.Phone = "123456" }, ""},
		{"phone below min", func(s *domain.Submission) { s.Phone = "12345" }, "phone"},
		{"phone at max", func(s *domain.Submission) { s.Phone = strings.Repeat("1", 30) }, ""},
		{"phone above max", func(s *domain.Submission) { s.Phone = strings.Repeat("1", 31) }, "phone"},
		{"message at min", func(s *domain.Submission) { s.Message = "Hey!!" }, ""},
		{"message below min", func(s *domain.Submission) { s.Message = "Hi!" }, "message"},
		{"message at max", func(s *domain.Submission) { s.Message = strings.Repeat("m", 4000) }, ""},
		{"message above max", func(s *domain.Submission) { s.Message = strings.Repeat("m", 4001) }, "message"},
		{"message multi-byte below min", func(s *domain.Submission) { s.Message = "žžžž" }, "message"},
		{"message multi-byte at min", func(s *domain.Submission) { s.Message = "žžžžž" }, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub := valid()
			tc.mutate(&sub)
			_, errs := Check(sub)
			if tc.field == "" {
				if len(errs) != 0 {
					t.Fatalf("expected accepted, got %v", errs)
				}
				return
			}
			if len(errs) != 1 {
				t.Fatalf("expected one error, got %v", errs)
			}
			if errs[0].Field != tc.field {
				t.Fatalf("expected error on %q, got %q", tc.field, errs[0].Field)
			}
			if errs[0].Message == "" {
				t.Fatalf("expected non-empty message")
			}
		})
	}
}

func TestCheckCountsCharactersNotBytes(t *testing.T) {
	sub := valid()
	sub.Name = strings.Repeat("ž", 55) // 110 bytes, 55 characters
	if _, errs := Check(sub); len(errs) != 0 {
		t.Fatalf("diacritic name within limit rejected: %v", errs)
	}

	sub = valid()
	sub.Message = "žžžž" // 8 bytes, 4 characters
	_, errs := Check(sub)
	if len(errs) != 1 || errs[0].Field != "message" {
		t.Fatalf("expected short multi-byte message rejected, got %v", errs)
	}
}

func TestCheckReportsAllFailuresInOrder(t *testing.T) {
	_, errs := Check(domain.Submission{Name: "J", Email: "nope", Phone: "123", Message: "hi"})
	if len(errs) != 4 {
		t.Fatalf("expected 4 errors, got %d: %v", len(errs), errs)
	}
	want := []string{"name", "email", "phone", "message"}
	for i, fld := range want {
		if errs[i].Field != fld {
			t.Fatalf("error %d: expected field %q, got %q", i, fld, errs[i].Field)
		}
	}
}

func TestCheckDoesNotValidateHoneypot(t *testing.T) {
	sub := valid()
	sub.Website = "  http://spam.example  "
	clean, errs := Check(sub)
	if len(errs) != 0 {
		t.Fatalf("honeypot must not fail validation, got %v", errs)
	}
	if clean.Website != "http://spam.example" {
		t.Fatalf("expected trimmed website, got %q", clean.Website)
	}
}
