// Package i18n holds the localized strings the site renders. The mapping is
// a static lookup table; unknown languages and missing keys fall back to the
// default language.
package i18n

const DefaultLang = "en"

var dictionaries = map[string]map[string]string{
	"en": {
		"contact_title":          "Ready To Talk",
		"contact_cta":            "GET STARTED",
		"contact_label_name":     "Name",
		"contact_label_email":    "Email",
		"contact_label_phone":    "Phone Number",
		"contact_label_message":  "Message",
		"contact_status_sent":    "Thanks! We received your message.",
		"contact_status_error":   "Something went wrong. Please try again.",
		"footer_contact_heading": "Have a question?",
		"footer_contact_call":    "Call Us",
		"footer_contact_email":   "Email",
		"nav_contact":            "Contact Us",
	},
	"hr": {
		"contact_title":         "Spremni za poziv",
		"contact_cta":           "KRENIMO",
		"contact_label_name":    "Ime",
		"contact_label_email":   "E-pošta",
		"contact_label_phone":   "Broj telefona",
		"contact_label_message": "Poruka",
		"contact_status_sent":   "Hvala! Primili smo vašu poruku.",
		"contact_status_error":  "Nešto je pošlo po zlu. Pokušajte ponovno.",
		"nav_contact":           "Kontakt",
	},
}

// Lookup returns the string for key in lang, falling back to the default
// language, then to the key itself so the page never renders blanks.
func Lookup(lang, key string) string {
	if d, ok := dictionaries[lang]; ok {
		if v, ok := d[key]; ok {
			return v
		}
	}
	if v, ok := dictionaries[DefaultLang][key]; ok {
		return v
	}
	return key
}

// Dict returns the full dictionary for lang merged over the default
// language, so partially translated languages still cover every key.
func Dict(lang string) map[string]string {
	base := dictionaries[DefaultLang]
	out := make(map[string]string, len(base))
	for k, v := range base {
		out[k] = v
	}
	if lang == DefaultLang {
		return out
	}
	for k, v := range dictionaries[lang] {
		out[k] = v
	}
	return out
}

// Supported reports whether lang has its own dictionary.
func Supported(lang string) bool {
	_, ok := dictionaries[lang]
	return ok
}
