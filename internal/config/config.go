package config

import "github.com/kelseyhightower/envconfig"

type APIConfig struct {
	Port      string `envconfig:"PORT" default:"8080"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
	StaticDir string `envconfig:"STATIC_DIR" default:"web/public"`

	// Outbound email
	MailProvider string `envconfig:"MAIL_PROVIDER" default:"smtp"` // "smtp" or "resend"
	MailFrom     string `envconfig:"MAIL_FROM" required:"true"`
	MailTo       string `envconfig:"MAIL_TO" required:"true"`
	MailTimeout  int    `envconfig:"MAIL_TIMEOUT_SECONDS" default:"8"`

	// SMTP relay
	SMTPHost     string `envconfig:"SMTP_HOST"`
	SMTPPort     string `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser     string `envconfig:"SMTP_USER"`
	SMTPPass     string `envconfig:"SMTP_PASS"`
	SMTPStartTLS bool   `envconfig:"SMTP_STARTTLS" default:"true"`

	// Resend-style HTTP API
	ResendAPIKey  string `envconfig:"RESEND_API_KEY"`
	ResendBaseURL string `envconfig:"RESEND_BASE_URL" default:"https://api.resend.com"`

	// Outbound send protection
	SendRPS   float64 `envconfig:"SEND_RPS" default:"2"`
	SendBurst int     `envconfig:"SEND_BURST" default:"5"`
}

type MockConfig struct {
	Port      string `envconfig:"PORT" default:"8081"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	// Outcome injection: "ok", "error", "timeout"
	OutcomeMode    string `envconfig:"MOCK_OUTCOME_MODE" default:"ok"`
	DelayMs        int    `envconfig:"MOCK_DELAY_MS" default:"0"`
	TimeoutDelayMs int    `envconfig:"MOCK_TIMEOUT_DELAY_MS" default:"12000"`
}

func LoadAPI() APIConfig {
	var cfg APIConfig
	if err := envconfig.Process("", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

func LoadMock() MockConfig {
	var cfg MockConfig
	if err := envconfig.Process("", &cfg); err != nil {
		panic(err)
	}
	return cfg
}
