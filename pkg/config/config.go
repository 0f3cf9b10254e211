package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	SheetsProviderWebhook  = "webhook"
	SheetsProviderAirtable = "airtable"
)

// Config holds all application configuration values
type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	Environment   string `env:"ENVIRONMENT" envDefault:"development"`
	ServerMode    string `env:"SERVER_MODE" envDefault:"debug"` // debug, release, test
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"*"`

	LoggerLevel  string `env:"LOGGER_LEVEL" envDefault:"INFO"`
	LoggerFormat string `env:"LOGGER_FORMAT" envDefault:"text"` // text, json

	Email  EmailConfig
	Sheets SheetsConfig
	UI     UIConfig
}

// EmailConfig identifies the EmailJS service, template and public key used to relay form messages
type EmailConfig struct {
	ServiceID  string `env:"EMAILJS_SERVICE_ID"`
	TemplateID string `env:"EMAILJS_TEMPLATE_ID"`
	PublicKey  string `env:"EMAILJS_PUBLIC_KEY"`
	BaseURL    string `env:"EMAILJS_BASE_URL" envDefault:"https://api.emailjs.com"`
	Recipient  string `env:"CONTACT_RECIPIENT" envDefault:"support@nexacrm.com"`
}

// SheetsConfig controls the spreadsheet web-hook that records waitlist signups
type SheetsConfig struct {
	Enabled        bool   `env:"SHEETS_ENABLED" envDefault:"false"`
	WebAppURL      string `env:"SHEETS_WEB_APP_URL"`
	PlaceholderURL string `env:"SHEETS_PLACEHOLDER_URL" envDefault:"YOUR_GOOGLE_APPS_SCRIPT_URL"`
	Provider       string `env:"SHEETS_PROVIDER" envDefault:"webhook"` // webhook, airtable

	AirtableAPIKey string `env:"AIRTABLE_API_KEY"`
	AirtableBaseID string `env:"AIRTABLE_BASE_ID"`
	AirtableTable  string `env:"AIRTABLE_TABLE" envDefault:"Waitlist"`
}

// UIConfig holds values rendered into the page and its scripts
type UIConfig struct {
	SupportEmail       string        `env:"SUPPORT_EMAIL" envDefault:"support@nexacrm.com"`
	ModalCloseDelay    time.Duration `env:"MODAL_CLOSE_DELAY" envDefault:"3s"`
	NavScrollThreshold int           `env:"NAV_SCROLL_THRESHOLD" envDefault:"20"`
	RevealThreshold    float64       `env:"REVEAL_THRESHOLD" envDefault:"0.1"`
}

// Active reports whether waitlist rows should be sent to the spreadsheet.
// An empty URL or one still equal to the placeholder counts as unconfigured.
func (s SheetsConfig) Active() bool {
	if !s.Enabled {
		return false
	}
	if s.Provider == SheetsProviderAirtable {
		return s.AirtableAPIKey != "" && s.AirtableBaseID != ""
	}
	url := strings.TrimSpace(s.WebAppURL)
	return url != "" && url != s.PlaceholderURL
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

// Validate checks values env parsing cannot express
func (c *Config) Validate() error {
	if c.UI.NavScrollThreshold < 0 {
		return fmt.Errorf("NAV_SCROLL_THRESHOLD must not be negative, got %d", c.UI.NavScrollThreshold)
	}
	if c.UI.RevealThreshold < 0 || c.UI.RevealThreshold > 1 {
		return fmt.Errorf("REVEAL_THRESHOLD must be within [0,1], got %v", c.UI.RevealThreshold)
	}
	if c.UI.ModalCloseDelay < 0 {
		return fmt.Errorf("MODAL_CLOSE_DELAY must not be negative, got %s", c.UI.ModalCloseDelay)
	}
	switch c.ServerMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown SERVER_MODE %q", c.ServerMode)
	}
	switch c.Sheets.Provider {
	case SheetsProviderWebhook, SheetsProviderAirtable:
	default:
		return fmt.Errorf("unknown SHEETS_PROVIDER %q", c.Sheets.Provider)
	}
	return nil
}

// Load reads configuration from an optional .env file and the environment
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("WARN: cannot load .env file: %v, using environment variables", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
