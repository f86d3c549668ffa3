package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// SMTPConfig holds the mail relay settings. When Host is empty the app
// falls back to logging simulated emails instead of sending real ones.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
}

// LoadSMTP reads SMTP settings from the environment.
func LoadSMTP() SMTPConfig {
	cfg := SMTPConfig{
		Host: os.Getenv("SMTP_HOST"),
		User: os.Getenv("SMTP_USER"),
		Pass: os.Getenv("SMTP_PASS"),
		Port: 2525,
	}
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			log.Printf("Invalid SMTP_PORT %q, using default %d", portStr, cfg.Port)
		} else {
			cfg.Port = port
		}
	}
	return cfg
}

// Port returns the HTTP listen port.
func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}

// PaymentDelay returns the artificial payment gateway round-trip delay.
// The demo gateway always succeeds after this pause.
func PaymentDelay() time.Duration {
	if ms := os.Getenv("PAYMENT_DELAY_MS"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v >= 0 {
			return time.Duration(v) * time.Millisecond
		}
		log.Printf("Invalid PAYMENT_DELAY_MS %q, using default", ms)
	}
	return 1500 * time.Millisecond
}
