package mailer

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Sender delivers transactional email. Satisfied by Mailer; usecases depend
// on this interface so tests can substitute a fake.
type Sender interface {
	SendHTML(to []string, subject, htmlBody string) error
	SendOTP(to, code string, expiresIn time.Duration) error
}

// Mailer sends email over SMTP.
type Mailer struct {
	config *mailerConfig
	dialer *gomail.Dialer
}

// NewMailer creates a Mailer from SMTP_* environment variables.
func NewMailer(logger *zerolog.Logger) *Mailer {
	cfg := newMailerConfig(logger)

	if err := cfg.validate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to validate Mailer configuration")
	}

	dialer := gomail.NewDialer(
		cfg.Host,
		cfg.Port,
		cfg.Username,
		cfg.Password,
	)

	return &Mailer{
		config: cfg,
		dialer: dialer,
	}
}

// SendHTML sends an HTML email.
func (m *Mailer) SendHTML(to []string, subject, htmlBody string) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}

// SendOTP sends an email verification code. The plaintext code only ever
// leaves the process through this message.
func (m *Mailer) SendOTP(to, code string, expiresIn time.Duration) error {
	htmlBody := fmt.Sprintf(`
		<p>Hi,</p>
		<p>Use the following code to verify your email address:</p>

		<h2>%s</h2>

		<p>This code will expire in %s.</p>
		<p>If you did not request a verification code, you can safely ignore this email.</p>

		<p>Thank you,</p>
		<p>The Job Board Team</p>
	`, code, expiresIn)

	return m.SendHTML([]string{to}, "Verify your email address", htmlBody)
}

// mailerConfig holds SMTP configuration for sending emails.
type mailerConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

// newMailerConfig creates a mailerConfig instance from environment variables.
func newMailerConfig(logger *zerolog.Logger) *mailerConfig {
	cfg, err := env.ParseAs[mailerConfig]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	return &cfg
}

// validate checks if the Mailer configuration is valid.
func (c *mailerConfig) validate() error {
	if c.Host == "" {
		return fmt.Errorf("missing SMTP_HOST environment variable")
	}
	if c.Port == 0 {
		return fmt.Errorf("missing SMTP_PORT environment variable")
	}
	if c.Username == "" {
		return fmt.Errorf("missing SMTP_USERNAME environment variable")
	}
	if c.Password == "" {
		return fmt.Errorf("missing SMTP_PASSWORD environment variable")
	}
	if c.From == "" {
		return fmt.Errorf("missing SMTP_FROM environment variable")
	}

	return nil
}
