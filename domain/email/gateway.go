package email

import (
	"context"
	"errors"
	"time"

	"burokrat-site/config"
	"burokrat-site/pkg/logger"
)

// Gateway delivers a notification to the site owner.
type Gateway interface {
	Name() string
	Send(ctx context.Context, n Notification) error
}

// ErrNotConfigured is what an unconfigured gateway returns on every send.
var ErrNotConfigured = errors.New("Email service not configured. Please set SMTP_USERNAME, SMTP_PASSWORD, and SMTP_TO_EMAIL environment variables.")

// NewGateway picks the transport named by MAIL_PROVIDER. Missing settings
// yield a gateway that fails each send instead of failing startup.
func NewGateway(ctx context.Context, cfg config.Mail, log logger.Logger) Gateway {
	log = log.WithComponent("mail")
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	from := Address{Name: cfg.FromName, Email: cfg.FromEmail}

	switch cfg.Provider {
	case "ses":
		if cfg.AWSRegion == "" || cfg.ToEmail == "" || cfg.FromEmail == "" {
			log.Warn("SES provider selected but AWS_REGION, SMTP_FROM_EMAIL or SMTP_TO_EMAIL is missing")
			return Unconfigured{}
		}
		gw, err := NewSES(ctx, cfg, from, timeout)
		if err != nil {
			log.Error("Failed to initialise SES gateway", err)
			return Unconfigured{}
		}
		log.Info("Mail gateway ready", logger.Provider(gw.Name()))
		return gw
	case "resend":
		if cfg.ResendAPIKey == "" || cfg.ToEmail == "" || cfg.FromEmail == "" {
			log.Warn("Resend provider selected but RESEND_API, SMTP_FROM_EMAIL or SMTP_TO_EMAIL is missing")
			return Unconfigured{}
		}
		gw := NewResend(cfg.ResendAPIKey, from, cfg.ToEmail, timeout)
		log.Info("Mail gateway ready", logger.Provider(gw.Name()))
		return gw
	default:
		if !cfg.SMTPConfigured() {
			if cfg.Username == "" {
				log.Warn("SMTP_USERNAME not found in environment variables")
			}
			if cfg.Password == "" {
				log.Warn("SMTP_PASSWORD not found in environment variables")
			}
			if cfg.ToEmail == "" {
				log.Warn("SMTP_TO_EMAIL not found in environment variables")
			}
			return Unconfigured{}
		}
		gw := NewSMTP(cfg, from, timeout)
		log.Info("Mail gateway ready", logger.Provider(gw.Name()),
			logger.String("host", cfg.Host), logger.Int("port", cfg.Port))
		return gw
	}
}

// Unconfigured fails every send with ErrNotConfigured.
type Unconfigured struct{}

func (Unconfigured) Name() string { return "unconfigured" }

func (Unconfigured) Send(context.Context, Notification) error {
	return ErrNotConfigured
}
