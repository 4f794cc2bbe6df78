package email

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"burokrat-site/config"
)

// SMTP delivers through an authenticated SMTP relay. UseTLS selects STARTTLS
// on a plain connection; otherwise the connection is TLS from the first byte.
type SMTP struct {
	host     string
	port     int
	username string
	password string
	useTLS   bool
	from     Address
	to       string
	timeout  time.Duration
	rootCAs  *x509.CertPool // nil means the system pool
}

func NewSMTP(cfg config.Mail, from Address, timeout time.Duration) *SMTP {
	return &SMTP{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		useTLS:   cfg.UseTLS,
		from:     from,
		to:       cfg.ToEmail,
		timeout:  timeout,
	}
}

func (s *SMTP) Name() string { return "smtp" }

func (s *SMTP) Send(ctx context.Context, n Notification) error {
	raw, err := Compose(n, s.from, s.to)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	conn, err := s.dial(ctx)
	if err != nil {
		return fmt.Errorf("connect to %s:%d: %w", s.host, s.port, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer c.Close()

	if s.useTLS {
		if err := c.StartTLS(s.tlsConfig()); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}
	if err := c.Auth(smtp.PlainAuth("", s.username, s.password, s.host)); err != nil {
		return fmt.Errorf("SMTP authentication failed. Check your username and password: %w", err)
	}
	if err := c.Mail(s.from.Email); err != nil {
		return fmt.Errorf("SMTP error occurred: %w", err)
	}
	if err := c.Rcpt(s.to); err != nil {
		return fmt.Errorf("SMTP error occurred: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("SMTP error occurred: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("SMTP error occurred: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("SMTP error occurred: %w", err)
	}
	return c.Quit()
}

func (s *SMTP) dial(ctx context.Context) (net.Conn, error) {
	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	if s.useTLS {
		d := &net.Dialer{}
		return d.DialContext(ctx, "tcp", addr)
	}
	d := &tls.Dialer{Config: s.tlsConfig()}
	return d.DialContext(ctx, "tcp", addr)
}

func (s *SMTP) tlsConfig() *tls.Config {
	return &tls.Config{ServerName: s.host, RootCAs: s.rootCAs}
}
