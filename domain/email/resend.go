package email

import (
	"context"
	"fmt"
	"net/http"
	"net/mail"
	"time"

	"github.com/resend/resend-go/v2"
)

// ResendAPI is the part of the Resend client the gateway calls.
type ResendAPI interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Resend delivers through the Resend HTTP API.
type Resend struct {
	emails ResendAPI
	from   Address
	to     string
}

func NewResend(apiKey string, from Address, to string, timeout time.Duration) *Resend {
	client := resend.NewCustomClient(&http.Client{Timeout: timeout}, apiKey)
	return NewResendWithClient(client.Emails, from, to)
}

func NewResendWithClient(emails ResendAPI, from Address, to string) *Resend {
	return &Resend{emails: emails, from: from, to: to}
}

func (r *Resend) Name() string { return "resend" }

func (r *Resend) Send(ctx context.Context, n Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	html, err := n.HTMLBody()
	if err != nil {
		return err
	}

	from := (&mail.Address{Name: r.from.Name, Address: r.from.Email}).String()
	replyTo := (&mail.Address{Name: n.Name, Address: n.Email}).String()

	if _, err := r.emails.Send(&resend.SendEmailRequest{
		From:    from,
		To:      []string{r.to},
		Subject: n.EmailSubject(),
		Html:    html,
		Text:    n.TextBody(),
		ReplyTo: replyTo,
	}); err != nil {
		return fmt.Errorf("resend send: %w", err)
	}
	return nil
}
