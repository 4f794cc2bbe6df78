package email

import (
	"context"
	"fmt"
	"time"

	"burokrat-site/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESAPI is the slice of the SES client the gateway calls.
type SESAPI interface {
	SendRawEmail(ctx context.Context, in *ses.SendRawEmailInput, optFns ...func(*ses.Options)) (*ses.SendRawEmailOutput, error)
}

// SES delivers the composed MIME message through Amazon SES.
type SES struct {
	client  SESAPI
	from    Address
	to      string
	timeout time.Duration
}

func NewSES(ctx context.Context, cfg config.Mail, from Address, timeout time.Duration) (*SES, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.AWSRegion)}
	if cfg.AWSAccessKey != "" && cfg.AWSSecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKey, cfg.AWSSecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewSESWithClient(ses.NewFromConfig(awsCfg), from, cfg.ToEmail, timeout), nil
}

func NewSESWithClient(client SESAPI, from Address, to string, timeout time.Duration) *SES {
	return &SES{client: client, from: from, to: to, timeout: timeout}
}

func (s *SES) Name() string { return "ses" }

func (s *SES) Send(ctx context.Context, n Notification) error {
	raw, err := Compose(n, s.from, s.to)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err = s.client.SendRawEmail(ctx, &ses.SendRawEmailInput{
		Source:       aws.String(s.from.Email),
		Destinations: []string{s.to},
		RawMessage:   &types.RawMessage{Data: raw},
	})
	if err != nil {
		return fmt.Errorf("ses send raw email: %w", err)
	}
	return nil
}
