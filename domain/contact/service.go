package contact

import (
	"context"
	"database/sql"
	"time"

	"burokrat-site/domain/email"
	"burokrat-site/pkg/apperrors"
	"burokrat-site/pkg/logger"
	"burokrat-site/utils"
)

// Store is where submissions are recorded.
type Store interface {
	Insert(ctx context.Context, s *Submission) (int64, error)
}

// Service relays a submission to the gateway and records the attempt.
type Service struct {
	gateway  email.Gateway
	store    Store
	validate *Validator
	log      logger.Logger
	now      func() time.Time
}

// NewService builds the submission handler. store may be nil when no database
// is configured; submissions are then delivered but not recorded.
func NewService(gateway email.Gateway, store Store, log logger.Logger) *Service {
	return &Service{
		gateway:  gateway,
		store:    store,
		validate: NewValidator(),
		log:      log,
		now:      time.Now,
	}
}

// Submit validates f, attempts delivery and records the outcome. Validation
// failures come back as an error; delivery and storage failures never do.
func (s *Service) Submit(ctx context.Context, f Form, rules Rules) (*Outcome, error) {
	sub := s.validate.Normalize(f)
	if err := s.validate.Validate(sub, f.Consent, rules); err != nil {
		return nil, err
	}
	sub.CreatedAt = s.now().UTC()

	out := &Outcome{Submission: sub, State: StateReceived}
	log := logger.FromContextOr(ctx, s.log).WithComponent("contact").WithFields(logger.Provider(s.gateway.Name()))

	err := s.gateway.Send(ctx, email.Notification{
		Name:    sub.Name,
		Email:   sub.Email,
		Phone:   sub.Phone,
		Subject: sub.Subject,
		Message: sub.Message,
		Company: sub.Company,
	})
	if err != nil {
		out.State = StateDeliveryFailed
		out.Err = apperrors.NewDelivery(s.gateway.Name(), err)
		out.Submission.EmailError = sql.NullString{String: utils.Truncate(err.Error(), maxEmailErrorLen), Valid: true}
		log.Error("Failed to deliver contact submission", err)
	} else {
		out.State = StateDelivered
		out.Submission.EmailSent = true
		log.Info("Contact submission delivered")
	}

	if s.store == nil {
		log.Debug("No submission store configured, skipping persistence")
		return out, nil
	}

	// Persistence is best-effort and must not change what the visitor sees.
	id, err := s.store.Insert(context.WithoutCancel(ctx), &out.Submission)
	if err != nil {
		log.Error("Failed to save contact submission", err, logger.Email(sub.Email))
		return out, nil
	}
	out.Stored = true
	log.Info("Contact submission saved", logger.SubmissionID(id), logger.Bool("email_sent", out.Submission.EmailSent))
	return out, nil
}
