package contact

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"burokrat-site/domain/content"
	"burokrat-site/domain/email"
	"burokrat-site/pkg/apperrors"
	"burokrat-site/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	mu   sync.Mutex
	err  error
	sent []email.Notification
}

func (g *fakeGateway) Name() string { return "fake" }

func (g *fakeGateway) Send(_ context.Context, n email.Notification) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sent = append(g.sent, n)
	return g.err
}

type memoryStore struct {
	mu   sync.Mutex
	err  error
	rows []Submission
}

func (s *memoryStore) Insert(_ context.Context, sub *Submission) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	sub.ID = int64(len(s.rows) + 1)
	s.rows = append(s.rows, *sub)
	return sub.ID, nil
}

func newTestService(gw email.Gateway, store Store) *Service {
	svc := NewService(gw, store, logger.Nop())
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC) }
	return svc
}

func validForm() Form {
	return Form{Name: "Иван", Email: "ivan@example.com", Message: "Нужна печать"}
}

func TestSubmit_Delivered(t *testing.T) {
	gw := &fakeGateway{}
	store := &memoryStore{}
	svc := newTestService(gw, store)

	out, err := svc.Submit(context.Background(), validForm(), RulesFor(nil))
	require.NoError(t, err)

	assert.Equal(t, StateDelivered, out.State)
	assert.True(t, out.Stored)
	require.Len(t, gw.sent, 1)
	assert.Equal(t, "Нужна печать", gw.sent[0].Message)

	require.Len(t, store.rows, 1)
	row := store.rows[0]
	assert.Equal(t, int64(1), row.ID)
	assert.True(t, row.EmailSent)
	assert.False(t, row.EmailError.Valid)
	assert.Equal(t, time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC), row.CreatedAt)
}

func TestSubmit_DeliveryFailureIsStillStored(t *testing.T) {
	gw := &fakeGateway{err: errors.New("dial tcp: connection refused")}
	store := &memoryStore{}
	svc := newTestService(gw, store)

	out, err := svc.Submit(context.Background(), validForm(), RulesFor(nil))
	require.NoError(t, err)

	assert.Equal(t, StateDeliveryFailed, out.State)
	assert.True(t, apperrors.HasCode(out.Err, apperrors.ErrCodeEmailSendFailed))
	require.Len(t, store.rows, 1)
	assert.False(t, store.rows[0].EmailSent)
	assert.Equal(t, "dial tcp: connection refused", store.rows[0].EmailError.String)
}

func TestSubmit_LongDeliveryErrorIsTruncated(t *testing.T) {
	gw := &fakeGateway{err: errors.New(strings.Repeat("x", 2000))}
	store := &memoryStore{}

	_, err := newTestService(gw, store).Submit(context.Background(), validForm(), RulesFor(nil))
	require.NoError(t, err)
	require.Len(t, store.rows, 1)
	assert.LessOrEqual(t, len(store.rows[0].EmailError.String), maxEmailErrorLen)
}

func TestSubmit_StoreFailureDoesNotChangeOutcome(t *testing.T) {
	gw := &fakeGateway{}
	store := &memoryStore{err: errors.New("db down")}

	out, err := newTestService(gw, store).Submit(context.Background(), validForm(), RulesFor(nil))
	require.NoError(t, err)
	assert.Equal(t, StateDelivered, out.State)
	assert.False(t, out.Stored)
}

func TestSubmit_NoStore(t *testing.T) {
	gw := &fakeGateway{}
	out, err := newTestService(gw, nil).Submit(context.Background(), validForm(), RulesFor(nil))
	require.NoError(t, err)
	assert.Equal(t, StateDelivered, out.State)
	assert.False(t, out.Stored)
}

func TestSubmit_ValidationStopsBeforeDelivery(t *testing.T) {
	gw := &fakeGateway{}
	store := &memoryStore{}

	_, err := newTestService(gw, store).Submit(context.Background(), Form{Email: "not-an-email"}, RulesFor(nil))
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeValidationFailed, appErr.Code)
	assert.Equal(t, []apperrors.FieldError{
		{Field: "name", Message: DefaultNameError},
		{Field: "email", Message: DefaultEmailError},
		{Field: "message", Message: DefaultMessageError},
	}, appErr.Fields)
	assert.Empty(t, gw.sent)
	assert.Empty(t, store.rows)
}

func TestSubmit_RepeatedSubmissionsAppend(t *testing.T) {
	gw := &fakeGateway{}
	store := &memoryStore{}
	svc := newTestService(gw, store)

	_, err := svc.Submit(context.Background(), validForm(), RulesFor(nil))
	require.NoError(t, err)
	first := store.rows[0]

	_, err = svc.Submit(context.Background(), validForm(), RulesFor(nil))
	require.NoError(t, err)

	require.Len(t, store.rows, 2)
	assert.Equal(t, first, store.rows[0])
	assert.Equal(t, int64(2), store.rows[1].ID)
}

func TestSubmit_CommentAliasKeepsTextAsTyped(t *testing.T) {
	gw := &fakeGateway{}
	f := Form{
		Name:    " <b>Ольга</b> ",
		Email:   " olga@example.com ",
		Phone:   "+7 900 (после 18:00)",
		Company: "ООО \"Рога & Копыта\"",
		Comment: "Нужен штамп 30x<40 мм, диаметр <= 42 & срочно\n",
	}

	out, err := newTestService(gw, nil).Submit(context.Background(), f, RulesFor(nil))
	require.NoError(t, err)
	assert.Equal(t, "<b>Ольга</b>", out.Submission.Name)
	assert.Equal(t, "olga@example.com", out.Submission.Email)
	assert.Equal(t, "+7 900 (после 18:00)", out.Submission.Phone)
	assert.Equal(t, "ООО \"Рога & Копыта\"", out.Submission.Company)
	assert.Equal(t, "Нужен штамп 30x<40 мм, диаметр <= 42 & срочно", out.Submission.Message)

	require.Len(t, gw.sent, 1)
	assert.Equal(t, out.Submission.Message, gw.sent[0].Message)
}

func TestValidate_Consent(t *testing.T) {
	rec := &content.Contact{Title: "Контакты"}
	rec.Form.Consent = &content.Consent{Error: "Нужно согласие"}
	rules := RulesFor(rec)
	require.True(t, rules.ConsentRequired)

	val := NewValidator()
	sub := val.Normalize(validForm())

	err := val.Validate(sub, "", rules)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, []apperrors.FieldError{{Field: "consent", Message: "Нужно согласие"}}, appErr.Fields)

	assert.NoError(t, val.Validate(sub, "on", rules))
	assert.NoError(t, val.Validate(sub, "", RulesFor(nil)))
}

func TestValidate_EmailShape(t *testing.T) {
	val := NewValidator()
	tests := []struct {
		email string
		ok    bool
	}{
		{"a@b.ru", true},
		{"first.last@mail.example.org", true},
		{"no-at.example.com", false},
		{"two@@example.com", false},
		{"spaces in@example.com", false},
		{"nodot@example", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			sub := Submission{Name: "x", Email: tt.email, Message: "y"}
			err := val.Validate(sub, "", RulesFor(nil))
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidationFailed))
			}
		})
	}
}

func TestValidate_TooLong(t *testing.T) {
	sub := Submission{Name: strings.Repeat("я", 256), Email: "a@b.ru", Message: "y"}
	err := NewValidator().Validate(sub, "", RulesFor(nil))
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, []apperrors.FieldError{{Field: "name", Message: tooLongError}}, appErr.Fields)
}

func TestRulesFor_RecordMessages(t *testing.T) {
	rec := &content.Contact{Title: "Контакты"}
	rec.Form.Fields.Name.Error = "Как вас зовут?"
	rec.Form.Fields.Comment = &content.Field{Error: "Напишите комментарий"}

	rules := RulesFor(rec)
	assert.False(t, rules.ConsentRequired)
	assert.Equal(t, "Как вас зовут?", rules.Messages["name"])
	assert.Equal(t, DefaultEmailError, rules.Messages["email"])
	assert.Equal(t, "Напишите комментарий", rules.Messages["message"])
}
