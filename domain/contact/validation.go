package contact

import (
	"reflect"
	"regexp"
	"strings"

	"burokrat-site/domain/content"
	"burokrat-site/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Default field messages, used when the contact record carries none.
const (
	DefaultNameError    = "Пожалуйста, введите ваше имя"
	DefaultEmailError   = "Пожалуйста, введите корректный email"
	DefaultMessageError = "Пожалуйста, введите сообщение"
	DefaultConsentError = "Вы должны согласиться с условиями"

	tooLongError = "Слишком длинное значение"
)

// Rules is the per-form configuration the checks depend on.
type Rules struct {
	ConsentRequired bool
	Messages        map[string]string
}

// RulesFor derives the rules from the contact record.
func RulesFor(rec *content.Contact) Rules {
	r := Rules{Messages: map[string]string{
		"name":    DefaultNameError,
		"email":   DefaultEmailError,
		"message": DefaultMessageError,
		"consent": DefaultConsentError,
	}}
	if rec == nil {
		return r
	}

	fields := rec.Form.Fields
	set := func(key, msg string) {
		if msg != "" {
			r.Messages[key] = msg
		}
	}
	set("name", fields.Name.Error)
	set("email", fields.Email.Error)
	set("message", fields.MessageField().Error)
	if rec.Form.Consent != nil {
		r.ConsentRequired = true
		set("consent", rec.Form.Consent.Error)
	}
	return r
}

type input struct {
	Name            string `form:"name" validate:"required,max=255"`
	Email           string `form:"email" validate:"required,basic_email,max=255"`
	Phone           string `form:"phone" validate:"max=50"`
	Subject         string `form:"subject" validate:"max=255"`
	Message         string `form:"message" validate:"required"`
	Company         string `form:"company" validate:"max=255"`
	ConsentRequired bool
	Consent         bool `form:"consent" validate:"required_if=ConsentRequired true"`
}

// Validator runs the server-side checks. They mirror the client script and are
// authoritative.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("basic_email", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})
	return &Validator{v: v}
}

// Normalize returns the trimmed submission. Values keep the visitor's text as
// typed; every renderer escapes them. The row is not yet stored.
func (val *Validator) Normalize(f Form) Submission {
	return Submission{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Body()),
		Company: strings.TrimSpace(f.Company),
	}
}

// Validate checks s against rules and returns a validation AppError listing
// every failing field in form order.
func (val *Validator) Validate(s Submission, consent string, rules Rules) error {
	in := input{
		Name:            s.Name,
		Email:           s.Email,
		Phone:           s.Phone,
		Subject:         s.Subject,
		Message:         s.Message,
		Company:         s.Company,
		ConsentRequired: rules.ConsentRequired,
		Consent:         consentGiven(consent),
	}

	err := val.v.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		msg, ok := rules.Messages[name]
		if !ok || fe.Tag() == "max" {
			msg = tooLongError
		}
		fields = append(fields, apperrors.FieldError{Field: name, Message: msg})
	}
	return apperrors.NewValidation(fields...)
}

func consentGiven(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "off", "no":
		return false
	}
	return true
}
