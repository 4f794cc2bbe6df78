package components

import (
	"strings"

	"burokrat-site/domain/content"
	"burokrat-site/pkg/apperrors"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Fragment defaults for the contact form.
const (
	DefaultSuccessTitle    = "Спасибо!"
	DefaultSuccessTemplate = "Ваше сообщение получено, {name}."
	DefaultDeliveryError   = "Не удалось отправить сообщение. Пожалуйста, позвоните нам или попробуйте позже."
	RateLimitedText        = "Слишком много сообщений. Пожалуйста, попробуйте позже."
	defaultSubmitLabel     = "Отправить"
	contactSubmitURL       = "/contact/submit"
	defaultConsentHref     = "/privacy"
)

var defaultFieldLabels = map[string]string{
	"name":    "Имя",
	"email":   "Email",
	"phone":   "Телефон",
	"company": "Компания",
	"subject": "Тема",
	"message": "Сообщение",
}

func formGroup(label, id string, control g.Node) g.Node {
	return h.Div(h.Class("form-group"),
		g.El("label", g.Attr("for", id), g.Text(label)),
		control,
	)
}

// textInput renders an input with its client-side error message attached as
// data-error; the form script reads it from there.
func textInput(typ, name string, f content.Field, required bool, errMsg string) g.Node {
	id := "contact-" + name
	return formGroup(firstNonEmpty(f.Label, defaultFieldLabels[name]), id, h.Input(
		h.Type(typ), h.Name(name), h.ID(id),
		g.If(f.Placeholder != "", h.Placeholder(f.Placeholder)),
		g.If(required, h.Required()),
		g.If(errMsg != "", g.Attr("data-error", errMsg)),
	))
}

func optionalInput(typ, name string, f *content.Field) g.Node {
	if f == nil {
		return nil
	}
	return textInput(typ, name, *f, false, "")
}

func consentRow(c *content.Consent, errMsg string) g.Node {
	if c == nil {
		return nil
	}
	return h.Div(h.Class("form-group consent-row"),
		h.Input(h.Type("checkbox"), h.Name("consent"), h.ID("contact-consent"), h.Value("on"),
			h.Required(), g.If(errMsg != "", g.Attr("data-error", errMsg))),
		g.El("label", g.Attr("for", "contact-consent"),
			g.Text(c.LabelPrefix),
			g.If(c.PrivacyLinkText != "",
				h.A(h.Href(firstNonEmpty(c.PrivacyLinkHref, defaultConsentHref)), g.Text(c.PrivacyLinkText))),
		),
	)
}

// ContactFormFields renders the form itself. name, email and message are
// always present; phone, subject, company and consent only when configured.
// messages holds the per-field client-side error texts.
func ContactFormFields(rec *content.Contact, messages map[string]string) g.Node {
	f := rec.Form.Fields
	msg := f.MessageField()
	return g.El("form", h.Class("contact-form"),
		g.Attr("hx-post", contactSubmitURL),
		g.Attr("hx-target", "#contact-status"),
		g.Attr("hx-swap", "innerHTML"),
		g.Attr("novalidate"),
		textInput("text", "name", f.Name, true, messages["name"]),
		textInput("email", "email", f.Email, true, messages["email"]),
		optionalInput("tel", "phone", f.Phone),
		optionalInput("text", "company", f.Company),
		optionalInput("text", "subject", f.Subject),
		formGroup(firstNonEmpty(msg.Label, defaultFieldLabels["message"]), "contact-message", h.Textarea(
			h.Name("message"), h.ID("contact-message"),
			g.If(msg.Placeholder != "", h.Placeholder(msg.Placeholder)), g.Attr("rows", "4"), h.Required(),
			g.If(messages["message"] != "", g.Attr("data-error", messages["message"])),
		)),
		consentRow(rec.Form.Consent, messages["consent"]),
		h.Button(h.Type("submit"), h.Class("btn btn-primary"),
			g.Text(firstNonEmpty(rec.Form.SubmitLabel, defaultSubmitLabel))),
	)
}

func contactScript() g.Node {
	return h.Script(h.Src("/assets/scripts/contact-form.js"), g.Attr("defer"))
}

// ContactForm is the contact page section with its status slot.
func ContactForm(rec *content.Contact, messages map[string]string) g.Node {
	return h.Section(h.Class("contact-form-section"), h.ID("contact-form"),
		h.Div(h.Class("contact-form-content"),
			g.If(rec.Title != "", h.H2(g.Text(rec.Title))),
			optP(rec.Intro),
			ContactFormFields(rec, messages),
			h.Div(h.ID("contact-status"), h.Class("contact-status")),
			contactScript(),
		),
	)
}

// ContactModal wraps the form for the catalog pages' #modal slot. Clicking the
// backdrop or the close button empties the slot.
func ContactModal(rec *content.Contact, messages map[string]string) g.Node {
	const clear = "document.getElementById('modal').innerHTML = ''"
	return h.Div(h.Class("modal-overlay"),
		g.Attr("onclick", "if (event.target === this) { "+clear+" }"),
		h.Div(h.Class("modal-content"), g.Attr("role", "dialog"), g.Attr("aria-modal", "true"),
			h.Button(h.Type("button"), h.Class("modal-close"), g.Attr("aria-label", "Закрыть"),
				g.Attr("onclick", clear), g.Text("×")),
			g.If(rec.Title != "", h.H2(g.Text(rec.Title))),
			ContactFormFields(rec, messages),
			h.Div(h.ID("contact-status"), h.Class("contact-status")),
			contactScript(),
		),
	)
}

// ContactSuccess is swapped into #contact-status after delivery succeeded.
func ContactSuccess(title, template, name string) g.Node {
	msg := strings.ReplaceAll(firstNonEmpty(template, DefaultSuccessTemplate), "{name}", name)
	return h.Div(h.Class("contact-success"),
		h.H3(g.Text(firstNonEmpty(title, DefaultSuccessTitle))),
		h.P(g.Text(msg)),
	)
}

// ContactFailure never includes transport detail.
func ContactFailure(text string) g.Node {
	return h.Div(h.Class("contact-error"), g.Attr("role", "alert"),
		h.P(g.Text(firstNonEmpty(text, DefaultDeliveryError))),
	)
}

// ContactErrors lists field-scoped validation messages.
func ContactErrors(fields []apperrors.FieldError) g.Node {
	if len(fields) == 0 {
		return nil
	}
	return h.Div(h.Class("contact-error"), g.Attr("role", "alert"),
		h.Ul(h.Class("error-list"), g.Map(fields, func(fe apperrors.FieldError) g.Node {
			return h.Li(g.Attr("data-field", fe.Field), g.Text(fe.Message))
		})),
	)
}

func RateLimited() g.Node {
	return h.Div(h.Class("contact-error"), g.Attr("role", "alert"), h.P(g.Text(RateLimitedText)))
}
