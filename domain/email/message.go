package email

import (
	"bytes"
	"fmt"
	"strings"

	"burokrat-site/utils"

	"github.com/jhillyerd/enmime"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func (n Notification) subjectOrDefault() string {
	return utils.OrDefault(strings.TrimSpace(n.Subject), DefaultSubject)
}

// EmailSubject is the subject line with the form marker.
func (n Notification) EmailSubject() string {
	return SubjectPrefix + n.subjectOrDefault()
}

// TextBody renders the plain-text alternative.
func (n Notification) TextBody() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", headingLine)
	fmt.Fprintf(&b, "Имя: %s\n", n.Name)
	fmt.Fprintf(&b, "Email: %s\n", n.Email)
	fmt.Fprintf(&b, "Телефон: %s\n", utils.OrDefault(n.Phone, DefaultPhone))
	fmt.Fprintf(&b, "Компания: %s\n", utils.OrDefault(n.Company, DefaultCompany))
	fmt.Fprintf(&b, "Тема: %s\n\n", n.subjectOrDefault())
	fmt.Fprintf(&b, "Сообщение:\n%s\n\n", n.Message)
	fmt.Fprintf(&b, "---\n%s\n", siteFooterLine)
	return b.String()
}

func field(label string, value g.Node) g.Node {
	return h.P(g.Attr("style", "margin: 10px 0;"), h.Strong(g.Text(label+":")), g.Text(" "), value)
}

// HTMLBody renders the HTML alternative. Submitted values are escaped.
func (n Notification) HTMLBody() (string, error) {
	doc := h.HTML(
		h.Body(g.Attr("style", "font-family: Arial, sans-serif; line-height: 1.6; color: #333;"),
			h.Div(g.Attr("style", "max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #ddd; border-radius: 8px;"),
				h.H2(g.Attr("style", "color: #4F46E5; border-bottom: 2px solid #4F46E5; padding-bottom: 10px;"), g.Text(headingLine)),
				h.Div(g.Attr("style", "margin: 20px 0;"),
					field("Имя", g.Text(n.Name)),
					field("Email", h.A(h.Href("mailto:"+n.Email), g.Text(n.Email))),
					field("Телефон", g.Text(utils.OrDefault(n.Phone, DefaultPhone))),
					field("Компания", g.Text(utils.OrDefault(n.Company, DefaultCompany))),
					field("Тема", g.Text(n.subjectOrDefault())),
				),
				h.Div(g.Attr("style", "margin: 20px 0; padding: 15px; background-color: #f9fafb; border-left: 4px solid #4F46E5; border-radius: 4px;"),
					h.H3(g.Attr("style", "margin-top: 0; color: #4F46E5;"), g.Text("Сообщение:")),
					h.P(g.Attr("style", "white-space: pre-wrap;"), g.Text(n.Message)),
				),
				h.Div(g.Attr("style", "margin-top: 30px; padding-top: 20px; border-top: 1px solid #ddd; font-size: 12px; color: #666;"),
					h.P(g.Text(siteFooterLine)),
				),
			),
		),
	)

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Compose builds the multipart/alternative MIME message.
func Compose(n Notification, from Address, to string) ([]byte, error) {
	html, err := n.HTMLBody()
	if err != nil {
		return nil, fmt.Errorf("render html body: %w", err)
	}

	part, err := enmime.Builder().
		From(from.Name, from.Email).
		To("", to).
		ReplyTo(n.Name, n.Email).
		Subject(n.EmailSubject()).
		Text([]byte(n.TextBody())).
		HTML([]byte(html)).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build message: %w", err)
	}

	var buf bytes.Buffer
	if err := part.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	return buf.Bytes(), nil
}
