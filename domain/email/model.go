package email

// Notification is one contact-form submission to deliver to the site owner.
type Notification struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
	Company string
}

const (
	SubjectPrefix  = "[FORM] "
	DefaultSubject = "Без темы"
	DefaultPhone   = "Не указан"
	DefaultCompany = "Не указана"
	siteFooterLine = "Это сообщение отправлено с сайта burokrat.site через форму обратной связи."
	headingLine    = "Новое сообщение с формы обратной связи"
)

// Address is a display name plus mailbox.
type Address struct {
	Name  string
	Email string
}
