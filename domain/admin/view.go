package admin

import (
	"strconv"

	"burokrat-site/domain/contact"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	listDateLayout   = "2006-01-02 15:04"
	detailDateLayout = "2006-01-02 15:04:05"
)

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func cell(n ...g.Node) g.Node {
	return h.Td(h.Class("border px-4 py-2"), g.Group(n))
}

func statusBadge(sent bool) g.Node {
	if sent {
		return h.Span(h.Class("text-green-600 font-semibold"), g.Text("✅ Отправлено"))
	}
	return h.Span(h.Class("text-red-600 font-semibold"), g.Text("❌ Ошибка"))
}

func submissionRow(s contact.Submission) g.Node {
	return h.Tr(
		cell(g.Text(strconv.FormatInt(s.ID, 10))),
		cell(g.Text(s.CreatedAt.Format(listDateLayout))),
		cell(g.Text(s.Name)),
		cell(g.Text(s.Email)),
		cell(g.Text(orDash(s.Phone))),
		h.Td(h.Class("border px-4 py-2 max-w-xs truncate"), g.Text(orDash(s.Subject))),
		cell(g.Text(orDash(s.Company))),
		h.Td(h.Class("border px-4 py-2 text-center"), statusBadge(s.EmailSent)),
		h.Td(h.Class("border px-4 py-2 text-center"),
			h.Button(h.Type("button"), h.Class("btn btn-primary btn-small"),
				g.Attr("hx-get", "/admin/submissions/"+strconv.FormatInt(s.ID, 10)),
				g.Attr("hx-target", "#detail-modal"),
				g.Text("Подробнее"),
			),
		),
	)
}

var tableHeadings = []string{"ID", "Дата", "Имя", "Email", "Телефон", "Тема", "Компания", "Статус", "Действия"}

// SubmissionsList is the admin table, newest first as given.
func SubmissionsList(subs []contact.Submission, showLogout bool) []g.Node {
	var table g.Node
	if len(subs) == 0 {
		table = h.Div(h.Class("bg-gray-50 rounded-lg"),
			h.P(h.Class("text-gray-500 text-center py-8 text-lg"), g.Text("📭 Пока нет обращений")),
		)
	} else {
		table = h.Table(h.Class("w-full border-collapse admin-table"),
			h.THead(h.Tr(g.Map(tableHeadings, func(s string) g.Node {
				return h.Th(h.Class("border px-4 py-2 bg-gray-100"), g.Text(s))
			}))),
			h.TBody(g.Map(subs, submissionRow)),
		)
	}

	return []g.Node{
		h.Div(h.Class("container admin-submissions"),
			h.Div(h.Class("admin-header"),
				h.H1(g.Text("Обращения клиентов")),
				g.If(showLogout, g.El("form", g.Attr("method", "post"), g.Attr("action", "/admin/logout"),
					h.Button(h.Type("submit"), h.Class("btn btn-outline"), g.Text("Выйти")),
				)),
			),
			h.P(h.Class("admin-total"), g.Textf("Всего обращений: %d", len(subs))),
			h.Div(h.Class("overflow-x-auto"), table),
			h.Div(h.ID("detail-modal")),
		),
	}
}

func detailLine(label, value string) g.Node {
	return h.P(h.Strong(g.Text(label+": ")), g.Text(value))
}

// SubmissionDetail is the fragment swapped into #detail-modal.
func SubmissionDetail(s *contact.Submission) g.Node {
	var status g.Node
	if s.EmailSent {
		status = h.Div(h.Class("detail-status"),
			h.Span(h.Class("text-green-600 font-semibold"), g.Text("✅ Email отправлен успешно")))
	} else {
		reason := "Неизвестная ошибка"
		if s.EmailError.Valid && s.EmailError.String != "" {
			reason = s.EmailError.String
		}
		status = h.Div(h.Class("detail-status"),
			h.Span(h.Class("text-red-600 font-semibold"), g.Text("❌ Ошибка отправки email")),
			h.P(h.Class("detail-error"), g.Text(reason)),
		)
	}

	const clear = "document.getElementById('detail-modal').innerHTML = ''"
	return h.Div(h.Class("modal-overlay"), g.Attr("onclick", "if (event.target === this) { "+clear+" }"),
		h.Div(h.Class("modal-content submission-detail"),
			h.H2(g.Textf("Обращение №%d", s.ID)),
			detailLine("Дата", s.CreatedAt.Format(detailDateLayout)),
			detailLine("Имя", s.Name),
			detailLine("Email", s.Email),
			detailLine("Телефон", orDash(s.Phone)),
			detailLine("Компания", orDash(s.Company)),
			detailLine("Тема", orDash(s.Subject)),
			h.Div(h.Class("detail-message"),
				h.Strong(g.Text("Сообщение:")),
				h.P(g.Attr("style", "white-space: pre-wrap;"), g.Text(s.Message)),
			),
			status,
			h.Button(h.Type("button"), h.Class("btn btn-secondary"), g.Attr("onclick", clear), g.Text("Закрыть")),
		),
	)
}

// NotFoundFragment answers a detail request for an unknown id.
func NotFoundFragment() g.Node {
	return h.Div(h.Class("p-4 bg-red-50 rounded"),
		h.P(h.Class("text-red-600"), g.Text("❌ Обращение не найдено")),
	)
}

// LoginForm is the admin login page body.
func LoginForm(username, errMsg string) []g.Node {
	return []g.Node{
		h.Section(h.Class("admin-login"),
			h.H1(g.Text("Вход для администратора")),
			g.If(errMsg != "", h.P(h.Class("contact-error"), g.Attr("role", "alert"), g.Text(errMsg))),
			g.El("form", g.Attr("method", "post"), g.Attr("action", "/admin/login"), h.Class("contact-form"),
				h.Div(h.Class("form-group"),
					g.El("label", g.Attr("for", "admin-username"), g.Text("Логин")),
					h.Input(h.Type("text"), h.Name("username"), h.ID("admin-username"), h.Value(username), h.Required()),
				),
				h.Div(h.Class("form-group"),
					g.El("label", g.Attr("for", "admin-password"), g.Text("Пароль")),
					h.Input(h.Type("password"), h.Name("password"), h.ID("admin-password"), h.Required()),
				),
				h.Button(h.Type("submit"), h.Class("btn btn-primary"), g.Text("Войти")),
			),
		),
	}
}
