package components

import (
	"regexp"
	"strings"

	"burokrat-site/domain/content"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

var (
	emailOnly    = regexp.MustCompile(`^\*{0,2}([A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,})\*{0,2}$`)
	emailInline  = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	boldHeadline = regexp.MustCompile(`^\*\*(.+)\*\*$`)
)

func emailLink(addr string) g.Node {
	return h.A(h.Href("mailto:"+addr), h.Class("contact-email"), g.Text(addr))
}

// paragraphParser turns policy text blocks into markup. A "**X**" line is a
// subheading, "- " lines collect into one list that may span blocks, and a
// block holding only an email joins the paragraph before it.
type paragraphParser struct {
	nodes  []g.Node
	buffer string
	open   bool
	items  []string
}

func (p *paragraphParser) flushBuffer() {
	if p.open {
		p.nodes = append(p.nodes, h.P(g.Text(p.buffer)))
		p.buffer, p.open = "", false
	}
}

func (p *paragraphParser) flushList() {
	if len(p.items) == 0 {
		return
	}
	p.nodes = append(p.nodes, h.Ul(g.Map(p.items, func(it string) g.Node { return h.Li(g.Text(it)) })))
	p.items = nil
}

func (p *paragraphParser) block(raw string) {
	s := strings.TrimSpace(raw)

	if m := emailOnly.FindStringSubmatch(s); m != nil {
		if p.open {
			p.nodes = append(p.nodes, h.P(g.Text(p.buffer), g.Text(" "), emailLink(m[1])))
			p.buffer, p.open = "", false
		} else {
			p.nodes = append(p.nodes, h.P(emailLink(m[1])))
		}
		return
	}

	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := boldHeadline.FindStringSubmatch(line); m != nil && !emailOnly.MatchString(m[1]) {
			p.flushBuffer()
			p.flushList()
			p.nodes = append(p.nodes, h.H3(g.Text(m[1])))
			continue
		}

		if strings.HasPrefix(line, "- ") {
			p.flushBuffer()
			p.items = append(p.items, strings.TrimSpace(line[2:]))
			continue
		}

		p.flushList()
		if p.open && p.buffer != "" {
			if !strings.HasSuffix(p.buffer, " ") {
				p.buffer += " "
			}
			p.buffer += line
		} else {
			p.buffer, p.open = line, true
		}
	}
}

// PolicyParagraphs renders the paragraphs of one policy section.
func PolicyParagraphs(paragraphs []string) []g.Node {
	p := &paragraphParser{}
	for _, b := range paragraphs {
		p.block(b)
	}
	p.flushList()
	p.flushBuffer()
	return p.nodes
}

func pageIntro(class, title, intro string, extra ...g.Node) g.Node {
	if title == "" && intro == "" && len(extra) == 0 {
		return nil
	}
	return h.Section(
		h.Div(h.Class(class),
			g.If(title != "", h.H1(g.Text(title))),
			optP(intro),
		),
		g.Group(extra),
	)
}

// textSections renders the headed sections of a document page, or nothing
// when none has content.
func textSections[S any](class, itemClass string, sections []S, body func(S) (heading string, id string, nodes []g.Node)) g.Node {
	var out []g.Node
	for _, sec := range sections {
		heading, id, nodes := body(sec)
		if heading == "" && len(nodes) == 0 {
			continue
		}
		out = append(out, h.Div(h.Class(itemClass), g.If(id != "", h.ID(id)),
			g.If(heading != "", h.H2(g.Text(heading))),
			g.Group(nodes),
		))
	}
	if len(out) == 0 {
		return nil
	}
	return h.Section(h.Class(class), h.Div(g.Group(out)))
}

// Privacy renders the privacy policy page body.
func Privacy(rec *content.Privacy) []g.Node {
	return []g.Node{
		pageIntro("page-intro privacy-intro", rec.Title, rec.Intro),
		textSections("privacy-content", "privacy-section", rec.Sections,
			func(s content.TextSection) (string, string, []g.Node) {
				return s.Heading, "", PolicyParagraphs(s.Paragraphs)
			}),
	}
}

// InlineEmails splits text so every email address becomes a mailto link.
func InlineEmails(text string) g.Group {
	locs := emailInline.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return g.Group{g.Text(text)}
	}

	out := make(g.Group, 0, 2*len(locs)+1)
	last := 0
	for _, loc := range locs {
		if loc[0] > last {
			out = append(out, g.Text(text[last:loc[0]]))
		}
		out = append(out, emailLink(text[loc[0]:loc[1]]))
		last = loc[1]
	}
	if last < len(text) {
		out = append(out, g.Text(text[last:]))
	}
	return out
}

func clause(c content.Clause) g.Node {
	if c.Text == "" && len(c.Items) == 0 && c.Conclusion == "" {
		return nil
	}
	return h.Div(h.Class("agreement-clause"),
		g.If(c.Text != "", h.P(InlineEmails(c.Text))),
		g.If(len(c.Items) > 0, h.Ul(g.Map(c.Items, func(it string) g.Node { return h.Li(InlineEmails(it)) }))),
		g.If(c.Conclusion != "", h.P(InlineEmails(c.Conclusion))),
	)
}

// Requisites is the company details block closing the agreement.
func Requisites(req content.Requisites, published string) g.Node {
	var lines []g.Node
	if req.CompanyName != "" {
		lines = append(lines, h.P(h.Strong(g.Text(req.CompanyName))))
	}
	for _, v := range []string{req.INN, req.KPP, req.OGRN, req.Address} {
		if v != "" {
			lines = append(lines, h.P(g.Text(v)))
		}
	}
	if req.Email != "" {
		lines = append(lines, h.P(InlineEmails(req.Email)))
	}
	if published != "" {
		lines = append(lines, h.Br(), h.P(h.Class("agreement-publication-date"), g.Text(published)))
	}
	if len(lines) == 0 {
		return nil
	}
	return h.Div(h.Class("agreement-requisites"), h.H2(g.Text("Реквизиты")), g.Group(lines))
}

// Agreement renders the user agreement page body.
func Agreement(rec *content.Agreement) []g.Node {
	var footer g.Node
	if req := Requisites(rec.Footer.Requisites, rec.Footer.PublicationDate); req != nil {
		footer = h.Section(h.Class("agreement-footer"), req)
	}
	return []g.Node{
		pageIntro("page-intro agreement-intro", firstNonEmpty(rec.Title, "Пользовательское соглашение"), rec.Preamble),
		textSections("agreement-content", "agreement-section", rec.Sections,
			func(s content.AgreementSection) (string, string, []g.Node) {
				var nodes []g.Node
				for _, c := range s.Clauses {
					if n := clause(c); n != nil {
						nodes = append(nodes, n)
					}
				}
				return s.Heading, "", nodes
			}),
		footer,
	}
}

// Clients renders the delivery, payment and warranty page. Section ids are the
// anchors the company-info links point at.
func Clients(rec *content.Clients, company content.CompanyInfo) []g.Node {
	highlight, _ := company.Highlight()
	var companyBlock []g.Node
	if company.Name != "" || highlight != "" {
		companyBlock = append(companyBlock, h.Div(h.Class("clients-highlight"),
			g.If(company.Name != "", h.P(g.Textf("Компания \"%s\"", company.Name))),
			optP(highlight),
		))
	}
	return []g.Node{
		pageIntro("page-intro", rec.Title, rec.Intro, companyBlock...),
		textSections("clients-content", "clients-section", rec.Sections,
			func(s content.TextSection) (string, string, []g.Node) {
				var nodes []g.Node
				for _, p := range s.Paragraphs {
					if p != "" {
						nodes = append(nodes, h.P(g.Text(p)))
					}
				}
				return s.Heading, s.ID, nodes
			}),
	}
}
