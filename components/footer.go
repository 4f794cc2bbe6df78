package components

import (
	"burokrat-site/domain/content"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	defaultPrivacyText   = "Политика в отношении обработки персональных данных"
	defaultPrivacyURL    = "/privacy-statemnt"
	defaultAgreementText = "Пользовательское соглашение"
	defaultAgreementURL  = "/agreement"
)

// Footer is the contact summary and copyright line shown on every page.
func Footer(site *content.Main) g.Group {
	info := site.CompanyInfo
	sec := site.Footer.Sections
	highlight, rest := info.Highlight()

	// Groups keep their title but lose the nested links here.
	flat := make([]content.CompanyItem, 0, len(rest))
	for _, it := range rest {
		if it.Kind == content.ItemGroup {
			it.Links = nil
		}
		flat = append(flat, it)
	}

	hoursLabel := firstNonEmpty(sec.Addresses.WorkingHoursLabel, "Время работы: ")
	location := func(icon, label string, loc content.Location) g.Node {
		if loc.Address == "" {
			return nil
		}
		return h.Div(h.Class("location"),
			h.P(h.Strong(h.Class("location-label"), g.Text(icon+" "+label)), mapsLink(loc.Address)),
			g.If(loc.WorkingHours.Monday != "", h.P(g.Text(hoursLabel+loc.WorkingHours.Monday))),
		)
	}

	var company g.Node
	if info.Name != "" || highlight != "" {
		var hl g.Node
		if highlight != "" {
			hl = h.Ul(h.Li(g.Text(highlight)))
		}
		company = h.Div(h.Class("footer-company-highlight"),
			g.If(info.Name != "", h.P(g.Textf("Компания \"%s\"", info.Name))),
			hl,
		)
	}

	var addresses g.Node
	store := location("🏬", firstNonEmpty(sec.Addresses.StoreLabel, "Магазин: "), info.Addresses.Store)
	office := location("🏢", firstNonEmpty(sec.Addresses.OfficeLabel, "Офис: "), info.Addresses.Office)
	if store != nil || office != nil {
		addresses = h.Div(h.Class("footer-section"),
			h.H4(g.Text(firstNonEmpty(sec.Addresses.Title, "Адреса"))),
			store, office,
		)
	}

	var contacts g.Node
	items := CompanyItems(flat, false)
	social := SocialLinks(info.SocialMediaLinks)
	if company != nil || items != nil || social != nil {
		contacts = h.Div(h.Class("footer-section"),
			h.H3(g.Text("Контактная информация")),
			company, items, social,
		)
	}

	return g.Group{
		h.Div(h.Class("footer-content"),
			contacts,
			PhoneList(firstNonEmpty(sec.Phones.Title, "Телефоны"), "h4", "footer-section", "footer-phones", info.Phones),
			EmailList(firstNonEmpty(sec.Email.Title, "Электронная почта"), "footer-section", "footer-emails", info.Emails),
			addresses,
		),
		Copyright(site),
	}
}

// PhoneList is a titled list of phones, or nothing when there are none.
func PhoneList(title, heading, class, listClass string, phones []string) g.Node {
	var items []g.Node
	for _, p := range phones {
		if li := PhoneItem(p); li != nil {
			items = append(items, li)
		}
	}
	if len(items) == 0 {
		return nil
	}
	return h.Div(h.Class(class),
		g.El(heading, g.Text(title)),
		h.Ul(g.If(listClass != "", h.Class(listClass)), g.Group(items)),
	)
}

// EmailList is a titled list of mailto links, or nothing when there are none.
func EmailList(title, class, listClass string, emails []string) g.Node {
	var items []g.Node
	for _, e := range emails {
		if e != "" {
			items = append(items, h.Li(h.A(h.Href("mailto:"+e), g.Text(e))))
		}
	}
	if len(items) == 0 {
		return nil
	}
	return h.Div(h.Class(class),
		h.H4(g.Text(title)),
		h.Ul(h.Class(listClass), g.Group(items)),
	)
}

// Copyright renders the bottom line with the privacy and optional agreement links.
func Copyright(site *content.Main) g.Node {
	c := site.Footer.Copyright
	sep := firstNonEmpty(c.Separator, " · ")

	var agreement g.Node
	if c.AgreementLink != nil {
		agreement = g.Group{
			g.Text(sep),
			h.A(h.Href(firstNonEmpty(c.AgreementLink.URL, defaultAgreementURL)), h.Class("privacy-link"),
				g.Text(firstNonEmpty(c.AgreementLink.Text, defaultAgreementText))),
		}
	}

	return h.P(h.Class("copyright"),
		g.Textf("© %s ", firstNonEmpty(c.Year, "2025")),
		g.If(site.CompanyInfo.Name != "", g.Group{g.Text(site.CompanyInfo.Name), g.Text(sep)}),
		h.A(h.Href(firstNonEmpty(c.PrivacyLink.URL, defaultPrivacyURL)), h.Class("privacy-link"),
			g.Text(firstNonEmpty(c.PrivacyLink.Text, defaultPrivacyText))),
		agreement,
	)
}
