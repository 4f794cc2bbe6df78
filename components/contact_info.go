package components

import (
	"strings"

	"burokrat-site/domain/content"
	"burokrat-site/utils"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const mapsSearchURL = "https://www.google.com/maps/search/?api=1&query="

// MapsURL links an address to a Google Maps search.
func MapsURL(query string) string {
	return mapsSearchURL + strings.ReplaceAll(query, " ", "+")
}

// CompanyItems renders company_info.items. With nested set, group entries
// list their anchors into the clients page.
func CompanyItems(items []content.CompanyItem, nested bool) g.Node {
	if len(items) == 0 {
		return nil
	}
	return h.Ul(g.Map(items, func(it content.CompanyItem) g.Node {
		switch it.Kind {
		case content.ItemGroup:
			var links g.Node
			if nested && len(it.Links) > 0 {
				links = h.Ul(g.Map(it.Links, func(l content.AnchorLink) g.Node {
					return h.Li(h.A(h.Href("/clients#"+l.Anchor), h.Target("_self"), g.Text(l.Text)))
				}))
			}
			return h.Li(
				h.A(h.Href("/clients"), h.Target("_self"), h.Class("company-group-title"), h.Strong(g.Text(it.Text))),
				links,
			)
		default:
			return h.Li(g.Text(it.Text))
		}
	}))
}

// SocialIconClass picks the icon class for a messenger label.
func SocialIconClass(label string) string {
	kind := strings.ToLower(label)
	switch {
	case strings.Contains(kind, "teleg"):
		return "telegram"
	case strings.Contains(kind, "whats"):
		return "whatsapp"
	default:
		return "external"
	}
}

// SocialLinks renders messenger links that have a url, or nothing when there
// are none.
func SocialLinks(links []content.SocialLink) g.Node {
	var usable []content.SocialLink
	for _, l := range links {
		if l.URL != "" {
			usable = append(usable, l)
		}
	}
	if len(usable) == 0 {
		return nil
	}
	return h.Div(h.Class("social-media"),
		h.H3(g.Text("Мессенджеры")),
		h.Ul(h.Class("social-media-list"),
			g.Map(usable, func(l content.SocialLink) g.Node {
				return h.Li(
					h.A(h.Href(l.URL), h.Target("_blank"),
						h.Class("social-icon "+SocialIconClass(l.Label)), g.Attr("aria-label", l.Label),
						h.Span(h.Class("sr-only"), g.Text(l.Label)),
					),
				)
			}),
		),
	)
}

// PhoneItem renders one phone as a tel: link with its note, or nothing when
// the value has no digits.
func PhoneItem(raw string) g.Node {
	p := utils.FormatPhone(raw)
	if p.Tel == "" {
		return nil
	}
	return h.Li(
		h.A(h.Href("tel:"+p.Tel), g.Text(p.Display)),
		g.If(p.Note != "", h.Span(h.Class("phone-note"), g.Text(" ("+p.Note+")"))),
	)
}

func mapsLink(address string) g.Node {
	return h.A(h.Href(MapsURL(address)), h.Target("_blank"), g.Text(address))
}

// ContactInfo is the company, phones, addresses and messengers block of the
// contact page.
func ContactInfo(site *content.Main) g.Node {
	info := site.CompanyInfo
	sec := site.ContactInfo.Sections

	place := func(labels content.PlaceLabels, defLabel string, loc content.Location) g.Node {
		if loc.Address == "" {
			return nil
		}
		return h.Div(h.Class("location-info"),
			h.H4(g.Text(firstNonEmpty(labels.Label, defLabel))),
			h.P(mapsLink(loc.Address)),
			g.If(loc.WorkingHours.Monday != "",
				h.P(h.Strong(g.Text(firstNonEmpty(labels.WorkingHoursLabel, "Часы работы: "))), g.Text(loc.WorkingHours.Monday))),
		)
	}

	var addresses g.Node
	store := place(sec.Addresses.Store, "🏪 Магазин", info.Addresses.Store)
	office := place(sec.Addresses.Office, "🏢 Офис", info.Addresses.Office)
	if store != nil || office != nil {
		addresses = h.Div(h.Class("contact-addresses"),
			h.H3(g.Text(firstNonEmpty(sec.Addresses.Title, "Адреса"))),
			store, office,
		)
	}
	phones := PhoneList(firstNonEmpty(sec.Phones.Title, "Телефоны"), "h3", "contact-phones", "", info.Phones)

	var grid g.Node
	if phones != nil || addresses != nil {
		grid = h.Div(h.Class("contact-info-grid"), phones, addresses)
	}

	return h.Div(h.Class("contact-info-container"),
		h.Div(h.Class("company-info"),
			h.H3(g.Textf("Компания \"%s\"", firstNonEmpty(info.Name, defaultTitle))),
			CompanyItems(info.Items, true),
		),
		grid,
		SocialLinks(info.SocialMediaLinks),
	)
}
