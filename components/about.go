package components

import (
	"strings"

	"burokrat-site/domain/content"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// joinText joins the non-empty parts with a space.
func joinText(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

func optP(text string) g.Node {
	if text == "" {
		return nil
	}
	return h.P(g.Text(text))
}

// Story is the about-page history block with its figures. Without either it
// renders nothing.
func Story(story content.Story, stats []content.Stat) g.Node {
	if len(story.Paragraphs) == 0 && len(stats) == 0 {
		return nil
	}

	var grid g.Node
	if len(stats) > 0 {
		grid = h.Div(h.Class("stats-grid"),
			g.Map(stats, func(s content.Stat) g.Node {
				return h.Div(h.Class("stat-card"), h.H3(g.Text(s.Value)), optP(s.Label))
			}),
		)
	}
	return h.Section(h.Class("about-story-section"),
		h.Div(h.Class("about-content-grid"),
			h.Div(h.Class("about-text"),
				h.H2(g.Text(firstNonEmpty(story.Heading, "Наша История"))),
				g.Map(story.Paragraphs, optP),
			),
			grid,
		),
	)
}

func Expertise(e content.Expertise) g.Node {
	if len(e.Items) == 0 {
		return nil
	}
	return h.Section(h.Class("expertise-section"),
		h.H2(g.Text(firstNonEmpty(e.Heading, "Экспертиза"))),
		h.Div(h.Div(h.Class("expertise-grid"), g.Map(e.Items, func(it content.ExpertiseItem) g.Node {
			return h.Div(h.Class("expertise-card"),
				h.H3(g.Text(joinText(it.Icon, it.Title))),
				optP(it.Description),
			)
		}))),
	)
}

func Values(v content.Values) g.Node {
	if len(v.Items) == 0 {
		return nil
	}
	return h.Section(h.Class("values-section"),
		h.H2(g.Text(firstNonEmpty(v.Heading, "Наши Ценности"))),
		h.Div(h.Class("values-grid"), g.Map(v.Items, func(it content.ValueItem) g.Node {
			return h.Div(h.Class("value-card"),
				h.H4(g.Text(it.Title)),
				optP(it.Description),
			)
		})),
	)
}

func hoursLine(label, hours string) g.Node {
	if hours == "" {
		return nil
	}
	return h.P(h.Strong(g.Text(label)), g.Text(hours))
}

// office renders one location card. The map link searches for maps_query, or
// for the address when no query is set, and is left out when both are empty.
func office(o content.Office) g.Node {
	var mapLink g.Node
	if q := firstNonEmpty(o.MapsQuery, o.Address); q != "" {
		mapLink = h.A(h.Href(MapsURL(q)), h.Target("_blank"), h.Class("btn btn-primary"),
			g.Text("Открыть на карте"))
	}
	var address g.Node
	if o.Address != "" {
		address = h.P(h.Strong(g.Text(o.Address)))
	}
	return h.Div(h.Class("location-card-about"),
		g.If(o.Name != "", h.H3(g.Text(joinText(o.Icon, o.Name)))),
		address,
		optP(o.Description),
		hoursLine("Пн-Пт: ", o.Hours.Weekdays),
		hoursLine("Сб-Вс: ", o.Hours.Weekend),
		mapLink,
	)
}

// Locations renders one card per office with its hours and a map link.
func Locations(l content.Locations) g.Node {
	if len(l.Offices) == 0 {
		return nil
	}
	return h.Section(h.Class("locations-section-about"),
		h.H2(g.Text(firstNonEmpty(l.Heading, "Наши офисы"))),
		g.If(l.Subtitle != "", h.P(h.Class("section-subtitle"), g.Text(l.Subtitle))),
		h.Div(h.Class("locations-grid-about"), g.Map(l.Offices, office)),
	)
}

// CTA is the closing call-to-action block. A button without a type is
// primary; a button without a url is dropped.
func CTA(c content.CTA) g.Node {
	var buttons []g.Node
	for _, b := range c.Buttons {
		if b.URL == "" || b.Label == "" {
			continue
		}
		buttons = append(buttons,
			h.A(h.Href(b.URL), h.Class("btn btn-"+firstNonEmpty(b.Type, "primary")), g.Text(b.Label)))
	}
	if c.Heading == "" && c.Description == "" && len(buttons) == 0 {
		return nil
	}

	var row g.Node
	if len(buttons) > 0 {
		row = h.Div(h.Class("cta-buttons"), g.Group(buttons))
	}
	return h.Section(h.Class("cta-section"),
		h.Div(h.Class("cta-content"),
			g.If(c.Heading != "", h.H2(g.Text(c.Heading))),
			optP(c.Description),
			row,
		),
	)
}
