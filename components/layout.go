// Package components holds the markup builders. Builders are pure: the same
// record always yields the same tree, and a missing optional value drops the
// element instead of rendering an empty shell.
package components

import (
	"burokrat-site/domain/content"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	defaultTitle = "Бюрократ"
	htmxSrc      = "https://unpkg.com/htmx.org@1.9.10"
)

// Meta keys accepted by WithMeta.
const (
	MetaDescription   = "description"
	MetaKeywords      = "keywords"
	MetaOGTitle       = "og:title"
	MetaOGDescription = "og:description"
	MetaOGURL         = "og:url"
	MetaOGType        = "og:type"
	MetaCanonicalURL  = "canonical_url"
)

type layout struct {
	header  g.Group
	footer  g.Group
	sidebar g.Group
	meta    map[string]string
}

type LayoutOption func(*layout)

// WithHeader replaces the default header contents.
func WithHeader(nodes ...g.Node) LayoutOption {
	return func(l *layout) { l.header = g.Group(nodes) }
}

// WithFooter replaces the default footer contents.
func WithFooter(nodes ...g.Node) LayoutOption {
	return func(l *layout) { l.footer = g.Group(nodes) }
}

// WithSidebar switches the main area to two columns.
func WithSidebar(nodes ...g.Node) LayoutOption {
	return func(l *layout) { l.sidebar = g.Group(nodes) }
}

// WithMeta overrides head values key by key.
func WithMeta(meta map[string]string) LayoutOption {
	return func(l *layout) {
		if l.meta == nil {
			l.meta = make(map[string]string, len(meta))
		}
		for k, v := range meta {
			l.meta[k] = v
		}
	}
}

// HeadMeta is the resolved set of head values for a page.
type HeadMeta struct {
	Description   string
	Keywords      string
	OGTitle       string
	OGDescription string
	OGURL         string
	OGType        string
	CanonicalURL  string
}

// ResolveMeta computes the head values from the site record and merges
// overrides over them.
func ResolveMeta(site *content.Main, title string, overrides map[string]string) HeadMeta {
	pick := func(key, def string) string {
		if v, ok := overrides[key]; ok {
			return v
		}
		return def
	}

	mt := site.MetaTags
	return HeadMeta{
		Description:   pick(MetaDescription, site.Description),
		Keywords:      pick(MetaKeywords, site.Keywords),
		OGTitle:       pick(MetaOGTitle, firstNonEmpty(mt.Title, title)),
		OGDescription: pick(MetaOGDescription, firstNonEmpty(mt.Description, site.Description)),
		OGURL:         pick(MetaOGURL, firstNonEmpty(mt.URL, site.SiteURL)),
		OGType:        pick(MetaOGType, firstNonEmpty(mt.Type, "website")),
		CanonicalURL:  pick(MetaCanonicalURL, site.CanonicalURL),
	}
}

// Wrap builds the whole document around body. It is the outermost call for
// every full page.
func Wrap(site *content.Main, title string, body []g.Node, opts ...LayoutOption) g.Node {
	l := &layout{}
	for _, opt := range opts {
		opt(l)
	}
	if l.header == nil {
		l.header = Header(site)
	}
	if l.footer == nil {
		l.footer = Footer(site)
	}

	meta := ResolveMeta(site, title, l.meta)

	var main g.Node
	if l.sidebar != nil {
		main = h.Main(h.ID("main-content"), h.Class("content-with-sidebar container"),
			h.Div(h.Class("sidebar"), l.sidebar),
			h.Div(h.Class("main-with-sidebar"), g.Group(body)),
		)
	} else {
		main = h.Main(h.ID("main-content"), h.Class("container"), g.Group(body))
	}

	return h.HTML(
		g.If(site.Language != "", h.Lang(site.Language)),
		h.Head(
			h.Meta(h.Charset("UTF-8")),
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
			h.Meta(h.Name("description"), h.Content(meta.Description)),
			h.Meta(h.Name("keywords"), h.Content(meta.Keywords)),
			h.Meta(g.Attr("property", "og:title"), h.Content(meta.OGTitle)),
			h.Meta(g.Attr("property", "og:description"), h.Content(meta.OGDescription)),
			h.Meta(g.Attr("property", "og:url"), h.Content(meta.OGURL)),
			h.Meta(g.Attr("property", "og:type"), h.Content(meta.OGType)),
			g.If(meta.CanonicalURL != "", h.Link(h.Rel("canonical"), h.Href(meta.CanonicalURL))),
			h.Link(h.Rel("icon"), h.Type("image/png"), h.Href("/assets/images/icon.png")),
			g.El("title", g.Text(firstNonEmpty(title, defaultTitle))),
			h.Link(h.Rel("stylesheet"), h.Href("/assets/styles/main.css")),
			h.Script(h.Src(htmxSrc)),
		),
		h.Body(
			h.Header(l.header),
			main,
			h.Footer(l.footer),
		),
	)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
