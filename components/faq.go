package components

import (
	"fmt"

	"burokrat-site/domain/content"

	"github.com/microcosm-cc/bluemonday"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const chevronSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><polyline points="6 9 12 15 18 9"/></svg>`

const accordionIconSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" class="accordion-icon"><polyline points="6 9 12 15 18 9"/></svg>`

// Answers may carry simple formatting; everything else is stripped.
var answerPolicy = bluemonday.UGCPolicy()

// FAQItem renders one collapsed accordion entry, or nothing without a
// question. Only one entry is open at a time; the toggling lives in
// faq-accordion.js.
func FAQItem(item content.FAQItem, index int) g.Node {
	if item.Question == "" {
		return nil
	}
	id := fmt.Sprintf("faq-item-%d", index)
	return h.Div(h.Class("accordion-item border rounded-lg px-6 bg-gray-50"),
		h.Button(h.Type("button"), h.Class("accordion-trigger"), g.Attr("data-target", id),
			g.Attr("onclick", fmt.Sprintf("toggleAccordion('%s')", id)),
			h.Span(h.Class("pr-4"), g.Text(item.Question)),
			h.Span(h.Class("accordion-icon-wrapper"), g.Raw(accordionIconSVG)),
		),
		h.Div(h.ID(id), h.Class("accordion-content"), g.Attr("style", "max-height: 0; overflow: hidden;"),
			h.Div(h.Class("accordion-content-inner"), g.Raw(answerPolicy.Sanitize(item.Answer))),
		),
	)
}

// FAQ renders the accordion section, or nothing when there are no questions.
func FAQ(faq content.FAQ) g.Node {
	items := make([]g.Node, 0, len(faq.Items))
	for i, it := range faq.Items {
		if n := FAQItem(it, i); n != nil {
			items = append(items, n)
		}
	}
	if len(items) == 0 {
		return nil
	}

	return h.Div(h.Class("faq-section bg-white py-16"),
		h.Div(h.Class("max-w-4xl mx-auto px-4 sm:px-6 lg:px-8"),
			h.Div(h.Class("text-center mb-12"),
				h.H2(h.Class("text-4xl mb-4"), g.Text(firstNonEmpty(faq.Title, "Часто задаваемые вопросы"))),
				g.If(faq.Subtitle != "", h.P(h.Class("text-xl text-gray-600"), g.Text(faq.Subtitle))),
			),
			h.Div(h.Class("faq-accordion space-y-4"), g.Group(items)),
		),
		h.Script(h.Src("/assets/scripts/faq-accordion.js")),
	)
}
