package components

import (
	"regexp"
	"strings"
	"testing"

	"burokrat-site/domain/catalog"
	"burokrat-site/domain/content"
	"burokrat-site/pkg/apperrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, nodes ...g.Node) string {
	t.Helper()
	var b strings.Builder
	for _, n := range nodes {
		if n == nil {
			continue
		}
		require.NoError(t, n.Render(&b))
	}
	return b.String()
}

func TestDropdown_OptionShapesRenderAlike(t *testing.T) {
	cfg := func(opts []Option) DropdownConfig {
		return DropdownConfig{Options: opts, Selected: "b", ID: "sort", Label: "Сортировка"}
	}

	records := NormalizeOptions([]any{
		map[string]any{"value": "a", "label": "Первый"},
		map[string]any{"value": "b", "label": "Второй"},
	})
	pairs := NormalizeOptions([]any{[2]string{"a", "Первый"}, []any{"b", "Второй"}})
	typed := []Option{{Value: "a", Label: "Первый"}, {Value: "b", Label: "Второй"}}

	want := render(t, Dropdown(cfg(typed)))
	assert.Equal(t, want, render(t, Dropdown(cfg(records))))
	assert.Equal(t, want, render(t, Dropdown(cfg(pairs))))
	assert.Contains(t, want, `<option value="b" selected>Второй</option>`)
	assert.Contains(t, want, `<label for="sort" class="dropdown-label">Сортировка</label>`)
}

func TestNormalizeOptions(t *testing.T) {
	opts := NormalizeOptions([]any{
		"plain",
		42,
		map[string]any{"value": 7},
		map[string]string{"value": "x", "label": "X", "data_price": "10"},
	})

	require.Len(t, opts, 4)
	assert.Equal(t, Option{Value: "plain", Label: "plain"}, opts[0])
	assert.Equal(t, Option{Value: "42", Label: "42"}, opts[1])
	assert.Equal(t, Option{Value: "7", Label: "7"}, opts[2])
	assert.Equal(t, map[string]string{"price": "10"}, opts[3].Data)
}

func TestDropdown_NilSelectionKeepsPlaceholder(t *testing.T) {
	out := render(t, Dropdown(DropdownConfig{
		Options:     []Option{{Value: "0", Label: "Ноль"}},
		Placeholder: "Выберите",
	}))

	assert.Contains(t, out, `<option value="" disabled selected>Выберите</option>`)
	assert.Contains(t, out, `<option value="0">Ноль</option>`)
}

func TestBadgeClass(t *testing.T) {
	tests := []struct {
		badge string
		want  string
	}{
		{"Bestseller", "badge-bestseller"},
		{"Бестселлер", "badge-bestseller"},
		{"Новинка", "badge-new"},
		{"New", "badge-new"},
		{"Премиум", "badge-premium"},
		{"Popular", "badge-popular"},
		{"Скидка", BadgeDefault},
		{"", BadgeDefault},
		{"bestseller", BadgeDefault},
	}
	for _, tt := range tests {
		t.Run(tt.badge, func(t *testing.T) {
			assert.Equal(t, tt.want, BadgeClass(tt.badge))
		})
	}
}

func TestProductCard(t *testing.T) {
	p := catalog.Product{
		ID:         3,
		Name:       "Ежедневник",
		CategoryID: "notebooks-journals",
		Price:      decimal.RequireFromString("850"),
		Rating:     decimal.RequireFromString("4.7"),
		Reviews:    41,
		Badge:      "Новинка",
		InStock:    true,
	}

	n, err := ProductCard(p, "Заказать")
	require.NoError(t, err)
	out := render(t, n)
	assert.Contains(t, out, `data-price="850.00"`)
	assert.Contains(t, out, `data-in-stock="true"`)
	assert.Contains(t, out, `class="product-badge badge-new"`)
	assert.Contains(t, out, "$850.00")
	assert.Contains(t, out, "(41 отзывов)")

	_, err = ProductCard(catalog.Product{ID: 9}, "Заказать")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeContentShape))
}

func TestEmptyInputsRenderNothing(t *testing.T) {
	featured, err := FeaturedProducts(&content.Featured{}, nil)
	require.NoError(t, err)

	tests := map[string]g.Node{
		"story":           Story(content.Story{}, nil),
		"expertise":       Expertise(content.Expertise{}),
		"values":          Values(content.Values{}),
		"locations":       Locations(content.Locations{}),
		"cta":             CTA(content.CTA{}),
		"catalog intro":   CatalogIntro("", ""),
		"order card":      OrderCard(content.CatalogItem{}),
		"page hero":       PageHero("", ""),
		"service card":    ServiceCard(content.MenuItem{}),
		"services":        Services(nil),
		"faq":             FAQ(content.FAQ{}),
		"faq item":        FAQItem(content.FAQItem{}, 0),
		"social links":    SocialLinks(nil),
		"company items":   CompanyItems(nil, true),
		"phone item":      PhoneItem(""),
		"shop categories": ShopCategories(&content.ShopCategories{}),
		"requisites":      Requisites(content.Requisites{}, ""),
		"contact errors":  ContactErrors(nil),
		"dropdown":        Dropdown(DropdownConfig{}),
		"featured":        featured,
	}
	for name, n := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, n)
		})
	}
}

var emptyElement = regexp.MustCompile(`<(h[1-6]|p|ul|ol|li|a|strong|label|section)(\s[^>]*)?></(h[1-6]|p|ul|ol|li|a|strong|label|section)>`)

// assertNoEmptyShells fails on elements with nothing inside and on links that
// lead nowhere.
func assertNoEmptyShells(t *testing.T, out string) {
	t.Helper()
	assert.NotRegexp(t, emptyElement, out)
	for _, broken := range []string{`href=""`, `href="#"`, `href="tel:"`, `href="mailto:"`, `query="`, `url('')`, `&#34;&#34;`} {
		assert.NotContains(t, out, broken)
	}
}

func TestZeroRecordsRenderWithoutEmptyShells(t *testing.T) {
	site := &content.Main{}
	contact := &content.Contact{}
	products := &content.Products{}

	productsPage, err := ProductsPage(products, nil, nil)
	require.NoError(t, err)

	tests := map[string][]g.Node{
		"hero":               {Hero(content.Hero{})},
		"header":             {Header(site)},
		"footer":             {Footer(site)},
		"copyright":          {Copyright(site)},
		"contact info":       {ContactInfo(site)},
		"contact form":       {ContactForm(contact, nil)},
		"contact modal":      {ContactModal(contact, nil)},
		"contact fields":     {ContactFormFields(contact, nil)},
		"contact success":    {ContactSuccess("", "", "")},
		"contact failure":    {ContactFailure("")},
		"seals and stamps":   SealsStamps(&content.CatalogPage{}),
		"self-inking stamps": SelfInkingStamps(&content.CatalogPage{}),
		"stationery":         Stationery(&content.CatalogPage{}),
		"engraving":          Engraving(),
		"privacy":            Privacy(&content.Privacy{}),
		"policy paragraphs":  PolicyParagraphs(nil),
		"agreement":          Agreement(&content.Agreement{}),
		"clients":            Clients(&content.Clients{}, content.CompanyInfo{}),
		"product filters":    {ProductFilters(products, nil)},
		"products page":      {productsPage},
		"not found":          {NotFound()},
		"document":           {Wrap(site, "", nil)},
	}
	for name, nodes := range tests {
		t.Run(name, func(t *testing.T) {
			assertNoEmptyShells(t, render(t, nodes...))
		})
	}
}

func TestCTA_DropsButtonsWithoutURL(t *testing.T) {
	out := render(t, CTA(content.CTA{
		Heading: "Готовы заказать?",
		Buttons: []content.CTAButton{{Label: "Позвонить"}, {Label: "Написать", URL: "/contact", Type: "outline"}},
	}))

	assert.Equal(t, `<section class="cta-section"><div class="cta-content"><h2>Готовы заказать?</h2>`+
		`<div class="cta-buttons"><a href="/contact" class="btn btn-outline">Написать</a></div></div></section>`, out)

	assert.Nil(t, CTA(content.CTA{Buttons: []content.CTAButton{{Label: "Позвонить"}}}))
}

func TestLocations_MapLinkFallsBackToAddress(t *testing.T) {
	out := render(t, Locations(content.Locations{Offices: []content.Office{
		{Name: "Офис", Address: "пр. Строителей 117"},
		{Name: "Склад"},
	}}))

	assert.Contains(t, out, `href="https://www.google.com/maps/search/?api=1&amp;query=пр.+Строителей+117"`)
	assert.Equal(t, 1, strings.Count(out, "Открыть на карте"))
	assertNoEmptyShells(t, out)
}

func TestFooter_ListsOnlyWhatIsConfigured(t *testing.T) {
	site := &content.Main{}
	site.CompanyInfo.Name = "Бюрократ"
	site.CompanyInfo.Phones = []string{"+7 (3852) 62-82-82 (офис)", "без номера"}

	out := render(t, Footer(site))
	assert.Contains(t, out, `<h4>Телефоны</h4><ul class="footer-phones"><li><a href="tel:73852628282">`)
	assert.Equal(t, 1, strings.Count(out, "tel:"))
	assert.NotContains(t, out, "Электронная почта")
	assert.NotContains(t, out, "Адреса")
	assert.Contains(t, out, `<div class="footer-company-highlight"><p>Компания &#34;Бюрократ&#34;</p></div>`)
	assertNoEmptyShells(t, out)
}

func TestPolicyParagraphs(t *testing.T) {
	out := render(t, PolicyParagraphs([]string{
		"Вводный текст\n- первое\n- второе",
		"**Подзаголовок**",
		"Пишите на",
		"**info@burokrat.site**",
	})...)

	assert.Equal(t,
		`<p>Вводный текст</p>`+
			`<ul><li>первое</li><li>второе</li></ul>`+
			`<h3>Подзаголовок</h3>`+
			`<p>Пишите на <a href="mailto:info@burokrat.site" class="contact-email">info@burokrat.site</a></p>`,
		out)
}

func TestPolicyParagraphs_ListSpansBlocksAndTextJoins(t *testing.T) {
	out := render(t, PolicyParagraphs([]string{
		"- один",
		"- два",
		"строка\nпродолжение",
	})...)

	assert.Equal(t, `<ul><li>один</li><li>два</li></ul><p>строка продолжение</p>`, out)
}

func TestInlineEmails(t *testing.T) {
	out := render(t, InlineEmails("Пишите на info@burokrat.site или sales@burokrat.site сегодня"))
	assert.Equal(t,
		`Пишите на <a href="mailto:info@burokrat.site" class="contact-email">info@burokrat.site</a>`+
			` или <a href="mailto:sales@burokrat.site" class="contact-email">sales@burokrat.site</a> сегодня`,
		out)

	assert.Equal(t, "без адреса", render(t, InlineEmails("без адреса")))
}

func TestAgreement_Requisites(t *testing.T) {
	rec := &content.Agreement{}
	rec.Footer.Requisites = content.Requisites{CompanyName: "ООО «Бюрократ»", INN: "ИНН 1", Email: "Email: info@burokrat.site"}
	rec.Footer.PublicationDate = "01.01.2025"

	out := render(t, Agreement(rec)...)
	assert.Contains(t, out, "<h1>Пользовательское соглашение</h1>")
	assert.Contains(t, out, `<div class="agreement-requisites"><h2>Реквизиты</h2><p><strong>ООО «Бюрократ»</strong></p><p>ИНН 1</p>`)
	assert.Contains(t, out, `href="mailto:info@burokrat.site"`)
	assert.Contains(t, out, `<br><p class="agreement-publication-date">01.01.2025</p>`)
}

func TestResolveMeta(t *testing.T) {
	site := &content.Main{
		Description: "Печати и штампы",
		Keywords:    "печати",
		SiteURL:     "https://burokrat.site",
	}

	m := ResolveMeta(site, "О нас", nil)
	assert.Equal(t, "Печати и штампы", m.Description)
	assert.Equal(t, "О нас", m.OGTitle)
	assert.Equal(t, "https://burokrat.site", m.OGURL)
	assert.Equal(t, "website", m.OGType)

	m = ResolveMeta(site, "О нас", map[string]string{MetaDescription: "Другое", MetaOGType: "article"})
	assert.Equal(t, "Другое", m.Description)
	assert.Equal(t, "article", m.OGType)
	assert.Equal(t, "печати", m.Keywords)
}

func TestWrap(t *testing.T) {
	site := &content.Main{Language: "ru", Description: "Печати"}
	body := []g.Node{g.Text("тело")}
	bare := []LayoutOption{WithHeader(g.Text("шапка")), WithFooter(g.Text("подвал"))}

	out := render(t, Wrap(site, "", body, bare...))
	assert.Contains(t, out, `<html lang="ru">`)
	assert.Contains(t, out, "<title>Бюрократ</title>")
	assert.Contains(t, out, `<main id="main-content" class="container">тело</main>`)
	assert.Contains(t, out, "<header>шапка</header>")
	assert.NotContains(t, out, "sidebar")

	out = render(t, Wrap(site, "Каталог", body, append(bare,
		WithSidebar(g.Text("фильтры")),
		WithMeta(map[string]string{MetaDescription: "Каталог товаров"}),
	)...))
	assert.Contains(t, out, `<div class="sidebar">фильтры</div><div class="main-with-sidebar">тело</div>`)
	assert.Contains(t, out, `<meta name="description" content="Каталог товаров">`)
	assert.Contains(t, out, "<title>Каталог</title>")
}

func TestContactFormFields_OptionalFields(t *testing.T) {
	rec := &content.Contact{Title: "Связаться"}
	rec.Form.Fields.Name = content.Field{Label: "Имя"}
	rec.Form.Fields.Email = content.Field{Label: "Email"}
	rec.Form.Fields.Comment = &content.Field{Label: "Комментарий"}

	out := render(t, ContactFormFields(rec, map[string]string{"name": "Введите имя"}))
	assert.Contains(t, out, `hx-post="/contact/submit"`)
	assert.Contains(t, out, `data-error="Введите имя"`)
	assert.Contains(t, out, `<label for="contact-message">Комментарий</label>`)
	assert.Contains(t, out, `name="message"`)
	assert.NotContains(t, out, `name="phone"`)
	assert.NotContains(t, out, `name="consent"`)

	rec.Form.Fields.Phone = &content.Field{Label: "Телефон"}
	rec.Form.Consent = &content.Consent{LabelPrefix: "Согласен с ", PrivacyLinkText: "политикой", PrivacyLinkHref: "/privacy"}
	out = render(t, ContactFormFields(rec, nil))
	assert.Contains(t, out, `name="phone"`)
	assert.Contains(t, out, `name="consent"`)
	assert.Contains(t, out, `<a href="/privacy">политикой</a>`)
}

func TestContactFragments(t *testing.T) {
	out := render(t, ContactSuccess("", "", "Анна"))
	assert.Equal(t, `<div class="contact-success"><h3>Спасибо!</h3><p>Ваше сообщение получено, Анна.</p></div>`, out)

	out = render(t, ContactSuccess("Готово", "Мы ответим, {name}!", "<b>Олег</b>"))
	assert.Contains(t, out, "Мы ответим, &lt;b&gt;Олег&lt;/b&gt;!")

	assert.Contains(t, render(t, ContactFailure("")), DefaultDeliveryError)

	out = render(t, ContactErrors([]apperrors.FieldError{
		{Field: "name", Message: "Введите имя"},
		{Field: "email", Message: "Неверный email"},
	}))
	assert.Contains(t, out, `<li data-field="name">Введите имя</li><li data-field="email">Неверный email</li>`)
	assert.Contains(t, render(t, RateLimited()), RateLimitedText)
}

func TestPhoneItem(t *testing.T) {
	out := render(t, PhoneItem("+7 (3852) 55-00-00 (бухгалтерия)"))
	assert.Equal(t, `<li><a href="tel:73852550000">+7 (3852) 55-00-00</a><span class="phone-note"> (бухгалтерия)</span></li>`, out)
}

func TestCatalogPages(t *testing.T) {
	rec := &content.CatalogPage{}
	rec.Page.Products.Items = []content.CatalogItem{{Title: "Печать для ООО"}}

	out := render(t, SealsStamps(rec)...)
	assert.Contains(t, out, `src="/assets/images/icon.png"`)
	assert.Contains(t, out, `hx-get="/contact-form"`)
	assert.Contains(t, out, ">Заказать<")
	assert.Contains(t, out, `<div id="modal"></div>`)

	out = render(t, Engraving()...)
	assert.Equal(t, 4, strings.Count(out, "<li"))
}
