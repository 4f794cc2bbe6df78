package content

import (
	"github.com/shopspring/decimal"
)

// Record names, one YAML file each under the content directory.
const (
	RecordMain             = "main_page"
	RecordAbout            = "about"
	RecordContact          = "contact"
	RecordPrivacy          = "privacy"
	RecordAgreement        = "agreement"
	RecordClients          = "clients"
	RecordSealsStamps      = "seals_stamps"
	RecordSelfInkingStamps = "self_inking_stamps"
	RecordStationery       = "stationery"
	RecordProducts         = "products_services"
	RecordFeatured         = "featured_products"
	RecordShopCategories   = "shop_categories"
)

// Main is the site-wide record: SEO defaults, navigation, company details and
// the labels used by the header, footer and home page.
type Main struct {
	Title        string      `yaml:"title" validate:"required"`
	Description  string      `yaml:"description"`
	Keywords     string      `yaml:"keywords"`
	Language     string      `yaml:"language"`
	SiteURL      string      `yaml:"site_url"`
	CanonicalURL string      `yaml:"canonical_url"`
	MetaTags     MetaTags    `yaml:"meta_tags"`
	Navigation   Navigation  `yaml:"navigation"`
	CompanyInfo  CompanyInfo `yaml:"company_info"`
	ContactInfo  ContactInfo `yaml:"contact_info"`
	Footer       Footer      `yaml:"footer"`
	Hero         Hero        `yaml:"hero"`
	FAQ          FAQ         `yaml:"faq"`
}

type MetaTags struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
	Type        string `yaml:"type"`
}

type Navigation struct {
	MainMenu []MenuItem `yaml:"main_menu" validate:"required,min=1,dive"`
}

type MenuItem struct {
	Label       string `yaml:"label" validate:"required"`
	URL         string `yaml:"url" validate:"required"`
	Image       string `yaml:"image"`
	Description string `yaml:"description"`
}

type CompanyInfo struct {
	Name             string        `yaml:"name" validate:"required"`
	Items            []CompanyItem `yaml:"items"`
	Phones           []string      `yaml:"phones"`
	Emails           []string      `yaml:"emails"`
	Addresses        Addresses     `yaml:"addresses"`
	SocialMediaLinks []SocialLink  `yaml:"social_media_links"`
}

type Addresses struct {
	Store  Location `yaml:"socialist_location"`
	Office Location `yaml:"builders_location"`
}

type Location struct {
	Address      string       `yaml:"address"`
	WorkingHours WorkingHours `yaml:"working_hours"`
}

type WorkingHours struct {
	Monday    string `yaml:"monday"`
	Tuesday   string `yaml:"tuesday"`
	Wednesday string `yaml:"wednesday"`
	Thursday  string `yaml:"thursday"`
	Friday    string `yaml:"friday"`
	Saturday  string `yaml:"saturday"`
	Sunday    string `yaml:"sunday"`
}

type SocialLink struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// ContactInfo holds the section labels of the contact-info block.
type ContactInfo struct {
	Sections struct {
		Phones struct {
			Title string `yaml:"title"`
		} `yaml:"phones"`
		Addresses struct {
			Title  string      `yaml:"title"`
			Store  PlaceLabels `yaml:"store"`
			Office PlaceLabels `yaml:"office"`
		} `yaml:"addresses"`
	} `yaml:"sections"`
}

type PlaceLabels struct {
	Label             string `yaml:"label"`
	WorkingHoursLabel string `yaml:"working_hours_label"`
}

type Footer struct {
	Sections struct {
		Phones struct {
			Title string `yaml:"title"`
		} `yaml:"phones"`
		Email struct {
			Title string `yaml:"title"`
		} `yaml:"email"`
		Addresses struct {
			Title             string `yaml:"title"`
			StoreLabel        string `yaml:"store_label"`
			OfficeLabel       string `yaml:"office_label"`
			WorkingHoursLabel string `yaml:"working_hours_label"`
		} `yaml:"addresses"`
	} `yaml:"sections"`
	Copyright Copyright `yaml:"copyright"`
}

type Copyright struct {
	Year          string `yaml:"year"`
	Separator     string `yaml:"separator"`
	PrivacyLink   Link   `yaml:"privacy_link"`
	AgreementLink *Link  `yaml:"agreement_link"`
}

type Link struct {
	Text string `yaml:"text"`
	URL  string `yaml:"url"`
}

type Hero struct {
	Badge     string     `yaml:"badge"`
	Title     string     `yaml:"title"`
	Highlight string     `yaml:"highlight"`
	Subtitle  string     `yaml:"subtitle"`
	Image     string     `yaml:"image"`
	Stats     []HeroStat `yaml:"stats"`
}

type HeroStat struct {
	Number string `yaml:"number"`
	Label  string `yaml:"label"`
}

type FAQ struct {
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle"`
	Items    []FAQItem `yaml:"items" validate:"dive"`
}

type FAQItem struct {
	Question string `yaml:"question" validate:"required"`
	Answer   string `yaml:"answer"`
}

// About is the about-us page record.
type About struct {
	Title string `yaml:"title" validate:"required"`
	Hero  struct {
		Heading  string `yaml:"heading"`
		Subtitle string `yaml:"subtitle"`
	} `yaml:"hero"`
	Story     Story     `yaml:"story"`
	Stats     []Stat    `yaml:"stats"`
	Expertise Expertise `yaml:"expertise"`
	Values    Values    `yaml:"values"`
	Locations Locations `yaml:"locations"`
	CTA       CTA       `yaml:"cta"`
}

type Story struct {
	Heading    string   `yaml:"heading"`
	Paragraphs []string `yaml:"paragraphs"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Expertise struct {
	Heading string          `yaml:"heading"`
	Items   []ExpertiseItem `yaml:"items"`
}

type ExpertiseItem struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Values struct {
	Heading string      `yaml:"heading"`
	Items   []ValueItem `yaml:"items"`
}

type ValueItem struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Locations struct {
	Heading  string   `yaml:"heading"`
	Subtitle string   `yaml:"subtitle"`
	Offices  []Office `yaml:"offices"`
}

type Office struct {
	Icon        string `yaml:"icon"`
	Name        string `yaml:"name"`
	Address     string `yaml:"address"`
	Description string `yaml:"description"`
	Hours       struct {
		Weekdays string `yaml:"weekdays"`
		Weekend  string `yaml:"weekend"`
	} `yaml:"hours"`
	MapsQuery string `yaml:"maps_query"`
}

type CTA struct {
	Heading     string      `yaml:"heading"`
	Description string      `yaml:"description"`
	Buttons     []CTAButton `yaml:"buttons"`
}

type CTAButton struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
	Type  string `yaml:"type"`
}

// Contact configures the contact page and the contact form.
type Contact struct {
	Title     string      `yaml:"title" validate:"required"`
	Intro     string      `yaml:"intro"`
	PageTitle string      `yaml:"page_title"`
	Form      ContactForm `yaml:"form"`
	Success   struct {
		Title           string `yaml:"title"`
		MessageTemplate string `yaml:"message_template"`
	} `yaml:"success"`
	Errors struct {
		Delivery string `yaml:"delivery"`
	} `yaml:"errors"`
}

type ContactForm struct {
	Fields      FormFields `yaml:"fields"`
	Consent     *Consent   `yaml:"consent"`
	SubmitLabel string     `yaml:"submit_label"`
}

// FormFields lists the configured inputs. Optional inputs are rendered only
// when their block is present.
type FormFields struct {
	Name    Field  `yaml:"name"`
	Email   Field  `yaml:"email"`
	Message *Field `yaml:"message"`
	Comment *Field `yaml:"comment"`
	Phone   *Field `yaml:"phone"`
	Subject *Field `yaml:"subject"`
	Company *Field `yaml:"company"`
}

// MessageField returns the message block, accepting the older "comment" key.
func (f FormFields) MessageField() Field {
	if f.Message != nil {
		return *f.Message
	}
	if f.Comment != nil {
		return *f.Comment
	}
	return Field{}
}

type Field struct {
	Label       string `yaml:"label"`
	Placeholder string `yaml:"placeholder"`
	Error       string `yaml:"error"`
}

type Consent struct {
	LabelPrefix     string `yaml:"label_prefix"`
	PrivacyLinkText string `yaml:"privacy_link_text"`
	PrivacyLinkHref string `yaml:"privacy_link_href"`
	Error           string `yaml:"error"`
}

type Privacy struct {
	Title    string        `yaml:"title" validate:"required"`
	Intro    string        `yaml:"intro"`
	Sections []TextSection `yaml:"sections"`
}

// TextSection is a heading followed by paragraphs; ID becomes the anchor.
type TextSection struct {
	ID         string   `yaml:"id"`
	Heading    string   `yaml:"heading"`
	Paragraphs []string `yaml:"paragraphs"`
}

type Clients struct {
	Title    string        `yaml:"title" validate:"required"`
	Intro    string        `yaml:"intro"`
	Sections []TextSection `yaml:"sections"`
}

type Agreement struct {
	Title    string             `yaml:"title"`
	Preamble string             `yaml:"preamble"`
	Sections []AgreementSection `yaml:"sections"`
	Footer   struct {
		Requisites      Requisites `yaml:"requisites"`
		PublicationDate string     `yaml:"publication_date"`
	} `yaml:"footer"`
}

type AgreementSection struct {
	Heading string   `yaml:"heading"`
	Clauses []Clause `yaml:"clauses"`
}

type Clause struct {
	Text       string   `yaml:"text"`
	Items      []string `yaml:"items"`
	Conclusion string   `yaml:"conclusion"`
}

type Requisites struct {
	CompanyName string `yaml:"company_name"`
	INN         string `yaml:"inn"`
	KPP         string `yaml:"kpp"`
	OGRN        string `yaml:"ogrn"`
	Address     string `yaml:"address"`
	Email       string `yaml:"email"`
}

// CatalogPage backs the seals, self-inking stamps and stationery pages.
type CatalogPage struct {
	Title string `yaml:"title"`
	Page  struct {
		Intro struct {
			Heading     string `yaml:"heading"`
			Description string `yaml:"description"`
		} `yaml:"intro"`
		Products struct {
			SectionTitle string        `yaml:"section_title"`
			Description  string        `yaml:"description"`
			Items        []CatalogItem `yaml:"items"`
		} `yaml:"products"`
		Categories struct {
			SectionTitle string        `yaml:"section_title"`
			Items        []CatalogItem `yaml:"items"`
		} `yaml:"categories"`
	} `yaml:"page"`
}

type CatalogItem struct {
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	Image        string `yaml:"image"`
	ButtonText   string `yaml:"button_text"`
	ButtonAction string `yaml:"button_action"`
}

// Products holds the labels of the products page and the seed rows the
// catalog importer loads into the database.
type Products struct {
	Title             string `yaml:"title" validate:"required"`
	PageTitle         string `yaml:"page_title"`
	PageSubtitle      string `yaml:"page_subtitle"`
	FiltersTitle      string `yaml:"filters_title"`
	CategoriesTitle   string `yaml:"categories_title"`
	PriceRangeTitle   string `yaml:"price_range_title"`
	InStockOnly       string `yaml:"in_stock_only"`
	ClearFilters      string `yaml:"clear_filters"`
	SearchPlaceholder string `yaml:"search_placeholder"`
	SortLabel         string `yaml:"sort_label"`
	ShowingText       string `yaml:"showing_text"`
	OfText            string `yaml:"of_text"`
	ProductsText      string `yaml:"products_text"`
	AddToCartText     string `yaml:"add_to_cart_text"`

	Categories []CategorySeed `yaml:"categories" validate:"dive"`
	Products   []ProductSeed  `yaml:"products" validate:"dive"`
}

type CategorySeed struct {
	ID      string `yaml:"id" validate:"required"`
	Name    string `yaml:"name"`
	Checked bool   `yaml:"checked"`
}

type ProductSeed struct {
	ID          int64           `yaml:"id" validate:"required"`
	Name        string          `yaml:"name" validate:"required"`
	Category    string          `yaml:"category"`
	Price       decimal.Decimal `yaml:"price"`
	Image       string          `yaml:"image"`
	Rating      decimal.Decimal `yaml:"rating"`
	Reviews     int             `yaml:"reviews" validate:"gte=0"`
	Badge       string          `yaml:"badge"`
	InStock     *bool           `yaml:"in_stock"`
	Description string          `yaml:"description"`
}

type Featured struct {
	Title         string        `yaml:"title"`
	Subtitle      string        `yaml:"subtitle"`
	CTAText       string        `yaml:"cta_text"`
	CTAURL        string        `yaml:"cta_url"`
	AddToCartText string        `yaml:"add_to_cart_text"`
	Products      []FeaturedRef `yaml:"products"`
}

// FeaturedRef marks a product id as featured.
type FeaturedRef struct {
	ID int64 `yaml:"id"`
}

type ShopCategories struct {
	Title      string         `yaml:"title"`
	Subtitle   string         `yaml:"subtitle"`
	Categories []ShopCategory `yaml:"categories" validate:"dive"`
}

type ShopCategory struct {
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Color       string `yaml:"color"`
	URL         string `yaml:"url"`
}
