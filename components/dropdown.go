package components

import (
	"fmt"
	"sort"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Option is the one shape the dropdown renders. Data keys become data-*
// attributes on the option.
type Option struct {
	Value string
	Label string
	Data  map[string]string
}

// NormalizeOptions accepts records (Option or map with value/label/data_*
// keys), pairs ([2]any, [2]string or a slice of at least two) and bare
// scalars, and returns them as Options.
func NormalizeOptions(raw []any) []Option {
	out := make([]Option, 0, len(raw))
	for _, r := range raw {
		out = append(out, normalizeOption(r))
	}
	return out
}

func normalizeOption(r any) Option {
	switch v := r.(type) {
	case Option:
		return v
	case map[string]any:
		o := Option{Value: str(v["value"])}
		if l, ok := v["label"]; ok {
			o.Label = str(l)
		} else {
			o.Label = o.Value
		}
		for k, val := range v {
			if strings.HasPrefix(k, "data_") {
				if o.Data == nil {
					o.Data = make(map[string]string)
				}
				o.Data[strings.TrimPrefix(k, "data_")] = str(val)
			}
		}
		return o
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[k] = val
		}
		return normalizeOption(m)
	case [2]any:
		return Option{Value: str(v[0]), Label: str(v[1])}
	case [2]string:
		return Option{Value: v[0], Label: v[1]}
	case []any:
		if len(v) >= 2 {
			return Option{Value: str(v[0]), Label: str(v[1])}
		}
	case []string:
		if len(v) >= 2 {
			return Option{Value: v[0], Label: v[1]}
		}
	}
	s := str(r)
	return Option{Value: s, Label: s}
}

func str(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// DropdownConfig configures Dropdown. Selected is compared to each option
// value as a string; nil selects nothing.
type DropdownConfig struct {
	Options     []Option
	Selected    any
	ID          string
	Name        string
	Label       string
	Placeholder string
	OnChange    string
	Required    bool
	Disabled    bool
	Variant     string // default, primary, minimal, bordered
	Size        string // small, medium, large
	Width       string // short, medium, long; wins over FullWidth
	FullWidth   bool
	Class       string
}

// Dropdown renders a styled select with a chevron, wrapped in a labelled
// field when Label is set. With neither options nor placeholder it renders
// nothing.
func Dropdown(cfg DropdownConfig) g.Node {
	variant := firstNonEmpty(cfg.Variant, "default")
	size := firstNonEmpty(cfg.Size, "medium")

	var selected string
	hasSelected := cfg.Selected != nil
	if hasSelected {
		selected = str(cfg.Selected)
	}

	opts := make([]g.Node, 0, len(cfg.Options)+1)
	if cfg.Placeholder != "" {
		opts = append(opts, h.Option(h.Value(""), h.Disabled(), g.If(!hasSelected, h.Selected()), g.Text(cfg.Placeholder)))
	}
	for _, o := range cfg.Options {
		opts = append(opts, h.Option(
			h.Value(o.Value),
			g.If(hasSelected && o.Value == selected, h.Selected()),
			dataAttrs(o.Data),
			g.Text(o.Label),
		))
	}
	if len(opts) == 0 {
		return nil
	}

	selectClass := joinClasses("dropdown-select", "dropdown-"+variant, "dropdown-"+size, cfg.Class)
	sel := h.Select(h.Class(selectClass),
		g.If(cfg.ID != "", h.ID(cfg.ID)),
		g.If(cfg.Name != "", h.Name(cfg.Name)),
		g.If(cfg.OnChange != "", g.Attr("onchange", cfg.OnChange)),
		g.If(cfg.Required, h.Required()),
		g.If(cfg.Disabled, h.Disabled()),
		g.Group(opts),
	)

	var widthClass string
	switch {
	case cfg.Width != "":
		widthClass = "dropdown-width-" + cfg.Width
	case cfg.FullWidth:
		widthClass = "dropdown-full-width"
	}
	wrapper := h.Div(h.Class(joinClasses("dropdown-wrapper", widthClass)),
		sel,
		h.Div(h.Class("dropdown-icon"), g.Raw(chevronSVG)),
	)

	if cfg.Label == "" {
		return wrapper
	}
	return h.Div(h.Class("dropdown-field"),
		g.El("label", g.If(cfg.ID != "", g.Attr("for", cfg.ID)), h.Class("dropdown-label"),
			g.Text(cfg.Label), g.If(cfg.Required, g.Text(" *")),
		),
		wrapper,
	)
}

// dataAttrs renders data-* attributes in key order so output is stable.
func dataAttrs(data map[string]string) g.Node {
	if len(data) == 0 {
		return nil
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make(g.Group, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, g.Attr("data-"+strings.ReplaceAll(k, "_", "-"), data[k]))
	}
	return attrs
}

func joinClasses(classes ...string) string {
	out := classes[:0:0]
	for _, c := range classes {
		if c != "" {
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}
