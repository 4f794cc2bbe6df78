package content

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type CompanyItemKind int

const (
	// ItemText is a bare scalar line.
	ItemText CompanyItemKind = iota
	// ItemLabel is a {label: ...} record; the first one is the footer highlight.
	ItemLabel
	// ItemGroup is {<key>: title, items: [{anchor: text}, ...]}.
	ItemGroup
)

// CompanyItem is one line of company_info.items.
type CompanyItem struct {
	Kind  CompanyItemKind
	Text  string
	Key   string
	Links []AnchorLink
}

// AnchorLink points at a section of the clients page.
type AnchorLink struct {
	Anchor string
	Text   string
}

func (it *CompanyItem) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		*it = CompanyItem{Kind: ItemText, Text: n.Value}
		return nil
	case yaml.MappingNode:
	default:
		return fmt.Errorf("line %d: company item must be a string or a mapping", n.Line)
	}

	var items *yaml.Node
	var titleKey, title string
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		switch {
		case k.Value == "label":
			*it = CompanyItem{Kind: ItemLabel, Text: v.Value}
			return nil
		case k.Value == "items":
			items = v
		case titleKey == "":
			if v.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: group title %q must be a string", v.Line, k.Value)
			}
			titleKey, title = k.Value, v.Value
		}
	}
	if titleKey == "" {
		return fmt.Errorf("line %d: company item group has no title key", n.Line)
	}

	*it = CompanyItem{Kind: ItemGroup, Key: titleKey, Text: title}
	if items == nil {
		return nil
	}
	if items.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: group items must be a list", items.Line)
	}
	for _, entry := range items.Content {
		// Each entry is a single-key mapping; anything else is skipped.
		if entry.Kind != yaml.MappingNode || len(entry.Content) < 2 {
			continue
		}
		it.Links = append(it.Links, AnchorLink{
			Anchor: entry.Content[0].Value,
			Text:   entry.Content[1].Value,
		})
	}
	return nil
}

// Highlight returns the first label item and the items that follow it.
func (c CompanyInfo) Highlight() (string, []CompanyItem) {
	rest := make([]CompanyItem, 0, len(c.Items))
	var label string
	found := false
	for _, it := range c.Items {
		if !found && it.Kind == ItemLabel {
			label, found = it.Text, true
			continue
		}
		rest = append(rest, it)
	}
	return label, rest
}
