package examples

import (
	"fmt"
	"strings"
)

// ChildProp is an attribute template for a generated child element.
// Value templates may contain %d, substituted with the 1-based child
// index.
type ChildProp struct {
	Name  string
	Value string
}

// CompositePattern declares a component family whose meaningful usage
// requires generated child elements. Patterns match on the tag name
// suffix.
type CompositePattern struct {
	Suffix   string
	ChildTag string
	Count    int
	Props    []ChildProp
	Inner    string // optional inner text template, may contain %d
	Purpose  string
}

// compositePatterns is a declarative table, matched first-suffix-wins.
var compositePatterns = []CompositePattern{
	{
		Suffix:   "radio",
		ChildTag: "va-radio-option",
		Count:    3,
		Props: []ChildProp{
			{Name: "label", Value: "Option %d"},
			{Name: "name", Value: "group"},
			{Name: "value", Value: "%d"},
		},
		Purpose: "single choice selection",
	},
	{
		Suffix:   "checkbox-group",
		ChildTag: "va-checkbox",
		Count:    3,
		Props: []ChildProp{
			{Name: "label", Value: "Option %d"},
			{Name: "name", Value: "group"},
		},
		Purpose: "multiple choice selection",
	},
	{
		Suffix:   "accordion",
		ChildTag: "va-accordion-item",
		Count:    2,
		Props: []ChildProp{
			{Name: "header", Value: "Section %d"},
		},
		Inner:   "Content for section %d.",
		Purpose: "collapsible sections",
	},
	{
		Suffix:   "select",
		ChildTag: "option",
		Count:    3,
		Props: []ChildProp{
			{Name: "value", Value: "%d"},
		},
		Inner:   "Option %d",
		Purpose: "dropdown selection",
	},
	{
		Suffix:   "breadcrumbs",
		ChildTag: "a",
		Count:    2,
		Props: []ChildProp{
			{Name: "href", Value: "/level-%d"},
		},
		Inner:   "Level %d",
		Purpose: "navigation trail",
	},
}

// compositeFor returns the composite pattern matching tag, if any.
func compositeFor(tag string) (CompositePattern, bool) {
	for _, p := range compositePatterns {
		if strings.HasSuffix(tag, p.Suffix) {
			return p, true
		}
	}
	return CompositePattern{}, false
}

// renderChildren generates the declared child elements for a composite
// pattern, indented one level.
func renderChildren(p CompositePattern) string {
	var b strings.Builder
	for i := 1; i <= p.Count; i++ {
		b.WriteString("  <")
		b.WriteString(p.ChildTag)
		for _, prop := range p.Props {
			fmt.Fprintf(&b, " %s=%q", prop.Name, expand(prop.Value, i))
		}
		b.WriteString(">")
		if p.Inner != "" {
			b.WriteString(expand(p.Inner, i))
		}
		b.WriteString("</")
		b.WriteString(p.ChildTag)
		b.WriteString(">\n")
	}
	return b.String()
}

func expand(template string, i int) string {
	if strings.Contains(template, "%d") {
		return fmt.Sprintf(template, i)
	}
	return template
}
