package examples

import (
	"strings"

	"github.com/amponce/va-design-system-monitor/internal/analysis"
	"github.com/amponce/va-design-system-monitor/internal/types"
)

// arrayLiteral maps recognized array property names to a canned
// structured literal. Unrecognized arrays get an empty literal.
type arrayLiteral struct {
	pattern string
	value   string
}

var arrayLiterals = []arrayLiteral{
	{"breadcrumb", `[{"href": "/", "label": "Home"}, {"href": "/current", "label": "Current page"}]`},
	{"columns", `[{"label": "Name", "value": "name"}, {"label": "Status", "value": "status"}]`},
	{"options", `[{"label": "Option one", "value": "1"}, {"label": "Option two", "value": "2"}]`},
	{"items", `[{"label": "Item one", "value": "1"}, {"label": "Item two", "value": "2"}]`},
	{"data", `[{"label": "Row one", "value": "1"}]`},
}

// purposeLiteral maps (purpose, property-name pattern) to a literal.
type purposeLiteral struct {
	purpose analysis.Purpose
	pattern string
	value   string
}

var purposeLiterals = []purposeLiteral{
	{analysis.PurposeAction, "text", "Take action"},
	{analysis.PurposeAction, "label", "Take action"},
	{analysis.PurposeInput, "label", "Email address"},
	{analysis.PurposeNotification, "headline", "Attention"},
	{analysis.PurposeNotification, "message", "We updated our records."},
	{analysis.PurposeNotification, "text", "We updated our records."},
	{analysis.PurposeNavigation, "text", "Learn more"},
	{analysis.PurposeNavigation, "label", "Learn more"},
	{analysis.PurposeNavigation, "href", "/resources"},
	{analysis.PurposeContainer, "headline", "Section heading"},
}

// valueFor generates a contextual attribute value for a property.
// Generation is ordered: recognized array literals, union alternatives,
// purpose-specific literals, then type-based fallback.
func valueFor(prop types.PropertyRecord, purpose analysis.Purpose) string {
	name := strings.ToLower(prop.Name)
	typ := strings.TrimSpace(prop.Type)

	if isArrayType(typ) {
		for _, lit := range arrayLiterals {
			if strings.Contains(name, lit.pattern) {
				return lit.value
			}
		}
		return "[]"
	}

	if alt, ok := firstUnionLiteral(typ); ok {
		return alt
	}

	for _, lit := range purposeLiterals {
		if lit.purpose == purpose && strings.Contains(name, lit.pattern) {
			return lit.value
		}
	}

	return fallbackValue(name, typ)
}

func isArrayType(typ string) bool {
	return strings.HasSuffix(typ, "[]") || strings.HasPrefix(typ, "Array<")
}

// firstUnionLiteral returns the first non-empty, non-undefined quoted
// alternative of a union type. Unions of bare type names (for example
// "string | undefined") carry no usable literal and fall through to the
// type-based fallback.
func firstUnionLiteral(typ string) (string, bool) {
	if !strings.Contains(typ, "|") {
		return "", false
	}
	for _, alt := range strings.Split(typ, "|") {
		alt = strings.TrimSpace(alt)
		if alt == "" || alt == "undefined" || alt == "null" {
			continue
		}
		if len(alt) >= 2 && (alt[0] == '"' || alt[0] == '\'') {
			return strings.Trim(alt, `"'`), true
		}
		return "", false
	}
	return "", false
}

// fallbackValue produces a type-based value when no contextual rule
// applies.
func fallbackValue(name, typ string) string {
	base := strings.TrimSuffix(strings.TrimSpace(strings.Split(typ, "|")[0]), ";")
	switch base {
	case "boolean":
		return "true"
	case "number":
		return numberFor(name)
	case "object":
		return "{}"
	}
	switch {
	case strings.Contains(name, "href"), strings.Contains(name, "url"), strings.Contains(name, "src"):
		return "https://www.va.gov"
	case strings.Contains(name, "label"):
		return "Descriptive label"
	case strings.Contains(name, "name"):
		return "example-name"
	case strings.Contains(name, "value"):
		return "example-value"
	case strings.Contains(name, "id"):
		return "example-id"
	}
	return "Example text"
}

// numberFor picks a small integer appropriate for the property name.
func numberFor(name string) string {
	switch {
	case strings.Contains(name, "level"):
		return "2"
	case strings.Contains(name, "max"), strings.Contains(name, "limit"),
		strings.Contains(name, "count"), strings.Contains(name, "total"):
		return "5"
	}
	return "1"
}
