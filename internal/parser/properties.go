package parser

import (
	"regexp"
	"strings"

	"github.com/amponce/va-design-system-monitor/internal/types"
)

var propertyRe = regexp.MustCompile(`^\s*"?([A-Za-z_$][A-Za-z0-9_$-]*)"?(\?)?\s*:\s*(.+?);?\s*$`)

// ParseProperties walks an interface body line by line, pairing each
// property declaration with the documentation comment text accumulated
// immediately above it. Blank lines reset the accumulated comment;
// lines matching neither shape (stray braces, decorators) are ignored.
func ParseProperties(body string) []types.PropertyRecord {
	var props []types.PropertyRecord
	var comment []string

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			comment = comment[:0]
			continue
		}
		if text, ok := commentText(trimmed); ok {
			if text != "" {
				comment = append(comment, text)
			}
			continue
		}
		if m := propertyRe.FindStringSubmatch(line); m != nil {
			props = append(props, types.PropertyRecord{
				Name:        m[1],
				Type:        strings.TrimSpace(m[3]),
				Optional:    m[2] == "?",
				Description: strings.Join(comment, " "),
			})
			comment = comment[:0]
		}
	}
	return props
}

// commentText reports whether trimmed is part of a documentation
// comment and returns its text content with markers stripped.
func commentText(trimmed string) (string, bool) {
	switch {
	case strings.HasPrefix(trimmed, "/**"):
		inner := strings.TrimPrefix(trimmed, "/**")
		inner = strings.TrimSuffix(inner, "*/")
		return strings.TrimSpace(inner), true
	case strings.HasPrefix(trimmed, "*/"):
		return "", true
	case strings.HasPrefix(trimmed, "*"):
		return strings.TrimSpace(strings.TrimPrefix(trimmed, "*")), true
	case strings.HasPrefix(trimmed, "//"):
		return strings.TrimSpace(strings.TrimPrefix(trimmed, "//")), true
	}
	return "", false
}
