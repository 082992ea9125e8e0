// Package parser turns the raw component declaration document into
// structured component records. The document is a narrow, known dialect
// of TypeScript: documentation comment blocks carrying @-tags, followed
// by interface blocks listing properties, plus tag-name mapping entries
// in an element map. The package scans text; it is not a grammar parser.
package parser

import (
	"regexp"
	"strings"
)

// RawComponent is one extracted comment+interface pairing before
// classification.
type RawComponent struct {
	Name             string
	InterfaceName    string
	TagName          string
	MaturityCategory string
	MaturityLevel    string
	GuidanceHref     string
	Translations     []string
	Body             string
}

var (
	interfaceRe = regexp.MustCompile(`(?m)^\s*interface\s+([A-Za-z_][A-Za-z0-9_]*)\s*\{`)
	commentRe   = regexp.MustCompile(`(?s)/\*\*.*?\*/`)
	tagEntryRe  = regexp.MustCompile(`(?m)^\s*["']([a-z][a-z0-9-]*)["']\s*:\s*([A-Za-z_][A-Za-z0-9_]*)\s*;`)

	componentNameRe    = regexp.MustCompile(`(?m)^\s*\*?\s*@componentName\s+(.+)$`)
	maturityCategoryRe = regexp.MustCompile(`(?m)^\s*\*?\s*@maturityCategory\s+(\S+)`)
	maturityLevelRe    = regexp.MustCompile(`(?m)^\s*\*?\s*@maturityLevel\s+(\S+)`)
	guidanceHrefRe     = regexp.MustCompile(`(?m)^\s*\*?\s*@guidanceHref\s+(\S+)`)
	translationsRe     = regexp.MustCompile(`(?m)^\s*\*?\s*@translations\s+(.+)$`)
)

// CommentMatcher selects the documentation comment associated with an
// interface block starting at the given offset, returning the
// comment's span in raw. The default is the nearest-preceding-comment
// heuristic; a stricter matcher (for example one requiring immediate
// adjacency) can be substituted without touching callers.
type CommentMatcher func(raw string, interfaceStart int) (start, end int, ok bool)

// NearestPrecedingComment returns the span of the last documentation
// comment block that ends before the interface start offset. The
// dialect is expected to place each component's comment directly ahead
// of its interface; an unrelated intervening comment would silently
// attach the wrong metadata, which is why the matcher is replaceable.
func NearestPrecedingComment(raw string, interfaceStart int) (int, int, bool) {
	start, end := -1, -1
	for _, loc := range commentRe.FindAllStringIndex(raw, -1) {
		if loc[1] > interfaceStart {
			break
		}
		start, end = loc[0], loc[1]
	}
	return start, end, start >= 0
}

// Extractor extracts component records from raw declaration text.
type Extractor struct {
	match CommentMatcher
}

// NewExtractor creates an extractor using the nearest-preceding-comment
// heuristic.
func NewExtractor() *Extractor {
	return &Extractor{match: NearestPrecedingComment}
}

// NewExtractorWithMatcher creates an extractor with a custom comment
// matcher.
func NewExtractorWithMatcher(m CommentMatcher) *Extractor {
	return &Extractor{match: m}
}

// ExtractComponents scans raw for annotated interface blocks. A block
// whose comment is missing any of the required tags (componentName,
// maturityCategory, maturityLevel) is dropped entirely. A second pass
// back-fills tag names from element-map entries; entries naming an
// unknown interface are ignored.
func (e *Extractor) ExtractComponents(raw string) []*RawComponent {
	var components []*RawComponent
	byInterface := make(map[string]*RawComponent)
	usedComments := make(map[int]bool)

	for _, loc := range interfaceRe.FindAllStringSubmatchIndex(raw, -1) {
		name := raw[loc[2]:loc[3]]
		body, ok := blockBody(raw, loc[1]-1)
		if !ok {
			continue
		}
		start, end, ok := e.match(raw, loc[0])
		if !ok || usedComments[start] {
			// Each comment annotates at most one block; a later
			// un-annotated interface must not inherit it.
			continue
		}
		usedComments[start] = true
		rc := componentFromComment(raw[start:end])
		if rc == nil {
			continue
		}
		rc.InterfaceName = name
		rc.Body = body
		components = append(components, rc)
		byInterface[name] = rc
	}

	for _, m := range tagEntryRe.FindAllStringSubmatch(raw, -1) {
		if rc, ok := byInterface[m[2]]; ok && rc.TagName == "" {
			rc.TagName = m[1]
		}
	}
	return components
}

// componentFromComment extracts @-tags from a documentation comment.
// Returns nil when any required tag is absent.
func componentFromComment(comment string) *RawComponent {
	name := firstMatch(componentNameRe, comment)
	category := firstMatch(maturityCategoryRe, comment)
	level := firstMatch(maturityLevelRe, comment)
	if name == "" || category == "" || level == "" {
		return nil
	}
	rc := &RawComponent{
		Name:             name,
		MaturityCategory: category,
		MaturityLevel:    level,
		GuidanceHref:     firstMatch(guidanceHrefRe, comment),
	}
	for _, m := range translationsRe.FindAllStringSubmatch(comment, -1) {
		rc.Translations = append(rc.Translations, strings.TrimSpace(m[1]))
	}
	return rc
}

func firstMatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// blockBody returns the text between the opening brace at openBrace and
// its matching closing brace, exclusive of both.
func blockBody(raw string, openBrace int) (string, bool) {
	depth := 0
	for i := openBrace; i < len(raw); i++ {
		switch raw[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[openBrace+1 : i], true
			}
		}
	}
	return "", false
}
