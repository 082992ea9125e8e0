// Package examples synthesizes illustrative usage snippets for
// components that ship no official example, and probes published
// documentation for official ones.
package examples

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/amponce/va-design-system-monitor/internal/analysis"
	"github.com/amponce/va-design-system-monitor/internal/types"
)

// Synthesizer generates usage examples from a component record and its
// semantic analysis. Output is recomputed on every call; nothing is
// cached.
type Synthesizer struct {
	logger *slog.Logger
}

// NewSynthesizer creates a synthesizer.
func NewSynthesizer(logger *slog.Logger) *Synthesizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Synthesizer{logger: logger}
}

// Synthesize produces the ordered example list for a component. A Basic
// Usage example is always present; state, accessibility, and form
// variants are appended when the analysis flags them. A failure in any
// single builder drops that example rather than aborting the request.
func (s *Synthesizer) Synthesize(record *types.ComponentRecord, a *analysis.Analysis) []types.Example {
	type builder struct {
		enabled bool
		build   func(*types.ComponentRecord, *analysis.Analysis) types.Example
	}
	builders := []builder{
		{true, s.basicUsage},
		{a.HasStates, s.stateVariation},
		{a.HasAccessibilityEnhancements, s.accessibilityUsage},
		{a.IsFormRelated, s.formUsage},
	}

	var out []types.Example
	for _, b := range builders {
		if !b.enabled {
			continue
		}
		ex, ok := s.safely(record, a, b.build)
		if ok {
			out = append(out, ex)
		}
	}
	return out
}

// safely runs a builder, converting a panic into a skipped example.
func (s *Synthesizer) safely(record *types.ComponentRecord, a *analysis.Analysis,
	build func(*types.ComponentRecord, *analysis.Analysis) types.Example) (ex types.Example, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("example generation failed, omitting example",
				"component", record.Name, "panic", r)
			ok = false
		}
	}()
	return build(record, a), true
}

func (s *Synthesizer) basicUsage(record *types.ComponentRecord, a *analysis.Analysis) types.Example {
	tag := elementTag(record)
	attrs := basicAttributes(record, a)

	var body string
	if p, ok := compositeFor(tag); ok {
		body = "\n" + renderChildren(p)
	}

	return types.Example{
		Title:       "Basic Usage",
		Description: fmt.Sprintf("Standard %s usage", record.Name),
		Code:        renderElement(tag, attrs, body),
		Framework:   "html",
	}
}

func (s *Synthesizer) stateVariation(record *types.ComponentRecord, a *analysis.Analysis) types.Example {
	tag := elementTag(record)
	attrs := basicAttributes(record, a)
	state := a.State[0]
	attrs = setAttr(attrs, state.Name, valueFor(state, a.InferredPurpose))

	return types.Example{
		Title:       "State Variation",
		Description: fmt.Sprintf("%s with the %s state set", record.Name, state.Name),
		Code:        renderElement(tag, attrs, ""),
		Framework:   "html",
	}
}

func (s *Synthesizer) accessibilityUsage(record *types.ComponentRecord, a *analysis.Analysis) types.Example {
	tag := elementTag(record)
	attrs := basicAttributes(record, a)
	for i, prop := range a.Accessibility {
		if i >= 2 {
			break
		}
		attrs = setAttr(attrs, prop.Name, valueFor(prop, a.InferredPurpose))
	}

	return types.Example{
		Title:       "Accessibility Enhanced",
		Description: fmt.Sprintf("%s with explicit accessibility attributes", record.Name),
		Code:        renderElement(tag, attrs, ""),
		Framework:   "html",
	}
}

func (s *Synthesizer) formUsage(record *types.ComponentRecord, a *analysis.Analysis) types.Example {
	tag := elementTag(record)
	attrs := basicAttributes(record, a)
	element := renderElement(tag, attrs, "")

	code := "<form>\n  " + strings.ReplaceAll(element, "\n", "\n  ") +
		"\n  <va-button submit text=\"Submit\"></va-button>\n</form>"

	return types.Example{
		Title:       "Form Context",
		Description: fmt.Sprintf("%s inside a form", record.Name),
		Code:        code,
		Framework:   "html",
	}
}

// attr is a rendered attribute. Boolean true values render as bare
// attribute names.
type attr struct {
	name  string
	value string
	bare  bool
}

// basicAttributes selects which properties appear in an example:
// every required non-event property, plus the content property the
// strategy calls for.
func basicAttributes(record *types.ComponentRecord, a *analysis.Analysis) []attr {
	var attrs []attr
	for _, prop := range record.Properties {
		if prop.Optional || isEventProp(prop) {
			continue
		}
		attrs = appendAttr(attrs, prop, a.InferredPurpose)
	}

	switch a.ContentStrategy {
	case analysis.StrategyVisibleFirst:
		attrs = appendAttr(attrs, a.VisibleText[0], a.InferredPurpose)
	case analysis.StrategyFormLabel, analysis.StrategyAccessibilityOnly:
		if len(a.Accessibility) > 0 {
			attrs = appendAttr(attrs, a.Accessibility[0], a.InferredPurpose)
		}
	}
	return attrs
}

func appendAttr(attrs []attr, prop types.PropertyRecord, purpose analysis.Purpose) []attr {
	for _, existing := range attrs {
		if existing.name == attrName(prop.Name) {
			return attrs
		}
	}
	value := valueFor(prop, purpose)
	return append(attrs, attr{
		name:  attrName(prop.Name),
		value: value,
		bare:  value == "true" && strings.Contains(prop.Type, "boolean"),
	})
}

func setAttr(attrs []attr, name, value string) []attr {
	n := attrName(name)
	for i := range attrs {
		if attrs[i].name == n {
			attrs[i].value = value
			return attrs
		}
	}
	return append(attrs, attr{name: n, value: value, bare: value == "true"})
}

func renderElement(tag string, attrs []attr, body string) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(tag)
	for _, at := range attrs {
		if at.bare {
			b.WriteString(" " + at.name)
			continue
		}
		fmt.Fprintf(&b, " %s=%q", at.name, at.value)
	}
	b.WriteString(">")
	b.WriteString(body)
	b.WriteString("</" + tag + ">")
	return b.String()
}

func isEventProp(prop types.PropertyRecord) bool {
	return strings.HasPrefix(strings.ToLower(prop.Name), "on") ||
		strings.Contains(prop.Type, "=>") || strings.Contains(prop.Type, "Event")
}

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// attrName converts a camelCase property name to its kebab-case
// attribute form.
func attrName(name string) string {
	return strings.ToLower(camelBoundary.ReplaceAllString(name, "${1}-${2}"))
}

// elementTag returns the component's custom element tag, deriving one
// from the interface name when the declaration file carried no mapping
// entry.
func elementTag(record *types.ComponentRecord) string {
	if record.TagName != "" {
		return record.TagName
	}
	return attrName(record.InterfaceName)
}
