// Package analysis infers the semantic role of component properties
// purely from their names and types, and derives an overall purpose and
// content strategy for the component. All rules are ordered, data-driven
// tables so new patterns are additive and independently testable.
package analysis

import (
	"strings"

	"github.com/amponce/va-design-system-monitor/internal/types"
)

// Purpose is the inferred high-level role of a component.
type Purpose string

const (
	PurposeAction       Purpose = "action"
	PurposeInput        Purpose = "input"
	PurposeNotification Purpose = "notification"
	PurposeNavigation   Purpose = "navigation"
	PurposeContainer    Purpose = "container"
	PurposeData         Purpose = "data"
	PurposeGeneral      Purpose = "general"
)

// ContentStrategy selects how synthesized examples supply user-visible
// content for the component.
type ContentStrategy string

const (
	StrategyVisibleFirst      ContentStrategy = "visible-first"
	StrategyFormLabel         ContentStrategy = "form-label"
	StrategyAccessibilityOnly ContentStrategy = "accessibility-only"
	StrategyMinimal           ContentStrategy = "minimal"
)

// Analysis is the per-request semantic breakdown of a component. It is
// recomputed on every synthesis request and never persisted.
type Analysis struct {
	VisibleText   []types.PropertyRecord
	Accessibility []types.PropertyRecord
	State         []types.PropertyRecord
	Configuration []types.PropertyRecord
	Events        []types.PropertyRecord
	Slots         []types.PropertyRecord

	HasStates                    bool
	HasConditionalContent        bool
	HasAccessibilityEnhancements bool
	HasSlots                     bool
	IsFormRelated                bool
	IsInteractive                bool

	InferredPurpose Purpose
	ContentStrategy ContentStrategy
}

// role identifies a property bucket.
type role int

const (
	roleVisibleText role = iota
	roleAccessibility
	roleState
	roleConfiguration
	roleEvent
	roleSlot
	roleNone
)

// rolePredicate tests a property by lowercase name and raw type text.
type rolePredicate struct {
	role  role
	match func(name, typ string) bool
}

// rolePredicates is evaluated in priority order; the first match wins
// and a property lands in exactly one bucket. Properties matching no
// predicate stay out of every bucket but remain in the record's
// property list.
var rolePredicates = []rolePredicate{
	{roleVisibleText, func(name, _ string) bool {
		// aria-label and friends carry text for assistive tech, not
		// for the screen; they belong to the accessibility bucket.
		if isAccessibilityName(name) {
			return false
		}
		return hasAny(name, "text", "label", "headline", "header", "heading",
			"title", "message", "description")
	}},
	{roleAccessibility, func(name, _ string) bool {
		return isAccessibilityName(name)
	}},
	{roleState, func(name, _ string) bool {
		return hasAny(name, "disabled", "checked", "selected", "expanded",
			"open", "closed", "visible", "active", "error", "invalid",
			"required", "loading", "current")
	}},
	{roleConfiguration, func(name, _ string) bool {
		return hasAny(name, "variant", "size", "type", "status", "level",
			"kind", "mode", "theme", "position", "alignment", "width",
			"height", "href", "url", "link", "target", "src", "data",
			"options", "columns", "rows", "items", "list", "name", "value",
			"format", "limit", "max", "min")
	}},
	{roleEvent, func(name, typ string) bool {
		if strings.HasPrefix(name, "on") {
			return true
		}
		return strings.Contains(typ, "=>") || strings.Contains(typ, "Event")
	}},
	{roleSlot, func(name, _ string) bool {
		return hasAny(name, "slot", "children")
	}},
}

// formPatterns flags form involvement independently of role bucketing.
var formPatterns = []string{"form", "input", "field", "required", "autocomplete", "error", "name", "value"}

// conditionalPatterns flags content that appears or disappears at
// runtime, also independent of role bucketing.
var conditionalPatterns = []string{"visible", "show", "hide", "open", "expanded", "closeable", "closable", "dismiss"}

// interactionStates are state properties implying user interaction.
var interactionStates = []string{"disabled", "checked", "selected", "open", "expanded"}

// purposeRule maps an analysis condition to an inferred purpose.
type purposeRule struct {
	purpose Purpose
	match   func(a *Analysis) bool
}

// purposeRules is a first-match decision list.
var purposeRules = []purposeRule{
	{PurposeAction, func(a *Analysis) bool {
		return anyProp(a.Events, "click", "submit")
	}},
	{PurposeInput, func(a *Analysis) bool {
		return a.IsFormRelated &&
			(anyProp(a.VisibleText, "label") || anyProp(a.Accessibility, "label"))
	}},
	{PurposeNotification, func(a *Analysis) bool {
		return anyProp(a.Configuration, "status") &&
			(anyProp(a.VisibleText, "message") || anyProp(a.VisibleText, "headline"))
	}},
	{PurposeNavigation, func(a *Analysis) bool {
		return anyProp(a.Configuration, "href", "link")
	}},
	{PurposeContainer, func(a *Analysis) bool {
		return len(a.Slots) > 0 || anyProp(a.VisibleText, "headline")
	}},
	{PurposeData, func(a *Analysis) bool {
		return anyProp(a.Configuration, "data", "list", "items", "options", "columns", "rows")
	}},
}

// strategyRule maps an analysis condition to a content strategy.
type strategyRule struct {
	strategy ContentStrategy
	match    func(a *Analysis) bool
}

var strategyRules = []strategyRule{
	{StrategyVisibleFirst, func(a *Analysis) bool { return len(a.VisibleText) > 0 }},
	{StrategyFormLabel, func(a *Analysis) bool {
		return a.IsFormRelated && anyProp(a.Accessibility, "label")
	}},
	{StrategyAccessibilityOnly, func(a *Analysis) bool { return len(a.Accessibility) > 0 }},
}

// Analyze categorizes a component's properties and infers its overall
// purpose and content strategy.
func Analyze(record *types.ComponentRecord) *Analysis {
	a := &Analysis{}

	for _, prop := range record.Properties {
		name := strings.ToLower(prop.Name)

		switch classifyRole(name, prop.Type) {
		case roleVisibleText:
			a.VisibleText = append(a.VisibleText, prop)
		case roleAccessibility:
			a.Accessibility = append(a.Accessibility, prop)
		case roleState:
			a.State = append(a.State, prop)
		case roleConfiguration:
			a.Configuration = append(a.Configuration, prop)
		case roleEvent:
			a.Events = append(a.Events, prop)
		case roleSlot:
			a.Slots = append(a.Slots, prop)
		}

		if hasAny(name, formPatterns...) {
			a.IsFormRelated = true
		}
		if hasAny(name, conditionalPatterns...) {
			a.HasConditionalContent = true
		}
	}

	a.HasStates = len(a.State) > 0
	a.HasAccessibilityEnhancements = len(a.Accessibility) > 0
	a.HasSlots = len(a.Slots) > 0
	a.IsInteractive = len(a.Events) > 0 || anyProp(a.State, interactionStates...)

	a.InferredPurpose = PurposeGeneral
	for _, rule := range purposeRules {
		if rule.match(a) {
			a.InferredPurpose = rule.purpose
			break
		}
	}

	a.ContentStrategy = StrategyMinimal
	for _, rule := range strategyRules {
		if rule.match(a) {
			a.ContentStrategy = rule.strategy
			break
		}
	}
	return a
}

func classifyRole(name, typ string) role {
	for _, p := range rolePredicates {
		if p.match(name, typ) {
			return p.role
		}
	}
	return roleNone
}

// isAccessibilityName reports whether a lowercase property name is an
// assistive-technology attribute. "aria" is anchored to the start of
// the name so configuration names that merely contain the letters
// ("variant") stay out of this bucket; "role" and "alt" count only as
// the whole name for the same reason.
func isAccessibilityName(name string) bool {
	if strings.HasPrefix(name, "aria") {
		return true
	}
	if name == "role" || name == "alt" {
		return true
	}
	return hasAny(name, "a11y", "screenreader", "sr-only")
}

func hasAny(name string, patterns ...string) bool {
	for _, p := range patterns {
		if strings.Contains(name, p) {
			return true
		}
	}
	return false
}

// anyProp reports whether any property in list has a lowercase name
// containing one of the patterns.
func anyProp(list []types.PropertyRecord, patterns ...string) bool {
	for _, prop := range list {
		if hasAny(strings.ToLower(prop.Name), patterns...) {
			return true
		}
	}
	return false
}
