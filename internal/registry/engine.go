package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/google/uuid"

	"github.com/amponce/va-design-system-monitor/internal/analysis"
	"github.com/amponce/va-design-system-monitor/internal/examples"
	"github.com/amponce/va-design-system-monitor/internal/types"
	"github.com/amponce/va-design-system-monitor/internal/vaerrors"
)

// Engine exposes the monitor's public operations over the cached
// component table. Lookups are read-only and safe to call concurrently;
// the registry serializes the only mutation point (refresh).
type Engine struct {
	registry *Registry
	synth    *examples.Synthesizer
	official *examples.OfficialSource
	logger   *slog.Logger
}

// NewEngine creates the engine. official may be nil, in which case
// official-example requests go straight to synthesis.
func NewEngine(registry *Registry, synth *examples.Synthesizer, official *examples.OfficialSource, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{registry: registry, synth: synth, official: official, logger: logger}
}

// GetComponents returns the full component table.
func (e *Engine) GetComponents(ctx context.Context, forceRefresh bool) (types.ComponentTable, error) {
	return e.registry.Components(ctx, forceRefresh)
}

// GetComponentByName finds a component by case-insensitive exact match
// on its display name, tag name, or interface name, falling back to a
// substring match. A miss returns nil, not an error.
func (e *Engine) GetComponentByName(ctx context.Context, name string) (*types.ComponentRecord, error) {
	if strings.TrimSpace(name) == "" {
		return nil, vaerrors.New(vaerrors.CodeInvalidInput, "component name is required")
	}
	table, err := e.registry.Components(ctx, false)
	if err != nil {
		return nil, err
	}
	return findByName(table, name), nil
}

func findByName(table types.ComponentTable, name string) *types.ComponentRecord {
	needle := strings.ToLower(strings.TrimSpace(name))

	for _, record := range sorted(table) {
		if strings.ToLower(record.Name) == needle ||
			strings.ToLower(record.TagName) == needle ||
			strings.ToLower(record.InterfaceName) == needle {
			return record
		}
	}
	for _, record := range sorted(table) {
		if strings.Contains(strings.ToLower(record.Name), needle) ||
			strings.Contains(strings.ToLower(record.TagName), needle) ||
			strings.Contains(strings.ToLower(record.InterfaceName), needle) {
			return record
		}
	}
	return nil
}

// GetComponentsByStatus lists components carrying the given status.
func (e *Engine) GetComponentsByStatus(ctx context.Context, status types.Status) ([]*types.ComponentRecord, error) {
	if !types.ValidStatus(status) {
		return nil, vaerrors.New(vaerrors.CodeInvalidInput,
			fmt.Sprintf("invalid status %q", status))
	}
	table, err := e.registry.Components(ctx, false)
	if err != nil {
		return nil, err
	}
	var out []*types.ComponentRecord
	for _, record := range sorted(table) {
		if record.Status == status {
			out = append(out, record)
		}
	}
	return out, nil
}

// ValidateComponents checks a list of names (glob patterns allowed)
// against the component table.
func (e *Engine) ValidateComponents(ctx context.Context, names []string) (*types.ValidationResult, error) {
	if len(names) == 0 {
		return nil, vaerrors.New(vaerrors.CodeInvalidInput, "at least one component name is required")
	}
	table, err := e.registry.Components(ctx, false)
	if err != nil {
		return nil, err
	}

	result := &types.ValidationResult{}
	found := 0
	for _, name := range expandPatterns(table, names) {
		record := findByName(table, name)
		entry := types.ValidationEntry{Requested: name, Found: record != nil, Component: record}
		if record != nil {
			found++
		}
		result.Validation = append(result.Validation, entry)
	}
	result.Summary = fmt.Sprintf("%d of %d components found", found, len(result.Validation))
	return result, nil
}

// LintComponents checks a list of names (glob patterns allowed) and
// emits issues for missing or low-maturity components.
func (e *Engine) LintComponents(ctx context.Context, names []string) (*types.LintResult, error) {
	if len(names) == 0 {
		return nil, vaerrors.New(vaerrors.CodeInvalidInput, "at least one component name is required")
	}
	table, err := e.registry.Components(ctx, false)
	if err != nil {
		return nil, err
	}

	result := &types.LintResult{Issues: []types.LintIssue{}}
	expanded := expandPatterns(table, names)
	for _, name := range expanded {
		record := findByName(table, name)
		if record == nil {
			result.Issues = append(result.Issues, types.LintIssue{
				Type:      types.IssueNotFound,
				Component: name,
				Message:   fmt.Sprintf("component %q not found in the design system", name),
				Severity:  types.SeverityError,
			})
			continue
		}
		switch record.Status {
		case types.StatusUseWithCaution:
			result.Issues = append(result.Issues, types.LintIssue{
				Type:      types.IssueCaution,
				Component: record.Name,
				Message:   record.Recommendation,
				Severity:  types.SeverityWarning,
			})
		case types.StatusExperimental:
			result.Issues = append(result.Issues, types.LintIssue{
				Type:      types.IssueExperimental,
				Component: record.Name,
				Message:   record.Recommendation,
				Severity:  types.SeverityWarning,
			})
		case types.StatusAvailableWithIssues:
			result.Issues = append(result.Issues, types.LintIssue{
				Type:      types.IssueAvailableIssues,
				Component: record.Name,
				Message:   record.Recommendation,
				Severity:  types.SeverityInfo,
			})
		}
	}

	for _, issue := range result.Issues {
		switch issue.Severity {
		case types.SeverityError:
			result.HasErrors = true
		case types.SeverityWarning:
			result.HasWarnings = true
		}
	}
	result.Summary = fmt.Sprintf("%d issues found across %d components",
		len(result.Issues), len(expanded))
	return result, nil
}

// GenerateReport summarizes the component table.
func (e *Engine) GenerateReport(ctx context.Context, forceRefresh bool) (*types.Report, error) {
	table, err := e.registry.Components(ctx, forceRefresh)
	if err != nil {
		return nil, err
	}

	report := &types.Report{
		ReportID:       uuid.NewString(),
		Total:          len(table),
		StatusCounts:   make(map[types.Status]int),
		CategoryCounts: make(map[types.MaturityCategory]int),
		LastUpdated:    e.registry.LastUpdated(),
	}
	for _, record := range sorted(table) {
		report.StatusCounts[record.Status]++
		report.CategoryCounts[record.MaturityCategory]++
		switch record.Status {
		case types.StatusRecommended:
			report.Recommended = append(report.Recommended, record.Name)
		case types.StatusUseWithCaution:
			report.Caution = append(report.Caution, record.Name)
		}
	}
	return report, nil
}

// PropertiesResult pairs a component with its property list.
type PropertiesResult struct {
	Component  string                 `json:"component"`
	Properties []types.PropertyRecord `json:"properties"`
}

// GetComponentProperties returns a component's parsed properties, or
// nil when the component is unknown.
func (e *Engine) GetComponentProperties(ctx context.Context, name string) (*PropertiesResult, error) {
	record, err := e.GetComponentByName(ctx, name)
	if err != nil || record == nil {
		return nil, err
	}
	return &PropertiesResult{Component: record.Name, Properties: record.Properties}, nil
}

// ExamplesResult pairs a component with usage examples.
type ExamplesResult struct {
	Component string          `json:"component"`
	Official  bool            `json:"official"`
	Examples  []types.Example `json:"examples"`
}

// GetComponentExamples synthesizes usage examples for a component, or
// returns nil when the component is unknown. Analysis and synthesis run
// fresh on every call.
func (e *Engine) GetComponentExamples(ctx context.Context, name string) (*ExamplesResult, error) {
	record, err := e.GetComponentByName(ctx, name)
	if err != nil || record == nil {
		return nil, err
	}
	a := analysis.Analyze(record)
	return &ExamplesResult{
		Component: record.Name,
		Examples:  e.synth.Synthesize(record, a),
	}, nil
}

// GetOfficialExamples probes published documentation for official
// examples, falling back to synthesis when none are found.
func (e *Engine) GetOfficialExamples(ctx context.Context, name string) (*ExamplesResult, error) {
	record, err := e.GetComponentByName(ctx, name)
	if err != nil || record == nil {
		return nil, err
	}
	if e.official != nil {
		official, found, err := e.official.Examples(ctx, record)
		if err != nil {
			return nil, err
		}
		if found {
			return &ExamplesResult{Component: record.Name, Official: true, Examples: official}, nil
		}
	}
	a := analysis.Analyze(record)
	return &ExamplesResult{
		Component: record.Name,
		Examples:  e.synth.Synthesize(record, a),
	}, nil
}

// expandPatterns replaces glob patterns in names with the matching
// component tag names. Non-pattern names and patterns matching nothing
// pass through unchanged so the caller still sees a per-request entry.
func expandPatterns(table types.ComponentTable, names []string) []string {
	var out []string
	for _, name := range names {
		if !strings.ContainsAny(name, "*?[") {
			out = append(out, name)
			continue
		}
		g, err := glob.Compile(strings.ToLower(name))
		if err != nil {
			out = append(out, name)
			continue
		}
		matched := false
		for _, record := range sorted(table) {
			if g.Match(strings.ToLower(record.TagName)) ||
				g.Match(strings.ToLower(record.Name)) ||
				g.Match(strings.ToLower(record.InterfaceName)) {
				out = append(out, record.InterfaceName)
				matched = true
			}
		}
		if !matched {
			out = append(out, name)
		}
	}
	return out
}

// sorted returns the table's records ordered by interface name for
// deterministic output.
func sorted(table types.ComponentTable) []*types.ComponentRecord {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*types.ComponentRecord, 0, len(keys))
	for _, k := range keys {
		out = append(out, table[k])
	}
	return out
}
