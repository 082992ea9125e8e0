package types

import "time"

// MaturityCategory is the coarse maturity grouping published in the
// component library's documentation comments.
type MaturityCategory string

const (
	CategoryUse     MaturityCategory = "use"
	CategoryCaution MaturityCategory = "caution"
)

// MaturityLevel is the fine-grained lifecycle stage of a component.
type MaturityLevel string

const (
	LevelBestPractice MaturityLevel = "best_practice"
	LevelDeployed     MaturityLevel = "deployed"
	LevelCandidate    MaturityLevel = "candidate"
	LevelAvailable    MaturityLevel = "available"
	LevelUnknown      MaturityLevel = "unknown"
)

// Status is the derived public-facing classification of a component.
type Status string

const (
	StatusRecommended         Status = "RECOMMENDED"
	StatusStable              Status = "STABLE"
	StatusExperimental        Status = "EXPERIMENTAL"
	StatusAvailableWithIssues Status = "AVAILABLE_WITH_ISSUES"
	StatusUseWithCaution      Status = "USE_WITH_CAUTION"
	StatusUnknown             Status = "UNKNOWN"
)

// AllStatuses lists every valid status value, used for input validation.
var AllStatuses = []Status{
	StatusRecommended,
	StatusStable,
	StatusExperimental,
	StatusAvailableWithIssues,
	StatusUseWithCaution,
	StatusUnknown,
}

// ValidStatus reports whether s is one of the fixed status values.
func ValidStatus(s Status) bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// PropertyRecord is a single property parsed from a component's
// interface body.
type PropertyRecord struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Optional    bool   `json:"optional"`
	Description string `json:"description,omitempty"`
}

// ComponentRecord is the extracted and classified metadata for one
// component. InterfaceName is the unique key; TagName is a secondary
// lookup key populated only when the declaration file carries a
// tag-to-interface mapping entry for it.
type ComponentRecord struct {
	Name             string           `json:"name"`
	InterfaceName    string           `json:"interfaceName"`
	TagName          string           `json:"tagName,omitempty"`
	MaturityCategory MaturityCategory `json:"maturityCategory"`
	MaturityLevel    MaturityLevel    `json:"maturityLevel"`
	GuidanceHref     string           `json:"guidanceHref,omitempty"`
	Translations     []string         `json:"translations,omitempty"`
	Properties       []PropertyRecord `json:"properties"`
	Status           Status           `json:"status"`
	Recommendation   string           `json:"recommendation"`
}

// ComponentTable maps interface names to component records. Tables are
// built atomically per fetch and never mutated after publication.
type ComponentTable map[string]*ComponentRecord

// Example is one illustrative usage snippet for a component.
type Example struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code"`
	Framework   string `json:"framework"`
}

// ValidationEntry is the per-name result of a validation request.
type ValidationEntry struct {
	Requested string           `json:"requested"`
	Found     bool             `json:"found"`
	Component *ComponentRecord `json:"component,omitempty"`
}

// ValidationResult is the response shape for component validation.
type ValidationResult struct {
	Validation []ValidationEntry `json:"validation"`
	Summary    string            `json:"summary"`
}

// LintSeverity distinguishes lint issue levels.
type LintSeverity string

const (
	SeverityError   LintSeverity = "error"
	SeverityWarning LintSeverity = "warning"
	SeverityInfo    LintSeverity = "info"
)

// LintIssueType identifies the rule that produced an issue.
type LintIssueType string

const (
	IssueNotFound        LintIssueType = "NOT_FOUND"
	IssueCaution         LintIssueType = "USE_WITH_CAUTION"
	IssueExperimental    LintIssueType = "EXPERIMENTAL"
	IssueAvailableIssues LintIssueType = "AVAILABLE_WITH_ISSUES"
)

// LintIssue is a single finding from linting a component list.
type LintIssue struct {
	Type      LintIssueType `json:"type"`
	Component string        `json:"component"`
	Message   string        `json:"message"`
	Severity  LintSeverity  `json:"severity"`
}

// LintResult is the response shape for component linting.
type LintResult struct {
	Issues      []LintIssue `json:"issues"`
	HasErrors   bool        `json:"hasErrors"`
	HasWarnings bool        `json:"hasWarnings"`
	Summary     string      `json:"summary"`
}

// Report summarizes the component table for monitoring.
type Report struct {
	ReportID       string                   `json:"reportId"`
	Total          int                      `json:"total"`
	StatusCounts   map[Status]int           `json:"statusCounts"`
	CategoryCounts map[MaturityCategory]int `json:"categoryCounts"`
	LastUpdated    time.Time                `json:"lastUpdated"`
	Recommended    []string                 `json:"recommended"`
	Caution        []string                 `json:"caution"`
}
