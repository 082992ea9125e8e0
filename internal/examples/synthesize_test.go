package examples

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amponce/va-design-system-monitor/internal/analysis"
	"github.com/amponce/va-design-system-monitor/internal/types"
)

func component(tag string, props ...types.PropertyRecord) *types.ComponentRecord {
	return &types.ComponentRecord{
		Name:          "Test",
		InterfaceName: "VaTest",
		TagName:       tag,
		Properties:    props,
	}
}

func synthesizeFor(t *testing.T, record *types.ComponentRecord) []types.Example {
	t.Helper()
	a := analysis.Analyze(record)
	return NewSynthesizer(nil).Synthesize(record, a)
}

func TestSynthesizeBasicUsage(t *testing.T) {
	t.Parallel()

	t.Run("basic usage always present", func(t *testing.T) {
		examples := synthesizeFor(t, component("va-thing"))
		require.NotEmpty(t, examples)
		assert.Equal(t, "Basic Usage", examples[0].Title)
		assert.Contains(t, examples[0].Code, "<va-thing")
		assert.Equal(t, "html", examples[0].Framework)
	})

	t.Run("tag derived from interface name when unmapped", func(t *testing.T) {
		record := component("")
		examples := synthesizeFor(t, record)
		require.NotEmpty(t, examples)
		assert.Contains(t, examples[0].Code, "<va-test")
	})

	t.Run("required properties rendered as attributes", func(t *testing.T) {
		examples := synthesizeFor(t, component("va-thing",
			types.PropertyRecord{Name: "label", Type: "string"},
		))
		assert.Contains(t, examples[0].Code, `label=`)
	})

	t.Run("camelCase property becomes kebab-case attribute", func(t *testing.T) {
		examples := synthesizeFor(t, component("va-thing",
			types.PropertyRecord{Name: "buttonText", Type: "string"},
		))
		assert.Contains(t, examples[0].Code, "button-text=")
	})
}

func TestSynthesizeComposite(t *testing.T) {
	t.Parallel()

	t.Run("radio group generates three options with label name value", func(t *testing.T) {
		record := component("va-radio",
			types.PropertyRecord{Name: "name", Type: "string"},
			types.PropertyRecord{Name: "text", Type: "string", Optional: true},
		)
		examples := synthesizeFor(t, record)
		require.NotEmpty(t, examples)
		code := examples[0].Code

		assert.Equal(t, 3, strings.Count(code, "<va-radio-option"))
		for i := 1; i <= 3; i++ {
			assert.Contains(t, code, `label="Option `+string(rune('0'+i))+`"`)
		}
		assert.Equal(t, 3, strings.Count(code, `name="group"`))
		assert.Contains(t, code, `value="1"`)
		assert.Contains(t, code, `value="3"`)
	})

	t.Run("accordion generates items with content", func(t *testing.T) {
		examples := synthesizeFor(t, component("va-accordion"))
		code := examples[0].Code
		assert.Equal(t, 2, strings.Count(code, "<va-accordion-item"))
		assert.Contains(t, code, "Content for section 1.")
	})

	t.Run("non-composite tag has empty body", func(t *testing.T) {
		examples := synthesizeFor(t, component("va-button"))
		assert.Contains(t, examples[0].Code, "></va-button>")
	})
}

func TestSynthesizeVariants(t *testing.T) {
	t.Parallel()

	t.Run("state variation when states present", func(t *testing.T) {
		examples := synthesizeFor(t, component("va-thing",
			types.PropertyRecord{Name: "disabled", Type: "boolean", Optional: true},
		))
		require.Len(t, examples, 2)
		assert.Equal(t, "State Variation", examples[1].Title)
		assert.Contains(t, examples[1].Code, "disabled")
	})

	t.Run("accessibility variant when enhancements present", func(t *testing.T) {
		examples := synthesizeFor(t, component("va-thing",
			types.PropertyRecord{Name: "ariaLabel", Type: "string", Optional: true},
		))
		titles := exampleTitles(examples)
		assert.Contains(t, titles, "Accessibility Enhanced")
	})

	t.Run("form variant when form related", func(t *testing.T) {
		examples := synthesizeFor(t, component("va-text-input",
			types.PropertyRecord{Name: "name", Type: "string", Optional: true},
			types.PropertyRecord{Name: "label", Type: "string", Optional: true},
		))
		titles := exampleTitles(examples)
		require.Contains(t, titles, "Form Context")
		for _, ex := range examples {
			if ex.Title == "Form Context" {
				assert.Contains(t, ex.Code, "<form>")
				assert.Contains(t, ex.Code, "</form>")
			}
		}
	})

	t.Run("plain component gets only basic usage", func(t *testing.T) {
		examples := synthesizeFor(t, component("va-thing",
			types.PropertyRecord{Name: "headline", Type: "string", Optional: true},
		))
		require.Len(t, examples, 1)
	})
}

func exampleTitles(examples []types.Example) []string {
	titles := make([]string, 0, len(examples))
	for _, ex := range examples {
		titles = append(titles, ex.Title)
	}
	return titles
}

func TestValueGeneration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		prop    types.PropertyRecord
		purpose analysis.Purpose
		want    string
	}{
		{"union picks first literal", types.PropertyRecord{Name: "variant", Type: `"primary" | "secondary"`}, analysis.PurposeGeneral, "primary"},
		{"union skips undefined", types.PropertyRecord{Name: "variant", Type: `undefined | "ghost"`}, analysis.PurposeGeneral, "ghost"},
		{"boolean true", types.PropertyRecord{Name: "disabled", Type: "boolean"}, analysis.PurposeGeneral, "true"},
		{"level number", types.PropertyRecord{Name: "level", Type: "number"}, analysis.PurposeGeneral, "2"},
		{"generic number", types.PropertyRecord{Name: "tabindex", Type: "number"}, analysis.PurposeGeneral, "1"},
		{"action text literal", types.PropertyRecord{Name: "text", Type: "string"}, analysis.PurposeAction, "Take action"},
		{"input label literal", types.PropertyRecord{Name: "label", Type: "string"}, analysis.PurposeInput, "Email address"},
		{"navigation href literal", types.PropertyRecord{Name: "href", Type: "string"}, analysis.PurposeNavigation, "/resources"},
		{"recognized array literal", types.PropertyRecord{Name: "options", Type: "Array<object>"}, analysis.PurposeGeneral, `[{"label": "Option one", "value": "1"}, {"label": "Option two", "value": "2"}]`},
		{"generic array empty", types.PropertyRecord{Name: "things", Type: "string[]"}, analysis.PurposeGeneral, "[]"},
		{"string fallback", types.PropertyRecord{Name: "whatever", Type: "string"}, analysis.PurposeGeneral, "Example text"},
		{"url fallback", types.PropertyRecord{Name: "imgSrc", Type: "string"}, analysis.PurposeGeneral, "https://www.va.gov"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, valueFor(tt.prop, tt.purpose))
		})
	}
}
