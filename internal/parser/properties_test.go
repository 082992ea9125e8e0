package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProperties(t *testing.T) {
	t.Parallel()

	t.Run("comment attaches to next property", func(t *testing.T) {
		body := `
  /**
   * The text displayed on the button
   */
  text?: string;
  disabled: boolean;
`
		props := ParseProperties(body)
		require.Len(t, props, 2)

		assert.Equal(t, "text", props[0].Name)
		assert.Equal(t, "string", props[0].Type)
		assert.True(t, props[0].Optional)
		assert.Equal(t, "The text displayed on the button", props[0].Description)

		assert.Equal(t, "disabled", props[1].Name)
		assert.False(t, props[1].Optional)
		assert.Empty(t, props[1].Description)
	})

	t.Run("multi-line comment joined with spaces", func(t *testing.T) {
		body := `
  /**
   * First fragment
   * second fragment
   */
  label: string;
`
		props := ParseProperties(body)
		require.Len(t, props, 1)
		assert.Equal(t, "First fragment second fragment", props[0].Description)
	})

	t.Run("blank line resets comment buffer", func(t *testing.T) {
		body := `
  /**
   * Orphaned comment
   */

  label: string;
`
		props := ParseProperties(body)
		require.Len(t, props, 1)
		assert.Empty(t, props[0].Description)
	})

	t.Run("quoted names and required marker", func(t *testing.T) {
		body := `
  "aria-label"?: string;
  name: string;
`
		props := ParseProperties(body)
		require.Len(t, props, 2)
		assert.Equal(t, "aria-label", props[0].Name)
		assert.True(t, props[0].Optional)
		assert.Equal(t, "name", props[1].Name)
		assert.False(t, props[1].Optional)
	})

	t.Run("union and function types captured verbatim", func(t *testing.T) {
		body := `
  variant?: "primary" | "secondary";
  onClick?: (event: CustomEvent) => void;
`
		props := ParseProperties(body)
		require.Len(t, props, 2)
		assert.Equal(t, `"primary" | "secondary"`, props[0].Type)
		assert.Equal(t, "(event: CustomEvent) => void", props[1].Type)
	})

	t.Run("structural lines ignored", func(t *testing.T) {
		body := `
  }
  {
  text: string;
`
		props := ParseProperties(body)
		require.Len(t, props, 1)
		assert.Equal(t, "text", props[0].Name)
	})

	t.Run("empty body", func(t *testing.T) {
		assert.Empty(t, ParseProperties(""))
	})
}
