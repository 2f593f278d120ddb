package forms_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formbind/forms"
)

func mustParse(t *testing.T, src string) *forms.Form {
	t.Helper()

	f, err := forms.Parse([]byte(src))
	require.NoError(t, err)

	return f
}

func TestValidateCleanForm(t *testing.T) {
	f := mustParse(t, `
fields:
  - name: email
    rules:
      - rule: required
      - rule: email
  - name: age
    type: int
    rules:
      - rule: range
        min: 0
        max: 150
`)

	diags := forms.Validate(f)
	assert.False(t, diags.HasErrors())
	assert.Empty(t, diags.Warnings)
	assert.NoError(t, diags.Error())
}

func TestValidateUnknownRuleSuggests(t *testing.T) {
	f := mustParse(t, `
fields:
  - name: email
    rules:
      - rule: requird
`)

	diags := forms.Validate(f)
	require.True(t, diags.HasErrors())

	finding := diags.Errors[0]
	assert.Equal(t, "unknown_rule", finding.Code)
	assert.Equal(t, "email", finding.Field)
	require.NotEmpty(t, finding.Suggestions, "a near-miss must get a suggestion:\n%s", spew.Sdump(finding))
	assert.Equal(t, "required", finding.Suggestions[0])
	assert.Contains(t, finding.String(), `did you mean "required"?`)
}

func TestValidateNonsenseRuleGetsNoSuggestion(t *testing.T) {
	f := mustParse(t, `
fields:
  - name: email
    rules:
      - rule: zzzzzzzz
`)

	diags := forms.Validate(f)
	require.True(t, diags.HasErrors())
	assert.Empty(t, diags.Errors[0].Suggestions)
}

func TestValidateUnknownTypeSuggests(t *testing.T) {
	f := mustParse(t, `
fields:
  - name: age
    type: itn
`)

	diags := forms.Validate(f)
	require.True(t, diags.HasErrors())
	assert.Equal(t, "unknown_type", diags.Errors[0].Code)
	require.NotEmpty(t, diags.Errors[0].Suggestions)
	assert.Equal(t, "int", diags.Errors[0].Suggestions[0])
}

func TestValidateRuleApplicability(t *testing.T) {
	f := mustParse(t, `
fields:
  - name: departing
    type: date
    rules:
      - rule: range
        min: 0
  - name: age
    type: int
    rules:
      - rule: email
`)

	diags := forms.Validate(f)
	require.Len(t, diags.Errors, 2)
	for _, finding := range diags.Errors {
		assert.Equal(t, "rule_not_applicable", finding.Code)
	}
}

func TestValidateBounds(t *testing.T) {
	f := mustParse(t, `
fields:
  - name: a
    type: int
    rules:
      - rule: range
  - name: b
    type: int
    rules:
      - rule: range
        min: 10
        max: 5
`)

	diags := forms.Validate(f)
	require.Len(t, diags.Errors, 2)
	assert.Equal(t, "missing_bounds", diags.Errors[0].Code)
	assert.Equal(t, "inverted_bounds", diags.Errors[1].Code)
}

func TestValidatePatternRules(t *testing.T) {
	f := mustParse(t, `
fields:
  - name: code
    rules:
      - rule: pattern
  - name: ref
    rules:
      - rule: pattern
        pattern: "(["
`)

	diags := forms.Validate(f)
	require.Len(t, diags.Errors, 2)
	assert.Equal(t, "missing_pattern", diags.Errors[0].Code)
	assert.Equal(t, "invalid_pattern", diags.Errors[1].Code)
}

func TestValidateDuplicatesAndNames(t *testing.T) {
	f := mustParse(t, `
fields:
  - name: email
  - name: email
  - name: ""
`)

	diags := forms.Validate(f)
	require.Len(t, diags.Errors, 2)
	assert.Equal(t, "duplicate_field", diags.Errors[0].Code)
	assert.Equal(t, "missing_field_name", diags.Errors[1].Code)
}

func TestValidateWarnings(t *testing.T) {
	f := mustParse(t, `
fields:
  - name: nickname
    layout: "2006-01-02"
    fallback: unused
`)

	diags := forms.Validate(f)
	assert.False(t, diags.HasErrors())

	codes := make([]string, 0, len(diags.Warnings))
	for _, w := range diags.Warnings {
		codes = append(codes, w.Code)
	}

	assert.ElementsMatch(t, []string{"layout_ignored", "fallback_ignored"}, codes)
}
