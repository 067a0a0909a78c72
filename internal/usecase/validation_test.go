package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invoicechaser/lead-api/internal/entity"
)

func defaultSchema(t *testing.T) entity.Schema {
	t.Helper()
	schema, ok := entity.ProfileSchema("invoicechaser")
	assert.True(t, ok)
	return schema
}

func TestValidateSuccess(t *testing.T) {
	raw := map[string]any{
		"name":    "  Ada Lovelace ",
		"email":   " ada@example.com ",
		"message": "Chasing too many invoices",
		"company": "Analytical Engines Ltd",
		"volume":  250,
		"ignored": "whatever",
	}

	lead, errs := Validate(raw, defaultSchema(t))

	assert.Empty(t, errs)
	assert.Equal(t, "Ada Lovelace", lead.Name)
	assert.Equal(t, "ada@example.com", lead.Email)
	assert.Equal(t, "Chasing too many invoices", lead.Message)
	assert.Equal(t, "Analytical Engines Ltd", lead.Company)
	assert.Equal(t, "250", lead.Volume)
}

func TestValidateWorkEmailAlias(t *testing.T) {
	raw := map[string]any{
		"name":       "Ada",
		"work_email": "ada@example.com",
		"message":    "hello",
	}

	lead, errs := Validate(raw, defaultSchema(t))

	assert.Empty(t, errs)
	assert.Equal(t, "ada@example.com", lead.Email)
}

func TestValidateMissingName(t *testing.T) {
	raw := map[string]any{
		"name":    "   ",
		"email":   "ada@example.com",
		"message": "hello",
	}

	_, errs := Validate(raw, defaultSchema(t))

	assert.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, ReasonMissing, errs[0].Reason)
}

func TestValidateMissingEmailDistinctFromMalformed(t *testing.T) {
	raw := map[string]any{
		"name":    "Ada",
		"message": "hello",
	}

	_, errs := Validate(raw, defaultSchema(t))

	assert.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, ReasonMissing, errs[0].Reason)
}

func TestValidateMalformedEmail(t *testing.T) {
	cases := []string{
		"not-an-email",
		"no-at-sign.example.com",
		"two@@example.com",
		"a@b@example.com",
		"@example.com",
		"ada@example",
		"ada@.com",
		"ada@example.com.",
		"ada lovelace@example.com",
		"ada@exa mple.com",
	}

	for _, email := range cases {
		raw := map[string]any{
			"name":    "Ada",
			"email":   email,
			"message": "hello",
		}

		_, errs := Validate(raw, defaultSchema(t))

		assert.Len(t, errs, 1, "email %q should be rejected", email)
		assert.Equal(t, "email", errs[0].Field)
		assert.Equal(t, ReasonMalformed, errs[0].Reason, "email %q should be malformed, not missing", email)
	}
}

func TestValidateAcceptsPlausibleEmails(t *testing.T) {
	cases := []string{
		"ada@example.com",
		"ada.lovelace+leads@sub.example.co.uk",
		"a@b.io",
	}

	for _, email := range cases {
		raw := map[string]any{
			"name":    "Ada",
			"email":   email,
			"message": "hello",
		}

		_, errs := Validate(raw, defaultSchema(t))
		assert.Empty(t, errs, "email %q should be accepted", email)
	}
}

func TestValidateNullAndAbsentBecomeEmpty(t *testing.T) {
	raw := map[string]any{
		"name":    "Ada",
		"email":   "ada@example.com",
		"message": "hello",
		"company": nil,
	}

	lead, errs := Validate(raw, defaultSchema(t))

	assert.Empty(t, errs)
	assert.Equal(t, "", lead.Company)
	assert.Equal(t, "", lead.Source)
}

func TestValidateAccumulatesErrors(t *testing.T) {
	raw := map[string]any{
		"email": "broken",
	}

	_, errs := Validate(raw, defaultSchema(t))

	// name missing, email malformed, message missing
	assert.Len(t, errs, 3)
}

func TestValidateConsultancyProfile(t *testing.T) {
	schema, ok := entity.ProfileSchema("consultancy")
	assert.True(t, ok)

	// message is optional here and "headache" is accepted for it
	raw := map[string]any{
		"name":       "Bob",
		"work_email": "bob@example.com",
		"headache":   "invoices everywhere",
	}

	lead, errs := Validate(raw, schema)

	assert.Empty(t, errs)
	assert.Equal(t, "bob@example.com", lead.Email)
	assert.Equal(t, "invoices everywhere", lead.Message)
}

func TestValidationFailureMessage(t *testing.T) {
	vf := &ValidationFailure{Errors: []FieldError{
		{Field: "name", Reason: ReasonMissing},
		{Field: "email", Reason: ReasonMalformed},
	}}

	assert.Equal(t, "Missing required fields: name; Invalid value for: email", vf.Message())
	assert.Equal(t, []string{"name", "email"}, vf.Fields())
}
