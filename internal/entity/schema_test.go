package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileSchemaKnownProfiles(t *testing.T) {
	for _, name := range ProfileNames() {
		s, ok := ProfileSchema(name)
		assert.True(t, ok)
		assert.Equal(t, name, s.Profile)
		assert.NotEmpty(t, s.Fields)
	}

	_, ok := ProfileSchema("nope")
	assert.False(t, ok)
}

func TestProfileSchemaCaseInsensitive(t *testing.T) {
	s, ok := ProfileSchema("  InvoiceChaser ")
	assert.True(t, ok)
	assert.Equal(t, "invoicechaser", s.Profile)
}

func TestDefaultRequiredSets(t *testing.T) {
	s, _ := ProfileSchema("invoicechaser")
	assert.Equal(t, []string{"name", "email", "message"}, s.RequiredFields())

	s, _ = ProfileSchema("consultancy")
	assert.Equal(t, []string{"name", "email"}, s.RequiredFields())
}

func TestWithRequiredOverride(t *testing.T) {
	s, _ := ProfileSchema("invoicechaser")
	out := s.WithRequired([]string{"name", "email", "bogus"})

	assert.Equal(t, []string{"name", "email"}, out.RequiredFields())
	// the original schema is untouched
	assert.Equal(t, []string{"name", "email", "message"}, s.RequiredFields())
}
