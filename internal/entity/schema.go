package entity

import (
	"sort"
	"strings"
)


// FieldSpec maps one logical lead field to the input keys that may carry it.
// Keys are tried in order; the first one present in the payload wins.
type FieldSpec struct {
	Name     string
	Keys     []string
	Required bool
}


// Schema is the ordered field-mapping table for one deployment profile.
// Deployments disagree on key names (email vs work_email, message vs
// headache) and on which fields are mandatory, so both live here instead
// of in the validator.
type Schema struct {
	Profile string
	Fields  []FieldSpec
}


// FieldEmail is the logical name of the contact email field.
const FieldEmail = "email"


var profiles = map[string]Schema{
	"invoicechaser": {
		Profile: "invoicechaser",
		Fields: []FieldSpec{
			{Name: "name", Keys: []string{"name"}, Required: true},
			{Name: "email", Keys: []string{"email", "work_email"}, Required: true},
			{Name: "company", Keys: []string{"company"}},
			{Name: "system", Keys: []string{"system"}},
			{Name: "volume", Keys: []string{"volume"}},
			{Name: "message", Keys: []string{"message"}, Required: true},
			{Name: "source", Keys: []string{"source"}},
			{Name: "page_url", Keys: []string{"page_url"}},
			{Name: "submitted_at", Keys: []string{"submitted_at"}},
			{Name: "user_agent", Keys: []string{"user_agent"}},
		},
	},
	"consultancy": {
		Profile: "consultancy",
		Fields: []FieldSpec{
			{Name: "name", Keys: []string{"name"}, Required: true},
			{Name: "email", Keys: []string{"work_email", "email"}, Required: true},
			{Name: "company", Keys: []string{"company"}},
			{Name: "system", Keys: []string{"system"}},
			{Name: "volume", Keys: []string{"volume"}},
			{Name: "message", Keys: []string{"message", "headache"}},
			{Name: "source", Keys: []string{"source"}},
			{Name: "page_url", Keys: []string{"page_url"}},
			{Name: "submitted_at", Keys: []string{"submitted_at"}},
			{Name: "user_agent", Keys: []string{"user_agent"}},
		},
	},
}


// ProfileSchema returns the built-in schema for the given profile name.
func ProfileSchema(profile string) (Schema, bool) {
	s, ok := profiles[strings.ToLower(strings.TrimSpace(profile))]
	return s, ok
}


// ProfileNames lists the built-in profiles, sorted.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}


// WithRequired returns a copy of the schema whose required set is exactly
// the given logical field names. Unknown names are ignored.
func (s Schema) WithRequired(names []string) Schema {
	required := make(map[string]bool, len(names))
	for _, n := range names {
		required[strings.ToLower(strings.TrimSpace(n))] = true
	}

	out := Schema{Profile: s.Profile, Fields: make([]FieldSpec, len(s.Fields))}
	copy(out.Fields, s.Fields)
	for i := range out.Fields {
		out.Fields[i].Required = required[out.Fields[i].Name]
	}
	return out
}


// RequiredFields returns the logical names of the required fields, in
// schema order.
func (s Schema) RequiredFields() []string {
	var out []string
	for _, f := range s.Fields {
		if f.Required {
			out = append(out, f.Name)
		}
	}
	return out
}
