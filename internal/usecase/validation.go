package usecase

import (
	"fmt"
	"strings"

	"github.com/invoicechaser/lead-api/internal/entity"
)

// Validate turns an untrusted submission payload into a ValidatedLead, or
// reports which required fields are missing or malformed. Unrecognized
// payload keys are ignored; absent or null values become "".
func Validate(raw map[string]any, schema entity.Schema) (entity.ValidatedLead, []FieldError) {
	values := make(map[string]string, len(schema.Fields))
	for _, f := range schema.Fields {
		values[f.Name] = extract(raw, f.Keys)
	}

	var errs []FieldError
	for _, f := range schema.Fields {
		v := values[f.Name]
		if f.Required && v == "" {
			errs = append(errs, FieldError{Field: f.Name, Reason: ReasonMissing})
			continue
		}
		if f.Name == entity.FieldEmail && v != "" && !isValidEmail(v) {
			errs = append(errs, FieldError{Field: f.Name, Reason: ReasonMalformed})
		}
	}
	if len(errs) > 0 {
		return entity.ValidatedLead{}, errs
	}

	return entity.ValidatedLead{
		Name:        values["name"],
		Email:       values["email"],
		Company:     values["company"],
		System:      values["system"],
		Volume:      values["volume"],
		Message:     values["message"],
		Source:      values["source"],
		PageURL:     values["page_url"],
		SubmittedAt: values["submitted_at"],
		UserAgent:   values["user_agent"],
	}, nil
}


// extract returns the first present key's value, coerced to a trimmed
// string. JSON numbers and booleans are accepted where forms send them.
func extract(raw map[string]any, keys []string) string {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case nil:
			return ""
		case string:
			return strings.TrimSpace(t)
		case float64:
			// encoding/json decodes every number as float64
			if t == float64(int64(t)) {
				return fmt.Sprintf("%d", int64(t))
			}
			return strings.TrimSpace(fmt.Sprint(t))
		default:
			return strings.TrimSpace(fmt.Sprint(t))
		}
	}
	return ""
}


// isValidEmail is a syntactic sanity check only: exactly one "@", a
// non-empty local part, a domain with a dot and a non-empty segment after
// the last dot, and no whitespace anywhere. No DNS or mailbox lookups.
func isValidEmail(s string) bool {
	if strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || domain == "" {
		return false
	}
	if strings.Contains(domain, "@") {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}
	return true
}
