// Package validation is a declarative form-validation engine. A form is a
// list of FieldSpec; each spec names its rules in evaluation order and the
// sibling fields its rules may read. Validation is a pure function over
// the submitted values.
package validation

import (
	"net/mail"
	"strings"
)

// Rule checks one field value. siblings contains only the values of the
// fields the owning spec declared in DependsOn. An empty return string
// means the rule passed; anything else is the per-field error message.
type Rule func(value string, siblings map[string]string) string

// Predicate gates conditional rules on sibling values.
type Predicate func(siblings map[string]string) bool

// NonEmpty is a Predicate that holds when the named sibling has a
// non-blank value.
func NonEmpty(field string) Predicate {
	return func(siblings map[string]string) bool {
		return strings.TrimSpace(siblings[field]) != ""
	}
}

// Required fails on blank values.
func Required(message string) Rule {
	return func(value string, _ map[string]string) string {
		if strings.TrimSpace(value) == "" {
			return message
		}
		return ""
	}
}

// MinLength fails when the value is shorter than n characters. Blank
// values pass; combine with Required when the field is mandatory.
func MinLength(n int, message string) Rule {
	return func(value string, _ map[string]string) string {
		if value == "" {
			return ""
		}
		if len([]rune(value)) < n {
			return message
		}
		return ""
	}
}

// EmailFormat fails on values that do not parse as an address. Blank
// values pass.
func EmailFormat(message string) Rule {
	return func(value string, _ map[string]string) string {
		if value == "" {
			return ""
		}
		addr, err := mail.ParseAddress(value)
		if err != nil || addr.Address != value {
			return message
		}
		return ""
	}
}

// EqualsField fails unless the value matches the named sibling.
func EqualsField(other, message string) Rule {
	return func(value string, siblings map[string]string) string {
		if value != siblings[other] {
			return message
		}
		return ""
	}
}

// RequiredIf makes the field mandatory exactly when pred holds. When pred
// is false the rule always passes, whatever the value.
func RequiredIf(pred Predicate, message string) Rule {
	return func(value string, siblings map[string]string) string {
		if !pred(siblings) {
			return ""
		}
		if strings.TrimSpace(value) == "" {
			return message
		}
		return ""
	}
}

// EqualsFieldIf compares against the named sibling only while pred holds.
// While pred is false any value passes, including a stale mismatch.
func EqualsFieldIf(other string, pred Predicate, message string) Rule {
	return func(value string, siblings map[string]string) string {
		if !pred(siblings) {
			return ""
		}
		if value != siblings[other] {
			return message
		}
		return ""
	}
}
