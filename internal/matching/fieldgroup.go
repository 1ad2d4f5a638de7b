package matching

import (
	"errors"
	"fmt"
	"strings"

	"rowgroup/internal/textutil"
)

// FieldGroup names a category of identity columns.
type FieldGroup string

const (
	FieldGroupEmail FieldGroup = "email"
	FieldGroupPhone FieldGroup = "phone"
)

// ErrUnknownFieldGroup reports a field group name outside the fixed set.
var ErrUnknownFieldGroup = errors.New("unknown field group")

// DefaultColumns returns the candidate source columns for each field group,
// in lookup order.
func DefaultColumns() map[FieldGroup][]string {
	return map[FieldGroup][]string{
		FieldGroupEmail: {"Email", "Email1", "Email2"},
		FieldGroupPhone: {"Phone", "Phone1", "Phone2"},
	}
}

// ParseFieldGroup resolves a field group name.
func ParseFieldGroup(name string) (FieldGroup, error) {
	switch FieldGroup(strings.ToLower(strings.TrimSpace(name))) {
	case FieldGroupEmail:
		return FieldGroupEmail, nil
	case FieldGroupPhone:
		return FieldGroupPhone, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFieldGroup, name)
	}
}

// Normalize converts a raw value into its comparison form. The result may be
// empty, in which case the value carries no identity.
func (g FieldGroup) Normalize(raw string) string {
	switch g {
	case FieldGroupEmail:
		return textutil.NormalizeEmail(raw)
	case FieldGroupPhone:
		return textutil.DigitsOnly(raw)
	default:
		return ""
	}
}

// MatchingType is a user-facing name for a list of field groups.
type MatchingType string

const (
	SameEmail        MatchingType = "same_email"
	SamePhone        MatchingType = "same_phone"
	SameEmailOrPhone MatchingType = "same_email_or_phone"
	SamePhoneOrEmail MatchingType = "same_phone_or_email"
)

// matchingTypes keeps declaration order for error messages.
var matchingTypes = []struct {
	name   MatchingType
	groups []FieldGroup
}{
	{SameEmail, []FieldGroup{FieldGroupEmail}},
	{SamePhone, []FieldGroup{FieldGroupPhone}},
	{SameEmailOrPhone, []FieldGroup{FieldGroupEmail, FieldGroupPhone}},
	// Alias of same_email_or_phone; both require any one group to match.
	{SamePhoneOrEmail, []FieldGroup{FieldGroupEmail, FieldGroupPhone}},
}

// MatchingTypes lists the recognized matching type names.
func MatchingTypes() []MatchingType {
	out := make([]MatchingType, 0, len(matchingTypes))
	for _, mt := range matchingTypes {
		out = append(out, mt.name)
	}
	return out
}

// InvalidMatchingTypeError is returned for a matching type outside the
// recognized set.
type InvalidMatchingTypeError struct {
	Name string
}

func (e *InvalidMatchingTypeError) Error() string {
	names := make([]string, 0, len(matchingTypes))
	for _, mt := range matchingTypes {
		names = append(names, string(mt.name))
	}
	return "Invalid matching type. Supported types: " + strings.Join(names, ", ")
}

// FieldGroupsFor returns the field groups for a matching type name. Names are
// matched exactly.
func FieldGroupsFor(name string) ([]FieldGroup, error) {
	for _, mt := range matchingTypes {
		if string(mt.name) == name {
			groups := make([]FieldGroup, len(mt.groups))
			copy(groups, mt.groups)
			return groups, nil
		}
	}
	return nil, &InvalidMatchingTypeError{Name: name}
}
