package toast

import "strings"

// Variant is the semantic category of a toast.
type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantWarning Variant = "warning"
	VariantInfo    Variant = "info"
	VariantLoading Variant = "loading"
)

// Variants lists every known variant.
var Variants = []Variant{VariantSuccess, VariantError, VariantWarning, VariantInfo, VariantLoading}

// Normalize resolves a requested variant name. Matching is
// case-insensitive; anything unrecognized, including "", resolves to
// VariantInfo.
func Normalize(input string) Variant {
	v := Variant(strings.ToLower(input))
	switch v {
	case VariantSuccess, VariantError, VariantWarning, VariantInfo, VariantLoading:
		return v
	default:
		return VariantInfo
	}
}

// Title returns the capitalized variant name used as the default title.
func (v Variant) Title() string {
	s := string(v)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// String implements fmt.Stringer.
func (v Variant) String() string {
	return string(v)
}
