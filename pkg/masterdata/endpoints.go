package masterdata

import (
	"sort"
	"strings"
)

// Canonical attribute type names. These are the spellings the backend routes
// are registered under; ResolveEndpoint accepts any casing/separator variant.
const (
	TypeBrand            = "brand"
	TypeCollection       = "collection"
	TypeFeature          = "feature"
	TypeColor            = "color"
	TypeFrameStyle       = "frameStyle"
	TypeFrameType        = "frameType"
	TypeUnit             = "unit"
	TypeFrameShape       = "frameShape"
	TypeMaterial         = "material"
	TypeReadingPower     = "readingPower"
	TypePrescriptionType = "prescriptionType"
	TypeSubCategory      = "subCategory"
	TypeLensTechnology   = "lensTechnology"
	TypeDisposability    = "disposability"
	TypeTax              = "tax"
	TypeWarranty         = "warranty"
)

// canonicalTypes maps a normalized key (upper-cased, alphanumerics only) to
// the canonical attribute type name. An attribute type missing from this
// table is a caller bug and must fail loudly, never default to an empty list.
var canonicalTypes = map[string]string{
	"BRAND":            TypeBrand,
	"COLLECTION":       TypeCollection,
	"FEATURE":          TypeFeature,
	"COLOR":            TypeColor,
	"FRAMESTYLE":       TypeFrameStyle,
	"FRAMETYPE":        TypeFrameType,
	"UNIT":             TypeUnit,
	"FRAMESHAPE":       TypeFrameShape,
	"MATERIAL":         TypeMaterial,
	"READINGPOWER":     TypeReadingPower,
	"PRESCRIPTIONTYPE": TypePrescriptionType,
	"SUBCATEGORY":      TypeSubCategory,
	"LENSTECHNOLOGY":   TypeLensTechnology,
	"DISPOSABILITY":    TypeDisposability,
	"TAX":              TypeTax,
	"WARRANTY":         TypeWarranty,
}

// NormalizeType reduces an attribute type string to its lookup key: upper-case
// with every non-alphanumeric character stripped, so "frameStyle",
// "frame_style" and "FRAME-STYLE" all produce "FRAMESTYLE".
func NormalizeType(attributeType string) string {
	var b strings.Builder
	b.Grow(len(attributeType))
	for _, r := range strings.ToUpper(attributeType) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CanonicalType resolves any spelling variant of an attribute type to its
// canonical name. Unknown types return a ConfigurationError.
func CanonicalType(attributeType string) (string, error) {
	canonical, ok := canonicalTypes[NormalizeType(attributeType)]
	if !ok {
		return "", &ConfigurationError{Type: attributeType, ValidTypes: ValidTypes()}
	}
	return canonical, nil
}

// ResolveEndpoint maps an attribute type to its REST resource path
// (e.g. "frame_style" → "/master/frameStyle").
func ResolveEndpoint(attributeType string) (string, error) {
	canonical, err := CanonicalType(attributeType)
	if err != nil {
		return "", err
	}
	return "/master/" + canonical, nil
}

// ValidTypes returns the canonical attribute type names in sorted order.
func ValidTypes() []string {
	types := make([]string, 0, len(canonicalTypes))
	for _, canonical := range canonicalTypes {
		types = append(types, canonical)
	}
	sort.Strings(types)
	return types
}

// HasValue reports whether records of the given canonical type carry the
// secondary value field (tax percentage, warranty duration).
func HasValue(canonicalType string) bool {
	return canonicalType == TypeTax || canonicalType == TypeWarranty
}
