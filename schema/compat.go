package schema

import "strings"

// Checker decides, per dimension of a column definition, whether a change
// requires a statement at all. It holds no state beyond the immutable catalog
// and is safe to share across concurrent callers.
type Checker struct {
	catalog *TypeCatalog
}

func NewChecker(catalog *TypeCatalog) Checker {
	return Checker{catalog: catalog}
}

// IsPrecisionDifferent compares the attribute's declared precision against
// the column's observed one. Currency types carry fixed, non-overridable
// precision, so only attrPrecision is compared against the constant. An
// unspecified attribute precision matched against the dialect's implicit
// default decimal precision counts as equal: the attribute never stated a
// precision, so the platform default is acceptable.
func (c Checker) IsPrecisionDifferent(attrPrecision, columnPrecision int, columnType string) bool {
	if rule, ok := c.catalog.CurrencyRuleFor(columnType); ok {
		return attrPrecision != rule.Precision
	}
	if attrPrecision == 0 && columnPrecision == c.catalog.DefaultDecimalPrecision() {
		return false
	}
	return columnPrecision != attrPrecision
}

// IsScaleDifferent compares scales. Currency types have fixed scale. A
// column scale at or below the dialect floor is a sentinel for
// floating/approximate-scale storage and is tolerated against an unspecified
// attribute scale.
func (c Checker) IsScaleDifferent(attrScale, columnScale int, columnType string) bool {
	if rule, ok := c.catalog.CurrencyRuleFor(columnType); ok {
		return attrScale != rule.Scale
	}
	if attrScale == 0 && columnScale <= c.catalog.ScaleFloor() {
		return false
	}
	return columnScale != attrScale
}

// IsTypeDifferent reports whether moving from oldType to currentType is a
// real type change. Widening a fixed-width character column into varchar is
// free when the old column was wider than one character; everything else goes
// through the synonym-class comparator.
func (c Checker) IsTypeDifferent(attr AttributeDescriptor, currentType, oldType string, oldLength int) bool {
	if attr.Type == LogicalString && oldLength > 1 {
		old := strings.ToLower(oldType)
		if (old == "char" || old == "nchar") && strings.EqualFold(currentType, "varchar") {
			return false
		}
	}
	return !c.typesEqual(currentType, oldType)
}

func (c Checker) IsLengthDifferent(attrLength, columnLength int) bool {
	return attrLength != columnLength
}

func (c Checker) IsMandatoryDifferent(mandatory, notNull bool) bool {
	return mandatory != notNull
}

// typesEqual treats two physical types as equal when their names match
// case-insensitively or when both belong to the same synonym class.
func (c Checker) typesEqual(a, b string) bool {
	if strings.EqualFold(a, b) {
		return true
	}
	for _, synonym := range c.catalog.Synonyms(a) {
		if strings.EqualFold(synonym, b) {
			return true
		}
	}
	return false
}
