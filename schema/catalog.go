package schema

import (
	"fmt"
	"math"
	"strings"
)

// TemporalCategory classifies a physical type's date/time behavior.
type TemporalCategory int

const (
	TemporalNone TemporalCategory = iota
	TemporalDate
	TemporalTime
	TemporalTimestamp
)

// SynonymClass is a set of physical column type names considered equivalent
// for change detection. Classes are pairwise disjoint; NewTypeCatalog rejects
// a configuration where the same name appears twice.
type SynonymClass []string

type temporalEntry struct {
	typeName string
	category TemporalCategory
}

type currencySpec struct {
	precision int
	scale     int
}

// CatalogConfig is the raw dialect configuration a TypeCatalog is built from.
// The per-dialect constructors in this package fill one in; callers adding a
// dialect supply their own.
type CatalogConfig struct {
	Mode          GeneratorMode
	PhysicalTypes map[LogicalType]string
	DefaultValues map[LogicalType]string

	// Temporal categories in declaration order. Order matters: the synonym
	// pass of TemporalCategoryOf takes the first match.
	Temporal []TemporalMapping

	SynonymClasses   []SynonymClass
	ReservedWords    []string
	NoParameterTypes []string
	AutoGenerated    []string

	// Per-type length ceilings for variable-length text. Types absent here
	// fall back to DefaultMaxLength (or the platform integer maximum).
	MaxLengths       map[string]int
	DefaultMaxLength int

	// Currency types carry fixed, non-overridable precision and scale.
	Currency map[string]CurrencyRule

	// Implicit precision a decimal column reports when the attribute never
	// stated one, and the sentinel scale floor for approximate-scale columns.
	DefaultDecimalPrecision int
	ScaleFloor              int

	// Rendering knobs for identity-backed sequence emulation.
	IdentityType string
	DateTimeType string
}

type TemporalMapping struct {
	Type     string
	Category TemporalCategory
}

type CurrencyRule struct {
	Precision int
	Scale     int
}

// TypeCatalog is the immutable dialect configuration of the compiler. It is
// constructed once per dialect at startup and safe to share across concurrent
// callers.
type TypeCatalog struct {
	mode          GeneratorMode
	physicalTypes map[LogicalType]string
	defaultValues map[LogicalType]string
	temporal      []temporalEntry
	synonyms      []SynonymClass
	synonymIndex  map[string]int
	reservedWords map[string]struct{}
	noParameter   map[string]struct{}
	autoGenerated map[string]struct{}
	maxLengths    map[string]int
	defaultMaxLen int
	currency      map[string]currencySpec

	defaultDecimalPrecision int
	scaleFloor              int
	identityType            string
	dateTimeType            string
}

func NewTypeCatalog(config CatalogConfig) (*TypeCatalog, error) {
	catalog := &TypeCatalog{
		mode:                    config.Mode,
		physicalTypes:           map[LogicalType]string{},
		defaultValues:           map[LogicalType]string{},
		synonymIndex:            map[string]int{},
		reservedWords:           map[string]struct{}{},
		noParameter:             map[string]struct{}{},
		autoGenerated:           map[string]struct{}{},
		maxLengths:              map[string]int{},
		defaultMaxLen:           config.DefaultMaxLength,
		currency:                map[string]currencySpec{},
		defaultDecimalPrecision: config.DefaultDecimalPrecision,
		scaleFloor:              config.ScaleFloor,
		identityType:            config.IdentityType,
		dateTimeType:            config.DateTimeType,
	}
	if catalog.defaultMaxLen == 0 {
		catalog.defaultMaxLen = math.MaxInt32
	}

	for logical, physical := range config.PhysicalTypes {
		catalog.physicalTypes[logical] = physical
	}
	for logical, value := range config.DefaultValues {
		catalog.defaultValues[logical] = value
	}
	for _, mapping := range config.Temporal {
		catalog.temporal = append(catalog.temporal, temporalEntry{
			typeName: strings.ToLower(mapping.Type),
			category: mapping.Category,
		})
	}
	for i, class := range config.SynonymClasses {
		normalized := make(SynonymClass, len(class))
		for j, name := range class {
			name = strings.ToLower(name)
			if existing, ok := catalog.synonymIndex[name]; ok {
				return nil, fmt.Errorf("type %q appears in synonym classes %v and %v", name, config.SynonymClasses[existing], class)
			}
			catalog.synonymIndex[name] = i
			normalized[j] = name
		}
		catalog.synonyms = append(catalog.synonyms, normalized)
	}
	for _, word := range config.ReservedWords {
		catalog.reservedWords[strings.ToLower(word)] = struct{}{}
	}
	for _, name := range config.NoParameterTypes {
		catalog.noParameter[strings.ToLower(name)] = struct{}{}
	}
	for _, name := range config.AutoGenerated {
		catalog.autoGenerated[strings.ToLower(name)] = struct{}{}
	}
	for name, length := range config.MaxLengths {
		catalog.maxLengths[strings.ToLower(name)] = length
	}
	for name, rule := range config.Currency {
		catalog.currency[strings.ToLower(name)] = currencySpec{precision: rule.Precision, scale: rule.Scale}
	}
	return catalog, nil
}

func mustCatalog(config CatalogConfig) *TypeCatalog {
	catalog, err := NewTypeCatalog(config)
	if err != nil {
		panic(err)
	}
	return catalog
}

func (c *TypeCatalog) Mode() GeneratorMode {
	return c.mode
}

// PhysicalType resolves a logical type to the dialect's physical column type.
func (c *TypeCatalog) PhysicalType(logical LogicalType) (string, error) {
	physical, ok := c.physicalTypes[logical]
	if !ok {
		return "", UnknownLogicalTypeError{Logical: logical}
	}
	return physical, nil
}

// DefaultValue returns the dialect's default-value literal for a logical
// type. ok is false when the dialect has no convention for that type; the
// caller must omit the default clause.
func (c *TypeCatalog) DefaultValue(logical LogicalType) (string, bool) {
	value, ok := c.defaultValues[logical]
	return value, ok
}

// TemporalCategoryOf classifies a physical type. The exact name is checked
// first; failing that, every synonym of the type is checked against the same
// table and the first match in declaration order wins. The second pass exists
// because a dialect may declare date/time distinctly while storing both under
// a generic datetime synonym class.
func (c *TypeCatalog) TemporalCategoryOf(physicalType string) TemporalCategory {
	name := strings.ToLower(physicalType)
	for _, entry := range c.temporal {
		if entry.typeName == name {
			return entry.category
		}
	}
	for _, entry := range c.temporal {
		for _, synonym := range c.Synonyms(name) {
			if entry.typeName == synonym {
				return entry.category
			}
		}
	}
	return TemporalNone
}

// Synonyms returns the synonym class containing physicalType, or nil when the
// type belongs to none. Empty is a normal outcome, not a failure.
func (c *TypeCatalog) Synonyms(physicalType string) SynonymClass {
	i, ok := c.synonymIndex[strings.ToLower(physicalType)]
	if !ok {
		return nil
	}
	return c.synonyms[i]
}

// IsNoParameterType reports whether the type's DDL must never carry a
// length/precision parameter, even when introspected metadata reports one.
func (c *TypeCatalog) IsNoParameterType(physicalType string) bool {
	_, ok := c.noParameter[strings.ToLower(physicalType)]
	return ok
}

// IsAutoGenerated reports whether the DBMS fills the type in by itself. Such
// types never receive an explicit value and are never mapped from a logical
// type.
func (c *TypeCatalog) IsAutoGenerated(physicalType string) bool {
	_, ok := c.autoGenerated[strings.ToLower(physicalType)]
	return ok
}

// MaxLength returns the dialect ceiling for a variable-length text type.
// Wide-character variants carry a distinct, smaller ceiling; types with no
// configured ceiling get the platform maximum.
func (c *TypeCatalog) MaxLength(physicalType string) int {
	if length, ok := c.maxLengths[strings.ToLower(physicalType)]; ok {
		return length
	}
	return c.defaultMaxLen
}

func (c *TypeCatalog) IsReservedWord(identifier string) bool {
	_, ok := c.reservedWords[strings.ToLower(identifier)]
	return ok
}

// CurrencyRuleFor returns the fixed precision/scale rule for a currency type.
func (c *TypeCatalog) CurrencyRuleFor(physicalType string) (CurrencyRule, bool) {
	spec, ok := c.currency[strings.ToLower(physicalType)]
	if !ok {
		return CurrencyRule{}, false
	}
	return CurrencyRule{Precision: spec.precision, Scale: spec.scale}, true
}

func (c *TypeCatalog) DefaultDecimalPrecision() int {
	return c.defaultDecimalPrecision
}

func (c *TypeCatalog) ScaleFloor() int {
	return c.scaleFloor
}

// IdentityType is the physical type backing emulated sequence counters.
func (c *TypeCatalog) IdentityType() string {
	return c.identityType
}

// DateTimeType is the physical type used for bookkeeping timestamps in
// emulated sequence tables.
func (c *TypeCatalog) DateTimeType() string {
	return c.dateTimeType
}
