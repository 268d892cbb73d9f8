// This package has the schema compilation core. Never deal with live connections.
package schema

import "strings"

type GeneratorMode int

const (
	GeneratorModeMssql GeneratorMode = iota
	GeneratorModePostgres
	GeneratorModeMysql
	GeneratorModeSQLite3
)

func (g GeneratorMode) String() string {
	switch g {
	case GeneratorModeMssql:
		return "mssql"
	case GeneratorModePostgres:
		return "postgres"
	case GeneratorModeMysql:
		return "mysql"
	case GeneratorModeSQLite3:
		return "sqlite3"
	default:
		return ""
	}
}

// LogicalType is the symbolic attribute type of the entity model. It is the
// source of truth for physical mapping and default values; dialect names
// never appear on this level.
type LogicalType string

const (
	LogicalBoolean  = LogicalType("boolean")
	LogicalInteger  = LogicalType("integer")
	LogicalLong     = LogicalType("long")
	LogicalDecimal  = LogicalType("decimal")
	LogicalDouble   = LogicalType("double")
	LogicalString   = LogicalType("string")
	LogicalDate     = LogicalType("date")
	LogicalTime     = LogicalType("time")
	LogicalDateTime = LogicalType("datetime")
	LogicalUUID     = LogicalType("uuid")
	LogicalBinary   = LogicalType("binary")
)

// TypeDescriptor identifies the model-level type of a class or enum attribute.
type TypeDescriptor struct {
	FQN       string
	ClassName string
}

type AttributeDescriptor struct {
	Name      string
	Column    string // explicit column name; ColumnName() derives one when empty
	Type      LogicalType
	TypeInfo  TypeDescriptor
	ID        bool
	Identity  bool // value generated by the database on insert
	Mandatory bool
	Class     bool // reference to another entity (foreign key column)
	Embedded  bool
	Enum      bool
	Length    int
	Precision int
	Scale     int

	// Sub-attributes of an embedded attribute. Empty otherwise.
	Attributes []AttributeDescriptor
}

type EntityDescriptor struct {
	Name       string
	Table      string
	Attributes []AttributeDescriptor
}

// ColumnName returns the physical column name for an attribute of this entity.
func (e EntityDescriptor) ColumnName(attr AttributeDescriptor) string {
	if attr.Column != "" {
		return attr.Column
	}
	return strings.ToUpper(attr.Name)
}

// IDAttribute returns the identifier attribute, if the entity declares one.
func (e EntityDescriptor) IDAttribute() (AttributeDescriptor, bool) {
	for _, attr := range e.Attributes {
		if attr.ID {
			return attr, true
		}
	}
	return AttributeDescriptor{}, false
}

// ColumnDefinition is either the desired state of a column (derived from an
// attribute) or the observed state (read through a MetadataProvider). It has
// no identity beyond the call that produced it.
type ColumnDefinition struct {
	Type      string
	Length    int
	Precision int
	Scale     int
	Nullable  bool
	Default   string
}

type StatementKind int

const (
	StatementCreate StatementKind = iota
	StatementAlter
	StatementDrop
	StatementRename
	StatementQuery
)

// Statement is one textual DDL command, terminated with the dialect's
// delimiter token. Kind is used for ordering decisions only, never for
// execution.
type Statement struct {
	Text string
	Kind StatementKind
}

func (s Statement) String() string {
	return s.Text
}

// Texts flattens statements into the literal strings the script assembler
// consumes.
func Texts(stmts []Statement) []string {
	texts := make([]string, len(stmts))
	for i, stmt := range stmts {
		texts[i] = stmt.Text
	}
	return texts
}
