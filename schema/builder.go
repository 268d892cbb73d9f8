package schema

import (
	"fmt"
	"strconv"
	"strings"
)

const indent = "    "

// Builder renders DDL text for every structural operation. It is stateless
// given its catalog, so one instance may be shared across concurrent
// migration runs.
type Builder struct {
	mode    GeneratorMode
	catalog *TypeCatalog
}

func NewBuilder(catalog *TypeCatalog) *Builder {
	return &Builder{
		mode:    catalog.Mode(),
		catalog: catalog,
	}
}

// delimiter is the token the script assembler splits on. Kept literal.
func (b *Builder) delimiter() string {
	if b.mode == GeneratorModeMssql {
		return "^"
	}
	return ";"
}

// sequenceDelimiter terminates the sequence-emulation statements, which
// historically run through a separate runner splitting on semicolons.
func (b *Builder) sequenceDelimiter() string {
	return ";"
}

// ident applies the dialect's identifier case convention and quotes the name
// when it collides with a reserved word. Every statement path goes through
// here so casing and quoting never diverge.
func (b *Builder) ident(name string) string {
	switch b.mode {
	case GeneratorModeMssql:
		name = strings.ToUpper(name)
	case GeneratorModePostgres:
		name = strings.ToLower(name)
	}
	if b.catalog.IsReservedWord(name) {
		return b.quoteIdentifier(name)
	}
	return name
}

func (b *Builder) quoteIdentifier(name string) string {
	switch b.mode {
	case GeneratorModeMssql:
		return "[" + name + "]"
	case GeneratorModeMysql:
		return "`" + name + "`"
	default:
		return `"` + name + `"`
	}
}

// upperName uppercases object names for case-insensitive dialect matching;
// other dialects fold to their own convention.
func (b *Builder) upperName(name string) string {
	if b.mode == GeneratorModePostgres {
		return strings.ToLower(name)
	}
	return strings.ToUpper(name)
}

// ColumnType resolves an attribute's physical type including the parameter
// clause. Types in the no-parameter set never carry one, even when the
// attribute specifies a length or precision.
func (b *Builder) ColumnType(attr AttributeDescriptor) (string, error) {
	if attr.Embedded {
		return "", InvalidAttributeError{Attribute: attr.Name, Reason: "embedded attribute has no column type"}
	}
	physical, err := b.catalog.PhysicalType(attr.Type)
	if err != nil {
		return "", err
	}
	if attr.Identity {
		if identity := b.identityTypeFor(attr.Type); identity != "" {
			return identity, nil
		}
	}
	if b.catalog.IsNoParameterType(physical) {
		return physical, nil
	}
	switch attr.Type {
	case LogicalString:
		return physical + "(" + b.lengthParam(physical, attr.Length) + ")", nil
	case LogicalUUID:
		// Dialects without a native GUID type store one in 36 characters.
		return physical + "(36)", nil
	case LogicalDecimal:
		if attr.Precision > 0 {
			return fmt.Sprintf("%s(%d,%d)", physical, attr.Precision, attr.Scale), nil
		}
		return physical, nil
	}
	return physical, nil
}

func (b *Builder) identityTypeFor(logical LogicalType) string {
	switch b.mode {
	case GeneratorModeMssql:
		if logical == LogicalInteger {
			return "integer identity"
		}
		if logical == LogicalLong {
			return "bigint identity"
		}
	case GeneratorModePostgres:
		if logical == LogicalInteger {
			return "serial"
		}
		if logical == LogicalLong {
			return "bigserial"
		}
	case GeneratorModeMysql:
		if logical == LogicalInteger {
			return "integer auto_increment"
		}
		if logical == LogicalLong {
			return "bigint auto_increment"
		}
	case GeneratorModeSQLite3:
		if logical == LogicalInteger || logical == LogicalLong {
			return "integer"
		}
	}
	return ""
}

// lengthParam renders the length of a variable-length text type, clamping to
// the dialect ceiling. Past the ceiling SQL Server switches to the max
// sentinel instead of a number. An unspecified length gets the conventional
// 255.
func (b *Builder) lengthParam(physical string, length int) string {
	if length == 0 {
		length = 255
	}
	ceiling := b.catalog.MaxLength(physical)
	if length < 0 || length > ceiling {
		if b.mode == GeneratorModeMssql {
			return "max"
		}
		return strconv.Itoa(ceiling)
	}
	return strconv.Itoa(length)
}

// ColumnDefinitionClause renders "<type><params>" with an optional trailing
// not-null clause.
func (b *Builder) ColumnDefinitionClause(attr AttributeDescriptor, notNull bool) (string, error) {
	columnType, err := b.ColumnType(attr)
	if err != nil {
		return "", err
	}
	if notNull {
		return columnType + " not null", nil
	}
	return columnType, nil
}

func (b *Builder) CreateTable(entity EntityDescriptor) (Statement, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "create table %s (", b.ident(entity.Table))

	first := true
	writeColumn := func(column, clause string) {
		if !first {
			fmt.Fprint(&sb, ",")
		}
		first = false
		fmt.Fprint(&sb, "\n"+indent)
		fmt.Fprintf(&sb, "%s %s", b.ident(column), clause)
	}

	var writeAttrs func(attrs []AttributeDescriptor) error
	writeAttrs = func(attrs []AttributeDescriptor) error {
		for _, attr := range attrs {
			if attr.Embedded {
				if len(attr.Attributes) == 0 {
					return InvalidAttributeError{Entity: entity.Name, Attribute: attr.Name, Reason: "embedded attribute has no sub-attributes"}
				}
				if err := writeAttrs(attr.Attributes); err != nil {
					return err
				}
				continue
			}
			clause, err := b.ColumnDefinitionClause(attr, attr.ID || attr.Mandatory)
			if err != nil {
				return err
			}
			writeColumn(entity.ColumnName(attr), clause)
		}
		return nil
	}
	if err := writeAttrs(entity.Attributes); err != nil {
		return Statement{}, err
	}

	if id, ok := entity.IDAttribute(); ok {
		clause, err := b.PrimaryKeyClause(entity, id)
		if err != nil {
			return Statement{}, err
		}
		if !first {
			fmt.Fprint(&sb, ",")
		}
		fmt.Fprint(&sb, "\n"+indent+clause)
	}
	fmt.Fprintf(&sb, "\n) %s", b.delimiter())
	return Statement{Text: sb.String(), Kind: StatementCreate}, nil
}

func (b *Builder) DropTable(table string) Statement {
	return Statement{
		Text: fmt.Sprintf("drop table %s %s", b.ident(table), b.delimiter()),
		Kind: StatementDrop,
	}
}

// AddColumn emits the statements adding one column. An embedded attribute
// expands recursively into one add per sub-attribute. A mandatory column on a
// dialect with a default-value convention goes through the transitional
// sequence: add with a named default populating existing rows, alter to not
// null, drop the transitional default.
func (b *Builder) AddColumn(entity EntityDescriptor, attr AttributeDescriptor, column string) ([]Statement, error) {
	if attr.Embedded {
		if len(attr.Attributes) == 0 {
			return nil, InvalidAttributeError{Entity: entity.Name, Attribute: attr.Name, Reason: "embedded attribute has no sub-attributes"}
		}
		var stmts []Statement
		for _, sub := range attr.Attributes {
			nested, err := b.AddColumn(entity, sub, entity.ColumnName(sub))
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, nested...)
		}
		return stmts, nil
	}

	columnType, err := b.ColumnType(attr)
	if err != nil {
		return nil, err
	}
	table := b.ident(entity.Table)
	col := b.ident(column)

	if !attr.Mandatory {
		return []Statement{{
			Text: fmt.Sprintf("alter table %s add %s %s %s", table, col, columnType, b.delimiter()),
			Kind: StatementAlter,
		}}, nil
	}

	defaultValue, ok := b.catalog.DefaultValue(attr.Type)
	if !ok {
		// No transitional default exists, so the column arrives not null
		// directly. Valid only while the table is empty.
		return []Statement{{
			Text: fmt.Sprintf("alter table %s add %s %s not null %s", table, col, columnType, b.delimiter()),
			Kind: StatementAlter,
		}}, nil
	}

	switch b.mode {
	case GeneratorModeMssql:
		constraint := b.upperName("DF_" + entity.Table + "_" + column)
		return []Statement{
			{
				Text: fmt.Sprintf("alter table %s add %s %s constraint %s default %s with values %s",
					table, col, columnType, constraint, defaultValue, b.delimiter()),
				Kind: StatementAlter,
			},
			{
				Text: fmt.Sprintf("alter table %s alter column %s %s not null %s", table, col, columnType, b.delimiter()),
				Kind: StatementAlter,
			},
			{
				Text: fmt.Sprintf("alter table %s drop constraint %s %s", table, constraint, b.delimiter()),
				Kind: StatementAlter,
			},
		}, nil
	case GeneratorModeSQLite3:
		return []Statement{{
			Text: fmt.Sprintf("alter table %s add column %s %s not null default %s %s",
				table, col, columnType, defaultValue, b.delimiter()),
			Kind: StatementAlter,
		}}, nil
	default:
		return []Statement{
			{
				Text: fmt.Sprintf("alter table %s add %s %s %s", table, col, columnType, b.delimiter()),
				Kind: StatementAlter,
			},
			{
				Text: fmt.Sprintf("update %s set %s = %s where %s is null %s", table, col, defaultValue, col, b.delimiter()),
				Kind: StatementAlter,
			},
			b.AlterColumnMandatory(entity.Table, column, columnType, true),
		}, nil
	}
}

func (b *Builder) DropColumn(table, column string) Statement {
	return Statement{
		Text: fmt.Sprintf("alter table %s drop column %s %s", b.ident(table), b.ident(column), b.delimiter()),
		Kind: StatementDrop,
	}
}

func (b *Builder) AlterColumnLength(table, column, physicalType string, length int) Statement {
	typeClause := physicalType + "(" + b.lengthParam(physicalType, length) + ")"
	return b.alterColumnClause(table, column, typeClause)
}

func (b *Builder) AlterColumnDecimal(table, column, physicalType string, precision, scale int) Statement {
	typeClause := fmt.Sprintf("%s(%d,%d)", physicalType, precision, scale)
	return b.alterColumnClause(table, column, typeClause)
}

func (b *Builder) AlterColumnType(entity EntityDescriptor, attr AttributeDescriptor, column string) (Statement, error) {
	columnType, err := b.ColumnType(attr)
	if err != nil {
		return Statement{}, err
	}
	return b.alterColumnClause(entity.Table, column, columnType), nil
}

// AlterColumnMandatory adds or drops the not-null clause. Dropping it means
// restating the full column definition without the clause.
func (b *Builder) AlterColumnMandatory(table, column, columnType string, notNull bool) Statement {
	t := b.ident(table)
	c := b.ident(column)
	var text string
	switch b.mode {
	case GeneratorModePostgres:
		if notNull {
			text = fmt.Sprintf("alter table %s alter column %s set not null %s", t, c, b.delimiter())
		} else {
			text = fmt.Sprintf("alter table %s alter column %s drop not null %s", t, c, b.delimiter())
		}
	case GeneratorModeMysql:
		if notNull {
			text = fmt.Sprintf("alter table %s modify %s %s not null %s", t, c, columnType, b.delimiter())
		} else {
			text = fmt.Sprintf("alter table %s modify %s %s %s", t, c, columnType, b.delimiter())
		}
	default:
		if notNull {
			text = fmt.Sprintf("alter table %s alter column %s %s not null %s", t, c, columnType, b.delimiter())
		} else {
			text = fmt.Sprintf("alter table %s alter column %s %s %s", t, c, columnType, b.delimiter())
		}
	}
	return Statement{Text: text, Kind: StatementAlter}
}

func (b *Builder) alterColumnClause(table, column, typeClause string) Statement {
	t := b.ident(table)
	c := b.ident(column)
	var text string
	switch b.mode {
	case GeneratorModePostgres:
		text = fmt.Sprintf("alter table %s alter column %s type %s %s", t, c, typeClause, b.delimiter())
	case GeneratorModeMysql:
		text = fmt.Sprintf("alter table %s modify %s %s %s", t, c, typeClause, b.delimiter())
	default:
		text = fmt.Sprintf("alter table %s alter column %s %s %s", t, c, typeClause, b.delimiter())
	}
	return Statement{Text: text, Kind: StatementAlter}
}

// RenameTable renders the two-phase rename procedure text on SQL Server and
// the plain rename elsewhere. Rename statements carry a trailing newline for
// script readability; the delimiter stays the split marker.
func (b *Builder) RenameTable(oldName, newName string) Statement {
	var text string
	if b.mode == GeneratorModeMssql {
		text = fmt.Sprintf("exec sp_rename '%s', '%s'\n%s", b.upperName(oldName), b.upperName(newName), b.delimiter())
	} else {
		text = fmt.Sprintf("alter table %s rename to %s %s", b.ident(oldName), b.ident(newName), b.delimiter())
	}
	return Statement{Text: text, Kind: StatementRename}
}

// RenameColumn passes the qualifying COLUMN discriminator sp_rename requires
// to disambiguate the renamed object.
func (b *Builder) RenameColumn(table, oldName, newName string) Statement {
	var text string
	if b.mode == GeneratorModeMssql {
		text = fmt.Sprintf("exec sp_rename '%s.%s', '%s', 'COLUMN'\n%s",
			b.upperName(table), b.upperName(oldName), b.upperName(newName), b.delimiter())
	} else {
		text = fmt.Sprintf("alter table %s rename column %s to %s %s",
			b.ident(table), b.ident(oldName), b.ident(newName), b.delimiter())
	}
	return Statement{Text: text, Kind: StatementRename}
}

// PrimaryKeyClause picks nonclustered indexing for identifier columns whose
// key values arrive in random order (generated unique identifiers), avoiding
// fragmentation from random inserts. Everything else takes the clustered
// default.
func (b *Builder) PrimaryKeyClause(entity EntityDescriptor, id AttributeDescriptor) (string, error) {
	if !id.ID {
		return "", InvalidAttributeError{Entity: entity.Name, Attribute: id.Name, Reason: "not an identifier attribute"}
	}
	column := b.ident(entity.ColumnName(id))
	if b.mode == GeneratorModeMssql && id.Type == LogicalUUID {
		return fmt.Sprintf("primary key nonclustered (%s)", column), nil
	}
	return fmt.Sprintf("primary key (%s)", column), nil
}

// PrimaryKeyConstraintStatements emits the named PK_<table> constraint. The
// preceding not-null alter is skipped only for identity-backed integer/long
// keys, where the identity property already implies not null.
func (b *Builder) PrimaryKeyConstraintStatements(entity EntityDescriptor) ([]Statement, error) {
	id, ok := entity.IDAttribute()
	if !ok {
		return nil, InvalidAttributeError{Entity: entity.Name, Reason: "entity has no identifier attribute"}
	}
	column := entity.ColumnName(id)

	var stmts []Statement
	identityBacked := id.Identity && (id.Type == LogicalInteger || id.Type == LogicalLong)
	if !identityBacked {
		columnType, err := b.ColumnType(id)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, b.AlterColumnMandatory(entity.Table, column, columnType, true))
	}

	constraint := b.upperName("PK_" + entity.Table)
	keyClause := "primary key"
	if b.mode == GeneratorModeMssql && id.Type == LogicalUUID {
		keyClause = "primary key nonclustered"
	}
	stmts = append(stmts, Statement{
		Text: fmt.Sprintf("alter table %s add constraint %s %s (%s) %s",
			b.ident(entity.Table), constraint, keyClause, b.ident(column), b.delimiter()),
		Kind: StatementAlter,
	})
	return stmts, nil
}

// CreateSequence emits either a native sequence or, on dialects without one,
// the identity-backed counter table that emulates it. Names are uppercased
// for case-insensitive dialect matching.
func (b *Builder) CreateSequence(name string, start, increment int64) Statement {
	sequence := b.upperName(name)
	var text string
	switch b.mode {
	case GeneratorModeMssql:
		text = fmt.Sprintf("create table %s (ID %s(%d,%d), CREATE_TS %s) %s",
			sequence, b.catalog.IdentityType(), start, increment, b.catalog.DateTimeType(), b.sequenceDelimiter())
	case GeneratorModePostgres:
		text = fmt.Sprintf("create sequence %s start with %d increment by %d %s",
			sequence, start, increment, b.sequenceDelimiter())
	case GeneratorModeMysql:
		text = fmt.Sprintf("create table %s (ID %s primary key, CREATE_TS %s) %s",
			sequence, b.catalog.IdentityType(), b.catalog.DateTimeType(), b.sequenceDelimiter())
	default:
		text = fmt.Sprintf("create table %s (ID %s primary key autoincrement, CREATE_TS %s) %s",
			sequence, b.catalog.IdentityType(), b.catalog.DateTimeType(), b.sequenceDelimiter())
	}
	return Statement{Text: text, Kind: StatementCreate}
}

// SequenceExists emits the catalog-table existence probe for an emulated or
// native sequence.
func (b *Builder) SequenceExists(name string) Statement {
	sequence := b.upperName(name)
	var text string
	switch b.mode {
	case GeneratorModeMssql:
		text = fmt.Sprintf("select name from sysobjects where xtype = 'U' and name = '%s' %s", sequence, b.sequenceDelimiter())
	case GeneratorModePostgres:
		text = fmt.Sprintf("select relname from pg_class where relkind = 'S' and relname = '%s' %s", sequence, b.sequenceDelimiter())
	case GeneratorModeMysql:
		text = fmt.Sprintf("select table_name from information_schema.tables where table_name = '%s' %s", sequence, b.sequenceDelimiter())
	default:
		text = fmt.Sprintf("select name from sqlite_master where type = 'table' and name = '%s' %s", sequence, b.sequenceDelimiter())
	}
	return Statement{Text: text, Kind: StatementQuery}
}

func (b *Builder) DeleteSequence(name string) Statement {
	sequence := b.upperName(name)
	var text string
	if b.mode == GeneratorModePostgres {
		text = fmt.Sprintf("drop sequence %s %s", sequence, b.sequenceDelimiter())
	} else {
		text = fmt.Sprintf("drop table %s %s", sequence, b.sequenceDelimiter())
	}
	return Statement{Text: text, Kind: StatementDrop}
}

func (b *Builder) DropIndex(table, index string) Statement {
	var text string
	switch b.mode {
	case GeneratorModeMssql, GeneratorModeMysql:
		text = fmt.Sprintf("drop index %s on %s %s", b.upperName(index), b.ident(table), b.delimiter())
	default:
		text = fmt.Sprintf("drop index %s %s", b.upperName(index), b.delimiter())
	}
	return Statement{Text: text, Kind: StatementDrop}
}

func (b *Builder) DropConstraint(table, constraint string) Statement {
	return Statement{
		Text: fmt.Sprintf("alter table %s drop constraint %s %s", b.ident(table), b.upperName(constraint), b.delimiter()),
		Kind: StatementDrop,
	}
}
