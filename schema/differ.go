package schema

// Differ computes, for one changed attribute, the minimal ordered statement
// sequence that brings the observed column in line with the model. It holds
// no mutable cross-call state.
type Differ struct {
	builder  *Builder
	checker  Checker
	catalog  *TypeCatalog
	metadata MetadataProvider
}

func NewDiffer(builder *Builder, metadata MetadataProvider) *Differ {
	return &Differ{
		builder:  builder,
		checker:  NewChecker(builder.catalog),
		catalog:  builder.catalog,
		metadata: metadata,
	}
}

// AlterStatements diffs the attribute's desired state against the observed
// column. A real type change forces a rebuild: dependent constraints and
// indexes are dropped first, then the column, then the column is re-added.
// Anything reconcilable in place gets only the targeted alter statements for
// the dimensions that actually differ; untouched dimensions emit nothing.
// On any error no partial statement list is returned.
func (d *Differ) AlterStatements(entity EntityDescriptor, attr AttributeDescriptor, current ColumnDefinition) ([]Statement, error) {
	if attr.Embedded {
		return nil, InvalidAttributeError{Entity: entity.Name, Attribute: attr.Name, Reason: "embedded attribute cannot be diffed as a scalar column"}
	}
	column := entity.ColumnName(attr)
	desiredType, err := d.catalog.PhysicalType(attr.Type)
	if err != nil {
		return nil, err
	}

	if d.checker.IsTypeDifferent(attr, desiredType, current.Type, current.Length) {
		return d.rebuildColumn(entity, attr, column)
	}

	var stmts []Statement
	if !d.catalog.IsNoParameterType(current.Type) {
		if attr.Type == LogicalString && d.checker.IsLengthDifferent(attr.Length, current.Length) {
			stmts = append(stmts, d.builder.AlterColumnLength(entity.Table, column, desiredType, attr.Length))
		}
		precisionDiffers := d.checker.IsPrecisionDifferent(attr.Precision, current.Precision, current.Type)
		scaleDiffers := d.checker.IsScaleDifferent(attr.Scale, current.Scale, current.Type)
		if attr.Type == LogicalDecimal && (precisionDiffers || scaleDiffers) {
			// An unspecified attribute precision is tolerated against the
			// dialect default, but the alter must still render a valid one.
			precision := attr.Precision
			if precision == 0 {
				precision = d.catalog.DefaultDecimalPrecision()
			}
			stmts = append(stmts, d.builder.AlterColumnDecimal(entity.Table, column, desiredType, precision, attr.Scale))
		}
	}
	if d.checker.IsMandatoryDifferent(attr.Mandatory, !current.Nullable) {
		// The primary key column already implies not null; altering it for
		// mandatory-ness is a no-op.
		if !attr.ID {
			columnType, err := d.builder.ColumnType(attr)
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, d.builder.AlterColumnMandatory(entity.Table, column, columnType, attr.Mandatory))
		}
	}
	return stmts, nil
}

// DropColumnStatements emits the safe removal sequence for one column:
// dependent constraint and index drops discovered through the provider, then
// the column drop itself.
func (d *Differ) DropColumnStatements(table, column string) ([]Statement, error) {
	stmts, err := d.dependentDrops(table, column)
	if err != nil {
		return nil, err
	}
	return append(stmts, d.builder.DropColumn(table, column)), nil
}

// rebuildColumn drops everything depending on the column, then the column,
// then re-adds it: foreign-key constraints first, default constraints next,
// indexes last, each in the provider's returned order.
func (d *Differ) rebuildColumn(entity EntityDescriptor, attr AttributeDescriptor, column string) ([]Statement, error) {
	stmts, err := d.dependentDrops(entity.Table, column)
	if err != nil {
		return nil, err
	}
	stmts = append(stmts, d.builder.DropColumn(entity.Table, column))
	added, err := d.builder.AddColumn(entity, attr, column)
	if err != nil {
		return nil, err
	}
	return append(stmts, added...), nil
}

func (d *Differ) dependentDrops(table, column string) ([]Statement, error) {
	var stmts []Statement

	foreignKeys, err := d.metadata.ForeignKeyConstraints(table)
	if err != nil {
		return nil, MetadataError{Table: table, Op: "list foreign key constraints", Err: err}
	}
	for _, constraint := range foreignKeys {
		stmts = append(stmts, d.builder.DropConstraint(table, constraint.Name))
	}

	defaults, err := d.metadata.DefaultConstraints(table, column)
	if err != nil {
		return nil, MetadataError{Table: table, Column: column, Op: "list default constraints", Err: err}
	}
	for _, constraint := range defaults {
		stmts = append(stmts, d.builder.DropConstraint(table, constraint.Name))
	}

	indexes, err := d.metadata.IndexesForColumn(table, column)
	if err != nil {
		return nil, MetadataError{Table: table, Column: column, Op: "list indexes", Err: err}
	}
	for _, index := range indexes {
		stmts = append(stmts, d.builder.DropIndex(table, index.Name))
	}
	return stmts, nil
}
