package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMetadata returns canned dependency lookups, failing whichever call its
// error fields arm.
type fakeMetadata struct {
	foreignKeys []ConstraintRef
	defaults    []ConstraintRef
	indexes     []IndexRef

	foreignKeyErr error
	defaultErr    error
	indexErr      error
}

func (f *fakeMetadata) ForeignKeyConstraints(table string) ([]ConstraintRef, error) {
	return f.foreignKeys, f.foreignKeyErr
}

func (f *fakeMetadata) DefaultConstraints(table, column string) ([]ConstraintRef, error) {
	return f.defaults, f.defaultErr
}

func (f *fakeMetadata) IndexesForColumn(table, column string) ([]IndexRef, error) {
	return f.indexes, f.indexErr
}

func testEntity() EntityDescriptor {
	return EntityDescriptor{
		Name:  "Customer",
		Table: "CUSTOMER",
		Attributes: []AttributeDescriptor{
			{Name: "id", Type: LogicalUUID, ID: true},
		},
	}
}

func TestAlterStatementsTypeChangeRebuildsColumn(t *testing.T) {
	metadata := &fakeMetadata{
		foreignKeys: []ConstraintRef{{Name: "FK_ORDER_CUSTOMER"}},
		defaults:    []ConstraintRef{{Name: "DF_CUSTOMER_AGE"}},
		indexes:     []IndexRef{{Name: "IDX_CUSTOMER_AGE"}},
	}
	d := NewDiffer(mssqlBuilder(), metadata)

	attr := AttributeDescriptor{Name: "age", Type: LogicalInteger}
	current := ColumnDefinition{Type: "varchar", Length: 10, Nullable: true}

	stmts, err := d.AlterStatements(testEntity(), attr, current)
	require.NoError(t, err)
	require.Len(t, stmts, 5)
	assert.Equal(t, "alter table CUSTOMER drop constraint FK_ORDER_CUSTOMER ^", stmts[0].Text)
	assert.Equal(t, "alter table CUSTOMER drop constraint DF_CUSTOMER_AGE ^", stmts[1].Text)
	assert.Equal(t, "drop index IDX_CUSTOMER_AGE on CUSTOMER ^", stmts[2].Text)
	assert.Equal(t, "alter table CUSTOMER drop column AGE ^", stmts[3].Text)
	assert.Equal(t, "alter table CUSTOMER add AGE integer ^", stmts[4].Text)
	for _, stmt := range stmts {
		assert.NotContains(t, stmt.Text, "alter column", "type change never alters in place")
	}
}

func TestAlterStatementsLengthChangeOnly(t *testing.T) {
	d := NewDiffer(mssqlBuilder(), &fakeMetadata{})

	attr := AttributeDescriptor{Name: "name", Type: LogicalString, Length: 200}
	current := ColumnDefinition{Type: "varchar", Length: 100, Nullable: true}

	stmts, err := d.AlterStatements(testEntity(), attr, current)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	assert.Equal(t, "alter table CUSTOMER alter column NAME varchar(200) ^", stmts[0].Text)
}

func TestAlterStatementsCharWideningStaysInPlace(t *testing.T) {
	d := NewDiffer(mssqlBuilder(), &fakeMetadata{})

	attr := AttributeDescriptor{Name: "code", Type: LogicalString, Length: 20}
	current := ColumnDefinition{Type: "char", Length: 5, Nullable: true}

	stmts, err := d.AlterStatements(testEntity(), attr, current)
	require.NoError(t, err)
	require.Len(t, stmts, 1, "char to varchar widening is a length alter, not a rebuild")
	assert.Equal(t, "alter table CUSTOMER alter column CODE varchar(20) ^", stmts[0].Text)
}

func TestAlterStatementsDecimalPrecisionChange(t *testing.T) {
	d := NewDiffer(mssqlBuilder(), &fakeMetadata{})

	attr := AttributeDescriptor{Name: "balance", Type: LogicalDecimal, Precision: 19, Scale: 4}
	current := ColumnDefinition{Type: "decimal", Precision: 10, Scale: 2, Nullable: true}

	stmts, err := d.AlterStatements(testEntity(), attr, current)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	assert.Equal(t, "alter table CUSTOMER alter column BALANCE decimal(19,4) ^", stmts[0].Text)
}

func TestAlterStatementsScaleOnlyChangeKeepsDefaultPrecision(t *testing.T) {
	d := NewDiffer(mssqlBuilder(), &fakeMetadata{})

	attr := AttributeDescriptor{Name: "balance", Type: LogicalDecimal, Scale: 3}
	current := ColumnDefinition{Type: "decimal", Precision: 18, Scale: 2, Nullable: true}

	stmts, err := d.AlterStatements(testEntity(), attr, current)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	assert.Equal(t, "alter table CUSTOMER alter column BALANCE decimal(18,3) ^", stmts[0].Text,
		"unspecified precision falls back to the dialect default, never zero")
}

func TestAlterStatementsDefaultDecimalPrecisionTolerated(t *testing.T) {
	d := NewDiffer(mssqlBuilder(), &fakeMetadata{})

	attr := AttributeDescriptor{Name: "balance", Type: LogicalDecimal, Scale: 2}
	current := ColumnDefinition{Type: "decimal", Precision: 18, Scale: 2, Nullable: true}

	stmts, err := d.AlterStatements(testEntity(), attr, current)
	require.NoError(t, err)
	assert.Empty(t, stmts, "an unspecified precision matches the dialect default")
}

func TestAlterStatementsCurrencyColumnNeverAltered(t *testing.T) {
	d := NewDiffer(mssqlBuilder(), &fakeMetadata{})

	attr := AttributeDescriptor{Name: "price", Type: LogicalDecimal, Precision: 19, Scale: 4}
	current := ColumnDefinition{Type: "money", Precision: 19, Scale: 4, Nullable: true}

	stmts, err := d.AlterStatements(testEntity(), attr, current)
	require.NoError(t, err)
	assert.Empty(t, stmts, "money already carries the fixed 19,4 shape")
}

func TestAlterStatementsMandatoryChange(t *testing.T) {
	d := NewDiffer(mssqlBuilder(), &fakeMetadata{})

	attr := AttributeDescriptor{Name: "age", Type: LogicalInteger, Mandatory: true}
	current := ColumnDefinition{Type: "integer", Nullable: true}

	stmts, err := d.AlterStatements(testEntity(), attr, current)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	assert.Equal(t, "alter table CUSTOMER alter column AGE integer not null ^", stmts[0].Text)
}

func TestAlterStatementsPrimaryKeyMandatoryIsNoOp(t *testing.T) {
	d := NewDiffer(mssqlBuilder(), &fakeMetadata{})

	attr := AttributeDescriptor{Name: "id", Type: LogicalUUID, ID: true, Mandatory: true}
	current := ColumnDefinition{Type: "uniqueidentifier", Nullable: true}

	stmts, err := d.AlterStatements(testEntity(), attr, current)
	require.NoError(t, err)
	assert.Empty(t, stmts)
}

func TestAlterStatementsNothingDiffers(t *testing.T) {
	d := NewDiffer(mssqlBuilder(), &fakeMetadata{})

	attr := AttributeDescriptor{Name: "name", Type: LogicalString, Length: 100, Mandatory: true}
	current := ColumnDefinition{Type: "varchar", Length: 100, Nullable: false}

	stmts, err := d.AlterStatements(testEntity(), attr, current)
	require.NoError(t, err)
	assert.Empty(t, stmts)
}

func TestAlterStatementsRejectsEmbedded(t *testing.T) {
	d := NewDiffer(mssqlBuilder(), &fakeMetadata{})

	attr := AttributeDescriptor{Name: "address", Embedded: true}
	_, err := d.AlterStatements(testEntity(), attr, ColumnDefinition{Type: "varchar"})

	var invalid InvalidAttributeError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "address", invalid.Attribute)
}

func TestAlterStatementsProviderFailure(t *testing.T) {
	lookupErr := errors.New("connection reset")
	tests := []struct {
		name     string
		metadata *fakeMetadata
	}{
		{name: "foreign key lookup fails", metadata: &fakeMetadata{foreignKeyErr: lookupErr}},
		{name: "default lookup fails", metadata: &fakeMetadata{defaultErr: lookupErr}},
		{name: "index lookup fails", metadata: &fakeMetadata{indexErr: lookupErr}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDiffer(mssqlBuilder(), tt.metadata)
			attr := AttributeDescriptor{Name: "age", Type: LogicalInteger}
			current := ColumnDefinition{Type: "varchar", Length: 10, Nullable: true}

			stmts, err := d.AlterStatements(testEntity(), attr, current)
			assert.Nil(t, stmts, "no partial statement list on failure")
			require.ErrorIs(t, err, lookupErr)

			var metadataErr MetadataError
			require.ErrorAs(t, err, &metadataErr)
			assert.Equal(t, "CUSTOMER", metadataErr.Table)
		})
	}
}

func TestDropColumnStatements(t *testing.T) {
	metadata := &fakeMetadata{
		defaults: []ConstraintRef{{Name: "DF_CUSTOMER_NAME"}},
		indexes:  []IndexRef{{Name: "IDX_CUSTOMER_NAME", Unique: true}},
	}
	d := NewDiffer(mssqlBuilder(), metadata)

	stmts, err := d.DropColumnStatements("CUSTOMER", "NAME")
	require.NoError(t, err)
	require.Len(t, stmts, 3)
	assert.Equal(t, "alter table CUSTOMER drop constraint DF_CUSTOMER_NAME ^", stmts[0].Text)
	assert.Equal(t, "drop index IDX_CUSTOMER_NAME on CUSTOMER ^", stmts[1].Text)
	assert.Equal(t, "alter table CUSTOMER drop column NAME ^", stmts[2].Text)
}
