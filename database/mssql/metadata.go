package mssql

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/migdef/migdef/database"
	"github.com/migdef/migdef/schema"
	_ "github.com/microsoft/go-mssqldb"
)

// MssqlMetadata answers the differ's constraint and index name lookups from
// the SQL Server system catalog.
type MssqlMetadata struct {
	config database.Config
	db     *sql.DB
}

func NewMetadata(config database.Config) (*MssqlMetadata, error) {
	db, err := sql.Open("sqlserver", mssqlBuildDSN(config))
	if err != nil {
		return nil, err
	}

	return &MssqlMetadata{
		db:     db,
		config: config,
	}, nil
}

func (m *MssqlMetadata) ForeignKeyConstraints(table string) ([]schema.ConstraintRef, error) {
	schemaName, table := splitTableName(table)
	query := fmt.Sprintf(`SELECT f.name
FROM sys.foreign_keys f
WHERE f.parent_object_id = OBJECT_ID('[%s].[%s]')
ORDER BY f.name`, schemaName, table)

	rows, err := m.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	constraints := []schema.ConstraintRef{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		constraints = append(constraints, schema.ConstraintRef{Name: name})
	}
	return constraints, rows.Err()
}

func (m *MssqlMetadata) DefaultConstraints(table, column string) ([]schema.ConstraintRef, error) {
	schemaName, table := splitTableName(table)
	query := fmt.Sprintf(`SELECT d.name
FROM sys.default_constraints d
JOIN sys.columns c ON d.parent_object_id = c.[object_id] AND d.parent_column_id = c.column_id
WHERE d.parent_object_id = OBJECT_ID('[%s].[%s]') AND c.name = '%s'`, schemaName, table, column)

	rows, err := m.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	constraints := []schema.ConstraintRef{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		constraints = append(constraints, schema.ConstraintRef{Name: name})
	}
	return constraints, rows.Err()
}

func (m *MssqlMetadata) IndexesForColumn(table, column string) ([]schema.IndexRef, error) {
	schemaName, table := splitTableName(table)
	query := fmt.Sprintf(`SELECT ind.name, ind.is_unique
FROM sys.indexes ind
JOIN sys.index_columns ic ON ind.[object_id] = ic.[object_id] AND ind.index_id = ic.index_id
WHERE ind.[object_id] = OBJECT_ID('[%s].[%s]')
  AND COL_NAME(ic.[object_id], ic.column_id) = '%s'
  AND ind.is_primary_key = 0`, schemaName, table, column)

	rows, err := m.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	indexes := []schema.IndexRef{}
	for rows.Next() {
		var name string
		var unique bool
		if err := rows.Scan(&name, &unique); err != nil {
			return nil, err
		}
		indexes = append(indexes, schema.IndexRef{Name: name, Unique: unique})
	}
	return indexes, rows.Err()
}

func (m *MssqlMetadata) DB() *sql.DB {
	return m.db
}

func (m *MssqlMetadata) Close() error {
	return m.db.Close()
}

func mssqlBuildDSN(config database.Config) string {
	query := url.Values{}
	query.Add("database", config.DbName)

	u := &url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(config.User, config.Password),
		Host:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		RawQuery: query.Encode(),
	}
	return u.String()
}

func splitTableName(table string) (string, string) {
	schemaName := "dbo"
	schemaTable := strings.SplitN(table, ".", 2)
	if len(schemaTable) == 2 {
		schemaName = schemaTable[0]
		table = schemaTable[1]
	}
	return schemaName, table
}
