package mysql

import (
	"database/sql"
	"fmt"

	driver "github.com/go-sql-driver/mysql"
	"github.com/migdef/migdef/database"
	"github.com/migdef/migdef/schema"
)

// MysqlMetadata answers the differ's constraint and index name lookups from
// information_schema.
type MysqlMetadata struct {
	config database.Config
	db     *sql.DB
}

func NewMetadata(config database.Config) (*MysqlMetadata, error) {
	db, err := sql.Open("mysql", mysqlBuildDSN(config))
	if err != nil {
		return nil, err
	}

	return &MysqlMetadata{
		db:     db,
		config: config,
	}, nil
}

func (m *MysqlMetadata) ForeignKeyConstraints(table string) ([]schema.ConstraintRef, error) {
	rows, err := m.db.Query(`SELECT constraint_name
FROM information_schema.table_constraints
WHERE table_schema = ? AND table_name = ? AND constraint_type = 'FOREIGN KEY'
ORDER BY constraint_name`, m.config.DbName, table)
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

// DefaultConstraints always returns an empty list: MySQL stores defaults as
// column properties without a constraint name.
func (m *MysqlMetadata) DefaultConstraints(table, column string) ([]schema.ConstraintRef, error) {
	return []schema.ConstraintRef{}, nil
}

func (m *MysqlMetadata) IndexesForColumn(table, column string) ([]schema.IndexRef, error) {
	rows, err := m.db.Query(`SELECT DISTINCT index_name, non_unique
FROM information_schema.statistics
WHERE table_schema = ? AND table_name = ? AND column_name = ? AND index_name <> 'PRIMARY'
ORDER BY index_name`, m.config.DbName, table, column)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	indexes := []schema.IndexRef{}
	for rows.Next() {
		var name string
		var nonUnique bool
		if err := rows.Scan(&name, &nonUnique); err != nil {
			return nil, err
		}
		indexes = append(indexes, schema.IndexRef{Name: name, Unique: !nonUnique})
	}
	return indexes, rows.Err()
}

func (m *MysqlMetadata) DB() *sql.DB {
	return m.db
}

func (m *MysqlMetadata) Close() error {
	return m.db.Close()
}

func mysqlBuildDSN(config database.Config) string {
	c := driver.NewConfig()
	c.User = config.User
	c.Passwd = config.Password
	c.DBName = config.DbName
	if config.Socket != "" {
		c.Net = "unix"
		c.Addr = config.Socket
	} else {
		c.Net = "tcp"
		c.Addr = fmt.Sprintf("%s:%d", config.Host, config.Port)
	}
	return c.FormatDSN()
}
