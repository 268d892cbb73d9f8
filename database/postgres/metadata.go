package postgres

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	"github.com/migdef/migdef/database"
	"github.com/migdef/migdef/schema"
)

// PostgresMetadata answers the differ's constraint and index name lookups
// from pg_catalog.
type PostgresMetadata struct {
	config database.Config
	db     *sql.DB
}

func NewMetadata(config database.Config) (*PostgresMetadata, error) {
	db, err := sql.Open("postgres", postgresBuildDSN(config))
	if err != nil {
		return nil, err
	}

	return &PostgresMetadata{
		db:     db,
		config: config,
	}, nil
}

func (p *PostgresMetadata) ForeignKeyConstraints(table string) ([]schema.ConstraintRef, error) {
	rows, err := p.db.Query(`SELECT c.conname
FROM pg_constraint c
JOIN pg_class t ON c.conrelid = t.oid
WHERE t.relname = $1 AND c.contype = 'f'
ORDER BY c.conname`, strings.ToLower(table))
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

// DefaultConstraints always returns an empty list: PostgreSQL models column
// defaults as column properties, not named constraints, so there is nothing
// to drop by name.
func (p *PostgresMetadata) DefaultConstraints(table, column string) ([]schema.ConstraintRef, error) {
	return []schema.ConstraintRef{}, nil
}

func (p *PostgresMetadata) IndexesForColumn(table, column string) ([]schema.IndexRef, error) {
	rows, err := p.db.Query(`SELECT i.relname, ix.indisunique
FROM pg_index ix
JOIN pg_class i ON i.oid = ix.indexrelid
JOIN pg_class t ON t.oid = ix.indrelid
JOIN pg_attribute a ON a.attrelid = t.oid AND a.attnum = ANY(ix.indkey)
WHERE t.relname = $1 AND a.attname = $2 AND NOT ix.indisprimary
ORDER BY i.relname`, strings.ToLower(table), strings.ToLower(column))
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

func (p *PostgresMetadata) DB() *sql.DB {
	return p.db
}

func (p *PostgresMetadata) Close() error {
	return p.db.Close()
}

func postgresBuildDSN(config database.Config) string {
	options := []string{
		fmt.Sprintf("dbname=%s", config.DbName),
		"sslmode=disable",
	}
	if config.User != "" {
		options = append(options, fmt.Sprintf("user=%s", config.User))
	}
	if config.Password != "" {
		options = append(options, fmt.Sprintf("password=%s", config.Password))
	}
	if config.Socket != "" {
		options = append(options, fmt.Sprintf("host=%s", config.Socket))
	} else {
		options = append(options, fmt.Sprintf("host=%s", config.Host), fmt.Sprintf("port=%d", config.Port))
	}
	return strings.Join(options, " ")
}
