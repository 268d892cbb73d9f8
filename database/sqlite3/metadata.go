package sqlite3

import (
	"database/sql"
	"fmt"

	"github.com/migdef/migdef/database"
	"github.com/migdef/migdef/schema"
	_ "modernc.org/sqlite"
)

// Sqlite3Metadata answers the differ's index name lookups through PRAGMA
// queries. SQLite names neither foreign-key nor default constraints, so both
// constraint lookups return empty lists.
type Sqlite3Metadata struct {
	config database.Config
	db     *sql.DB
}

func NewMetadata(config database.Config) (*Sqlite3Metadata, error) {
	db, err := sql.Open("sqlite", config.DbName)
	if err != nil {
		return nil, err
	}

	return &Sqlite3Metadata{
		db:     db,
		config: config,
	}, nil
}

func (s *Sqlite3Metadata) ForeignKeyConstraints(table string) ([]schema.ConstraintRef, error) {
	return []schema.ConstraintRef{}, nil
}

func (s *Sqlite3Metadata) DefaultConstraints(table, column string) ([]schema.ConstraintRef, error) {
	return []schema.ConstraintRef{}, nil
}

func (s *Sqlite3Metadata) IndexesForColumn(table, column string) ([]schema.IndexRef, error) {
	rows, err := s.db.Query(fmt.Sprintf("PRAGMA index_list('%s')", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type indexEntry struct {
		name   string
		unique bool
	}
	var entries []indexEntry
	for rows.Next() {
		var seq int
		var name, origin string
		var unique, partial bool
		if err := rows.Scan(&seq, &name, &unique, &origin, &partial); err != nil {
			return nil, err
		}
		// Primary keys surface as origin "pk" auto-indexes.
		if origin == "pk" {
			continue
		}
		entries = append(entries, indexEntry{name: name, unique: unique})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	indexes := []schema.IndexRef{}
	for _, entry := range entries {
		covers, err := s.indexCoversColumn(entry.name, column)
		if err != nil {
			return nil, err
		}
		if covers {
			indexes = append(indexes, schema.IndexRef{Name: entry.name, Unique: entry.unique})
		}
	}
	return indexes, nil
}

func (s *Sqlite3Metadata) indexCoversColumn(index, column string) (bool, error) {
	rows, err := s.db.Query(fmt.Sprintf("PRAGMA index_info('%s')", index))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var seqno, cid int
		var name sql.NullString
		if err := rows.Scan(&seqno, &cid, &name); err != nil {
			return false, err
		}
		if name.Valid && name.String == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

func (s *Sqlite3Metadata) DB() *sql.DB {
	return s.db
}

func (s *Sqlite3Metadata) Close() error {
	return s.db.Close()
}
