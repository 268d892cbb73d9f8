package schema

// ConstraintRef names a constraint discovered on a live schema.
type ConstraintRef struct {
	Name string
}

// IndexRef names an index discovered on a live schema.
type IndexRef struct {
	Name   string
	Unique bool
}

// MetadataProvider supplies the narrow catalog lookups the differ needs to
// decide which dependent objects must be dropped before a destructive column
// change. Implementations own the underlying connection lifecycle; every call
// is a blocking database round-trip and must release its row handles on every
// exit path. Returned order is preserved by the differ.
type MetadataProvider interface {
	ForeignKeyConstraints(table string) ([]ConstraintRef, error)
	DefaultConstraints(table, column string) ([]ConstraintRef, error)
	IndexesForColumn(table, column string) ([]IndexRef, error)
}
