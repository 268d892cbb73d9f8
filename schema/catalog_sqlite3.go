package schema

var sqlite3ReservedWords = []string{
	"abort", "action", "add", "after", "all", "alter", "and", "as", "asc",
	"attach", "autoincrement", "before", "begin", "between", "by", "cascade",
	"case", "cast", "check", "collate", "column", "commit", "conflict",
	"constraint", "create", "cross", "default", "deferrable", "delete",
	"desc", "detach", "distinct", "drop", "else", "end", "escape", "except",
	"exists", "explain", "fail", "for", "foreign", "from", "full", "glob",
	"group", "having", "if", "ignore", "in", "index", "indexed", "initially",
	"inner", "insert", "instead", "intersect", "into", "is", "isnull",
	"join", "key", "left", "like", "limit", "match", "natural", "no", "not",
	"notnull", "null", "of", "offset", "on", "or", "order", "outer", "plan",
	"pragma", "primary", "query", "raise", "recursive", "references",
	"regexp", "reindex", "release", "rename", "replace", "restrict", "right",
	"rollback", "row", "savepoint", "select", "set", "table", "temp",
	"temporary", "then", "to", "transaction", "trigger", "union", "unique",
	"update", "using", "vacuum", "values", "view", "virtual", "when",
	"where", "with", "without",
}

func Sqlite3Catalog() *TypeCatalog {
	return mustCatalog(CatalogConfig{
		Mode: GeneratorModeSQLite3,
		PhysicalTypes: map[LogicalType]string{
			LogicalBoolean:  "integer",
			LogicalInteger:  "integer",
			LogicalLong:     "integer",
			LogicalDecimal:  "numeric",
			LogicalDouble:   "real",
			LogicalString:   "varchar",
			LogicalDate:     "date",
			LogicalTime:     "time",
			LogicalDateTime: "datetime",
			LogicalUUID:     "varchar",
			LogicalBinary:   "blob",
		},
		DefaultValues: map[LogicalType]string{
			LogicalBoolean: "0",
			LogicalInteger: "0",
			LogicalLong:    "0",
			LogicalDecimal: "0",
			LogicalDouble:  "0",
			LogicalString:  "''",
		},
		Temporal: []TemporalMapping{
			{Type: "date", Category: TemporalDate},
			{Type: "time", Category: TemporalTime},
			{Type: "datetime", Category: TemporalTimestamp},
		},
		SynonymClasses: []SynonymClass{
			{"char", "varchar", "text", "clob"},
			{"int", "integer", "bigint", "smallint", "tinyint"},
			{"decimal", "numeric"},
			{"real", "double", "double precision", "float"},
		},
		ReservedWords: sqlite3ReservedWords,
		NoParameterTypes: []string{
			"int", "integer", "bigint", "smallint", "tinyint",
			"real", "double", "double precision", "float",
			"date", "time", "datetime",
			"blob", "text", "clob",
		},
		AutoGenerated: []string{"autoincrement", "counter"},
		MaxLengths: map[string]int{
			"varchar": 1000000000,
		},
		DefaultDecimalPrecision: 0,
		ScaleFloor:              -84,
		IdentityType:            "integer",
		DateTimeType:            "datetime",
	})
}
