package schema

// mssqlReservedWords is the subset of SQL Server keywords that shows up in
// practice as entity or attribute names.
var mssqlReservedWords = []string{
	"add", "alter", "and", "any", "as", "asc", "backup", "begin", "between",
	"by", "case", "check", "column", "commit", "constraint", "create",
	"database", "default", "delete", "desc", "distinct", "drop", "else",
	"end", "escape", "exec", "exists", "file", "for", "foreign", "from",
	"full", "function", "grant", "group", "having", "identity", "in",
	"index", "inner", "insert", "into", "is", "join", "key", "left", "level",
	"like", "not", "null", "of", "on", "or", "order", "outer", "percent",
	"plan", "primary", "procedure", "public", "references", "return",
	"revoke", "rollback", "rule", "select", "set", "size", "table", "then",
	"to", "top", "transaction", "trigger", "union", "unique", "update",
	"user", "values", "view", "when", "where", "while", "with",
}

// MssqlCatalog is the reference dialect configuration. SQL Server carries
// every quirk the compiler models: identity columns, sp_rename, fixed
// precision currency types, emulated sequences, and the caret delimiter.
func MssqlCatalog() *TypeCatalog {
	return mustCatalog(CatalogConfig{
		Mode: GeneratorModeMssql,
		PhysicalTypes: map[LogicalType]string{
			LogicalBoolean:  "tinyint",
			LogicalInteger:  "integer",
			LogicalLong:     "bigint",
			LogicalDecimal:  "decimal",
			LogicalDouble:   "double precision",
			LogicalString:   "varchar",
			LogicalDate:     "datetime",
			LogicalTime:     "datetime",
			LogicalDateTime: "datetime",
			LogicalUUID:     "uniqueidentifier",
			LogicalBinary:   "varbinary",
		},
		DefaultValues: map[LogicalType]string{
			LogicalBoolean:  "0",
			LogicalInteger:  "0",
			LogicalLong:     "0",
			LogicalDecimal:  "0",
			LogicalDouble:   "0",
			LogicalString:   "''",
			LogicalDate:     "getdate()",
			LogicalTime:     "getdate()",
			LogicalDateTime: "getdate()",
			LogicalUUID:     "newid()",
		},
		Temporal: []TemporalMapping{
			{Type: "date", Category: TemporalDate},
			{Type: "time", Category: TemporalTime},
			{Type: "datetime", Category: TemporalTimestamp},
		},
		SynonymClasses: []SynonymClass{
			{"char", "nchar", "varchar", "nvarchar", "text", "ntext"},
			{"decimal", "numeric", "money", "smallmoney"},
			{"int", "integer", "int identity", "integer identity"},
			{"bigint", "bigint identity"},
			{"datetime", "datetime2", "smalldatetime"},
			{"float", "real", "double precision"},
			{"binary", "varbinary", "image"},
			{"tinyint", "bit"},
		},
		ReservedWords: mssqlReservedWords,
		NoParameterTypes: []string{
			"int identity", "integer identity", "bigint identity",
			"tinyint", "bit",
			"date", "time", "datetime", "datetime2", "smalldatetime",
			"money", "smallmoney",
			"float", "real", "double precision",
			"int", "integer", "bigint", "smallint",
			"uniqueidentifier",
			"image", "text", "ntext",
		},
		AutoGenerated: []string{"counter", "autoincrement", "rowversion", "timestamp"},
		MaxLengths: map[string]int{
			"char":     8000,
			"varchar":  8000,
			"nchar":    4000,
			"nvarchar": 4000,
			"ntext":    4000,
		},
		Currency: map[string]CurrencyRule{
			"money":      {Precision: 19, Scale: 4},
			"smallmoney": {Precision: 10, Scale: 4},
		},
		DefaultDecimalPrecision: 18,
		ScaleFloor:              -84,
		IdentityType:            "bigint identity",
		DateTimeType:            "datetime",
	})
}
