package schema

var mysqlReservedWords = []string{
	"add", "all", "alter", "and", "as", "asc", "before", "between", "bigint",
	"blob", "by", "case", "change", "char", "check", "column", "condition",
	"constraint", "create", "cross", "database", "decimal", "declare",
	"default", "delete", "desc", "distinct", "double", "drop", "else",
	"enclosed", "escaped", "exists", "exit", "explain", "false", "fetch",
	"float", "for", "force", "foreign", "from", "fulltext", "grant",
	"group", "having", "if", "ignore", "in", "index", "inner", "insert",
	"int", "integer", "interval", "into", "is", "join", "key", "keys",
	"leading", "left", "like", "limit", "lock", "long", "match", "not",
	"null", "on", "or", "order", "outer", "primary", "range", "read",
	"references", "regexp", "rename", "repeat", "replace", "restrict",
	"right", "schema", "select", "set", "show", "table", "then", "to",
	"trailing", "true", "union", "unique", "update", "usage", "use",
	"using", "values", "varchar", "when", "where", "while", "with", "write",
}

func MysqlCatalog() *TypeCatalog {
	return mustCatalog(CatalogConfig{
		Mode: GeneratorModeMysql,
		PhysicalTypes: map[LogicalType]string{
			LogicalBoolean:  "tinyint",
			LogicalInteger:  "integer",
			LogicalLong:     "bigint",
			LogicalDecimal:  "decimal",
			LogicalDouble:   "double",
			LogicalString:   "varchar",
			LogicalDate:     "date",
			LogicalTime:     "time",
			LogicalDateTime: "datetime",
			LogicalUUID:     "char",
			LogicalBinary:   "longblob",
		},
		DefaultValues: map[LogicalType]string{
			LogicalBoolean:  "0",
			LogicalInteger:  "0",
			LogicalLong:     "0",
			LogicalDecimal:  "0",
			LogicalDouble:   "0",
			LogicalString:   "''",
			LogicalDateTime: "current_timestamp",
		},
		Temporal: []TemporalMapping{
			{Type: "date", Category: TemporalDate},
			{Type: "time", Category: TemporalTime},
			{Type: "datetime", Category: TemporalTimestamp},
		},
		SynonymClasses: []SynonymClass{
			{"char", "varchar", "tinytext", "text", "mediumtext", "longtext"},
			{"decimal", "numeric"},
			{"int", "integer", "mediumint"},
			{"datetime", "timestamp"},
			{"float", "double", "real"},
			{"binary", "varbinary", "tinyblob", "blob", "mediumblob", "longblob"},
			{"tinyint", "bool", "boolean"},
		},
		ReservedWords: mysqlReservedWords,
		NoParameterTypes: []string{
			"tinyint", "bool", "boolean",
			"date", "time", "datetime", "timestamp",
			"float", "double", "real",
			"int", "integer", "mediumint", "bigint", "smallint",
			"tinyblob", "blob", "mediumblob", "longblob",
			"tinytext", "text", "mediumtext", "longtext",
		},
		AutoGenerated: []string{"auto_increment", "counter", "autoincrement"},
		MaxLengths: map[string]int{
			"varchar": 65535,
			"char":    255,
		},
		DefaultDecimalPrecision: 10,
		ScaleFloor:              -84,
		IdentityType:            "bigint auto_increment",
		DateTimeType:            "datetime",
	})
}
