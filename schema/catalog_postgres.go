package schema

var postgresReservedWords = []string{
	"all", "analyse", "analyze", "and", "any", "array", "as", "asc",
	"asymmetric", "both", "case", "cast", "check", "collate", "column",
	"constraint", "create", "current_date", "current_time",
	"current_timestamp", "current_user", "default", "deferrable", "desc",
	"distinct", "do", "else", "end", "except", "false", "fetch", "for",
	"foreign", "from", "grant", "group", "having", "in", "initially",
	"intersect", "into", "leading", "limit", "localtime", "localtimestamp",
	"not", "null", "offset", "on", "only", "or", "order", "placing",
	"primary", "references", "returning", "select", "session_user", "some",
	"symmetric", "table", "then", "to", "trailing", "true", "union",
	"unique", "user", "using", "variadic", "when", "where", "window", "with",
}

func PostgresCatalog() *TypeCatalog {
	return mustCatalog(CatalogConfig{
		Mode: GeneratorModePostgres,
		PhysicalTypes: map[LogicalType]string{
			LogicalBoolean:  "boolean",
			LogicalInteger:  "integer",
			LogicalLong:     "bigint",
			LogicalDecimal:  "decimal",
			LogicalDouble:   "double precision",
			LogicalString:   "varchar",
			LogicalDate:     "date",
			LogicalTime:     "time",
			LogicalDateTime: "timestamp",
			LogicalUUID:     "uuid",
			LogicalBinary:   "bytea",
		},
		DefaultValues: map[LogicalType]string{
			LogicalBoolean:  "false",
			LogicalInteger:  "0",
			LogicalLong:     "0",
			LogicalDecimal:  "0",
			LogicalDouble:   "0",
			LogicalString:   "''",
			LogicalDate:     "current_date",
			LogicalTime:     "current_time",
			LogicalDateTime: "current_timestamp",
		},
		Temporal: []TemporalMapping{
			{Type: "date", Category: TemporalDate},
			{Type: "time", Category: TemporalTime},
			{Type: "timestamp", Category: TemporalTimestamp},
		},
		SynonymClasses: []SynonymClass{
			{"char", "character", "varchar", "character varying", "text"},
			{"decimal", "numeric"},
			{"int", "integer", "int4", "serial"},
			{"bigint", "int8", "bigserial"},
			{"timestamp", "timestamp without time zone", "timestamptz", "timestamp with time zone"},
			{"float", "real", "float4", "float8", "double precision"},
			{"time", "time without time zone", "time with time zone"},
		},
		ReservedWords: postgresReservedWords,
		NoParameterTypes: []string{
			"boolean", "date",
			"float", "real", "float4", "float8", "double precision",
			"int", "integer", "int4", "bigint", "int8", "smallint",
			"serial", "bigserial", "smallserial",
			"uuid", "bytea", "text",
		},
		AutoGenerated: []string{"serial", "bigserial", "smallserial"},
		MaxLengths: map[string]int{
			"varchar": 10485760,
			"char":    10485760,
		},
		DefaultDecimalPrecision: 0,
		ScaleFloor:              -84,
		IdentityType:            "bigserial",
		DateTimeType:            "timestamp",
	})
}
