package migdef

import (
	"fmt"
	"log"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/migdef/migdef/database"
	"github.com/migdef/migdef/model"
	"github.com/migdef/migdef/schema"
	"github.com/migdef/migdef/util"
)

// Concurrency bound for per-entity plan computation. The compiler itself is
// call-scoped and synchronous; this only fans out independent entities.
const planConcurrency = 4

type Options struct {
	ModelFile  string
	DropColumn string // TABLE.COLUMN; emits a dependent-aware drop script
	Debug      bool
	Config     database.GeneratorConfig
}

// Main function shared by all dialects. Compiles the model (or the requested
// drop operation) into a DDL script and prints it; execution belongs to the
// downstream script assembler.
func Run(catalog *schema.TypeCatalog, provider schema.MetadataProvider, logger database.Logger, options *Options) {
	builder := schema.NewBuilder(catalog)

	var stmts []schema.Statement
	if options.DropColumn != "" {
		table, column, err := splitColumnRef(options.DropColumn)
		if err != nil {
			log.Fatal(err)
		}
		differ := schema.NewDiffer(builder, provider)
		stmts, err = differ.DropColumnStatements(table, column)
		if err != nil {
			log.Fatalf("Error on drop column %s: %s", options.DropColumn, err)
		}
	} else {
		entities, err := model.Load(options.ModelFile)
		if err != nil {
			log.Fatalf("Failed to read '%s': %s", options.ModelFile, err)
		}
		entities = filterEntities(entities, options.Config)
		if len(entities) == 0 {
			logger.Println("-- No entities --")
			return
		}

		plans, err := util.ConcurrentMapFuncWithError(entities, planConcurrency, func(entity schema.EntityDescriptor) ([]schema.Statement, error) {
			stmt, err := builder.CreateTable(entity)
			if err != nil {
				return nil, err
			}
			return []schema.Statement{stmt}, nil
		})
		if err != nil {
			log.Fatal(err)
		}
		stmts = util.FlattenSlices(plans)
	}

	if options.Debug {
		pp.Println(stmts)
	}
	showStatements(stmts, logger)
}

func showStatements(stmts []schema.Statement, logger database.Logger) {
	for _, text := range schema.Texts(stmts) {
		logger.Println(text)
	}
}

func filterEntities(entities []schema.EntityDescriptor, config database.GeneratorConfig) []schema.EntityDescriptor {
	if len(config.TargetTables) == 0 {
		return entities
	}
	filtered := []schema.EntityDescriptor{}
	for _, entity := range entities {
		for _, table := range config.TargetTables {
			if strings.EqualFold(entity.Table, table) {
				filtered = append(filtered, entity)
				break
			}
		}
	}
	return filtered
}

func splitColumnRef(ref string) (string, string, error) {
	parts := strings.SplitN(ref, ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("expected TABLE.COLUMN, but got: %s", ref)
	}
	return parts[0], parts[1], nil
}
