package main

import (
	"fmt"
	"log"
	"os"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/migdef/migdef"
	"github.com/migdef/migdef/database"
	"github.com/migdef/migdef/database/mssql"
	"github.com/migdef/migdef/database/mysql"
	"github.com/migdef/migdef/database/postgres"
	"github.com/migdef/migdef/database/sqlite3"
	"github.com/migdef/migdef/schema"
	"github.com/migdef/migdef/util"
	"golang.org/x/term"
)

var version string

// Return parsed options, dialect and connection config
func parseOptions(args []string) (string, database.Config, *migdef.Options) {
	var opts struct {
		Type       string `long:"type" description:"Type of database (mssql, postgres, mysql, sqlite3)" value-name:"type" default:"mssql"`
		User       string `short:"U" long:"user" description:"Database user name" value-name:"user_name" default:"sa"`
		Password   string `short:"P" long:"password" description:"Database user password, overridden by $MIGDEF_PWD" value-name:"password"`
		Host       string `short:"h" long:"host" description:"Host to connect to the database server" value-name:"host_name" default:"127.0.0.1"`
		Port       uint   `short:"p" long:"port" description:"Port used for the connection" value-name:"port_num" default:"1433"`
		Prompt     bool   `long:"password-prompt" description:"Force database user password prompt"`
		File       string `long:"file" description:"Read the entity model from the file" value-name:"model_file" default:"model.yml"`
		Config     string `long:"config" description:"YAML file to specify: target_tables" value-name:"config_file"`
		DropColumn string `long:"drop-column" description:"Emit a dependent-aware drop script for TABLE.COLUMN" value-name:"table.column"`
		Debug      bool   `long:"debug" description:"Pretty-print the computed statement plan"`
		Help       bool   `long:"help" description:"Show this help"`
		Version    bool   `long:"version" description:"Show this version"`
	}

	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "[options] [db_name]"
	args, err := parser.ParseArgs(args)
	if err != nil {
		log.Fatal(err)
	}

	if opts.Help {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}

	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	options := migdef.Options{
		ModelFile:  opts.File,
		DropColumn: opts.DropColumn,
		Debug:      opts.Debug,
		Config:     database.ParseGeneratorConfig(opts.Config),
	}

	if len(args) > 1 {
		fmt.Printf("Multiple databases are given: %v\n\n", args)
		parser.WriteHelp(os.Stdout)
		os.Exit(1)
	}
	var databaseName string
	if len(args) == 1 {
		databaseName = args[0]
	}
	if options.DropColumn != "" && databaseName == "" {
		fmt.Print("No database is specified!\n\n")
		parser.WriteHelp(os.Stdout)
		os.Exit(1)
	}

	password, ok := os.LookupEnv("MIGDEF_PWD")
	if !ok {
		password = opts.Password
	}

	if opts.Prompt {
		fmt.Printf("Enter Password: ")
		pass, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			log.Fatal(err)
		}
		password = string(pass)
	}

	config := database.Config{
		DbName:   databaseName,
		User:     opts.User,
		Password: password,
		Host:     opts.Host,
		Port:     int(opts.Port),
	}
	return opts.Type, config, &options
}

func main() {
	util.InitSlog()
	dbType, config, options := parseOptions(os.Args[1:])

	var catalog *schema.TypeCatalog
	switch dbType {
	case "mssql":
		catalog = schema.MssqlCatalog()
	case "postgres":
		catalog = schema.PostgresCatalog()
	case "mysql":
		catalog = schema.MysqlCatalog()
	case "sqlite3":
		catalog = schema.Sqlite3Catalog()
	default:
		log.Fatalf("Unknown database type: %s", dbType)
	}

	// The metadata provider is needed only for operations that inspect the
	// live schema; plain model compilation opens no connection.
	var provider schema.MetadataProvider
	if options.DropColumn != "" {
		var err error
		switch dbType {
		case "mssql":
			var m *mssql.MssqlMetadata
			m, err = mssql.NewMetadata(config)
			if err == nil {
				defer m.Close()
				provider = m
			}
		case "postgres":
			var m *postgres.PostgresMetadata
			m, err = postgres.NewMetadata(config)
			if err == nil {
				defer m.Close()
				provider = m
			}
		case "mysql":
			var m *mysql.MysqlMetadata
			m, err = mysql.NewMetadata(config)
			if err == nil {
				defer m.Close()
				provider = m
			}
		case "sqlite3":
			var m *sqlite3.Sqlite3Metadata
			m, err = sqlite3.NewMetadata(config)
			if err == nil {
				defer m.Close()
				provider = m
			}
		}
		if err != nil {
			log.Fatal(err)
		}
	}

	migdef.Run(catalog, provider, database.StdoutLogger{}, options)
}
