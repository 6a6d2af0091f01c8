// Command cqrun evaluates a conjunctive query against an in-memory database
// dump using the Yannakakis algorithm.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	goerrors "gopkg.in/src-d/go-errors.v1"

	cqe "github.com/relquery/yannakakis"
	"github.com/relquery/yannakakis/cq"
	"github.com/relquery/yannakakis/mem"
)

// logLevelFlag is a pflag.Value that only accepts logrus's recognized level
// names, so a typo on the command line is rejected at flag-parse time rather
// than silently falling back to the default level deep inside cqe.New.
type logLevelFlag struct {
	value string
}

func (f *logLevelFlag) String() string { return f.value }

func (f *logLevelFlag) Set(s string) error {
	if _, err := logrus.ParseLevel(s); err != nil {
		return err
	}
	f.value = s
	return nil
}

func (f *logLevelFlag) Type() string { return "level" }

// Exit codes.
const (
	exitOK          = 0
	exitParseError  = 2
	exitCyclicQuery = 3
	exitDataError   = 4
	exitOther       = 1
)

func main() {
	var queryText, dbPath, configPath string
	logLevel := &logLevelFlag{value: "info"}

	root := &cobra.Command{
		Use:   "cqrun",
		Short: "Evaluate a conjunctive query against an in-memory database with the Yannakakis algorithm",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(queryText, dbPath, configPath, logLevel.value)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addFlags(root.Flags(), &queryText, &dbPath, &configPath, logLevel)
	_ = root.MarkFlagRequired("query")
	_ = root.MarkFlagRequired("db")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func addFlags(f *pflag.FlagSet, queryText, dbPath, configPath *string, logLevel *logLevelFlag) {
	f.StringVarP(queryText, "query", "q", "", "conjunctive query text, e.g. \"q(X, Z) :- r(X, Y), s(Y, Z)\"")
	f.StringVarP(dbPath, "db", "f", "", "database dump file path")
	f.StringVarP(configPath, "config", "c", "", "engine config file (YAML)")
	f.VarP(logLevel, "log-level", "l", "log level (panic, fatal, error, warn, info, debug, trace)")
}

func run(queryText, dbPath, configPath, logLevel string) error {
	cfg := cqe.Config{LogLevel: logLevel}
	if configPath != "" {
		loaded, err := cqe.LoadConfig(configPath)
		if err != nil {
			return errors.Wrap(err, "loading config "+configPath)
		}
		cfg = loaded
	}

	f, err := os.Open(dbPath)
	if err != nil {
		return errors.Wrap(err, "opening database dump "+dbPath)
	}
	defer f.Close()

	db, err := mem.LoadDatabase(f)
	if err != nil {
		return err
	}

	engine := cqe.New(cfg)
	results, err := engine.Run(context.Background(), queryText, db)
	if err != nil {
		return err
	}

	printResults(results)
	return nil
}

func printResults(results map[string]*mem.Table) {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t := results[name]
		fmt.Printf("Table name: %s\n", t.Name)
		fmt.Printf("Attributes: %s\n", strings.Join(t.Attributes, " "))
		for _, record := range t.Records {
			fields := make([]string, len(record))
			for i, v := range record {
				fields[i] = strconv.FormatUint(v, 10)
			}
			fmt.Println(strings.Join(fields, " "))
		}
	}
}

func exitCodeFor(err error) int {
	switch {
	case goerrors.Is(err, cq.ErrParse):
		return exitParseError
	case goerrors.Is(err, cqe.ErrCyclicQuery):
		return exitCyclicQuery
	case goerrors.Is(err, mem.ErrSchema), goerrors.Is(err, mem.ErrIO):
		return exitDataError
	case err != nil:
		return exitOther
	default:
		return exitOK
	}
}
