package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/symalg/formula"
	"github.com/npillmayer/symalg/simplify"
	"github.com/npillmayer/symalg/suite"
	"github.com/npillmayer/symalg/term"
	"github.com/spf13/cobra"
)

// Exit codes
const (
	exitOK       = 0
	exitError    = 1
	exitFailures = 2
)

// errFailures signals failing cases of a regression suite.
var errFailures = errors.New("suite has failing cases")

// errTooDeep signals a formula nested deeper than --max-depth.
var errTooDeep = errors.New("formula nested too deeply")

// trace keys of the packages of this module
var traceKeys = []string{
	"symalg.cli", "symalg.term", "symalg.simplify",
	"symalg.formula", "symalg.session", "symalg.suite",
}

var (
	rootCmd = &cobra.Command{
		Use:   "symalg",
		Short: "Simplifies algebraic formulas by term rewriting",
		Long: `symalg reads formulas in infix notation and reduces them to a canonical
normal form. Without a sub-command it starts an interactive session.`,
		PersistentPreRun: setup,
		RunE:             runREPL,
		SilenceUsage:     true,
		SilenceErrors:    true,
	}
	simplifyCmd = &cobra.Command{
		Use:   "simplify [formula...]",
		Short: "Prints the normal form of each formula",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSimplify,
	}
	varsCmd = &cobra.Command{
		Use:   "vars [formula]",
		Short: "Lists the variables of a formula",
		Args:  cobra.ExactArgs(1),
		RunE:  runVars,
	}
	checkCmd = &cobra.Command{
		Use:   "check [suite file...]",
		Short: "Runs regression suites given as YAML files",
		Long: `Runs regression suites. Each file may contain several YAML documents of the form

  name: suite name
  cases:
    - name: case name
      input: formula
      expect: formula

A case passes if input and expectation simplify to the same normal form.
Exits with status 2 if any case fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}
	replCmd = &cobra.Command{
		Use:   "repl",
		Short: "Starts an interactive session",
		Args:  cobra.NoArgs,
		RunE:  runREPL,
	}

	traceLevel  string
	maxRewrites int
	maxDepth    int
	showStats   bool
	initFile    string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "Error", "Trace level [Debug|Info|Error]")
	rootCmd.PersistentFlags().IntVar(&maxRewrites, "max-rewrites", simplify.DefaultMaxRewrites,
		"Number of rewrites after which simplification gives up")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 64, "Maximum nesting depth of input formulas")
	simplifyCmd.Flags().BoolVar(&showStats, "stats", false, "Print how often each rule fired")
	rootCmd.PersistentFlags().StringVar(&initFile, "init", "", "File with commands to load into an interactive session")
	rootCmd.AddCommand(simplifyCmd, varsCmd, checkCmd, replCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errFailures) {
			os.Exit(exitFailures)
		}
		display.Error(err)
		os.Exit(exitError)
	}
	os.Exit(exitOK)
}

// setup configures tracing and output for every command.
func setup(cmd *cobra.Command, args []string) {
	gtrace.SyntaxTracer = gologadapter.New()
	level := tracing.TraceLevelFromString(traceLevel)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	display = newDisplay(os.Stdout)
	tracer().Infof("trace level is %s", traceLevel)
}

func engine() *simplify.Engine {
	return simplify.NewEngine(simplify.MaxRewrites(maxRewrites))
}

// parse reads a formula and rejects it if it is nested deeper than limit.
// A limit of 0 or less means no limit.
func parse(input string, limit int, opts ...formula.Option) (term.Term, error) {
	f, err := formula.Parse(input, opts...)
	if err != nil {
		return nil, err
	}
	if d := term.Depth(f); limit > 0 && d > limit {
		return nil, fmt.Errorf("%w: depth %d exceeds %d", errTooDeep, d, limit)
	}
	return f, nil
}

func runSimplify(cmd *cobra.Command, args []string) error {
	e := engine()
	for _, input := range args {
		f, err := parse(input, maxDepth)
		if err != nil {
			return err
		}
		res, err := e.Run(f)
		if err != nil {
			return err
		}
		display.Result(res.Term)
		if showStats {
			display.Stats(res)
		}
	}
	return nil
}

func runVars(cmd *cobra.Command, args []string) error {
	f, err := parse(args[0], maxDepth)
	if err != nil {
		return err
	}
	display.Vars(term.Variables(f))
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	e := engine()
	failures := 0
	for _, filename := range args {
		f, err := os.Open(filename)
		if err != nil {
			return err
		}
		suites, err := suite.LoadAll(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
		for _, s := range suites {
			failures += display.Suite(s.Name, s.Run(e))
		}
	}
	if failures > 0 {
		display.Error(fmt.Errorf("%d %s failed", failures, plural(failures, "case")))
		return errFailures
	}
	return nil
}

func runREPL(cmd *cobra.Command, args []string) error {
	intp, err := NewIntp(engine())
	if err != nil {
		return err
	}
	if initFile != "" {
		if err := intp.LoadInitFile(initFile); err != nil {
			return err
		}
	}
	intp.REPL()
	return nil
}

func plural(n int, s string) string {
	if n == 1 {
		return s
	}
	return s + "s"
}
