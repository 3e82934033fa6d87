package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/cfgkit/pkg/cfg"
)

var (
	// Global flags
	verbose         bool
	quiet           bool
	jsonOut         bool
	hashName        string
	identityName    string
	inputEncoding   string
	escapeBackslash bool
)

var rootCmd = &cobra.Command{
	Use:   "cfgctl",
	Short: "Inspect and edit INI-style configuration files",
	Long: `cfgctl reads, queries, and rewrites INI-style configuration files.
Edits are written back atomically; comments and layout are not preserved.

Use "" as the section name to address keys declared before any header.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&hashName, "hash", "fnv1a", "Name hash algorithm (fnv1a, legacy, xxh)")
	rootCmd.PersistentFlags().
		StringVar(&identityName, "identity", "name", "Name matching (name, hash)")
	rootCmd.PersistentFlags().
		StringVar(&inputEncoding, "encoding", "", "Input encoding when no BOM is present (UTF-8, UTF-16LE, UTF-16BE, WINDOWS-1252)")
	rootCmd.PersistentFlags().
		BoolVar(&escapeBackslash, "escape-backslash", false, `Write literal backslashes as "\\"`)
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// options builds parser options from the global flags.
func options() (*cfg.Options, error) {
	opts := cfg.DefaultOptions()

	alg, err := cfg.ParseHashAlgorithm(hashName)
	if err != nil {
		return nil, err
	}
	opts.Hash = alg

	switch identityName {
	case "name":
		opts.Identity = cfg.IdentityName
	case "hash":
		opts.Identity = cfg.IdentityHash
	default:
		return nil, fmt.Errorf("unknown identity mode %q (want name or hash)", identityName)
	}

	opts.InputEncoding = inputEncoding
	opts.EscapeBackslash = escapeBackslash
	if verbose && !quiet {
		opts.Verbose = 1
		opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return &opts, nil
}

// openConfig parses the file at path with the global options.
func openConfig(path string) (*cfg.Config, error) {
	opts, err := options()
	if err != nil {
		return nil, err
	}
	printVerbose("Parsing: %s\n", path)
	c, err := cfg.ParseFile(path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return c, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// displaySection renders a section name for humans.
func displaySection(name string) string {
	if name == "" {
		return "(root)"
	}
	return name
}
