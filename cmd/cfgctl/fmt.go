package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var fmtWrite bool

func init() {
	cmd := newFmtCmd()
	cmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Rewrite the file instead of printing")
	rootCmd.AddCommand(cmd)
}

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Print the file in canonical form",
		Long: `The fmt command parses a file and prints it regenerated: every key and value
quoted, one blank line between sections, comments dropped. Lines that could not
be parsed are reported on stderr.

Example:
  cfgctl fmt app.ini
  cfgctl fmt app.ini --write`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(args)
		},
	}
	return cmd
}

func runFmt(args []string) error {
	path := args[0]

	c, err := openConfig(path)
	if err != nil {
		return err
	}
	for _, w := range c.Warnings() {
		fmt.Fprintf(os.Stderr, "%s:%d: %s\n", path, w.Line, w.Reason)
	}

	if fmtWrite {
		if err := c.WriteFile(path); err != nil {
			return err
		}
		printInfo("Formatted %s (%d sections, %d entries)\n", path, c.NumSections(), c.NumEntries())
		return nil
	}

	if _, err := c.WriteTo(os.Stdout); err != nil {
		return err
	}
	return nil
}
