package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newHashCmd())
}

func newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash <name>...",
		Short: "Print the identity hash of names",
		Long: `The hash command prints the 32-bit hash used to look up a section or key,
under the algorithm selected with --hash.

Example:
  cfgctl hash server port
  cfgctl hash --hash legacy server`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(args)
		},
	}
	return cmd
}

func runHash(args []string) error {
	opts, err := options()
	if err != nil {
		return err
	}
	if jsonOut {
		out := make(map[string]string, len(args))
		for _, name := range args {
			out[name] = formatHash(opts.Hash.Sum(name))
		}
		return printJSON(out)
	}
	for _, name := range args {
		fmt.Printf("%s  %s\n", formatHash(opts.Hash.Sum(name)), name)
	}
	return nil
}

func formatHash(h uint32) string {
	return fmt.Sprintf("0x%08X", h)
}
