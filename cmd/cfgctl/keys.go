package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/cfgkit/pkg/cfg"
)

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <file> [section]",
		Short: "List the keys and values of a section",
		Long: `The keys command lists the entries of one section, or of every section when
no section is given.

Example:
  cfgctl keys app.ini server
  cfgctl keys app.ini --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
	return cmd
}

type keyInfo struct {
	Section string `json:"section"`
	Key     string `json:"key"`
	Value   string `json:"value"`
}

func runKeys(args []string) error {
	c, err := openConfig(args[0])
	if err != nil {
		return err
	}

	sections := c.Sections()
	if len(args) > 1 {
		sec, err := c.Section(args[1])
		if err != nil {
			return fmt.Errorf("failed to list keys of %s: %w", displaySection(args[1]), err)
		}
		sections = []*cfg.Section{sec}
	}

	var keys []keyInfo
	for _, sec := range sections {
		for _, e := range sec.Entries() {
			keys = append(keys, keyInfo{Section: sec.Name(), Key: e.Key(), Value: e.Value()})
		}
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file": args[0],
			"keys": keys,
		})
	}
	for _, k := range keys {
		printInfo("[%s] %s = %q\n", displaySection(k.Section), k.Key, k.Value)
	}
	return nil
}
