package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setCreate bool

func init() {
	cmd := newSetCmd()
	cmd.Flags().BoolVar(&setCreate, "create", false, "Create the section and key if they don't exist")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <section> <key> <value>",
		Short: "Set the value of a key",
		Long: `The set command replaces the value of a key and rewrites the file.

Example:
  cfgctl set app.ini server port 9090
  cfgctl set app.ini cache ttl 60 --create`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	path, section, key, value := args[0], args[1], args[2], args[3]

	c, err := openConfig(path)
	if err != nil {
		return err
	}
	if err := c.Set(section, key, value, setCreate); err != nil {
		return fmt.Errorf("failed to set %s/%s: %w", displaySection(section), key, err)
	}
	if err := c.WriteFile(path); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    path,
			"section": section,
			"key":     key,
			"value":   value,
			"success": true,
		})
	}
	printInfo("Set %s/%s = %q in %s\n", displaySection(section), key, value, path)
	return nil
}
