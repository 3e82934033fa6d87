package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDeleteCmd())
}

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <file> <section> [key]",
		Short: "Delete a key or a whole section",
		Long: `The delete command removes one key, or a section with all its keys when no
key is given. Deleting the root section ("") only removes its keys.

Example:
  cfgctl delete app.ini server port
  cfgctl delete app.ini legacy`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args)
		},
	}
	return cmd
}

func runDelete(args []string) error {
	path, section := args[0], args[1]

	c, err := openConfig(path)
	if err != nil {
		return err
	}

	target := displaySection(section)
	if len(args) == 3 {
		target += "/" + args[2]
		err = c.DeleteKey(section, args[2])
	} else {
		err = c.DeleteSection(section)
	}
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", target, err)
	}
	if err := c.WriteFile(path); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    path,
			"deleted": target,
			"success": true,
		})
	}
	printInfo("Deleted %s from %s\n", target, path)
	return nil
}
