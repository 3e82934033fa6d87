package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/cfgkit/pkg/cfg"
)

var getType string

func init() {
	cmd := newGetCmd()
	cmd.Flags().StringVar(&getType, "type", "string", "Interpret the value as string, int, float, bool or hex")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <section> <key>",
		Short: "Print the value of a key",
		Long: `The get command prints the value stored under a key.

Example:
  cfgctl get app.ini server port
  cfgctl get app.ini "" name
  cfgctl get app.ini server port --type int --json`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	path, section, key := args[0], args[1], args[2]

	c, err := openConfig(path)
	if err != nil {
		return err
	}

	value, err := typedValue(c, section, key, getType)
	if err != nil {
		return fmt.Errorf("failed to get %s/%s: %w", displaySection(section), key, err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    path,
			"section": section,
			"key":     key,
			"value":   value,
		})
	}
	fmt.Println(value)
	return nil
}

func typedValue(c *cfg.Config, section, key, typ string) (interface{}, error) {
	switch typ {
	case "string", "":
		return c.Get(section, key)
	case "int":
		return c.GetInt(section, key)
	case "float":
		return c.GetFloat(section, key)
	case "bool":
		return c.GetBool(section, key)
	case "hex":
		b, err := c.GetHex(section, key)
		if err != nil {
			return nil, err
		}
		return strconv.Quote(string(b)), nil
	default:
		return nil, fmt.Errorf("unknown value type %q", typ)
	}
}
