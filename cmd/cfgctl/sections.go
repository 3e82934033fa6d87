package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newSectionsCmd())
}

func newSectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections <file>",
		Short: "List sections and their entry counts",
		Long: `The sections command lists every section in file order, starting with the
root section.

Example:
  cfgctl sections app.ini
  cfgctl sections app.ini --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSections(args)
		},
	}
	return cmd
}

type sectionInfo struct {
	Name    string `json:"name"`
	Entries int    `json:"entries"`
	Hash    string `json:"hash"`
}

func runSections(args []string) error {
	c, err := openConfig(args[0])
	if err != nil {
		return err
	}

	infos := make([]sectionInfo, 0, c.NumSections())
	for _, sec := range c.Sections() {
		infos = append(infos, sectionInfo{
			Name:    sec.Name(),
			Entries: sec.Len(),
			Hash:    formatHash(sec.Hash()),
		})
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":     args[0],
			"sections": infos,
		})
	}
	for _, info := range infos {
		printInfo("%-24s %4d entries", displaySection(info.Name), info.Entries)
		if verbose {
			printInfo("  hash=%s", info.Hash)
		}
		printInfo("\n")
	}
	return nil
}
