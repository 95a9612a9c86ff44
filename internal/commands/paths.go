package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newPathsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print the resolved search path",
		Long:  "Print the directories that are indexed, in order. Missing directories are marked.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			useColor(out)
			for _, p := range a.searchPath() {
				if info, err := os.Stat(p); err != nil || !info.IsDir() {
					fmt.Fprintf(out, "%s %s\n", p, color.RedString("(missing)"))
					continue
				}
				fmt.Fprintln(out, p)
			}
			return nil
		},
	}
}
