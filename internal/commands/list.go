package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pathrun/internal/core"
	"pathrun/internal/ui"
)

func newListCmd(a *app) *cobra.Command {
	var usePager bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every indexed executable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := core.New(nil, core.Options{})
			defer r.Close()

			r.Reindex(a.searchPath())
			r.WaitIndexed()

			content := ui.RenderIndexContent(r.Snapshot())
			if usePager {
				return ui.RunPager(strings.NewReader(content))
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			if _, err := w.WriteString(content); err != nil {
				return fmt.Errorf("failed to write index: %w", err)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&usePager, "pager", false, "browse the list in a pager")
	return cmd
}
