package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"pathrun/internal/completion"
	"pathrun/internal/core"
)

func newCompleteCmd(a *app) *cobra.Command {
	var (
		prefixOnly  bool
		showActions bool
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "complete <query...>",
		Short: "Print completion candidates for a query",
		Long: `Index the search path and print the candidates for "<command> [params]".
Arguments are joined with single spaces to form the query.`,
		Example: `  pathrun complete ls -la
  pathrun complete --prefix py`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit == 0 {
				limit = a.cfg.UISettings.MaxResults
			}
			r := core.New(nil, core.Options{MaxResults: limit})
			defer r.Close()

			r.Reindex(a.searchPath())
			r.WaitIndexed()

			res := r.Complete(strings.Join(args, " "))
			out := cmd.OutOrStdout()
			useColor(out)

			if prefixOnly {
				fmt.Fprintln(out, res.CommonPrefix)
				return nil
			}
			printCandidates(out, res, showActions)
			return nil
		},
	}

	cmd.Flags().BoolVar(&prefixOnly, "prefix", false, "print only the common prefix of all matches")
	cmd.Flags().BoolVar(&showActions, "actions", false, "print the actions offered for each candidate")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of matches (0 uses ui.max_results)")

	return cmd
}

// useColor enables colour only when out is a terminal
func useColor(out io.Writer) {
	f, ok := out.(*os.File)
	color.NoColor = !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func printCandidates(out io.Writer, res completion.Result, showActions bool) {
	name := color.New(color.FgGreen, color.Bold).SprintFunc()
	lucky := color.New(color.FgYellow).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	for _, c := range res.Candidates {
		title := name(c.Title)
		if c.Fallback {
			title = lucky(c.Title)
		}
		fmt.Fprintf(out, "%s\t%s\n", title, dim(c.Description))

		if !showActions {
			continue
		}
		for _, act := range completion.CandidateActions(c) {
			fmt.Fprintf(out, "  %-2s  %s\t%s\n", color.CyanString(act.ID), act.Label, act.CommandLine)
		}
	}
}
