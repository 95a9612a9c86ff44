package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"pathrun/internal/domain"
	"pathrun/internal/index"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent(paths domain.SearchPath) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("pathrun Help"))
	help.WriteString("\n")
	help.WriteString(descStyle.Render("Type <command> [params]; matches come from every executable on the search path."))
	help.WriteString("\n\n")

	help.WriteString(sectionStyle.Render("Completion"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("↑/↓"), descStyle.Render("Select candidate")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("Tab"), descStyle.Render("Insert the common prefix of all matches")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Actions"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Enter"), descStyle.Render("Run the selected action")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("Ctrl+→"), descStyle.Render("Next action")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("Ctrl+←"), descStyle.Render("Previous action")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("r "), descStyle.Render("Run in terminal")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("rc"), descStyle.Render("Run in terminal and close on exit")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("rb"), descStyle.Render("Run in background (without terminal)")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("Ctrl+R"), descStyle.Render("Reindex the search path")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("Ctrl+L"), descStyle.Render("List indexed executables")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("F1"), descStyle.Render("Show this help")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("Esc"), descStyle.Render("Quit")))

	if len(paths) > 0 {
		help.WriteString("\n")
		help.WriteString(sectionStyle.Render("Search path"))
		help.WriteString("\n")
		for _, p := range paths {
			help.WriteString("  " + descStyle.Render(p) + "\n")
		}
	}

	return help.String()
}

// RenderIndexContent lists every indexed executable, one per line
func RenderIndexContent(snapshot *index.Snapshot) string {
	var b strings.Builder
	for i := 0; i < snapshot.Len(); i++ {
		b.WriteString(snapshot.At(i))
		b.WriteString("\n")
	}
	return b.String()
}

// pagerCommand runs the ov pager over content as a tea.ExecCommand
type pagerCommand struct {
	content string
}

func (c *pagerCommand) Run() error {
	return RunPager(strings.NewReader(c.content))
}

// ov drives the terminal itself
func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

// showInPager suspends the program, pages content and resumes
func showInPager(content string) tea.Cmd {
	return tea.Exec(&pagerCommand{content: content}, func(err error) tea.Msg {
		return pagerClosedMsg{err: err}
	})
}

// RunPager shows r in the ov pager until the user quits it
func RunPager(r io.Reader) error {
	root, err := oviewer.NewRoot(r)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	root.SetConfig(config)

	return root.Run()
}
