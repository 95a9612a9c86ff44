package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"pathrun/internal/completion"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Input          string // rendered text input
	Candidates     []completion.Candidate
	CommonPrefix   string
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	Actions        []completion.Action
	SelectedAction int
	Indexing       bool
	IndexedCount   int
	StatusMessage  string
	StatusIsError  bool
	HelpModel      help.Model
	KeyMap         help.KeyMap
	Ready          bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	// Title line with right-aligned index indicator
	logo := r.styles.Title.Render("pathrun")
	indicator := r.styles.Dim.Render(fmt.Sprintf("%d executables", state.IndexedCount))
	if state.Indexing {
		indicator = r.styles.Scan.Render("⟳ Indexing")
	}
	content.WriteString(r.alignRight(logo, indicator, state.Width))
	content.WriteString("\n\n")

	content.WriteString(r.styles.Prompt.Render("> "))
	content.WriteString(state.Input)
	content.WriteString("\n")
	if state.CommonPrefix != "" {
		content.WriteString(r.styles.Completion.Render("  tab: " + state.CommonPrefix))
	}
	content.WriteString("\n")

	content.WriteString(r.renderCandidates(state))

	if len(state.Actions) > 0 {
		content.WriteString("\n")
		content.WriteString(r.renderActions(state.Actions, state.SelectedAction))
		content.WriteString("\n")
	}

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = style.Foreground(r.styles.StatusError.GetForeground())
		}
		content.WriteString(style.Render(state.StatusMessage))
		content.WriteString("\n")
	}

	if state.KeyMap != nil {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpModel.View(state.KeyMap)))
	}

	if state.Ready {
		content.WriteString("\n__READY__")
	}

	return r.styles.Main.Render(content.String())
}

// renderCandidates draws the visible window of the candidate list
func (r *Renderer) renderCandidates(state ViewState) string {
	if len(state.Candidates) == 0 {
		return r.styles.Dim.Render("  <command> [params]") + "\n"
	}

	b := &strings.Builder{}
	start := state.ViewportOffset
	end := len(state.Candidates)
	if state.ViewportHeight > 0 && start+state.ViewportHeight < end {
		end = start + state.ViewportHeight
	}

	if start > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("  ↑ %d more", start)))
		b.WriteString("\n")
	}

	for i := start; i < end; i++ {
		c := state.Candidates[i]
		title := r.styles.Candidate.Render(c.Title)
		if c.Fallback {
			title = r.styles.Fallback.Render(c.Title)
		}
		line := fmt.Sprintf("%s  %s", title, r.styles.Description.Render(c.Description))

		if i == state.SelectedIndex {
			line = r.styles.Highlight.Render("▸ ") + r.styles.SelectionBg.Render(line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if end < len(state.Candidates) {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("  ↓ %d more", len(state.Candidates)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

// renderActions draws the action bar for the selected candidate
func (r *Renderer) renderActions(actions []completion.Action, selected int) string {
	parts := make([]string, len(actions))
	for i, a := range actions {
		if i == selected {
			parts[i] = r.styles.ActionActive.Render(a.Label)
		} else {
			parts[i] = r.styles.Action.Render(a.Label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (r *Renderer) alignRight(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 4 // Main padding
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}
