package ui

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pathrun/internal/completion"
	"pathrun/internal/config"
	"pathrun/internal/domain"
	"pathrun/internal/eventbus"
	"pathrun/internal/index"
	"pathrun/internal/ui/logic"
	"pathrun/internal/ui/views"
)

// Runner is the part of core.Runner the UI drives
type Runner interface {
	Complete(query string) completion.Result
	CandidateActions(c completion.Candidate) []completion.Action
	Run(action completion.Action) error
	Reindex(paths domain.SearchPath)
	Snapshot() *index.Snapshot
	Status() domain.IndexStatus
}

// rows used by everything except the candidate list
const chromeHeight = 12

// Model represents the UI state
type Model struct {
	runner Runner
	config *config.Config
	paths  domain.SearchPath

	width  int
	height int
	help   help.Model
	keys   keyMap
	input  textinput.Model

	result      completion.Result
	actions     []completion.Action
	actionIndex int
	navigator   *logic.Navigator
	renderer    *views.Renderer
	indexing    bool

	statusMessage string
	statusIsError bool
}

type clearStatusMsg struct{}

// NewModel creates a new UI model
func NewModel(runner Runner, cfg *config.Config, paths domain.SearchPath) *Model {
	ti := textinput.New()
	ti.Placeholder = "<command> [params]"
	ti.Prompt = ""
	ti.Focus()

	m := &Model{
		runner:    runner,
		config:    cfg,
		paths:     paths,
		help:      help.New(),
		keys:      newKeyMap(),
		input:     ti,
		navigator: logic.NewNavigator(),
		renderer:  views.NewRenderer(),
	}
	m.indexing = runner.Status().Outcome == domain.RunRunning
	m.refresh()
	return m
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 8
		m.navigator.SetViewportHeight(msg.Height - chromeHeight)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		return m, showInPager(NewHelpRenderer().RenderHelpContent(m.paths))

	case key.Matches(msg, m.keys.ShowIndex):
		return m, showInPager(RenderIndexContent(m.runner.Snapshot()))

	case key.Matches(msg, m.keys.Up):
		m.navigator.MoveUp()
		m.selectionChanged()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.navigator.MoveDown()
		m.selectionChanged()
		return m, nil

	case key.Matches(msg, m.keys.Complete):
		if c, ok := m.selectedCandidate(); ok {
			m.input.SetValue(c.Completion)
			m.input.CursorEnd()
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.NextAction):
		if n := len(m.actions); n > 0 {
			m.actionIndex = (m.actionIndex + 1) % n
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevAction):
		if n := len(m.actions); n > 0 {
			m.actionIndex = (m.actionIndex + n - 1) % n
		}
		return m, nil

	case key.Matches(msg, m.keys.Run):
		if m.actionIndex >= len(m.actions) {
			return m, nil
		}
		return m, m.runAction(m.actions[m.actionIndex])

	case key.Matches(msg, m.keys.Reindex):
		m.runner.Reindex(m.paths)
		m.indexing = true
		m.setStatus("Reindexing...", false)
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m.handleEvent(msg.Event)

	case launchResultMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Failed to run '%s': %v", msg.action.CommandLine, msg.err), true)
			return m, clearStatusAfter(3 * time.Second)
		}
		if m.config != nil && m.config.UISettings.CloseOnLaunch {
			return m, tea.Quit
		}
		m.setStatus(fmt.Sprintf("Launched '%s'", msg.action.CommandLine), false)
		return m, clearStatusAfter(3 * time.Second)

	case pagerClosedMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("Pager failed: %v", msg.err)
		}
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		m.statusIsError = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.IndexStartedEvent:
		m.indexing = true
	case eventbus.IndexCompletedEvent:
		m.indexing = false
		m.setStatus(fmt.Sprintf("Indexed %d executables in %s", e.Count, e.Elapsed.Round(time.Millisecond)), false)
		m.refresh()
		return m, clearStatusAfter(3 * time.Second)
	case eventbus.IndexAbortedEvent:
		log.Printf("Index run %s superseded", e.RunID)
	case eventbus.ErrorEvent:
		m.setStatus(e.Message, true)
		return m, clearStatusAfter(3 * time.Second)
	}
	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	return m.renderer.Render(views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Input:          m.input.View(),
		Candidates:     m.result.Candidates,
		CommonPrefix:   m.result.CommonPrefix,
		SelectedIndex:  m.navigator.SelectedIndex(),
		ViewportOffset: m.navigator.ViewportOffset(),
		ViewportHeight: m.navigator.ViewportHeight(),
		Actions:        m.actions,
		SelectedAction: m.actionIndex,
		Indexing:       m.indexing,
		IndexedCount:   m.runner.Snapshot().Len(),
		StatusMessage:  m.statusMessage,
		StatusIsError:  m.statusIsError,
		HelpModel:      m.help,
		KeyMap:         m.keys,
		Ready:          os.Getenv("PATHRUN_E2E_TEST") == "1",
	})
}

// refresh recomputes candidates for the current input
func (m *Model) refresh() {
	m.result = m.runner.Complete(m.input.Value())
	m.navigator.Reset(len(m.result.Candidates))
	m.selectionChanged()
}

func (m *Model) selectionChanged() {
	m.actionIndex = 0
	m.actions = nil
	if c, ok := m.selectedCandidate(); ok {
		m.actions = m.runner.CandidateActions(c)
	}
}

func (m *Model) selectedCandidate() (completion.Candidate, bool) {
	i := m.navigator.SelectedIndex()
	if i < 0 || i >= len(m.result.Candidates) {
		return completion.Candidate{}, false
	}
	return m.result.Candidates[i], true
}

func (m *Model) setStatus(msg string, isError bool) {
	m.statusMessage = msg
	m.statusIsError = isError
}

// runAction returns a command that launches action off the update loop
func (m *Model) runAction(action completion.Action) tea.Cmd {
	return func() tea.Msg {
		return launchResultMsg{action: action, err: m.runner.Run(action)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
