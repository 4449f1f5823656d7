package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chipscope/internal/analysis"
	"chipscope/internal/boardspec"
	"chipscope/internal/heatmap"
	"chipscope/internal/miner"
	"chipscope/internal/topology"
)

// ColorMode selects what a cell's color encodes.
type ColorMode int

const (
	ColorTemp ColorMode = iota
	ColorErrors
	ColorCRC
)

// Next cycles temperature -> errors -> crc -> temperature.
func (m ColorMode) Next() ColorMode {
	switch m {
	case ColorTemp:
		return ColorErrors
	case ColorErrors:
		return ColorCRC
	default:
		return ColorTemp
	}
}

func (m ColorMode) label(s Strings) string {
	switch m {
	case ColorErrors:
		return s.ModeErrors
	case ColorCRC:
		return s.ModeCRC
	default:
		return s.ModeTemp
	}
}

// Chips this much hotter than their neighborhood, or this far outside the
// cross-slot distribution, or this far behind on shares get the flagged
// highlight.
const (
	flagGradient = 10.0
	flagZScore   = 2.0
	flagDeficit  = 30.0
)

const (
	fetchTimeout    = 30 * time.Second
	refreshInterval = 30 * time.Second
)

type state int

const (
	stateForm state = iota
	stateLoading
	stateView
)

const (
	fieldHost = iota
	fieldUser
	fieldPass
	fieldCount
)

// fetchedMsg carries one complete scrape-and-score round trip.
type fetchedMsg struct {
	data     miner.Data
	info     miner.SystemInfo
	cpd      int
	analyses [][]analysis.ChipAnalysis
	err      error
}

// refreshMsg fires the periodic re-fetch while the grid is on screen.
type refreshMsg struct{}

func scheduleRefresh() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return refreshMsg{}
	})
}

// Model is the chiptop program state.
type Model struct {
	client *miner.Client
	styles Styles
	lang   Language
	mode   ColorMode

	inputs []textinput.Model
	focus  int

	state    state
	data     miner.Data
	info     miner.SystemInfo
	cpd      int
	analyses [][]analysis.ChipAnalysis
	err      error

	width int
}

// NewModel builds the program. Non-empty host connects immediately; otherwise
// the login form is shown first.
func NewModel(client *miner.Client, host, user, pass string) Model {
	m := Model{
		client: client,
		styles: NewStyles(),
		lang:   LangEN,
		inputs: make([]textinput.Model, fieldCount),
	}

	for i := range m.inputs {
		in := textinput.New()
		in.CharLimit = 128
		m.inputs[i] = in
	}
	m.inputs[fieldHost].SetValue(host)
	m.inputs[fieldUser].SetValue(user)
	m.inputs[fieldPass].SetValue(pass)
	m.inputs[fieldPass].EchoMode = textinput.EchoPassword
	m.inputs[fieldHost].Focus()

	if host != "" {
		m.state = stateLoading
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.state == stateLoading {
		return tea.Batch(textinput.Blink, m.fetchCmd())
	}
	return textinput.Blink
}

// fetchCmd scrapes the miner, resolves the domain width, and runs the
// analysis off the UI goroutine.
func (m Model) fetchCmd() tea.Cmd {
	host := m.inputs[fieldHost].Value()
	user := m.inputs[fieldUser].Value()
	pass := m.inputs[fieldPass].Value()
	client := m.client

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		data, err := client.Fetch(ctx, host, user, pass)
		if err != nil {
			return fetchedMsg{err: err}
		}
		info, err := client.FetchSystemInfo(ctx, host)
		if err != nil {
			// The status page already parsed; show the grid without a model.
			info = miner.SystemInfo{}
		}

		cpd := 3
		if spec := boardspec.Lookup(info.Model); spec != nil {
			cpd = spec.ChipsPerDomain
		} else if inferred := topology.InferChipsPerDomain(data.TotalChips() / max(len(data.Slots), 1)); inferred > 0 {
			cpd = inferred
		}

		return fetchedMsg{
			data:     data,
			info:     info,
			cpd:      cpd,
			analyses: analysis.AnalyzeSlots(data.Slots, cpd),
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case fetchedMsg:
		if msg.err != nil {
			m.state = stateForm
			m.err = msg.err
			return m, nil
		}
		m.state = stateView
		m.err = nil
		m.data = msg.data
		m.info = msg.info
		m.cpd = msg.cpd
		m.analyses = msg.analyses
		return m, scheduleRefresh()

	case refreshMsg:
		// Skip when the user already left the grid or a fetch is in flight.
		if m.state != stateView {
			return m, nil
		}
		m.state = stateLoading
		return m, m.fetchCmd()

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	switch m.state {
	case stateForm:
		switch msg.String() {
		case "tab", "down":
			return m.setFocus(m.focus + 1), nil
		case "shift+tab", "up":
			return m.setFocus(m.focus - 1), nil
		case "enter":
			if m.inputs[fieldHost].Value() == "" {
				return m, nil
			}
			m.state = stateLoading
			m.err = nil
			return m, m.fetchCmd()
		case "esc":
			return m, tea.Quit
		}
		return m.updateInputs(msg)

	case stateView:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "r", "enter":
			m.state = stateLoading
			return m, m.fetchCmd()
		case "c":
			m.mode = m.mode.Next()
			return m, nil
		case "l":
			m.lang = m.lang.Next()
			return m, nil
		}
	}
	return m, nil
}

func (m Model) setFocus(focus int) Model {
	m.focus = (focus + fieldCount) % fieldCount
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	tr := Tr(m.lang)
	var b strings.Builder

	b.WriteString(m.styles.Header.Render(tr.Title))
	if m.info.Model != "" {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  %s: %s", tr.Model, m.info.Model)))
	}
	b.WriteString("\n\n")

	switch m.state {
	case stateForm:
		m.viewForm(&b, tr)
	case stateLoading:
		b.WriteString(m.styles.Status.Render(tr.Connecting))
		b.WriteString("\n")
	case stateView:
		m.viewGrids(&b, tr)
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(tr.Help))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewForm(b *strings.Builder, tr Strings) {
	labels := [fieldCount]string{tr.Host, tr.User, tr.Pass}
	for i, in := range m.inputs {
		fmt.Fprintf(b, "%s\n%s\n\n", m.styles.Muted.Render(labels[i]), in.View())
	}
	b.WriteString(m.styles.Status.Render(tr.Connect))
	b.WriteString("\n")
	if m.err != nil {
		fmt.Fprintf(b, "%s: %v\n", tr.FetchFailed, m.err)
	}
}

func (m Model) viewGrids(b *strings.Builder, tr Strings) {
	if len(m.data.Slots) == 0 {
		b.WriteString(m.styles.Status.Render(tr.NoBoards))
		b.WriteString("\n")
		return
	}

	fmt.Fprintf(b, "%s\n\n", m.styles.Muted.Render(m.mode.label(tr)))

	for i, slot := range m.data.Slots {
		var scores []analysis.ChipAnalysis
		if i < len(m.analyses) {
			scores = m.analyses[i]
		}
		grid := heatmap.Build(slot, m.cpd, scores)

		flagged := 0
		for _, a := range scores {
			if a.Gradient >= flagGradient || a.CrossSlotZScore >= flagZScore || a.NonceDeficit >= flagDeficit {
				flagged++
			}
		}

		b.WriteString(m.styles.SlotTitle.Render(fmt.Sprintf("%s %d", tr.Slot, slot.ID)))
		fmt.Fprintf(b, "  %s\n", m.styles.Muted.Render(fmt.Sprintf(
			"%d %s · %d %s · %s %.0f°C · %d %s",
			len(slot.Chips), tr.Chips, grid.NumDomains, tr.Domains, tr.AvgTemp, slot.Temp, flagged, tr.Flagged,
		)))

		m.renderSection(b, grid.Top)
		if len(grid.Top) > 0 && len(grid.Bottom) > 0 {
			b.WriteString("\n")
		}
		m.renderSection(b, grid.Bottom)
		b.WriteString("\n")
	}
}

// renderSection draws one section's rows. The grid already orders the columns
// so both air intakes sit at the right edge.
func (m Model) renderSection(b *strings.Builder, rows [][]*heatmap.Cell) {
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, m.styles.Cell(cell, m.mode, m.cellFlagged(cell), m.cellText(cell)))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
}

func (m Model) cellFlagged(cell *heatmap.Cell) bool {
	if cell == nil {
		return false
	}
	a := cell.Analysis
	return a.Gradient >= flagGradient || a.CrossSlotZScore >= flagZScore || a.NonceDeficit >= flagDeficit
}

func (m Model) cellText(cell *heatmap.Cell) string {
	if cell == nil {
		return "   "
	}
	switch m.mode {
	case ColorErrors:
		return fmt.Sprintf("%3d", cell.Chip.Errors)
	case ColorCRC:
		return fmt.Sprintf("%3d", cell.Chip.CRC)
	default:
		return fmt.Sprintf("%3d", cell.Chip.Temp)
	}
}
