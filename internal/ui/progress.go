package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"quasi/internal/checkpipeline"
)

// stageWeight is the share of a file's work finished once a stage starts.
var stageWeight = map[checkpipeline.Stage]float64{
	checkpipeline.StageLex:   0.1,
	checkpipeline.StageParse: 0.3,
	checkpipeline.StageQuote: 0.6,
	checkpipeline.StagePrint: 0.85,
}

var stageVerb = map[checkpipeline.Stage]string{
	checkpipeline.StageLex:   "lexing",
	checkpipeline.StageParse: "parsing",
	checkpipeline.StageQuote: "quoting",
	checkpipeline.StagePrint: "printing",
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	queuedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	workingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

const labelWidth = 10

// fileRow is one checked file as the view sees it.
type fileRow struct {
	path    string
	stage   checkpipeline.Stage
	status  checkpipeline.Status
	elapsed time.Duration
	err     error
}

func (r fileRow) finished() bool {
	return r.status == checkpipeline.StatusDone || r.status == checkpipeline.StatusError
}

func (r fileRow) label() string {
	if r.status == checkpipeline.StatusWorking {
		if verb, ok := stageVerb[r.stage]; ok {
			return verb
		}
	}
	return string(r.status)
}

func (r fileRow) style() lipgloss.Style {
	switch r.status {
	case checkpipeline.StatusDone:
		return doneStyle
	case checkpipeline.StatusError:
		return failedStyle
	case checkpipeline.StatusWorking:
		return workingStyle
	}
	return queuedStyle
}

type checkModel struct {
	title   string
	events  <-chan checkpipeline.Event
	spin    spinner.Model
	bar     progress.Model
	rows    []fileRow
	byPath  map[string]int
	width   int
	failed  int
	closed  bool
	lastErr error
}

type eventMsg checkpipeline.Event
type doneMsg struct{}

// NewProgressModel renders the progress of a check run fed by events. The
// model quits once the channel is closed.
func NewProgressModel(title string, files []string, events <-chan checkpipeline.Event) tea.Model {
	spin := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(workingStyle))
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(76))

	m := &checkModel{
		title:  title,
		events: events,
		spin:   spin,
		bar:    bar,
		rows:   make([]fileRow, len(files)),
		byPath: make(map[string]int, len(files)),
		width:  80,
	}
	for i, f := range files {
		m.rows[i] = fileRow{path: f, status: checkpipeline.StatusQueued}
		m.byPath[f] = i
	}
	return m
}

func (m *checkModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.next())
}

// next waits for one pipeline event.
func (m *checkModel) next() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *checkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(checkpipeline.Event(msg)), m.next())
	case doneMsg:
		m.closed = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = max(msg.Width-4, 10)
		}
	case spinner.TickMsg:
		if !m.closed {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

// apply folds one event into the rows. Run-level events carry no file and
// only matter through the channel closing.
func (m *checkModel) apply(ev checkpipeline.Event) tea.Cmd {
	i, ok := m.byPath[ev.File]
	if !ok {
		return nil
	}
	row := &m.rows[i]
	if ev.Stage != "" {
		row.stage = ev.Stage
	}
	row.status = ev.Status
	if ev.Elapsed > 0 {
		row.elapsed = ev.Elapsed
	}
	if ev.Status == checkpipeline.StatusError {
		row.err = ev.Err
		m.lastErr = ev.Err
		m.failed++
	}
	return m.bar.SetPercent(m.percent())
}

func (m *checkModel) percent() float64 {
	if len(m.rows) == 0 {
		return 0
	}
	var sum float64
	for _, r := range m.rows {
		if r.finished() {
			sum++
			continue
		}
		if r.status == checkpipeline.StatusWorking {
			sum += stageWeight[r.stage]
		}
	}
	return sum / float64(len(m.rows))
}

func (m *checkModel) finishedCount() int {
	n := 0
	for _, r := range m.rows {
		if r.finished() {
			n++
		}
	}
	return n
}

func (m *checkModel) header() string {
	if m.closed {
		h := "done: " + m.title
		if m.failed > 0 {
			h += fmt.Sprintf(", %d failed", m.failed)
		}
		return h
	}
	return fmt.Sprintf("%s %s [%d/%d]", m.spin.View(), m.title, m.finishedCount(), len(m.rows))
}

func (m *checkModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.header()))
	b.WriteString("\n\n")

	nameWidth := max(m.width-labelWidth-14, 20)
	for _, r := range m.rows {
		label := r.style().Render(fmt.Sprintf("%*s", labelWidth, r.label()))
		fmt.Fprintf(&b, "  %s %s", label, truncate(r.path, nameWidth))
		if r.finished() && r.elapsed > 0 {
			fmt.Fprintf(&b, " (%s)", r.elapsed.Round(time.Millisecond))
		}
		b.WriteByte('\n')
	}
	if m.lastErr != nil && !m.closed {
		b.WriteString("\n")
		b.WriteString(failedStyle.Render(truncate(m.lastErr.Error(), m.width-2)))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if m.closed {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteByte('\n')
	return b.String()
}

// truncate shortens value to width display cells, marking the cut with "...".
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
