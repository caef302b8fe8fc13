package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ordinatrix/pkg/clipboard"
	"github.com/matzehuels/ordinatrix/pkg/pipeline"
	"github.com/matzehuels/ordinatrix/pkg/transform"
)

// tuiCommand creates the interactive form command.
func (c *CLI) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [file]",
		Short: "Transform points in an interactive form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) > 0 || !isTerminal(cmd.InOrStdin()) {
				text, _, err := readInput(args, cmd.InOrStdin())
				if err != nil {
					return err
				}
				input = text
			}

			// Log lines would corrupt the alternate screen; the form shows
			// errors and dropped values itself.
			runner := pipeline.NewRunner(log.New(io.Discard))
			m := newFormModel(cmd.Context(), runner, c.Config.PipelineOptions(), input)
			m.clip = clipboard.New(cmd.ErrOrStderr(), c.Config.Clipboard.Tmux || clipboard.InTmux())
			m.delay = c.Config.Clipboard.FeedbackDelay

			p := tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}

// TUI styles
var (
	tuiLabelStyle   = lipgloss.NewStyle().Foreground(colorGray).Width(8)
	tuiFocusStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	tuiFieldStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	tuiTabStyle     = lipgloss.NewStyle().Foreground(colorDim).Padding(0, 1)
	tuiActiveStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1).Underline(true)
	tuiPaneStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
	tuiEditingStyle = tuiPaneStyle.BorderForeground(colorCyan)
)

// maxPaneLines bounds the lines shown per input/output pane.
const maxPaneLines = 12

// Axis indexes of the parameter fields.
const (
	axisX = iota
	axisY
	axisZ
)

// copyResultMsg reports the outcome of a clipboard copy.
type copyResultMsg struct{ err error }

// copyResetMsg restores the copy label. Only the newest reset applies.
type copyResetMsg struct{ gen int }

// formModel is the bubbletea model for the transform form.
//
// Each mode keeps its own field texts, so switching modes does not lose
// what was typed. An empty field is an unset parameter.
type formModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	clip   *clipboard.Writer
	delay  time.Duration

	mode       transform.Mode
	includeZ   bool
	includeTag bool
	fields     map[transform.Mode]*[3]string
	focus      int // index into visibleAxes

	input   string
	editing bool // typing goes to the input pane
	output  string
	dropped int
	err     error

	copyStatus clipboard.Status
	copyGen    int
}

func newFormModel(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options, input string) formModel {
	m := formModel{
		ctx:        ctx,
		runner:     runner,
		delay:      clipboard.DefaultFeedbackDelay,
		mode:       opts.Mode,
		includeZ:   opts.IncludeZ,
		includeTag: opts.IncludeTag,
		fields:     make(map[transform.Mode]*[3]string),
		input:      input,
	}
	if !m.mode.Valid() {
		m.mode = transform.DefaultMode
	}
	for _, mode := range transform.Modes() {
		m.fields[mode] = defaultFields(mode)
	}
	return m
}

func defaultFields(mode transform.Mode) *[3]string {
	d := transform.Defaults(mode)
	return &[3]string{d.X.String(), d.Y.String(), d.Z.String()}
}

// visibleAxes returns the parameter fields shown for the current mode
// and layout. In 2D, z offsets and factors are hidden, and rotation
// shows only the plane angle.
func (m formModel) visibleAxes() []int {
	switch {
	case m.mode == transform.Rotate && !m.includeZ:
		return []int{axisZ}
	case m.includeZ:
		return []int{axisX, axisY, axisZ}
	default:
		return []int{axisX, axisY}
	}
}

func (m formModel) axisLabel(axis int) string {
	if m.mode == transform.Rotate && !m.includeZ {
		return "Angle"
	}
	return [...]string{"X", "Y", "Z"}[axis]
}

func (m formModel) focusedAxis() int {
	axes := m.visibleAxes()
	return axes[m.focus%len(axes)]
}

// params converts the field texts of the current mode into parameters.
func (m formModel) params() transform.Params {
	f := m.fields[m.mode]
	return transform.Params{
		X: transform.ParseParam(f[axisX]),
		Y: transform.ParseParam(f[axisY]),
		Z: transform.ParseParam(f[axisZ]),
	}
}

func (m formModel) Init() tea.Cmd {
	return nil
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.editing {
			return m.updateInput(msg), nil
		}
		return m.updateForm(msg)

	case copyResultMsg:
		m.copyStatus = clipboard.StatusOf(msg.err)
		m.copyGen++
		gen := m.copyGen
		return m, tea.Tick(m.delay, func(time.Time) tea.Msg { return copyResetMsg{gen: gen} })

	case copyResetMsg:
		if msg.gen == m.copyGen {
			m.copyStatus = clipboard.Idle
		}
	}
	return m, nil
}

func (m formModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		m.mode = m.mode.Prev()
		m.focus = 0
	case "right", "l":
		m.mode = m.mode.Next()
		m.focus = 0
	case "z":
		m.includeZ = !m.includeZ
		m.focus = 0
	case "t":
		m.includeTag = !m.includeTag
	case "tab", "down", "j":
		m.focus = (m.focus + 1) % len(m.visibleAxes())
	case "shift+tab", "up", "k":
		n := len(m.visibleAxes())
		m.focus = (m.focus + n - 1) % n
	case "backspace":
		f := m.fields[m.mode]
		axis := m.focusedAxis()
		if r := []rune(f[axis]); len(r) > 0 {
			f[axis] = string(r[:len(r)-1])
		}
	case "ctrl+u":
		m.fields[m.mode][m.focusedAxis()] = ""
	case "ctrl+r":
		m.fields[m.mode] = defaultFields(m.mode)
	case "enter":
		m.process()
	case "u":
		if strings.TrimSpace(m.output) != "" {
			m.input = m.output
		}
	case "i":
		m.editing = true
	case "c":
		return m, m.copy()
	default:
		if msg.Type == tea.KeyRunes && isNumeric(msg.Runes) {
			m.fields[m.mode][m.focusedAxis()] += string(msg.Runes)
		}
	}
	return m, nil
}

// updateInput edits the input pane. Esc returns to the form.
func (m formModel) updateInput(msg tea.KeyMsg) formModel {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
	case tea.KeyEnter:
		m.input += "\n"
	case tea.KeySpace:
		m.input += " "
	case tea.KeyTab:
		m.input += "\t"
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeyCtrlU:
		m.input = ""
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m
}

// process runs the pipeline on the input with the form state.
func (m *formModel) process() {
	opts := pipeline.Options{
		Mode:       m.mode,
		Params:     m.params(),
		IncludeZ:   m.includeZ,
		IncludeTag: m.includeTag,
		Format:     pipeline.FormatText,
	}
	result, err := m.runner.Execute(m.ctx, m.input, opts)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.output = string(result.Output)
	m.dropped = result.Stats.Dropped
}

func (m formModel) copy() tea.Cmd {
	if m.clip == nil {
		return nil
	}
	clip, ctx, text := m.clip, m.ctx, m.output
	return func() tea.Msg {
		return copyResultMsg{err: clip.Copy(ctx, text)}
	}
}

func isNumeric(runes []rune) bool {
	for _, r := range runes {
		if !strings.ContainsRune("0123456789.-+", r) {
			return false
		}
	}
	return len(runes) > 0
}

func (m formModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Ordinatrix"))
	b.WriteString("\n\n")

	// Mode tabs
	tabs := make([]string, 0, 3)
	for _, mode := range transform.Modes() {
		name := strings.ToUpper(mode.String()[:1]) + mode.String()[1:]
		if mode == m.mode {
			tabs = append(tabs, tuiActiveStyle.Render(name))
		} else {
			tabs = append(tabs, tuiTabStyle.Render(name))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("   ")
	b.WriteString(checkbox("3D", m.includeZ) + "  " + checkbox("Tag", m.includeTag))
	b.WriteString("\n\n")

	// Parameter fields
	focused := m.focusedAxis()
	for _, axis := range m.visibleAxes() {
		value := m.fields[m.mode][axis]
		line := tuiLabelStyle.Render(m.axisLabel(axis))
		if axis == focused && !m.editing {
			line += tuiFocusStyle.Render("▸ " + value + "▏")
		} else {
			line += tuiFieldStyle.Render("  " + value)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	// Panes
	inputStyle := tuiPaneStyle
	inputTitle := "Input"
	if m.editing {
		inputStyle = tuiEditingStyle
		inputTitle = "Input (editing, esc to finish)"
	}
	in := inputStyle.Render(StyleDim.Render(inputTitle) + "\n" + truncateLines(m.input))
	out := tuiPaneStyle.Render(StyleDim.Render("Output") + "\n" + truncateLines(m.output))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, in, " ", out))
	b.WriteString("\n")

	// Status
	switch {
	case m.err != nil:
		b.WriteString(StyleError.Render(m.err.Error()))
	case m.dropped > 0:
		b.WriteString(StyleWarning.Render(fmt.Sprintf("dropped %d trailing value(s)", m.dropped)))
	}
	b.WriteString("\n")

	copyLabel := m.copyStatus.Label()
	switch m.copyStatus {
	case clipboard.Copied:
		copyLabel = StyleSuccess.Render(copyLabel)
	case clipboard.Failed:
		copyLabel = StyleError.Render(copyLabel)
	}
	b.WriteString(StyleDim.Render("←/→ mode  z 3D  t tag  tab field  ctrl+r reset  i edit input  ⏎ process  u use output  c ") +
		copyLabel + StyleDim.Render("  q quit"))
	return b.String()
}

func checkbox(label string, on bool) string {
	if on {
		return StyleHighlight.Render("[x] " + label)
	}
	return StyleDim.Render("[ ] " + label)
}

// truncateLines shortens text to maxPaneLines lines.
func truncateLines(text string) string {
	if text == "" {
		return StyleDim.Render("(empty)")
	}
	lines := strings.Split(text, "\n")
	if len(lines) <= maxPaneLines {
		return text
	}
	more := fmt.Sprintf("… %d more lines", len(lines)-maxPaneLines)
	return strings.Join(lines[:maxPaneLines], "\n") + "\n" + StyleDim.Render(more)
}
