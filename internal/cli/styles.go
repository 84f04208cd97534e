package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todo-tracker/internal/domain"
)

// Styles holds the lipgloss styles used for terminal output. Colour is
// dropped automatically when the writer is not a terminal.
type Styles struct {
	renderer *lipgloss.Renderer

	Heading   lipgloss.Style
	Muted     lipgloss.Style
	Completed lipgloss.Style
	Pending   lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	Hint      lipgloss.Style
}

// NewStyles creates styles bound to out. With noColor every style renders
// plain text.
func NewStyles(out io.Writer, noColor bool) *Styles {
	r := lipgloss.NewRenderer(out)
	s := &Styles{renderer: r}
	if noColor {
		plain := r.NewStyle()
		s.Heading, s.Muted, s.Completed, s.Pending = plain, plain, plain, plain
		s.Accent, s.Error, s.Hint = plain, plain, plain
		return s
	}

	s.Heading = r.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	s.Muted = r.NewStyle().Foreground(lipgloss.Color("245"))
	s.Completed = r.NewStyle().Foreground(lipgloss.Color("35")).Strikethrough(true)
	s.Pending = r.NewStyle().Foreground(lipgloss.Color("252"))
	s.Accent = r.NewStyle().Bold(true).Foreground(lipgloss.Color("35"))
	s.Error = r.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	s.Hint = r.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
	return s
}

// shortIDLength is how much of a task id is shown in listings
const shortIDLength = 8

// ShortID returns the leading part of id shown in listings
func ShortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength]
}

// checkbox returns the completion marker for a task
func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// RenderTask renders one task as a listing line, with its description on
// a second indented line when present
func (s *Styles) RenderTask(task domain.Task, timeFormat string) string {
	titleStyle := s.Pending
	if task.Completed {
		titleStyle = s.Completed
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s  %s",
		checkbox(task.Completed),
		s.Muted.Render(ShortID(task.ID)),
		titleStyle.Render(task.Title),
		s.Muted.Render(task.CreatedAt.Local().Format(timeFormat)),
	)
	if task.HasDescription() {
		fmt.Fprintf(&b, "\n    %s", s.Muted.Render(task.Description))
	}
	return b.String()
}

// RenderStats renders the dashboard statistics block
func (s *Styles) RenderStats(stats domain.Stats) string {
	rows := []string{
		fmt.Sprintf("%-16s %s", "Total Tasks", s.Accent.Render(fmt.Sprint(stats.Total))),
		fmt.Sprintf("%-16s %s", "Completed", s.Accent.Render(fmt.Sprint(stats.Completed))),
		fmt.Sprintf("%-16s %s", "Pending", s.Accent.Render(fmt.Sprint(stats.Pending))),
		fmt.Sprintf("%-16s %s", "Completion Rate", s.Accent.Render(fmt.Sprintf("%d%%", stats.CompletionRate))),
	}
	return strings.Join(rows, "\n")
}
