package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/valter-silva-au/raptorflow/pkg/models"
)

// Style definitions.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	phaseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	statusPending = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusDone    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	statusActive  = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	statusBlocked = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func renderBrief(b models.Brief) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(b.Name))
	sb.WriteString("\n\n")
	rows := [][2]string{
		{"Category", string(b.Category)},
		{"Goal", b.Goal},
		{"Tone", b.Tone},
		{"Duration", fmt.Sprintf("%d days", b.Duration)},
		{"Audience", b.ICP},
		{"Strategy", b.Strategy},
		{"Metrics", strings.Join(b.Metrics, ", ")},
	}
	for _, r := range rows {
		fmt.Fprintf(&sb, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-9s", r[0]+":")), r[1])
	}
	return sb.String()
}

// renderExecution lists every day and task. Task markers are omitted when
// showStatus is false, as in a preview before launch.
func renderExecution(days []models.ExecutionDay, showStatus bool) string {
	var sb strings.Builder
	for i := range days {
		d := &days[i]
		fmt.Fprintf(&sb, "\n%s %s\n", headerStyle.Render(fmt.Sprintf("Day %d", d.Day)), phaseStyle.Render(d.Phase))
		for _, t := range d.Tasks() {
			marker := "-"
			if showStatus {
				marker = styleForStatus(t.Status).Render(statusMarker(t.Status))
			}
			fmt.Fprintf(&sb, "  %s %s %s\n", marker, t.Title, labelStyle.Render("["+t.ID+" · "+string(t.Channel)+"]"))
		}
	}
	return sb.String()
}

func renderMove(m *models.Move) string {
	done, total := m.Progress()
	var sb strings.Builder
	sb.WriteString(renderBrief(m.Brief))
	fmt.Fprintf(&sb, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-9s", "Move:")), m.ID)
	fmt.Fprintf(&sb, "  %s %d/%d tasks done\n", labelStyle.Render(fmt.Sprintf("%-9s", "Progress:")), done, total)
	sb.WriteString(renderExecution(m.Execution, true))
	return sb.String()
}

func statusMarker(s models.TaskStatus) string {
	switch s {
	case models.TaskDone:
		return "[x]"
	case models.TaskInProgress:
		return "[~]"
	case models.TaskBlocked:
		return "[!]"
	case models.TaskAttention:
		return "[?]"
	case models.TaskIdea:
		return "[*]"
	default:
		return "[ ]"
	}
}

func styleForStatus(s models.TaskStatus) lipgloss.Style {
	switch s {
	case models.TaskDone:
		return statusDone
	case models.TaskInProgress, models.TaskAttention:
		return statusActive
	case models.TaskBlocked:
		return statusBlocked
	default:
		return statusPending
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
