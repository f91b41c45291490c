package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/taskmasterhq/taskmaster/cmd/tui/client"
	"github.com/taskmasterhq/taskmaster/internal/models"
)

type TaskItem struct {
	ID          string
	Title       string
	Description string
	Status      string
	Priority    string
	CreatedAt   string
}

type listTasksSuccessMsg struct {
	tasks []TaskItem
}

type listTasksErrorMsg struct {
	err error
}

type taskChangedMsg struct{}

type taskChangeErrorMsg struct {
	err error
}

type ListModel struct {
	tasks   []TaskItem
	cursor  int
	loading bool
	err     error
	api     *client.Client
	loaded  bool
}

func (m *ListModel) Init() tea.Cmd {
	return nil
}

func NewListModel() *ListModel {
	return &ListModel{
		tasks: []TaskItem{},
	}
}

func (m *ListModel) SetClient(c *client.Client) {
	m.api = c
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func relativeTime(t time.Time) string {
	ago := time.Since(t)
	switch {
	case ago < time.Hour:
		return fmt.Sprintf("%d min ago", int(ago.Minutes()))
	case ago < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(ago.Hours()))
	default:
		return fmt.Sprintf("%d days ago", int(ago.Hours()/24))
	}
}

func listTasksCmd(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		resp, err := c.ListTasks("", "", "")
		if err != nil {
			return listTasksErrorMsg{err: err}
		}

		tasks := make([]TaskItem, 0, len(resp))
		for _, t := range resp {
			tasks = append(tasks, TaskItem{
				ID:          t.ID,
				Title:       t.Title,
				Description: t.Description,
				Status:      t.Status,
				Priority:    t.Priority,
				CreatedAt:   relativeTime(t.CreatedAt),
			})
		}

		return listTasksSuccessMsg{tasks: tasks}
	}
}

func toggleTaskCmd(c *client.Client, task TaskItem) tea.Cmd {
	return func() tea.Msg {
		status := models.StatusCompleted
		if task.Status == models.StatusCompleted {
			status = models.StatusTodo
		}
		if _, err := c.SetTaskStatus(task.ID, status); err != nil {
			return taskChangeErrorMsg{err: err}
		}
		return taskChangedMsg{}
	}
}

func deleteTaskCmd(c *client.Client, id string) tea.Cmd {
	return func() tea.Msg {
		if err := c.DeleteTask(id); err != nil {
			return taskChangeErrorMsg{err: err}
		}
		return taskChangedMsg{}
	}
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listTasksSuccessMsg:
		m.loading = false
		m.tasks = msg.tasks
		m.err = nil
		m.loaded = true
		if m.cursor >= len(m.tasks) && len(m.tasks) > 0 {
			m.cursor = len(m.tasks) - 1
		}
		return m, nil

	case listTasksErrorMsg:
		m.loading = false
		m.err = msg.err
		m.loaded = true
		return m, nil

	case taskChangedMsg:
		// Reload so the list reflects the server's view.
		m.loading = true
		return m, listTasksCmd(m.api)

	case taskChangeErrorMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
		case "r":
			if !m.loading {
				m.loading = true
				m.err = nil
				return m, listTasksCmd(m.api)
			}
		case "enter", " ":
			if !m.loading && m.cursor < len(m.tasks) {
				m.loading = true
				m.err = nil
				return m, toggleTaskCmd(m.api, m.tasks[m.cursor])
			}
		case "d":
			if !m.loading && m.cursor < len(m.tasks) {
				m.loading = true
				m.err = nil
				return m, deleteTaskCmd(m.api, m.tasks[m.cursor].ID)
			}
		}
	}

	if !m.loaded && !m.loading && m.api != nil {
		m.loading = true
		return m, listTasksCmd(m.api)
	}

	return m, nil
}

func (m *ListModel) View() string {
	var b strings.Builder

	header := TitleStyle.Render("YOUR TASKS")
	b.WriteString(lipgloss.NewStyle().
		Width(80).
		Align(lipgloss.Center).
		MarginTop(2).
		MarginBottom(2).
		Render(header))
	b.WriteString("\n\n")

	if m.loading {
		loading := lipgloss.NewStyle().
			Foreground(Accent).
			Render("⏳ Loading tasks...")
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).MarginTop(2).Render(loading))
		b.WriteString("\n")
	} else if m.err != nil {
		errMsg := ErrorStyle.Render("❌ " + m.err.Error())
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).MarginTop(2).Render(errMsg))
		b.WriteString("\n")
	} else if len(m.tasks) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(Muted).
			Render("📝 No tasks yet. Create one first!")
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).MarginTop(2).Render(empty))
		b.WriteString("\n")
	} else {
		for i, task := range m.tasks {
			borderColor := Muted
			if i == m.cursor {
				borderColor = Accent
			}
			cardStyle := lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(borderColor).
				Padding(1, 2).
				Width(70).
				MarginBottom(1)

			check := "☐"
			titleColor := Text
			if task.Status == models.StatusCompleted {
				check = "✓"
				titleColor = Muted
			}
			titleLine := lipgloss.NewStyle().Foreground(Accent).Bold(true).Render(check+" ") +
				lipgloss.NewStyle().Foreground(titleColor).Bold(true).Render(truncate(task.Title, 60))

			var descLine string
			if task.Description != "" {
				descLine = lipgloss.NewStyle().Foreground(Muted).Render(truncate(task.Description, 60))
			}

			prioValue := lipgloss.NewStyle().Foreground(priorityColor(task.Priority)).Bold(true).Render(task.Priority)
			statusValue := lipgloss.NewStyle().Foreground(Secondary).Render(task.Status)
			timeValue := lipgloss.NewStyle().Foreground(Muted).Render(" • " + task.CreatedAt)
			metaLine := prioValue + lipgloss.NewStyle().Foreground(Muted).Render(" • ") + statusValue + timeValue

			lines := []string{titleLine}
			if descLine != "" {
				lines = append(lines, descLine)
			}
			lines = append(lines, metaLine)

			cardContent := lipgloss.JoinVertical(lipgloss.Left, lines...)
			b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(cardStyle.Render(cardContent)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	help := InfoStyle.Render("↑/↓ navigate  •  enter toggle done  •  d delete  •  r refresh  •  q back")
	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(help))

	return b.String()
}
