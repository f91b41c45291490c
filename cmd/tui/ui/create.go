package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/taskmasterhq/taskmaster/cmd/tui/client"
	"github.com/taskmasterhq/taskmaster/internal/models"
)

type createTaskSuccessMsg struct {
	title string
}

type createTaskErrorMsg struct {
	err error
}

var priorities = []string{models.PriorityLow, models.PriorityMedium, models.PriorityHigh}

type CreateModel struct {
	titleInput       string
	descriptionInput string
	priorityIndex    int
	focusedInput     int
	loading          bool
	result           string
	err              error
	api              *client.Client
}

func (m *CreateModel) Init() tea.Cmd {
	return nil
}

func NewCreateModel() *CreateModel {
	return &CreateModel{
		focusedInput:  0,
		priorityIndex: 1, // medium
	}
}

func (m *CreateModel) SetClient(c *client.Client) {
	m.api = c
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if len(title) > 200 {
		return fmt.Errorf("title must be less than 200 characters")
	}
	return nil
}

func createTaskCmd(c *client.Client, title, description, priority string) tea.Cmd {
	return func() tea.Msg {
		task, err := c.CreateTask(title, description, priority)
		if err != nil {
			return createTaskErrorMsg{err: err}
		}
		return createTaskSuccessMsg{title: task.Title}
	}
}

func (m *CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case createTaskSuccessMsg:
		m.loading = false
		m.result = msg.title
		m.err = nil
		m.titleInput = ""
		m.descriptionInput = ""
		return m, nil

	case createTaskErrorMsg:
		m.loading = false
		m.err = msg.err
		m.result = ""
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.String() {
		case "tab":
			m.focusedInput = (m.focusedInput + 1) % 3
		case "left":
			if m.focusedInput == 2 && m.priorityIndex > 0 {
				m.priorityIndex--
			}
		case "right":
			if m.focusedInput == 2 && m.priorityIndex < len(priorities)-1 {
				m.priorityIndex++
			}
		case "enter":
			if err := validateTitle(m.titleInput); err != nil {
				m.err = err
				return m, nil
			}

			if m.api != nil {
				m.loading = true
				m.err = nil
				m.result = ""
				return m, createTaskCmd(m.api, m.titleInput, m.descriptionInput, priorities[m.priorityIndex])
			} else {
				m.err = fmt.Errorf("client not connected")
			}
		case "backspace":
			if m.focusedInput == 0 && len(m.titleInput) > 0 {
				m.titleInput = m.titleInput[:len(m.titleInput)-1]
			} else if m.focusedInput == 1 && len(m.descriptionInput) > 0 {
				m.descriptionInput = m.descriptionInput[:len(m.descriptionInput)-1]
			}
		case "ctrl+l":
			m.titleInput = ""
			m.descriptionInput = ""
			m.priorityIndex = 1
			m.result = ""
			m.err = nil
		default:
			if len(msg.String()) == 1 {
				if m.focusedInput == 0 {
					m.titleInput += msg.String()
				} else if m.focusedInput == 1 {
					m.descriptionInput += msg.String()
				}
			}
		}
	}
	return m, nil
}

func (m *CreateModel) View() string {
	var b strings.Builder

	header := TitleStyle.Render("NEW TASK")
	b.WriteString(lipgloss.NewStyle().
		Width(80).
		Align(lipgloss.Center).
		MarginTop(2).
		MarginBottom(2).
		Render(header))
	b.WriteString("\n\n")

	titleLabel := LabelStyle.Width(15).Render("Title:")
	titleStyle := InputStyle
	if m.focusedInput == 0 {
		titleStyle = FocusedInputStyle
	}
	titleField := lipgloss.JoinHorizontal(lipgloss.Left, titleLabel, titleStyle.Width(50).Render(m.titleInput))
	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(titleField))
	b.WriteString("\n\n")

	descLabel := LabelStyle.Width(15).Render("Description:")
	descStyle := InputStyle
	if m.focusedInput == 1 {
		descStyle = FocusedInputStyle
	}
	descField := lipgloss.JoinHorizontal(lipgloss.Left, descLabel, descStyle.Width(50).Render(m.descriptionInput))
	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(descField))
	b.WriteString("\n\n")

	prioLabel := LabelStyle.Width(15).Render("Priority:")
	var prioOptions []string
	for i, p := range priorities {
		style := lipgloss.NewStyle().Foreground(Muted).Padding(0, 1)
		if i == m.priorityIndex {
			style = lipgloss.NewStyle().Foreground(priorityColor(p)).Bold(true).Padding(0, 1)
		}
		prioOptions = append(prioOptions, style.Render(p))
	}
	prioValue := lipgloss.JoinHorizontal(lipgloss.Left, prioOptions...)
	if m.focusedInput == 2 {
		prioValue = FocusedInputStyle.Render(prioValue)
	} else {
		prioValue = InputStyle.Render(prioValue)
	}
	prioField := lipgloss.JoinHorizontal(lipgloss.Left, prioLabel, prioValue)
	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(prioField))
	b.WriteString("\n\n")

	if m.loading {
		loading := InfoStyle.Render("🔄 Creating task...")
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(loading))
		b.WriteString("\n")
	}

	if m.err != nil {
		errMsg := ErrorStyle.Render("❌ " + m.err.Error())
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(errMsg))
		b.WriteString("\n")
	}

	if m.result != "" {
		success := SuccessStyle.Render("✅ Created: " + m.result)
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(success))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := InfoStyle.Render("tab switch  •  ←/→ priority  •  enter create  •  ctrl+l clear  •  q back")
	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(help))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(2, 4).
		Width(76).
		Render(b.String())
}
