package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/taskmasterhq/taskmaster/cmd/tui/client"
)

type profileSuccessMsg struct {
	name    string
	email   string
	joined  string
	updated string
}

type profileErrorMsg struct {
	err error
}

type ProfileModel struct {
	name    string
	email   string
	joined  string
	updated string
	loading bool
	err     error
	api     *client.Client
	loaded  bool
}

func (m *ProfileModel) Init() tea.Cmd {
	return nil
}

func NewProfileModel() *ProfileModel {
	return &ProfileModel{}
}

func (m *ProfileModel) SetClient(c *client.Client) {
	m.api = c
}

func loadProfileCmd(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		resp, err := c.GetProfile()
		if err != nil {
			return profileErrorMsg{err: err}
		}

		return profileSuccessMsg{
			name:    resp.User.Name,
			email:   resp.User.Email,
			joined:  resp.User.CreatedAt.Format(time.DateOnly),
			updated: relativeTime(resp.User.UpdatedAt),
		}
	}
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileSuccessMsg:
		m.loading = false
		m.name = msg.name
		m.email = msg.email
		m.joined = msg.joined
		m.updated = msg.updated
		m.err = nil
		m.loaded = true
		return m, nil

	case profileErrorMsg:
		m.loading = false
		m.err = msg.err
		m.loaded = true
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "r" && !m.loading {
			m.loading = true
			m.err = nil
			return m, loadProfileCmd(m.api)
		}
	}

	if !m.loaded && !m.loading && m.api != nil {
		m.loading = true
		return m, loadProfileCmd(m.api)
	}

	return m, nil
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	header := TitleStyle.Render("PROFILE")
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
			Render("⏳ Loading profile...")
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).MarginTop(2).Render(loading))
		b.WriteString("\n")
	} else if m.err != nil {
		errMsg := ErrorStyle.Render("❌ " + m.err.Error())
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).MarginTop(2).Render(errMsg))
		b.WriteString("\n")
	} else {
		rows := []struct {
			label string
			value string
		}{
			{"Name", m.name},
			{"Email", m.email},
			{"Joined", m.joined},
			{"Last updated", m.updated},
		}

		var lines []string
		for _, row := range rows {
			lines = append(lines, LabelStyle.Render(row.label)+ValueStyle.Render(row.value))
		}

		card := BoxStyle.Width(60).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(card))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := InfoStyle.Render("r refresh  •  q back")
	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(help))

	return b.String()
}
